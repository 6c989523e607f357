package characters

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	redis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/pkg/clock"
	redisclient "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/redis"
)

// listConcurrency bounds the parallel character loads of a list call
const listConcurrency = 8

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis character repository.
type RedisConfig struct {
	Client redisclient.Client
	Clock  clock.Clock
}

// Validate validates the RedisConfig.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	return nil
}

// NewRedis creates a new Redis-backed character repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &redisRepository{client: cfg.Client, clock: c}, nil
}

// characterRecord is what gets serialized to Redis. The equipped set lives in
// its own sorted set.
type characterRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}

	id, err := r.client.Incr(ctx, redisclient.CharacterSequenceKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate character id")
	}

	now := r.clock.Now()
	rec := characterRecord{ID: id, Name: input.Character.Name, CreatedAt: now, UpdatedAt: now}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal character")
	}

	member := redisclient.FormatID(id)
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, redisclient.CharacterKey(id), data, 0)
	pipe.ZAdd(ctx, redisclient.CharactersAllKey, redis.Z{Score: float64(id), Member: member})
	pipe.SAdd(ctx, redisclient.CharacterNameKey(rec.Name), member)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.DebugContext(ctx, "character created", "character_id", id)
	return &CreateOutput{Character: rec.toEntity(nil)}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	char, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Character: char}, nil
}

func (r *redisRepository) loadRecord(ctx context.Context, id int64) (*characterRecord, error) {
	raw, err := r.client.Get(ctx, redisclient.CharacterKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("character with ID %d not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get character %d", id)
	}

	var rec characterRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal character")
	}
	return &rec, nil
}

func (r *redisRepository) load(ctx context.Context, id int64) (*entities.Character, error) {
	rec, err := r.loadRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	itemIDs, err := redisclient.OrderedIDs(ctx, r.client, redisclient.CharacterEquipmentKey(id))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read equipment")
	}
	equipped, err := redisclient.LoadItems(ctx, r.client, itemIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load equipped items")
	}
	return rec.toEntity(equipped), nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := redisclient.OrderedIDs(ctx, r.client, redisclient.CharactersAllKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}
	return r.loadMany(ctx, ids)
}

func (r *redisRepository) ListByName(ctx context.Context, input ListByNameInput) (*ListOutput, error) {
	ids, err := redisclient.SetIDs(ctx, r.client, redisclient.CharacterNameKey(input.Name))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters by name")
	}
	return r.loadMany(ctx, ids)
}

func (r *redisRepository) loadMany(ctx context.Context, ids []int64) (*ListOutput, error) {
	chars := make([]*entities.Character, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			char, err := r.load(gctx, id)
			if err != nil {
				if errors.IsNotFound(err) {
					// deleted between the index read and the load
					return nil
				}
				return err
			}
			chars[i] = char
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &ListOutput{Characters: make([]*entities.Character, 0, len(chars))}
	for _, c := range chars {
		if c != nil {
			out.Characters = append(out.Characters, c)
		}
	}
	return out, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Character == nil {
		return nil, errors.InvalidArgument(errCharacterNil)
	}
	char := input.Character

	rec, err := r.loadRecord(ctx, char.ID)
	if err != nil {
		return nil, err
	}
	oldItemIDs, err := redisclient.OrderedIDs(ctx, r.client, redisclient.CharacterEquipmentKey(char.ID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read equipment")
	}

	newItemIDs := char.EquippedIDs()
	for _, itemID := range newItemIDs {
		if err := r.requireItem(ctx, itemID); err != nil {
			return nil, err
		}
	}

	var base int64
	if len(newItemIDs) > 0 {
		base, err = r.client.IncrBy(ctx, redisclient.RelationSequenceKey, int64(len(newItemIDs))).Result()
		if err != nil {
			return nil, errors.Wrap(err, "failed to allocate equipment order")
		}
	}

	oldName := rec.Name
	rec.Name = char.Name
	rec.UpdatedAt = r.clock.Now()
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal character")
	}

	member := redisclient.FormatID(char.ID)
	equipmentKey := redisclient.CharacterEquipmentKey(char.ID)
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, redisclient.CharacterKey(char.ID), data, 0)
	if oldName != rec.Name {
		pipe.SRem(ctx, redisclient.CharacterNameKey(oldName), member)
		pipe.SAdd(ctx, redisclient.CharacterNameKey(rec.Name), member)
	}
	for _, itemID := range oldItemIDs {
		pipe.SRem(ctx, redisclient.ItemEquippedByKey(itemID), member)
	}
	pipe.Del(ctx, equipmentKey)
	first := base - int64(len(newItemIDs)) + 1
	for i, itemID := range newItemIDs {
		pipe.ZAdd(ctx, equipmentKey, redis.Z{Score: float64(first + int64(i)), Member: redisclient.FormatID(itemID)})
		pipe.SAdd(ctx, redisclient.ItemEquippedByKey(itemID), member)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update character %d", char.ID)
	}

	updated, err := r.load(ctx, char.ID)
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{Character: updated}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	rec, err := r.loadRecord(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	itemIDs, err := redisclient.OrderedIDs(ctx, r.client, redisclient.CharacterEquipmentKey(input.ID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read equipment")
	}

	member := redisclient.FormatID(input.ID)
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, redisclient.CharacterKey(input.ID), redisclient.CharacterEquipmentKey(input.ID))
	pipe.ZRem(ctx, redisclient.CharactersAllKey, member)
	pipe.SRem(ctx, redisclient.CharacterNameKey(rec.Name), member)
	for _, itemID := range itemIDs {
		pipe.SRem(ctx, redisclient.ItemEquippedByKey(itemID), member)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %d", input.ID)
	}

	slog.DebugContext(ctx, "character deleted", "character_id", input.ID)
	return &DeleteOutput{}, nil
}

func (r *redisRepository) AddEquipment(ctx context.Context, input AddEquipmentInput) (*AddEquipmentOutput, error) {
	exists, err := r.client.Exists(ctx, redisclient.CharacterKey(input.CharacterID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check character existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("character with ID %d not found", input.CharacterID)
	}
	if err := r.requireItem(ctx, input.ItemID); err != nil {
		return nil, err
	}

	seq, err := r.client.Incr(ctx, redisclient.RelationSequenceKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate equipment order")
	}

	pipe := r.client.TxPipeline()
	added := pipe.ZAddNX(ctx, redisclient.CharacterEquipmentKey(input.CharacterID),
		redis.Z{Score: float64(seq), Member: redisclient.FormatID(input.ItemID)})
	pipe.SAdd(ctx, redisclient.ItemEquippedByKey(input.ItemID), redisclient.FormatID(input.CharacterID))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to store equipment")
	}
	if added.Val() == 0 {
		return nil, errors.AlreadyExistsf("item %d already equipped by character %d", input.ItemID, input.CharacterID).
			WithMeta("character_id", input.CharacterID).
			WithMeta("item_id", input.ItemID)
	}

	slog.DebugContext(ctx, "equipment added", "character_id", input.CharacterID, "item_id", input.ItemID)
	return &AddEquipmentOutput{}, nil
}

func (r *redisRepository) requireItem(ctx context.Context, itemID int64) error {
	exists, err := r.client.Exists(ctx, redisclient.ItemKey(itemID)).Result()
	if err != nil {
		return errors.Wrap(err, "failed to check item existence")
	}
	if exists == 0 {
		return errors.NotFoundf("item with ID %d not found", itemID).WithMeta("item_id", itemID)
	}
	return nil
}

func (rec *characterRecord) toEntity(equipped []*entities.Item) *entities.Character {
	if equipped == nil {
		equipped = []*entities.Item{}
	}
	return &entities.Character{
		ID:        rec.ID,
		Name:      rec.Name,
		Equipped:  equipped,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
