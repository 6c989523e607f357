package monsters

import (
	"context"
	"encoding/json"
	"log/slog"
	"math"
	"strconv"
	"time"

	redis "github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/pkg/clock"
	redisclient "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/redis"
)

const listConcurrency = 8

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis monster repository.
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

// NewRedis creates a new Redis-backed monster repository
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

// monsterRecord is the serialized monster. Drop chances live in a hash keyed
// by item id, their order in a sorted set.
type monsterRecord struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Health    int       `json:"health"`
	Damage    int       `json:"damage"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Monster == nil {
		return nil, errors.InvalidArgument(errMonsterNil)
	}
	if input.Monster.Health < 0 || input.Monster.Damage < 0 {
		return nil, errors.InvalidArgument("monster violates catalog constraints")
	}

	id, err := r.client.Incr(ctx, redisclient.MonsterSequenceKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate monster id")
	}

	now := r.clock.Now()
	rec := monsterRecord{
		ID:        id,
		Name:      input.Monster.Name,
		Health:    input.Monster.Health,
		Damage:    input.Monster.Damage,
		CreatedAt: now,
		UpdatedAt: now,
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal monster")
	}

	member := redisclient.FormatID(id)
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, redisclient.MonsterKey(id), data, 0)
	pipe.ZAdd(ctx, redisclient.MonstersAllKey, redis.Z{Score: float64(id), Member: member})
	pipe.SAdd(ctx, redisclient.MonsterNameKey(rec.Name), member)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to create monster")
	}

	slog.DebugContext(ctx, "monster created", "monster_id", id)
	return &CreateOutput{Monster: rec.toEntity(nil)}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	m, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Monster: m}, nil
}

func (r *redisRepository) loadRecord(ctx context.Context, id int64) (*monsterRecord, error) {
	raw, err := r.client.Get(ctx, redisclient.MonsterKey(id)).Result()
	if err != nil {
		if redisclient.IsNil(err) {
			return nil, errors.NotFoundf("monster with ID %d not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get monster %d", id)
	}

	var rec monsterRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal monster")
	}
	return &rec, nil
}

func (r *redisRepository) load(ctx context.Context, id int64) (*entities.Monster, error) {
	rec, err := r.loadRecord(ctx, id)
	if err != nil {
		return nil, err
	}

	itemIDs, err := redisclient.OrderedIDs(ctx, r.client, redisclient.MonsterDropOrderKey(id))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read drop order")
	}
	chances, err := r.client.HGetAll(ctx, redisclient.MonsterDropsKey(id)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to read drop chances")
	}
	dropped, err := redisclient.LoadItems(ctx, r.client, itemIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load dropped items")
	}

	table := make([]*entities.LootEntry, 0, len(dropped))
	for _, item := range dropped {
		raw, ok := chances[redisclient.FormatID(item.ID)]
		if !ok {
			continue
		}
		chance, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid drop chance for item %d", item.ID)
		}
		table = append(table, &entities.LootEntry{Item: item, DropChance: chance})
	}
	return rec.toEntity(table), nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := redisclient.OrderedIDs(ctx, r.client, redisclient.MonstersAllKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list monsters")
	}
	return r.loadMany(ctx, ids)
}

func (r *redisRepository) ListByName(ctx context.Context, input ListByNameInput) (*ListOutput, error) {
	ids, err := redisclient.SetIDs(ctx, r.client, redisclient.MonsterNameKey(input.Name))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list monsters by name")
	}
	return r.loadMany(ctx, ids)
}

func (r *redisRepository) loadMany(ctx context.Context, ids []int64) (*ListOutput, error) {
	loaded := make([]*entities.Monster, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(listConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			m, err := r.load(gctx, id)
			if err != nil {
				if errors.IsNotFound(err) {
					return nil
				}
				return err
			}
			loaded[i] = m
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &ListOutput{Monsters: make([]*entities.Monster, 0, len(loaded))}
	for _, m := range loaded {
		if m != nil {
			out.Monsters = append(out.Monsters, m)
		}
	}
	return out, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Monster == nil {
		return nil, errors.InvalidArgument(errMonsterNil)
	}
	m := input.Monster
	if m.Health < 0 || m.Damage < 0 {
		return nil, errors.InvalidArgument("monster violates catalog constraints")
	}

	rec, err := r.loadRecord(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	oldItemIDs, err := redisclient.OrderedIDs(ctx, r.client, redisclient.MonsterDropOrderKey(m.ID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read drop order")
	}

	entries := make([]*entities.LootEntry, 0, len(m.LootTable))
	seen := make(map[int64]bool, len(m.LootTable))
	for _, entry := range m.LootTable {
		if entry == nil || entry.Item == nil {
			continue
		}
		if seen[entry.Item.ID] {
			return nil, errors.AlreadyExistsf("item %d listed twice in loot table", entry.Item.ID).
				WithMeta("monster_id", m.ID).
				WithMeta("item_id", entry.Item.ID)
		}
		if err := checkChance(entry.DropChance, m.ID, entry.Item.ID); err != nil {
			return nil, err
		}
		if err := r.requireItem(ctx, entry.Item.ID); err != nil {
			return nil, err
		}
		seen[entry.Item.ID] = true
		entries = append(entries, entry)
	}

	var base int64
	if len(entries) > 0 {
		base, err = r.client.IncrBy(ctx, redisclient.RelationSequenceKey, int64(len(entries))).Result()
		if err != nil {
			return nil, errors.Wrap(err, "failed to allocate drop order")
		}
	}

	oldName := rec.Name
	rec.Name, rec.Health, rec.Damage = m.Name, m.Health, m.Damage
	rec.UpdatedAt = r.clock.Now()
	data, err := json.Marshal(rec)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal monster")
	}

	member := redisclient.FormatID(m.ID)
	dropsKey := redisclient.MonsterDropsKey(m.ID)
	orderKey := redisclient.MonsterDropOrderKey(m.ID)
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, redisclient.MonsterKey(m.ID), data, 0)
	if oldName != rec.Name {
		pipe.SRem(ctx, redisclient.MonsterNameKey(oldName), member)
		pipe.SAdd(ctx, redisclient.MonsterNameKey(rec.Name), member)
	}
	for _, itemID := range oldItemIDs {
		pipe.SRem(ctx, redisclient.ItemDroppedByKey(itemID), member)
	}
	pipe.Del(ctx, dropsKey, orderKey)
	first := base - int64(len(entries)) + 1
	for i, entry := range entries {
		itemMember := redisclient.FormatID(entry.Item.ID)
		pipe.HSet(ctx, dropsKey, itemMember, formatChance(entry.DropChance))
		pipe.ZAdd(ctx, orderKey, redis.Z{Score: float64(first + int64(i)), Member: itemMember})
		pipe.SAdd(ctx, redisclient.ItemDroppedByKey(entry.Item.ID), member)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update monster %d", m.ID)
	}

	updated, err := r.load(ctx, m.ID)
	if err != nil {
		return nil, err
	}
	return &UpdateOutput{Monster: updated}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	rec, err := r.loadRecord(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	itemIDs, err := redisclient.OrderedIDs(ctx, r.client, redisclient.MonsterDropOrderKey(input.ID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to read drop order")
	}

	member := redisclient.FormatID(input.ID)
	pipe := r.client.TxPipeline()
	pipe.Del(ctx,
		redisclient.MonsterKey(input.ID),
		redisclient.MonsterDropsKey(input.ID),
		redisclient.MonsterDropOrderKey(input.ID),
	)
	pipe.ZRem(ctx, redisclient.MonstersAllKey, member)
	pipe.SRem(ctx, redisclient.MonsterNameKey(rec.Name), member)
	for _, itemID := range itemIDs {
		pipe.SRem(ctx, redisclient.ItemDroppedByKey(itemID), member)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete monster %d", input.ID)
	}

	slog.DebugContext(ctx, "monster deleted", "monster_id", input.ID)
	return &DeleteOutput{}, nil
}

func (r *redisRepository) AddDrop(ctx context.Context, input AddDropInput) (*AddDropOutput, error) {
	if err := checkChance(input.DropChance, input.MonsterID, input.ItemID); err != nil {
		return nil, err
	}

	exists, err := r.client.Exists(ctx, redisclient.MonsterKey(input.MonsterID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check monster existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("monster with ID %d not found", input.MonsterID)
	}
	if err := r.requireItem(ctx, input.ItemID); err != nil {
		return nil, err
	}

	seq, err := r.client.Incr(ctx, redisclient.RelationSequenceKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate drop order")
	}

	itemMember := redisclient.FormatID(input.ItemID)
	pipe := r.client.TxPipeline()
	added := pipe.HSetNX(ctx, redisclient.MonsterDropsKey(input.MonsterID), itemMember, formatChance(input.DropChance))
	pipe.ZAddNX(ctx, redisclient.MonsterDropOrderKey(input.MonsterID), redis.Z{Score: float64(seq), Member: itemMember})
	pipe.SAdd(ctx, redisclient.ItemDroppedByKey(input.ItemID), redisclient.FormatID(input.MonsterID))
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to store drop")
	}
	if !added.Val() {
		return nil, errors.AlreadyExistsf("item %d already dropped by monster %d", input.ItemID, input.MonsterID).
			WithMeta("monster_id", input.MonsterID).
			WithMeta("item_id", input.ItemID)
	}

	slog.DebugContext(ctx, "drop added",
		"monster_id", input.MonsterID, "item_id", input.ItemID, "drop_chance", input.DropChance)
	return &AddDropOutput{}, nil
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

// checkChance mirrors the CHECK constraint of the relational store
func checkChance(chance float64, monsterID, itemID int64) error {
	if math.IsNaN(chance) || chance < entities.MinDropChance || chance > entities.MaxDropChance {
		return errors.OutOfRangef("drop chance %g out of range", chance).
			WithMeta("monster_id", monsterID).
			WithMeta("item_id", itemID)
	}
	return nil
}

func formatChance(chance float64) string {
	return strconv.FormatFloat(chance, 'g', -1, 64)
}

func (rec *monsterRecord) toEntity(table []*entities.LootEntry) *entities.Monster {
	if table == nil {
		table = []*entities.LootEntry{}
	}
	return &entities.Monster{
		ID:        rec.ID,
		Name:      rec.Name,
		Health:    rec.Health,
		Damage:    rec.Damage,
		LootTable: table,
		CreatedAt: rec.CreatedAt,
		UpdatedAt: rec.UpdatedAt,
	}
}
