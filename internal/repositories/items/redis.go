package items

import (
	"context"
	"encoding/json"
	"log/slog"

	redis "github.com/redis/go-redis/v9"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/pkg/clock"
	redisclient "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/redis"
)

type redisRepository struct {
	client redisclient.Client
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis item repository.
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

// NewRedis creates a new Redis-backed item repository
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

func (r *redisRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}

	id, err := r.client.Incr(ctx, redisclient.ItemSequenceKey).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to allocate item id")
	}

	item := *input.Item
	item.ID = id
	now := r.clock.Now()
	item.CreatedAt, item.UpdatedAt = now, now

	data, err := json.Marshal(item)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal item")
	}

	member := redisclient.FormatID(id)
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, redisclient.ItemKey(id), data, 0)
	pipe.ZAdd(ctx, redisclient.ItemsAllKey, redis.Z{Score: float64(id), Member: member})
	pipe.SAdd(ctx, redisclient.ItemNameKey(item.Name), member)
	pipe.SAdd(ctx, redisclient.ItemCategoryKey(item.Category), member)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}

	slog.DebugContext(ctx, "item created", "item_id", id, "category", item.Category)
	return &CreateOutput{Item: &item}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	item, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Item: item}, nil
}

func (r *redisRepository) load(ctx context.Context, id int64) (*entities.Item, error) {
	raw, err := r.client.Get(ctx, redisclient.ItemKey(id)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("item with ID %d not found", id)
		}
		return nil, errors.Wrapf(err, "failed to get item %d", id)
	}

	var item entities.Item
	if err := json.Unmarshal([]byte(raw), &item); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal item")
	}
	return &item, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := redisclient.OrderedIDs(ctx, r.client, redisclient.ItemsAllKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}
	return r.loadAll(ctx, ids)
}

func (r *redisRepository) ListByName(ctx context.Context, input ListByNameInput) (*ListOutput, error) {
	ids, err := redisclient.SetIDs(ctx, r.client, redisclient.ItemNameKey(input.Name))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items by name")
	}
	return r.loadAll(ctx, ids)
}

func (r *redisRepository) ListByCategory(ctx context.Context, input ListByCategoryInput) (*ListOutput, error) {
	ids, err := redisclient.SetIDs(ctx, r.client, redisclient.ItemCategoryKey(input.Category))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items by category")
	}
	return r.loadAll(ctx, ids)
}

func (r *redisRepository) ListByCharacter(ctx context.Context, input ListByCharacterInput) (*ListOutput, error) {
	ids, err := redisclient.OrderedIDs(ctx, r.client, redisclient.CharacterEquipmentKey(input.CharacterID))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items by character")
	}
	return r.loadAll(ctx, ids)
}

func (r *redisRepository) loadAll(ctx context.Context, ids []int64) (*ListOutput, error) {
	loaded, err := redisclient.LoadItems(ctx, r.client, ids)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load items")
	}
	return &ListOutput{Items: loaded}, nil
}

func (r *redisRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Item == nil {
		return nil, errors.InvalidArgument(errItemNil)
	}

	existing, err := r.load(ctx, input.Item.ID)
	if err != nil {
		return nil, err
	}

	item := *input.Item
	item.CreatedAt = existing.CreatedAt
	item.UpdatedAt = r.clock.Now()

	data, err := json.Marshal(item)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal item")
	}

	member := redisclient.FormatID(item.ID)
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, redisclient.ItemKey(item.ID), data, 0)
	if existing.Name != item.Name {
		pipe.SRem(ctx, redisclient.ItemNameKey(existing.Name), member)
		pipe.SAdd(ctx, redisclient.ItemNameKey(item.Name), member)
	}
	if existing.Category != item.Category {
		pipe.SRem(ctx, redisclient.ItemCategoryKey(existing.Category), member)
		pipe.SAdd(ctx, redisclient.ItemCategoryKey(item.Category), member)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to update item %d", item.ID)
	}

	return &UpdateOutput{Item: &item}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	existing, err := r.load(ctx, input.ID)
	if err != nil {
		return nil, err
	}

	equippedBy, err := r.client.SCard(ctx, redisclient.ItemEquippedByKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check item references")
	}
	droppedBy, err := r.client.SCard(ctx, redisclient.ItemDroppedByKey(input.ID)).Result()
	if err != nil {
		return nil, errors.Wrap(err, "failed to check item references")
	}
	if equippedBy > 0 || droppedBy > 0 {
		return nil, errors.FailedPreconditionf("item %d is still equipped or dropped", input.ID).
			WithMeta("item_id", input.ID)
	}

	member := redisclient.FormatID(input.ID)
	pipe := r.client.TxPipeline()
	pipe.Del(ctx, redisclient.ItemKey(input.ID))
	pipe.ZRem(ctx, redisclient.ItemsAllKey, member)
	pipe.SRem(ctx, redisclient.ItemNameKey(existing.Name), member)
	pipe.SRem(ctx, redisclient.ItemCategoryKey(existing.Category), member)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.Wrapf(err, "failed to delete item %d", input.ID)
	}

	slog.DebugContext(ctx, "item deleted", "item_id", input.ID)
	return &DeleteOutput{}, nil
}
