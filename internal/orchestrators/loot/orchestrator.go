// Package loot implements the loot engine that maintains monster loot tables
package loot

//go:generate mockgen -destination=mock/mock_service.go -package=lootmock github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/loot Service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/events"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/pkg/clock"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/items"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/monsters"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/telemetry"
)

// Service defines the loot engine operations
type Service interface {
	// AddDrop adds one item to a monster's loot table.
	// A drop chance outside [0, 1] fails with errors.OutOfRange before any
	// lookup. Missing monster or item fails with errors.NotFound. A pair that
	// is already stored surfaces as errors.Internal carrying the store error.
	AddDrop(ctx context.Context, input *AddDropInput) (*AddDropOutput, error)

	// ReplaceLootTable rebuilds the loot table from ItemIDs, every entry with
	// entities.DefaultDropChance. Duplicate ids collapse to their first
	// occurrence. Returns errors.NotFound for the monster or any item.
	ReplaceLootTable(ctx context.Context, input *ReplaceLootTableInput) (*ReplaceLootTableOutput, error)
}

// Config holds the dependencies for the loot engine
type Config struct {
	MonsterRepo monsters.Repository
	ItemRepo    items.Repository
	// Publisher is optional; nil disables events
	Publisher events.Publisher
	Clock     clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.MonsterRepo == nil {
		vb.RequiredField("MonsterRepo")
	}
	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}
	return vb.Build()
}

type orchestrator struct {
	monsterRepo monsters.Repository
	itemRepo    items.Repository
	publisher   events.Publisher
	clock       clock.Clock
	tracer      trace.Tracer
}

// New creates a new loot engine with the provided dependencies
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		monsterRepo: cfg.MonsterRepo,
		itemRepo:    cfg.ItemRepo,
		publisher:   cfg.Publisher,
		clock:       c,
		tracer:      telemetry.Tracer(),
	}, nil
}

// ValidateDropChance reports a chance outside [0, 1] as errors.OutOfRange
func ValidateDropChance(chance float64) error {
	vb := errors.NewValidationBuilder()
	errors.ValidateFloatRange("drop_chance", chance, entities.MinDropChance, entities.MaxDropChance, vb)
	if err := vb.Build(); err != nil {
		return errors.WrapWithCode(err, errors.CodeOutOfRange, "invalid drop chance")
	}
	return nil
}

func (o *orchestrator) AddDrop(ctx context.Context, input *AddDropInput) (_ *AddDropOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.tracer.Start(ctx, "loot.AddDrop", trace.WithAttributes(
		attribute.Int64("monster_id", input.MonsterID),
		attribute.Int64("item_id", input.ItemID),
		attribute.Float64("drop_chance", input.DropChance),
	))
	defer func() { telemetry.End(span, err) }()

	if err := ValidateDropChance(input.DropChance); err != nil {
		return nil, err
	}

	monsterOut, err := o.monsterRepo.Get(ctx, monsters.GetInput{ID: input.MonsterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster %d", input.MonsterID)
	}
	monster := monsterOut.Monster

	itemOut, err := o.itemRepo.Get(ctx, items.GetInput{ID: input.ItemID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get item %d", input.ItemID)
	}
	item := itemOut.Item

	_, err = o.monsterRepo.AddDrop(ctx, monsters.AddDropInput{
		MonsterID:  monster.ID,
		ItemID:     item.ID,
		DropChance: input.DropChance,
	})
	if err != nil {
		if errors.IsAlreadyExists(err) {
			return nil, errors.WrapWithCodef(err, errors.CodeInternal,
				"failed to add item %d to loot table of monster %d", item.ID, monster.ID)
		}
		return nil, errors.Wrap(err, "failed to add drop")
	}

	monster.LootTable = append(monster.LootTable, &entities.LootEntry{Item: item, DropChance: input.DropChance})

	slog.InfoContext(ctx, "drop added",
		"monster_id", monster.ID,
		"item_id", item.ID,
		"drop_chance", input.DropChance)
	chance := input.DropChance
	events.Publish(ctx, o.publisher, events.Event{
		Type:       events.TypeDropAdded,
		MonsterID:  monster.ID,
		ItemID:     item.ID,
		DropChance: &chance,
		At:         o.clock.Now(),
	})

	return &AddDropOutput{Monster: monster}, nil
}

func (o *orchestrator) ReplaceLootTable(ctx context.Context, input *ReplaceLootTableInput) (_ *ReplaceLootTableOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.tracer.Start(ctx, "loot.ReplaceLootTable", trace.WithAttributes(
		attribute.Int64("monster_id", input.MonsterID),
		attribute.Int("item_count", len(input.ItemIDs)),
	))
	defer func() { telemetry.End(span, err) }()

	monsterOut, err := o.monsterRepo.Get(ctx, monsters.GetInput{ID: input.MonsterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster %d", input.MonsterID)
	}
	monster := monsterOut.Monster

	ids := entities.DistinctIDs(input.ItemIDs)
	table := make([]*entities.LootEntry, 0, len(ids))
	for _, id := range ids {
		itemOut, err := o.itemRepo.Get(ctx, items.GetInput{ID: id})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve item %d", id)
		}
		table = append(table, &entities.LootEntry{Item: itemOut.Item, DropChance: entities.DefaultDropChance})
	}

	next := &entities.Monster{
		ID:        monster.ID,
		Name:      monster.Name,
		Health:    monster.Health,
		Damage:    monster.Damage,
		LootTable: table,
	}
	if input.Stats != nil {
		next.Name = input.Stats.Name
		next.Health = input.Stats.Health
		next.Damage = input.Stats.Damage
	}

	updated, err := o.monsterRepo.Update(ctx, monsters.UpdateInput{Monster: next})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to replace loot table of monster %d", monster.ID)
	}

	slog.InfoContext(ctx, "loot table replaced",
		"monster_id", monster.ID,
		"item_count", len(table))
	events.Publish(ctx, o.publisher, events.Event{
		Type:      events.TypeLootTableReplaced,
		MonsterID: monster.ID,
		ItemIDs:   updated.Monster.DropItemIDs(),
		At:        o.clock.Now(),
	})

	return &ReplaceLootTableOutput{Monster: updated.Monster}, nil
}
