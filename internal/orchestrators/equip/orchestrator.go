// Package equip implements the equip engine: the rules for putting items on a
// character and for rebuilding a character's equipped set.
package equip

//go:generate mockgen -destination=mock/mock_service.go -package=equipmock github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/equip Service

import (
	"context"
	"log/slog"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/events"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/pkg/clock"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/characters"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/items"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/telemetry"
)

// Service defines the equip engine operations
type Service interface {
	// EquipItem adds one item to a character's equipped set.
	// Checks run in order: character exists, item exists, item not yet
	// equipped (errors.AlreadyEquipped), no equipped item of the same
	// category (errors.CategoryConflict). Nothing is written on failure.
	EquipItem(ctx context.Context, input *EquipItemInput) (*EquipItemOutput, error)

	// ReplaceEquipment rebuilds the equipped set from ItemIDs. Duplicate ids
	// collapse to their first occurrence. Categories are not checked on this
	// path. Returns errors.NotFound for the character or any item.
	ReplaceEquipment(ctx context.Context, input *ReplaceEquipmentInput) (*ReplaceEquipmentOutput, error)
}

// Config holds the dependencies for the equip engine
type Config struct {
	CharacterRepo characters.Repository
	ItemRepo      items.Repository
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
	if c.CharacterRepo == nil {
		vb.RequiredField("CharacterRepo")
	}
	if c.ItemRepo == nil {
		vb.RequiredField("ItemRepo")
	}
	return vb.Build()
}

type orchestrator struct {
	characterRepo characters.Repository
	itemRepo      items.Repository
	publisher     events.Publisher
	clock         clock.Clock
	tracer        trace.Tracer
}

// New creates a new equip engine with the provided dependencies
func New(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	c := cfg.Clock
	if c == nil {
		c = clock.New()
	}

	return &orchestrator{
		characterRepo: cfg.CharacterRepo,
		itemRepo:      cfg.ItemRepo,
		publisher:     cfg.Publisher,
		clock:         c,
		tracer:        telemetry.Tracer(),
	}, nil
}

func (o *orchestrator) EquipItem(ctx context.Context, input *EquipItemInput) (_ *EquipItemOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.tracer.Start(ctx, "equip.EquipItem", trace.WithAttributes(
		attribute.Int64("character_id", input.CharacterID),
		attribute.Int64("item_id", input.ItemID),
	))
	defer func() { telemetry.End(span, err) }()

	charOut, err := o.characterRepo.Get(ctx, characters.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %d", input.CharacterID)
	}
	char := charOut.Character

	itemOut, err := o.itemRepo.Get(ctx, items.GetInput{ID: input.ItemID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get item %d", input.ItemID)
	}
	item := itemOut.Item

	if char.HasEquipped(item.ID) {
		return nil, errors.AlreadyEquippedf("item %d is already equipped by character %d", item.ID, char.ID).
			WithMeta("character_id", char.ID).
			WithMeta("item_id", item.ID)
	}

	if held := char.EquippedInCategory(item.Category); held != nil {
		return nil, errors.CategoryConflictf("character %d already has a %s equipped", char.ID, item.Category).
			WithMeta("character_id", char.ID).
			WithMeta("item_id", item.ID).
			WithMeta("equipped_item_id", held.ID).
			WithMeta("category", string(item.Category))
	}

	_, err = o.characterRepo.AddEquipment(ctx, characters.AddEquipmentInput{
		CharacterID: char.ID,
		ItemID:      item.ID,
	})
	if err != nil {
		if errors.IsAlreadyExists(err) {
			// a concurrent equip of the same pair won the insert
			return nil, errors.WrapWithCodef(err, errors.CodeAlreadyEquipped,
				"item %d is already equipped by character %d", item.ID, char.ID)
		}
		return nil, errors.Wrap(err, "failed to equip item")
	}

	char.Equipped = append(char.Equipped, item)

	slog.InfoContext(ctx, "item equipped",
		"character_id", char.ID,
		"item_id", item.ID,
		"category", string(item.Category))
	events.Publish(ctx, o.publisher, events.Event{
		Type:        events.TypeItemEquipped,
		CharacterID: char.ID,
		ItemID:      item.ID,
		At:          o.clock.Now(),
	})

	return &EquipItemOutput{Character: char}, nil
}

func (o *orchestrator) ReplaceEquipment(ctx context.Context, input *ReplaceEquipmentInput) (_ *ReplaceEquipmentOutput, err error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ctx, span := o.tracer.Start(ctx, "equip.ReplaceEquipment", trace.WithAttributes(
		attribute.Int64("character_id", input.CharacterID),
		attribute.Int("item_count", len(input.ItemIDs)),
	))
	defer func() { telemetry.End(span, err) }()

	charOut, err := o.characterRepo.Get(ctx, characters.GetInput{ID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %d", input.CharacterID)
	}
	char := charOut.Character

	ids := entities.DistinctIDs(input.ItemIDs)
	equipped := make([]*entities.Item, 0, len(ids))
	for _, id := range ids {
		itemOut, err := o.itemRepo.Get(ctx, items.GetInput{ID: id})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to resolve item %d", id)
		}
		equipped = append(equipped, itemOut.Item)
	}

	name := char.Name
	if input.Name != "" {
		name = input.Name
	}

	updated, err := o.characterRepo.Update(ctx, characters.UpdateInput{Character: &entities.Character{
		ID:       char.ID,
		Name:     name,
		Equipped: equipped,
	}})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to replace equipment of character %d", char.ID)
	}

	slog.InfoContext(ctx, "equipment replaced",
		"character_id", char.ID,
		"item_count", len(equipped))
	events.Publish(ctx, o.publisher, events.Event{
		Type:        events.TypeEquipmentReplaced,
		CharacterID: char.ID,
		ItemIDs:     updated.Character.EquippedIDs(),
		At:          o.clock.Now(),
	})

	return &ReplaceEquipmentOutput{Character: updated.Character}, nil
}
