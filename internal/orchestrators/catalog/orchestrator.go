// Package catalog implements the CRUD side of the catalog: characters, items
// and monsters. Relationship rewrites are delegated to the equip and loot
// engines.
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/catalog Service

import (
	"context"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/events"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/equip"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/loot"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/pkg/clock"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/characters"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/items"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/monsters"
)

// Service defines the catalog operations.
// Lookups by name and by character fail with errors.NotFound when nothing
// matches; the list-all and by-category lookups return empty lists.
type Service interface {
	CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CharacterOutput, error)
	GetCharacter(ctx context.Context, input *GetCharacterInput) (*CharacterOutput, error)
	ListCharacters(ctx context.Context, input *ListCharactersInput) (*ListCharactersOutput, error)
	ListCharactersByName(ctx context.Context, input *ListCharactersByNameInput) (*ListCharactersOutput, error)
	UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*CharacterOutput, error)
	DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteOutput, error)

	CreateItem(ctx context.Context, input *CreateItemInput) (*ItemOutput, error)
	GetItem(ctx context.Context, input *GetItemInput) (*ItemOutput, error)
	ListItems(ctx context.Context, input *ListItemsInput) (*ListItemsOutput, error)
	ListItemsByName(ctx context.Context, input *ListItemsByNameInput) (*ListItemsOutput, error)
	ListItemsByCategory(ctx context.Context, input *ListItemsByCategoryInput) (*ListItemsOutput, error)
	ListItemsByCharacter(ctx context.Context, input *ListItemsByCharacterInput) (*ListItemsOutput, error)
	UpdateItem(ctx context.Context, input *UpdateItemInput) (*ItemOutput, error)
	// DeleteItem returns errors.FailedPrecondition while the item is
	// equipped or dropped
	DeleteItem(ctx context.Context, input *DeleteItemInput) (*DeleteOutput, error)

	CreateMonster(ctx context.Context, input *CreateMonsterInput) (*MonsterOutput, error)
	GetMonster(ctx context.Context, input *GetMonsterInput) (*MonsterOutput, error)
	ListMonsters(ctx context.Context, input *ListMonstersInput) (*ListMonstersOutput, error)
	ListMonstersByName(ctx context.Context, input *ListMonstersByNameInput) (*ListMonstersOutput, error)
	UpdateMonster(ctx context.Context, input *UpdateMonsterInput) (*MonsterOutput, error)
	DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteOutput, error)
}

// Config holds the dependencies for the catalog service
type Config struct {
	CharacterRepo characters.Repository
	ItemRepo      items.Repository
	MonsterRepo   monsters.Repository
	EquipService  equip.Service
	LootService   loot.Service
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
	if c.MonsterRepo == nil {
		vb.RequiredField("MonsterRepo")
	}
	if c.EquipService == nil {
		vb.RequiredField("EquipService")
	}
	if c.LootService == nil {
		vb.RequiredField("LootService")
	}
	return vb.Build()
}

type orchestrator struct {
	characterRepo characters.Repository
	itemRepo      items.Repository
	monsterRepo   monsters.Repository
	equip         equip.Service
	loot          loot.Service
	publisher     events.Publisher
	clock         clock.Clock
}

// New creates a new catalog service with the provided dependencies
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
		monsterRepo:   cfg.MonsterRepo,
		equip:         cfg.EquipService,
		loot:          cfg.LootService,
		publisher:     cfg.Publisher,
		clock:         c,
	}, nil
}

func (o *orchestrator) publish(ctx context.Context, event events.Event) {
	event.At = o.clock.Now()
	events.Publish(ctx, o.publisher, event)
}
