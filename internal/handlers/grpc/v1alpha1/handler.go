// Package v1alpha1 serves the catalog over gRPC
package v1alpha1

import (
	"context"

	"google.golang.org/protobuf/types/known/structpb"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/catalog"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/equip"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/loot"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CatalogService catalog.Service
	EquipService   equip.Service
	LootService    loot.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if c.CatalogService == nil {
		return errors.InvalidArgument("catalog service is required")
	}
	if c.EquipService == nil {
		return errors.InvalidArgument("equip service is required")
	}
	if c.LootService == nil {
		return errors.InvalidArgument("loot service is required")
	}
	return nil
}

// Handler implements CatalogServiceServer
type Handler struct {
	catalog catalog.Service
	equip   equip.Service
	loot    loot.Service
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		catalog: cfg.CatalogService,
		equip:   cfg.EquipService,
		loot:    cfg.LootService,
	}, nil
}

// CreateCharacter creates a character with an empty equipped set
func (h *Handler) CreateCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in := newRequest(req)
	out, err := h.catalog.CreateCharacter(ctx, &catalog.CreateCharacterInput{Name: in.str("name")})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return characterResponse(out.Character)
}

// GetCharacter retrieves a character by id
func (h *Handler) GetCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := newRequest(req).id("id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.GetCharacter(ctx, &catalog.GetCharacterInput{ID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return characterResponse(out.Character)
}

// ListCharacters returns every character
func (h *Handler) ListCharacters(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.catalog.ListCharacters(ctx, &catalog.ListCharactersInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return charactersResponse(out.Characters)
}

// ListCharactersByName returns characters with an exact name
func (h *Handler) ListCharactersByName(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.catalog.ListCharactersByName(ctx, &catalog.ListCharactersByNameInput{Name: newRequest(req).str("name")})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return charactersResponse(out.Characters)
}

// UpdateCharacter renames a character and replaces its equipped set
func (h *Handler) UpdateCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in := newRequest(req)
	id, err := in.id("id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	itemIDs, err := in.ids("equipped_item_ids")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.UpdateCharacter(ctx, &catalog.UpdateCharacterInput{
		ID:              id,
		Name:            in.str("name"),
		EquippedItemIDs: itemIDs,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return characterResponse(out.Character)
}

// DeleteCharacter removes a character and its equipment records
func (h *Handler) DeleteCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := newRequest(req).id("id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.DeleteCharacter(ctx, &catalog.DeleteCharacterInput{ID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return deletedResponse(out.Deleted)
}

// EquipItem adds one item to a character's equipped set
func (h *Handler) EquipItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in := newRequest(req)
	characterID, err := in.id("character_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	itemID, err := in.id("item_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.equip.EquipItem(ctx, &equip.EquipItemInput{CharacterID: characterID, ItemID: itemID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return characterResponse(out.Character)
}

func (h *Handler) itemFieldsFrom(in request) (name string, category entities.Category, stats [3]int, err error) {
	for idx, field := range []string{"agility", "strength", "stamina"} {
		v, convErr := in.integer(field)
		if convErr != nil {
			return "", "", stats, convErr
		}
		stats[idx] = int(v)
	}
	category, _ = entities.ParseCategory(in.str("category"))
	return in.str("name"), category, stats, nil
}

// CreateItem creates an item
func (h *Handler) CreateItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	name, category, stats, err := h.itemFieldsFrom(newRequest(req))
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.CreateItem(ctx, &catalog.CreateItemInput{
		Name:     name,
		Category: category,
		Agility:  stats[0],
		Strength: stats[1],
		Stamina:  stats[2],
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return itemResponse(out.Item)
}

// GetItem retrieves an item by id
func (h *Handler) GetItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := newRequest(req).id("id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.GetItem(ctx, &catalog.GetItemInput{ID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return itemResponse(out.Item)
}

// ListItems returns every item
func (h *Handler) ListItems(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.catalog.ListItems(ctx, &catalog.ListItemsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return itemsResponse(out.Items)
}

// ListItemsByName returns items with an exact name
func (h *Handler) ListItemsByName(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.catalog.ListItemsByName(ctx, &catalog.ListItemsByNameInput{Name: newRequest(req).str("name")})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return itemsResponse(out.Items)
}

// ListItemsByCategory returns items of one category
func (h *Handler) ListItemsByCategory(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	category, _ := entities.ParseCategory(newRequest(req).str("category"))
	out, err := h.catalog.ListItemsByCategory(ctx, &catalog.ListItemsByCategoryInput{Category: category})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return itemsResponse(out.Items)
}

// ListItemsByCharacter returns the items a character has equipped
func (h *Handler) ListItemsByCharacter(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	characterID, err := newRequest(req).id("character_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.ListItemsByCharacter(ctx, &catalog.ListItemsByCharacterInput{CharacterID: characterID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return itemsResponse(out.Items)
}

// UpdateItem rewrites an item's fields
func (h *Handler) UpdateItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in := newRequest(req)
	id, err := in.id("id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	name, category, stats, err := h.itemFieldsFrom(in)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.UpdateItem(ctx, &catalog.UpdateItemInput{
		ID:       id,
		Name:     name,
		Category: category,
		Agility:  stats[0],
		Strength: stats[1],
		Stamina:  stats[2],
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return itemResponse(out.Item)
}

// DeleteItem removes an item that nothing references
func (h *Handler) DeleteItem(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := newRequest(req).id("id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.DeleteItem(ctx, &catalog.DeleteItemInput{ID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return deletedResponse(out.Deleted)
}

// CreateMonster creates a monster with an empty loot table
func (h *Handler) CreateMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in := newRequest(req)
	health, err := in.integer("health")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	damage, err := in.integer("damage")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.CreateMonster(ctx, &catalog.CreateMonsterInput{
		Name:   in.str("name"),
		Health: int(health),
		Damage: int(damage),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return monsterResponse(out.Monster)
}

// GetMonster retrieves a monster by id
func (h *Handler) GetMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := newRequest(req).id("id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.GetMonster(ctx, &catalog.GetMonsterInput{ID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return monsterResponse(out.Monster)
}

// ListMonsters returns every monster
func (h *Handler) ListMonsters(ctx context.Context, _ *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.catalog.ListMonsters(ctx, &catalog.ListMonstersInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return monstersResponse(out.Monsters)
}

// ListMonstersByName returns monsters with an exact name
func (h *Handler) ListMonstersByName(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	out, err := h.catalog.ListMonstersByName(ctx, &catalog.ListMonstersByNameInput{Name: newRequest(req).str("name")})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return monstersResponse(out.Monsters)
}

// UpdateMonster rewrites a monster's stats and replaces its loot table
func (h *Handler) UpdateMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in := newRequest(req)
	id, err := in.id("id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	health, err := in.integer("health")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	damage, err := in.integer("damage")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	dropIDs, err := in.ids("drop_item_ids")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.UpdateMonster(ctx, &catalog.UpdateMonsterInput{
		ID:          id,
		Name:        in.str("name"),
		Health:      int(health),
		Damage:      int(damage),
		DropItemIDs: dropIDs,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return monsterResponse(out.Monster)
}

// DeleteMonster removes a monster and its loot table
func (h *Handler) DeleteMonster(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	id, err := newRequest(req).id("id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.catalog.DeleteMonster(ctx, &catalog.DeleteMonsterInput{ID: id})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return deletedResponse(out.Deleted)
}

// AddDrop adds one item to a monster's loot table
func (h *Handler) AddDrop(ctx context.Context, req *structpb.Struct) (*structpb.Struct, error) {
	in := newRequest(req)
	monsterID, err := in.id("monster_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	itemID, err := in.id("item_id")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	chance, err := in.float("drop_chance")
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	out, err := h.loot.AddDrop(ctx, &loot.AddDropInput{MonsterID: monsterID, ItemID: itemID, DropChance: chance})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return monsterResponse(out.Monster)
}
