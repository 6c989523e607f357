package v1

import (
	"time"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
)

// ItemResponse is the wire form of an item
type ItemResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Agility   int       `json:"agility"`
	Strength  int       `json:"strength"`
	Stamina   int       `json:"stamina"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// CharacterResponse is the wire form of a character
type CharacterResponse struct {
	ID        int64          `json:"id"`
	Name      string         `json:"name"`
	Equipped  []ItemResponse `json:"equipped"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// LootEntryResponse is the wire form of one loot table entry
type LootEntryResponse struct {
	Item       ItemResponse `json:"item"`
	DropChance float64      `json:"drop_chance"`
}

// MonsterResponse is the wire form of a monster
type MonsterResponse struct {
	ID        int64               `json:"id"`
	Name      string              `json:"name"`
	Health    int                 `json:"health"`
	Damage    int                 `json:"damage"`
	LootTable []LootEntryResponse `json:"loot_table"`
	CreatedAt time.Time           `json:"created_at"`
	UpdatedAt time.Time           `json:"updated_at"`
}

// CreateCharacterRequest is the body of POST /characters
type CreateCharacterRequest struct {
	Name string `json:"name"`
}

// UpdateCharacterRequest is the body of PUT /characters/{id}
type UpdateCharacterRequest struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	EquippedItemIDs []int64 `json:"equipped_item_ids"`
}

// ItemRequest is the body of POST /items and PUT /items/{id}
type ItemRequest struct {
	ID       int64  `json:"id,omitempty"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Agility  int    `json:"agility"`
	Strength int    `json:"strength"`
	Stamina  int    `json:"stamina"`
}

// CreateMonsterRequest is the body of POST /monsters
type CreateMonsterRequest struct {
	Name   string `json:"name"`
	Health int    `json:"health"`
	Damage int    `json:"damage"`
}

// UpdateMonsterRequest is the body of PUT /monsters/{id}
type UpdateMonsterRequest struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Health      int     `json:"health"`
	Damage      int     `json:"damage"`
	DropItemIDs []int64 `json:"drop_item_ids"`
}

// AddDropRequest is the body of POST /monsters/{id}/drops
type AddDropRequest struct {
	ItemID     int64   `json:"item_id"`
	DropChance float64 `json:"drop_chance"`
}

func convertItem(item *entities.Item) ItemResponse {
	if item == nil {
		return ItemResponse{}
	}
	return ItemResponse{
		ID:        item.ID,
		Name:      item.Name,
		Category:  item.Category.String(),
		Agility:   item.Agility,
		Strength:  item.Strength,
		Stamina:   item.Stamina,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func convertItems(list []*entities.Item) []ItemResponse {
	out := make([]ItemResponse, 0, len(list))
	for _, item := range list {
		if item != nil {
			out = append(out, convertItem(item))
		}
	}
	return out
}

func convertCharacter(char *entities.Character) CharacterResponse {
	if char == nil {
		return CharacterResponse{Equipped: []ItemResponse{}}
	}
	return CharacterResponse{
		ID:        char.ID,
		Name:      char.Name,
		Equipped:  convertItems(char.Equipped),
		CreatedAt: char.CreatedAt,
		UpdatedAt: char.UpdatedAt,
	}
}

func convertCharacters(list []*entities.Character) []CharacterResponse {
	out := make([]CharacterResponse, 0, len(list))
	for _, char := range list {
		if char != nil {
			out = append(out, convertCharacter(char))
		}
	}
	return out
}

func convertMonster(m *entities.Monster) MonsterResponse {
	if m == nil {
		return MonsterResponse{LootTable: []LootEntryResponse{}}
	}
	table := make([]LootEntryResponse, 0, len(m.LootTable))
	for _, entry := range m.LootTable {
		if entry == nil || entry.Item == nil {
			continue
		}
		table = append(table, LootEntryResponse{Item: convertItem(entry.Item), DropChance: entry.DropChance})
	}
	return MonsterResponse{
		ID:        m.ID,
		Name:      m.Name,
		Health:    m.Health,
		Damage:    m.Damage,
		LootTable: table,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func convertMonsters(list []*entities.Monster) []MonsterResponse {
	out := make([]MonsterResponse, 0, len(list))
	for _, m := range list {
		if m != nil {
			out = append(out, convertMonster(m))
		}
	}
	return out
}

func parseCategory(name string) entities.Category {
	// unknown names fall through to validation
	c, _ := entities.ParseCategory(name)
	return c
}
