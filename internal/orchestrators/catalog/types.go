package catalog

import "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"

// CreateCharacterInput defines the request for creating a character
type CreateCharacterInput struct {
	Name string
}

// CharacterOutput carries a single character
type CharacterOutput struct {
	Character *entities.Character
}

// GetCharacterInput defines the request for getting a character
type GetCharacterInput struct {
	ID int64
}

// ListCharactersInput defines the request for listing all characters
type ListCharactersInput struct{}

// ListCharactersByNameInput defines the request for listing characters by name
type ListCharactersByNameInput struct {
	Name string
}

// ListCharactersOutput carries a list of characters
type ListCharactersOutput struct {
	Characters []*entities.Character
}

// UpdateCharacterInput defines the request for updating a character.
// EquippedItemIDs replaces the whole equipped set.
type UpdateCharacterInput struct {
	ID              int64
	Name            string
	EquippedItemIDs []int64
}

// DeleteCharacterInput defines the request for deleting a character
type DeleteCharacterInput struct {
	ID int64
}

// DeleteOutput reports a completed delete
type DeleteOutput struct {
	Deleted bool
}

// CreateItemInput defines the request for creating an item
type CreateItemInput struct {
	Name     string
	Category entities.Category
	Agility  int
	Strength int
	Stamina  int
}

// ItemOutput carries a single item
type ItemOutput struct {
	Item *entities.Item
}

// GetItemInput defines the request for getting an item
type GetItemInput struct {
	ID int64
}

// ListItemsInput defines the request for listing all items
type ListItemsInput struct{}

// ListItemsByNameInput defines the request for listing items by name
type ListItemsByNameInput struct {
	Name string
}

// ListItemsByCategoryInput defines the request for listing items of a category
type ListItemsByCategoryInput struct {
	Category entities.Category
}

// ListItemsByCharacterInput defines the request for listing a character's
// equipped items
type ListItemsByCharacterInput struct {
	CharacterID int64
}

// ListItemsOutput carries a list of items
type ListItemsOutput struct {
	Items []*entities.Item
}

// UpdateItemInput defines the request for updating an item
type UpdateItemInput struct {
	ID       int64
	Name     string
	Category entities.Category
	Agility  int
	Strength int
	Stamina  int
}

// DeleteItemInput defines the request for deleting an item
type DeleteItemInput struct {
	ID int64
}

// CreateMonsterInput defines the request for creating a monster
type CreateMonsterInput struct {
	Name   string
	Health int
	Damage int
}

// MonsterOutput carries a single monster
type MonsterOutput struct {
	Monster *entities.Monster
}

// GetMonsterInput defines the request for getting a monster
type GetMonsterInput struct {
	ID int64
}

// ListMonstersInput defines the request for listing all monsters
type ListMonstersInput struct{}

// ListMonstersByNameInput defines the request for listing monsters by name
type ListMonstersByNameInput struct {
	Name string
}

// ListMonstersOutput carries a list of monsters
type ListMonstersOutput struct {
	Monsters []*entities.Monster
}

// UpdateMonsterInput defines the request for updating a monster.
// DropItemIDs replaces the whole loot table.
type UpdateMonsterInput struct {
	ID          int64
	Name        string
	Health      int
	Damage      int
	DropItemIDs []int64
}

// DeleteMonsterInput defines the request for deleting a monster
type DeleteMonsterInput struct {
	ID int64
}
