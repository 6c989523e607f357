package equip

import "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"

// EquipItemInput defines the request for equipping one item
type EquipItemInput struct {
	CharacterID int64
	ItemID      int64
}

// EquipItemOutput defines the response for equipping one item
type EquipItemOutput struct {
	Character *entities.Character
}

// ReplaceEquipmentInput defines the request for rebuilding an equipped set.
// Name renames the character in the same write when non-empty.
type ReplaceEquipmentInput struct {
	CharacterID int64
	Name        string
	ItemIDs     []int64
}

// ReplaceEquipmentOutput defines the response for rebuilding an equipped set
type ReplaceEquipmentOutput struct {
	Character *entities.Character
}
