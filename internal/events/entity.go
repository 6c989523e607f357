package events

import (
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"
)

// Entity types used as bus event source and target
const (
	EntityCharacter = "character"
	EntityItem      = "item"
	EntityMonster   = "monster"
)

// Context keys set on every bus event
const (
	KeyCharacterID = "character_id"
	KeyMonsterID   = "monster_id"
	KeyItemID      = "item_id"
	KeyItemIDs     = "item_ids"
	KeyDropChance  = "drop_chance"
	KeyAt          = "at"
)

// Ref identifies a catalog record on the bus
type Ref struct {
	Kind string
	ID   int64
}

var _ core.Entity = Ref{}

// GetID returns the record id in decimal
func (r Ref) GetID() string {
	return strconv.FormatInt(r.ID, 10)
}

// GetType returns the record kind
func (r Ref) GetType() string {
	return r.Kind
}

// source is the character or monster that changed. Item events without an
// owner use the item itself.
func (e Event) source() core.Entity {
	switch {
	case e.CharacterID != 0:
		return Ref{Kind: EntityCharacter, ID: e.CharacterID}
	case e.MonsterID != 0:
		return Ref{Kind: EntityMonster, ID: e.MonsterID}
	case e.ItemID != 0:
		return Ref{Kind: EntityItem, ID: e.ItemID}
	}
	return nil
}

// target is the item an owner gained, when there is one
func (e Event) target() core.Entity {
	if e.ItemID == 0 || (e.CharacterID == 0 && e.MonsterID == 0) {
		return nil
	}
	return Ref{Kind: EntityItem, ID: e.ItemID}
}
