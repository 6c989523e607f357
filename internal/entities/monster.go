package entities

import "time"

// Monster is an enemy with a loot table
type Monster struct {
	ID        int64        `json:"id"`
	Name      string       `json:"name"`
	Health    int          `json:"health"`
	Damage    int          `json:"damage"`
	LootTable []*LootEntry `json:"loot_table"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// LootEntry pairs an item with the probability that the monster drops it
type LootEntry struct {
	Item       *Item   `json:"item"`
	DropChance float64 `json:"drop_chance"`
}

// Drop chance bounds, inclusive
const (
	MinDropChance = 0.0
	MaxDropChance = 1.0

	// DefaultDropChance is assigned to every entry of a replaced loot table
	DefaultDropChance = 1.0
)

// DropItemIDs returns the item ids of the loot table in table order
func (m *Monster) DropItemIDs() []int64 {
	ids := make([]int64, 0, len(m.LootTable))
	for _, entry := range m.LootTable {
		if entry != nil && entry.Item != nil {
			ids = append(ids, entry.Item.ID)
		}
	}
	return ids
}
