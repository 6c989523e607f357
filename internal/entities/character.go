package entities

import "time"

// Character is a player avatar with a set of equipped items
type Character struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Equipped  []*Item   `json:"equipped"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasEquipped reports whether the item is part of the equipped set
func (c *Character) HasEquipped(itemID int64) bool {
	for _, item := range c.Equipped {
		if item != nil && item.ID == itemID {
			return true
		}
	}
	return false
}

// EquippedInCategory returns the first equipped item of the category, or nil
func (c *Character) EquippedInCategory(category Category) *Item {
	for _, item := range c.Equipped {
		if item != nil && item.Category == category {
			return item
		}
	}
	return nil
}

// EquippedIDs returns the ids of the equipped items in set order
func (c *Character) EquippedIDs() []int64 {
	ids := make([]int64, 0, len(c.Equipped))
	for _, item := range c.Equipped {
		if item != nil {
			ids = append(ids, item.ID)
		}
	}
	return ids
}
