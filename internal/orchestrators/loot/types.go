package loot

import "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"

// AddDropInput defines the request for adding one drop
type AddDropInput struct {
	MonsterID  int64
	ItemID     int64
	DropChance float64
}

// AddDropOutput defines the response for adding one drop
type AddDropOutput struct {
	Monster *entities.Monster
}

// Stats are the scalar monster fields a loot table replace may rewrite
type Stats struct {
	Name   string
	Health int
	Damage int
}

// ReplaceLootTableInput defines the request for rebuilding a loot table.
// Stats, when set, are written in the same transaction.
type ReplaceLootTableInput struct {
	MonsterID int64
	ItemIDs   []int64
	Stats     *Stats
}

// ReplaceLootTableOutput defines the response for rebuilding a loot table
type ReplaceLootTableOutput struct {
	Monster *entities.Monster
}
