package testutils

import (
	"time"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/pkg/clock"
)

// FixedTime is the instant returned by FixedClock
var FixedTime = time.Date(2026, time.March, 1, 9, 0, 0, 0, time.UTC)

// FixedClock returns a clock frozen at FixedTime
func FixedClock() clock.Clock {
	return clock.Fixed{T: FixedTime}
}

// NewWeapon builds an unsaved weapon
func NewWeapon(name string) *entities.Item {
	return &entities.Item{Name: name, Category: entities.CategoryWeapon, Agility: 5, Strength: 8, Stamina: 3}
}

// NewArmor builds an unsaved armor piece
func NewArmor(name string) *entities.Item {
	return &entities.Item{Name: name, Category: entities.CategoryArmor, Agility: 2, Strength: 3, Stamina: 9}
}

// NewAccessory builds an unsaved accessory
func NewAccessory(name string) *entities.Item {
	return &entities.Item{Name: name, Category: entities.CategoryAccessory, Agility: 3, Strength: 5, Stamina: 2}
}

// WithID returns a copy of item carrying id
func WithID(item *entities.Item, id int64) *entities.Item {
	out := *item
	out.ID = id
	return &out
}
