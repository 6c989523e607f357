package entities

import "time"

// Item is a piece of equipment with a category and three attribute values
type Item struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Category  Category  `json:"category"`
	Agility   int       `json:"agility"`
	Strength  int       `json:"strength"`
	Stamina   int       `json:"stamina"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
