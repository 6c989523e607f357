// Package monsters provides the interface for monster persistence, including
// the monster's loot table.
package monsters

//go:generate mockgen -destination=mock/mock_repository.go -package=monstersmock github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/monsters Repository

import (
	"context"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
)

// Repository defines the interface for monster persistence.
// Monsters are always returned with their loot table in insertion order.
type Repository interface {
	// Create stores a new monster and assigns its ID and timestamps
	// The loot table on the input is ignored
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a monster by ID
	// Returns errors.NotFound if the monster doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every monster ordered by ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ListByName returns the monsters whose name matches exactly
	ListByName(ctx context.Context, input ListByNameInput) (*ListOutput, error)

	// Update writes name, health and damage and replaces the whole loot table
	// with Monster.LootTable in one atomic write
	// Returns errors.NotFound if the monster or any item doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a monster and its drop records
	// Returns errors.NotFound if the monster doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// AddDrop inserts exactly one drop record
	// Returns errors.AlreadyExists if the pair is already stored
	// Returns errors.NotFound if the monster or item doesn't exist
	// Returns errors.OutOfRange if the store rejects the drop chance
	AddDrop(ctx context.Context, input AddDropInput) (*AddDropOutput, error)
}

// CreateInput defines the input for creating a monster
type CreateInput struct {
	Monster *entities.Monster
}

// CreateOutput defines the output for creating a monster
type CreateOutput struct {
	Monster *entities.Monster
}

// GetInput defines the input for getting a monster
type GetInput struct {
	ID int64
}

// GetOutput defines the output for getting a monster
type GetOutput struct {
	Monster *entities.Monster
}

// ListInput defines the input for listing all monsters
type ListInput struct{}

// ListByNameInput defines the input for listing monsters by name
type ListByNameInput struct {
	Name string
}

// ListOutput defines the output shared by the list operations
type ListOutput struct {
	Monsters []*entities.Monster
}

// UpdateInput defines the input for updating a monster
type UpdateInput struct {
	Monster *entities.Monster
}

// UpdateOutput defines the output for updating a monster
type UpdateOutput struct {
	Monster *entities.Monster
}

// DeleteInput defines the input for deleting a monster
type DeleteInput struct {
	ID int64
}

// DeleteOutput defines the output for deleting a monster
type DeleteOutput struct{}

// AddDropInput defines the input for adding one drop record
type AddDropInput struct {
	MonsterID  int64
	ItemID     int64
	DropChance float64
}

// AddDropOutput defines the output for adding one drop record
type AddDropOutput struct{}
