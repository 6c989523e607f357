// Package characters provides the interface for character persistence,
// including the character's equipped set.
package characters

//go:generate mockgen -destination=mock/mock_repository.go -package=charactersmock github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/characters Repository

import (
	"context"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
)

// Repository defines the interface for character persistence.
// Characters are always returned with their equipped items, categories
// included, in equip order.
type Repository interface {
	// Create stores a new character and assigns its ID and timestamps
	// Equipped items on the input are ignored
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a character by ID
	// Returns errors.NotFound if the character doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every character ordered by ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ListByName returns the characters whose name matches exactly
	ListByName(ctx context.Context, input ListByNameInput) (*ListOutput, error)

	// Update writes the name and replaces the whole equipped set with
	// Character.Equipped in one atomic write. No category rule is applied.
	// Returns errors.NotFound if the character or any item doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes a character and its equipment records
	// Returns errors.NotFound if the character doesn't exist
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)

	// AddEquipment inserts exactly one equipment record
	// Returns errors.AlreadyExists if the pair is already stored
	// Returns errors.NotFound if the character or item doesn't exist
	AddEquipment(ctx context.Context, input AddEquipmentInput) (*AddEquipmentOutput, error)
}

// CreateInput defines the input for creating a character
type CreateInput struct {
	Character *entities.Character
}

// CreateOutput defines the output for creating a character
type CreateOutput struct {
	Character *entities.Character
}

// GetInput defines the input for getting a character
type GetInput struct {
	ID int64
}

// GetOutput defines the output for getting a character
type GetOutput struct {
	Character *entities.Character
}

// ListInput defines the input for listing all characters
type ListInput struct{}

// ListByNameInput defines the input for listing characters by name
type ListByNameInput struct {
	Name string
}

// ListOutput defines the output shared by the list operations
type ListOutput struct {
	Characters []*entities.Character
}

// UpdateInput defines the input for updating a character
type UpdateInput struct {
	Character *entities.Character
}

// UpdateOutput defines the output for updating a character
type UpdateOutput struct {
	Character *entities.Character
}

// DeleteInput defines the input for deleting a character
type DeleteInput struct {
	ID int64
}

// DeleteOutput defines the output for deleting a character
type DeleteOutput struct{}

// AddEquipmentInput defines the input for adding one equipment record
type AddEquipmentInput struct {
	CharacterID int64
	ItemID      int64
}

// AddEquipmentOutput defines the output for adding one equipment record
type AddEquipmentOutput struct{}
