// Package items provides the interface for item persistence
package items

//go:generate mockgen -destination=mock/mock_repository.go -package=itemsmock github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/items Repository

import (
	"context"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
)

// Repository defines the interface for item persistence
type Repository interface {
	// Create stores a new item and assigns its ID and timestamps
	// Returns errors.InvalidArgument for a nil item
	// Returns errors.Internal for storage failures
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves an item by ID
	// Returns errors.NotFound if the item doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// List returns every item ordered by ID
	List(ctx context.Context, input ListInput) (*ListOutput, error)

	// ListByName returns the items whose name matches exactly
	// An empty result is not an error at this layer
	ListByName(ctx context.Context, input ListByNameInput) (*ListOutput, error)

	// ListByCategory returns the items of one category
	ListByCategory(ctx context.Context, input ListByCategoryInput) (*ListOutput, error)

	// ListByCharacter returns the items equipped by a character in equip order
	// The character's existence is not checked here
	ListByCharacter(ctx context.Context, input ListByCharacterInput) (*ListOutput, error)

	// Update replaces name, category and attributes of an existing item
	// Returns errors.NotFound if the item doesn't exist
	Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error)

	// Delete removes an item
	// Returns errors.NotFound if the item doesn't exist
	// Returns errors.FailedPrecondition while a character equips it or a monster drops it
	Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error)
}

// CreateInput defines the input for creating an item
type CreateInput struct {
	Item *entities.Item
}

// CreateOutput defines the output for creating an item
type CreateOutput struct {
	Item *entities.Item
}

// GetInput defines the input for getting an item
type GetInput struct {
	ID int64
}

// GetOutput defines the output for getting an item
type GetOutput struct {
	Item *entities.Item
}

// ListInput defines the input for listing all items
type ListInput struct{}

// ListByNameInput defines the input for listing items by name
type ListByNameInput struct {
	Name string
}

// ListByCategoryInput defines the input for listing items by category
type ListByCategoryInput struct {
	Category entities.Category
}

// ListByCharacterInput defines the input for listing a character's equipped items
type ListByCharacterInput struct {
	CharacterID int64
}

// ListOutput defines the output shared by the list operations
type ListOutput struct {
	Items []*entities.Item
}

// UpdateInput defines the input for updating an item
type UpdateInput struct {
	Item *entities.Item
}

// UpdateOutput defines the output for updating an item
type UpdateOutput struct {
	Item *entities.Item
}

// DeleteInput defines the input for deleting an item
type DeleteInput struct {
	ID int64
}

// DeleteOutput defines the output for deleting an item
type DeleteOutput struct{}
