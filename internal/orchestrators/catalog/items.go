package catalog

import (
	"context"
	"log/slog"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/events"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/characters"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/items"
)

func (o *orchestrator) CreateItem(ctx context.Context, input *CreateItemInput) (*ItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateItem(input.Name, input.Category, input.Agility, input.Strength, input.Stamina); err != nil {
		return nil, err
	}

	out, err := o.itemRepo.Create(ctx, items.CreateInput{Item: &entities.Item{
		Name:     input.Name,
		Category: input.Category,
		Agility:  input.Agility,
		Strength: input.Strength,
		Stamina:  input.Stamina,
	}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create item")
	}

	slog.InfoContext(ctx, "item created", "item_id", out.Item.ID, "category", string(out.Item.Category))
	return &ItemOutput{Item: out.Item}, nil
}

func (o *orchestrator) GetItem(ctx context.Context, input *GetItemInput) (*ItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.itemRepo.Get(ctx, items.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get item %d", input.ID)
	}
	return &ItemOutput{Item: out.Item}, nil
}

func (o *orchestrator) ListItems(ctx context.Context, _ *ListItemsInput) (*ListItemsOutput, error) {
	out, err := o.itemRepo.List(ctx, items.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items")
	}
	return &ListItemsOutput{Items: out.Items}, nil
}

func (o *orchestrator) ListItemsByName(ctx context.Context, input *ListItemsByNameInput) (*ListItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.itemRepo.ListByName(ctx, items.ListByNameInput{Name: input.Name})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items by name")
	}
	if len(out.Items) == 0 {
		return nil, errors.NotFoundf("no items named %q", input.Name).WithMeta("name", input.Name)
	}
	return &ListItemsOutput{Items: out.Items}, nil
}

func (o *orchestrator) ListItemsByCategory(ctx context.Context, input *ListItemsByCategoryInput) (*ListItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if !input.Category.IsValid() {
		vb := errors.NewValidationBuilder()
		errors.ValidateEnum("category", string(input.Category), entities.CategoryNames(), vb)
		return nil, vb.Build()
	}

	out, err := o.itemRepo.ListByCategory(ctx, items.ListByCategoryInput{Category: input.Category})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items by category")
	}
	return &ListItemsOutput{Items: out.Items}, nil
}

func (o *orchestrator) ListItemsByCharacter(ctx context.Context, input *ListItemsByCharacterInput) (*ListItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.characterRepo.Get(ctx, characters.GetInput{ID: input.CharacterID}); err != nil {
		return nil, errors.Wrapf(err, "failed to get character %d", input.CharacterID)
	}

	out, err := o.itemRepo.ListByCharacter(ctx, items.ListByCharacterInput{CharacterID: input.CharacterID})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list items by character")
	}
	if len(out.Items) == 0 {
		return nil, errors.NotFoundf("character %d has no equipped items", input.CharacterID).
			WithMeta("character_id", input.CharacterID)
	}
	return &ListItemsOutput{Items: out.Items}, nil
}

func (o *orchestrator) UpdateItem(ctx context.Context, input *UpdateItemInput) (*ItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateItem(input.Name, input.Category, input.Agility, input.Strength, input.Stamina); err != nil {
		return nil, err
	}

	out, err := o.itemRepo.Update(ctx, items.UpdateInput{Item: &entities.Item{
		ID:       input.ID,
		Name:     input.Name,
		Category: input.Category,
		Agility:  input.Agility,
		Strength: input.Strength,
		Stamina:  input.Stamina,
	}})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update item %d", input.ID)
	}
	return &ItemOutput{Item: out.Item}, nil
}

func (o *orchestrator) DeleteItem(ctx context.Context, input *DeleteItemInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.itemRepo.Delete(ctx, items.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete item %d", input.ID)
	}

	slog.InfoContext(ctx, "item deleted", "item_id", input.ID)
	o.publish(ctx, events.Event{Type: events.TypeItemDeleted, ItemID: input.ID})
	return &DeleteOutput{Deleted: true}, nil
}
