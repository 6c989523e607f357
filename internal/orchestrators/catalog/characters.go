package catalog

import (
	"context"
	"log/slog"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/events"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/equip"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/characters"
)

func (o *orchestrator) CreateCharacter(ctx context.Context, input *CreateCharacterInput) (*CharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCharacter(input.Name); err != nil {
		return nil, err
	}

	out, err := o.characterRepo.Create(ctx, characters.CreateInput{Character: &entities.Character{Name: input.Name}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create character")
	}

	slog.InfoContext(ctx, "character created", "character_id", out.Character.ID)
	return &CharacterOutput{Character: out.Character}, nil
}

func (o *orchestrator) GetCharacter(ctx context.Context, input *GetCharacterInput) (*CharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.characterRepo.Get(ctx, characters.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get character %d", input.ID)
	}
	return &CharacterOutput{Character: out.Character}, nil
}

func (o *orchestrator) ListCharacters(ctx context.Context, _ *ListCharactersInput) (*ListCharactersOutput, error) {
	out, err := o.characterRepo.List(ctx, characters.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters")
	}
	return &ListCharactersOutput{Characters: out.Characters}, nil
}

func (o *orchestrator) ListCharactersByName(ctx context.Context, input *ListCharactersByNameInput) (*ListCharactersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.characterRepo.ListByName(ctx, characters.ListByNameInput{Name: input.Name})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list characters by name")
	}
	if len(out.Characters) == 0 {
		return nil, errors.NotFoundf("no characters named %q", input.Name).WithMeta("name", input.Name)
	}
	return &ListCharactersOutput{Characters: out.Characters}, nil
}

func (o *orchestrator) UpdateCharacter(ctx context.Context, input *UpdateCharacterInput) (*CharacterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateCharacter(input.Name); err != nil {
		return nil, err
	}

	out, err := o.equip.ReplaceEquipment(ctx, &equip.ReplaceEquipmentInput{
		CharacterID: input.ID,
		Name:        input.Name,
		ItemIDs:     input.EquippedItemIDs,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update character %d", input.ID)
	}
	return &CharacterOutput{Character: out.Character}, nil
}

func (o *orchestrator) DeleteCharacter(ctx context.Context, input *DeleteCharacterInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.characterRepo.Delete(ctx, characters.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete character %d", input.ID)
	}

	slog.InfoContext(ctx, "character deleted", "character_id", input.ID)
	o.publish(ctx, events.Event{Type: events.TypeCharacterDeleted, CharacterID: input.ID})
	return &DeleteOutput{Deleted: true}, nil
}
