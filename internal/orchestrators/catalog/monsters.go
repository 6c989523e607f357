package catalog

import (
	"context"
	"log/slog"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/events"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/loot"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/monsters"
)

func (o *orchestrator) CreateMonster(ctx context.Context, input *CreateMonsterInput) (*MonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateMonster(input.Name, input.Health, input.Damage); err != nil {
		return nil, err
	}

	out, err := o.monsterRepo.Create(ctx, monsters.CreateInput{Monster: &entities.Monster{
		Name:   input.Name,
		Health: input.Health,
		Damage: input.Damage,
	}})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create monster")
	}

	slog.InfoContext(ctx, "monster created", "monster_id", out.Monster.ID)
	return &MonsterOutput{Monster: out.Monster}, nil
}

func (o *orchestrator) GetMonster(ctx context.Context, input *GetMonsterInput) (*MonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.monsterRepo.Get(ctx, monsters.GetInput{ID: input.ID})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get monster %d", input.ID)
	}
	return &MonsterOutput{Monster: out.Monster}, nil
}

func (o *orchestrator) ListMonsters(ctx context.Context, _ *ListMonstersInput) (*ListMonstersOutput, error) {
	out, err := o.monsterRepo.List(ctx, monsters.ListInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list monsters")
	}
	return &ListMonstersOutput{Monsters: out.Monsters}, nil
}

func (o *orchestrator) ListMonstersByName(ctx context.Context, input *ListMonstersByNameInput) (*ListMonstersOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	out, err := o.monsterRepo.ListByName(ctx, monsters.ListByNameInput{Name: input.Name})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list monsters by name")
	}
	if len(out.Monsters) == 0 {
		return nil, errors.NotFoundf("no monsters named %q", input.Name).WithMeta("name", input.Name)
	}
	return &ListMonstersOutput{Monsters: out.Monsters}, nil
}

func (o *orchestrator) UpdateMonster(ctx context.Context, input *UpdateMonsterInput) (*MonsterOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateMonster(input.Name, input.Health, input.Damage); err != nil {
		return nil, err
	}

	out, err := o.loot.ReplaceLootTable(ctx, &loot.ReplaceLootTableInput{
		MonsterID: input.ID,
		ItemIDs:   input.DropItemIDs,
		Stats: &loot.Stats{
			Name:   input.Name,
			Health: input.Health,
			Damage: input.Damage,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update monster %d", input.ID)
	}
	return &MonsterOutput{Monster: out.Monster}, nil
}

func (o *orchestrator) DeleteMonster(ctx context.Context, input *DeleteMonsterInput) (*DeleteOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if _, err := o.monsterRepo.Delete(ctx, monsters.DeleteInput{ID: input.ID}); err != nil {
		return nil, errors.Wrapf(err, "failed to delete monster %d", input.ID)
	}

	slog.InfoContext(ctx, "monster deleted", "monster_id", input.ID)
	o.publish(ctx, events.Event{Type: events.TypeMonsterDeleted, MonsterID: input.ID})
	return &DeleteOutput{Deleted: true}, nil
}
