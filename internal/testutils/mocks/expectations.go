// Package mocks provides mock expectation helpers for common testing patterns.
// The context argument is not matched since callers may wrap it in spans.
package mocks

import (
	"go.uber.org/mock/gomock"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/characters"
	charactersmock "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/characters/mock"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/items"
	itemsmock "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/items/mock"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/monsters"
	monstersmock "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/monsters/mock"
)

// ExpectItem makes the item resolvable by ID exactly once
func ExpectItem(repo *itemsmock.MockRepository, item *entities.Item) *gomock.Call {
	return repo.EXPECT().
		Get(gomock.Any(), items.GetInput{ID: item.ID}).
		Return(&items.GetOutput{Item: item}, nil)
}

// ExpectItemMissing makes the item lookup fail with NotFound
func ExpectItemMissing(repo *itemsmock.MockRepository, id int64) *gomock.Call {
	return repo.EXPECT().
		Get(gomock.Any(), items.GetInput{ID: id}).
		Return(nil, errors.NotFoundf("item with ID %d not found", id))
}

// ExpectCharacter makes the character loadable by ID exactly once
func ExpectCharacter(repo *charactersmock.MockRepository, char *entities.Character) *gomock.Call {
	return repo.EXPECT().
		Get(gomock.Any(), characters.GetInput{ID: char.ID}).
		Return(&characters.GetOutput{Character: char}, nil)
}

// ExpectCharacterMissing makes the character lookup fail with NotFound
func ExpectCharacterMissing(repo *charactersmock.MockRepository, id int64) *gomock.Call {
	return repo.EXPECT().
		Get(gomock.Any(), characters.GetInput{ID: id}).
		Return(nil, errors.NotFoundf("character with ID %d not found", id))
}

// ExpectMonster makes the monster loadable by ID exactly once
func ExpectMonster(repo *monstersmock.MockRepository, monster *entities.Monster) *gomock.Call {
	return repo.EXPECT().
		Get(gomock.Any(), monsters.GetInput{ID: monster.ID}).
		Return(&monsters.GetOutput{Monster: monster}, nil)
}

// ExpectMonsterMissing makes the monster lookup fail with NotFound
func ExpectMonsterMissing(repo *monstersmock.MockRepository, id int64) *gomock.Call {
	return repo.EXPECT().
		Get(gomock.Any(), monsters.GetInput{ID: id}).
		Return(nil, errors.NotFoundf("monster with ID %d not found", id))
}
