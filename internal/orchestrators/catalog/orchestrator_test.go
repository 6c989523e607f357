package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/events"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/catalog"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/equip"
	equipmock "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/equip/mock"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/loot"
	lootmock "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/loot/mock"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/characters"
	charactersmock "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/characters/mock"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/items"
	itemsmock "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/items/mock"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/monsters"
	monstersmock "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/monsters/mock"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/testutils"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockCharRepo    *charactersmock.MockRepository
	mockItemRepo    *itemsmock.MockRepository
	mockMonsterRepo *monstersmock.MockRepository
	mockEquip       *equipmock.MockService
	mockLoot        *lootmock.MockService
	feed            <-chan events.Event
	orchestrator    catalog.Service
	ctx             context.Context
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharRepo = charactersmock.NewMockRepository(s.ctrl)
	s.mockItemRepo = itemsmock.NewMockRepository(s.ctrl)
	s.mockMonsterRepo = monstersmock.NewMockRepository(s.ctrl)
	s.mockEquip = equipmock.NewMockService(s.ctrl)
	s.mockLoot = lootmock.NewMockService(s.ctrl)
	broadcaster := events.NewBroadcaster(8)
	_, s.feed = broadcaster.Subscribe()
	s.ctx = context.Background()

	orchestrator, err := catalog.New(&catalog.Config{
		CharacterRepo: s.mockCharRepo,
		ItemRepo:      s.mockItemRepo,
		MonsterRepo:   s.mockMonsterRepo,
		EquipService:  s.mockEquip,
		LootService:   s.mockLoot,
		Publisher:     broadcaster,
		Clock:         testutils.FixedClock(),
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNewRequiresEveryDependency() {
	_, err := catalog.New(&catalog.Config{})
	s.Require().Error(err)
	for _, field := range []string{"CharacterRepo", "ItemRepo", "MonsterRepo", "EquipService", "LootService"} {
		s.Contains(err.Error(), field)
	}
}

func (s *OrchestratorTestSuite) TestCreateCharacter() {
	testCases := []struct {
		name      string
		input     *catalog.CreateCharacterInput
		setupMock func()
		wantErr   func(error) bool
	}{
		{
			name:  "valid",
			input: &catalog.CreateCharacterInput{Name: "Hero"},
			setupMock: func() {
				s.mockCharRepo.EXPECT().
					Create(s.ctx, characters.CreateInput{Character: &entities.Character{Name: "Hero"}}).
					Return(&characters.CreateOutput{Character: &entities.Character{ID: 1, Name: "Hero"}}, nil)
			},
		},
		{name: "empty name", input: &catalog.CreateCharacterInput{}, wantErr: errors.IsInvalidArgument},
		{name: "blank name", input: &catalog.CreateCharacterInput{Name: "   "}, wantErr: errors.IsInvalidArgument},
		{name: "nil input", input: nil, wantErr: errors.IsInvalidArgument},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			if tc.setupMock != nil {
				tc.setupMock()
			}
			out, err := s.orchestrator.CreateCharacter(s.ctx, tc.input)
			if tc.wantErr != nil {
				s.True(tc.wantErr(err), "got %v", err)
				return
			}
			s.Require().NoError(err)
			s.Equal(int64(1), out.Character.ID)
		})
	}
}

func (s *OrchestratorTestSuite) TestListCharactersByName_EmptyIsNotFound() {
	s.mockCharRepo.EXPECT().
		ListByName(s.ctx, characters.ListByNameInput{Name: "Nobody"}).
		Return(&characters.ListOutput{Characters: []*entities.Character{}}, nil)

	_, err := s.orchestrator.ListCharactersByName(s.ctx, &catalog.ListCharactersByNameInput{Name: "Nobody"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListCharacters_EmptyIsFine() {
	s.mockCharRepo.EXPECT().
		List(s.ctx, characters.ListInput{}).
		Return(&characters.ListOutput{Characters: []*entities.Character{}}, nil)

	out, err := s.orchestrator.ListCharacters(s.ctx, &catalog.ListCharactersInput{})
	s.Require().NoError(err)
	s.Empty(out.Characters)
}

func (s *OrchestratorTestSuite) TestUpdateCharacter_DelegatesToEquipEngine() {
	want := &entities.Character{ID: 3, Name: "Borin"}
	s.mockEquip.EXPECT().
		ReplaceEquipment(s.ctx, &equip.ReplaceEquipmentInput{CharacterID: 3, Name: "Borin", ItemIDs: []int64{4, 5}}).
		Return(&equip.ReplaceEquipmentOutput{Character: want}, nil)

	out, err := s.orchestrator.UpdateCharacter(s.ctx, &catalog.UpdateCharacterInput{ID: 3, Name: "Borin", EquippedItemIDs: []int64{4, 5}})
	s.Require().NoError(err)
	s.Equal(want, out.Character)
}

func (s *OrchestratorTestSuite) TestUpdateCharacter_KeepsEngineCode() {
	s.mockEquip.EXPECT().
		ReplaceEquipment(s.ctx, gomock.Any()).
		Return(nil, errors.NotFound("item with ID 9 not found"))

	_, err := s.orchestrator.UpdateCharacter(s.ctx, &catalog.UpdateCharacterInput{ID: 3, Name: "Borin", EquippedItemIDs: []int64{9}})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestUpdateCharacter_RequiresName() {
	_, err := s.orchestrator.UpdateCharacter(s.ctx, &catalog.UpdateCharacterInput{ID: 3})
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestDeleteCharacter() {
	s.mockCharRepo.EXPECT().
		Delete(s.ctx, characters.DeleteInput{ID: 1}).
		Return(&characters.DeleteOutput{}, nil)

	out, err := s.orchestrator.DeleteCharacter(s.ctx, &catalog.DeleteCharacterInput{ID: 1})
	s.Require().NoError(err)
	s.True(out.Deleted)

	event := <-s.feed
	s.Equal(events.TypeCharacterDeleted, event.Type)
	s.Equal(int64(1), event.CharacterID)
	s.Equal(testutils.FixedTime, event.At)
}

func (s *OrchestratorTestSuite) TestDeleteCharacter_Unknown() {
	s.mockCharRepo.EXPECT().
		Delete(s.ctx, characters.DeleteInput{ID: 8}).
		Return(nil, errors.NotFound("character with ID 8 not found"))

	_, err := s.orchestrator.DeleteCharacter(s.ctx, &catalog.DeleteCharacterInput{ID: 8})
	s.True(errors.IsNotFound(err))
	s.Len(s.feed, 0)
}

func (s *OrchestratorTestSuite) TestCreateItem_Validation() {
	_, err := s.orchestrator.CreateItem(s.ctx, &catalog.CreateItemInput{
		Name:     "",
		Category: "shield",
		Agility:  -1,
	})
	s.Require().True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "name")
	s.Contains(err.Error(), "category")
	s.Contains(err.Error(), "agility")
}

func (s *OrchestratorTestSuite) TestCreateItem() {
	s.mockItemRepo.EXPECT().
		Create(s.ctx, items.CreateInput{Item: &entities.Item{
			Name: "Lederwams", Category: entities.CategoryArmor, Agility: 6, Strength: 2, Stamina: 6,
		}}).
		Return(&items.CreateOutput{Item: &entities.Item{ID: 5, Name: "Lederwams", Category: entities.CategoryArmor}}, nil)

	out, err := s.orchestrator.CreateItem(s.ctx, &catalog.CreateItemInput{
		Name: "Lederwams", Category: entities.CategoryArmor, Agility: 6, Strength: 2, Stamina: 6,
	})
	s.Require().NoError(err)
	s.Equal(int64(5), out.Item.ID)
}

func (s *OrchestratorTestSuite) TestListItemsByName_EmptyIsNotFound() {
	s.mockItemRepo.EXPECT().
		ListByName(s.ctx, items.ListByNameInput{Name: "Excalibur"}).
		Return(&items.ListOutput{Items: []*entities.Item{}}, nil)

	_, err := s.orchestrator.ListItemsByName(s.ctx, &catalog.ListItemsByNameInput{Name: "Excalibur"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListItemsByCategory() {
	s.Run("empty is fine", func() {
		s.mockItemRepo.EXPECT().
			ListByCategory(s.ctx, items.ListByCategoryInput{Category: entities.CategoryAccessory}).
			Return(&items.ListOutput{Items: []*entities.Item{}}, nil)

		out, err := s.orchestrator.ListItemsByCategory(s.ctx, &catalog.ListItemsByCategoryInput{Category: entities.CategoryAccessory})
		s.Require().NoError(err)
		s.Empty(out.Items)
	})

	s.Run("unknown category", func() {
		_, err := s.orchestrator.ListItemsByCategory(s.ctx, &catalog.ListItemsByCategoryInput{Category: "potion"})
		s.True(errors.IsInvalidArgument(err))
	})
}

func (s *OrchestratorTestSuite) TestListItemsByCharacter() {
	char := &entities.Character{ID: 2, Name: "Lysandra"}

	s.Run("character must exist", func() {
		mocks.ExpectCharacterMissing(s.mockCharRepo, 2)
		_, err := s.orchestrator.ListItemsByCharacter(s.ctx, &catalog.ListItemsByCharacterInput{CharacterID: 2})
		s.True(errors.IsNotFound(err))
	})

	s.Run("no items is not found", func() {
		mocks.ExpectCharacter(s.mockCharRepo, char)
		s.mockItemRepo.EXPECT().
			ListByCharacter(s.ctx, items.ListByCharacterInput{CharacterID: 2}).
			Return(&items.ListOutput{Items: []*entities.Item{}}, nil)
		_, err := s.orchestrator.ListItemsByCharacter(s.ctx, &catalog.ListItemsByCharacterInput{CharacterID: 2})
		s.True(errors.IsNotFound(err))
	})

	s.Run("equipped items", func() {
		ring := testutils.WithID(testutils.NewAccessory("Ring des Lebens"), 9)
		mocks.ExpectCharacter(s.mockCharRepo, char)
		s.mockItemRepo.EXPECT().
			ListByCharacter(s.ctx, items.ListByCharacterInput{CharacterID: 2}).
			Return(&items.ListOutput{Items: []*entities.Item{ring}}, nil)
		out, err := s.orchestrator.ListItemsByCharacter(s.ctx, &catalog.ListItemsByCharacterInput{CharacterID: 2})
		s.Require().NoError(err)
		s.Equal([]*entities.Item{ring}, out.Items)
	})
}

func (s *OrchestratorTestSuite) TestDeleteItem_StillReferenced() {
	s.mockItemRepo.EXPECT().
		Delete(s.ctx, items.DeleteInput{ID: 4}).
		Return(nil, errors.FailedPrecondition("item 4 is still referenced"))

	_, err := s.orchestrator.DeleteItem(s.ctx, &catalog.DeleteItemInput{ID: 4})
	s.True(errors.IsFailedPrecondition(err))
	s.Len(s.feed, 0)
}

func (s *OrchestratorTestSuite) TestDeleteItem() {
	s.mockItemRepo.EXPECT().
		Delete(s.ctx, items.DeleteInput{ID: 4}).
		Return(&items.DeleteOutput{}, nil)

	_, err := s.orchestrator.DeleteItem(s.ctx, &catalog.DeleteItemInput{ID: 4})
	s.Require().NoError(err)
	s.Equal(events.TypeItemDeleted, (<-s.feed).Type)
}

func (s *OrchestratorTestSuite) TestCreateMonster_Validation() {
	_, err := s.orchestrator.CreateMonster(s.ctx, &catalog.CreateMonsterInput{Name: "Ork", Health: -5, Damage: -1})
	s.Require().True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "health")
	s.Contains(err.Error(), "damage")
}

func (s *OrchestratorTestSuite) TestListMonstersByName_EmptyIsNotFound() {
	s.mockMonsterRepo.EXPECT().
		ListByName(s.ctx, monsters.ListByNameInput{Name: "Basilisk"}).
		Return(&monsters.ListOutput{Monsters: []*entities.Monster{}}, nil)

	_, err := s.orchestrator.ListMonstersByName(s.ctx, &catalog.ListMonstersByNameInput{Name: "Basilisk"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestUpdateMonster_DelegatesToLootEngine() {
	want := &entities.Monster{ID: 6, Name: "Troll", Health: 90, Damage: 16}
	s.mockLoot.EXPECT().
		ReplaceLootTable(s.ctx, &loot.ReplaceLootTableInput{
			MonsterID: 6,
			ItemIDs:   []int64{1},
			Stats:     &loot.Stats{Name: "Troll", Health: 90, Damage: 16},
		}).
		Return(&loot.ReplaceLootTableOutput{Monster: want}, nil)

	out, err := s.orchestrator.UpdateMonster(s.ctx, &catalog.UpdateMonsterInput{
		ID: 6, Name: "Troll", Health: 90, Damage: 16, DropItemIDs: []int64{1},
	})
	s.Require().NoError(err)
	s.Equal(want, out.Monster)
}

func (s *OrchestratorTestSuite) TestDeleteMonster() {
	s.mockMonsterRepo.EXPECT().
		Delete(s.ctx, monsters.DeleteInput{ID: 6}).
		Return(&monsters.DeleteOutput{}, nil)

	_, err := s.orchestrator.DeleteMonster(s.ctx, &catalog.DeleteMonsterInput{ID: 6})
	s.Require().NoError(err)

	event := <-s.feed
	s.Equal(events.TypeMonsterDeleted, event.Type)
	s.Equal(int64(6), event.MonsterID)
}
