package equip_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/events"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/equip"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/characters"
	charactersmock "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/characters/mock"
	itemsmock "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/items/mock"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/testutils"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl          *gomock.Controller
	mockCharRepo  *charactersmock.MockRepository
	mockItemRepo  *itemsmock.MockRepository
	broadcaster   *events.Broadcaster
	feed          <-chan events.Event
	orchestrator  equip.Service
	ctx           context.Context
	sword, dagger *entities.Item
	robe, ring    *entities.Item
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockCharRepo = charactersmock.NewMockRepository(s.ctrl)
	s.mockItemRepo = itemsmock.NewMockRepository(s.ctrl)
	s.broadcaster = events.NewBroadcaster(8)
	_, s.feed = s.broadcaster.Subscribe()
	s.ctx = context.Background()

	orchestrator, err := equip.New(&equip.Config{
		CharacterRepo: s.mockCharRepo,
		ItemRepo:      s.mockItemRepo,
		Publisher:     s.broadcaster,
		Clock:         testutils.FixedClock(),
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator

	s.sword = testutils.WithID(testutils.NewWeapon("Schwert des Lichts"), 1)
	s.dagger = testutils.WithID(testutils.NewWeapon("Dunkelklinge"), 2)
	s.robe = testutils.WithID(testutils.NewArmor("Magierrobe"), 3)
	s.ring = testutils.WithID(testutils.NewAccessory("Ring der Macht"), 4)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) character(equipped ...*entities.Item) *entities.Character {
	if equipped == nil {
		equipped = []*entities.Item{}
	}
	return &entities.Character{ID: 10, Name: "Arin", Equipped: equipped}
}

func (s *OrchestratorTestSuite) assertNoEvent() {
	s.Len(s.feed, 0)
}

func (s *OrchestratorTestSuite) TestNew() {
	testCases := []struct {
		name   string
		config *equip.Config
		errMsg string
	}{
		{name: "nil config", config: nil, errMsg: "config cannot be nil"},
		{name: "missing repos", config: &equip.Config{}, errMsg: "CharacterRepo"},
		{name: "missing item repo", config: &equip.Config{CharacterRepo: s.mockCharRepo}, errMsg: "ItemRepo"},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			svc, err := equip.New(tc.config)
			s.Error(err)
			s.Contains(err.Error(), tc.errMsg)
			s.Nil(svc)
		})
	}
}

func (s *OrchestratorTestSuite) TestEquipItem_Success() {
	char := s.character(s.sword)
	mocks.ExpectCharacter(s.mockCharRepo, char)
	mocks.ExpectItem(s.mockItemRepo, s.robe)
	s.mockCharRepo.EXPECT().
		AddEquipment(gomock.Any(), characters.AddEquipmentInput{CharacterID: char.ID, ItemID: s.robe.ID}).
		Return(&characters.AddEquipmentOutput{}, nil)

	out, err := s.orchestrator.EquipItem(s.ctx, &equip.EquipItemInput{CharacterID: char.ID, ItemID: s.robe.ID})
	s.Require().NoError(err)
	s.Equal([]int64{s.sword.ID, s.robe.ID}, out.Character.EquippedIDs())

	event := <-s.feed
	s.Equal(events.TypeItemEquipped, event.Type)
	s.Equal(char.ID, event.CharacterID)
	s.Equal(s.robe.ID, event.ItemID)
	s.Equal(testutils.FixedTime, event.At)
}

func (s *OrchestratorTestSuite) TestEquipItem_CharacterMissing() {
	mocks.ExpectCharacterMissing(s.mockCharRepo, 99)

	_, err := s.orchestrator.EquipItem(s.ctx, &equip.EquipItemInput{CharacterID: 99, ItemID: s.sword.ID})
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "character")
	s.assertNoEvent()
}

func (s *OrchestratorTestSuite) TestEquipItem_ItemMissing() {
	char := s.character()
	mocks.ExpectCharacter(s.mockCharRepo, char)
	mocks.ExpectItemMissing(s.mockItemRepo, 77)

	_, err := s.orchestrator.EquipItem(s.ctx, &equip.EquipItemInput{CharacterID: char.ID, ItemID: 77})
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "item")
	s.assertNoEvent()
}

func (s *OrchestratorTestSuite) TestEquipItem_AlreadyEquippedBeatsCategoryConflict() {
	// the same item also conflicts with itself by category; the duplicate
	// check runs first
	char := s.character(s.sword)
	mocks.ExpectCharacter(s.mockCharRepo, char)
	mocks.ExpectItem(s.mockItemRepo, s.sword)

	_, err := s.orchestrator.EquipItem(s.ctx, &equip.EquipItemInput{CharacterID: char.ID, ItemID: s.sword.ID})
	s.True(errors.IsAlreadyEquipped(err), "got %v", err)
	s.False(errors.IsCategoryConflict(err))
	s.assertNoEvent()
}

func (s *OrchestratorTestSuite) TestEquipItem_CategoryConflict() {
	char := s.character(s.sword, s.ring)
	mocks.ExpectCharacter(s.mockCharRepo, char)
	mocks.ExpectItem(s.mockItemRepo, s.dagger)

	_, err := s.orchestrator.EquipItem(s.ctx, &equip.EquipItemInput{CharacterID: char.ID, ItemID: s.dagger.ID})
	s.Require().True(errors.IsCategoryConflict(err), "got %v", err)
	meta := errors.GetMeta(err)
	s.Equal(s.sword.ID, meta["equipped_item_id"])
	s.Equal("weapon", meta["category"])
	s.assertNoEvent()
}

func (s *OrchestratorTestSuite) TestEquipItem_ConcurrentDuplicateIsAlreadyEquipped() {
	char := s.character()
	mocks.ExpectCharacter(s.mockCharRepo, char)
	mocks.ExpectItem(s.mockItemRepo, s.ring)
	s.mockCharRepo.EXPECT().
		AddEquipment(gomock.Any(), gomock.Any()).
		Return(nil, errors.AlreadyExists("equipment record already exists"))

	_, err := s.orchestrator.EquipItem(s.ctx, &equip.EquipItemInput{CharacterID: char.ID, ItemID: s.ring.ID})
	s.True(errors.IsAlreadyEquipped(err), "got %v", err)
	s.assertNoEvent()
}

func (s *OrchestratorTestSuite) TestEquipItem_StoreFailureIsInternal() {
	char := s.character()
	mocks.ExpectCharacter(s.mockCharRepo, char)
	mocks.ExpectItem(s.mockItemRepo, s.ring)
	s.mockCharRepo.EXPECT().
		AddEquipment(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("disk I/O error"))

	_, err := s.orchestrator.EquipItem(s.ctx, &equip.EquipItemInput{CharacterID: char.ID, ItemID: s.ring.ID})
	s.True(errors.IsInternal(err))
	s.Contains(err.Error(), "disk I/O error")
	s.assertNoEvent()
}

func (s *OrchestratorTestSuite) TestEquipItem_NilInput() {
	_, err := s.orchestrator.EquipItem(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestReplaceEquipment_CollapsesDuplicatesAndSkipsCategoryCheck() {
	char := s.character(s.robe)
	mocks.ExpectCharacter(s.mockCharRepo, char)
	mocks.ExpectItem(s.mockItemRepo, s.dagger)
	mocks.ExpectItem(s.mockItemRepo, s.sword)

	want := &entities.Character{ID: char.ID, Name: "Arin", Equipped: []*entities.Item{s.dagger, s.sword}}
	s.mockCharRepo.EXPECT().
		Update(gomock.Any(), characters.UpdateInput{Character: want}).
		Return(&characters.UpdateOutput{Character: want}, nil)

	out, err := s.orchestrator.ReplaceEquipment(s.ctx, &equip.ReplaceEquipmentInput{
		CharacterID: char.ID,
		ItemIDs:     []int64{s.dagger.ID, s.sword.ID, s.dagger.ID},
	})
	s.Require().NoError(err)
	s.Equal([]int64{s.dagger.ID, s.sword.ID}, out.Character.EquippedIDs())

	event := <-s.feed
	s.Equal(events.TypeEquipmentReplaced, event.Type)
	s.Equal([]int64{s.dagger.ID, s.sword.ID}, event.ItemIDs)
}

func (s *OrchestratorTestSuite) TestReplaceEquipment_Renames() {
	char := s.character()
	mocks.ExpectCharacter(s.mockCharRepo, char)

	want := &entities.Character{ID: char.ID, Name: "Arin der Kühne", Equipped: []*entities.Item{}}
	s.mockCharRepo.EXPECT().
		Update(gomock.Any(), characters.UpdateInput{Character: want}).
		Return(&characters.UpdateOutput{Character: want}, nil)

	out, err := s.orchestrator.ReplaceEquipment(s.ctx, &equip.ReplaceEquipmentInput{
		CharacterID: char.ID,
		Name:        "Arin der Kühne",
	})
	s.Require().NoError(err)
	s.Equal("Arin der Kühne", out.Character.Name)
	s.Empty(out.Character.Equipped)
}

func (s *OrchestratorTestSuite) TestReplaceEquipment_MissingItemWritesNothing() {
	char := s.character(s.robe)
	mocks.ExpectCharacter(s.mockCharRepo, char)
	mocks.ExpectItem(s.mockItemRepo, s.sword)
	mocks.ExpectItemMissing(s.mockItemRepo, 55)

	_, err := s.orchestrator.ReplaceEquipment(s.ctx, &equip.ReplaceEquipmentInput{
		CharacterID: char.ID,
		ItemIDs:     []int64{s.sword.ID, 55, s.ring.ID},
	})
	s.True(errors.IsNotFound(err), "got %v", err)
	s.assertNoEvent()
}

func (s *OrchestratorTestSuite) TestReplaceEquipment_CharacterMissing() {
	mocks.ExpectCharacterMissing(s.mockCharRepo, 5)

	_, err := s.orchestrator.ReplaceEquipment(s.ctx, &equip.ReplaceEquipmentInput{CharacterID: 5, ItemIDs: []int64{1}})
	s.True(errors.IsNotFound(err))
}
