package loot_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/events"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/loot"
	itemsmock "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/items/mock"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/monsters"
	monstersmock "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/monsters/mock"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/testutils"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/testutils/mocks"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl            *gomock.Controller
	mockMonsterRepo *monstersmock.MockRepository
	mockItemRepo    *itemsmock.MockRepository
	feed            <-chan events.Event
	orchestrator    loot.Service
	ctx             context.Context
	goblin          *entities.Monster
	fang, plate     *entities.Item
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockMonsterRepo = monstersmock.NewMockRepository(s.ctrl)
	s.mockItemRepo = itemsmock.NewMockRepository(s.ctrl)
	broadcaster := events.NewBroadcaster(8)
	_, s.feed = broadcaster.Subscribe()
	s.ctx = context.Background()

	orchestrator, err := loot.New(&loot.Config{
		MonsterRepo: s.mockMonsterRepo,
		ItemRepo:    s.mockItemRepo,
		Publisher:   broadcaster,
		Clock:       testutils.FixedClock(),
	})
	s.Require().NoError(err)
	s.orchestrator = orchestrator

	s.goblin = &entities.Monster{ID: 1, Name: "Goblin", Health: 30, Damage: 5, LootTable: []*entities.LootEntry{}}
	s.fang = testutils.WithID(testutils.NewWeapon("Drachenzahn"), 7)
	s.plate = testutils.WithID(testutils.NewArmor("Plattenrüstung"), 8)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func (s *OrchestratorTestSuite) TestNew() {
	svc, err := loot.New(&loot.Config{ItemRepo: s.mockItemRepo})
	s.Error(err)
	s.Contains(err.Error(), "MonsterRepo")
	s.Nil(svc)

	svc, err = loot.New(nil)
	s.Error(err)
	s.Nil(svc)
}

func (s *OrchestratorTestSuite) TestAddDrop_Success() {
	mocks.ExpectMonster(s.mockMonsterRepo, s.goblin)
	mocks.ExpectItem(s.mockItemRepo, s.fang)
	s.mockMonsterRepo.EXPECT().
		AddDrop(gomock.Any(), monsters.AddDropInput{MonsterID: s.goblin.ID, ItemID: s.fang.ID, DropChance: 0.25}).
		Return(&monsters.AddDropOutput{}, nil)

	out, err := s.orchestrator.AddDrop(s.ctx, &loot.AddDropInput{MonsterID: s.goblin.ID, ItemID: s.fang.ID, DropChance: 0.25})
	s.Require().NoError(err)
	s.Require().Len(out.Monster.LootTable, 1)
	s.Equal(s.fang.ID, out.Monster.LootTable[0].Item.ID)
	s.Equal(0.25, out.Monster.LootTable[0].DropChance)

	event := <-s.feed
	s.Equal(events.TypeDropAdded, event.Type)
	s.Require().NotNil(event.DropChance)
	s.Equal(0.25, *event.DropChance)
}

func (s *OrchestratorTestSuite) TestAddDrop_BoundsAreInclusive() {
	for _, chance := range []float64{0, 1} {
		s.Run("chance", func() {
			monster := &entities.Monster{ID: s.goblin.ID, Name: "Goblin", LootTable: []*entities.LootEntry{}}
			mocks.ExpectMonster(s.mockMonsterRepo, monster)
			mocks.ExpectItem(s.mockItemRepo, s.fang)
			s.mockMonsterRepo.EXPECT().AddDrop(gomock.Any(), gomock.Any()).Return(&monsters.AddDropOutput{}, nil)

			_, err := s.orchestrator.AddDrop(s.ctx, &loot.AddDropInput{MonsterID: s.goblin.ID, ItemID: s.fang.ID, DropChance: chance})
			s.NoError(err)
		})
	}
}

func (s *OrchestratorTestSuite) TestAddDrop_OutOfRangeNeverTouchesStore() {
	testCases := []struct {
		name   string
		chance float64
	}{
		{name: "above one", chance: 1.5},
		{name: "negative", chance: -0.01},
		{name: "not a number", chance: math.NaN()},
		{name: "infinite", chance: math.Inf(1)},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			// ids do not exist either; range is checked first
			_, err := s.orchestrator.AddDrop(s.ctx, &loot.AddDropInput{MonsterID: 404, ItemID: 405, DropChance: tc.chance})
			s.True(errors.IsOutOfRange(err), "got %v", err)
		})
	}
	s.Len(s.feed, 0)
}

func (s *OrchestratorTestSuite) TestAddDrop_MonsterMissing() {
	mocks.ExpectMonsterMissing(s.mockMonsterRepo, 9)

	_, err := s.orchestrator.AddDrop(s.ctx, &loot.AddDropInput{MonsterID: 9, ItemID: s.fang.ID, DropChance: 0.5})
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "monster")
}

func (s *OrchestratorTestSuite) TestAddDrop_ItemMissing() {
	mocks.ExpectMonster(s.mockMonsterRepo, s.goblin)
	mocks.ExpectItemMissing(s.mockItemRepo, 99)

	_, err := s.orchestrator.AddDrop(s.ctx, &loot.AddDropInput{MonsterID: s.goblin.ID, ItemID: 99, DropChance: 0.5})
	s.True(errors.IsNotFound(err))
	s.Contains(err.Error(), "item")
}

func (s *OrchestratorTestSuite) TestAddDrop_DuplicateSurfacesAsInternal() {
	mocks.ExpectMonster(s.mockMonsterRepo, s.goblin)
	mocks.ExpectItem(s.mockItemRepo, s.fang)
	s.mockMonsterRepo.EXPECT().
		AddDrop(gomock.Any(), gomock.Any()).
		Return(nil, errors.AlreadyExists("drop record already exists"))

	_, err := s.orchestrator.AddDrop(s.ctx, &loot.AddDropInput{MonsterID: s.goblin.ID, ItemID: s.fang.ID, DropChance: 0.5})
	s.True(errors.IsInternal(err), "got %v", err)
	s.Contains(err.Error(), "drop record already exists")
	s.Len(s.feed, 0)
}

func (s *OrchestratorTestSuite) TestReplaceLootTable_AssignsDefaultChance() {
	s.goblin.LootTable = []*entities.LootEntry{{Item: s.fang, DropChance: 0.2}}
	mocks.ExpectMonster(s.mockMonsterRepo, s.goblin)
	mocks.ExpectItem(s.mockItemRepo, s.plate)
	mocks.ExpectItem(s.mockItemRepo, s.fang)

	s.mockMonsterRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input monsters.UpdateInput) (*monsters.UpdateOutput, error) {
			s.Equal("Goblin", input.Monster.Name)
			s.Equal([]int64{s.plate.ID, s.fang.ID}, input.Monster.DropItemIDs())
			for _, entry := range input.Monster.LootTable {
				s.Equal(entities.DefaultDropChance, entry.DropChance)
			}
			return &monsters.UpdateOutput{Monster: input.Monster}, nil
		})

	out, err := s.orchestrator.ReplaceLootTable(s.ctx, &loot.ReplaceLootTableInput{
		MonsterID: s.goblin.ID,
		ItemIDs:   []int64{s.plate.ID, s.fang.ID, s.plate.ID},
	})
	s.Require().NoError(err)
	s.Len(out.Monster.LootTable, 2)

	event := <-s.feed
	s.Equal(events.TypeLootTableReplaced, event.Type)
	s.Equal([]int64{s.plate.ID, s.fang.ID}, event.ItemIDs)
}

func (s *OrchestratorTestSuite) TestReplaceLootTable_WritesStats() {
	mocks.ExpectMonster(s.mockMonsterRepo, s.goblin)
	s.mockMonsterRepo.EXPECT().
		Update(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, input monsters.UpdateInput) (*monsters.UpdateOutput, error) {
			s.Equal("Goblinhäuptling", input.Monster.Name)
			s.Equal(60, input.Monster.Health)
			s.Equal(12, input.Monster.Damage)
			s.Empty(input.Monster.LootTable)
			return &monsters.UpdateOutput{Monster: input.Monster}, nil
		})

	_, err := s.orchestrator.ReplaceLootTable(s.ctx, &loot.ReplaceLootTableInput{
		MonsterID: s.goblin.ID,
		Stats:     &loot.Stats{Name: "Goblinhäuptling", Health: 60, Damage: 12},
	})
	s.NoError(err)
}

func (s *OrchestratorTestSuite) TestReplaceLootTable_MissingItemWritesNothing() {
	mocks.ExpectMonster(s.mockMonsterRepo, s.goblin)
	mocks.ExpectItemMissing(s.mockItemRepo, 31)

	_, err := s.orchestrator.ReplaceLootTable(s.ctx, &loot.ReplaceLootTableInput{MonsterID: s.goblin.ID, ItemIDs: []int64{31}})
	s.True(errors.IsNotFound(err))
	s.Len(s.feed, 0)
}

func (s *OrchestratorTestSuite) TestReplaceLootTable_MonsterMissing() {
	mocks.ExpectMonsterMissing(s.mockMonsterRepo, 2)

	_, err := s.orchestrator.ReplaceLootTable(s.ctx, &loot.ReplaceLootTableInput{MonsterID: 2})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestValidateDropChance() {
	s.NoError(loot.ValidateDropChance(0.5))
	err := loot.ValidateDropChance(2)
	s.True(errors.IsOutOfRange(err))
	s.Contains(err.Error(), "drop_chance")
}
