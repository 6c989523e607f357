package catalog_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/events"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/catalog"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/equip"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/loot"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/characters"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/items"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/monsters"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/testutils"
)

type repos struct {
	characters characters.Repository
	items      items.Repository
	monsters   monsters.Repository
}

// ScenarioTestSuite drives the engines and the catalog against a real store
type ScenarioTestSuite struct {
	suite.Suite
	newRepos func(s *suite.Suite) repos

	repos   repos
	catalog catalog.Service
	equip   equip.Service
	loot    loot.Service
	feed    <-chan events.Event
	ctx     context.Context
}

func TestScenariosSQLite(t *testing.T) {
	suite.Run(t, &ScenarioTestSuite{newRepos: func(s *suite.Suite) repos {
		db := testutils.CreateTestSQLite(s.T())
		charRepo, err := characters.NewSQLite(&characters.SQLiteConfig{DB: db})
		s.Require().NoError(err)
		itemRepo, err := items.NewSQLite(&items.SQLiteConfig{DB: db})
		s.Require().NoError(err)
		monsterRepo, err := monsters.NewSQLite(&monsters.SQLiteConfig{DB: db})
		s.Require().NoError(err)
		return repos{characters: charRepo, items: itemRepo, monsters: monsterRepo}
	}})
}

func TestScenariosRedis(t *testing.T) {
	suite.Run(t, &ScenarioTestSuite{newRepos: func(s *suite.Suite) repos {
		client, _ := testutils.CreateTestMiniredis(s.T())
		charRepo, err := characters.NewRedis(&characters.RedisConfig{Client: client})
		s.Require().NoError(err)
		itemRepo, err := items.NewRedis(&items.RedisConfig{Client: client})
		s.Require().NoError(err)
		monsterRepo, err := monsters.NewRedis(&monsters.RedisConfig{Client: client})
		s.Require().NoError(err)
		return repos{characters: charRepo, items: itemRepo, monsters: monsterRepo}
	}})
}

func (s *ScenarioTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repos = s.newRepos(&s.Suite)

	broadcaster := events.NewBroadcaster(32)
	_, s.feed = broadcaster.Subscribe()

	var err error
	s.equip, err = equip.New(&equip.Config{
		CharacterRepo: s.repos.characters,
		ItemRepo:      s.repos.items,
		Publisher:     broadcaster,
	})
	s.Require().NoError(err)
	s.loot, err = loot.New(&loot.Config{
		MonsterRepo: s.repos.monsters,
		ItemRepo:    s.repos.items,
		Publisher:   broadcaster,
	})
	s.Require().NoError(err)
	s.catalog, err = catalog.New(&catalog.Config{
		CharacterRepo: s.repos.characters,
		ItemRepo:      s.repos.items,
		MonsterRepo:   s.repos.monsters,
		EquipService:  s.equip,
		LootService:   s.loot,
		Publisher:     broadcaster,
	})
	s.Require().NoError(err)
}

func (s *ScenarioTestSuite) item(name string, category entities.Category) *entities.Item {
	out, err := s.catalog.CreateItem(s.ctx, &catalog.CreateItemInput{Name: name, Category: category, Agility: 1, Strength: 1, Stamina: 1})
	s.Require().NoError(err)
	return out.Item
}

func (s *ScenarioTestSuite) hero() *entities.Character {
	out, err := s.catalog.CreateCharacter(s.ctx, &catalog.CreateCharacterInput{Name: "Hero"})
	s.Require().NoError(err)
	return out.Character
}

func (s *ScenarioTestSuite) equippedIDs(characterID int64) []int64 {
	out, err := s.catalog.GetCharacter(s.ctx, &catalog.GetCharacterInput{ID: characterID})
	s.Require().NoError(err)
	return out.Character.EquippedIDs()
}

func (s *ScenarioTestSuite) TestEquipTwiceIsAlreadyEquipped() {
	hero := s.hero()
	sword := s.item("Schwert des Lichts", entities.CategoryWeapon)

	out, err := s.equip.EquipItem(s.ctx, &equip.EquipItemInput{CharacterID: hero.ID, ItemID: sword.ID})
	s.Require().NoError(err)
	s.Equal([]int64{sword.ID}, out.Character.EquippedIDs())

	_, err = s.equip.EquipItem(s.ctx, &equip.EquipItemInput{CharacterID: hero.ID, ItemID: sword.ID})
	s.True(errors.IsAlreadyEquipped(err), "got %v", err)
	s.Equal([]int64{sword.ID}, s.equippedIDs(hero.ID))
}

func (s *ScenarioTestSuite) TestSecondWeaponIsCategoryConflict() {
	hero := s.hero()
	sword := s.item("Schwert des Lichts", entities.CategoryWeapon)
	blade := s.item("Dunkelklinge", entities.CategoryWeapon)

	_, err := s.equip.EquipItem(s.ctx, &equip.EquipItemInput{CharacterID: hero.ID, ItemID: sword.ID})
	s.Require().NoError(err)

	_, err = s.equip.EquipItem(s.ctx, &equip.EquipItemInput{CharacterID: hero.ID, ItemID: blade.ID})
	s.True(errors.IsCategoryConflict(err), "got %v", err)
	s.Equal([]int64{sword.ID}, s.equippedIDs(hero.ID))
}

func (s *ScenarioTestSuite) TestArmorNextToWeapon() {
	hero := s.hero()
	sword := s.item("Schwert des Lichts", entities.CategoryWeapon)
	plate := s.item("Plattenrüstung", entities.CategoryArmor)

	_, err := s.equip.EquipItem(s.ctx, &equip.EquipItemInput{CharacterID: hero.ID, ItemID: sword.ID})
	s.Require().NoError(err)
	out, err := s.equip.EquipItem(s.ctx, &equip.EquipItemInput{CharacterID: hero.ID, ItemID: plate.ID})
	s.Require().NoError(err)
	s.Equal([]int64{sword.ID, plate.ID}, out.Character.EquippedIDs())
	s.Equal([]int64{sword.ID, plate.ID}, s.equippedIDs(hero.ID))
}

func (s *ScenarioTestSuite) TestDropOutOfRangeLeavesTableUnchanged() {
	monster, err := s.catalog.CreateMonster(s.ctx, &catalog.CreateMonsterInput{Name: "Goblin", Health: 30, Damage: 5})
	s.Require().NoError(err)
	sword := s.item("Schwert des Lichts", entities.CategoryWeapon)

	out, err := s.loot.AddDrop(s.ctx, &loot.AddDropInput{MonsterID: monster.Monster.ID, ItemID: sword.ID, DropChance: 0.5})
	s.Require().NoError(err)
	s.Require().Len(out.Monster.LootTable, 1)

	_, err = s.loot.AddDrop(s.ctx, &loot.AddDropInput{MonsterID: monster.Monster.ID, ItemID: sword.ID, DropChance: 1.5})
	s.True(errors.IsOutOfRange(err), "got %v", err)

	got, err := s.catalog.GetMonster(s.ctx, &catalog.GetMonsterInput{ID: monster.Monster.ID})
	s.Require().NoError(err)
	s.Require().Len(got.Monster.LootTable, 1)
	s.Equal(sword.ID, got.Monster.LootTable[0].Item.ID)
	s.InDelta(0.5, got.Monster.LootTable[0].DropChance, 1e-9)
}

func (s *ScenarioTestSuite) TestDuplicateDropSurfacesAsInternal() {
	monster, err := s.catalog.CreateMonster(s.ctx, &catalog.CreateMonsterInput{Name: "Ork", Health: 50, Damage: 10})
	s.Require().NoError(err)
	plate := s.item("Plattenrüstung", entities.CategoryArmor)

	_, err = s.loot.AddDrop(s.ctx, &loot.AddDropInput{MonsterID: monster.Monster.ID, ItemID: plate.ID, DropChance: 0.3})
	s.Require().NoError(err)
	_, err = s.loot.AddDrop(s.ctx, &loot.AddDropInput{MonsterID: monster.Monster.ID, ItemID: plate.ID, DropChance: 0.3})
	s.True(errors.IsInternal(err), "got %v", err)
}

func (s *ScenarioTestSuite) TestDeleteCharacterRemovesEquipment() {
	hero := s.hero()
	sword := s.item("Schwert des Lichts", entities.CategoryWeapon)
	_, err := s.equip.EquipItem(s.ctx, &equip.EquipItemInput{CharacterID: hero.ID, ItemID: sword.ID})
	s.Require().NoError(err)

	_, err = s.catalog.DeleteCharacter(s.ctx, &catalog.DeleteCharacterInput{ID: hero.ID})
	s.Require().NoError(err)

	_, err = s.catalog.GetCharacter(s.ctx, &catalog.GetCharacterInput{ID: hero.ID})
	s.True(errors.IsNotFound(err))

	left, err := s.repos.items.ListByCharacter(s.ctx, items.ListByCharacterInput{CharacterID: hero.ID})
	s.Require().NoError(err)
	s.Empty(left.Items)

	// nothing references the sword any more
	_, err = s.catalog.DeleteItem(s.ctx, &catalog.DeleteItemInput{ID: sword.ID})
	s.NoError(err)
}

func (s *ScenarioTestSuite) TestReplaceAllowsSameCategory() {
	hero := s.hero()
	sword := s.item("Schwert des Lichts", entities.CategoryWeapon)
	blade := s.item("Dunkelklinge", entities.CategoryWeapon)

	out, err := s.catalog.UpdateCharacter(s.ctx, &catalog.UpdateCharacterInput{
		ID:              hero.ID,
		Name:            "Hero",
		EquippedItemIDs: []int64{blade.ID, sword.ID, blade.ID},
	})
	s.Require().NoError(err)
	s.Equal([]int64{blade.ID, sword.ID}, out.Character.EquippedIDs())
	s.Equal([]int64{blade.ID, sword.ID}, s.equippedIDs(hero.ID))
}

func (s *ScenarioTestSuite) TestReplaceWithUnknownItemKeepsPreviousSet() {
	hero := s.hero()
	sword := s.item("Schwert des Lichts", entities.CategoryWeapon)
	_, err := s.equip.EquipItem(s.ctx, &equip.EquipItemInput{CharacterID: hero.ID, ItemID: sword.ID})
	s.Require().NoError(err)

	_, err = s.catalog.UpdateCharacter(s.ctx, &catalog.UpdateCharacterInput{
		ID:              hero.ID,
		Name:            "Hero",
		EquippedItemIDs: []int64{999},
	})
	s.True(errors.IsNotFound(err))
	s.Equal([]int64{sword.ID}, s.equippedIDs(hero.ID))
}

func (s *ScenarioTestSuite) TestUpdateMonsterReplacesLootTable() {
	monster, err := s.catalog.CreateMonster(s.ctx, &catalog.CreateMonsterInput{Name: "Troll", Health: 80, Damage: 15})
	s.Require().NoError(err)
	ring := s.item("Ring des Lebens", entities.CategoryAccessory)
	robe := s.item("Magierrobe", entities.CategoryArmor)
	_, err = s.loot.AddDrop(s.ctx, &loot.AddDropInput{MonsterID: monster.Monster.ID, ItemID: ring.ID, DropChance: 0.2})
	s.Require().NoError(err)

	out, err := s.catalog.UpdateMonster(s.ctx, &catalog.UpdateMonsterInput{
		ID: monster.Monster.ID, Name: "Bergtroll", Health: 95, Damage: 18, DropItemIDs: []int64{robe.ID},
	})
	s.Require().NoError(err)
	s.Equal("Bergtroll", out.Monster.Name)
	s.Require().Len(out.Monster.LootTable, 1)
	s.Equal(robe.ID, out.Monster.LootTable[0].Item.ID)
	s.InDelta(1.0, out.Monster.LootTable[0].DropChance, 1e-9)
}

func (s *ScenarioTestSuite) TestEventsFollowCommittedWrites() {
	hero := s.hero()
	plate := s.item("Plattenrüstung", entities.CategoryArmor)

	_, err := s.equip.EquipItem(s.ctx, &equip.EquipItemInput{CharacterID: hero.ID, ItemID: plate.ID})
	s.Require().NoError(err)
	_, err = s.equip.EquipItem(s.ctx, &equip.EquipItemInput{CharacterID: hero.ID, ItemID: plate.ID})
	s.Require().Error(err)

	s.Require().Len(s.feed, 1)
	event := <-s.feed
	s.Equal(events.TypeItemEquipped, event.Type)
	s.Equal(hero.ID, event.CharacterID)
	s.Equal(plate.ID, event.ItemID)
}
