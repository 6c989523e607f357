package entities_test

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
)

type EntitiesTestSuite struct {
	suite.Suite
}

func TestEntitiesSuite(t *testing.T) {
	suite.Run(t, new(EntitiesTestSuite))
}

func (s *EntitiesTestSuite) TestParseCategory() {
	testCases := []struct {
		input string
		want  entities.Category
		ok    bool
	}{
		{"weapon", entities.CategoryWeapon, true},
		{"Armor", entities.CategoryArmor, true},
		{" ACCESSORY ", entities.CategoryAccessory, true},
		{"shield", entities.Category("shield"), false},
		{"", entities.Category(""), false},
	}

	for _, tc := range testCases {
		s.Run(tc.input, func() {
			got, ok := entities.ParseCategory(tc.input)
			s.Equal(tc.ok, ok)
			s.Equal(tc.want, got)
		})
	}
}

func (s *EntitiesTestSuite) TestCharacterEquippedLookups() {
	sword := &entities.Item{ID: 1, Name: "Schwert des Lichts", Category: entities.CategoryWeapon}
	ring := &entities.Item{ID: 7, Name: "Ring der Macht", Category: entities.CategoryAccessory}
	char := &entities.Character{ID: 3, Name: "Arin", Equipped: []*entities.Item{sword, ring}}

	s.True(char.HasEquipped(1))
	s.False(char.HasEquipped(2))
	s.Equal(sword, char.EquippedInCategory(entities.CategoryWeapon))
	s.Nil(char.EquippedInCategory(entities.CategoryArmor))
	s.Equal([]int64{1, 7}, char.EquippedIDs())
}

func (s *EntitiesTestSuite) TestMonsterDropItemIDs() {
	m := &entities.Monster{
		ID:   1,
		Name: "Goblin",
		LootTable: []*entities.LootEntry{
			{Item: &entities.Item{ID: 4}, DropChance: 0.25},
			{Item: &entities.Item{ID: 9}, DropChance: 0.5},
		},
	}

	s.Equal([]int64{4, 9}, m.DropItemIDs())
}

func (s *EntitiesTestSuite) TestDistinctIDs() {
	s.Equal([]int64{3, 1, 2}, entities.DistinctIDs([]int64{3, 1, 3, 2, 1}))
	s.Empty(entities.DistinctIDs(nil))
}
