// Package seed fills an empty catalog with a fixed set of fantasy items,
// monsters and characters
package seed

import (
	"context"
	"log/slog"
	"math"
	"math/rand/v2"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/catalog"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/equip"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/loot"
)

// DefaultSeed makes every run pick the same drops and equipment
const DefaultSeed uint64 = 1335

const (
	minDrops       = 1
	maxDrops       = 3
	minSeedChance  = 0.1
	seedChanceSpan = 0.5
)

// ItemSeed describes one seeded item
type ItemSeed struct {
	Name     string
	Category entities.Category
	Agility  int
	Strength int
	Stamina  int
}

// MonsterSeed describes one seeded monster
type MonsterSeed struct {
	Name   string
	Health int
	Damage int
}

// Items are created in this order
var Items = []ItemSeed{
	{Name: "Schwert des Lichts", Category: entities.CategoryWeapon, Agility: 5, Strength: 8, Stamina: 3},
	{Name: "Dunkelklinge", Category: entities.CategoryWeapon, Agility: 4, Strength: 9, Stamina: 2},
	{Name: "Drachenzahn", Category: entities.CategoryWeapon, Agility: 6, Strength: 7, Stamina: 4},
	{Name: "Plattenrüstung", Category: entities.CategoryArmor, Agility: 2, Strength: 3, Stamina: 9},
	{Name: "Lederwams", Category: entities.CategoryArmor, Agility: 6, Strength: 2, Stamina: 6},
	{Name: "Magierrobe", Category: entities.CategoryArmor, Agility: 5, Strength: 1, Stamina: 7},
	{Name: "Ring der Macht", Category: entities.CategoryAccessory, Agility: 3, Strength: 5, Stamina: 2},
	{Name: "Ring der Geschwindigkeit", Category: entities.CategoryAccessory, Agility: 8, Strength: 2, Stamina: 1},
	{Name: "Ring des Lebens", Category: entities.CategoryAccessory, Agility: 2, Strength: 2, Stamina: 8},
	{Name: "Ring der Schatten", Category: entities.CategoryAccessory, Agility: 7, Strength: 3, Stamina: 2},
}

// Monsters are created in this order
var Monsters = []MonsterSeed{
	{Name: "Goblin", Health: 30, Damage: 5},
	{Name: "Ork", Health: 50, Damage: 10},
	{Name: "Dunkelwolf", Health: 40, Damage: 8},
	{Name: "Schattengeist", Health: 25, Damage: 12},
	{Name: "Feuerdrache", Health: 120, Damage: 25},
	{Name: "Troll", Health: 80, Damage: 15},
	{Name: "Skelettkrieger", Health: 35, Damage: 7},
	{Name: "Hexe", Health: 28, Damage: 14},
	{Name: "Riesenspinne", Health: 45, Damage: 9},
	{Name: "Waldschrat", Health: 60, Damage: 11},
}

// Characters are created in this order
var Characters = []string{"Arin", "Lysandra", "Borin"}

// Config holds dependencies for the seeder
type Config struct {
	CatalogService catalog.Service
	EquipService   equip.Service
	LootService    loot.Service
	// Seed drives drop and equipment picks; zero uses DefaultSeed
	Seed uint64
}

// Validate ensures all required dependencies are present
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.CatalogService == nil {
		vb.RequiredField("CatalogService")
	}
	if c.EquipService == nil {
		vb.RequiredField("EquipService")
	}
	if c.LootService == nil {
		vb.RequiredField("LootService")
	}
	return vb.Build()
}

// Seeder writes the seed data through the catalog and the engines
type Seeder struct {
	catalog catalog.Service
	equip   equip.Service
	loot    loot.Service
	seed    uint64
}

// Result counts what a run created
type Result struct {
	Skipped    bool
	Items      int
	Monsters   int
	Characters int
	Drops      int
	Equipped   int
}

// New creates a seeder
func New(cfg *Config) (*Seeder, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = DefaultSeed
	}
	return &Seeder{
		catalog: cfg.CatalogService,
		equip:   cfg.EquipService,
		loot:    cfg.LootService,
		seed:    seed,
	}, nil
}

// Run seeds the catalog. A catalog that already holds items is left alone.
func (s *Seeder) Run(ctx context.Context) (*Result, error) {
	existing, err := s.catalog.ListItems(ctx, &catalog.ListItemsInput{})
	if err != nil {
		return nil, errors.Wrap(err, "failed to inspect catalog")
	}
	if len(existing.Items) > 0 {
		slog.InfoContext(ctx, "catalog already seeded", "items", len(existing.Items))
		return &Result{Skipped: true}, nil
	}

	rng := rand.New(rand.NewPCG(s.seed, s.seed))
	result := &Result{}

	items, err := s.createItems(ctx)
	if err != nil {
		return nil, err
	}
	result.Items = len(items)

	monsterIDs, err := s.createMonsters(ctx)
	if err != nil {
		return nil, err
	}
	result.Monsters = len(monsterIDs)

	characterIDs, err := s.createCharacters(ctx)
	if err != nil {
		return nil, err
	}
	result.Characters = len(characterIDs)

	for _, monsterID := range monsterIDs {
		count := minDrops + rng.IntN(maxDrops-minDrops+1)
		for _, idx := range rng.Perm(len(items))[:count] {
			chance := math.Round((rng.Float64()*seedChanceSpan+minSeedChance)*100) / 100
			if _, err := s.loot.AddDrop(ctx, &loot.AddDropInput{
				MonsterID:  monsterID,
				ItemID:     items[idx].ID,
				DropChance: chance,
			}); err != nil {
				return nil, errors.Wrapf(err, "failed to seed drop for monster %d", monsterID)
			}
			result.Drops++
		}
	}

	byCategory := make(map[entities.Category][]*entities.Item)
	for _, item := range items {
		byCategory[item.Category] = append(byCategory[item.Category], item)
	}
	for _, characterID := range characterIDs {
		for _, category := range entities.AllCategories() {
			candidates := byCategory[category]
			if len(candidates) == 0 {
				continue
			}
			pick := candidates[rng.IntN(len(candidates))]
			if _, err := s.equip.EquipItem(ctx, &equip.EquipItemInput{CharacterID: characterID, ItemID: pick.ID}); err != nil {
				return nil, errors.Wrapf(err, "failed to equip seed item for character %d", characterID)
			}
			result.Equipped++
		}
	}

	slog.InfoContext(ctx, "catalog seeded",
		"items", result.Items,
		"monsters", result.Monsters,
		"characters", result.Characters,
		"drops", result.Drops)
	return result, nil
}

func (s *Seeder) createItems(ctx context.Context) ([]*entities.Item, error) {
	created := make([]*entities.Item, 0, len(Items))
	for _, entry := range Items {
		out, err := s.catalog.CreateItem(ctx, &catalog.CreateItemInput{
			Name:     entry.Name,
			Category: entry.Category,
			Agility:  entry.Agility,
			Strength: entry.Strength,
			Stamina:  entry.Stamina,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to seed item %q", entry.Name)
		}
		created = append(created, out.Item)
	}
	return created, nil
}

func (s *Seeder) createMonsters(ctx context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(Monsters))
	for _, entry := range Monsters {
		out, err := s.catalog.CreateMonster(ctx, &catalog.CreateMonsterInput{
			Name:   entry.Name,
			Health: entry.Health,
			Damage: entry.Damage,
		})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to seed monster %q", entry.Name)
		}
		ids = append(ids, out.Monster.ID)
	}
	return ids, nil
}

func (s *Seeder) createCharacters(ctx context.Context) ([]int64, error) {
	ids := make([]int64, 0, len(Characters))
	for _, name := range Characters {
		out, err := s.catalog.CreateCharacter(ctx, &catalog.CreateCharacterInput{Name: name})
		if err != nil {
			return nil, errors.Wrapf(err, "failed to seed character %q", name)
		}
		ids = append(ids, out.Character.ID)
	}
	return ids, nil
}
