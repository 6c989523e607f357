package client

import (
	"github.com/spf13/cobra"
)

var (
	monsterName   string
	monsterHealth int
	monsterDamage int
	monsterID     int64
	dropChance    float64
)

var createMonsterCmd = &cobra.Command{
	Use:   "create-monster",
	Short: "Create a monster with an empty loot table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return invoke(cmd, "CreateMonster", map[string]any{
			"name":   monsterName,
			"health": monsterHealth,
			"damage": monsterDamage,
		})
	},
}

var getMonsterCmd = &cobra.Command{
	Use:   "get-monster",
	Short: "Get a monster with its loot table",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return invoke(cmd, "GetMonster", map[string]any{"id": monsterID})
	},
}

var addDropCmd = &cobra.Command{
	Use:   "add-drop",
	Short: "Add an item to a monster's loot table",
	Long:  `Add one loot table entry. The drop chance must lie in [0, 1].`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return invoke(cmd, "AddDrop", map[string]any{
			"monster_id":  monsterID,
			"item_id":     itemID,
			"drop_chance": dropChance,
		})
	},
}

func init() {
	createMonsterCmd.Flags().StringVar(&monsterName, "name", "", "Monster name (required)")
	createMonsterCmd.Flags().IntVar(&monsterHealth, "health", 0, "Health")
	createMonsterCmd.Flags().IntVar(&monsterDamage, "damage", 0, "Damage")
	_ = createMonsterCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init

	getMonsterCmd.Flags().Int64Var(&monsterID, "id", 0, "Monster ID (required)")
	_ = getMonsterCmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init

	addDropCmd.Flags().Int64Var(&monsterID, "monster-id", 0, "Monster ID (required)")
	addDropCmd.Flags().Int64Var(&itemID, "item-id", 0, "Item ID (required)")
	addDropCmd.Flags().Float64Var(&dropChance, "chance", 1.0, "Drop chance in [0, 1]")
	_ = addDropCmd.MarkFlagRequired("monster-id") // nolint:errcheck // safe to ignore in init
	_ = addDropCmd.MarkFlagRequired("item-id")    // nolint:errcheck // safe to ignore in init
}
