package client

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/entities"
)

var (
	itemName     string
	itemCategory string
	itemAgility  int
	itemStrength int
	itemStamina  int
)

var createItemCmd = &cobra.Command{
	Use:   "create-item",
	Short: "Create an item",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return invoke(cmd, "CreateItem", map[string]any{
			"name":     itemName,
			"category": itemCategory,
			"agility":  itemAgility,
			"strength": itemStrength,
			"stamina":  itemStamina,
		})
	},
}

var listItemsCmd = &cobra.Command{
	Use:   "list-items",
	Short: "List items, optionally filtered by name, category or equipping character",
	RunE: func(cmd *cobra.Command, _ []string) error {
		switch {
		case itemName != "":
			return invoke(cmd, "ListItemsByName", map[string]any{"name": itemName})
		case itemCategory != "":
			return invoke(cmd, "ListItemsByCategory", map[string]any{"category": itemCategory})
		case characterID != 0:
			return invoke(cmd, "ListItemsByCharacter", map[string]any{"character_id": characterID})
		default:
			return invoke(cmd, "ListItems", map[string]any{})
		}
	},
}

func init() {
	categories := strings.Join(entities.CategoryNames(), ", ")

	createItemCmd.Flags().StringVar(&itemName, "name", "", "Item name (required)")
	createItemCmd.Flags().StringVar(&itemCategory, "category", "", "One of "+categories+" (required)")
	createItemCmd.Flags().IntVar(&itemAgility, "agility", 0, "Agility")
	createItemCmd.Flags().IntVar(&itemStrength, "strength", 0, "Strength")
	createItemCmd.Flags().IntVar(&itemStamina, "stamina", 0, "Stamina")
	_ = createItemCmd.MarkFlagRequired("name")     // nolint:errcheck // safe to ignore in init
	_ = createItemCmd.MarkFlagRequired("category") // nolint:errcheck // safe to ignore in init

	listItemsCmd.Flags().StringVar(&itemName, "name", "", "Exact name filter")
	listItemsCmd.Flags().StringVar(&itemCategory, "category", "", "Category filter, one of "+categories)
	listItemsCmd.Flags().Int64Var(&characterID, "character-id", 0, "Only items equipped by this character")
	listItemsCmd.MarkFlagsMutuallyExclusive("name", "category", "character-id")
}
