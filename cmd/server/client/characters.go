package client

import (
	"github.com/spf13/cobra"
)

var (
	characterName string
	characterID   int64
	itemID        int64
)

var createCharacterCmd = &cobra.Command{
	Use:   "create-character",
	Short: "Create a character",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return invoke(cmd, "CreateCharacter", map[string]any{"name": characterName})
	},
}

var getCharacterCmd = &cobra.Command{
	Use:   "get-character",
	Short: "Get a character with its equipped items",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return invoke(cmd, "GetCharacter", map[string]any{"id": characterID})
	},
}

var listCharactersCmd = &cobra.Command{
	Use:   "list-characters",
	Short: "List characters, optionally by exact name",
	RunE: func(cmd *cobra.Command, _ []string) error {
		if characterName != "" {
			return invoke(cmd, "ListCharactersByName", map[string]any{"name": characterName})
		}
		return invoke(cmd, "ListCharacters", map[string]any{})
	},
}

var equipCmd = &cobra.Command{
	Use:   "equip",
	Short: "Equip an item on a character",
	Long:  `Equip one item. Fails when the item is already equipped or its category slot is taken.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return invoke(cmd, "EquipItem", map[string]any{"character_id": characterID, "item_id": itemID})
	},
}

func init() {
	createCharacterCmd.Flags().StringVar(&characterName, "name", "", "Character name (required)")
	_ = createCharacterCmd.MarkFlagRequired("name") // nolint:errcheck // safe to ignore in init

	getCharacterCmd.Flags().Int64Var(&characterID, "id", 0, "Character ID (required)")
	_ = getCharacterCmd.MarkFlagRequired("id") // nolint:errcheck // safe to ignore in init

	listCharactersCmd.Flags().StringVar(&characterName, "name", "", "Exact name filter")

	equipCmd.Flags().Int64Var(&characterID, "character-id", 0, "Character ID (required)")
	equipCmd.Flags().Int64Var(&itemID, "item-id", 0, "Item ID (required)")
	_ = equipCmd.MarkFlagRequired("character-id") // nolint:errcheck // safe to ignore in init
	_ = equipCmd.MarkFlagRequired("item-id")      // nolint:errcheck // safe to ignore in init
}
