package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/app"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Fill an empty catalog with fantasy items, monsters and characters",
	Long:  `Seed writes 10 items, 10 monsters with random loot tables and 3 equipped characters. The picks are the same on every run. A catalog that already has items is left alone.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		a, err := app.Open(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer func() {
			_ = a.Close() // nolint:errcheck // safe to ignore in cleanup
		}()

		result, err := runSeed(cmd.Context(), a.Services)
		if err != nil {
			return err
		}

		if result.Skipped {
			fmt.Fprintln(os.Stdout, "Catalog already has items, nothing seeded.")
			return nil
		}
		fmt.Fprintf(os.Stdout, "Seeded %d items, %d monsters (%d drops), %d characters (%d equipped items).\n",
			result.Items, result.Monsters, result.Drops, result.Characters, result.Equipped)
		return nil
	},
}

func init() {
	addStoreFlags(seedCmd)
}
