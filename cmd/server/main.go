// Package main is the pwc command: the catalog server, its seeder and a gRPC
// client.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:           "pwc",
	Short:         "RPG catalog server",
	Long:          `pwc serves a catalog of characters, items and monsters over REST and gRPC, with equip and loot rules enforced on every write.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	rootCmd.AddCommand(serverCmd, seedCmd, client.ClientCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
