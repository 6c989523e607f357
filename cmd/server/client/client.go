// Package client provides commands that call a running catalog over gRPC
package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	grpcv1alpha1 "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/handlers/grpc/v1alpha1"
)

var (
	// Connection flags
	serverAddr string
	timeout    time.Duration
)

// ClientCmd is the root command for all client commands
var ClientCmd = &cobra.Command{
	Use:   "client",
	Short: "Call the catalog gRPC service",
	Long:  `Client commands make real gRPC requests against a running catalog server and print the JSON response.`,
}

func init() {
	ClientCmd.PersistentFlags().StringVar(&serverAddr, "server", "localhost:50051", "gRPC server address")
	ClientCmd.PersistentFlags().DurationVar(&timeout, "timeout", 30*time.Second, "Request timeout")

	ClientCmd.AddCommand(callCmd)

	// Characters
	ClientCmd.AddCommand(createCharacterCmd)
	ClientCmd.AddCommand(getCharacterCmd)
	ClientCmd.AddCommand(listCharactersCmd)
	ClientCmd.AddCommand(equipCmd)

	// Items
	ClientCmd.AddCommand(createItemCmd)
	ClientCmd.AddCommand(listItemsCmd)

	// Monsters
	ClientCmd.AddCommand(createMonsterCmd)
	ClientCmd.AddCommand(getMonsterCmd)
	ClientCmd.AddCommand(addDropCmd)
}

// createConnection creates a gRPC connection to the server
func createConnection() (*grpc.ClientConn, error) {
	conn, err := grpc.NewClient(serverAddr,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %w", err)
	}

	return conn, nil
}

// invoke calls one catalog method and prints the response as indented JSON
func invoke(cmd *cobra.Command, method string, fields map[string]any) error {
	conn, err := createConnection()
	if err != nil {
		return err
	}
	defer func() {
		_ = conn.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
	defer cancel()

	resp, err := grpcv1alpha1.NewClient(conn).Call(ctx, method, fields)
	if err != nil {
		return fmt.Errorf("%s failed: %w", method, err)
	}
	return printJSON(cmd.OutOrStdout(), resp)
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return errors.Wrap(err, "failed to print response")
	}
	return nil
}

var callData string

var callCmd = &cobra.Command{
	Use:   "call METHOD",
	Short: "Call any catalog method with a JSON request",
	Long: `Call any catalog method by name. The request fields are given as a JSON object,
for example: client call UpdateMonster --data '{"id":1,"name":"Goblin","health":30,"damage":5,"drop_item_ids":[2,3]}'`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fields := map[string]any{}
		if callData != "" {
			if err := json.Unmarshal([]byte(callData), &fields); err != nil {
				return fmt.Errorf("invalid --data: %w", err)
			}
		}
		return invoke(cmd, args[0], fields)
	},
}

func init() {
	callCmd.Flags().StringVar(&callData, "data", "", "Request fields as a JSON object")
}
