package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/app"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/config"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/seed"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/telemetry"
)

const serviceName = "pwc-catalog"

var (
	envFile    string
	httpAddr   string
	grpcAddr   string
	store      string
	sqlitePath string
	redisAddr  string
	seedOnBoot bool
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Start the REST and gRPC servers",
	Long:  `Start the catalog with its REST API, websocket event feed and gRPC service. Flags override environment settings.`,
	RunE:  runServer,
}

func init() {
	addStoreFlags(serverCmd)
	serverCmd.Flags().StringVar(&httpAddr, "http-addr", "", "REST listen address (PWC_HTTP_ADDR)")
	serverCmd.Flags().StringVar(&grpcAddr, "grpc-addr", "", "gRPC listen address (PWC_GRPC_ADDR)")
	serverCmd.Flags().BoolVar(&seedOnBoot, "seed", false, "Seed an empty catalog before serving")
}

func addStoreFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&envFile, "env-file", "", "Read settings from this .env file instead of ./.env")
	cmd.Flags().StringVar(&store, "store", "", "Store backend, sqlite or redis (PWC_STORE)")
	cmd.Flags().StringVar(&sqlitePath, "sqlite-path", "", "SQLite database file (PWC_SQLITE_PATH)")
	cmd.Flags().StringVar(&redisAddr, "redis-addr", "", "Redis address (PWC_REDIS_ADDR)")
}

// loadConfig reads the environment and applies any flags that were set
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	cfg, err := config.Load(files...)
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	overrides := map[string]*string{
		"http-addr":   &cfg.HTTPAddr,
		"grpc-addr":   &cfg.GRPCAddr,
		"store":       &cfg.Store,
		"sqlite-path": &cfg.SQLitePath,
		"redis-addr":  &cfg.RedisAddr,
	}
	for name, target := range overrides {
		if flags.Lookup(name) == nil || !flags.Changed(name) {
			continue
		}
		value, err := flags.GetString(name)
		if err != nil {
			return nil, err
		}
		*target = value
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func runServer(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	logger := cfg.Logger(os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := telemetry.Setup(ctx, serviceName, cfg.OTelEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Warn("tracing shutdown failed", "error", err)
		}
	}()

	a, err := app.Open(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := a.Close(); err != nil {
			logger.Warn("failed to close store", "error", err)
		}
	}()

	if seedOnBoot {
		if _, err := runSeed(ctx, a.Services); err != nil {
			return err
		}
	}

	server, err := app.NewServer(&app.ServerConfig{
		HTTPAddr:        cfg.HTTPAddr,
		GRPCAddr:        cfg.GRPCAddr,
		Services:        a.Services,
		Logger:          logger,
		ShutdownTimeout: cfg.ShutdownTimeout,
	})
	if err != nil {
		return err
	}

	logger.Info("catalog server starting",
		"store", cfg.Store,
		"http_addr", server.HTTPAddr(),
		"grpc_addr", server.GRPCAddr())
	return server.Serve(ctx)
}

func runSeed(ctx context.Context, services *app.Services) (*seed.Result, error) {
	seeder, err := seed.New(&seed.Config{
		CatalogService: services.Catalog,
		EquipService:   services.Equip,
		LootService:    services.Loot,
	})
	if err != nil {
		return nil, err
	}
	return seeder.Run(ctx)
}
