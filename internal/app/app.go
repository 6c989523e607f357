// Package app wires stores, engines and transports into a running catalog
package app

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/config"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/events"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/catalog"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/equip"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/loot"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/pkg/clock"
	redisclient "github.com/Lindor-Limani/pwc-world-of-warcraft/internal/redis"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/characters"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/items"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/repositories/monsters"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/storage/sqlite"
)

// Repositories groups the three entity stores of one backend
type Repositories struct {
	Characters characters.Repository
	Items      items.Repository
	Monsters   monsters.Repository
}

// Services groups the engines and the catalog service
type Services struct {
	Catalog catalog.Service
	Equip   equip.Service
	Loot    loot.Service
	Events  *events.Broadcaster
}

// NewServices builds the engines and the catalog on top of repos. A nil
// broadcaster disables the event feed.
func NewServices(repos Repositories, broadcaster *events.Broadcaster, clk clock.Clock) (*Services, error) {
	var publisher events.Publisher
	if broadcaster != nil {
		publisher = broadcaster
	}

	equipSvc, err := equip.New(&equip.Config{
		CharacterRepo: repos.Characters,
		ItemRepo:      repos.Items,
		Publisher:     publisher,
		Clock:         clk,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create equip engine")
	}

	lootSvc, err := loot.New(&loot.Config{
		MonsterRepo: repos.Monsters,
		ItemRepo:    repos.Items,
		Publisher:   publisher,
		Clock:       clk,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create loot engine")
	}

	catalogSvc, err := catalog.New(&catalog.Config{
		CharacterRepo: repos.Characters,
		ItemRepo:      repos.Items,
		MonsterRepo:   repos.Monsters,
		EquipService:  equipSvc,
		LootService:   lootSvc,
		Publisher:     publisher,
		Clock:         clk,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create catalog service")
	}

	return &Services{Catalog: catalogSvc, Equip: equipSvc, Loot: lootSvc, Events: broadcaster}, nil
}

// App owns the open store and the services built on it
type App struct {
	*Services
	closeStore func() error
}

// Open connects the store selected by cfg and builds the services on it
func Open(ctx context.Context, cfg *config.Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	repos, closeStore, err := openRepositories(ctx, cfg)
	if err != nil {
		return nil, err
	}

	services, err := NewServices(repos, events.NewBroadcaster(0), clock.New())
	if err != nil {
		_ = closeStore()
		return nil, err
	}
	return &App{Services: services, closeStore: closeStore}, nil
}

// Close ends the event feed and releases the store
func (a *App) Close() error {
	if a == nil {
		return nil
	}
	if a.Events != nil {
		a.Events.Close()
	}
	if a.closeStore == nil {
		return nil
	}
	return a.closeStore()
}

func openRepositories(ctx context.Context, cfg *config.Config) (Repositories, func() error, error) {
	switch cfg.Store {
	case config.StoreRedis:
		return openRedis(ctx, cfg)
	default:
		return openSQLite(ctx, cfg)
	}
}

func openSQLite(ctx context.Context, cfg *config.Config) (Repositories, func() error, error) {
	if dir := filepath.Dir(cfg.SQLitePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return Repositories{}, nil, errors.Wrap(err, "failed to create storage dir")
		}
	}

	db, err := sqlite.Open(ctx, cfg.SQLitePath)
	if err != nil {
		return Repositories{}, nil, errors.Wrap(err, "failed to open sqlite store")
	}

	repos, err := SQLiteRepositories(db)
	if err != nil {
		_ = db.Close()
		return Repositories{}, nil, err
	}

	slog.InfoContext(ctx, "sqlite store opened", "path", cfg.SQLitePath)
	return repos, db.Close, nil
}

// SQLiteRepositories builds the SQLite-backed stores on an open database
func SQLiteRepositories(db *sqlite.DB) (Repositories, error) {
	charRepo, err := characters.NewSQLite(&characters.SQLiteConfig{DB: db})
	if err != nil {
		return Repositories{}, err
	}
	itemRepo, err := items.NewSQLite(&items.SQLiteConfig{DB: db})
	if err != nil {
		return Repositories{}, err
	}
	monsterRepo, err := monsters.NewSQLite(&monsters.SQLiteConfig{DB: db})
	if err != nil {
		return Repositories{}, err
	}
	return Repositories{Characters: charRepo, Items: itemRepo, Monsters: monsterRepo}, nil
}

func openRedis(ctx context.Context, cfg *config.Config) (Repositories, func() error, error) {
	client, err := redisclient.NewClient(cfg.RedisAddr, &redisclient.Options{PoolSize: cfg.RedisPoolSize})
	if err != nil {
		return Repositories{}, nil, err
	}
	if err := redisclient.Ping(ctx, client); err != nil {
		_ = client.Close()
		return Repositories{}, nil, errors.Wrapf(err, "failed to open redis store at %s", cfg.RedisAddr)
	}

	repos, err := RedisRepositories(client)
	if err != nil {
		_ = client.Close()
		return Repositories{}, nil, err
	}

	slog.InfoContext(ctx, "redis store connected", "addr", cfg.RedisAddr)
	return repos, client.Close, nil
}

// RedisRepositories builds the Redis-backed stores on an existing client
func RedisRepositories(client redisclient.Client) (Repositories, error) {
	charRepo, err := characters.NewRedis(&characters.RedisConfig{Client: client})
	if err != nil {
		return Repositories{}, err
	}
	itemRepo, err := items.NewRedis(&items.RedisConfig{Client: client})
	if err != nil {
		return Repositories{}, err
	}
	monsterRepo, err := monsters.NewRedis(&monsters.RedisConfig{Client: client})
	if err != nil {
		return Repositories{}, err
	}
	return Repositories{Characters: charRepo, Items: itemRepo, Monsters: monsterRepo}, nil
}
