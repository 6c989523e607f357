// Package v1 serves the catalog over HTTP/JSON
package v1

import (
	"log/slog"
	"net/http"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/errors"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/events"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/catalog"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/equip"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/loot"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/pkg/idgen"
)

// HandlerConfig holds dependencies for the handler
type HandlerConfig struct {
	CatalogService catalog.Service
	EquipService   equip.Service
	LootService    loot.Service
	// Events enables GET /events when set
	Events *events.Broadcaster
	// RequestIDs generates ids for requests that arrive without one
	RequestIDs idgen.Generator
	Logger     *slog.Logger
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
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

// Handler implements the REST routes of the catalog
type Handler struct {
	catalog catalog.Service
	equip   equip.Service
	loot    loot.Service
	events  *events.Broadcaster
	ids     idgen.Generator
	logger  *slog.Logger
}

// NewHandler creates a new handler with the given configuration
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Handler{
		catalog: cfg.CatalogService,
		equip:   cfg.EquipService,
		loot:    cfg.LootService,
		events:  cfg.Events,
		ids:     cfg.RequestIDs,
		logger:  logger,
	}, nil
}

// Routes returns the mux with every route and the standard middleware
func (h *Handler) Routes() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /characters", h.CreateCharacter)
	mux.HandleFunc("GET /characters", h.ListCharacters)
	mux.HandleFunc("GET /characters/name/{name}", h.ListCharactersByName)
	mux.HandleFunc("GET /characters/{id}", h.GetCharacter)
	mux.HandleFunc("PUT /characters/{id}", h.UpdateCharacter)
	mux.HandleFunc("DELETE /characters/{id}", h.DeleteCharacter)
	mux.HandleFunc("POST /characters/equip/{characterId}/{itemId}", h.EquipItem)

	mux.HandleFunc("POST /items", h.CreateItem)
	mux.HandleFunc("GET /items", h.ListItems)
	mux.HandleFunc("GET /items/name/{name}", h.ListItemsByName)
	mux.HandleFunc("GET /items/category/{category}", h.ListItemsByCategory)
	mux.HandleFunc("GET /items/character/{characterId}", h.ListItemsByCharacter)
	mux.HandleFunc("GET /items/{id}", h.GetItem)
	mux.HandleFunc("PUT /items/{id}", h.UpdateItem)
	mux.HandleFunc("DELETE /items/{id}", h.DeleteItem)

	mux.HandleFunc("POST /monsters", h.CreateMonster)
	mux.HandleFunc("GET /monsters", h.ListMonsters)
	mux.HandleFunc("GET /monsters/name/{name}", h.ListMonstersByName)
	mux.HandleFunc("GET /monsters/{id}", h.GetMonster)
	mux.HandleFunc("PUT /monsters/{id}", h.UpdateMonster)
	mux.HandleFunc("DELETE /monsters/{id}", h.DeleteMonster)
	mux.HandleFunc("POST /monsters/{id}/drops", h.AddDrop)

	if h.events != nil {
		mux.HandleFunc("GET /events", h.StreamEvents)
	}

	return Chain(mux, RequestID(h.ids), Logging(h.logger), RecoverPanic(h.logger))
}
