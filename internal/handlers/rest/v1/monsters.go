package v1

import (
	"net/http"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/catalog"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/loot"
)

// CreateMonster handles POST /monsters
func (h *Handler) CreateMonster(w http.ResponseWriter, r *http.Request) {
	var req CreateMonsterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.catalog.CreateMonster(r.Context(), &catalog.CreateMonsterInput{
		Name:   req.Name,
		Health: req.Health,
		Damage: req.Damage,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, convertMonster(out.Monster))
}

// GetMonster handles GET /monsters/{id}
func (h *Handler) GetMonster(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.catalog.GetMonster(r.Context(), &catalog.GetMonsterInput{ID: id})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertMonster(out.Monster))
}

// ListMonsters handles GET /monsters
func (h *Handler) ListMonsters(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalog.ListMonsters(r.Context(), &catalog.ListMonstersInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertMonsters(out.Monsters))
}

// ListMonstersByName handles GET /monsters/name/{name}
func (h *Handler) ListMonstersByName(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalog.ListMonstersByName(r.Context(), &catalog.ListMonstersByNameInput{Name: r.PathValue("name")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertMonsters(out.Monsters))
}

// UpdateMonster handles PUT /monsters/{id}. The drop list replaces the loot
// table and every entry gets the default chance.
func (h *Handler) UpdateMonster(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req UpdateMonsterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := matchRouteID(id, &req.ID); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.catalog.UpdateMonster(r.Context(), &catalog.UpdateMonsterInput{
		ID:          req.ID,
		Name:        req.Name,
		Health:      req.Health,
		Damage:      req.Damage,
		DropItemIDs: req.DropItemIDs,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertMonster(out.Monster))
}

// DeleteMonster handles DELETE /monsters/{id}
func (h *Handler) DeleteMonster(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.catalog.DeleteMonster(r.Context(), &catalog.DeleteMonsterInput{ID: id}); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddDrop handles POST /monsters/{id}/drops
func (h *Handler) AddDrop(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req AddDropRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.loot.AddDrop(r.Context(), &loot.AddDropInput{
		MonsterID:  id,
		ItemID:     req.ItemID,
		DropChance: req.DropChance,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertMonster(out.Monster))
}
