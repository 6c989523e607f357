package v1

import (
	"net/http"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/catalog"
)

// CreateItem handles POST /items
func (h *Handler) CreateItem(w http.ResponseWriter, r *http.Request) {
	var req ItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.catalog.CreateItem(r.Context(), &catalog.CreateItemInput{
		Name:     req.Name,
		Category: parseCategory(req.Category),
		Agility:  req.Agility,
		Strength: req.Strength,
		Stamina:  req.Stamina,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, convertItem(out.Item))
}

// GetItem handles GET /items/{id}
func (h *Handler) GetItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.catalog.GetItem(r.Context(), &catalog.GetItemInput{ID: id})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertItem(out.Item))
}

// ListItems handles GET /items
func (h *Handler) ListItems(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalog.ListItems(r.Context(), &catalog.ListItemsInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertItems(out.Items))
}

// ListItemsByName handles GET /items/name/{name}
func (h *Handler) ListItemsByName(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalog.ListItemsByName(r.Context(), &catalog.ListItemsByNameInput{Name: r.PathValue("name")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertItems(out.Items))
}

// ListItemsByCategory handles GET /items/category/{category}
func (h *Handler) ListItemsByCategory(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalog.ListItemsByCategory(r.Context(), &catalog.ListItemsByCategoryInput{
		Category: parseCategory(r.PathValue("category")),
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertItems(out.Items))
}

// ListItemsByCharacter handles GET /items/character/{characterId}
func (h *Handler) ListItemsByCharacter(w http.ResponseWriter, r *http.Request) {
	characterID, err := pathID(r, "characterId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.catalog.ListItemsByCharacter(r.Context(), &catalog.ListItemsByCharacterInput{CharacterID: characterID})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertItems(out.Items))
}

// UpdateItem handles PUT /items/{id}
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req ItemRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := matchRouteID(id, &req.ID); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.catalog.UpdateItem(r.Context(), &catalog.UpdateItemInput{
		ID:       req.ID,
		Name:     req.Name,
		Category: parseCategory(req.Category),
		Agility:  req.Agility,
		Strength: req.Strength,
		Stamina:  req.Stamina,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertItem(out.Item))
}

// DeleteItem handles DELETE /items/{id}
func (h *Handler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.catalog.DeleteItem(r.Context(), &catalog.DeleteItemInput{ID: id}); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
