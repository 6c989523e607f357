package v1

import (
	"net/http"

	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/catalog"
	"github.com/Lindor-Limani/pwc-world-of-warcraft/internal/orchestrators/equip"
)

// CreateCharacter handles POST /characters
func (h *Handler) CreateCharacter(w http.ResponseWriter, r *http.Request) {
	var req CreateCharacterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.catalog.CreateCharacter(r.Context(), &catalog.CreateCharacterInput{Name: req.Name})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, convertCharacter(out.Character))
}

// GetCharacter handles GET /characters/{id}
func (h *Handler) GetCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.catalog.GetCharacter(r.Context(), &catalog.GetCharacterInput{ID: id})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertCharacter(out.Character))
}

// ListCharacters handles GET /characters
func (h *Handler) ListCharacters(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalog.ListCharacters(r.Context(), &catalog.ListCharactersInput{})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertCharacters(out.Characters))
}

// ListCharactersByName handles GET /characters/name/{name}
func (h *Handler) ListCharactersByName(w http.ResponseWriter, r *http.Request) {
	out, err := h.catalog.ListCharactersByName(r.Context(), &catalog.ListCharactersByNameInput{Name: r.PathValue("name")})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertCharacters(out.Characters))
}

// UpdateCharacter handles PUT /characters/{id}. The equipped list in the body
// replaces the current set.
func (h *Handler) UpdateCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req UpdateCharacterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, r, err)
		return
	}
	if err := matchRouteID(id, &req.ID); err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.catalog.UpdateCharacter(r.Context(), &catalog.UpdateCharacterInput{
		ID:              req.ID,
		Name:            req.Name,
		EquippedItemIDs: req.EquippedItemIDs,
	})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertCharacter(out.Character))
}

// DeleteCharacter handles DELETE /characters/{id}
func (h *Handler) DeleteCharacter(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if _, err := h.catalog.DeleteCharacter(r.Context(), &catalog.DeleteCharacterInput{ID: id}); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// EquipItem handles POST /characters/equip/{characterId}/{itemId}
func (h *Handler) EquipItem(w http.ResponseWriter, r *http.Request) {
	characterID, err := pathID(r, "characterId")
	if err != nil {
		writeError(w, r, err)
		return
	}
	itemID, err := pathID(r, "itemId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	out, err := h.equip.EquipItem(r.Context(), &equip.EquipItemInput{CharacterID: characterID, ItemID: itemID})
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, convertCharacter(out.Character))
}
