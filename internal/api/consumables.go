package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/erazemk/delavnica/internal/model"
	"github.com/erazemk/delavnica/internal/store"
)

// ConsumablesHandler handles consumable endpoints.
type ConsumablesHandler struct {
	DB *sql.DB
}

// List handles GET /api/consumables.
func (h *ConsumablesHandler) List(w http.ResponseWriter, r *http.Request) {
	consumables, err := store.ListConsumables(r.Context(), h.DB, queryFilter(r))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list consumables")
		return
	}
	if consumables == nil {
		consumables = []model.Consumable{}
	}
	jsonResponse(w, http.StatusOK, consumables)
}

// Create handles POST /api/consumables.
func (h *ConsumablesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.Consumable
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if req.Quantity < 0 {
		jsonError(w, http.StatusBadRequest, "quantity must not be negative")
		return
	}

	consumable, err := store.CreateConsumable(r.Context(), h.DB, &req)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create consumable")
		return
	}

	jsonResponse(w, http.StatusCreated, consumable)
}

// Get handles GET /api/consumables/{id}.
func (h *ConsumablesHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid consumable id")
		return
	}

	consumable, err := store.GetConsumable(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get consumable")
		return
	}
	if consumable == nil {
		jsonError(w, http.StatusNotFound, "consumable not found")
		return
	}

	jsonResponse(w, http.StatusOK, consumable)
}

// Update handles PUT /api/consumables/{id} with full-record replace semantics.
func (h *ConsumablesHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid consumable id")
		return
	}

	var req model.Consumable
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}
	if req.Quantity < 0 {
		jsonError(w, http.StatusBadRequest, "quantity must not be negative")
		return
	}

	if err := store.UpdateConsumable(r.Context(), h.DB, id, &req); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, http.StatusNotFound, "consumable not found")
			return
		}
		jsonError(w, http.StatusInternalServerError, "failed to update consumable")
		return
	}

	consumable, _ := store.GetConsumable(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, consumable)
}

// Delete handles DELETE /api/consumables/{id}.
func (h *ConsumablesHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid consumable id")
		return
	}

	if err := store.DeleteConsumable(r.Context(), h.DB, id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete consumable")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "consumable deleted"})
}

// Values handles GET /api/consumables/values/{field}.
func (h *ConsumablesHandler) Values(w http.ResponseWriter, r *http.Request) {
	distinctValues(w, r, h.DB, model.KindConsumable)
}

// UploadImage handles PUT /api/consumables/{id}/image.
func (h *ConsumablesHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	uploadImage(w, r, h.DB, model.KindConsumable)
}

// GetImage handles GET /api/consumables/{id}/image.
func (h *ConsumablesHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	getImage(w, r, h.DB, model.KindConsumable)
}
