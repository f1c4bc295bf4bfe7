package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/erazemk/delavnica/internal/model"
	"github.com/erazemk/delavnica/internal/store"
)

// FastenersHandler handles fastener endpoints.
type FastenersHandler struct {
	DB *sql.DB
}

// List handles GET /api/fasteners.
func (h *FastenersHandler) List(w http.ResponseWriter, r *http.Request) {
	fasteners, err := store.ListFasteners(r.Context(), h.DB, queryFilter(r))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list fasteners")
		return
	}
	if fasteners == nil {
		fasteners = []model.Fastener{}
	}
	jsonResponse(w, http.StatusOK, fasteners)
}

// Create handles POST /api/fasteners. Fasteners have no name field; the
// category is the required identifying field.
func (h *FastenersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.Fastener
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Category == "" {
		jsonError(w, http.StatusBadRequest, "category required")
		return
	}
	if req.Quantity < 0 {
		jsonError(w, http.StatusBadRequest, "quantity must not be negative")
		return
	}

	fastener, err := store.CreateFastener(r.Context(), h.DB, &req)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create fastener")
		return
	}

	jsonResponse(w, http.StatusCreated, fastener)
}

// Get handles GET /api/fasteners/{id}.
func (h *FastenersHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid fastener id")
		return
	}

	fastener, err := store.GetFastener(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get fastener")
		return
	}
	if fastener == nil {
		jsonError(w, http.StatusNotFound, "fastener not found")
		return
	}

	jsonResponse(w, http.StatusOK, fastener)
}

// Update handles PUT /api/fasteners/{id} with full-record replace semantics.
func (h *FastenersHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid fastener id")
		return
	}

	var req model.Fastener
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Category == "" {
		jsonError(w, http.StatusBadRequest, "category required")
		return
	}
	if req.Quantity < 0 {
		jsonError(w, http.StatusBadRequest, "quantity must not be negative")
		return
	}

	if err := store.UpdateFastener(r.Context(), h.DB, id, &req); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, http.StatusNotFound, "fastener not found")
			return
		}
		jsonError(w, http.StatusInternalServerError, "failed to update fastener")
		return
	}

	fastener, _ := store.GetFastener(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, fastener)
}

// Delete handles DELETE /api/fasteners/{id}.
func (h *FastenersHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid fastener id")
		return
	}

	if err := store.DeleteFastener(r.Context(), h.DB, id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete fastener")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "fastener deleted"})
}

// Values handles GET /api/fasteners/values/{field}.
func (h *FastenersHandler) Values(w http.ResponseWriter, r *http.Request) {
	distinctValues(w, r, h.DB, model.KindFastener)
}
