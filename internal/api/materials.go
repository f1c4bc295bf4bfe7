package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/erazemk/delavnica/internal/model"
	"github.com/erazemk/delavnica/internal/store"
)

// MaterialsHandler handles material endpoints.
type MaterialsHandler struct {
	DB *sql.DB
}

// List handles GET /api/materials.
func (h *MaterialsHandler) List(w http.ResponseWriter, r *http.Request) {
	materials, err := store.ListMaterials(r.Context(), h.DB, queryFilter(r))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list materials")
		return
	}
	if materials == nil {
		materials = []model.Material{}
	}
	jsonResponse(w, http.StatusOK, materials)
}

// Create handles POST /api/materials.
func (h *MaterialsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.Material
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

	material, err := store.CreateMaterial(r.Context(), h.DB, &req)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create material")
		return
	}

	jsonResponse(w, http.StatusCreated, material)
}

// Get handles GET /api/materials/{id}.
func (h *MaterialsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid material id")
		return
	}

	material, err := store.GetMaterial(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get material")
		return
	}
	if material == nil {
		jsonError(w, http.StatusNotFound, "material not found")
		return
	}

	jsonResponse(w, http.StatusOK, material)
}

// Update handles PUT /api/materials/{id} with full-record replace semantics.
func (h *MaterialsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid material id")
		return
	}

	var req model.Material
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

	if err := store.UpdateMaterial(r.Context(), h.DB, id, &req); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, http.StatusNotFound, "material not found")
			return
		}
		jsonError(w, http.StatusInternalServerError, "failed to update material")
		return
	}

	material, _ := store.GetMaterial(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, material)
}

// Delete handles DELETE /api/materials/{id}.
func (h *MaterialsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid material id")
		return
	}

	if err := store.DeleteMaterial(r.Context(), h.DB, id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete material")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "material deleted"})
}

// Values handles GET /api/materials/values/{field}.
func (h *MaterialsHandler) Values(w http.ResponseWriter, r *http.Request) {
	distinctValues(w, r, h.DB, model.KindMaterial)
}

// UploadImage handles PUT /api/materials/{id}/image.
func (h *MaterialsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	uploadImage(w, r, h.DB, model.KindMaterial)
}

// GetImage handles GET /api/materials/{id}/image.
func (h *MaterialsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	getImage(w, r, h.DB, model.KindMaterial)
}
