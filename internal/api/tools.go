package api

import (
	"database/sql"
	"errors"
	"log/slog"
	"net/http"

	"github.com/erazemk/delavnica/internal/model"
	"github.com/erazemk/delavnica/internal/store"
)

// ToolsHandler handles tool endpoints.
type ToolsHandler struct {
	DB *sql.DB
}

// List handles GET /api/tools.
func (h *ToolsHandler) List(w http.ResponseWriter, r *http.Request) {
	tools, err := store.ListTools(r.Context(), h.DB, queryFilter(r))
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list tools")
		return
	}
	if tools == nil {
		tools = []model.Tool{}
	}
	jsonResponse(w, http.StatusOK, tools)
}

// Create handles POST /api/tools.
func (h *ToolsHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.Tool
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	tool, err := store.CreateTool(r.Context(), h.DB, &req)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to create tool")
		return
	}

	slog.Info("tool created", "user", GetClaims(r.Context()).Username, "tool", tool.Name)
	jsonResponse(w, http.StatusCreated, tool)
}

// Get handles GET /api/tools/{id}. The response includes consumables whose
// compatibility text mentions the tool name.
func (h *ToolsHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid tool id")
		return
	}

	tool, err := store.GetTool(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get tool")
		return
	}
	if tool == nil {
		jsonError(w, http.StatusNotFound, "tool not found")
		return
	}

	compatible, err := store.CompatibleConsumables(r.Context(), h.DB, tool.Name)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get compatible consumables")
		return
	}
	if compatible == nil {
		compatible = []model.Consumable{}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"tool":       tool,
		"compatible": compatible,
	})
}

// Update handles PUT /api/tools/{id} with full-record replace semantics.
func (h *ToolsHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid tool id")
		return
	}

	var req model.Tool
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Name == "" {
		jsonError(w, http.StatusBadRequest, "name required")
		return
	}

	if err := store.UpdateTool(r.Context(), h.DB, id, &req); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			jsonError(w, http.StatusNotFound, "tool not found")
			return
		}
		jsonError(w, http.StatusInternalServerError, "failed to update tool")
		return
	}

	tool, _ := store.GetTool(r.Context(), h.DB, id)
	jsonResponse(w, http.StatusOK, tool)
}

// Delete handles DELETE /api/tools/{id}.
func (h *ToolsHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid tool id")
		return
	}

	if err := store.DeleteTool(r.Context(), h.DB, id); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to delete tool")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]string{"message": "tool deleted"})
}

// Values handles GET /api/tools/values/{field}.
func (h *ToolsHandler) Values(w http.ResponseWriter, r *http.Request) {
	distinctValues(w, r, h.DB, model.KindTool)
}

// UploadImage handles PUT /api/tools/{id}/image.
func (h *ToolsHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	uploadImage(w, r, h.DB, model.KindTool)
}

// GetImage handles GET /api/tools/{id}/image.
func (h *ToolsHandler) GetImage(w http.ResponseWriter, r *http.Request) {
	getImage(w, r, h.DB, model.KindTool)
}
