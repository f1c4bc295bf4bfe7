package api

import (
	"database/sql"
	"errors"
	"net/http"

	"github.com/erazemk/delavnica/internal/label"
)

// LabelsHandler handles label batch and token resolution endpoints.
type LabelsHandler struct {
	DB *sql.DB
}

// Assemble handles POST /api/labels: a mixed selection of ids across kinds
// comes back as one ordered batch of label-ready records. Ids that no longer
// exist are dropped, not errored.
func (h *LabelsHandler) Assemble(w http.ResponseWriter, r *http.Request) {
	var sel label.Selection
	if err := decodeJSON(r, &sel); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	labels, err := label.Assemble(r.Context(), h.DB, sel)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to assemble labels")
		return
	}
	if labels == nil {
		labels = []label.Label{}
	}
	jsonResponse(w, http.StatusOK, labels)
}

// Resolve handles GET /api/resolve?token=. A malformed token is a 400, a
// valid token for a deleted item is a 404; clients treat both as redirects,
// not hard failures.
func (h *LabelsHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")

	summary, err := label.Resolve(r.Context(), h.DB, token)
	if errors.Is(err, label.ErrInvalidToken) {
		jsonError(w, http.StatusBadRequest, "invalid identity token")
		return
	}
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to resolve token")
		return
	}
	if summary == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}

	jsonResponse(w, http.StatusOK, summary)
}
