package api

import (
	"database/sql"
	"net/http"
	"strconv"

	"github.com/erazemk/delavnica/internal/lookup"
	"github.com/erazemk/delavnica/internal/model"
	"github.com/erazemk/delavnica/internal/store"
)

// StockHandler handles stock monitoring and dashboard endpoints.
type StockHandler struct {
	DB     *sql.DB
	Vendor *lookup.Client
}

// LowStock handles GET /api/stock/low. The optional limit caps each kind's
// list (dashboards pass a small limit, reports pass none).
func (h *StockHandler) LowStock(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	consumables, err := store.LowStockConsumables(r.Context(), h.DB, limit)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list low-stock consumables")
		return
	}
	materials, err := store.LowStockMaterials(r.Context(), h.DB, limit)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list low-stock materials")
		return
	}
	fasteners, err := store.LowStockFasteners(r.Context(), h.DB, limit)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list low-stock fasteners")
		return
	}

	if consumables == nil {
		consumables = []model.Consumable{}
	}
	if materials == nil {
		materials = []model.Material{}
	}
	if fasteners == nil {
		fasteners = []model.Fastener{}
	}

	jsonResponse(w, http.StatusOK, map[string]any{
		"consumables": consumables,
		"materials":   materials,
		"fasteners":   fasteners,
	})
}

// Counts handles GET /api/stock/counts.
func (h *StockHandler) Counts(w http.ResponseWriter, r *http.Request) {
	counts, err := store.CountItems(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to count items")
		return
	}
	jsonResponse(w, http.StatusOK, counts)
}

// Lookup handles GET /api/lookup?q=. The vendor search is best-effort; an
// empty list is a normal answer, not a failure.
func (h *StockHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	results := h.Vendor.Search(r.Context(), r.URL.Query().Get("q"))
	if results == nil {
		results = []lookup.Result{}
	}
	jsonResponse(w, http.StatusOK, results)
}
