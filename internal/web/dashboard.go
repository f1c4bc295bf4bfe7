package web

import (
	"log/slog"
	"net/http"

	"github.com/erazemk/delavnica/internal/model"
	"github.com/erazemk/delavnica/internal/store"
)

// Dashboard handles GET /.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	counts, err := store.CountItems(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to count items for dashboard", "error", err)
		counts = &store.Counts{}
	}

	lowStock, err := store.LowStockConsumables(r.Context(), s.DB, 5)
	if err != nil {
		slog.Error("failed to list low-stock consumables for dashboard", "error", err)
	}

	recentTools, err := store.RecentTools(r.Context(), s.DB, 6)
	if err != nil {
		slog.Error("failed to list recent tools for dashboard", "error", err)
	}

	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		Counts      *store.Counts
		LowStock    []model.Consumable
		RecentTools []model.Tool
	}{
		PageData:    PageData{Title: "Nadzorna plošča", User: claims},
		Counts:      counts,
		LowStock:    lowStock,
		RecentTools: recentTools,
	})
}
