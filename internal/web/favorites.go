package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/delavnica/internal/model"
	"github.com/erazemk/delavnica/internal/store"
)

// FavoritesPage handles GET /favorites. Entries whose items were deleted
// since pinning are silently absent.
func (s *Server) FavoritesPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	favorites, err := store.ListFavorites(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list favorites", "error", err)
	}

	s.Templates.Render(w, "favorites.html", &struct {
		PageData
		Favorites []model.Favorite
	}{
		PageData:  PageData{Title: "Priljubljeni", User: claims},
		Favorites: favorites,
	})
}

// FavoriteToggleSubmit handles POST /favorites/toggle. Redirects back to the
// page the form was submitted from.
func (s *Server) FavoriteToggleSubmit(w http.ResponseWriter, r *http.Request) {
	kind, err := model.ParseKind(r.FormValue("kind"))
	if err != nil {
		http.Error(w, "invalid kind", http.StatusBadRequest)
		return
	}
	id, err := strconv.ParseInt(r.FormValue("id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if _, err := store.ToggleFavorite(r.Context(), s.DB, model.Ref{Kind: kind, ID: id}); err != nil {
		slog.Error("failed to toggle favorite", "kind", kind, "id", id, "error", err)
	}

	redirect := r.FormValue("redirect")
	if redirect == "" || redirect[0] != '/' {
		redirect = "/favorites"
	}
	http.Redirect(w, r, redirect, http.StatusSeeOther)
}
