package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/delavnica/internal/model"
	"github.com/erazemk/delavnica/internal/store"
)

// FavoritesHandler handles favorites endpoints.
type FavoritesHandler struct {
	DB *sql.DB
}

type toggleFavoriteRequest struct {
	Kind string `json:"kind"`
	ID   int64  `json:"id"`
}

type checkFavoritesRequest struct {
	Refs []toggleFavoriteRequest `json:"refs"`
}

// Toggle handles POST /api/favorites/toggle.
func (h *FavoritesHandler) Toggle(w http.ResponseWriter, r *http.Request) {
	var req toggleFavoriteRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	kind, err := model.ParseKind(req.Kind)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	favorited, err := store.ToggleFavorite(r.Context(), h.DB, model.Ref{Kind: kind, ID: req.ID})
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to toggle favorite")
		return
	}

	jsonResponse(w, http.StatusOK, map[string]bool{"favorited": favorited})
}

// Check handles POST /api/favorites/check: a batch membership test. Refs
// with unknown kinds or ids simply come back unfavorited.
func (h *FavoritesHandler) Check(w http.ResponseWriter, r *http.Request) {
	var req checkFavoritesRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var refs []model.Ref
	for _, rr := range req.Refs {
		kind, err := model.ParseKind(rr.Kind)
		if err != nil {
			continue
		}
		refs = append(refs, model.Ref{Kind: kind, ID: rr.ID})
	}

	favorited, err := store.CheckFavorites(r.Context(), h.DB, refs)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to check favorites")
		return
	}

	result := []model.Ref{}
	for _, ref := range refs {
		if favorited[ref] {
			result = append(result, ref)
		}
	}
	jsonResponse(w, http.StatusOK, result)
}

// List handles GET /api/favorites.
func (h *FavoritesHandler) List(w http.ResponseWriter, r *http.Request) {
	favorites, err := store.ListFavorites(r.Context(), h.DB)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list favorites")
		return
	}
	if favorites == nil {
		favorites = []model.Favorite{}
	}
	jsonResponse(w, http.StatusOK, favorites)
}
