package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/delavnica/internal/model"
	"github.com/erazemk/delavnica/internal/store"
)

// FastenersPage handles GET /fasteners.
func (s *Server) FastenersPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	filter := pageFilter(r)

	fasteners, err := store.ListFasteners(r.Context(), s.DB, filter)
	if err != nil {
		slog.Error("failed to list fasteners", "error", err)
	}
	categories, err := store.DistinctValues(r.Context(), s.DB, model.KindFastener, "category")
	if err != nil {
		slog.Error("failed to list fastener categories", "error", err)
	}

	s.Templates.Render(w, "fasteners.html", &struct {
		PageData
		Fasteners  []model.Fastener
		Categories []string
		Filter     store.Filter
	}{
		PageData:   PageData{Title: "Vezni material", User: claims},
		Fasteners:  fasteners,
		Categories: categories,
		Filter:     filter,
	})
}

// FastenerDetailPage handles GET /fasteners/{id}.
func (s *Server) FastenerDetailPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id, err := pageID(r)
	if err != nil {
		http.Redirect(w, r, "/fasteners", http.StatusSeeOther)
		return
	}

	fastener, err := store.GetFastener(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get fastener", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if fastener == nil {
		http.Redirect(w, r, "/fasteners", http.StatusSeeOther)
		return
	}

	ref := model.Ref{Kind: model.KindFastener, ID: id}
	favorited, err := store.CheckFavorites(r.Context(), s.DB, []model.Ref{ref})
	if err != nil {
		slog.Error("failed to check favorite", "error", err)
	}

	s.Templates.Render(w, "fastener_detail.html", &struct {
		PageData
		Fastener  *model.Fastener
		Favorited bool
	}{
		PageData:  PageData{Title: fastener.DisplayName(), User: claims},
		Fastener:  fastener,
		Favorited: favorited[ref],
	})
}

// FastenerCreateSubmit handles POST /fasteners.
func (s *Server) FastenerCreateSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.requireEditor(w, r) {
		return
	}

	fastener := fastenerFromForm(r)
	if fastener.Category == "" || fastener.Quantity < 0 {
		http.Redirect(w, r, "/fasteners", http.StatusSeeOther)
		return
	}

	created, err := store.CreateFastener(r.Context(), s.DB, fastener)
	if err != nil {
		slog.Error("failed to create fastener", "error", err)
		http.Redirect(w, r, "/fasteners", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/fasteners/%d", created.ID), http.StatusSeeOther)
}

// FastenerUpdateSubmit handles POST /fasteners/{id}.
func (s *Server) FastenerUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.requireEditor(w, r) {
		return
	}

	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	fastener := fastenerFromForm(r)
	if fastener.Category == "" {
		http.Error(w, "category required", http.StatusBadRequest)
		return
	}
	if fastener.Quantity < 0 {
		http.Error(w, "quantity must not be negative", http.StatusBadRequest)
		return
	}

	if err := store.UpdateFastener(r.Context(), s.DB, id, fastener); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Redirect(w, r, "/fasteners", http.StatusSeeOther)
			return
		}
		slog.Error("failed to update fastener", "error", err)
		http.Error(w, "failed to update", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/fasteners/%d", id), http.StatusSeeOther)
}

// FastenerDeleteSubmit handles POST /fasteners/{id}/delete.
func (s *Server) FastenerDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.requireEditor(w, r) {
		return
	}

	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := store.DeleteFastener(r.Context(), s.DB, id); err != nil {
		slog.Error("failed to delete fastener", "error", err)
	}

	http.Redirect(w, r, "/fasteners", http.StatusSeeOther)
}

func fastenerFromForm(r *http.Request) *model.Fastener {
	quantity, _ := strconv.ParseInt(r.FormValue("quantity"), 10, 64)
	fastener := &model.Fastener{
		Category:   r.FormValue("category"),
		Size:       r.FormValue("size"),
		Length:     r.FormValue("length"),
		Material:   r.FormValue("material"),
		HeadType:   r.FormValue("head_type"),
		ThreadType: r.FormValue("thread_type"),
		Quantity:   quantity,
		Location:   r.FormValue("location"),
		Notes:      r.FormValue("notes"),
	}
	if v := r.FormValue("min_quantity"); v != "" {
		if min, err := strconv.ParseInt(v, 10, 64); err == nil {
			fastener.MinQuantity = &min
		}
	}
	return fastener
}
