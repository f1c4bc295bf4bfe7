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

// ConsumablesPage handles GET /consumables.
func (s *Server) ConsumablesPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	filter := pageFilter(r)

	consumables, err := store.ListConsumables(r.Context(), s.DB, filter)
	if err != nil {
		slog.Error("failed to list consumables", "error", err)
	}
	categories, err := store.DistinctValues(r.Context(), s.DB, model.KindConsumable, "category")
	if err != nil {
		slog.Error("failed to list consumable categories", "error", err)
	}

	s.Templates.Render(w, "consumables.html", &struct {
		PageData
		Consumables []model.Consumable
		Categories  []string
		Filter      store.Filter
	}{
		PageData:    PageData{Title: "Potrošni material", User: claims},
		Consumables: consumables,
		Categories:  categories,
		Filter:      filter,
	})
}

// ConsumableDetailPage handles GET /consumables/{id}.
func (s *Server) ConsumableDetailPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id, err := pageID(r)
	if err != nil {
		http.Redirect(w, r, "/consumables", http.StatusSeeOther)
		return
	}

	consumable, err := store.GetConsumable(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get consumable", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if consumable == nil {
		http.Redirect(w, r, "/consumables", http.StatusSeeOther)
		return
	}

	ref := model.Ref{Kind: model.KindConsumable, ID: id}
	favorited, err := store.CheckFavorites(r.Context(), s.DB, []model.Ref{ref})
	if err != nil {
		slog.Error("failed to check favorite", "error", err)
	}

	s.Templates.Render(w, "consumable_detail.html", &struct {
		PageData
		Consumable *model.Consumable
		Favorited  bool
	}{
		PageData:   PageData{Title: consumable.Name, User: claims},
		Consumable: consumable,
		Favorited:  favorited[ref],
	})
}

// ConsumableCreateSubmit handles POST /consumables.
func (s *Server) ConsumableCreateSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.requireEditor(w, r) {
		return
	}

	consumable := consumableFromForm(r)
	if consumable.Name == "" || consumable.Quantity < 0 {
		http.Redirect(w, r, "/consumables", http.StatusSeeOther)
		return
	}

	created, err := store.CreateConsumable(r.Context(), s.DB, consumable)
	if err != nil {
		slog.Error("failed to create consumable", "error", err)
		http.Redirect(w, r, "/consumables", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/consumables/%d", created.ID), http.StatusSeeOther)
}

// ConsumableUpdateSubmit handles POST /consumables/{id}.
func (s *Server) ConsumableUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.requireEditor(w, r) {
		return
	}

	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	consumable := consumableFromForm(r)
	if consumable.Quantity < 0 {
		http.Error(w, "quantity must not be negative", http.StatusBadRequest)
		return
	}

	if err := store.UpdateConsumable(r.Context(), s.DB, id, consumable); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Redirect(w, r, "/consumables", http.StatusSeeOther)
			return
		}
		slog.Error("failed to update consumable", "error", err)
		http.Error(w, "failed to update", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/consumables/%d", id), http.StatusSeeOther)
}

// ConsumableDeleteSubmit handles POST /consumables/{id}/delete.
func (s *Server) ConsumableDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.requireEditor(w, r) {
		return
	}

	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := store.DeleteConsumable(r.Context(), s.DB, id); err != nil {
		slog.Error("failed to delete consumable", "error", err)
	}

	http.Redirect(w, r, "/consumables", http.StatusSeeOther)
}

// ConsumableImageSubmit handles POST /consumables/{id}/image.
func (s *Server) ConsumableImageSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.requireEditor(w, r) {
		return
	}

	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	s.handleImageUpload(w, r, model.Ref{Kind: model.KindConsumable, ID: id}, fmt.Sprintf("/consumables/%d", id))
}

// ConsumableImageGet handles GET /consumables/{id}/image.
func (s *Server) ConsumableImageGet(w http.ResponseWriter, r *http.Request) {
	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	s.serveImage(w, r, model.Ref{Kind: model.KindConsumable, ID: id})
}

func consumableFromForm(r *http.Request) *model.Consumable {
	quantity, _ := strconv.ParseInt(r.FormValue("quantity"), 10, 64)
	consumable := &model.Consumable{
		Name:           r.FormValue("name"),
		Category:       r.FormValue("category"),
		Quantity:       quantity,
		Unit:           r.FormValue("unit"),
		CompatibleWith: r.FormValue("compatible_with"),
		Location:       r.FormValue("location"),
		Notes:          r.FormValue("notes"),
		PurchaseURL:    r.FormValue("purchase_url"),
	}
	if v := r.FormValue("min_quantity"); v != "" {
		if min, err := strconv.ParseInt(v, 10, 64); err == nil {
			consumable.MinQuantity = &min
		}
	}
	return consumable
}
