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

// MaterialsPage handles GET /materials.
func (s *Server) MaterialsPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	filter := pageFilter(r)

	materials, err := store.ListMaterials(r.Context(), s.DB, filter)
	if err != nil {
		slog.Error("failed to list materials", "error", err)
	}
	categories, err := store.DistinctValues(r.Context(), s.DB, model.KindMaterial, "category")
	if err != nil {
		slog.Error("failed to list material categories", "error", err)
	}

	s.Templates.Render(w, "materials.html", &struct {
		PageData
		Materials  []model.Material
		Categories []string
		Filter     store.Filter
	}{
		PageData:   PageData{Title: "Materiali", User: claims},
		Materials:  materials,
		Categories: categories,
		Filter:     filter,
	})
}

// MaterialDetailPage handles GET /materials/{id}.
func (s *Server) MaterialDetailPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id, err := pageID(r)
	if err != nil {
		http.Redirect(w, r, "/materials", http.StatusSeeOther)
		return
	}

	material, err := store.GetMaterial(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get material", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if material == nil {
		http.Redirect(w, r, "/materials", http.StatusSeeOther)
		return
	}

	ref := model.Ref{Kind: model.KindMaterial, ID: id}
	favorited, err := store.CheckFavorites(r.Context(), s.DB, []model.Ref{ref})
	if err != nil {
		slog.Error("failed to check favorite", "error", err)
	}

	s.Templates.Render(w, "material_detail.html", &struct {
		PageData
		Material  *model.Material
		Favorited bool
	}{
		PageData:  PageData{Title: material.Name, User: claims},
		Material:  material,
		Favorited: favorited[ref],
	})
}

// MaterialCreateSubmit handles POST /materials.
func (s *Server) MaterialCreateSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.requireEditor(w, r) {
		return
	}

	material := materialFromForm(r)
	if material.Name == "" || material.Quantity < 0 {
		http.Redirect(w, r, "/materials", http.StatusSeeOther)
		return
	}

	created, err := store.CreateMaterial(r.Context(), s.DB, material)
	if err != nil {
		slog.Error("failed to create material", "error", err)
		http.Redirect(w, r, "/materials", http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/materials/%d", created.ID), http.StatusSeeOther)
}

// MaterialUpdateSubmit handles POST /materials/{id}.
func (s *Server) MaterialUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.requireEditor(w, r) {
		return
	}

	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	material := materialFromForm(r)
	if material.Quantity < 0 {
		http.Error(w, "quantity must not be negative", http.StatusBadRequest)
		return
	}

	if err := store.UpdateMaterial(r.Context(), s.DB, id, material); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Redirect(w, r, "/materials", http.StatusSeeOther)
			return
		}
		slog.Error("failed to update material", "error", err)
		http.Error(w, "failed to update", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/materials/%d", id), http.StatusSeeOther)
}

// MaterialDeleteSubmit handles POST /materials/{id}/delete.
func (s *Server) MaterialDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.requireEditor(w, r) {
		return
	}

	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := store.DeleteMaterial(r.Context(), s.DB, id); err != nil {
		slog.Error("failed to delete material", "error", err)
	}

	http.Redirect(w, r, "/materials", http.StatusSeeOther)
}

// MaterialImageSubmit handles POST /materials/{id}/image.
func (s *Server) MaterialImageSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.requireEditor(w, r) {
		return
	}

	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	s.handleImageUpload(w, r, model.Ref{Kind: model.KindMaterial, ID: id}, fmt.Sprintf("/materials/%d", id))
}

// MaterialImageGet handles GET /materials/{id}/image.
func (s *Server) MaterialImageGet(w http.ResponseWriter, r *http.Request) {
	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	s.serveImage(w, r, model.Ref{Kind: model.KindMaterial, ID: id})
}

func materialFromForm(r *http.Request) *model.Material {
	parse := func(name string) float64 {
		v, _ := strconv.ParseFloat(r.FormValue(name), 64)
		return v
	}
	material := &model.Material{
		Name:          r.FormValue("name"),
		Category:      r.FormValue("category"),
		MaterialType:  r.FormValue("material_type"),
		Quantity:      parse("quantity"),
		Unit:          r.FormValue("unit"),
		Length:        parse("length"),
		Width:         parse("width"),
		Thickness:     parse("thickness"),
		DimensionUnit: r.FormValue("dimension_unit"),
		Grade:         r.FormValue("grade"),
		Finish:        r.FormValue("finish"),
		Color:         r.FormValue("color"),
		CostPerUnit:   parse("cost_per_unit"),
		Supplier:      r.FormValue("supplier"),
		Location:      r.FormValue("location"),
		Notes:         r.FormValue("notes"),
	}
	if v := r.FormValue("min_quantity"); v != "" {
		if min, err := strconv.ParseFloat(v, 64); err == nil {
			material.MinQuantity = &min
		}
	}
	return material
}
