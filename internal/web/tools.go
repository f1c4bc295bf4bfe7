package web

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/erazemk/delavnica/internal/imaging"
	"github.com/erazemk/delavnica/internal/model"
	"github.com/erazemk/delavnica/internal/store"
)

// requireEditor rejects the request unless the user can change the catalog.
// Returns false after writing the response when the check fails.
func (s *Server) requireEditor(w http.ResponseWriter, r *http.Request) bool {
	claims := GetWebClaims(r.Context())
	if claims == nil || !model.RoleAtLeast(claims.Role, model.RoleEditor) {
		http.Error(w, "forbidden", http.StatusForbidden)
		return false
	}
	return true
}

// pageID parses the {id} path segment.
func pageID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

// pageFilter builds the listing filter from query parameters.
func pageFilter(r *http.Request) store.Filter {
	q := r.URL.Query()
	return store.Filter{
		Category: q.Get("category"),
		Location: q.Get("location"),
		Search:   q.Get("search"),
	}
}

// ToolsPage handles GET /tools.
func (s *Server) ToolsPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	filter := pageFilter(r)

	tools, err := store.ListTools(r.Context(), s.DB, filter)
	if err != nil {
		slog.Error("failed to list tools", "error", err)
	}
	categories, err := store.DistinctValues(r.Context(), s.DB, model.KindTool, "category")
	if err != nil {
		slog.Error("failed to list tool categories", "error", err)
	}

	s.Templates.Render(w, "tools.html", &struct {
		PageData
		Tools      []model.Tool
		Categories []string
		Filter     store.Filter
	}{
		PageData:   PageData{Title: "Orodja", User: claims},
		Tools:      tools,
		Categories: categories,
		Filter:     filter,
	})
}

// ToolDetailPage handles GET /tools/{id}. A stale label for a deleted tool
// lands here too, so a missing id redirects back to the listing instead of
// erroring.
func (s *Server) ToolDetailPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id, err := pageID(r)
	if err != nil {
		http.Redirect(w, r, "/tools", http.StatusSeeOther)
		return
	}

	tool, err := store.GetTool(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get tool", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if tool == nil {
		http.Redirect(w, r, "/tools", http.StatusSeeOther)
		return
	}

	compatible, err := store.CompatibleConsumables(r.Context(), s.DB, tool.Name)
	if err != nil {
		slog.Error("failed to list compatible consumables", "error", err)
	}

	ref := model.Ref{Kind: model.KindTool, ID: id}
	favorited, err := store.CheckFavorites(r.Context(), s.DB, []model.Ref{ref})
	if err != nil {
		slog.Error("failed to check favorite", "error", err)
	}

	s.Templates.Render(w, "tool_detail.html", &struct {
		PageData
		Tool       *model.Tool
		Compatible []model.Consumable
		Favorited  bool
	}{
		PageData:   PageData{Title: tool.Name, User: claims},
		Tool:       tool,
		Compatible: compatible,
		Favorited:  favorited[ref],
	})
}

// ToolCreateSubmit handles POST /tools.
func (s *Server) ToolCreateSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.requireEditor(w, r) {
		return
	}

	tool := toolFromForm(r)
	if tool.Name == "" {
		http.Redirect(w, r, "/tools", http.StatusSeeOther)
		return
	}

	created, err := store.CreateTool(r.Context(), s.DB, tool)
	if err != nil {
		slog.Error("failed to create tool", "error", err)
		http.Redirect(w, r, "/tools", http.StatusSeeOther)
		return
	}

	slog.Info("tool created", "user", GetWebClaims(r.Context()).Username, "tool", created.Name)
	http.Redirect(w, r, fmt.Sprintf("/tools/%d", created.ID), http.StatusSeeOther)
}

// ToolUpdateSubmit handles POST /tools/{id}. The form carries the full
// record; fields left empty reset the stored values.
func (s *Server) ToolUpdateSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.requireEditor(w, r) {
		return
	}

	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	tool := toolFromForm(r)
	if err := store.UpdateTool(r.Context(), s.DB, id, tool); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Redirect(w, r, "/tools", http.StatusSeeOther)
			return
		}
		slog.Error("failed to update tool", "error", err)
		http.Error(w, "failed to update", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, fmt.Sprintf("/tools/%d", id), http.StatusSeeOther)
}

// ToolDeleteSubmit handles POST /tools/{id}/delete.
func (s *Server) ToolDeleteSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.requireEditor(w, r) {
		return
	}

	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	if err := store.DeleteTool(r.Context(), s.DB, id); err != nil {
		slog.Error("failed to delete tool", "error", err)
	}

	http.Redirect(w, r, "/tools", http.StatusSeeOther)
}

// ToolImageSubmit handles POST /tools/{id}/image.
func (s *Server) ToolImageSubmit(w http.ResponseWriter, r *http.Request) {
	if !s.requireEditor(w, r) {
		return
	}

	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	s.handleImageUpload(w, r, model.Ref{Kind: model.KindTool, ID: id}, fmt.Sprintf("/tools/%d", id))
}

// ToolImageGet handles GET /tools/{id}/image.
func (s *Server) ToolImageGet(w http.ResponseWriter, r *http.Request) {
	id, err := pageID(r)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	s.serveImage(w, r, model.Ref{Kind: model.KindTool, ID: id})
}

func toolFromForm(r *http.Request) *model.Tool {
	price, _ := strconv.ParseFloat(r.FormValue("purchase_price"), 64)
	return &model.Tool{
		Name:          r.FormValue("name"),
		Category:      r.FormValue("category"),
		Brand:         r.FormValue("brand"),
		Model:         r.FormValue("model"),
		PurchaseDate:  r.FormValue("purchase_date"),
		PurchasePrice: price,
		Condition:     r.FormValue("condition"),
		Location:      r.FormValue("location"),
		Notes:         r.FormValue("notes"),
		PurchaseURL:   r.FormValue("purchase_url"),
		ManualURL:     r.FormValue("manual_url"),
	}
}

// handleImageUpload processes a multipart photo upload and redirects back.
func (s *Server) handleImageUpload(w http.ResponseWriter, r *http.Request, ref model.Ref, redirect string) {
	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		http.Error(w, "file too large", http.StatusBadRequest)
		return
	}

	file, _, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	result, err := imaging.Process(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	if err := store.SetItemImage(r.Context(), s.DB, ref, result.Data, result.MIME); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			http.Redirect(w, r, "/"+ref.Kind.Slug(), http.StatusSeeOther)
			return
		}
		slog.Error("failed to save image", "kind", ref.Kind, "id", ref.ID, "error", err)
		http.Error(w, "failed to save image", http.StatusInternalServerError)
		return
	}

	http.Redirect(w, r, redirect, http.StatusSeeOther)
}

// serveImage writes an item's stored photo.
func (s *Server) serveImage(w http.ResponseWriter, r *http.Request, ref model.Ref) {
	data, mime, err := store.GetItemImage(r.Context(), s.DB, ref)
	if err != nil {
		slog.Error("failed to get image", "kind", ref.Kind, "id", ref.ID, "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write image response", "error", err)
	}
}
