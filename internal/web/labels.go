package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/skip2/go-qrcode"

	"github.com/erazemk/delavnica/internal/label"
	"github.com/erazemk/delavnica/internal/model"
	"github.com/erazemk/delavnica/internal/store"
)

// LabelsPage handles GET /labels: the picker for assembling a label batch.
func (s *Server) LabelsPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	tools, err := store.ListTools(r.Context(), s.DB, store.Filter{})
	if err != nil {
		slog.Error("failed to list tools", "error", err)
	}
	consumables, err := store.ListConsumables(r.Context(), s.DB, store.Filter{})
	if err != nil {
		slog.Error("failed to list consumables", "error", err)
	}
	materials, err := store.ListMaterials(r.Context(), s.DB, store.Filter{})
	if err != nil {
		slog.Error("failed to list materials", "error", err)
	}
	fasteners, err := store.ListFasteners(r.Context(), s.DB, store.Filter{})
	if err != nil {
		slog.Error("failed to list fasteners", "error", err)
	}

	s.Templates.Render(w, "labels.html", &struct {
		PageData
		Tools       []model.Tool
		Consumables []model.Consumable
		Materials   []model.Material
		Fasteners   []model.Fastener
	}{
		PageData:    PageData{Title: "Nalepke", User: claims},
		Tools:       tools,
		Consumables: consumables,
		Materials:   materials,
		Fasteners:   fasteners,
	})
}

// LabelBatchSubmit handles POST /labels: renders the printable sheet for the
// checked items.
func (s *Server) LabelBatchSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}

	sel := label.Selection{
		Tools:       formIDs(r, "tools"),
		Consumables: formIDs(r, "consumables"),
		Materials:   formIDs(r, "materials"),
		Fasteners:   formIDs(r, "fasteners"),
	}

	labels, err := label.Assemble(r.Context(), s.DB, sel)
	if err != nil {
		slog.Error("failed to assemble labels", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "label_batch.html", &struct {
		PageData
		Labels []label.Label
	}{
		PageData: PageData{Title: "Tiskanje nalepk", User: claims},
		Labels:   labels,
	})
}

// ScanPage handles GET /scan?t=. Scanned labels always land somewhere
// useful: the item's page when it exists, the kind's listing when the label
// is stale, the dashboard when the token is garbage.
func (s *Server) ScanPage(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("t")

	summary, err := label.Resolve(r.Context(), s.DB, token)
	if err != nil {
		if errors.Is(err, label.ErrInvalidToken) {
			http.Redirect(w, r, "/", http.StatusSeeOther)
			return
		}
		slog.Error("failed to resolve token", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if summary == nil {
		ref, _ := label.DecodeToken(token)
		http.Redirect(w, r, "/"+ref.Kind.Slug(), http.StatusSeeOther)
		return
	}

	http.Redirect(w, r, label.EncodeToken(summary.Ref()), http.StatusSeeOther)
}

// QRImage handles GET /qr?t=: the QR code PNG embedded in printable labels.
func (s *Server) QRImage(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("t")
	if _, err := label.DecodeToken(token); err != nil {
		http.Error(w, "invalid token", http.StatusBadRequest)
		return
	}

	png, err := qrcode.Encode("/scan?t="+token, qrcode.Medium, 256)
	if err != nil {
		slog.Error("failed to encode qr code", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	if _, err := w.Write(png); err != nil {
		slog.Error("failed to write qr response", "error", err)
	}
}

// formIDs collects the checked ids for one kind from a label picker form.
func formIDs(r *http.Request, field string) []int64 {
	var ids []int64
	for _, v := range r.Form[field] {
		id, err := strconv.ParseInt(v, 10, 64)
		if err != nil || id <= 0 {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
