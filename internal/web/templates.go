package web

import (
	"database/sql"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/erazemk/delavnica/internal/auth"
	"github.com/erazemk/delavnica/internal/label"
	"github.com/erazemk/delavnica/internal/model"
	webembed "github.com/erazemk/delavnica/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"roleAtLeast": model.RoleAtLeast,
		"token": func(kind model.Kind, id int64) string {
			return label.EncodeToken(model.Ref{Kind: kind, ID: id})
		},
		"roleName": func(role string) string {
			switch role {
			case "admin":
				return "Administrator"
			case "editor":
				return "Urednik"
			case "viewer":
				return "Bralec"
			default:
				return role
			}
		},
		"kindName": func(kind model.Kind) string {
			switch kind {
			case model.KindTool:
				return "Orodje"
			case model.KindConsumable:
				return "Potrošni material"
			case model.KindMaterial:
				return "Material"
			case model.KindFastener:
				return "Vezni material"
			default:
				return string(kind)
			}
		},
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"login.html",
		"dashboard.html",
		"tools.html",
		"tool_detail.html",
		"consumables.html",
		"consumable_detail.html",
		"materials.html",
		"material_detail.html",
		"fasteners.html",
		"fastener_detail.html",
		"favorites.html",
		"labels.html",
		"label_batch.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title   string
	User    *auth.Claims
	Error   string
	Success string
}

// Server holds all dependencies for page handlers.
type Server struct {
	DB        *sql.DB
	Templates *Templates
	JWTSecret string
}
