package web

import (
	"database/sql"
	"net/http"

	webembed "github.com/erazemk/delavnica/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sql.DB, jwtSecret string) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:        db,
		Templates: templates,
		JWTSecret: jwtSecret,
	}

	mux := http.NewServeMux()
	cookieAuth := CookieAuthMiddleware(jwtSecret, db)

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public routes.
	mux.HandleFunc("GET /login", s.LoginPage)
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("POST /logout", s.Logout)

	// Authenticated routes.
	mux.Handle("GET /{$}", cookieAuth(http.HandlerFunc(s.Dashboard)))

	mux.Handle("GET /tools", cookieAuth(http.HandlerFunc(s.ToolsPage)))
	mux.Handle("POST /tools", cookieAuth(http.HandlerFunc(s.ToolCreateSubmit)))
	mux.Handle("GET /tools/{id}", cookieAuth(http.HandlerFunc(s.ToolDetailPage)))
	mux.Handle("POST /tools/{id}", cookieAuth(http.HandlerFunc(s.ToolUpdateSubmit)))
	mux.Handle("POST /tools/{id}/delete", cookieAuth(http.HandlerFunc(s.ToolDeleteSubmit)))
	mux.Handle("POST /tools/{id}/image", cookieAuth(http.HandlerFunc(s.ToolImageSubmit)))
	mux.Handle("GET /tools/{id}/image", cookieAuth(http.HandlerFunc(s.ToolImageGet)))

	mux.Handle("GET /consumables", cookieAuth(http.HandlerFunc(s.ConsumablesPage)))
	mux.Handle("POST /consumables", cookieAuth(http.HandlerFunc(s.ConsumableCreateSubmit)))
	mux.Handle("GET /consumables/{id}", cookieAuth(http.HandlerFunc(s.ConsumableDetailPage)))
	mux.Handle("POST /consumables/{id}", cookieAuth(http.HandlerFunc(s.ConsumableUpdateSubmit)))
	mux.Handle("POST /consumables/{id}/delete", cookieAuth(http.HandlerFunc(s.ConsumableDeleteSubmit)))
	mux.Handle("POST /consumables/{id}/image", cookieAuth(http.HandlerFunc(s.ConsumableImageSubmit)))
	mux.Handle("GET /consumables/{id}/image", cookieAuth(http.HandlerFunc(s.ConsumableImageGet)))

	mux.Handle("GET /materials", cookieAuth(http.HandlerFunc(s.MaterialsPage)))
	mux.Handle("POST /materials", cookieAuth(http.HandlerFunc(s.MaterialCreateSubmit)))
	mux.Handle("GET /materials/{id}", cookieAuth(http.HandlerFunc(s.MaterialDetailPage)))
	mux.Handle("POST /materials/{id}", cookieAuth(http.HandlerFunc(s.MaterialUpdateSubmit)))
	mux.Handle("POST /materials/{id}/delete", cookieAuth(http.HandlerFunc(s.MaterialDeleteSubmit)))
	mux.Handle("POST /materials/{id}/image", cookieAuth(http.HandlerFunc(s.MaterialImageSubmit)))
	mux.Handle("GET /materials/{id}/image", cookieAuth(http.HandlerFunc(s.MaterialImageGet)))

	mux.Handle("GET /fasteners", cookieAuth(http.HandlerFunc(s.FastenersPage)))
	mux.Handle("POST /fasteners", cookieAuth(http.HandlerFunc(s.FastenerCreateSubmit)))
	mux.Handle("GET /fasteners/{id}", cookieAuth(http.HandlerFunc(s.FastenerDetailPage)))
	mux.Handle("POST /fasteners/{id}", cookieAuth(http.HandlerFunc(s.FastenerUpdateSubmit)))
	mux.Handle("POST /fasteners/{id}/delete", cookieAuth(http.HandlerFunc(s.FastenerDeleteSubmit)))

	mux.Handle("GET /favorites", cookieAuth(http.HandlerFunc(s.FavoritesPage)))
	mux.Handle("POST /favorites/toggle", cookieAuth(http.HandlerFunc(s.FavoriteToggleSubmit)))

	mux.Handle("GET /labels", cookieAuth(http.HandlerFunc(s.LabelsPage)))
	mux.Handle("POST /labels", cookieAuth(http.HandlerFunc(s.LabelBatchSubmit)))
	mux.Handle("GET /scan", cookieAuth(http.HandlerFunc(s.ScanPage)))
	mux.Handle("GET /qr", cookieAuth(http.HandlerFunc(s.QRImage)))

	return mux, nil
}
