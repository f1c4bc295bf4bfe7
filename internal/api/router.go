package api

import (
	"database/sql"
	"net/http"

	"github.com/erazemk/delavnica/internal/lookup"
	"github.com/erazemk/delavnica/internal/model"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	usersHandler := &UsersHandler{DB: db}
	toolsHandler := &ToolsHandler{DB: db}
	consumablesHandler := &ConsumablesHandler{DB: db}
	materialsHandler := &MaterialsHandler{DB: db}
	fastenersHandler := &FastenersHandler{DB: db}
	favoritesHandler := &FavoritesHandler{DB: db}
	labelsHandler := &LabelsHandler{DB: db}
	stockHandler := &StockHandler{DB: db, Vendor: lookup.NewClient()}

	authMW := AuthMiddleware(jwtSecret, db)
	requireAdmin := RequireRole(model.RoleAdmin)
	requireEditor := RequireRole(model.RoleEditor)

	// Public: login.
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)

	// Authenticated routes.
	mux.Handle("PUT /api/auth/password", authMW(http.HandlerFunc(authHandler.ChangePassword)))
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Users (admin only).
	mux.Handle("GET /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.List))))
	mux.Handle("POST /api/users", authMW(requireAdmin(http.HandlerFunc(usersHandler.Create))))
	mux.Handle("GET /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Get))))
	mux.Handle("PUT /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Update))))
	mux.Handle("PUT /api/users/{id}/password", authMW(requireAdmin(http.HandlerFunc(usersHandler.ResetPassword))))
	mux.Handle("DELETE /api/users/{id}", authMW(requireAdmin(http.HandlerFunc(usersHandler.Delete))))

	// Tools: read (all roles), write (editor+).
	mux.Handle("GET /api/tools", authMW(http.HandlerFunc(toolsHandler.List)))
	mux.Handle("POST /api/tools", authMW(requireEditor(http.HandlerFunc(toolsHandler.Create))))
	mux.Handle("GET /api/tools/values/{field}", authMW(http.HandlerFunc(toolsHandler.Values)))
	mux.Handle("GET /api/tools/{id}", authMW(http.HandlerFunc(toolsHandler.Get)))
	mux.Handle("PUT /api/tools/{id}", authMW(requireEditor(http.HandlerFunc(toolsHandler.Update))))
	mux.Handle("DELETE /api/tools/{id}", authMW(requireEditor(http.HandlerFunc(toolsHandler.Delete))))
	mux.Handle("PUT /api/tools/{id}/image", authMW(requireEditor(http.HandlerFunc(toolsHandler.UploadImage))))
	mux.Handle("GET /api/tools/{id}/image", authMW(http.HandlerFunc(toolsHandler.GetImage)))

	// Consumables.
	mux.Handle("GET /api/consumables", authMW(http.HandlerFunc(consumablesHandler.List)))
	mux.Handle("POST /api/consumables", authMW(requireEditor(http.HandlerFunc(consumablesHandler.Create))))
	mux.Handle("GET /api/consumables/values/{field}", authMW(http.HandlerFunc(consumablesHandler.Values)))
	mux.Handle("GET /api/consumables/{id}", authMW(http.HandlerFunc(consumablesHandler.Get)))
	mux.Handle("PUT /api/consumables/{id}", authMW(requireEditor(http.HandlerFunc(consumablesHandler.Update))))
	mux.Handle("DELETE /api/consumables/{id}", authMW(requireEditor(http.HandlerFunc(consumablesHandler.Delete))))
	mux.Handle("PUT /api/consumables/{id}/image", authMW(requireEditor(http.HandlerFunc(consumablesHandler.UploadImage))))
	mux.Handle("GET /api/consumables/{id}/image", authMW(http.HandlerFunc(consumablesHandler.GetImage)))

	// Materials.
	mux.Handle("GET /api/materials", authMW(http.HandlerFunc(materialsHandler.List)))
	mux.Handle("POST /api/materials", authMW(requireEditor(http.HandlerFunc(materialsHandler.Create))))
	mux.Handle("GET /api/materials/values/{field}", authMW(http.HandlerFunc(materialsHandler.Values)))
	mux.Handle("GET /api/materials/{id}", authMW(http.HandlerFunc(materialsHandler.Get)))
	mux.Handle("PUT /api/materials/{id}", authMW(requireEditor(http.HandlerFunc(materialsHandler.Update))))
	mux.Handle("DELETE /api/materials/{id}", authMW(requireEditor(http.HandlerFunc(materialsHandler.Delete))))
	mux.Handle("PUT /api/materials/{id}/image", authMW(requireEditor(http.HandlerFunc(materialsHandler.UploadImage))))
	mux.Handle("GET /api/materials/{id}/image", authMW(http.HandlerFunc(materialsHandler.GetImage)))

	// Fasteners (no photos).
	mux.Handle("GET /api/fasteners", authMW(http.HandlerFunc(fastenersHandler.List)))
	mux.Handle("POST /api/fasteners", authMW(requireEditor(http.HandlerFunc(fastenersHandler.Create))))
	mux.Handle("GET /api/fasteners/values/{field}", authMW(http.HandlerFunc(fastenersHandler.Values)))
	mux.Handle("GET /api/fasteners/{id}", authMW(http.HandlerFunc(fastenersHandler.Get)))
	mux.Handle("PUT /api/fasteners/{id}", authMW(requireEditor(http.HandlerFunc(fastenersHandler.Update))))
	mux.Handle("DELETE /api/fasteners/{id}", authMW(requireEditor(http.HandlerFunc(fastenersHandler.Delete))))

	// Favorites (all roles).
	mux.Handle("GET /api/favorites", authMW(http.HandlerFunc(favoritesHandler.List)))
	mux.Handle("POST /api/favorites/toggle", authMW(http.HandlerFunc(favoritesHandler.Toggle)))
	mux.Handle("POST /api/favorites/check", authMW(http.HandlerFunc(favoritesHandler.Check)))

	// Labels and token resolution (all roles).
	mux.Handle("POST /api/labels", authMW(http.HandlerFunc(labelsHandler.Assemble)))
	mux.Handle("GET /api/resolve", authMW(http.HandlerFunc(labelsHandler.Resolve)))

	// Stock monitoring, counts, vendor lookup (all roles).
	mux.Handle("GET /api/stock/low", authMW(http.HandlerFunc(stockHandler.LowStock)))
	mux.Handle("GET /api/stock/counts", authMW(http.HandlerFunc(stockHandler.Counts)))
	mux.Handle("GET /api/lookup", authMW(http.HandlerFunc(stockHandler.Lookup)))

	return mux
}
