package api

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/rs/cors"

	"github.com/gearhub/gearhub/internal/catalog"
)

// NewRouter creates the JSON API router with all routes registered.
// The API is CORS-enabled so a standalone frontend can consume it.
func NewRouter(cat catalog.Catalog) http.Handler {
	items := &ItemsHandler{
		Catalog:  cat,
		Validate: validator.New(),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/items", items.List)
	mux.HandleFunc("POST /api/items", items.Create)
	mux.HandleFunc("GET /api/items/types", items.Types)
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	})
	return c.Handler(mux)
}
