package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// SetupRoutes builds the HTTP surface: the prediction endpoint, a health
// check, and read-only serving of the artifact directory under /files/.
func SetupRoutes(h *Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Plan"},
		MaxAge:         300,
	}))

	r.Get("/health", h.Health)
	r.Post("/predict", h.Predict)

	files := http.StripPrefix("/files/", http.FileServer(http.Dir(h.outDir)))
	r.Get("/files/*", files.ServeHTTP)

	return r
}
