package middleware

import (
	"net/http"

	"github.com/rs/cors"

	"invoice-backend/internal/config"
)

// NewCORS builds the CORS wrapper from the configured origin/method/header
// lists. An empty origins list falls back to allowing any origin, which
// suits local development against the UI dev server.
func NewCORS(cfg *config.Config) func(http.Handler) http.Handler {
	origins := cfg.Server.CorsAllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   cfg.Server.CorsAllowedMethods,
		AllowedHeaders:   cfg.Server.CorsAllowedHeaders,
		AllowCredentials: true,
		MaxAge:           300,
	})
	return c.Handler
}
