package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS returns a cross-origin middleware for the given origins. The mobile
// client runs on a different origin in development, so this is mounted
// globally.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})
	return c.Handler
}
