package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/wakephrase/server/internal/api/handlers"
	"github.com/wakephrase/server/internal/api/middleware"
	"github.com/wakephrase/server/internal/config"
	"github.com/wakephrase/server/internal/service"
)

func NewRouter(services *service.Services, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chiMiddleware.Logger)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.RequestID)
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("OK"))
	})

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(services.Auth, services.Profile, services.Alarm)
	profileHandler := handlers.NewProfileHandler(services.Profile)
	alarmHandler := handlers.NewAlarmHandler(services.Alarm)
	phraseHandler := handlers.NewPhraseHandler(services.Phrase)

	r.Post("/register", authHandler.Register)
	r.Post("/login", authHandler.Login)

	r.Post("/profile", profileHandler.Save)

	r.Route("/alarms", func(r chi.Router) {
		r.Get("/", alarmHandler.List)
		r.Post("/", alarmHandler.Save)
		r.Delete("/{id}", alarmHandler.Delete)
	})

	r.Get("/phrase", phraseHandler.Generate)

	return r
}
