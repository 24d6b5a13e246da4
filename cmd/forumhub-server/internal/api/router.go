package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"
)

// RouterConfig holds router-level settings.
type RouterConfig struct {
	AllowedOrigins []string
}

// NewRouter wires the handlers and middleware into a chi router.
func NewRouter(h *Handler, cfg RouterConfig, logger *zap.Logger) http.Handler {
	router := chi.NewRouter()

	// Global middleware
	router.Use(chimiddleware.RequestID)
	router.Use(chimiddleware.RealIP)
	router.Use(chimiddleware.Recoverer)
	router.Use(RequestLogger(logger))
	router.Use(limitBody)

	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Location", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	router.Get("/health", h.HandleHealth)
	router.Post("/login", h.HandleLogin)

	router.Route("/topicos", func(r chi.Router) {
		r.Use(Authenticate(h.authn, logger))

		r.Post("/", h.HandleCreateTopic)
		r.Get("/", h.HandleListTopics)
		r.Get("/{id}", h.HandleGetTopic)
		r.Put("/{id}", h.HandleUpdateTopic)
		r.Delete("/{id}", h.HandleDeleteTopic)
	})

	return router
}
