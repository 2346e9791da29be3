package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"viralengine-backend/internal/handlers"
	"viralengine-backend/internal/middleware"
	"viralengine-backend/internal/websocket"
)

func New(
	jobHandler *handlers.JobHandler,
	socialHandler *handlers.SocialHandler,
	wsHub *websocket.Hub,
	frontendURL string,
	generateLimit int,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Generation rate limiter (per IP)
	generateLimiter := middleware.NewRateLimiter(generateLimit, time.Minute)

	// Health check
	r.Get("/health", jobHandler.Health)

	// Rendered videos
	r.Get("/video/{filename}", jobHandler.ServeVideo)

	r.Route("/api/v1", func(r chi.Router) {

		// ──── Generation Routes ────
		r.Group(func(r chi.Router) {
			r.Use(generateLimiter.Middleware)
			r.Post("/generate", jobHandler.Generate)
		})
		r.Post("/proceed/{id}", jobHandler.Proceed)
		r.Get("/status", jobHandler.LatestStatus)
		r.Get("/status/{id}", jobHandler.Status)
		r.Get("/generations", jobHandler.List)
		r.Delete("/generations/{id}", jobHandler.Delete)
		r.Get("/results", jobHandler.Results)

		// ──── Social Routes ────
		r.Route("/social", func(r chi.Router) {
			r.Get("/connect/{platform}", socialHandler.Connect)
			r.Get("/callback/{platform}", socialHandler.Callback)
			r.Get("/status", socialHandler.Status)
			r.Post("/disconnect/{platform}", socialHandler.Disconnect)
			r.Post("/publish/{platform}/{id}", socialHandler.Publish)
		})

		// ──── WebSocket ────
		r.Get("/ws/logs", wsHub.HandleWebSocket)
	})

	return r
}
