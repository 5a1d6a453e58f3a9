package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"arena-backend/internal/handlers"
	"arena-backend/internal/middleware"
	"arena-backend/internal/websocket"
)

func New(
	chatHandler *handlers.ChatHandler,
	wsHub *websocket.Hub,
	frontendURL string,
	chatRateLimit int,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {

		// ──── Chat Routes ────
		r.Group(func(r chi.Router) {
			if chatRateLimit > 0 {
				chatLimiter := middleware.NewRateLimiter(chatRateLimit, time.Minute)
				r.Use(chatLimiter.Middleware)
			}
			r.Post("/chat", chatHandler.HandleChat)
		})

		r.Get("/status/{requestID}", chatHandler.GetStatus)
		r.Get("/result/{requestID}", chatHandler.GetResult)

		// ──── Debug Routes ────
		r.Get("/debug/test", chatHandler.DebugTest)
	})

	// ──── WebSocket ────
	r.Get("/ws", wsHub.HandleWebSocket)

	return r
}
