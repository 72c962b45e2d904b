package httpapi

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/pickone/faceoff/internal/hub"
	"github.com/pickone/faceoff/internal/ws"
)

// Routes wires the protocol endpoint, the health check, and the per-room
// snapshot stream onto a chi router. The page itself is served elsewhere;
// it calls this API cross-origin.
func Routes(h *hub.Hub, log *zap.Logger) http.Handler {
	s := NewServer(h, log)

	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}))
	r.Use(requestLogger(log))

	r.Post("/api/vote", s.HandleAction)
	r.Get("/api/rooms/{roomID}/ws", ws.Handler(h, log))
	r.Get("/healthz", Healthz)
	return r
}
