package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/httprate"
	"github.com/rs/cors"
	"go.uber.org/zap"
)

// RouterConfig tunes the middleware stack. Zero values fall back to defaults.
type RouterConfig struct {
	AllowedOrigins []string
	RateLimit      int
	RateWindow     time.Duration
	MaxBodyBytes   int64
}

// Routes is implemented by every handler that mounts API endpoints.
type Routes interface {
	RegisterRoutes(r chi.Router)
}

// NewRouter wires the middleware stack, health check, websocket endpoint and
// the /api/v1 handlers.
func NewRouter(logger *zap.Logger, cfg RouterConfig, ws *WSHandler, api ...Routes) http.Handler {
	if cfg.RateLimit <= 0 {
		cfg.RateLimit = 100
	}
	if cfg.RateWindow <= 0 {
		cfg.RateWindow = time.Minute
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = 1 << 20
	}
	if len(cfg.AllowedOrigins) == 0 {
		cfg.AllowedOrigins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(RequestIDMiddleware)
	r.Use(LoggerMiddleware(logger))
	r.Use(RecoveryMiddleware(logger))
	r.Use(cors.New(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           3600,
	}).Handler)
	r.Use(httprate.LimitByIP(cfg.RateLimit, cfg.RateWindow))
	r.Use(RequestSizeLimitMiddleware(cfg.MaxBodyBytes))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	if ws != nil {
		r.Get("/ws", ws.ServeWS)
	}
	r.Route("/api/v1", func(r chi.Router) {
		for _, h := range api {
			h.RegisterRoutes(r)
		}
	})
	return r
}
