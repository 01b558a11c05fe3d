// Package httpapi serves the conversation over HTTP so several users can
// talk to the same bot at once.
package httpapi

import (
	"net/http"
	"time"

	"github.com/alexanderramin/faqbot/internal/observability"
	"github.com/alexanderramin/faqbot/internal/service"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestTimeout bounds every request.
const RequestTimeout = 10 * time.Second

// NewRouter creates the API router with all routes configured.
func NewRouter(conversation service.ConversationService, metrics *observability.Metrics, logger *observability.Logger) http.Handler {
	if logger == nil {
		logger = observability.NopLogger()
	}
	h := &handler{conversation: conversation, logger: logger.WithOperation("http")}

	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(requestLogger(h.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(RequestTimeout))

	r.Get("/health", h.health)
	if metrics != nil {
		r.Method(http.MethodGet, "/metrics", metrics.Handler())
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/ask", h.ask)
		r.Post("/feedback", h.feedback)
	})

	return r
}

// requestLogger logs one line per request with the chi request ID.
func requestLogger(logger *observability.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			logger.WithRequestID(chimiddleware.GetReqID(r.Context())).Debug().
				Str("method", r.Method).
				Str("path", r.URL.Path).
				Int("status", ww.Status()).
				Dur("duration", time.Since(start)).
				Msg("request served")
		})
	}
}
