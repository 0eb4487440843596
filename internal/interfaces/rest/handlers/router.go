package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/cors"

	"github.com/finverse-labs/cardinfo-service/internal/interfaces/rest"
	"github.com/finverse-labs/cardinfo-service/internal/interfaces/rest/middleware"
)

// NewRouter builds the full HTTP surface: one card-info route plus the
// fixed usage-hint body for everything else.
func NewRouter(h *Handlers, logger *slog.Logger, requestTimeout time.Duration) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logging(logger))
	r.Use(middleware.Timeout(requestTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	r.Get("/cardinfo/{bin}/{cardNumber}/{expiryMonth}/{expiryYear}", h.GetCardInfo)

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		rest.WriteRouteNotFound(w)
	})

	return r
}
