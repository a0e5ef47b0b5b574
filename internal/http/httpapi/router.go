package httpapi

import (
	stdhttp "net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/xpmourad/cutout/internal/http/handlers"
	"github.com/xpmourad/cutout/internal/infra/geoip"
	"github.com/xpmourad/cutout/internal/middleware"
)

// NewRouter assembles the chi router with the middleware chain and the API
// routes.
func NewRouter(app *handlers.App, countries geoip.CountryResolver) stdhttp.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, chimw.RealIP, chimw.Recoverer)
	r.Use(middleware.Logger(app.Logger, countries))
	r.Use(middleware.CORS(app.Config.AllowedOrigins))
	r.Use(middleware.Locale)

	r.Get("/v1/healthz", app.Health)

	r.Route("/v1/removals", func(r chi.Router) {
		r.With(middleware.RateLimit(app.Config.RateLimitPerMin, time.Minute)).Post("/", app.CreateRemoval)
		r.Get("/", app.ListRemovals)
	})

	return r
}
