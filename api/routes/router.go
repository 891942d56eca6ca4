package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/devfolio/devfolio-backend/api/controllers"
	"github.com/devfolio/devfolio-backend/api/middleware"
	"github.com/devfolio/devfolio-backend/pkg/config"
	"github.com/devfolio/devfolio-backend/pkg/logger"
	"github.com/devfolio/devfolio-backend/pkg/metrics"
	"github.com/devfolio/devfolio-backend/pkg/redis"
)

// Dependencies carries everything the router wires into handlers. Redis and
// the metrics registry are optional; absent redis disables rate limiting and
// is skipped by the readiness check.
type Dependencies struct {
	DB          controllers.Pinger
	Redis       *redis.Client
	Registry    *prometheus.Registry
	HTTPMetrics *metrics.HTTPMetrics
	Users       controllers.UsersService
	Projects    controllers.ProjectsService
}

func NewRouter(cfg *config.Config, logg *logger.Logger, deps Dependencies) http.Handler {
	r := chi.NewRouter()

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)
	if deps.HTTPMetrics != nil {
		r.Use(middleware.Metrics(deps.HTTPMetrics))
	}

	var redisPinger controllers.Pinger
	var rateStore middleware.RateLimiterStore
	if deps.Redis != nil {
		redisPinger = deps.Redis
		rateStore = deps.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, redisPinger))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	apiPolicy := middleware.NewRateLimitPolicy("api", cfg.RateLimit.Window, cfg.RateLimit.IPLimit)

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RateLimit(apiPolicy, rateStore, logg))

		r.Route("/users", func(r chi.Router) {
			r.Post("/create", controllers.UserCreate(deps.Users, logg))
			r.Get("/list", controllers.UserList(deps.Users, logg))
			r.Get("/{userId}", controllers.UserDetail(deps.Users, logg))
			r.Put("/{userId}", controllers.UserUpdate(deps.Users, logg))
			r.Delete("/{userId}", controllers.UserDelete(deps.Users, logg))
		})

		r.Route("/projects", func(r chi.Router) {
			r.Post("/create", controllers.ProjectCreate(deps.Projects, logg))
			r.Get("/list", controllers.ProjectList(deps.Projects, logg))
			r.Get("/{projectId}", controllers.ProjectDetail(deps.Projects, logg))
			r.Put("/{projectId}", controllers.ProjectUpdate(deps.Projects, logg))
			r.Delete("/{projectId}", controllers.ProjectDelete(deps.Projects, logg))
		})
	})

	return r
}
