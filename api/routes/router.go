package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/cartwheel-labs/storefront-core/api/controllers"
	"github.com/cartwheel-labs/storefront-core/api/middleware"
	"github.com/cartwheel-labs/storefront-core/internal/fixtures"
	"github.com/cartwheel-labs/storefront-core/pkg/logger"
	"github.com/cartwheel-labs/storefront-core/pkg/metrics"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Logger      *logger.Logger
	Users       *fixtures.UserStore
	HTTPMetrics *metrics.HTTPMetrics
	Gatherer    prometheus.Gatherer
	CORSOrigins []string
}

// NewRouter assembles the mock commerce API.
func NewRouter(deps Deps) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID(deps.Logger))
	r.Use(middleware.Recoverer(deps.Logger))
	r.Use(middleware.CORS(deps.CORSOrigins...))
	r.Use(middleware.Logging(deps.Logger))
	r.Use(middleware.Metrics(deps.HTTPMetrics))

	catalog := &controllers.Catalog{Logger: deps.Logger}
	users := &controllers.Users{Store: deps.Users, Logger: deps.Logger}
	carts := &controllers.Carts{Logger: deps.Logger}
	health := &controllers.Health{}

	r.Route("/products", func(r chi.Router) {
		r.Get("/", catalog.List)
		r.Get("/categories", catalog.Categories)
		r.Get("/category/{name}", catalog.ByCategory)
		r.Get("/{id}", catalog.Get)
	})

	r.Route("/users", func(r chi.Router) {
		r.Get("/", users.List)
		r.Post("/", users.Create)
		r.Get("/{id}", users.Get)
		r.Put("/{id}", users.Update)
	})

	r.Get("/carts", carts.List)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", health.Live)
		r.Get("/ready", health.Ready)
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	return r
}
