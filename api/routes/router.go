package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/josongsong/oyg-storefront-tempo-sub000/api/controllers"
	cartcontrollers "github.com/josongsong/oyg-storefront-tempo-sub000/api/controllers/cart"
	"github.com/josongsong/oyg-storefront-tempo-sub000/api/middleware"
	cartsvc "github.com/josongsong/oyg-storefront-tempo-sub000/internal/cart"
	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/config"
	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/logger"
)

// NewRouter assembles the cart API surface.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	store *cartsvc.Store,
	pricing cartsvc.Pricing,
	registry *prometheus.Registry,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1/cart", func(r chi.Router) {
		r.Get("/", cartcontrollers.CartFetch(store, pricing, logg))
		r.Delete("/", cartcontrollers.CartClear(store, pricing, logg))
		r.Get("/summary", cartcontrollers.CartSummary(store, pricing, logg))
		r.Get("/shipping-rates", cartcontrollers.CartShippingRates(pricing, logg))
		r.Put("/shipping-method", cartcontrollers.CartSetShippingMethod(store, pricing, logg))

		r.Route("/items", func(r chi.Router) {
			r.Post("/", cartcontrollers.CartAddItem(store, pricing, logg))
			r.Patch("/{key}", cartcontrollers.CartUpdateItem(store, pricing, logg))
			r.Delete("/{key}", cartcontrollers.CartRemoveItem(store, pricing, logg))
		})
	})

	return r
}
