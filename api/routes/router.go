package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/freshmartapp/freshmart-backend/api/controllers"
	"github.com/freshmartapp/freshmart-backend/api/middleware"
	cartsvc "github.com/freshmartapp/freshmart-backend/internal/cart"
	"github.com/freshmartapp/freshmart-backend/internal/catalog"
	"github.com/freshmartapp/freshmart-backend/internal/notices"
	sessionsvc "github.com/freshmartapp/freshmart-backend/internal/session"
	"github.com/freshmartapp/freshmart-backend/internal/storefront"
	"github.com/freshmartapp/freshmart-backend/pkg/config"
	"github.com/freshmartapp/freshmart-backend/pkg/kv"
	"github.com/freshmartapp/freshmart-backend/pkg/logger"
	"github.com/freshmartapp/freshmart-backend/pkg/metrics"
)

// Deps carries everything the router wires into handlers.
type Deps struct {
	Store       *kv.Client
	Carts       cartsvc.Service
	Products    *catalog.Service
	Sessions    sessionsvc.Service
	Modal       *storefront.ModalFlow
	SearchBox   *storefront.SearchBox
	Notices     *notices.Center
	Renderer    *storefront.Renderer
	HTTPMetrics *metrics.HTTPMetrics
	Registry    *prometheus.Registry
}

func NewRouter(cfg *config.Config, logg *logger.Logger, deps Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(deps.HTTPMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
	)
	registerPolicy := middleware.NewAuthRateLimitPolicy(
		"register",
		cfg.AuthRateLimit.RegisterWindow,
		cfg.AuthRateLimit.RegisterIPLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.Store))
	})

	if deps.Registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/public", func(r chi.Router) {
		r.Get("/ping", controllers.PublicPing())
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/storefront", controllers.StorefrontPage(deps.Carts, deps.Products, deps.Sessions, deps.Modal, deps.Notices, deps.Renderer, logg))

		r.Get("/catalog", controllers.CatalogList(deps.Products, deps.Renderer, logg))
		r.Get("/offers", controllers.OffersList(deps.Products, deps.Renderer, logg))
		r.Get("/search", controllers.SearchSuggestions(deps.Products, deps.SearchBox, deps.Renderer, logg))

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", controllers.CartFetch(deps.Carts, deps.Renderer, logg))
			r.Delete("/", controllers.CartClear(deps.Carts, deps.Renderer, logg))
			r.Post("/items", controllers.CartAddItem(deps.Carts, deps.Products, deps.Notices, deps.Renderer, logg))
			r.Patch("/items/{productId}", controllers.CartChangeQuantity(deps.Carts, deps.Renderer, logg))
			r.Delete("/items/{productId}", controllers.CartRemoveItem(deps.Carts, deps.Renderer, logg))
		})

		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(loginPolicy, deps.Store, logg)).Post("/login", controllers.AuthLogin(deps.Sessions, deps.Modal, deps.Renderer, logg))
			r.With(middleware.AuthRateLimit(registerPolicy, deps.Store, logg)).Post("/register", controllers.AuthRegister(deps.Sessions, deps.Modal, deps.Renderer, logg))
			r.Post("/logout", controllers.AuthLogout(deps.Sessions, deps.Renderer, logg))
		})
		r.Get("/session", controllers.SessionFetch(deps.Sessions, deps.Renderer, logg))

		r.Route("/modal", func(r chi.Router) {
			r.Get("/", controllers.ModalFetch(deps.Modal, deps.Renderer, logg))
			r.Post("/{action}", controllers.ModalApply(deps.Modal, deps.Renderer, logg))
		})

		r.Get("/notices", controllers.NoticesList(deps.Notices, logg))
	})

	return r
}
