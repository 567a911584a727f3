package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/multierr"

	"github.com/freshmartapp/freshmart-backend/api/routes"
	"github.com/freshmartapp/freshmart-backend/internal/cart"
	"github.com/freshmartapp/freshmart-backend/internal/catalog"
	"github.com/freshmartapp/freshmart-backend/internal/notices"
	"github.com/freshmartapp/freshmart-backend/internal/session"
	"github.com/freshmartapp/freshmart-backend/internal/storefront"
	"github.com/freshmartapp/freshmart-backend/pkg/config"
	"github.com/freshmartapp/freshmart-backend/pkg/kv"
	"github.com/freshmartapp/freshmart-backend/pkg/logger"
	"github.com/freshmartapp/freshmart-backend/pkg/metrics"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, err := kv.New(ctx, cfg.Redis)
	if err != nil {
		logg.Error(ctx, "failed to bootstrap kv store", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	storeMetrics := metrics.NewStorefrontMetrics(registry)
	httpMetrics := metrics.NewHTTPMetrics(registry)

	center := notices.NewCenter(cfg.Storefront.NoticeTTL, storeMetrics)

	products, err := catalog.NewService(catalog.Default(), catalog.Options{
		LabelOverrides:  catalog.DefaultLabelOverrides(),
		OfferLimit:      cfg.Storefront.OfferLimit,
		SuggestionLimit: cfg.Storefront.SuggestionLimit,
	})
	if err != nil {
		logg.Error(ctx, "failed to build catalog", err)
		os.Exit(1)
	}

	cartRepo, err := cart.NewKVRepository(store)
	if err != nil {
		logg.Error(ctx, "failed to build cart repository", err)
		os.Exit(1)
	}
	carts, err := cart.NewService(ctx, cart.ServiceParams{
		Repo:    cartRepo,
		Notices: center,
		Metrics: storeMetrics,
	})
	if err != nil {
		logg.Error(ctx, "failed to create cart service", err)
		os.Exit(1)
	}

	account, err := session.NewDemoAccount(cfg.Demo)
	if err != nil {
		logg.Error(ctx, "failed to prepare demo account", err)
		os.Exit(1)
	}
	sessionRepo, err := session.NewKVRepository(store)
	if err != nil {
		logg.Error(ctx, "failed to build session repository", err)
		os.Exit(1)
	}
	sessions, err := session.NewService(ctx, session.ServiceParams{
		Repo:    sessionRepo,
		Notices: center,
		Metrics: storeMetrics,
		Account: account,
	})
	if err != nil {
		logg.Error(ctx, "failed to create session service", err)
		os.Exit(1)
	}

	renderer := storefront.NewRenderer(cfg.Storefront.DeliveryFeeAmount())
	modal := storefront.NewModalFlow()
	searchBox := storefront.NewSearchBox(products, cfg.Storefront.SearchDebounce)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port

	startCtx := logg.WithFields(ctx, map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(startCtx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(cfg, logg, routes.Deps{
			Store:       store,
			Carts:       carts,
			Products:    products,
			Sessions:    sessions,
			Modal:       modal,
			SearchBox:   searchBox,
			Notices:     center,
			Renderer:    renderer,
			HTTPMetrics: httpMetrics,
			Registry:    registry,
		}),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Error(startCtx, "api server stopped unexpectedly", err)
			os.Exit(1)
		}
	case <-ctx.Done():
		logg.Info(startCtx, "shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	var closeErr error
	if err := server.Shutdown(shutdownCtx); err != nil {
		closeErr = multierr.Append(closeErr, err)
	}
	searchBox.Close()
	if err := store.Close(); err != nil {
		closeErr = multierr.Append(closeErr, err)
	}
	if closeErr != nil {
		logg.Error(startCtx, "shutdown finished with errors", closeErr)
		os.Exit(1)
	}
	logg.Info(startCtx, "api server stopped")
}
