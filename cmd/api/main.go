package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/josongsong/oyg-storefront-tempo-sub000/api/routes"
	cartsvc "github.com/josongsong/oyg-storefront-tempo-sub000/internal/cart"
	"github.com/josongsong/oyg-storefront-tempo-sub000/internal/notifications"
	"github.com/josongsong/oyg-storefront-tempo-sub000/internal/persistence"
	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/config"
	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/logger"
	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/metrics"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "cart-api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "cart-api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	backend, cleanup, err := persistence.NewBackendStack(context.Background(), cfg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap snapshot backend", err)
		os.Exit(1)
	}
	defer cleanup()

	registry := prometheus.NewRegistry()
	cartMetrics := metrics.NewCartMetrics(registry)

	writer, err := persistence.NewWriter(persistence.WriterParams{
		Backend:      backend,
		Logger:       logg,
		Metrics:      cartMetrics,
		MaxRetries:   cfg.Snapshot.MaxRetries,
		RetryBackoff: cfg.Snapshot.RetryBackoff,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to start snapshot writer", err)
		os.Exit(1)
	}
	defer writer.Close()

	toasts, err := notifications.NewHub(logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create notifications hub", err)
		os.Exit(1)
	}

	store := cartsvc.NewStore(cartsvc.StoreParams{
		Notifier:      toasts,
		Sink:          writer,
		Metrics:       cartMetrics,
		Logger:        logg,
		ToastDuration: cfg.Toast.Duration(),
	})
	store.Restore(writer.Restore(context.Background()))

	pricing := cartsvc.PricingFromConfig(cfg.Pricing, cfg.Shipping)
	router := routes.NewRouter(cfg, logg, store, pricing, registry)

	addr := ":" + cfg.App.Port
	ctx := logg.WithField(context.Background(), "addr", addr)
	logg.Info(ctx, "cart api listening")
	if err := http.ListenAndServe(addr, router); err != nil {
		logg.Error(ctx, "server stopped", err)
		os.Exit(1)
	}
}
