// Slithertag - Decorative Tag Catalog API for Slither Clients
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/slithertag

package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tomtom215/slithertag/internal/api"
	"github.com/tomtom215/slithertag/internal/catalog"
	"github.com/tomtom215/slithertag/internal/config"
	"github.com/tomtom215/slithertag/internal/logging"
	"github.com/tomtom215/slithertag/internal/metrics"
	"github.com/tomtom215/slithertag/internal/supervisor"
	"github.com/tomtom215/slithertag/internal/supervisor/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:     cfg.Logging.Level,
		Format:    cfg.Logging.Format,
		Caller:    cfg.Logging.Caller,
		Timestamp: true,
		Output:    os.Stderr,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("environment", cfg.Server.Environment).
		Str("catalog_path", cfg.Catalog.Path).
		Bool("catalog_watch", cfg.Catalog.Watch).
		Msg("Starting Slithertag")

	initial, err := loadCatalog(cfg)
	if err != nil {
		logging.Fatal().Err(err).Str("path", cfg.Catalog.Path).Msg("Failed to load tag catalog")
	}
	metrics.SetCatalogRecords(initial.Len())
	logging.Info().
		Int("records", initial.Len()).
		Str("etag", initial.ETag()).
		Msg("Tag catalog loaded")

	store := catalog.NewStore(initial)
	catalogSvc := catalog.NewService(store)

	if cfg.Security.RateLimitDisabled {
		logging.Warn().Msg("Rate limiting is DISABLED (DISABLE_RATE_LIMIT=true)")
	}

	mw := api.NewChiMiddlewareFromSecurity(
		cfg.Security.CORSOrigins,
		cfg.Security.RateLimitReqs,
		cfg.Security.RateLimitWindow,
		cfg.Security.RateLimitDisabled,
	)
	router := api.NewRouter(api.NewHandler(catalogSvc), mw, api.RouterConfig{
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsPath:    cfg.Metrics.Path,
	})

	server := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router.SetupChi(),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	tree, err := supervisor.NewSupervisorTree(logging.NewSlogLogger(), supervisor.TreeConfig{
		ShutdownTimeout: cfg.Server.ShutdownTimeout + 5*time.Second,
	})
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to create supervisor tree")
	}

	tree.AddAPIService(services.NewHTTPServerService(server, cfg.Server.ShutdownTimeout,
		services.WithDrainHook(catalogSvc.BeginShutdown)))

	if cfg.Catalog.Watch {
		watcher := catalog.NewWatcher(cfg.Catalog.Path, store, catalogOptions(cfg))
		tree.AddCatalogService(services.NewCatalogWatcherService(watcher))
		logging.Info().Str("path", cfg.Catalog.Path).Msg("Catalog hot reload enabled")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	logging.Info().Str("addr", server.Addr).Msg("Starting supervisor tree")
	if err := tree.Serve(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logging.Error().Err(err).Msg("Supervisor tree error")
	}

	unstopped, _ := tree.UnstoppedServiceReport()
	for _, svc := range unstopped {
		logging.Warn().Str("service", svc.Name).Msg("Service failed to stop within timeout")
	}

	logging.Info().Msg("Slithertag stopped")
}

func catalogOptions(cfg *config.Config) catalog.Options {
	return catalog.Options{
		Version: cfg.Catalog.Version,
		TTL:     cfg.Catalog.TTL,
	}
}

// loadCatalog reads the configured catalog file, or builds the built-in
// catalog when no path is set.
func loadCatalog(cfg *config.Config) (*catalog.Catalog, error) {
	if cfg.Catalog.Path != "" {
		return catalog.LoadFile(cfg.Catalog.Path, catalogOptions(cfg))
	}
	opts := catalogOptions(cfg)
	opts.LastUpdated = time.Now()
	return catalog.New(catalog.DefaultRecords(), opts)
}
