// Package app contains the application setup for the catalog manager.
package app

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"pricebook/internal/config"
	"pricebook/internal/service"
	"pricebook/internal/store"
	"pricebook/internal/transport/rest"
	"pricebook/pkg/server"
)

type Dependencies struct {
	CatalogService service.CatalogService
	Logger         *slog.Logger
}

// SetupDependencies builds the catalog store, seeds it from the
// configuration, and wires the service on top of it. Seed entries were
// validated at config load, so a parse failure here is a programming error.
func SetupDependencies(cfg *config.Config, logger *slog.Logger) *Dependencies {
	catalog := store.NewInMemoryStore()
	for _, seed := range cfg.Catalog.Seed {
		price := decimal.RequireFromString(strings.TrimSpace(seed.Price))
		if _, err := catalog.Append(strings.TrimSpace(seed.Name), price); err != nil {
			logger.Warn("failed to seed catalog entry", "name", seed.Name, "error", err)
		}
	}

	cService := service.NewService(catalog, service.Presentation{
		Currency:     cfg.Catalog.Currency,
		NotFoundText: cfg.Catalog.NotFoundText,
	})

	return &Dependencies{
		CatalogService: cService,
		Logger:         logger,
	}
}

// SetupHttpHandler initializes the HTTP routes for the catalog manager.
// Used by handler tests to set up the full middleware and routing stack.
func SetupHttpHandler(deps *Dependencies) http.Handler {
	mux := server.NewChiRouter(deps.Logger)
	wireRoutes(mux, deps)
	return mux
}

// wireRoutes sets up the HTTP routes for the catalog manager.
func wireRoutes(mux *chi.Mux, deps *Dependencies) {
	catalogHandler := rest.NewHandler(deps.CatalogService, deps.Logger)
	catalogHandler.RegisterRoutes(mux)
}

// SetupHttpServer creates and configures the HTTP server for the catalog manager.
func SetupHttpServer(deps *Dependencies, cfg *config.Config) *http.Server {

	mux := SetupHttpHandler(deps)

	httpCfg := server.HTTPConfig{
		Port:           cfg.HTTPServer.Port,
		MaxHeaderBytes: cfg.HTTPServer.MaxHeaderBytes,
		ReadTimeout:    cfg.HTTPServer.Timeout.Read,
		WriteTimeout:   cfg.HTTPServer.Timeout.Write,
		IdleTimeout:    cfg.HTTPServer.Timeout.Idle,
		ReadHeader:     cfg.HTTPServer.Timeout.ReadHeader,
	}

	return server.NewHTTPServer(httpCfg, mux)
}
