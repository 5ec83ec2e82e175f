package main

import (
	"context"
	"fmt"

	"github.com/tmarnet/go-shop/internal/config"
	handler "github.com/tmarnet/go-shop/internal/handler/http"
	"github.com/tmarnet/go-shop/internal/logger"
	"github.com/tmarnet/go-shop/internal/server"
	"github.com/tmarnet/go-shop/internal/service"
	"github.com/tmarnet/go-shop/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("go-shop-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	repositories, err := newRepositories(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating repositories")
	}

	services := service.NewServices(repositories, cfg, log)
	handlers := handler.NewHandler(services, cfg.App.Version, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newRepositories opens the PostgreSQL store when a DSN is configured and
// falls back to the in-memory store otherwise.
func newRepositories(cfg *config.StructuredConfig, log *logger.Logger) (*store.Repositories, error) {
	if cfg.Storage.DB.DSN == "" {
		log.Info().Msg("no database DSN configured, using in-memory store")
		return store.NewInMemoryRepositories(log), nil
	}

	db, err := store.NewConnectPostgres(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err = db.Migrate(); err != nil {
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return store.NewRepositories(db, log), nil
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
