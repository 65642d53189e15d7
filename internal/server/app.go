// Package server initializes and runs the planter service: it selects the
// storage backend, wires the geocoding client and its cache, builds the
// service layer, and serves the HTTP API with graceful shutdown.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/verdant/planter/internal/geocode"
	"github.com/verdant/planter/internal/logging"
	"github.com/verdant/planter/internal/server/config"
	"github.com/verdant/planter/internal/server/httpapi"
	"github.com/verdant/planter/internal/server/repomanager"
	"github.com/verdant/planter/internal/server/services"
)

type App struct {
	config *config.Config
	logger logging.Logger
	repos  repomanager.RepositoryManager
	server *httpapi.Server
}

func NewApp(cfg *config.Config) (*App, error) {

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	repos, err := newRepositoryManager(cfg)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	geocoder := newGeocoder(cfg)

	userService := services.NewUserService(repos.Users(), cfg)
	plantService := services.NewPlantService(repos.Plants(), geocoder, logger)
	locationService := services.NewLocationService(geocoder, logger)
	photoService := services.NewPhotoService(cfg)

	srv := httpapi.NewServer(userService, plantService, locationService, photoService, logger)

	return &App{config: cfg, logger: logger, repos: repos, server: srv}, nil
}

func newRepositoryManager(cfg *config.Config) (repomanager.RepositoryManager, error) {
	if cfg.StorageBackend == "postgres" {
		return repomanager.NewPostgresRepositoryManager(cfg.DatabaseDSN)
	}
	return repomanager.NewMemoryRepositoryManager(), nil
}

// newGeocoder builds the Nominatim client, wrapped with the redis cache when
// a cache address is configured.
func newGeocoder(cfg *config.Config) services.PlacesGeocoder {
	client := geocode.NewClient(geocode.WithBaseURL(cfg.NominatimBaseURL))

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		rdb = redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
		})
	}
	return geocode.NewCachedClient(client, rdb, cfg.GeocodeCacheTTL)
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) Run(ctx context.Context) {

	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "addr", app.config.EndpointAddr, "storage", app.config.StorageBackend)

	app.initSignalHandler(cancelFunc)

	router := app.server.Router()

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := router.Listen(app.config.EndpointAddr); err != nil {
			app.logger.Error(ctx, err.Error())
			cancelFunc()
		}
	}()

	<-ctx.Done()

	app.logger.Info(ctx, "Shutting down...")
	if err := router.Shutdown(); err != nil {
		app.logger.Error(ctx, err.Error())
	}
	if err := app.repos.Close(); err != nil {
		app.logger.Error(ctx, err.Error())
	}

	wg.Wait()
}
