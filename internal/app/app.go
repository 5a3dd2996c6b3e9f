// Package app wires configuration, storage and use cases together for the
// command line entry points.
package app

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/willythepapi/FITART-v1/config"
	"github.com/willythepapi/FITART-v1/internal/api"
	"github.com/willythepapi/FITART-v1/internal/database"
	"github.com/willythepapi/FITART-v1/internal/middleware"
	"github.com/willythepapi/FITART-v1/internal/models"
	"github.com/willythepapi/FITART-v1/internal/repository"
	"github.com/willythepapi/FITART-v1/internal/service"
	"github.com/willythepapi/FITART-v1/internal/usecase"
)

// App holds the long-lived objects of a process.
type App struct {
	Config   *config.Config
	Store    *database.Store
	UseCases *usecase.UseCases

	auth  *service.AuthService
	redis *redis.Client
	kv    database.KVStore
}

// New opens the configured storage and builds the use cases without any
// external services. The CLI uses it.
func New(ctx context.Context, cfg *config.Config) (*App, error) {
	return build(ctx, cfg, false)
}

// NewServer is New plus the optional services of the HTTP API: Redis for
// rate limiting and coach memory, the AI coach and S3 photo storage. Each
// is skipped with a warning when it is not configured or not reachable.
func NewServer(ctx context.Context, cfg *config.Config) (*App, error) {
	return build(ctx, cfg, true)
}

func build(ctx context.Context, cfg *config.Config, withServices bool) (*App, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	kv, err := database.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", cfg.StorageDriver, err)
	}
	store := database.NewStore(kv, cfg.StorageKey)
	if err := store.Init(ctx); err != nil {
		kv.Close()
		return nil, fmt.Errorf("failed to load database: %w", err)
	}

	a := &App{
		Config: cfg,
		Store:  store,
		auth:   service.NewAuthService(cfg.JWTSecret, cfg.PasscodeHash, models.DefaultUser().ID, cfg.TokenTTL()),
		kv:     kv,
	}

	opts := usecase.Options{Location: loc, Now: time.Now}
	if withServices {
		a.connectServices(ctx, &opts)
	}
	a.UseCases = usecase.New(repository.New(store, loc, time.Now), opts)
	return a, nil
}

func (a *App) connectServices(ctx context.Context, opts *usecase.Options) {
	redisClient, err := database.NewRedisClient(a.Config)
	if err != nil {
		log.Printf("[App] Warning: Redis unavailable, coach rate limiting and memory disabled: %v", err)
	} else {
		a.redis = redisClient
	}

	if a.Config.CoachAPIKey != "" {
		coach, err := service.NewCoachService(a.Config, a.redis)
		if err != nil {
			log.Printf("[App] Warning: AI coach disabled: %v", err)
		} else {
			opts.Coach = coach
		}
	} else {
		log.Printf("[App] AI coach disabled, no API key configured")
	}

	s3Config, err := config.NewS3Config(ctx, a.Config)
	switch {
	case err != nil:
		log.Printf("[App] Warning: S3 unavailable, photos are stored inline: %v", err)
	case s3Config != nil:
		opts.Photos = service.NewS3PhotoStorage(s3Config)
	}

	if !a.auth.Enabled() {
		log.Printf("[App] Warning: JWT_SECRET not set, API is open to anyone who can reach it")
	}
}

// Deps returns the HTTP collaborators of the API.
func (a *App) Deps() api.Deps {
	deps := api.Deps{
		Auth:   a.auth,
		UserID: models.DefaultUser().ID,
		Store:  a.Store,
	}
	if a.redis != nil && a.Config.CoachRateLimit > 0 {
		deps.CoachLimiter = middleware.NewCoachRateLimiter(a.redis, a.Config.CoachRateLimit)
	}
	return deps
}

// Close releases the storage and Redis connections.
func (a *App) Close() error {
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			log.Printf("[App] Failed to close Redis: %v", err)
		}
	}
	return a.kv.Close()
}
