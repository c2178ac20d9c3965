// Package factory wires the application together. All clients are
// constructed explicitly and passed by reference; a misconfigured
// backend fails construction instead of surfacing later as a nil handle.
package factory

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/SiddheshD91/PPL2026/internal/dependencies/clock"
	"github.com/SiddheshD91/PPL2026/internal/model"
	"github.com/SiddheshD91/PPL2026/internal/services/auth"
	"github.com/SiddheshD91/PPL2026/internal/services/category"
	"github.com/SiddheshD91/PPL2026/internal/services/player"
	"github.com/SiddheshD91/PPL2026/internal/storage"
	"github.com/SiddheshD91/PPL2026/internal/storage/memory"
	redisstorage "github.com/SiddheshD91/PPL2026/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	Storage storage.Storage
	Clock   clock.Clock

	AuthService     *auth.Service
	PlayerService   *player.Service
	CategoryService *category.Service
}

// Config holds configuration for the application factory
type Config struct {
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the storage backend ("memory" or "redis")
	// If empty, defaults to "memory"
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
	// AuthConfig holds configuration for the auth service (optional)
	AuthConfig auth.Config
}

// New creates a new application with all dependencies wired
func New(cfg Config) (*App, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	clk := clock.New()

	var store storage.Storage
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		store = memory.New(clk)
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, fmt.Errorf("%w: RedisConfig required when StorageType is redis", model.ErrNotConfigured)
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig, clk)
		if err != nil {
			return nil, err
		}
		store = redisStore
	default:
		return nil, fmt.Errorf("%w: invalid StorageType %q, must be 'memory' or 'redis'", model.ErrNotConfigured, storageType)
	}

	authCfg := cfg.AuthConfig
	if authCfg.SessionDuration == 0 {
		authCfg = auth.DefaultConfig()
	}

	return newWithDependencies(store, clk, authCfg, logger), nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(store storage.Storage, clk clock.Clock, authCfg auth.Config, logger *slog.Logger) *App {
	authService := auth.New(store, clk, authCfg, logger)
	playerService := player.New(store, clk, logger)
	categoryService := category.New(store, logger)

	return &App{
		Storage:         store,
		Clock:           clk,
		AuthService:     authService,
		PlayerService:   playerService,
		CategoryService: categoryService,
	}
}
