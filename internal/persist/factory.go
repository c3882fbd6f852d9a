package persist

import (
	"context"
	"fmt"
	"log/slog"

	"runlog/internal/persist/memory"
	"runlog/internal/persist/redis"
	"runlog/internal/persist/sqlite"
)

// Backend names a persistence implementation.
type Backend string

const (
	MemoryBackend Backend = "memory"
	SQLiteBackend Backend = "sqlite"
	RedisBackend  Backend = "redis"
)

func (b Backend) IsValid() bool {
	switch b {
	case MemoryBackend, SQLiteBackend, RedisBackend:
		return true
	}
	return false
}

// Config selects and parameterizes a backend.
type Config struct {
	Backend Backend

	SQLiteDBPath string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
}

// OpenStore builds the configured backend. The blob always lives under
// RecordName regardless of backend.
func OpenStore(ctx context.Context, cfg Config, logger *slog.Logger) (Store, error) {
	if logger == nil {
		logger = slog.Default()
	}

	switch cfg.Backend {
	case MemoryBackend:
		logger.Info("Initialized memory persistence")
		return memory.New(RecordName), nil
	case SQLiteBackend:
		store, err := sqlite.Open(cfg.SQLiteDBPath, RecordName)
		if err != nil {
			return nil, fmt.Errorf("initialize sqlite persistence: %w", err)
		}
		logger.Info("Initialized SQLite persistence", "db_path", cfg.SQLiteDBPath)
		return store, nil
	case RedisBackend:
		store, err := redis.Open(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB, RecordName)
		if err != nil {
			return nil, fmt.Errorf("initialize redis persistence: %w", err)
		}
		logger.Info("Initialized Redis persistence", "addr", cfg.RedisAddr, "db", cfg.RedisDB)
		return store, nil
	default:
		return nil, fmt.Errorf("unsupported persistence backend: %q", cfg.Backend)
	}
}
