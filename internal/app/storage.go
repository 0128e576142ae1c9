package app

import (
	"context"
	"fmt"

	"github.com/printmax/enquiry-desk/internal/adapter/kv/file"
	"github.com/printmax/enquiry-desk/internal/adapter/kv/memory"
	"github.com/printmax/enquiry-desk/internal/adapter/kv/redis"
	"github.com/printmax/enquiry-desk/internal/adapter/kv/sqlite"
	"github.com/printmax/enquiry-desk/internal/config"
)

// KV is the key-value contract every storage driver satisfies.
type KV interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte) error
}

// Storage is an opened backend and its release function.
type Storage struct {
	KV    KV
	Close func() error
}

var (
	_ KV = (*file.Store)(nil)
	_ KV = (*memory.Store)(nil)
	_ KV = (*redis.Store)(nil)
	_ KV = (*sqlite.Store)(nil)
)

// OpenStorage opens the backend selected by cfg.Driver.
func OpenStorage(ctx context.Context, cfg config.StorageConfig) (*Storage, error) {
	noop := func() error { return nil }

	switch cfg.Driver {
	case config.DriverFile:
		s, err := file.New(cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("open file storage: %w", err)
		}
		return &Storage{KV: s, Close: noop}, nil

	case config.DriverSQLite:
		s, err := sqlite.Open(ctx, cfg.Path)
		if err != nil {
			return nil, fmt.Errorf("open sqlite storage: %w", err)
		}
		return &Storage{KV: s, Close: s.Close}, nil

	case config.DriverRedis:
		s, err := redis.New(ctx, redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err != nil {
			return nil, fmt.Errorf("open redis storage: %w", err)
		}
		return &Storage{KV: s, Close: s.Close}, nil

	case config.DriverMemory:
		return &Storage{KV: memory.New(), Close: noop}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Driver)
}
