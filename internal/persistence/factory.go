package persistence

import (
	"context"
	"fmt"

	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/config"
)

// NewBackendStack builds the snapshot backend(s) named by the config. A
// single name yields that backend directly; a comma-separated list composes
// a MultiBackend so writes land everywhere and reads come from the first
// backend holding data. The returned cleanup closes any client connections.
func NewBackendStack(ctx context.Context, cfg *config.Config) (Backend, func(), error) {
	noop := func() {}

	var backends []Backend
	var cleanups []func()
	cleanup := func() {
		for _, fn := range cleanups {
			fn()
		}
	}

	for _, name := range cfg.Snapshot.Backends() {
		switch name {
		case config.SnapshotBackendFile:
			backend, err := NewFileBackend(cfg.Snapshot.Path)
			if err != nil {
				cleanup()
				return nil, noop, err
			}
			backends = append(backends, backend)
		case config.SnapshotBackendSQLite:
			backend, err := NewSQLiteBackend(cfg.Snapshot.SQLitePath, cfg.Snapshot.Scope)
			if err != nil {
				cleanup()
				return nil, noop, err
			}
			backends = append(backends, backend)
		case config.SnapshotBackendRedis:
			backend, err := NewRedisBackend(ctx, cfg.Redis, cfg.Snapshot.Scope, cfg.Snapshot.TTL)
			if err != nil {
				cleanup()
				return nil, noop, err
			}
			backends = append(backends, backend)
			cleanups = append(cleanups, func() { backend.Close() })
		default:
			cleanup()
			return nil, noop, fmt.Errorf("unknown snapshot backend %q", name)
		}
	}

	if len(backends) == 0 {
		return nil, noop, fmt.Errorf("no snapshot backend configured")
	}
	if len(backends) == 1 {
		return backends[0], cleanup, nil
	}
	return NewMultiBackend(backends...), cleanup, nil
}
