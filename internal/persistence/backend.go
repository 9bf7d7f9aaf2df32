package persistence

import (
	"context"

	"go.uber.org/multierr"
)

// Backend is one durable home for encoded snapshots. Read returns (nil, nil)
// when no snapshot has ever been written.
type Backend interface {
	Write(ctx context.Context, data []byte) error
	Read(ctx context.Context) ([]byte, error)
}

// MultiBackend fans writes out to every backend and reads from the first one
// that holds data. Write errors are joined so a partial failure still lands
// the snapshot everywhere it can.
type MultiBackend struct {
	backends []Backend
}

// NewMultiBackend composes backends; order decides read priority.
func NewMultiBackend(backends ...Backend) *MultiBackend {
	return &MultiBackend{backends: backends}
}

func (m *MultiBackend) Write(ctx context.Context, data []byte) error {
	var err error
	for _, backend := range m.backends {
		err = multierr.Append(err, backend.Write(ctx, data))
	}
	return err
}

func (m *MultiBackend) Read(ctx context.Context) ([]byte, error) {
	var err error
	for _, backend := range m.backends {
		data, readErr := backend.Read(ctx)
		if readErr != nil {
			err = multierr.Append(err, readErr)
			continue
		}
		if data != nil {
			return data, nil
		}
	}
	return nil, err
}
