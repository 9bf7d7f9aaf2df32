package persistence

import (
	"context"
	"sync"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/josongsong/oyg-storefront-tempo-sub000/internal/cart"
	pkgerrors "github.com/josongsong/oyg-storefront-tempo-sub000/pkg/errors"
	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/logger"
	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/metrics"
)

const (
	defaultMaxRetries   = 3
	defaultRetryBackoff = 100 * time.Millisecond
	writeTimeout        = 5 * time.Second
)

// WriterParams wires the write-through pipeline.
type WriterParams struct {
	Backend      Backend
	Logger       *logger.Logger
	Metrics      *metrics.CartMetrics
	MaxRetries   int
	RetryBackoff time.Duration
}

// Writer is the write-through half of the persistence adapter. Mutations
// enqueue the post-mutation state without blocking; a single goroutine
// encodes and writes it, retrying transient failures. A write that exhausts
// its retries is logged and counted, never rolled back: in-memory state
// stays the source of truth for the session.
//
// The queue is latest-wins. Intermediate states that were superseded before
// the writer got to them are skipped, which is safe because every enqueued
// state is complete.
type Writer struct {
	backend      Backend
	logg         *logger.Logger
	metrics      *metrics.CartMetrics
	maxRetries   uint64
	retryBackoff time.Duration

	mu     sync.RWMutex
	closed bool
	ch     chan cart.State
	done   chan struct{}
}

// NewWriter starts the write-through goroutine.
func NewWriter(params WriterParams) (*Writer, error) {
	if params.Backend == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "snapshot backend required")
	}
	maxRetries := params.MaxRetries
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}
	retryBackoff := params.RetryBackoff
	if retryBackoff <= 0 {
		retryBackoff = defaultRetryBackoff
	}

	w := &Writer{
		backend:      params.Backend,
		logg:         params.Logger,
		metrics:      params.Metrics,
		maxRetries:   uint64(maxRetries),
		retryBackoff: retryBackoff,
		ch:           make(chan cart.State, 1),
		done:         make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Enqueue implements cart.SnapshotSink. It never blocks: if a previous state
// is still waiting it is replaced by this one.
func (w *Writer) Enqueue(state cart.State) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	if w.closed {
		return
	}
	for {
		select {
		case w.ch <- state:
			return
		default:
			select {
			case <-w.ch:
			default:
			}
		}
	}
}

// Close drains the queue and stops the writer.
func (w *Writer) Close() {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	close(w.ch)
	w.mu.Unlock()

	<-w.done
}

// Restore loads the persisted snapshot, falling back to the empty state when
// the backend has nothing, the read fails, or the payload does not decode.
func (w *Writer) Restore(ctx context.Context) cart.State {
	data, err := w.backend.Read(ctx)
	if err != nil {
		w.logError(ctx, "snapshot read failed, starting empty", err)
		w.metrics.IncRestoreFallback()
		empty, _ := Decode(nil)
		return empty
	}

	state, restored := Decode(data)
	if !restored && data != nil {
		w.logWarn(ctx, "persisted snapshot unusable, starting empty")
		w.metrics.IncRestoreFallback()
	}
	return state
}

func (w *Writer) run() {
	defer close(w.done)
	for state := range w.ch {
		w.write(state)
	}
}

func (w *Writer) write(state cart.State) {
	ctx, cancel := context.WithTimeout(context.Background(), writeTimeout)
	defer cancel()

	data, err := Encode(state)
	if err != nil {
		w.logError(ctx, "snapshot encode failed", err)
		w.metrics.IncSnapshotFailure()
		return
	}

	backoff := retry.WithMaxRetries(w.maxRetries, retry.NewConstant(w.retryBackoff))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if writeErr := w.backend.Write(ctx, data); writeErr != nil {
			return retry.RetryableError(writeErr)
		}
		return nil
	})
	if err != nil {
		w.logError(ctx, "snapshot write failed after retries", err)
		w.metrics.IncSnapshotFailure()
		return
	}
	w.metrics.IncSnapshotWrite()
}

func (w *Writer) logError(ctx context.Context, msg string, err error) {
	if w.logg == nil {
		return
	}
	w.logg.Error(ctx, msg, err)
}

func (w *Writer) logWarn(ctx context.Context, msg string) {
	if w.logg == nil {
		return
	}
	w.logg.Warn(ctx, msg)
}
