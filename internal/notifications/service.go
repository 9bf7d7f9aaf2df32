package notifications

import (
	"context"
	"sync"
	"time"

	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/enums"
	pkgerrors "github.com/josongsong/oyg-storefront-tempo-sub000/pkg/errors"
	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/logger"
)

// Toast is one fire-and-forget user-facing notification. Duration is a
// display hint for whatever renders the toast; the engine never waits on it.
type Toast struct {
	Message  string              `json:"message"`
	Severity enums.ToastSeverity `json:"severity"`
	Duration time.Duration       `json:"duration"`
}

// Service receives toast events from the cart engine.
type Service interface {
	Push(ctx context.Context, toast Toast)
}

// Listener observes every pushed toast. The UI binding registers one to
// surface toasts; tests register one to assert on the side channel.
type Listener func(Toast)

// Hub is the default Service: it logs every toast and fans it out to
// registered listeners.
type Hub struct {
	logg *logger.Logger

	mu        sync.Mutex
	listeners []Listener
}

// NewHub wires the toast collaborator.
func NewHub(logg *logger.Logger) (*Hub, error) {
	if logg == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "logger required")
	}
	return &Hub{logg: logg}, nil
}

// AddListener registers an observer for subsequent toasts.
func (s *Hub) AddListener(fn Listener) {
	if fn == nil {
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

func (s *Hub) Push(ctx context.Context, toast Toast) {
	if toast.Severity == "" {
		toast.Severity = enums.ToastInfo
	}

	ctx = s.logg.WithFields(ctx, map[string]any{
		"severity":    toast.Severity.String(),
		"duration_ms": toast.Duration.Milliseconds(),
	})
	s.logg.Info(ctx, "toast: "+toast.Message)

	s.mu.Lock()
	listeners := make([]Listener, len(s.listeners))
	copy(listeners, s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(toast)
	}
}
