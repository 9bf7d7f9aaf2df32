package cart

import (
	"context"
	"sync"
	"time"

	"github.com/josongsong/oyg-storefront-tempo-sub000/internal/notifications"
	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/enums"
	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/logger"
	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/metrics"
)

const defaultToastDuration = 2 * time.Second

const (
	msgItemAdded       = "Added to cart"
	msgQuantityUpdated = "Quantity updated"
)

// Entry pairs a line key with its item. Snapshots carry the store as an
// explicit entry list because the map itself is not durable-format friendly.
type Entry struct {
	Key  LineItemKey `json:"key"`
	Item LineItem    `json:"item"`
}

// State is a point-in-time copy of the store, the unit the persistence
// adapter saves and restores.
type State struct {
	Items          []Entry
	ShippingMethod enums.ShippingMethod
}

// SnapshotSink receives the post-mutation state for durable write-through.
// Implementations must not block: the store fires and forgets.
type SnapshotSink interface {
	Enqueue(state State)
}

// StoreParams wires the store's collaborators. All of them are optional; a
// zero-params store is a plain in-memory cart.
type StoreParams struct {
	Notifier      notifications.Service
	Sink          SnapshotSink
	Metrics       *metrics.CartMetrics
	Logger        *logger.Logger
	ToastDuration time.Duration
}

// Store is the authoritative cart state: a key-to-line-item map plus the
// cart-wide shipping method. All operations are safe for concurrent use; a
// mutation fully completes (map update, notification, snapshot enqueue,
// subscriber broadcast) before the next one observes the store.
type Store struct {
	mu          sync.Mutex
	items       map[LineItemKey]LineItem
	order       []LineItemKey
	shipping    enums.ShippingMethod
	subscribers map[int]func()
	nextSubID   int

	notifier      notifications.Service
	sink          SnapshotSink
	metrics       *metrics.CartMetrics
	logg          *logger.Logger
	toastDuration time.Duration
}

// NewStore creates an empty cart with the standard shipping method active.
func NewStore(params StoreParams) *Store {
	toastDuration := params.ToastDuration
	if toastDuration <= 0 {
		toastDuration = defaultToastDuration
	}
	return &Store{
		items:         make(map[LineItemKey]LineItem),
		shipping:      enums.ShippingStandard,
		subscribers:   make(map[int]func()),
		notifier:      params.Notifier,
		sink:          params.Sink,
		metrics:       params.Metrics,
		logg:          params.Logger,
		toastDuration: toastDuration,
	}
}

// AddItem merges the product into an existing line when one matches on
// product id plus shade/size, otherwise inserts a new line. The linear scan
// over current lines, not key equality, is what prevents duplicate rows for
// the same product and variant. Returns the affected line and whether the
// call merged.
func (s *Store) AddItem(ctx context.Context, product ProductRef, opts *VariantOptions, quantity int) (LineItem, bool) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	var affected LineItem
	merged := false
	for _, key := range s.order {
		existing := s.items[key]
		if existing.ProductID == product.ProductID && matchOptions(existing.Options, opts) {
			existing.Quantity += quantity
			s.items[key] = existing
			affected = cloneItem(existing)
			merged = true
			break
		}
	}
	if !merged {
		key := ResolveKey(product.ProductID, opts)
		item := LineItem{
			Key:           key,
			ProductID:     product.ProductID,
			Name:          product.Name,
			Brand:         product.Brand,
			Image:         product.Image,
			Price:         product.Price,
			OriginalPrice: product.OriginalPrice,
			Quantity:      quantity,
			Options:       cloneOptions(opts),
			IsNew:         product.IsNew,
		}
		s.items[key] = item
		s.order = append(s.order, key)
		affected = cloneItem(item)
	}
	state := s.stateLocked()
	s.mu.Unlock()

	message := msgItemAdded
	op := "add_item"
	if merged {
		message = msgQuantityUpdated
		op = "merge_item"
	}
	s.toast(ctx, message)
	s.afterMutation(ctx, op, state)

	return affected, merged
}

// RemoveItem deletes the line. Removing an absent key is a no-op, not an
// error.
func (s *Store) RemoveItem(ctx context.Context, key LineItemKey) {
	s.mu.Lock()
	if _, ok := s.items[key]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.items, key)
	for i, k := range s.order {
		if k == key {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	state := s.stateLocked()
	s.mu.Unlock()

	s.afterMutation(ctx, "remove_item", state)
}

// UpdateQuantity sets the line's quantity, clamped to a floor of 1. Dropping
// a line is RemoveItem's job, never a quantity update. Absent keys are a
// no-op.
func (s *Store) UpdateQuantity(ctx context.Context, key LineItemKey, quantity int) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	item, ok := s.items[key]
	if !ok {
		s.mu.Unlock()
		return
	}
	item.Quantity = quantity
	s.items[key] = item
	state := s.stateLocked()
	s.mu.Unlock()

	s.afterMutation(ctx, "update_quantity", state)
}

// UpdateOptions field-merges the partial options into the line's existing
// options. Lines that carry no options object are left untouched: this call
// never creates one. Absent keys are a no-op.
func (s *Store) UpdateOptions(ctx context.Context, key LineItemKey, partial VariantOptions) {
	s.mu.Lock()
	item, ok := s.items[key]
	if !ok || item.Options == nil {
		s.mu.Unlock()
		return
	}
	opts := cloneOptions(item.Options)
	if partial.Shade != nil {
		v := *partial.Shade
		opts.Shade = &v
	}
	if partial.Size != nil {
		v := *partial.Size
		opts.Size = &v
	}
	if partial.SKU != nil {
		v := *partial.SKU
		opts.SKU = &v
	}
	item.Options = opts
	s.items[key] = item
	state := s.stateLocked()
	s.mu.Unlock()

	s.afterMutation(ctx, "update_options", state)
}

// Clear empties the store, e.g. after checkout.
func (s *Store) Clear(ctx context.Context) {
	s.mu.Lock()
	s.items = make(map[LineItemKey]LineItem)
	s.order = nil
	state := s.stateLocked()
	s.mu.Unlock()

	s.afterMutation(ctx, "clear", state)
}

// SetShippingMethod switches the cart-wide shipping method. Unknown methods
// are ignored.
func (s *Store) SetShippingMethod(ctx context.Context, method enums.ShippingMethod) {
	if !method.IsValid() {
		return
	}

	s.mu.Lock()
	s.shipping = method
	state := s.stateLocked()
	s.mu.Unlock()

	s.afterMutation(ctx, "set_shipping_method", state)
}

// Restore replaces the store contents with a previously persisted state.
// It runs the subscriber broadcast but no toast and no snapshot write: the
// sink already holds this state.
func (s *Store) Restore(state State) {
	s.mu.Lock()
	s.items = make(map[LineItemKey]LineItem, len(state.Items))
	s.order = make([]LineItemKey, 0, len(state.Items))
	for _, entry := range state.Items {
		if _, ok := s.items[entry.Key]; ok {
			continue
		}
		item := cloneItem(entry.Item)
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		item.Key = entry.Key
		s.items[entry.Key] = item
		s.order = append(s.order, entry.Key)
	}
	s.shipping = enums.ShippingStandard
	if state.ShippingMethod.IsValid() {
		s.shipping = state.ShippingMethod
	}
	s.mu.Unlock()

	s.broadcast()
}

// Subscribe registers a callback invoked after every mutation. The returned
// function unsubscribes.
func (s *Store) Subscribe(fn func()) func() {
	if fn == nil {
		return func() {}
	}
	s.mu.Lock()
	id := s.nextSubID
	s.nextSubID++
	s.subscribers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subscribers, id)
		s.mu.Unlock()
	}
}

func (s *Store) stateLocked() State {
	items := make([]Entry, 0, len(s.order))
	for _, key := range s.order {
		items = append(items, Entry{Key: key, Item: cloneItem(s.items[key])})
	}
	return State{Items: items, ShippingMethod: s.shipping}
}

func (s *Store) afterMutation(ctx context.Context, op string, state State) {
	s.metrics.IncMutation(op)
	if s.sink != nil {
		s.sink.Enqueue(state)
	}
	if s.logg != nil {
		s.logg.Debug(s.logg.WithField(ctx, "op", op), "cart mutated")
	}
	s.broadcast()
}

func (s *Store) toast(ctx context.Context, message string) {
	if s.notifier == nil {
		return
	}
	s.notifier.Push(ctx, notifications.Toast{
		Message:  message,
		Severity: enums.ToastSuccess,
		Duration: s.toastDuration,
	})
}

func (s *Store) broadcast() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subscribers))
	for _, fn := range s.subscribers {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
