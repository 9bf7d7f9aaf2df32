package cart

import (
	"context"
	"sync"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/josongsong/oyg-storefront-tempo-sub000/internal/notifications"
)

func TestAddItemMergesSameProductAndOptions(t *testing.T) {
	t.Parallel()

	store := NewStore(StoreParams{})
	red := opts("red", "")

	first, merged := store.AddItem(context.Background(), product("p1", "10.00"), red, 2)
	if merged {
		t.Fatal("first add should not merge")
	}
	second, merged := store.AddItem(context.Background(), product("p1", "10.00"), opts("red", ""), 3)
	if !merged {
		t.Fatal("second add with equal options should merge")
	}

	if store.Len() != 1 {
		t.Fatalf("expected 1 line, got %d", store.Len())
	}
	if second.Key != first.Key {
		t.Fatalf("merge should keep the original key: %s != %s", second.Key, first.Key)
	}
	if second.Quantity != 5 {
		t.Fatalf("expected merged quantity 5, got %d", second.Quantity)
	}
}

func TestAddItemDifferentShadeCreatesSecondLine(t *testing.T) {
	t.Parallel()

	store := NewStore(StoreParams{})
	store.AddItem(context.Background(), product("p1", "10.00"), opts("red", ""), 1)
	store.AddItem(context.Background(), product("p1", "10.00"), opts("pink", ""), 1)

	if store.Len() != 2 {
		t.Fatalf("expected 2 lines for distinct shades, got %d", store.Len())
	}
}

func TestAddItemWithoutOptionsMerges(t *testing.T) {
	t.Parallel()

	store := NewStore(StoreParams{})
	store.AddItem(context.Background(), product("p1", "10.00"), nil, 1)
	_, merged := store.AddItem(context.Background(), product("p1", "10.00"), nil, 1)

	if !merged {
		t.Fatal("option-less adds of the same product should merge")
	}
	if got := store.TotalItems(); got != 2 {
		t.Fatalf("expected 2 units, got %d", got)
	}
}

func TestAddItemClampsQuantityFloor(t *testing.T) {
	t.Parallel()

	store := NewStore(StoreParams{})
	item, _ := store.AddItem(context.Background(), product("p1", "10.00"), nil, 0)

	if item.Quantity != 1 {
		t.Fatalf("expected quantity clamp to 1, got %d", item.Quantity)
	}
}

func TestUpdateQuantityFloor(t *testing.T) {
	t.Parallel()

	store := NewStore(StoreParams{})
	item, _ := store.AddItem(context.Background(), product("p1", "10.00"), nil, 3)

	store.UpdateQuantity(context.Background(), item.Key, 0)
	if got, _ := store.Item(item.Key); got.Quantity != 1 {
		t.Fatalf("quantity 0 should clamp to 1, got %d", got.Quantity)
	}

	store.UpdateQuantity(context.Background(), item.Key, -5)
	if got, _ := store.Item(item.Key); got.Quantity != 1 {
		t.Fatalf("quantity -5 should clamp to 1, got %d", got.Quantity)
	}

	store.UpdateQuantity(context.Background(), "missing", 4)
	if store.TotalItems() != 1 {
		t.Fatal("updating an absent key must be a no-op")
	}
}

func TestRemoveItemAbsentKeyIsNoOp(t *testing.T) {
	t.Parallel()

	sink := &stubSink{}
	store := NewStore(StoreParams{Sink: sink})
	item, _ := store.AddItem(context.Background(), product("p1", "10.00"), nil, 1)
	writes := sink.count()

	store.RemoveItem(context.Background(), "missing")
	if sink.count() != writes {
		t.Fatal("no-op removal must not trigger a snapshot write")
	}

	store.RemoveItem(context.Background(), item.Key)
	if store.Len() != 0 {
		t.Fatalf("expected empty store, got %d lines", store.Len())
	}
}

func TestUpdateOptionsOnlyWhenOptionsExist(t *testing.T) {
	t.Parallel()

	store := NewStore(StoreParams{})

	bare, _ := store.AddItem(context.Background(), product("p1", "10.00"), nil, 1)
	store.UpdateOptions(context.Background(), bare.Key, VariantOptions{Shade: strPtr("red")})
	if got, _ := store.Item(bare.Key); got.Options != nil {
		t.Fatal("UpdateOptions must not create an options object")
	}

	shaded, _ := store.AddItem(context.Background(), product("p2", "10.00"), opts("red", "30ml"), 1)
	store.UpdateOptions(context.Background(), shaded.Key, VariantOptions{Shade: strPtr("pink")})
	got, _ := store.Item(shaded.Key)
	if got.Options == nil || got.Options.Shade == nil || *got.Options.Shade != "pink" {
		t.Fatalf("expected shade pink, got %+v", got.Options)
	}
	if got.Options.Size == nil || *got.Options.Size != "30ml" {
		t.Fatalf("partial update must preserve size, got %+v", got.Options)
	}
}

func TestClearEmptiesStore(t *testing.T) {
	t.Parallel()

	store := NewStore(StoreParams{})
	store.AddItem(context.Background(), product("p1", "10.00"), nil, 2)
	store.AddItem(context.Background(), product("p2", "20.00"), nil, 1)

	store.Clear(context.Background())

	if store.Len() != 0 || store.TotalItems() != 0 {
		t.Fatal("expected empty store after Clear")
	}
}

func TestToastSideChannel(t *testing.T) {
	t.Parallel()

	notifier := &stubNotifier{}
	store := NewStore(StoreParams{Notifier: notifier})

	store.AddItem(context.Background(), product("p1", "10.00"), nil, 1)
	store.AddItem(context.Background(), product("p1", "10.00"), nil, 1)
	item, _ := store.Item(ResolveKey("p1", nil))
	store.UpdateQuantity(context.Background(), item.Key, 5)
	store.RemoveItem(context.Background(), item.Key)

	want := []string{msgItemAdded, msgQuantityUpdated}
	got := notifier.messages()
	if len(got) != len(want) {
		t.Fatalf("expected %d toasts, got %v", len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("toast %d: expected %q, got %q", i, want[i], got[i])
		}
	}
}

func TestHasAgreesWithMergeTest(t *testing.T) {
	t.Parallel()

	store := NewStore(StoreParams{})
	store.AddItem(context.Background(), product("p1", "10.00"), opts("red", ""), 1)

	if !store.Has("p1", nil) {
		t.Fatal("Has without options should match any variant of the product")
	}
	if !store.Has("p1", opts("red", "")) {
		t.Fatal("Has must match the same way the merge test does")
	}
	if store.Has("p1", opts("pink", "")) {
		t.Fatal("Has must not match a different shade")
	}
	if store.Has("p2", nil) {
		t.Fatal("Has must not match an absent product")
	}
}

func TestItemsStableInsertionOrder(t *testing.T) {
	t.Parallel()

	store := NewStore(StoreParams{})
	store.AddItem(context.Background(), product("p1", "10.00"), nil, 1)
	store.AddItem(context.Background(), product("p2", "20.00"), nil, 1)
	store.AddItem(context.Background(), product("p1", "10.00"), nil, 1)

	items := store.Items()
	if len(items) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(items))
	}
	if items[0].ProductID != "p1" || items[1].ProductID != "p2" {
		t.Fatalf("expected insertion order p1,p2; got %s,%s", items[0].ProductID, items[1].ProductID)
	}
}

func TestSubscribeAndUnsubscribe(t *testing.T) {
	t.Parallel()

	store := NewStore(StoreParams{})
	calls := 0
	unsubscribe := store.Subscribe(func() { calls++ })

	store.AddItem(context.Background(), product("p1", "10.00"), nil, 1)
	if calls != 1 {
		t.Fatalf("expected 1 broadcast, got %d", calls)
	}

	unsubscribe()
	store.Clear(context.Background())
	if calls != 1 {
		t.Fatalf("expected no broadcast after unsubscribe, got %d", calls)
	}
}

func TestSubscriberObservesMutationsInOrder(t *testing.T) {
	t.Parallel()

	store := NewStore(StoreParams{})

	// The broadcast fires after the mutation lands, so each notification
	// must see the fully applied state and arrive in mutation order.
	var seen []int
	store.Subscribe(func() { seen = append(seen, store.TotalItems()) })

	item, _ := store.AddItem(context.Background(), product("p1", "10.00"), opts("red", ""), 2)
	store.AddItem(context.Background(), product("p1", "10.00"), opts("red", ""), 3)
	store.UpdateQuantity(context.Background(), item.Key, 4)
	store.RemoveItem(context.Background(), item.Key)

	want := []int{2, 5, 4, 0}
	if len(seen) != len(want) {
		t.Fatalf("expected %d broadcasts, got %d (%v)", len(want), len(seen), seen)
	}
	for i, units := range want {
		if seen[i] != units {
			t.Fatalf("broadcast %d saw %d units, want %d (%v)", i, seen[i], units, seen)
		}
	}
}

func TestEveryMutationEnqueuesSnapshot(t *testing.T) {
	t.Parallel()

	sink := &stubSink{}
	store := NewStore(StoreParams{Sink: sink})

	item, _ := store.AddItem(context.Background(), product("p1", "10.00"), opts("red", ""), 1)
	store.UpdateQuantity(context.Background(), item.Key, 2)
	store.UpdateOptions(context.Background(), item.Key, VariantOptions{Size: strPtr("50ml")})
	store.SetShippingMethod(context.Background(), "express")
	store.RemoveItem(context.Background(), item.Key)
	store.Clear(context.Background())

	if got := sink.count(); got != 6 {
		t.Fatalf("expected 6 snapshot writes, got %d", got)
	}
	last := sink.last()
	if len(last.Items) != 0 {
		t.Fatalf("final snapshot should be empty, got %d items", len(last.Items))
	}
	if last.ShippingMethod != "express" {
		t.Fatalf("snapshot must carry the shipping method, got %q", last.ShippingMethod)
	}
}

func TestSetShippingMethodIgnoresUnknown(t *testing.T) {
	t.Parallel()

	store := NewStore(StoreParams{})
	store.SetShippingMethod(context.Background(), "express")
	store.SetShippingMethod(context.Background(), "teleport")

	if got := store.ShippingMethod(); got != "express" {
		t.Fatalf("unknown method must be ignored, got %q", got)
	}
}

func TestRestoreReplacesState(t *testing.T) {
	t.Parallel()

	store := NewStore(StoreParams{})
	store.AddItem(context.Background(), product("stale", "1.00"), nil, 9)

	restored := NewStore(StoreParams{})
	item, _ := restored.AddItem(context.Background(), product("p1", "10.00"), opts("red", ""), 2)
	_ = item

	store.Restore(restored.Snapshot())

	if store.Len() != 1 || store.TotalItems() != 2 {
		t.Fatalf("expected restored state, got %d lines / %d units", store.Len(), store.TotalItems())
	}
	if store.Has("stale", nil) {
		t.Fatal("restore must replace, not merge")
	}
}

func product(id, price string) ProductRef {
	return ProductRef{
		ProductID: id,
		Name:      "Product " + id,
		Brand:     "Brand",
		Image:     "/images/" + id + ".jpg",
		Price:     decimal.RequireFromString(price),
	}
}

func opts(shade, size string) *VariantOptions {
	out := &VariantOptions{}
	if shade != "" {
		out.Shade = &shade
	}
	if size != "" {
		out.Size = &size
	}
	return out
}

func strPtr(v string) *string {
	return &v
}

type stubNotifier struct {
	mu     sync.Mutex
	toasts []notifications.Toast
}

func (s *stubNotifier) Push(ctx context.Context, toast notifications.Toast) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toasts = append(s.toasts, toast)
}

func (s *stubNotifier) messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.toasts))
	for _, toast := range s.toasts {
		out = append(out, toast.Message)
	}
	return out
}

type stubSink struct {
	mu     sync.Mutex
	states []State
}

func (s *stubSink) Enqueue(state State) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.states = append(s.states, state)
}

func (s *stubSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.states)
}

func (s *stubSink) last() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.states) == 0 {
		return State{}
	}
	return s.states[len(s.states)-1]
}
