package cart

import "github.com/josongsong/oyg-storefront-tempo-sub000/pkg/enums"

// Item returns the line for a key.
func (s *Store) Item(key LineItemKey) (LineItem, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	item, ok := s.items[key]
	if !ok {
		return LineItem{}, false
	}
	return cloneItem(item), true
}

// Items returns all lines in insertion order.
func (s *Store) Items() []LineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]LineItem, 0, len(s.order))
	for _, key := range s.order {
		out = append(out, cloneItem(s.items[key]))
	}
	return out
}

// TotalItems returns the unit count: the sum of all quantities, not the
// number of distinct lines.
func (s *Store) TotalItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.items {
		total += item.Quantity
	}
	return total
}

// Has reports whether a line matches the product and, when options are
// given, the shade/size selection. It uses the same match predicate as
// AddItem's merge test.
func (s *Store) Has(productID string, opts *VariantOptions) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, item := range s.items {
		if item.ProductID != productID {
			continue
		}
		if opts == nil || matchOptions(item.Options, opts) {
			return true
		}
	}
	return false
}

// ShippingMethod returns the active cart-wide shipping method.
func (s *Store) ShippingMethod() enums.ShippingMethod {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shipping
}

// Len returns the number of distinct lines.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

// Snapshot returns a point-in-time copy of the full store state.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}
