package persistence

import (
	"encoding/json"
	"fmt"

	"github.com/josongsong/oyg-storefront-tempo-sub000/internal/cart"
	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/enums"
)

// SchemaVersion tags every written snapshot. A mismatch on load is treated
// exactly like missing state.
const SchemaVersion = 1

// Pair is one (key, item) tuple in the durable layout. The store's map is
// flattened to an explicit pair list because maps do not survive most
// durable-storage formats.
type Pair struct {
	Key  cart.LineItemKey
	Item cart.LineItem
}

// MarshalJSON encodes the pair as a two-element array.
func (p Pair) MarshalJSON() ([]byte, error) {
	return json.Marshal([2]any{p.Key, p.Item})
}

// UnmarshalJSON decodes the two-element array form.
func (p *Pair) UnmarshalJSON(data []byte) error {
	var tuple []json.RawMessage
	if err := json.Unmarshal(data, &tuple); err != nil {
		return err
	}
	if len(tuple) != 2 {
		return fmt.Errorf("pair: want 2 elements, got %d", len(tuple))
	}
	if err := json.Unmarshal(tuple[0], &p.Key); err != nil {
		return fmt.Errorf("pair key: %w", err)
	}
	if err := json.Unmarshal(tuple[1], &p.Item); err != nil {
		return fmt.Errorf("pair item: %w", err)
	}
	return nil
}

// Snapshot is the durable representation of the cart state.
type Snapshot struct {
	SchemaVersion  int                  `json:"schema_version"`
	Items          []Pair               `json:"items"`
	ShippingMethod enums.ShippingMethod `json:"shippingMethod"`
}

// FromState flattens a store state into its durable form.
func FromState(state cart.State) Snapshot {
	items := make([]Pair, 0, len(state.Items))
	for _, entry := range state.Items {
		items = append(items, Pair{Key: entry.Key, Item: entry.Item})
	}
	return Snapshot{
		SchemaVersion:  SchemaVersion,
		Items:          items,
		ShippingMethod: state.ShippingMethod,
	}
}

// State reconstructs the store state from the pair list.
func (s Snapshot) State() cart.State {
	items := make([]cart.Entry, 0, len(s.Items))
	for _, pair := range s.Items {
		items = append(items, cart.Entry{Key: pair.Key, Item: pair.Item})
	}
	return cart.State{Items: items, ShippingMethod: s.ShippingMethod}
}

// Encode serializes a store state for durable storage.
func Encode(state cart.State) ([]byte, error) {
	return json.Marshal(FromState(state))
}

// Decode restores a store state from its durable form. Corrupt persisted
// state is recoverable, never fatal: missing input, malformed JSON, an
// absent items field, or a schema-version mismatch all yield the empty
// state and restored=false. Unknown fields are ignored.
func Decode(data []byte) (state cart.State, restored bool) {
	empty := cart.State{ShippingMethod: enums.ShippingStandard}
	if len(data) == 0 {
		return empty, false
	}

	// Items stays a RawMessage so an absent field is distinguishable from
	// an empty list.
	var raw struct {
		SchemaVersion  int             `json:"schema_version"`
		Items          json.RawMessage `json:"items"`
		ShippingMethod string          `json:"shippingMethod"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return empty, false
	}
	if raw.SchemaVersion != SchemaVersion {
		return empty, false
	}
	if len(raw.Items) == 0 || string(raw.Items) == "null" {
		return empty, false
	}

	var items []Pair
	if err := json.Unmarshal(raw.Items, &items); err != nil {
		return empty, false
	}

	method := enums.ShippingStandard
	if parsed, err := enums.ParseShippingMethod(raw.ShippingMethod); err == nil {
		method = parsed
	}

	snap := Snapshot{SchemaVersion: raw.SchemaVersion, Items: items, ShippingMethod: method}
	return snap.State(), true
}
