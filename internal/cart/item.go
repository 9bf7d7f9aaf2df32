package cart

import (
	"github.com/shopspring/decimal"
)

// LineItemKey uniquely identifies one cart row.
type LineItemKey string

// VariantOptions is the shade/size/sku selection attached to a line item.
// A nil field means the option was never chosen, which is distinct from an
// empty string.
type VariantOptions struct {
	Shade *string `json:"shade,omitempty"`
	Size  *string `json:"size,omitempty"`
	SKU   *string `json:"sku,omitempty"`
}

// LineItem is one row in the cart.
type LineItem struct {
	Key           LineItemKey      `json:"key"`
	ProductID     string           `json:"productId"`
	Name          string           `json:"name"`
	Brand         string           `json:"brand"`
	Image         string           `json:"image"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Quantity      int              `json:"quantity"`
	Options       *VariantOptions  `json:"options,omitempty"`
	IsNew         bool             `json:"isNew,omitempty"`
}

// ProductRef is the catalog-side payload handed to AddItem.
type ProductRef struct {
	ProductID     string
	Name          string
	Brand         string
	Image         string
	Price         decimal.Decimal
	OriginalPrice *decimal.Decimal
	IsNew         bool
}

// matchOptions reports whether two option sets refer to the same variant.
// Only shade and size participate; a missing field equals a missing field.
// This predicate is shared by the add-merge test and the Has selector so the
// two can never disagree.
func matchOptions(a, b *VariantOptions) bool {
	return stringPtrEqual(optShade(a), optShade(b)) && stringPtrEqual(optSize(a), optSize(b))
}

func optShade(o *VariantOptions) *string {
	if o == nil {
		return nil
	}
	return o.Shade
}

func optSize(o *VariantOptions) *string {
	if o == nil {
		return nil
	}
	return o.Size
}

func stringPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

func cloneOptions(o *VariantOptions) *VariantOptions {
	if o == nil {
		return nil
	}
	out := VariantOptions{}
	if o.Shade != nil {
		v := *o.Shade
		out.Shade = &v
	}
	if o.Size != nil {
		v := *o.Size
		out.Size = &v
	}
	if o.SKU != nil {
		v := *o.SKU
		out.SKU = &v
	}
	return &out
}

func cloneItem(item LineItem) LineItem {
	item.Options = cloneOptions(item.Options)
	if item.OriginalPrice != nil {
		v := *item.OriginalPrice
		item.OriginalPrice = &v
	}
	return item
}
