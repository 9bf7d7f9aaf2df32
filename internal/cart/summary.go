package cart

import (
	"github.com/shopspring/decimal"

	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/enums"
)

// minorUnits is the currency's minor-unit precision; all summary amounts are
// rounded to it.
const minorUnits = 2

// Summary is the derived order summary. It is never stored; recompute it
// from the item list whenever the cart or the shipping method changes.
type Summary struct {
	ItemCount int              `json:"itemCount"`
	Subtotal  decimal.Decimal  `json:"subtotal"`
	Shipping  decimal.Decimal  `json:"shipping"`
	Tax       decimal.Decimal  `json:"tax"`
	Total     decimal.Decimal  `json:"total"`
	Savings   *decimal.Decimal `json:"savings,omitempty"`
}

// ComputeSummary derives the order summary from an item list and the active
// shipping method. It is pure: equal inputs always produce equal summaries.
//
// Shipping is waived once the subtotal reaches the free-shipping threshold,
// but an empty cart always pays the method's cost: there is no free-shipping
// credit on a zero subtotal. Tax applies to the subtotal only, never to
// shipping. Savings is reported only when strictly positive.
func ComputeSummary(items []LineItem, method enums.ShippingMethod, pricing Pricing) Summary {
	subtotal := decimal.Zero
	savings := decimal.Zero
	itemCount := 0

	for _, item := range items {
		qty := decimal.NewFromInt(int64(item.Quantity))
		subtotal = subtotal.Add(item.Price.Mul(qty))
		if item.OriginalPrice != nil {
			savings = savings.Add(item.OriginalPrice.Sub(item.Price).Mul(qty))
		}
		itemCount += item.Quantity
	}
	subtotal = subtotal.Round(minorUnits)

	shipping := pricing.RateFor(method).Cost
	if len(items) > 0 && subtotal.GreaterThanOrEqual(pricing.FreeShippingThreshold) {
		shipping = decimal.Zero
	}

	tax := subtotal.Mul(pricing.TaxRate).Round(minorUnits)
	total := subtotal.Add(shipping).Add(tax)

	summary := Summary{
		ItemCount: itemCount,
		Subtotal:  subtotal,
		Shipping:  shipping,
		Tax:       tax,
		Total:     total,
	}
	if savings.IsPositive() {
		rounded := savings.Round(minorUnits)
		summary.Savings = &rounded
	}
	return summary
}
