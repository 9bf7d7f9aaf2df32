package cartdto

import (
	"github.com/shopspring/decimal"
)

// CartView is the full cart exposed through the API: the line items, the
// active shipping method, and the derived order summary.
type CartView struct {
	Items          []CartItem  `json:"items"`
	TotalItems     int         `json:"total_items"`
	ShippingMethod string      `json:"shipping_method"`
	Summary        SummaryView `json:"summary"`
}

// CartItem is one line as rendered to the storefront.
type CartItem struct {
	Key           string           `json:"key"`
	ProductID     string           `json:"product_id"`
	Name          string           `json:"name"`
	Brand         string           `json:"brand,omitempty"`
	Image         string           `json:"image,omitempty"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Quantity      int              `json:"quantity"`
	Options       *VariantOptions  `json:"options,omitempty"`
	IsNew         bool             `json:"is_new,omitempty"`
}

// VariantOptions mirrors the engine's shade/size/sku selection.
type VariantOptions struct {
	Shade *string `json:"shade,omitempty"`
	Size  *string `json:"size,omitempty"`
	SKU   *string `json:"sku,omitempty"`
}

// SummaryView is the derived order summary.
type SummaryView struct {
	ItemCount int              `json:"item_count"`
	Subtotal  decimal.Decimal  `json:"subtotal"`
	Shipping  decimal.Decimal  `json:"shipping"`
	Tax       decimal.Decimal  `json:"tax"`
	Total     decimal.Decimal  `json:"total"`
	Savings   *decimal.Decimal `json:"savings,omitempty"`
}

// ShippingRate is one selectable shipping method with its cost and estimate.
type ShippingRate struct {
	Method        string          `json:"method"`
	Cost          decimal.Decimal `json:"cost"`
	EstimatedDays int             `json:"estimated_days"`
}
