package cartdto

import "github.com/shopspring/decimal"

// AddItemRequest carries a catalog product reference into the cart.
type AddItemRequest struct {
	ProductID     string           `json:"product_id" validate:"required"`
	Name          string           `json:"name" validate:"required"`
	Brand         string           `json:"brand"`
	Image         string           `json:"image"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	IsNew         bool             `json:"is_new"`
	Quantity      int              `json:"quantity"`
	Options       *VariantOptions  `json:"options,omitempty"`
}

// UpdateItemRequest changes a line's quantity and/or variant options. The
// engine clamps quantities below 1 rather than rejecting them.
type UpdateItemRequest struct {
	Quantity *int            `json:"quantity,omitempty"`
	Options  *VariantOptions `json:"options,omitempty"`
}

// SetShippingMethodRequest switches the cart-wide shipping method.
type SetShippingMethodRequest struct {
	Method string `json:"method" validate:"required"`
}
