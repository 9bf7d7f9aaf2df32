package cart

import (
	"github.com/shopspring/decimal"

	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/config"
	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/enums"
)

// Rate is the cost and delivery estimate for one shipping method.
type Rate struct {
	Cost          decimal.Decimal `json:"cost"`
	EstimatedDays int             `json:"estimatedDays"`
}

// Pricing bundles the constants the summary calculator needs: the flat tax
// rate, the free-shipping threshold, and the per-method rate table.
type Pricing struct {
	TaxRate               decimal.Decimal
	FreeShippingThreshold decimal.Decimal
	Rates                 map[enums.ShippingMethod]Rate
}

// PricingFromConfig maps the env-driven configuration into a Pricing table.
func PricingFromConfig(pricing config.PricingConfig, shipping config.ShippingConfig) Pricing {
	return Pricing{
		TaxRate:               pricing.TaxRate,
		FreeShippingThreshold: pricing.FreeShippingThreshold,
		Rates: map[enums.ShippingMethod]Rate{
			enums.ShippingStandard:  {Cost: shipping.StandardCost, EstimatedDays: shipping.StandardDays},
			enums.ShippingExpress:   {Cost: shipping.ExpressCost, EstimatedDays: shipping.ExpressDays},
			enums.ShippingOvernight: {Cost: shipping.OvernightCost, EstimatedDays: shipping.OvernightDays},
		},
	}
}

// RateFor returns the rate table entry for a method, zero-valued when the
// method is unknown.
func (p Pricing) RateFor(method enums.ShippingMethod) Rate {
	return p.Rates[method]
}
