package cart

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/config"
	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/enums"
)

func testPricing() Pricing {
	return Pricing{
		TaxRate:               decimal.RequireFromString("0.0875"),
		FreeShippingThreshold: decimal.NewFromInt(50),
		Rates: map[enums.ShippingMethod]Rate{
			enums.ShippingStandard:  {Cost: decimal.Zero, EstimatedDays: 7},
			enums.ShippingExpress:   {Cost: decimal.RequireFromString("9.99"), EstimatedDays: 2},
			enums.ShippingOvernight: {Cost: decimal.RequireFromString("19.99"), EstimatedDays: 1},
		},
	}
}

func line(price string, qty int, originalPrice string) LineItem {
	item := LineItem{
		ProductID: "p-" + price,
		Price:     decimal.RequireFromString(price),
		Quantity:  qty,
	}
	if originalPrice != "" {
		orig := decimal.RequireFromString(originalPrice)
		item.OriginalPrice = &orig
	}
	return item
}

func TestComputeSummaryScenario(t *testing.T) {
	t.Parallel()

	items := []LineItem{
		line("10.00", 2, "15.00"),
		line("20.00", 1, ""),
	}

	summary := ComputeSummary(items, enums.ShippingStandard, testPricing())

	assert.Equal(t, 3, summary.ItemCount)
	assert.True(t, summary.Subtotal.Equal(decimal.RequireFromString("40.00")), "subtotal=%s", summary.Subtotal)
	require.NotNil(t, summary.Savings)
	assert.True(t, summary.Savings.Equal(decimal.RequireFromString("10.00")), "savings=%s", summary.Savings)
	assert.True(t, summary.Shipping.IsZero(), "shipping=%s", summary.Shipping)
	assert.True(t, summary.Tax.Equal(decimal.RequireFromString("3.50")), "tax=%s", summary.Tax)
	assert.True(t, summary.Total.Equal(decimal.RequireFromString("43.50")), "total=%s", summary.Total)
}

func TestComputeSummaryTotalsLaw(t *testing.T) {
	t.Parallel()

	carts := [][]LineItem{
		nil,
		{line("0.01", 1, "")},
		{line("9.99", 3, "12.49"), line("0.99", 7, "")},
		{line("19.95", 2, "19.95"), line("104.50", 1, "120.00"), line("3.33", 9, "")},
		{line("49.99", 1, "")},
		{line("50.00", 1, "")},
	}
	methods := []enums.ShippingMethod{enums.ShippingStandard, enums.ShippingExpress, enums.ShippingOvernight}
	pricing := testPricing()

	for _, items := range carts {
		for _, method := range methods {
			summary := ComputeSummary(items, method, pricing)
			sum := summary.Subtotal.Add(summary.Shipping).Add(summary.Tax)
			require.True(t, summary.Total.Equal(sum),
				"total %s != subtotal %s + shipping %s + tax %s",
				summary.Total, summary.Subtotal, summary.Shipping, summary.Tax)
		}
	}
}

func TestComputeSummaryFreeShippingThreshold(t *testing.T) {
	t.Parallel()

	pricing := testPricing()

	atThreshold := ComputeSummary([]LineItem{line("50.00", 1, "")}, enums.ShippingExpress, pricing)
	assert.True(t, atThreshold.Shipping.IsZero(), "subtotal 50.00 must ship free, got %s", atThreshold.Shipping)

	belowThreshold := ComputeSummary([]LineItem{line("49.99", 1, "")}, enums.ShippingExpress, pricing)
	assert.True(t, belowThreshold.Shipping.Equal(decimal.RequireFromString("9.99")),
		"subtotal 49.99 must pay express cost, got %s", belowThreshold.Shipping)
}

func TestComputeSummarySavingsSuppressedWhenZero(t *testing.T) {
	t.Parallel()

	items := []LineItem{
		line("10.00", 2, "10.00"),
		line("25.00", 1, "25.00"),
	}

	summary := ComputeSummary(items, enums.ShippingStandard, testPricing())
	assert.Nil(t, summary.Savings, "zero savings must be absent, not zero")
}

func TestComputeSummaryEmptyCart(t *testing.T) {
	t.Parallel()

	summary := ComputeSummary(nil, enums.ShippingOvernight, testPricing())

	assert.Equal(t, 0, summary.ItemCount)
	assert.True(t, summary.Subtotal.IsZero())
	assert.True(t, summary.Shipping.Equal(decimal.RequireFromString("19.99")),
		"empty cart gets no free-shipping credit, got %s", summary.Shipping)
	assert.True(t, summary.Tax.IsZero())
	assert.True(t, summary.Total.Equal(summary.Shipping))
	assert.Nil(t, summary.Savings)
}

func TestComputeSummaryItemCountMatchesTotalItemsSelector(t *testing.T) {
	t.Parallel()

	store := NewStore(StoreParams{})
	store.AddItem(context.Background(), product("p1", "10.00"), opts("red", ""), 2)
	store.AddItem(context.Background(), product("p2", "20.00"), nil, 3)

	summary := ComputeSummary(store.Items(), store.ShippingMethod(), testPricing())
	assert.Equal(t, store.TotalItems(), summary.ItemCount)
}

func TestPricingFromConfig(t *testing.T) {
	t.Parallel()

	pricing := PricingFromConfig(
		config.PricingConfig{
			TaxRate:               decimal.RequireFromString("0.05"),
			FreeShippingThreshold: decimal.NewFromInt(75),
		},
		config.ShippingConfig{
			StandardCost:  decimal.Zero,
			StandardDays:  7,
			ExpressCost:   decimal.RequireFromString("9.99"),
			ExpressDays:   2,
			OvernightCost: decimal.RequireFromString("19.99"),
			OvernightDays: 1,
		},
	)

	assert.True(t, pricing.TaxRate.Equal(decimal.RequireFromString("0.05")))
	assert.Equal(t, 2, pricing.RateFor(enums.ShippingExpress).EstimatedDays)
	assert.Equal(t, 1, pricing.RateFor(enums.ShippingOvernight).EstimatedDays)
	assert.True(t, pricing.RateFor("unknown").Cost.IsZero())
}
