package cart

import (
	cartdto "github.com/josongsong/oyg-storefront-tempo-sub000/api/controllers/cart/dto"
	cartsvc "github.com/josongsong/oyg-storefront-tempo-sub000/internal/cart"
	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/enums"
)

func newCartView(store *cartsvc.Store, pricing cartsvc.Pricing) cartdto.CartView {
	items := store.Items()
	method := store.ShippingMethod()
	return cartdto.CartView{
		Items:          newCartItems(items),
		TotalItems:     store.TotalItems(),
		ShippingMethod: method.String(),
		Summary:        newSummaryView(cartsvc.ComputeSummary(items, method, pricing)),
	}
}

func newCartItems(items []cartsvc.LineItem) []cartdto.CartItem {
	out := make([]cartdto.CartItem, 0, len(items))
	for _, item := range items {
		out = append(out, cartdto.CartItem{
			Key:           string(item.Key),
			ProductID:     item.ProductID,
			Name:          item.Name,
			Brand:         item.Brand,
			Image:         item.Image,
			Price:         item.Price,
			OriginalPrice: item.OriginalPrice,
			Quantity:      item.Quantity,
			Options:       newVariantOptions(item.Options),
			IsNew:         item.IsNew,
		})
	}
	return out
}

func newVariantOptions(opts *cartsvc.VariantOptions) *cartdto.VariantOptions {
	if opts == nil {
		return nil
	}
	return &cartdto.VariantOptions{
		Shade: opts.Shade,
		Size:  opts.Size,
		SKU:   opts.SKU,
	}
}

func newSummaryView(summary cartsvc.Summary) cartdto.SummaryView {
	return cartdto.SummaryView{
		ItemCount: summary.ItemCount,
		Subtotal:  summary.Subtotal,
		Shipping:  summary.Shipping,
		Tax:       summary.Tax,
		Total:     summary.Total,
		Savings:   summary.Savings,
	}
}

func newShippingRates(pricing cartsvc.Pricing) []cartdto.ShippingRate {
	methods := []enums.ShippingMethod{
		enums.ShippingStandard,
		enums.ShippingExpress,
		enums.ShippingOvernight,
	}
	out := make([]cartdto.ShippingRate, 0, len(methods))
	for _, method := range methods {
		rate := pricing.RateFor(method)
		out = append(out, cartdto.ShippingRate{
			Method:        method.String(),
			Cost:          rate.Cost,
			EstimatedDays: rate.EstimatedDays,
		})
	}
	return out
}
