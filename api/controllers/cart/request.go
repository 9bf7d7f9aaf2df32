package cart

import (
	cartdto "github.com/josongsong/oyg-storefront-tempo-sub000/api/controllers/cart/dto"
	cartsvc "github.com/josongsong/oyg-storefront-tempo-sub000/internal/cart"
)

func toProductRef(payload cartdto.AddItemRequest) cartsvc.ProductRef {
	return cartsvc.ProductRef{
		ProductID:     payload.ProductID,
		Name:          payload.Name,
		Brand:         payload.Brand,
		Image:         payload.Image,
		Price:         payload.Price,
		OriginalPrice: payload.OriginalPrice,
		IsNew:         payload.IsNew,
	}
}

func toVariantOptions(payload *cartdto.VariantOptions) *cartsvc.VariantOptions {
	if payload == nil {
		return nil
	}
	return &cartsvc.VariantOptions{
		Shade: payload.Shade,
		Size:  payload.Size,
		SKU:   payload.SKU,
	}
}
