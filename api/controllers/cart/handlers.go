package cart

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	cartdto "github.com/josongsong/oyg-storefront-tempo-sub000/api/controllers/cart/dto"
	"github.com/josongsong/oyg-storefront-tempo-sub000/api/responses"
	"github.com/josongsong/oyg-storefront-tempo-sub000/api/validators"
	cartsvc "github.com/josongsong/oyg-storefront-tempo-sub000/internal/cart"
	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/enums"
	pkgerrors "github.com/josongsong/oyg-storefront-tempo-sub000/pkg/errors"
	"github.com/josongsong/oyg-storefront-tempo-sub000/pkg/logger"
)

// CartFetch returns the full cart view with its derived summary.
func CartFetch(store *cartsvc.Store, pricing cartsvc.Pricing, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}
		responses.WriteSuccess(w, newCartView(store, pricing))
	}
}

// CartAddItem inserts or merges a product into the cart.
func CartAddItem(store *cartsvc.Store, pricing cartsvc.Pricing, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		var payload cartdto.AddItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.Price.IsNegative() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "price must not be negative"))
			return
		}

		quantity := payload.Quantity
		if quantity == 0 {
			quantity = 1
		}

		item, merged := store.AddItem(r.Context(), toProductRef(payload), toVariantOptions(payload.Options), quantity)

		ctx := r.Context()
		if logg != nil {
			ctx = logg.WithProductID(logg.WithCartKey(ctx, string(item.Key)), item.ProductID)
			logg.Info(ctx, "cart item upserted")
		}

		status := http.StatusCreated
		if merged {
			status = http.StatusOK
		}
		responses.WriteSuccessStatus(w, status, newCartView(store, pricing))
	}
}

// CartUpdateItem patches a line's quantity and/or options. Absent keys are a
// no-op by engine contract, so the handler responds with the unchanged cart
// rather than a 404.
func CartUpdateItem(store *cartsvc.Store, pricing cartsvc.Pricing, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		key := cartsvc.LineItemKey(chi.URLParam(r, "key"))

		var payload cartdto.UpdateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if payload.Quantity == nil && payload.Options == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "nothing to update"))
			return
		}

		if payload.Quantity != nil {
			store.UpdateQuantity(r.Context(), key, *payload.Quantity)
		}
		if payload.Options != nil {
			store.UpdateOptions(r.Context(), key, *toVariantOptions(payload.Options))
		}

		responses.WriteSuccess(w, newCartView(store, pricing))
	}
}

// CartRemoveItem deletes a line; removing an absent key is still a success.
func CartRemoveItem(store *cartsvc.Store, pricing cartsvc.Pricing, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		key := cartsvc.LineItemKey(chi.URLParam(r, "key"))
		store.RemoveItem(r.Context(), key)

		responses.WriteSuccess(w, newCartView(store, pricing))
	}
}

// CartClear empties the cart, e.g. after checkout.
func CartClear(store *cartsvc.Store, pricing cartsvc.Pricing, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		store.Clear(r.Context())
		responses.WriteSuccess(w, newCartView(store, pricing))
	}
}

// CartSetShippingMethod switches the cart-wide shipping method.
func CartSetShippingMethod(store *cartsvc.Store, pricing cartsvc.Pricing, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		var payload cartdto.SetShippingMethodRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		method, err := enums.ParseShippingMethod(payload.Method)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid shipping method"))
			return
		}

		store.SetShippingMethod(r.Context(), method)
		responses.WriteSuccess(w, newCartView(store, pricing))
	}
}

// CartSummary returns only the derived summary.
func CartSummary(store *cartsvc.Store, pricing cartsvc.Pricing, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		summary := cartsvc.ComputeSummary(store.Items(), store.ShippingMethod(), pricing)
		responses.WriteSuccess(w, newSummaryView(summary))
	}
}

// CartShippingRates lists the selectable methods with cost and estimate.
func CartShippingRates(pricing cartsvc.Pricing, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		responses.WriteSuccess(w, newShippingRates(pricing))
	}
}
