package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/freshmartapp/freshmart-backend/api/responses"
	"github.com/freshmartapp/freshmart-backend/api/validators"
	cartsvc "github.com/freshmartapp/freshmart-backend/internal/cart"
	"github.com/freshmartapp/freshmart-backend/internal/catalog"
	"github.com/freshmartapp/freshmart-backend/internal/notices"
	"github.com/freshmartapp/freshmart-backend/internal/storefront"
	pkgerrors "github.com/freshmartapp/freshmart-backend/pkg/errors"
	"github.com/freshmartapp/freshmart-backend/pkg/logger"
)

type addItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type changeQuantityRequest struct {
	Delta int `json:"delta" validate:"required"`
}

// CartFetch returns the rendered cart panel.
func CartFetch(svc cartsvc.Service, rend *storefront.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}
		responses.WriteSuccess(w, rend.CartView(svc.Snapshot(r.Context())))
	}
}

// CartAddItem resolves the product from the catalog and adds it to the
// cart at its current price. An unknown product id leaves the cart
// untouched and surfaces an error notice.
func CartAddItem(svc cartsvc.Service, products *catalog.Service, center *notices.Center, rend *storefront.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		entry, ok := products.Get(payload.ProductID)
		if !ok {
			if center != nil {
				center.Publish(notices.SeverityError, "Product not found")
			}
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeNotFound, "product not found"))
			return
		}

		updated, err := svc.AddItem(r.Context(), cartsvc.AddItemInput{
			ID:        entry.ID,
			Name:      entry.Name,
			UnitPrice: entry.CurrentPrice(),
			ImageRef:  entry.ImageRef,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rend.CartView(updated))
	}
}

// CartChangeQuantity applies a quantity delta to one line item.
func CartChangeQuantity(svc cartsvc.Service, rend *storefront.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		productID := chi.URLParam(r, "productId")
		if productID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		var payload changeQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		updated, err := svc.ChangeQuantity(r.Context(), productID, payload.Delta)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rend.CartView(updated))
	}
}

// CartRemoveItem deletes one line item.
func CartRemoveItem(svc cartsvc.Service, rend *storefront.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		productID := chi.URLParam(r, "productId")
		if productID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeValidation, "product id is required"))
			return
		}

		updated, err := svc.RemoveItem(r.Context(), productID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rend.CartView(updated))
	}
}

// CartClear empties the cart.
func CartClear(svc cartsvc.Service, rend *storefront.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart service unavailable"))
			return
		}

		updated, err := svc.Clear(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rend.CartView(updated))
	}
}
