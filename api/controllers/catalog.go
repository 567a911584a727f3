package controllers

import (
	"net/http"

	"github.com/freshmartapp/freshmart-backend/api/responses"
	"github.com/freshmartapp/freshmart-backend/internal/catalog"
	"github.com/freshmartapp/freshmart-backend/internal/storefront"
	pkgerrors "github.com/freshmartapp/freshmart-backend/pkg/errors"
	"github.com/freshmartapp/freshmart-backend/pkg/logger"
)

// CatalogList returns the full product grid.
func CatalogList(products *catalog.Service, rend *storefront.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if products == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		responses.WriteSuccess(w, rend.CatalogView(products.All()))
	}
}

// OffersList returns the offers grid with discount labels.
func OffersList(products *catalog.Service, rend *storefront.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if products == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}
		responses.WriteSuccess(w, rend.OffersView(products.Offers()))
	}
}

// SearchSuggestions computes suggestions for the query directly; the
// search box mirrors the keystroke stream so the debounced state stays
// in step with what the page last typed.
func SearchSuggestions(products *catalog.Service, box *storefront.SearchBox, rend *storefront.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if products == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog unavailable"))
			return
		}

		query := r.URL.Query().Get("q")
		if box != nil {
			box.SetQuery(query)
		}

		responses.WriteSuccess(w, rend.SuggestionsView(query, products.Search(query)))
	}
}
