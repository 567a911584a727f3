package controllers

import (
	"net/http"

	"github.com/freshmartapp/freshmart-backend/api/responses"
	cartsvc "github.com/freshmartapp/freshmart-backend/internal/cart"
	"github.com/freshmartapp/freshmart-backend/internal/catalog"
	"github.com/freshmartapp/freshmart-backend/internal/notices"
	sessionsvc "github.com/freshmartapp/freshmart-backend/internal/session"
	"github.com/freshmartapp/freshmart-backend/internal/storefront"
	pkgerrors "github.com/freshmartapp/freshmart-backend/pkg/errors"
	"github.com/freshmartapp/freshmart-backend/pkg/logger"
)

// StorefrontPage returns the composed page view: cart, catalog,
// offers, session, modal and active notices in one projection.
func StorefrontPage(
	carts cartsvc.Service,
	products *catalog.Service,
	sessions sessionsvc.Service,
	flow *storefront.ModalFlow,
	center *notices.Center,
	rend *storefront.Renderer,
	logg *logger.Logger,
) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if carts == nil || products == nil || sessions == nil || flow == nil || center == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "storefront unavailable"))
			return
		}

		page := rend.PageView(
			carts.Snapshot(r.Context()),
			products.All(),
			products.Offers(),
			sessions.Current(r.Context()),
			flow.State(),
			center.Active(),
		)
		responses.WriteSuccess(w, page)
	}
}
