package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/freshmartapp/freshmart-backend/api/responses"
	"github.com/freshmartapp/freshmart-backend/internal/storefront"
	pkgerrors "github.com/freshmartapp/freshmart-backend/pkg/errors"
	"github.com/freshmartapp/freshmart-backend/pkg/logger"
)

// ModalFetch returns the auth-modal state.
func ModalFetch(flow *storefront.ModalFlow, rend *storefront.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if flow == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "modal flow unavailable"))
			return
		}
		responses.WriteSuccess(w, rend.ModalView(flow.State()))
	}
}

// ModalApply runs one modal transition. Illegal transitions are no-ops
// and still return 200 with the unchanged state; only an unknown action
// is an error.
func ModalApply(flow *storefront.ModalFlow, rend *storefront.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if flow == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "modal flow unavailable"))
			return
		}

		action := storefront.ModalAction(chi.URLParam(r, "action"))
		state, err := flow.Apply(action)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rend.ModalView(state))
	}
}
