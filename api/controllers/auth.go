package controllers

import (
	"net/http"

	"github.com/freshmartapp/freshmart-backend/api/responses"
	"github.com/freshmartapp/freshmart-backend/api/validators"
	sessionsvc "github.com/freshmartapp/freshmart-backend/internal/session"
	"github.com/freshmartapp/freshmart-backend/internal/storefront"
	pkgerrors "github.com/freshmartapp/freshmart-backend/pkg/errors"
	"github.com/freshmartapp/freshmart-backend/pkg/logger"
)

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type registerRequest struct {
	Name            string `json:"name" validate:"required,min=3"`
	Email           string `json:"email" validate:"required,email"`
	Phone           string `json:"phone" validate:"required,phone10"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	AcceptTerms     bool   `json:"accept_terms" validate:"eq=true"`
}

// AuthLogin checks the demo credentials and establishes the session. A
// failed attempt echoes the submitted email back into the open login
// pane; a success dismisses the modal.
func AuthLogin(svc sessionsvc.Service, flow *storefront.ModalFlow, rend *storefront.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		var payload loginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := svc.Login(r.Context(), payload.Email, payload.Password)
		if err != nil {
			if flow != nil {
				flow.RecordLoginDraft(storefront.LoginDraft{Email: payload.Email})
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if flow != nil {
			flow.Close()
		}
		responses.WriteSuccess(w, rend.SessionView(state))
	}
}

// AuthRegister validates the submission and establishes a session; the
// storefront keeps no account store behind it.
func AuthRegister(svc sessionsvc.Service, flow *storefront.ModalFlow, rend *storefront.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		var payload registerRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			if flow != nil {
				flow.RecordRegisterDraft(storefront.RegisterDraft{
					Name:  payload.Name,
					Email: payload.Email,
					Phone: payload.Phone,
				})
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state, err := svc.Register(r.Context(), sessionsvc.RegisterInput{
			Name:  payload.Name,
			Email: payload.Email,
			Phone: payload.Phone,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if flow != nil {
			flow.Close()
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, rend.SessionView(state))
	}
}

// AuthLogout clears the session.
func AuthLogout(svc sessionsvc.Service, rend *storefront.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}

		state, err := svc.Logout(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, rend.SessionView(state))
	}
}

// SessionFetch returns the current session state.
func SessionFetch(svc sessionsvc.Service, rend *storefront.Renderer, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session service unavailable"))
			return
		}
		responses.WriteSuccess(w, rend.SessionView(svc.Current(r.Context())))
	}
}
