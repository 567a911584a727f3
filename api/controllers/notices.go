package controllers

import (
	"net/http"

	"github.com/freshmartapp/freshmart-backend/api/responses"
	"github.com/freshmartapp/freshmart-backend/internal/notices"
	pkgerrors "github.com/freshmartapp/freshmart-backend/pkg/errors"
	"github.com/freshmartapp/freshmart-backend/pkg/logger"
)

// NoticesList returns the unexpired toasts, oldest first.
func NoticesList(center *notices.Center, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if center == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notice center unavailable"))
			return
		}

		active := center.Active()
		if active == nil {
			active = []notices.Notice{}
		}
		responses.WriteSuccess(w, active)
	}
}
