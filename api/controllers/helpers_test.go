package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	cartsvc "github.com/freshmartapp/freshmart-backend/internal/cart"
	"github.com/freshmartapp/freshmart-backend/internal/catalog"
	"github.com/freshmartapp/freshmart-backend/internal/notices"
	sessionsvc "github.com/freshmartapp/freshmart-backend/internal/session"
	"github.com/freshmartapp/freshmart-backend/internal/storefront"
	"github.com/freshmartapp/freshmart-backend/pkg/config"
)

type memCartRepo struct {
	items []cartsvc.LineItem
}

func (m *memCartRepo) Save(ctx context.Context, items []cartsvc.LineItem) error {
	m.items = append([]cartsvc.LineItem(nil), items...)
	return nil
}

func (m *memCartRepo) Load(ctx context.Context) ([]cartsvc.LineItem, error) {
	return append([]cartsvc.LineItem(nil), m.items...), nil
}

type memSessionRepo struct {
	state sessionsvc.State
}

func (m *memSessionRepo) Save(ctx context.Context, state sessionsvc.State) error {
	m.state = state
	return nil
}

func (m *memSessionRepo) Load(ctx context.Context) (sessionsvc.State, error) {
	return m.state, nil
}

// harness mounts the controllers on a chi router the way routes does,
// without the middleware stack.
type harness struct {
	router   *chi.Mux
	carts    cartsvc.Service
	sessions sessionsvc.Service
	notices  *notices.Center
	modal    *storefront.ModalFlow
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	center := notices.NewCenter(time.Minute, nil)

	products, err := catalog.NewService(catalog.Default(), catalog.Options{
		LabelOverrides: catalog.DefaultLabelOverrides(),
	})
	require.NoError(t, err)

	carts, err := cartsvc.NewService(context.Background(), cartsvc.ServiceParams{
		Repo:    &memCartRepo{},
		Notices: center,
	})
	require.NoError(t, err)

	account, err := sessionsvc.NewDemoAccount(config.DemoAccountConfig{
		Email:       "shopper@freshmart.dev",
		DisplayName: "Demo Shopper",
		Password:    "freshmart123",
	})
	require.NoError(t, err)

	sessions, err := sessionsvc.NewService(context.Background(), sessionsvc.ServiceParams{
		Repo:    &memSessionRepo{},
		Notices: center,
		Account: account,
	})
	require.NoError(t, err)

	rend := storefront.NewRenderer(decimal.RequireFromString("30.00"))
	modal := storefront.NewModalFlow()

	r := chi.NewRouter()
	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/cart", func(r chi.Router) {
			r.Get("/", CartFetch(carts, rend, nil))
			r.Delete("/", CartClear(carts, rend, nil))
			r.Post("/items", CartAddItem(carts, products, center, rend, nil))
			r.Patch("/items/{productId}", CartChangeQuantity(carts, rend, nil))
			r.Delete("/items/{productId}", CartRemoveItem(carts, rend, nil))
		})
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", AuthLogin(sessions, modal, rend, nil))
			r.Post("/register", AuthRegister(sessions, modal, rend, nil))
			r.Post("/logout", AuthLogout(sessions, rend, nil))
		})
		r.Get("/session", SessionFetch(sessions, rend, nil))
		r.Route("/modal", func(r chi.Router) {
			r.Get("/", ModalFetch(modal, rend, nil))
			r.Post("/{action}", ModalApply(modal, rend, nil))
		})
		r.Get("/notices", NoticesList(center, nil))
	})

	return &harness{
		router:   r,
		carts:    carts,
		sessions: sessions,
		notices:  center,
		modal:    modal,
	}
}

func (h *harness) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	rec := httptest.NewRecorder()
	h.router.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope struct {
		Data T `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	return envelope.Data
}

