package cart

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/freshmartapp/freshmart-backend/internal/notices"
	pkgerrors "github.com/freshmartapp/freshmart-backend/pkg/errors"
	"github.com/freshmartapp/freshmart-backend/pkg/metrics"
	"github.com/shopspring/decimal"
)

// Service exposes the cart operations. Every mutation is persisted
// before it becomes visible; callers always observe a cart that
// matches the stored one.
type Service interface {
	AddItem(ctx context.Context, input AddItemInput) (Cart, error)
	ChangeQuantity(ctx context.Context, id string, delta int) (Cart, error)
	RemoveItem(ctx context.Context, id string) (Cart, error)
	Clear(ctx context.Context) (Cart, error)
	Snapshot(ctx context.Context) Cart
}

// AddItemInput carries the product data resolved for an add-to-cart
// action.
type AddItemInput struct {
	ID        string
	Name      string
	UnitPrice decimal.Decimal
	ImageRef  string
}

// ServiceParams wires the cart service dependencies.
type ServiceParams struct {
	Repo    Repository
	Notices *notices.Center
	Metrics *metrics.StorefrontMetrics
}

type service struct {
	mu      sync.Mutex
	current Cart

	repo    Repository
	notices *notices.Center
	metrics *metrics.StorefrontMetrics
}

// NewService builds the cart service and restores the persisted cart.
func NewService(ctx context.Context, params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	if params.Notices == nil {
		return nil, fmt.Errorf("notice center required")
	}

	items, err := params.Repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore cart: %w", err)
	}

	return &service{
		current: Cart{Items: items},
		repo:    params.Repo,
		notices: params.Notices,
		metrics: params.Metrics,
	}, nil
}

// AddItem appends a line item or bumps the existing quantity by one.
func (s *service) AddItem(ctx context.Context, input AddItemInput) (Cart, error) {
	if err := validateAddItem(input); err != nil {
		return Cart{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Add(LineItem{
		ID:        strings.TrimSpace(input.ID),
		Name:      strings.TrimSpace(input.Name),
		UnitPrice: input.UnitPrice,
		ImageRef:  input.ImageRef,
	})
	if err := s.persist(ctx, next); err != nil {
		return Cart{}, err
	}

	s.current = next
	s.metrics.IncCartOp("add")
	s.notices.Publish(notices.SeveritySuccess, fmt.Sprintf("%s added to cart", strings.TrimSpace(input.Name)))
	return next, nil
}

// ChangeQuantity adjusts the quantity of an existing item by delta. An
// unknown id is a no-op. Dropping to zero or below removes the item.
func (s *service) ChangeQuantity(ctx context.Context, id string, delta int) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item, ok := s.current.Find(id)
	if !ok {
		return s.current, nil
	}

	next := s.current.ChangeQuantity(id, delta)
	if err := s.persist(ctx, next); err != nil {
		return Cart{}, err
	}

	s.current = next
	s.metrics.IncCartOp("change_quantity")
	if _, stillThere := next.Find(id); !stillThere {
		s.notices.Publish(notices.SeverityInfo, fmt.Sprintf("%s removed from cart", item.Name))
	}
	return next, nil
}

// RemoveItem deletes the matching item. A missing id leaves the cart
// unchanged but still publishes the removal notice, matching the
// storefront's long-standing behavior.
func (s *service) RemoveItem(ctx context.Context, id string) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Remove(id)
	if err := s.persist(ctx, next); err != nil {
		return Cart{}, err
	}

	s.current = next
	s.metrics.IncCartOp("remove")
	s.notices.Publish(notices.SeverityInfo, "Item removed from cart")
	return next, nil
}

// Clear empties the cart unconditionally.
func (s *service) Clear(ctx context.Context) (Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Clear()
	if err := s.persist(ctx, next); err != nil {
		return Cart{}, err
	}

	s.current = next
	s.metrics.IncCartOp("clear")
	s.notices.Publish(notices.SeverityInfo, "Cart cleared")
	return next, nil
}

// Snapshot returns the current cart.
func (s *service) Snapshot(ctx context.Context) Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.clone()
}

func (s *service) persist(ctx context.Context, next Cart) error {
	if err := s.repo.Save(ctx, next.Items); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist cart")
	}
	return nil
}

func validateAddItem(input AddItemInput) error {
	if strings.TrimSpace(input.ID) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if strings.TrimSpace(input.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if input.UnitPrice.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "unit price must be non-negative")
	}
	return nil
}
