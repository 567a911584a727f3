package cart

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/freshmartapp/freshmart-backend/internal/notices"
	pkgerrors "github.com/freshmartapp/freshmart-backend/pkg/errors"
)

type stubRepo struct {
	saved   [][]LineItem
	initial []LineItem
	saveErr error
	loadErr error
}

func (s *stubRepo) Save(ctx context.Context, items []LineItem) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	snapshot := make([]LineItem, len(items))
	copy(snapshot, items)
	s.saved = append(s.saved, snapshot)
	return nil
}

func (s *stubRepo) Load(ctx context.Context) ([]LineItem, error) {
	return s.initial, s.loadErr
}

func newTestService(t *testing.T, repo *stubRepo) (Service, *notices.Center) {
	t.Helper()
	center := notices.NewCenter(time.Minute, nil)
	svc, err := NewService(context.Background(), ServiceParams{Repo: repo, Notices: center})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return svc, center
}

func addMilk(t *testing.T, svc Service) Cart {
	t.Helper()
	c, err := svc.AddItem(context.Background(), AddItemInput{
		ID:        "milk-1l",
		Name:      "Fresh Milk 1L",
		UnitPrice: decimal.RequireFromString("49.50"),
		ImageRef:  "images/milk.jpg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

func TestNewServiceRequiresDeps(t *testing.T) {
	t.Parallel()

	if _, err := NewService(context.Background(), ServiceParams{Notices: notices.NewCenter(time.Second, nil)}); err == nil {
		t.Fatal("expected error without repository")
	}
	if _, err := NewService(context.Background(), ServiceParams{Repo: &stubRepo{}}); err == nil {
		t.Fatal("expected error without notice center")
	}
}

func TestNewServiceRestoresPersistedCart(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{initial: []LineItem{
		{ID: "eggs-12", Name: "Farm Eggs (12)", UnitPrice: decimal.RequireFromString("89.00"), Quantity: 3},
	}}
	svc, _ := newTestService(t, repo)

	snap := svc.Snapshot(context.Background())
	if snap.ItemCount() != 3 {
		t.Fatalf("expected restored quantity 3, got %d", snap.ItemCount())
	}
}

func TestAddItemPersistsAndNotifies(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{}
	svc, center := newTestService(t, repo)

	c := addMilk(t, svc)
	if len(c.Items) != 1 || c.Items[0].Quantity != 1 {
		t.Fatalf("unexpected cart: %+v", c.Items)
	}
	if len(repo.saved) != 1 {
		t.Fatalf("expected one save, got %d", len(repo.saved))
	}

	active := center.Active()
	if len(active) != 1 || active[0].Severity != notices.SeveritySuccess {
		t.Fatalf("expected a success notice, got %+v", active)
	}
}

func TestAddItemValidation(t *testing.T) {
	t.Parallel()

	svc, center := newTestService(t, &stubRepo{})
	ctx := context.Background()

	cases := []struct {
		name  string
		input AddItemInput
	}{
		{"empty id", AddItemInput{Name: "Milk", UnitPrice: decimal.NewFromInt(10)}},
		{"empty name", AddItemInput{ID: "milk-1l", UnitPrice: decimal.NewFromInt(10)}},
		{"negative price", AddItemInput{ID: "milk-1l", Name: "Milk", UnitPrice: decimal.NewFromInt(-1)}},
	}

	for _, tc := range cases {
		_, err := svc.AddItem(ctx, tc.input)
		if err == nil {
			t.Fatalf("%s: expected validation error", tc.name)
		}
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
			t.Fatalf("%s: unexpected error %v", tc.name, err)
		}
	}

	if !svc.Snapshot(ctx).IsEmpty() {
		t.Fatal("rejected adds must not mutate the cart")
	}
	if len(center.Active()) != 0 {
		t.Fatal("rejected adds must not publish success notices")
	}
}

func TestChangeQuantityRemovesAtZero(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t, &stubRepo{})
	ctx := context.Background()

	addMilk(t, svc)
	addMilk(t, svc)

	c, err := svc.ChangeQuantity(ctx, "milk-1l", -2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsEmpty() {
		t.Fatalf("expected empty cart, got %+v", c.Items)
	}
}

func TestChangeQuantityUnknownIDDoesNotPersist(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{}
	svc, _ := newTestService(t, repo)
	ctx := context.Background()

	addMilk(t, svc)
	saves := len(repo.saved)

	c, err := svc.ChangeQuantity(ctx, "nope", 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.ItemCount() != 1 {
		t.Fatalf("unexpected cart: %+v", c.Items)
	}
	if len(repo.saved) != saves {
		t.Fatal("no-op must not persist")
	}
}

func TestRemoveAbsentItemStillNotifies(t *testing.T) {
	t.Parallel()

	svc, center := newTestService(t, &stubRepo{})
	ctx := context.Background()

	c, err := svc.RemoveItem(ctx, "never-added")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsEmpty() {
		t.Fatalf("unexpected cart: %+v", c.Items)
	}

	// The storefront has always toasted "removed" here even when
	// nothing was removed; pinned so a change is deliberate.
	active := center.Active()
	if len(active) != 1 || active[0].Severity != notices.SeverityInfo {
		t.Fatalf("expected the removal notice, got %+v", active)
	}
}

func TestClearEmptiesCart(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{}
	svc, _ := newTestService(t, repo)
	ctx := context.Background()

	addMilk(t, svc)
	c, err := svc.Clear(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !c.IsEmpty() {
		t.Fatalf("expected empty cart, got %+v", c.Items)
	}

	last := repo.saved[len(repo.saved)-1]
	if len(last) != 0 {
		t.Fatalf("expected empty cart persisted, got %+v", last)
	}
}

func TestPersistFailureRollsBack(t *testing.T) {
	t.Parallel()

	repo := &stubRepo{}
	svc, _ := newTestService(t, repo)
	ctx := context.Background()

	addMilk(t, svc)
	repo.saveErr = errors.New("redis down")

	_, err := svc.AddItem(ctx, AddItemInput{
		ID:        "bread-400g",
		Name:      "Whole Wheat Bread",
		UnitPrice: decimal.RequireFromString("35.00"),
	})
	if err == nil {
		t.Fatal("expected dependency error")
	}
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("unexpected error: %v", err)
	}

	snap := svc.Snapshot(ctx)
	if len(snap.Items) != 1 || snap.Items[0].ID != "milk-1l" {
		t.Fatalf("state must match last persisted cart, got %+v", snap.Items)
	}
}
