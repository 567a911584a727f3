package session

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/freshmartapp/freshmart-backend/internal/notices"
	"github.com/freshmartapp/freshmart-backend/pkg/config"
	pkgerrors "github.com/freshmartapp/freshmart-backend/pkg/errors"
	"github.com/freshmartapp/freshmart-backend/pkg/metrics"
)

// Service owns the session state and the login/register/logout
// operations.
type Service interface {
	Login(ctx context.Context, email, password string) (State, error)
	Register(ctx context.Context, input RegisterInput) (State, error)
	Logout(ctx context.Context) (State, error)
	Current(ctx context.Context) State
}

// RegisterInput is a registration submission that already passed field
// validation. There is no uniqueness check: any well-formed submission
// establishes a session.
type RegisterInput struct {
	Name  string
	Email string
	Phone string
}

// DemoAccount is the single storefront login, with its password kept
// only as a bcrypt hash.
type DemoAccount struct {
	Email        string
	DisplayName  string
	PasswordHash []byte
}

// NewDemoAccount hashes the configured demo password.
func NewDemoAccount(cfg config.DemoAccountConfig) (DemoAccount, error) {
	email := strings.TrimSpace(strings.ToLower(cfg.Email))
	if email == "" {
		return DemoAccount{}, fmt.Errorf("demo account email required")
	}
	if cfg.Password == "" {
		return DemoAccount{}, fmt.Errorf("demo account password required")
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(cfg.Password), bcrypt.DefaultCost)
	if err != nil {
		return DemoAccount{}, fmt.Errorf("hashing demo password: %w", err)
	}
	return DemoAccount{
		Email:        email,
		DisplayName:  cfg.DisplayName,
		PasswordHash: hash,
	}, nil
}

// ServiceParams wires the session service dependencies.
type ServiceParams struct {
	Repo    Repository
	Notices *notices.Center
	Metrics *metrics.StorefrontMetrics
	Account DemoAccount
}

type service struct {
	mu      sync.Mutex
	current State

	repo    Repository
	notices *notices.Center
	metrics *metrics.StorefrontMetrics
	account DemoAccount
}

// NewService builds the session service and restores the persisted
// session.
func NewService(ctx context.Context, params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("session repository required")
	}
	if params.Notices == nil {
		return nil, fmt.Errorf("notice center required")
	}
	if len(params.Account.PasswordHash) == 0 {
		return nil, fmt.Errorf("demo account required")
	}

	state, err := params.Repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}

	return &service{
		current: state,
		repo:    params.Repo,
		notices: params.Notices,
		metrics: params.Metrics,
		account: params.Account,
	}, nil
}

// Login checks the submitted credentials against the demo account and
// establishes a session on success.
func (s *service) Login(ctx context.Context, email, password string) (State, error) {
	cleaned := strings.TrimSpace(strings.ToLower(email))

	match := cleaned == s.account.Email &&
		bcrypt.CompareHashAndPassword(s.account.PasswordHash, []byte(password)) == nil
	if !match {
		s.metrics.IncAuth("login", "failure")
		s.notices.Publish(notices.SeverityError, "Invalid email or password")
		return State{}, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid email or password")
	}

	next := State{
		IsAuthenticated: true,
		CurrentUser:     &User{Email: cleaned, DisplayName: s.account.DisplayName},
	}
	if err := s.commit(ctx, next); err != nil {
		return State{}, err
	}

	s.metrics.IncAuth("login", "success")
	s.notices.Publish(notices.SeveritySuccess, fmt.Sprintf("Welcome back, %s!", s.account.DisplayName))
	return next.clone(), nil
}

// Register establishes a session for the submitted shopper. Field
// validation happens at the API boundary; there is no account store
// behind this.
func (s *service) Register(ctx context.Context, input RegisterInput) (State, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(strings.ToLower(input.Email))
	if name == "" || email == "" {
		return State{}, pkgerrors.New(pkgerrors.CodeValidation, "name and email are required")
	}

	next := State{
		IsAuthenticated: true,
		CurrentUser:     &User{Email: email, DisplayName: name},
	}
	if err := s.commit(ctx, next); err != nil {
		return State{}, err
	}

	s.metrics.IncAuth("register", "success")
	s.notices.Publish(notices.SeveritySuccess, fmt.Sprintf("Welcome to FreshMart, %s!", name))
	return next.clone(), nil
}

// Logout clears the session.
func (s *service) Logout(ctx context.Context) (State, error) {
	next := State{}
	if err := s.commit(ctx, next); err != nil {
		return State{}, err
	}

	s.metrics.IncAuth("logout", "success")
	s.notices.Publish(notices.SeverityInfo, "You have been logged out")
	return next, nil
}

// Current returns the session state.
func (s *service) Current(ctx context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current.clone()
}

func (s *service) commit(ctx context.Context, next State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.Save(ctx, next); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "persist session")
	}
	s.current = next
	return nil
}
