package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/freshmartapp/freshmart-backend/pkg/kv"
)

const (
	loggedInKeyName = "isLoggedIn"
	userKeyName     = "currentUser"
)

// Repository persists the session flag and current-user record under
// two fixed keys.
type Repository interface {
	Save(ctx context.Context, state State) error
	Load(ctx context.Context) (State, error)
}

// KVRepository stores the session in the key-value store: the flag as
// the literal strings "true"/"false", the user as a JSON document that
// is removed on logout.
type KVRepository struct {
	client *kv.Client
}

// NewKVRepository builds the kv-backed session repository.
func NewKVRepository(client *kv.Client) (*KVRepository, error) {
	if client == nil {
		return nil, errors.New("kv client required")
	}
	return &KVRepository{client: client}, nil
}

func (r *KVRepository) Save(ctx context.Context, state State) error {
	flag := "false"
	if state.IsAuthenticated {
		flag = "true"
	}
	if err := r.client.Set(ctx, r.client.StateKey(loggedInKeyName), flag, 0); err != nil {
		return fmt.Errorf("kv set session flag: %w", err)
	}

	if state.CurrentUser == nil {
		if err := r.client.Del(ctx, r.client.StateKey(userKeyName)); err != nil {
			return fmt.Errorf("kv del current user: %w", err)
		}
		return nil
	}

	data, err := json.Marshal(state.CurrentUser)
	if err != nil {
		return fmt.Errorf("marshal current user: %w", err)
	}
	if err := r.client.Set(ctx, r.client.StateKey(userKeyName), string(data), 0); err != nil {
		return fmt.Errorf("kv set current user: %w", err)
	}
	return nil
}

// Load reads both session keys. Absent or unparsable values yield the
// signed-out state, never an error.
func (r *KVRepository) Load(ctx context.Context) (State, error) {
	flag, err := r.client.Get(ctx, r.client.StateKey(loggedInKeyName))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("kv get session flag: %w", err)
	}
	if flag != "true" {
		return State{}, nil
	}

	raw, err := r.client.Get(ctx, r.client.StateKey(userKeyName))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return State{}, nil
		}
		return State{}, fmt.Errorf("kv get current user: %w", err)
	}

	var user User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return State{}, nil
	}
	return State{IsAuthenticated: true, CurrentUser: &user}, nil
}
