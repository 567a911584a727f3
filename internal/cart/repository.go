package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/freshmartapp/freshmart-backend/pkg/kv"
)

const stateKeyName = "cart"

// Repository persists the cart line items as a single value under a
// fixed key.
type Repository interface {
	Save(ctx context.Context, items []LineItem) error
	Load(ctx context.Context) ([]LineItem, error)
}

// KVRepository stores the cart as a JSON document in the key-value
// store, one whole-value write per save.
type KVRepository struct {
	client *kv.Client
}

// NewKVRepository builds the kv-backed cart repository.
func NewKVRepository(client *kv.Client) (*KVRepository, error) {
	if client == nil {
		return nil, errors.New("kv client required")
	}
	return &KVRepository{client: client}, nil
}

// Save serializes the line items under the cart key.
func (r *KVRepository) Save(ctx context.Context, items []LineItem) error {
	if items == nil {
		items = []LineItem{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("marshal cart: %w", err)
	}
	if err := r.client.Set(ctx, r.client.StateKey(stateKeyName), string(data), 0); err != nil {
		return fmt.Errorf("kv set cart: %w", err)
	}
	return nil
}

// Load reads the cart key. An absent key or a value that fails to
// parse yields an empty cart, never an error: corrupt or foreign data
// is treated as no cart at all.
func (r *KVRepository) Load(ctx context.Context) ([]LineItem, error) {
	raw, err := r.client.Get(ctx, r.client.StateKey(stateKeyName))
	if err != nil {
		if errors.Is(err, kv.ErrNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("kv get cart: %w", err)
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return nil, nil
	}
	return items, nil
}
