package cart

import (
	"context"
	"encoding/json"
)

// Store persists carts keyed by session ID. Implementations must degrade
// gracefully: a corrupt stored payload yields an empty cart, never an error,
// so broken persisted state can never block the storefront.
type Store interface {
	Load(ctx context.Context, sessionID string) (*Cart, error)
	Save(ctx context.Context, sessionID string, cart *Cart) error
	Delete(ctx context.Context, sessionID string) error
}

// Encode serializes a cart for storage
func Encode(c *Cart) ([]byte, error) {
	return json.Marshal(c)
}

// Decode deserializes a stored cart payload. Callers treat a decode error as
// a corrupt payload and fall back to an empty cart.
func Decode(data []byte) (*Cart, error) {
	var c Cart
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	if c.Lines == nil {
		c.Lines = make([]Line, 0)
	}
	return &c, nil
}
