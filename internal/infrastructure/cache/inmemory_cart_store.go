package cache

import (
	"context"
	"sync"
	"time"

	"github.com/jadefire/storefront/internal/domain/cart"
)

// InMemoryCartStore implements cart.Store in process memory. Intended for
// development and tests where Redis is not available.
type InMemoryCartStore struct {
	mu      sync.RWMutex
	entries map[string]inMemoryCartEntry
	ttl     time.Duration
}

type inMemoryCartEntry struct {
	data      []byte
	expiresAt time.Time
}

// NewInMemoryCartStore creates a new in-memory cart store
func NewInMemoryCartStore(ttl time.Duration) *InMemoryCartStore {
	return &InMemoryCartStore{
		entries: make(map[string]inMemoryCartEntry),
		ttl:     ttl,
	}
}

// Load returns the cart stored for the session, or an empty cart when no
// entry exists or the entry has expired
func (s *InMemoryCartStore) Load(_ context.Context, sessionID string) (*cart.Cart, error) {
	s.mu.RLock()
	entry, ok := s.entries[sessionID]
	s.mu.RUnlock()

	if !ok || time.Now().After(entry.expiresAt) {
		return cart.New(), nil
	}

	c, err := cart.Decode(entry.data)
	if err != nil {
		return cart.New(), nil
	}
	return c, nil
}

// Save serializes the cart and stores it under the session key
func (s *InMemoryCartStore) Save(_ context.Context, sessionID string, c *cart.Cart) error {
	data, err := cart.Encode(c)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[sessionID] = inMemoryCartEntry{
		data:      data,
		expiresAt: time.Now().Add(s.ttl),
	}
	return nil
}

// Delete removes the session's cart
func (s *InMemoryCartStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, sessionID)
	return nil
}

// Ensure InMemoryCartStore implements cart.Store
var _ cart.Store = (*InMemoryCartStore)(nil)
