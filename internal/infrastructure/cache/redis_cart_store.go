package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jadefire/storefront/internal/domain/cart"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// cartKeyPrefix is the fixed key prefix under which serialized carts are
// stored. The full key is cartKeyPrefix + session ID.
const cartKeyPrefix = "cart:"

// RedisCartStore implements cart.Store on Redis. Carts are serialized as
// JSON and expire after the configured TTL of inactivity.
type RedisCartStore struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// NewRedisCartStore creates a new Redis-backed cart store
func NewRedisCartStore(cfg RedisConfig, ttl time.Duration, logger *zap.Logger) (*RedisCartStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewRedisCartStoreWithClient(client, ttl, logger), nil
}

// NewRedisCartStoreWithClient creates a store with an existing Redis client
func NewRedisCartStoreWithClient(client *redis.Client, ttl time.Duration, logger *zap.Logger) *RedisCartStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &RedisCartStore{
		client: client,
		ttl:    ttl,
		logger: logger,
	}
}

// Load returns the cart stored for the session. A missing key yields an
// empty cart; a corrupt payload is logged and also yields an empty cart so
// broken persisted state never blocks the storefront.
func (s *RedisCartStore) Load(ctx context.Context, sessionID string) (*cart.Cart, error) {
	data, err := s.client.Get(ctx, cartKeyPrefix+sessionID).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return cart.New(), nil
		}
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	c, err := cart.Decode(data)
	if err != nil {
		s.logger.Warn("discarding corrupt cart payload",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		return cart.New(), nil
	}
	return c, nil
}

// Save serializes the cart and stores it under the session key
func (s *RedisCartStore) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	data, err := cart.Encode(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(ctx, cartKeyPrefix+sessionID, data, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// Delete removes the session's cart
func (s *RedisCartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKeyPrefix+sessionID).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

// Close closes the underlying Redis client
func (s *RedisCartStore) Close() error {
	return s.client.Close()
}

// Ensure RedisCartStore implements cart.Store
var _ cart.Store = (*RedisCartStore)(nil)
