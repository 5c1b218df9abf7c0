package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/go-redis/redis/v8"

	"github.com/polkiloo/storefront/internal/domain/cart"
)

const cartKeyPrefix = "cart:"

// CartStore keeps each session cart as a JSON document that expires with the session.
type CartStore struct {
	rdb *goredis.Client
	ttl time.Duration
}

// NewCartStore builds a store writing keys with the given ttl.
func NewCartStore(client *Client, ttl time.Duration) *CartStore {
	return &CartStore{rdb: client.rdb, ttl: ttl}
}

func cartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}

// Load returns the stored cart or an empty one when the session has none.
func (s *CartStore) Load(ctx context.Context, sessionID string) (cart.Cart, error) {
	raw, err := s.rdb.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, goredis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return cart.Cart{}, fmt.Errorf("load cart: %w", err)
	}

	var c cart.Cart
	if err := json.Unmarshal(raw, &c); err != nil {
		return cart.Cart{}, fmt.Errorf("decode cart: %w", err)
	}
	if c.Items == nil {
		c.Items = map[string]cart.Item{}
	}
	return c, nil
}

// Save writes the cart and refreshes its expiry. An empty cart removes the key.
func (s *CartStore) Save(ctx context.Context, sessionID string, c cart.Cart) error {
	if c.IsEmpty() {
		return s.Delete(ctx, sessionID)
	}
	raw, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := s.rdb.Set(ctx, cartKey(sessionID), raw, s.ttl).Err(); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	return nil
}

// Delete drops the session cart.
func (s *CartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.rdb.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("delete cart: %w", err)
	}
	return nil
}
