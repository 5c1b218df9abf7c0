package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/cart"
)

// CartStore keeps one cart per visitor session.
type CartStore interface {
	Load(ctx context.Context, sessionID string) (cart.Cart, error)
	Save(ctx context.Context, sessionID string, c cart.Cart) error
	Delete(ctx context.Context, sessionID string) error
}
