package repository

import (
	"context"
	"time"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// NotificationRepository is the outbox of pending outbound messages.
type NotificationRepository interface {
	Enqueue(ctx context.Context, n model.Notification) (*model.Notification, error)
	// ClaimDue locks up to limit due rows and pushes their next attempt past
	// lease so concurrent dispatchers skip them.
	ClaimDue(ctx context.Context, limit int, lease time.Duration) ([]model.Notification, error)
	MarkSent(ctx context.Context, id int64) error
	MarkFailed(ctx context.Context, id int64, attempts int, nextAttempt time.Time, lastErr string) error
	MarkDead(ctx context.Context, id int64, attempts int, lastErr string) error
}
