package repository

import (
	"context"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// ContactRepository stores contact form submissions.
type ContactRepository interface {
	Create(ctx context.Context, msg model.ContactMessage, notification *model.Notification) (*model.ContactMessage, error)
}
