package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/storefront/internal/domain/model"
)

func (r *contactRepository) Create(ctx context.Context, msg model.ContactMessage, notification *model.Notification) (*model.ContactMessage, error) {
	const query = `INSERT INTO contact_messages (name, email, phone, subject, message)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, is_read, created_at`
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, query, msg.Name, msg.Email, msg.Phone, msg.Subject, msg.Message).
			Scan(&msg.ID, &msg.IsRead, &msg.CreatedAt); err != nil {
			return fmt.Errorf("insert contact message: %w", err)
		}
		if notification != nil {
			if _, err := enqueueNotification(ctx, tx, *notification); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &msg, nil
}
