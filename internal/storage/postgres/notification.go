package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/polkiloo/storefront/internal/domain/model"
)

const notificationColumns = `id, kind, recipient, subject, body, status, attempts, next_attempt_at, last_error, created_at`

func enqueueNotification(ctx context.Context, q querier, n model.Notification) (*model.Notification, error) {
	const query = `INSERT INTO notifications (kind, recipient, subject, body, status)
                   VALUES ($1, $2, $3, $4, $5)
                   RETURNING id, attempts, next_attempt_at, created_at`
	n.Status = model.NotificationPending
	if err := q.QueryRow(ctx, query, n.Kind, n.Recipient, n.Subject, n.Body, n.Status).
		Scan(&n.ID, &n.Attempts, &n.NextAttemptAt, &n.CreatedAt); err != nil {
		return nil, fmt.Errorf("enqueue notification: %w", err)
	}
	return &n, nil
}

func (r *notificationRepository) Enqueue(ctx context.Context, n model.Notification) (*model.Notification, error) {
	return enqueueNotification(ctx, r.storage.pool, n)
}

func (r *notificationRepository) ClaimDue(ctx context.Context, limit int, lease time.Duration) ([]model.Notification, error) {
	const selectQuery = `SELECT ` + notificationColumns + `
                         FROM notifications
                         WHERE status='PENDING' AND next_attempt_at <= NOW()
                         ORDER BY next_attempt_at
                         LIMIT $1
                         FOR UPDATE SKIP LOCKED`

	var claimed []model.Notification
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		rows, err := tx.Query(ctx, selectQuery, limit)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var n model.Notification
			if err := rows.Scan(&n.ID, &n.Kind, &n.Recipient, &n.Subject, &n.Body, &n.Status, &n.Attempts,
				&n.NextAttemptAt, &n.LastError, &n.CreatedAt); err != nil {
				return err
			}
			claimed = append(claimed, n)
		}
		if err := rows.Err(); err != nil {
			return err
		}
		rows.Close()

		if len(claimed) == 0 {
			return nil
		}
		ids := make([]int64, len(claimed))
		for i, n := range claimed {
			ids[i] = n.ID
		}
		leaseUntil := time.Now().Add(lease)
		if _, err := tx.Exec(ctx, `UPDATE notifications SET next_attempt_at=$1 WHERE id = ANY($2)`, leaseUntil, ids); err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return claimed, nil
}

func (r *notificationRepository) MarkSent(ctx context.Context, id int64) error {
	const query = `UPDATE notifications SET status='SENT', attempts=attempts+1, last_error='' WHERE id=$1`
	_, err := r.storage.pool.Exec(ctx, query, id)
	return err
}

func (r *notificationRepository) MarkFailed(ctx context.Context, id int64, attempts int, nextAttempt time.Time, lastErr string) error {
	const query = `UPDATE notifications SET attempts=$2, next_attempt_at=$3, last_error=$4 WHERE id=$1`
	_, err := r.storage.pool.Exec(ctx, query, id, attempts, nextAttempt, lastErr)
	return err
}

func (r *notificationRepository) MarkDead(ctx context.Context, id int64, attempts int, lastErr string) error {
	const query = `UPDATE notifications SET status='DEAD', attempts=$2, last_error=$3 WHERE id=$1`
	_, err := r.storage.pool.Exec(ctx, query, id, attempts, lastErr)
	return err
}
