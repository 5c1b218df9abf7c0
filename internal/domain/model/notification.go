package model

import "time"

// NotificationKind names the event that produced a notification.
type NotificationKind string

const (
	NotificationOrderPlaced    NotificationKind = "order_placed"
	NotificationContactMessage NotificationKind = "contact_message"
	NotificationLowStock       NotificationKind = "low_stock"
)

// NotificationStatus is the delivery state of an outbox row.
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "PENDING"
	NotificationSent    NotificationStatus = "SENT"
	NotificationDead    NotificationStatus = "DEAD"
)

// Notification is an outbound message queued for delivery.
type Notification struct {
	ID            int64
	Kind          NotificationKind
	Recipient     string
	Subject       string
	Body          string
	Status        NotificationStatus
	Attempts      int
	NextAttemptAt time.Time
	LastError     string
	CreatedAt     time.Time
}
