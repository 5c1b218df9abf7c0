package test

import (
	"context"
	"errors"
	"strconv"
	"sync"
	"sync/atomic"
	"time"

	"github.com/polkiloo/storefront/internal/domain/model"
)

// ErrInvalidSessionToken is returned by SessionIssuerStub.Parse for foreign tokens.
var ErrInvalidSessionToken = errors.New("invalid session token")

// SessionIssuerStub signs tokens as "signed:<id>".
type SessionIssuerStub struct {
	NextID   string
	IssueErr error
	counter  int32
}

// NewSessionID returns NextID or a numbered id.
func (s *SessionIssuerStub) NewSessionID() string {
	if s.NextID != "" {
		return s.NextID
	}
	n := atomic.AddInt32(&s.counter, 1)
	return "session-" + strconv.Itoa(int(n))
}

// Issue prefixes the id.
func (s *SessionIssuerStub) Issue(sessionID string) (string, error) {
	if s.IssueErr != nil {
		return "", s.IssueErr
	}
	return "signed:" + sessionID, nil
}

// Parse accepts tokens produced by Issue.
func (s *SessionIssuerStub) Parse(token string) (string, error) {
	const prefix = "signed:"
	if len(token) <= len(prefix) || token[:len(prefix)] != prefix {
		return "", ErrInvalidSessionToken
	}
	return token[len(prefix):], nil
}

// TTL is a fixed hour.
func (s *SessionIssuerStub) TTL() time.Duration {
	return time.Hour
}

// WorkerSnapshot is a copy of the outcomes recorded by WorkerFacadeStub.
type WorkerSnapshot struct {
	Sent    []int64
	Retried []FailedCall
	Buried  []DeadCall
}

// WorkerFacadeStub mimics dispatcher interactions with the storefront facade.
type WorkerFacadeStub struct {
	Batches   [][]model.Notification
	DueFn     func(context.Context, int, time.Duration) ([]model.Notification, error)
	DeliverFn func(context.Context, model.Notification) error

	mu        sync.Mutex
	sent      []int64
	retried   []FailedCall
	buried    []DeadCall
	dueCalls  int32
	delivered int32
}

// Lock exposes internal mutex for external synchronization.
func (s *WorkerFacadeStub) Lock() { s.mu.Lock() }

// Unlock releases previously acquired lock.
func (s *WorkerFacadeStub) Unlock() { s.mu.Unlock() }

// DueNotifications returns batches from configured queue.
func (s *WorkerFacadeStub) DueNotifications(ctx context.Context, limit int, lease time.Duration) ([]model.Notification, error) {
	if s.DueFn != nil {
		return s.DueFn(ctx, limit, lease)
	}
	call := atomic.AddInt32(&s.dueCalls, 1)
	if int(call) <= len(s.Batches) {
		return s.Batches[call-1], nil
	}
	time.Sleep(10 * time.Millisecond)
	return nil, nil
}

// DeliverNotification delegates to DeliverFn or succeeds.
func (s *WorkerFacadeStub) DeliverNotification(ctx context.Context, n model.Notification) error {
	atomic.AddInt32(&s.delivered, 1)
	if s.DeliverFn != nil {
		return s.DeliverFn(ctx, n)
	}
	return nil
}

// MarkNotificationSent records the id.
func (s *WorkerFacadeStub) MarkNotificationSent(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sent = append(s.sent, id)
	return nil
}

// RetryNotification records the retry schedule.
func (s *WorkerFacadeStub) RetryNotification(ctx context.Context, id int64, attempts int, next time.Time, lastErr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.retried = append(s.retried, FailedCall{ID: id, Attempts: attempts, NextAttempt: next, LastError: lastErr})
	return nil
}

// BuryNotification records the dead letter.
func (s *WorkerFacadeStub) BuryNotification(ctx context.Context, id int64, attempts int, lastErr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.buried = append(s.buried, DeadCall{ID: id, Attempts: attempts, LastError: lastErr})
	return nil
}

// Delivered is the number of delivery attempts made.
func (s *WorkerFacadeStub) Delivered() int {
	return int(atomic.LoadInt32(&s.delivered))
}

// Snapshot copies recorded outcomes.
func (s *WorkerFacadeStub) Snapshot() WorkerSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return WorkerSnapshot{
		Sent:    append([]int64(nil), s.sent...),
		Retried: append([]FailedCall(nil), s.retried...),
		Buried:  append([]DeadCall(nil), s.buried...),
	}
}

// MailerStub records delivered notifications.
type MailerStub struct {
	Err  error
	mu   sync.Mutex
	Sent []model.Notification
}

// Send stores n unless Err is set.
func (s *MailerStub) Send(ctx context.Context, n model.Notification) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Sent = append(s.Sent, n)
	return nil
}
