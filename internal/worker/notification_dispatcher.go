package worker

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/polkiloo/storefront/internal/adapter/mailer"
	"github.com/polkiloo/storefront/internal/domain/model"
)

// OutboxFacade exposes the subset of application functionality required by the dispatcher.
type OutboxFacade interface {
	DueNotifications(ctx context.Context, limit int, lease time.Duration) ([]model.Notification, error)
	DeliverNotification(ctx context.Context, n model.Notification) error
	MarkNotificationSent(ctx context.Context, id int64) error
	RetryNotification(ctx context.Context, id int64, attempts int, next time.Time, lastErr string) error
	BuryNotification(ctx context.Context, id int64, attempts int, lastErr string) error
}

const (
	defaultBaseBackoff = 30 * time.Second
	defaultMaxBackoff  = time.Hour
	defaultLease       = 2 * time.Minute
)

// Options tunes the dispatcher. Zero values fall back to defaults.
type Options struct {
	PollInterval time.Duration
	BatchSize    int
	Workers      int
	MaxAttempts  int
	BaseBackoff  time.Duration
	MaxBackoff   time.Duration
	Lease        time.Duration
}

// NotificationDispatcher drains the outbox and delivers notifications concurrently.
type NotificationDispatcher struct {
	facade OutboxFacade
	opts   Options
	logger *slog.Logger
	now    func() time.Time

	jobs   chan model.Notification
	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewNotificationDispatcher constructs the dispatcher worker pool.
func NewNotificationDispatcher(facade OutboxFacade, opts Options, logger *slog.Logger) *NotificationDispatcher {
	if opts.PollInterval <= 0 {
		opts.PollInterval = time.Second
	}
	if opts.Workers <= 0 {
		opts.Workers = 1
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 1
	}
	if opts.MaxAttempts <= 0 {
		opts.MaxAttempts = 1
	}
	if opts.BaseBackoff <= 0 {
		opts.BaseBackoff = defaultBaseBackoff
	}
	if opts.MaxBackoff < opts.BaseBackoff {
		opts.MaxBackoff = defaultMaxBackoff
	}
	if opts.Lease <= 0 {
		opts.Lease = defaultLease
	}
	return &NotificationDispatcher{
		facade: facade,
		opts:   opts,
		logger: logger,
		now:    time.Now,
		jobs:   make(chan model.Notification, opts.BatchSize*opts.Workers),
	}
}

// Start launches background delivery.
func (d *NotificationDispatcher) Start(ctx context.Context) {
	d.mu.Lock()
	defer d.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	d.cancel = cancel

	for i := 0; i < d.opts.Workers; i++ {
		d.wg.Add(1)
		go d.worker(runCtx)
	}

	d.wg.Add(1)
	go d.dispatch(runCtx)
}

// Stop waits for all workers to finish.
func (d *NotificationDispatcher) Stop() {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
		d.cancel = nil
	}
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *NotificationDispatcher) dispatch(ctx context.Context) {
	defer d.wg.Done()
	defer close(d.jobs)
	ticker := time.NewTicker(d.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			d.fetchAndDispatch(ctx)
		}
	}
}

func (d *NotificationDispatcher) fetchAndDispatch(ctx context.Context) {
	batch, err := d.facade.DueNotifications(ctx, d.opts.BatchSize, d.opts.Lease)
	if err != nil {
		d.logger.Error("claim notifications failed", slog.String("error", err.Error()))
		return
	}
	for _, n := range batch {
		select {
		case <-ctx.Done():
			return
		case d.jobs <- n:
		}
	}
}

func (d *NotificationDispatcher) worker(ctx context.Context) {
	defer d.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case n, ok := <-d.jobs:
			if !ok {
				return
			}
			d.deliver(ctx, n)
		}
	}
}

// backoff doubles the delay for every failed attempt up to MaxBackoff.
func (d *NotificationDispatcher) backoff(attempts int) time.Duration {
	delay := d.opts.BaseBackoff
	for i := 1; i < attempts; i++ {
		delay *= 2
		if delay >= d.opts.MaxBackoff {
			return d.opts.MaxBackoff
		}
	}
	return delay
}

func (d *NotificationDispatcher) deliver(ctx context.Context, n model.Notification) {
	log := d.logger.With(slog.Int64("notification_id", n.ID), slog.String("kind", string(n.Kind)))

	sendErr := d.facade.DeliverNotification(ctx, n)
	if sendErr == nil {
		if err := d.facade.MarkNotificationSent(ctx, n.ID); err != nil {
			log.Error("mark notification sent failed", slog.String("error", err.Error()))
		}
		return
	}

	attempts := n.Attempts + 1
	if errors.Is(sendErr, mailer.ErrPermanent) || attempts >= d.opts.MaxAttempts {
		log.Error("notification dead-lettered", slog.Int("attempts", attempts), slog.String("error", sendErr.Error()))
		if err := d.facade.BuryNotification(ctx, n.ID, attempts, sendErr.Error()); err != nil {
			log.Error("mark notification dead failed", slog.String("error", err.Error()))
		}
		return
	}

	delay := d.backoff(attempts)
	log.Warn("notification delivery failed", slog.Int("attempts", attempts), slog.Duration("retry_in", delay), slog.String("error", sendErr.Error()))
	if err := d.facade.RetryNotification(ctx, n.ID, attempts, d.now().Add(delay), sendErr.Error()); err != nil {
		log.Error("schedule notification retry failed", slog.String("error", err.Error()))
	}
}
