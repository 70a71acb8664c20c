package dispatch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"
	"shop/internal/core/domain/model/user"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/metrics"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
)

var ErrDispatcherStopped = errors.New("dispatcher is stopped")

// Channels holds the optional transports. A nil transport disables its channel.
type Channels struct {
	Push   ports.PushSender
	Email  ports.EmailSender
	Stream ports.EventPublisher
}

type job struct {
	ctx   context.Context
	event notification.Event
}

// Dispatcher implements ports.Notifier.
type Dispatcher struct {
	cfg        Config
	uowFactory NotificationUoWFactory
	directory  ports.UserDirectory
	channels   Channels
	clock      kernel.Clock
	metrics    *metrics.Metrics
	logger     *slog.Logger
	tracer     trace.Tracer

	queue chan job

	mu      sync.RWMutex
	started bool
	closed  bool
	workers errgroup.Group
}

// NewDispatcher validates cfg and the collaborators and returns an idle dispatcher.
// Events enqueued before Start are buffered up to cfg's queue size; Start launches
// the worker pool and Stop drains it.
func NewDispatcher(
	cfg Config,
	uowFactory NotificationUoWFactory,
	directory ports.UserDirectory,
	channels Channels,
	clock kernel.Clock,
	m *metrics.Metrics,
	logger *slog.Logger,
) (*Dispatcher, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if uowFactory == nil {
		return nil, errs.NewValueIsRequiredError("uowFactory")
	}
	if directory == nil {
		return nil, errs.NewValueIsRequiredError("directory")
	}
	if clock == nil {
		return nil, errs.NewValueIsRequiredError("clock")
	}
	if m == nil {
		return nil, errs.NewValueIsRequiredError("metrics")
	}
	if logger == nil {
		return nil, errs.NewValueIsRequiredError("logger")
	}

	return &Dispatcher{
		cfg:        cfg,
		uowFactory: uowFactory,
		directory:  directory,
		channels:   channels,
		clock:      clock,
		metrics:    m,
		logger:     logger.With("component", "NotificationDispatcher"),
		tracer:     otel.Tracer("shop/dispatch"),
		queue:      make(chan job, cfg.QueueSize),
	}, nil
}

// Start launches the worker pool. Calling it twice is a no-op.
func (d *Dispatcher) Start() error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return ErrDispatcherStopped
	}
	if d.started {
		return nil
	}
	d.started = true

	for i := 0; i < d.cfg.Workers; i++ {
		d.workers.Go(func() error {
			for j := range d.queue {
				d.Deliver(j.ctx, j.event)
			}
			return nil
		})
	}

	d.logger.Info("notification dispatcher started", "workers", d.cfg.Workers, "queue_size", d.cfg.QueueSize)
	return nil
}

// Stop rejects new events and waits until the workers have drained the queue, or until
// ctx is done.
func (d *Dispatcher) Stop(ctx context.Context) error {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return nil
	}
	d.closed = true
	close(d.queue)
	started := d.started
	d.mu.Unlock()

	if !started {
		if pending := len(d.queue); pending > 0 {
			d.logger.Warn("notification dispatcher stopped before start, discarding events", "pending", pending)
			d.metrics.EventsDropped.Add(float64(pending))
		}
		return nil
	}

	done := make(chan struct{})
	go func() {
		_ = d.workers.Wait()
		close(done)
	}()

	select {
	case <-done:
		d.logger.Info("notification dispatcher stopped")
		return nil
	case <-ctx.Done():
		d.logger.Warn("notification dispatcher stop timed out", "pending", len(d.queue))
		return ctx.Err()
	}
}

// Enqueue hands the event to the worker pool and returns immediately. When the queue is
// full or the dispatcher is stopped the event is dropped, logged and counted.
func (d *Dispatcher) Enqueue(ctx context.Context, event notification.Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.drop(ctx, event, "dispatcher stopped")
		return
	}

	select {
	case d.queue <- job{ctx: context.WithoutCancel(ctx), event: event}:
	default:
		d.drop(ctx, event, "queue full")
	}
}

func (d *Dispatcher) drop(ctx context.Context, event notification.Event, reason string) {
	d.metrics.EventsDropped.Inc()
	d.logger.ErrorContext(ctx, "notification event dropped",
		"reason", reason,
		"event_id", event.ID.String(),
		"type", event.Type.String(),
	)
}

// Deliver runs every channel for the event once, synchronously. Channel failures are
// logged, counted and reported; they never stop the remaining channels.
func (d *Dispatcher) Deliver(ctx context.Context, event notification.Event) Report {
	ctx, span := d.tracer.Start(ctx, "notification.deliver", trace.WithAttributes(
		attribute.String("notification.event_id", event.ID.String()),
		attribute.String("notification.type", event.Type.String()),
	))
	defer span.End()

	report := newReport()

	if err := event.Validate(); err != nil {
		d.fail(ctx, &report, metrics.ChannelInApp, err)
		span.SetStatus(codes.Error, "invalid event")
		return report
	}

	recipients, resolveErr := d.resolveRecipients(ctx, event.Recipients)
	report.Recipients = len(recipients)
	span.SetAttributes(attribute.Int("notification.recipients", len(recipients)))

	d.run(ctx, &report, metrics.ChannelInApp, func() (bool, error) {
		if resolveErr != nil {
			return false, resolveErr
		}
		return d.deliverInApp(ctx, event, recipients)
	})
	d.run(ctx, &report, metrics.ChannelPush, func() (bool, error) {
		if resolveErr != nil {
			return false, resolveErr
		}
		return d.deliverPush(ctx, event, recipients)
	})
	d.run(ctx, &report, metrics.ChannelEmail, func() (bool, error) {
		return d.deliverEmail(ctx, event)
	})
	d.run(ctx, &report, metrics.ChannelStream, func() (bool, error) {
		return d.publish(ctx, event)
	})

	if len(report.Failures) > 0 {
		span.SetStatus(codes.Error, fmt.Sprintf("%d channel(s) failed", len(report.Failures)))
	}

	d.logger.InfoContext(ctx, "notification event dispatched",
		"event_id", event.ID.String(),
		"type", event.Type.String(),
		"recipients", report.Recipients,
		"delivered", report.Delivered,
		"failed", len(report.Failures),
	)

	return report
}

// run executes one channel, turning panics into channel failures.
func (d *Dispatcher) run(ctx context.Context, report *Report, channel string, deliver func() (bool, error)) {
	var (
		sent bool
		err  error
	)

	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("panic: %v", r)
			}
		}()
		sent, err = deliver()
	}()

	switch {
	case err != nil:
		d.fail(ctx, report, channel, err)
	case sent:
		d.metrics.NotificationsDelivered.WithLabelValues(channel).Inc()
		report.delivered(channel)
	default:
		report.skipped(channel)
	}
}

func (d *Dispatcher) fail(ctx context.Context, report *Report, channel string, err error) {
	failure := errs.NewChannelFailureError(channel, err)
	report.failed(channel, failure)
	d.metrics.ChannelFailures.WithLabelValues(channel).Inc()
	trace.SpanFromContext(ctx).RecordError(failure)
	d.logger.ErrorContext(ctx, "notification channel failed", "channel", channel, "error", err)
}

// resolveRecipients expands the recipient set into distinct users, in first-seen order.
func (d *Dispatcher) resolveRecipients(ctx context.Context, set notification.RecipientSet) ([]user.User, error) {
	var groups [][]user.User

	if len(set.UserIDs) > 0 {
		users, err := d.directory.ListByIDs(ctx, set.UserIDs)
		if err != nil {
			return nil, fmt.Errorf("resolve users: %w", err)
		}
		groups = append(groups, users)
	}
	if set.AllAdmins {
		admins, err := d.directory.ListAdmins(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolve admins: %w", err)
		}
		groups = append(groups, admins)
	}
	if set.AllCustomers {
		customers, err := d.directory.ListCustomers(ctx)
		if err != nil {
			return nil, fmt.Errorf("resolve customers: %w", err)
		}
		groups = append(groups, customers)
	}

	seen := make(map[string]struct{})
	recipients := make([]user.User, 0)
	for _, group := range groups {
		for _, u := range group {
			key := u.ID.String()
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			recipients = append(recipients, u)
		}
	}

	return recipients, nil
}

func (d *Dispatcher) deliverInApp(ctx context.Context, event notification.Event, recipients []user.User) (bool, error) {
	if len(recipients) == 0 {
		return false, nil
	}

	now := d.clock.Now()
	batch := make([]*notification.Notification, 0, len(recipients))
	for _, recipient := range recipients {
		n, err := notification.NewNotification(
			kernel.NewUUID(),
			recipient.ID,
			event.Title,
			event.Message,
			event.Type,
			event.OrderID,
			now,
		)
		if err != nil {
			return false, err
		}
		batch = append(batch, n)
	}

	uow := d.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.NotificationRepository().AddBatch(ctx, batch); err != nil {
		return false, err
	}

	if err := uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}

func (d *Dispatcher) deliverPush(ctx context.Context, event notification.Event, recipients []user.User) (bool, error) {
	if d.channels.Push == nil {
		return false, nil
	}

	data := map[string]any{"type": event.Type.String()}
	if event.OrderID != nil {
		data["orderId"] = event.OrderID.String()
	}

	messages := make([]ports.PushMessage, 0, len(recipients))
	for _, recipient := range recipients {
		if !d.channels.Push.ValidToken(recipient.PushToken) {
			continue
		}
		messages = append(messages, ports.PushMessage{
			Token: recipient.PushToken,
			Title: event.Title,
			Body:  event.Message,
			Data:  data,
		})
	}

	if len(messages) == 0 {
		return false, nil
	}

	tickets, err := d.channels.Push.SendBatch(ctx, messages)
	if err != nil {
		return false, err
	}

	rejected := 0
	for i, ticket := range tickets {
		if !ticket.IsOK() {
			rejected++
			d.logger.WarnContext(ctx, "push message rejected",
				"token", messages[i].Token,
				"status", ticket.Status,
				"message", ticket.Message,
			)
		}
	}
	if rejected > 0 && rejected == len(tickets) {
		return false, fmt.Errorf("all %d push messages rejected", rejected)
	}

	return true, nil
}

func (d *Dispatcher) deliverEmail(ctx context.Context, event notification.Event) (bool, error) {
	if event.Mail == nil || d.channels.Email == nil {
		return false, nil
	}

	to := event.Mail.To
	if to == "" {
		to = d.cfg.AdminEmail
	}
	if to == "" {
		return false, errs.NewValueIsRequiredError("email recipient")
	}

	if err := d.channels.Email.Send(ctx, to, event.Mail.Subject, event.Mail.Body); err != nil {
		return false, err
	}

	return true, nil
}

func (d *Dispatcher) publish(ctx context.Context, event notification.Event) (bool, error) {
	if d.channels.Stream == nil || d.cfg.StreamTopic == "" {
		return false, nil
	}

	if err := d.channels.Stream.PublishEvent(ctx, d.cfg.StreamTopic, event.ID.String(), event); err != nil {
		return false, err
	}

	return true, nil
}
