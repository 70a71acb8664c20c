package commands

import (
	"context"

	"shop/internal/core/domain/model/notification"
	"shop/internal/core/ports"
	"shop/internal/pkg/errs"
)

type BroadcastNotificationCommandHandler struct {
	notifier ports.Notifier
}

// NewBroadcastNotificationCommandHandler creates a handler that hands broadcasts to notifier.
func NewBroadcastNotificationCommandHandler(notifier ports.Notifier) BroadcastNotificationCommandHandler {
	return BroadcastNotificationCommandHandler{notifier: notifier}
}

// Handle enqueues the broadcast and returns its event for correlation.
func (h BroadcastNotificationCommandHandler) Handle(
	ctx context.Context,
	cmd BroadcastNotificationCommand,
) (notification.Event, error) {
	if err := cmd.Validate(); err != nil {
		return notification.Event{}, err
	}
	if !cmd.Actor().IsAdmin {
		return notification.Event{}, errs.NewUnauthorizedError("broadcast notifications")
	}

	ev, err := notification.NewEvent(notification.ToCustomers(), cmd.Title(), cmd.Message(), cmd.Type(), nil)
	if err != nil {
		return notification.Event{}, err
	}

	h.notifier.Enqueue(ctx, ev)
	return ev, nil
}
