package commands

import (
	"context"
	"errors"
	"fmt"
	"time"

	"shop/internal/core/domain/model/kernel"
)

// PurgeResult reports how many rows each sweep removed. A failed sweep reports zero
// and keeps its error.
type PurgeResult struct {
	Cutoff               time.Time
	OrdersDeleted        int64
	NotificationsDeleted int64
	OrderSweepErr        error
	NotificationSweepErr error
}

// PurgeExpiredRecordsCommandHandler runs both retention sweeps. Each sweep has its own
// transaction, so a failing order sweep does not stop the notification sweep.
type PurgeExpiredRecordsCommandHandler struct {
	uowFactory UoWFactory
	clock      kernel.Clock
}

// NewPurgeExpiredRecordsCommandHandler creates a handler computing cutoffs from clock.
func NewPurgeExpiredRecordsCommandHandler(uowFactory UoWFactory, clock kernel.Clock) PurgeExpiredRecordsCommandHandler {
	return PurgeExpiredRecordsCommandHandler{uowFactory: uowFactory, clock: clock}
}

func (h PurgeExpiredRecordsCommandHandler) Handle(ctx context.Context, cmd PurgeExpiredRecordsCommand) (PurgeResult, error) {
	if err := cmd.Validate(); err != nil {
		return PurgeResult{}, err
	}

	now := h.clock.Now()
	result := PurgeResult{Cutoff: now}

	ordersDeleted, orderErr := h.sweep(ctx, func(ctx context.Context, uow UoW) (int64, error) {
		return uow.OrderRepository().DeleteCreatedBefore(ctx, now.Add(-cmd.OrderRetention()))
	})
	if orderErr != nil {
		orderErr = fmt.Errorf("order sweep: %w", orderErr)
	}
	result.OrdersDeleted = ordersDeleted
	result.OrderSweepErr = orderErr

	notificationsDeleted, notificationErr := h.sweep(ctx, func(ctx context.Context, uow UoW) (int64, error) {
		return uow.NotificationRepository().DeleteCreatedBefore(ctx, now.Add(-cmd.NotificationRetention()))
	})
	if notificationErr != nil {
		notificationErr = fmt.Errorf("notification sweep: %w", notificationErr)
	}
	result.NotificationsDeleted = notificationsDeleted
	result.NotificationSweepErr = notificationErr

	return result, errors.Join(orderErr, notificationErr)
}

func (h PurgeExpiredRecordsCommandHandler) sweep(
	ctx context.Context,
	deleteFn func(ctx context.Context, uow UoW) (int64, error),
) (int64, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deleted, err := deleteFn(ctx, uow)
	if err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return deleted, nil
}
