package commands

import (
	"errors"
	"time"

	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrPurgeExpiredRecordsCommandIsNotConstructed = errors.New(
	"PurgeExpiredRecordsCommand must be created via NewPurgeExpiredRecordsCommand constructor",
)

const (
	DefaultOrderRetention        = 7 * 24 * time.Hour
	DefaultNotificationRetention = 3 * 24 * time.Hour
)

// PurgeExpiredRecordsCommand deletes orders and notifications older than their retention windows.
type PurgeExpiredRecordsCommand struct {
	orderRetention        time.Duration
	notificationRetention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeExpiredRecordsCommand requires both retention windows to be positive.
func NewPurgeExpiredRecordsCommand(orderRetention, notificationRetention time.Duration) (PurgeExpiredRecordsCommand, error) {
	cmd := PurgeExpiredRecordsCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setOrderRetention(orderRetention),
		cmd.setNotificationRetention(notificationRetention),
	); err != nil {
		return PurgeExpiredRecordsCommand{}, err
	}

	return cmd, nil
}

func (c PurgeExpiredRecordsCommand) Validate() error {
	return c.guard.Validate(ErrPurgeExpiredRecordsCommandIsNotConstructed)
}

func (c PurgeExpiredRecordsCommand) OrderRetention() time.Duration        { return c.orderRetention }
func (c PurgeExpiredRecordsCommand) NotificationRetention() time.Duration { return c.notificationRetention }

func (c *PurgeExpiredRecordsCommand) setOrderRetention(d time.Duration) error {
	if d <= 0 {
		return errs.NewValueIsOutOfRangeError("order retention", d, time.Duration(1), "unbounded")
	}
	c.orderRetention = d
	return nil
}

func (c *PurgeExpiredRecordsCommand) setNotificationRetention(d time.Duration) error {
	if d <= 0 {
		return errs.NewValueIsOutOfRangeError("notification retention", d, time.Duration(1), "unbounded")
	}
	c.notificationRetention = d
	return nil
}
