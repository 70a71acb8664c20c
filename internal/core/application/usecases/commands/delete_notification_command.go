package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrDeleteNotificationCommandIsNotConstructed = errors.New(
	"DeleteNotificationCommand must be created via NewDeleteNotificationCommand constructor",
)

type DeleteNotificationCommand struct {
	actor          kernel.Actor
	notificationID kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeleteNotificationCommand validates the acting user and the notification id.
// Ownership is checked by the handler.
func NewDeleteNotificationCommand(actor kernel.Actor, notificationID kernel.UUID) (DeleteNotificationCommand, error) {
	if err := errors.Join(
		validateActor(actor),
		notificationID.Validate(),
	); err != nil {
		return DeleteNotificationCommand{}, err
	}

	return DeleteNotificationCommand{actor: actor, notificationID: notificationID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteNotificationCommand) Validate() error {
	return c.guard.Validate(ErrDeleteNotificationCommandIsNotConstructed)
}

func (c DeleteNotificationCommand) Actor() kernel.Actor         { return c.actor }
func (c DeleteNotificationCommand) NotificationID() kernel.UUID { return c.notificationID }
