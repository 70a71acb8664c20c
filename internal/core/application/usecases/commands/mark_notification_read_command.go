package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrMarkNotificationReadCommandIsNotConstructed = errors.New(
	"MarkNotificationReadCommand must be created via NewMarkNotificationReadCommand constructor",
)

// MarkNotificationReadCommand toggles the read flag of one of the actor's notifications.
type MarkNotificationReadCommand struct {
	actor          kernel.Actor
	notificationID kernel.UUID
	read           bool

	guard guard.ConstructorGuard
}

// NewMarkNotificationReadCommand builds a command setting the read flag to read.
// Ownership is checked by the notification when the flag is set.
func NewMarkNotificationReadCommand(
	actor kernel.Actor,
	notificationID kernel.UUID,
	read bool,
) (MarkNotificationReadCommand, error) {
	if err := errors.Join(
		validateActor(actor),
		notificationID.Validate(),
	); err != nil {
		return MarkNotificationReadCommand{}, err
	}

	return MarkNotificationReadCommand{
		actor:          actor,
		notificationID: notificationID,
		read:           read,
		guard:          guard.NewConstructorGuard(),
	}, nil
}

func (c MarkNotificationReadCommand) Validate() error {
	return c.guard.Validate(ErrMarkNotificationReadCommandIsNotConstructed)
}

func (c MarkNotificationReadCommand) Actor() kernel.Actor         { return c.actor }
func (c MarkNotificationReadCommand) NotificationID() kernel.UUID { return c.notificationID }
func (c MarkNotificationReadCommand) Read() bool                  { return c.read }

func validateActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	return nil
}
