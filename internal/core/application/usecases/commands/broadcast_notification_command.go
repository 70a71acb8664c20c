package commands

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrBroadcastNotificationCommandIsNotConstructed = errors.New(
	"BroadcastNotificationCommand must be created via NewBroadcastNotificationCommand constructor",
)

// BroadcastNotificationCommand sends a PROMOTIONAL or SYSTEM message to every customer.
type BroadcastNotificationCommand struct {
	actor   kernel.Actor
	title   string
	message string
	kind    notification.Type

	guard guard.ConstructorGuard
}

// NewBroadcastNotificationCommand requires a non-blank title and message. Only
// PROMOTIONAL and SYSTEM notifications can be broadcast.
func NewBroadcastNotificationCommand(
	actor kernel.Actor,
	title, message string,
	kind notification.Type,
) (BroadcastNotificationCommand, error) {
	cmd := BroadcastNotificationCommand{
		actor: actor,
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setContent(title, message),
		cmd.setType(kind),
	); err != nil {
		return BroadcastNotificationCommand{}, err
	}

	return cmd, nil
}

func (c BroadcastNotificationCommand) Validate() error {
	return c.guard.Validate(ErrBroadcastNotificationCommandIsNotConstructed)
}

func (c BroadcastNotificationCommand) Actor() kernel.Actor     { return c.actor }
func (c BroadcastNotificationCommand) Title() string           { return c.title }
func (c BroadcastNotificationCommand) Message() string         { return c.message }
func (c BroadcastNotificationCommand) Type() notification.Type { return c.kind }

func (c *BroadcastNotificationCommand) setContent(title, message string) error {
	var result []error
	if strings.TrimSpace(title) == "" {
		result = append(result, errs.NewValueIsRequiredError("title"))
	}
	if strings.TrimSpace(message) == "" {
		result = append(result, errs.NewValueIsRequiredError("message"))
	}
	if err := errors.Join(result...); err != nil {
		return err
	}
	c.title = title
	c.message = message
	return nil
}

func (c *BroadcastNotificationCommand) setType(kind notification.Type) error {
	if !kind.IsBroadcastable() {
		return errs.NewValueIsInvalidErrorWithCause("type", errors.New("only PROMOTIONAL and SYSTEM can be broadcast"))
	}
	c.kind = kind
	return nil
}
