package commands

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrSubmitSupportRequestCommandIsNotConstructed = errors.New(
	"SubmitSupportRequestCommand must be created via NewSubmitSupportRequestCommand constructor",
)

// SubmitSupportRequestCommand is a customer asking for help, optionally about one order.
type SubmitSupportRequestCommand struct {
	actor   kernel.Actor
	subject string
	message string
	orderID *kernel.UUID

	guard guard.ConstructorGuard
}

// NewSubmitSupportRequestCommand trims subject and message and requires both, plus
// an actor with an email address to send the auto-response to.
func NewSubmitSupportRequestCommand(
	actor kernel.Actor,
	subject, message string,
	orderID *kernel.UUID,
) (SubmitSupportRequestCommand, error) {
	cmd := SubmitSupportRequestCommand{
		subject: strings.TrimSpace(subject),
		message: strings.TrimSpace(message),
		guard:   guard.NewConstructorGuard(),
	}

	var result []error
	if err := actor.Validate(); err != nil {
		result = append(result, errs.NewValueIsRequiredErrorWithCause("actor", err))
	}
	if strings.TrimSpace(actor.Email) == "" {
		result = append(result, errs.NewValueIsRequiredError("actor email"))
	}
	if cmd.subject == "" {
		result = append(result, errs.NewValueIsRequiredError("subject"))
	}
	if cmd.message == "" {
		result = append(result, errs.NewValueIsRequiredError("message"))
	}
	if orderID != nil {
		if err := orderID.Validate(); err != nil {
			result = append(result, err)
		}
	}
	if err := errors.Join(result...); err != nil {
		return SubmitSupportRequestCommand{}, err
	}

	cmd.actor = actor
	cmd.orderID = orderID
	return cmd, nil
}

func (c SubmitSupportRequestCommand) Validate() error {
	return c.guard.Validate(ErrSubmitSupportRequestCommandIsNotConstructed)
}

func (c SubmitSupportRequestCommand) Actor() kernel.Actor   { return c.actor }
func (c SubmitSupportRequestCommand) Subject() string       { return c.subject }
func (c SubmitSupportRequestCommand) Message() string       { return c.message }
func (c SubmitSupportRequestCommand) OrderID() *kernel.UUID { return c.orderID }
