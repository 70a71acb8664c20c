package commands

import (
	"context"
	"fmt"

	"shop/internal/core/domain/model/notification"
	"shop/internal/core/ports"
)

// SubmitSupportRequestCommandHandler alerts administrators in-app and sends the customer
// an acknowledgement email.
type SubmitSupportRequestCommandHandler struct {
	notifier ports.Notifier
}

// NewSubmitSupportRequestCommandHandler creates a new SubmitSupportRequestCommandHandler.
func NewSubmitSupportRequestCommandHandler(notifier ports.Notifier) SubmitSupportRequestCommandHandler {
	return SubmitSupportRequestCommandHandler{notifier: notifier}
}

func (h SubmitSupportRequestCommandHandler) Handle(
	ctx context.Context,
	cmd SubmitSupportRequestCommand,
) (notification.Event, error) {
	if err := cmd.Validate(); err != nil {
		return notification.Event{}, err
	}

	actor := cmd.Actor()
	ev, err := notification.NewEvent(
		notification.ToAdmins(),
		"Support Request: "+cmd.Subject(),
		fmt.Sprintf("%s <%s> wrote: %s", actor.Name, actor.Email, cmd.Message()),
		notification.SupportRequest,
		cmd.OrderID(),
	)
	if err != nil {
		return notification.Event{}, err
	}
	ev = ev.WithMail(
		actor.Email,
		"We received your request: "+cmd.Subject(),
		fmt.Sprintf("Hi %s,\n\nThanks for reaching out. Our team has your message and will reply shortly.\n\n> %s",
			actor.Name, cmd.Message()),
	)

	h.notifier.Enqueue(ctx, ev)
	return ev, nil
}
