package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
	"shop/internal/core/ports"
)

// CancelOrderCommandHandler deletes an order. Cancellation is destructive: no Cancelled row remains.
type CancelOrderCommandHandler struct {
	orderTransition
}

// NewCancelOrderCommandHandler creates a new CancelOrderCommandHandler.
func NewCancelOrderCommandHandler(
	uowFactory OrderUoWFactory,
	machine services.OrderStateMachine,
	notifier ports.Notifier,
) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{orderTransition{uowFactory: uowFactory, machine: machine, notifier: notifier}}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	_, err := h.apply(ctx, cmd.OrderID(), func(o *order.Order) (services.Outcome, error) {
		return h.machine.Cancel(cmd.Actor(), o)
	})
	return err
}
