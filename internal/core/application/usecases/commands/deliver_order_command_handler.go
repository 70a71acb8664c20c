package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
	"shop/internal/core/ports"
)

// DeliverOrderCommandHandler marks an order delivered on behalf of its owner or an administrator.
type DeliverOrderCommandHandler struct {
	orderTransition
}

// NewDeliverOrderCommandHandler creates a new DeliverOrderCommandHandler.
func NewDeliverOrderCommandHandler(
	uowFactory OrderUoWFactory,
	machine services.OrderStateMachine,
	notifier ports.Notifier,
) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{orderTransition{uowFactory: uowFactory, machine: machine, notifier: notifier}}
}

func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	outcome, err := h.apply(ctx, cmd.OrderID(), func(o *order.Order) (services.Outcome, error) {
		return h.machine.MarkDelivered(cmd.Actor(), o)
	})
	if err != nil {
		return nil, err
	}

	return outcome.Order, nil
}
