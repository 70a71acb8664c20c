package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
	"shop/internal/core/ports"
)

type PayOrderCommandHandler struct {
	orderTransition
}

// NewPayOrderCommandHandler creates a new PayOrderCommandHandler.
func NewPayOrderCommandHandler(
	uowFactory OrderUoWFactory,
	machine services.OrderStateMachine,
	notifier ports.Notifier,
) PayOrderCommandHandler {
	return PayOrderCommandHandler{orderTransition{uowFactory: uowFactory, machine: machine, notifier: notifier}}
}

func (h PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	outcome, err := h.apply(ctx, cmd.OrderID(), func(o *order.Order) (services.Outcome, error) {
		return h.machine.Pay(cmd.Actor(), o, cmd.Receipt())
	})
	if err != nil {
		return nil, err
	}

	return outcome.Order, nil
}
