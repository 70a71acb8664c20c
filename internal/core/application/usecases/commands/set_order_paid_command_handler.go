package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
	"shop/internal/core/ports"
)

type SetOrderPaidCommandHandler struct {
	orderTransition
}

// NewSetOrderPaidCommandHandler creates a new SetOrderPaidCommandHandler.
func NewSetOrderPaidCommandHandler(
	uowFactory OrderUoWFactory,
	machine services.OrderStateMachine,
	notifier ports.Notifier,
) SetOrderPaidCommandHandler {
	return SetOrderPaidCommandHandler{orderTransition{uowFactory: uowFactory, machine: machine, notifier: notifier}}
}

func (h SetOrderPaidCommandHandler) Handle(ctx context.Context, cmd SetOrderPaidCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	outcome, err := h.apply(ctx, cmd.OrderID(), func(o *order.Order) (services.Outcome, error) {
		return h.machine.SetPaid(cmd.Actor(), o, cmd.Paid())
	})
	if err != nil {
		return nil, err
	}

	return outcome.Order, nil
}
