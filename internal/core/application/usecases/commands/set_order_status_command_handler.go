package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
	"shop/internal/core/ports"
)

type SetOrderStatusCommandHandler struct {
	orderTransition
}

// NewSetOrderStatusCommandHandler creates a new SetOrderStatusCommandHandler.
func NewSetOrderStatusCommandHandler(
	uowFactory OrderUoWFactory,
	machine services.OrderStateMachine,
	notifier ports.Notifier,
) SetOrderStatusCommandHandler {
	return SetOrderStatusCommandHandler{orderTransition{uowFactory: uowFactory, machine: machine, notifier: notifier}}
}

// Handle returns the outcome so callers can tell an update from a removal.
func (h SetOrderStatusCommandHandler) Handle(ctx context.Context, cmd SetOrderStatusCommand) (services.Outcome, error) {
	if err := cmd.Validate(); err != nil {
		return services.Outcome{}, err
	}

	return h.apply(ctx, cmd.OrderID(), func(o *order.Order) (services.Outcome, error) {
		return h.machine.SetStatus(cmd.Actor(), o, cmd.Status())
	})
}
