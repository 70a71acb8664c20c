package commands

import (
	"context"

	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
	"shop/internal/core/ports"
)

// PlaceOrderCommandHandler stores a new Pending order and alerts the administrators.
type PlaceOrderCommandHandler struct {
	orderTransition
}

// NewPlaceOrderCommandHandler creates a handler that persists new orders and notifies
// the admins once the transaction has committed.
func NewPlaceOrderCommandHandler(
	uowFactory OrderUoWFactory,
	machine services.OrderStateMachine,
	notifier ports.Notifier,
) PlaceOrderCommandHandler {
	return PlaceOrderCommandHandler{orderTransition{uowFactory: uowFactory, machine: machine, notifier: notifier}}
}

func (h PlaceOrderCommandHandler) Handle(ctx context.Context, cmd PlaceOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	outcome, err := h.machine.Place(cmd.Actor(), cmd.OrderID(), cmd.Request())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, outcome.Order); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	h.notify(ctx, outcome)
	return outcome.Order, nil
}
