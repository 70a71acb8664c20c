package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var ErrSetOrderStatusCommandIsNotConstructed = errors.New(
	"SetOrderStatusCommand must be created via NewSetOrderStatusCommand constructor",
)

// SetOrderStatusCommand is an administrator moving an order to another status.
// Cancelled is accepted and removes the order.
type SetOrderStatusCommand struct {
	orderTarget
	status order.Status

	guard guard.ConstructorGuard
}

// NewSetOrderStatusCommand validates the acting user, the order id and the target
// status. Cancelled is accepted and means deletion.
func NewSetOrderStatusCommand(actor kernel.Actor, orderID kernel.UUID, status order.Status) (SetOrderStatusCommand, error) {
	target, err := newOrderTarget(actor, orderID)
	if err = errors.Join(err, status.Validate()); err != nil {
		return SetOrderStatusCommand{}, err
	}

	return SetOrderStatusCommand{orderTarget: target, status: status, guard: guard.NewConstructorGuard()}, nil
}

func (c SetOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderStatusCommandIsNotConstructed)
}

func (c SetOrderStatusCommand) Status() order.Status {
	return c.status
}
