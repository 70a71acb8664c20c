package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrSetOrderPaidCommandIsNotConstructed = errors.New(
	"SetOrderPaidCommand must be created via NewSetOrderPaidCommand constructor",
)

// SetOrderPaidCommand overrides the paid flag out of band, e.g. after a bank transfer.
type SetOrderPaidCommand struct {
	orderTarget
	paid bool

	guard guard.ConstructorGuard
}

// NewSetOrderPaidCommand validates the acting user and the order id.
func NewSetOrderPaidCommand(actor kernel.Actor, orderID kernel.UUID, paid bool) (SetOrderPaidCommand, error) {
	target, err := newOrderTarget(actor, orderID)
	if err != nil {
		return SetOrderPaidCommand{}, err
	}

	return SetOrderPaidCommand{orderTarget: target, paid: paid, guard: guard.NewConstructorGuard()}, nil
}

func (c SetOrderPaidCommand) Validate() error {
	return c.guard.Validate(ErrSetOrderPaidCommandIsNotConstructed)
}

func (c SetOrderPaidCommand) Paid() bool {
	return c.paid
}
