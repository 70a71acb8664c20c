package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New(
	"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
)

type CancelOrderCommand struct {
	orderTarget

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand validates the acting user and the order id.
func NewCancelOrderCommand(actor kernel.Actor, orderID kernel.UUID) (CancelOrderCommand, error) {
	target, err := newOrderTarget(actor, orderID)
	if err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{orderTarget: target, guard: guard.NewConstructorGuard()}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}
