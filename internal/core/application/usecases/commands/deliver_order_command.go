package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New(
	"DeliverOrderCommand must be created via NewDeliverOrderCommand constructor",
)

type DeliverOrderCommand struct {
	orderTarget

	guard guard.ConstructorGuard
}

// NewDeliverOrderCommand validates the acting user and the order id.
func NewDeliverOrderCommand(actor kernel.Actor, orderID kernel.UUID) (DeliverOrderCommand, error) {
	target, err := newOrderTarget(actor, orderID)
	if err != nil {
		return DeliverOrderCommand{}, err
	}

	return DeliverOrderCommand{orderTarget: target, guard: guard.NewConstructorGuard()}, nil
}

func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}
