package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/guard"
)

var ErrPayOrderCommandIsNotConstructed = errors.New(
	"PayOrderCommand must be created via NewPayOrderCommand constructor",
)

// PayOrderCommand attaches the payment provider's receipt to the actor's order.
type PayOrderCommand struct {
	orderTarget
	receipt order.PaymentResult

	guard guard.ConstructorGuard
}

// NewPayOrderCommand validates the acting user and the order id. The receipt is
// stored as given.
func NewPayOrderCommand(actor kernel.Actor, orderID kernel.UUID, receipt order.PaymentResult) (PayOrderCommand, error) {
	target, err := newOrderTarget(actor, orderID)
	if err != nil {
		return PayOrderCommand{}, err
	}

	return PayOrderCommand{orderTarget: target, receipt: receipt, guard: guard.NewConstructorGuard()}, nil
}

func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}

func (c PayOrderCommand) Receipt() order.PaymentResult {
	return c.receipt
}
