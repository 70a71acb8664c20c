package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/services"
	"shop/internal/pkg/guard"
)

var ErrPlaceOrderCommandIsNotConstructed = errors.New(
	"PlaceOrderCommand must be created via NewPlaceOrderCommand constructor",
)

// PlaceOrderCommand is a customer's checkout. Item and price rules are enforced by the order aggregate.
type PlaceOrderCommand struct {
	orderTarget
	request services.PlaceOrderRequest

	guard guard.ConstructorGuard
}

// NewPlaceOrderCommand validates the acting user and the order id. Items, prices
// and the address are validated by the state machine.
func NewPlaceOrderCommand(
	actor kernel.Actor,
	orderID kernel.UUID,
	request services.PlaceOrderRequest,
) (PlaceOrderCommand, error) {
	target, err := newOrderTarget(actor, orderID)
	if err != nil {
		return PlaceOrderCommand{}, err
	}

	return PlaceOrderCommand{
		orderTarget: target,
		request:     request,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (c PlaceOrderCommand) Validate() error {
	return c.guard.Validate(ErrPlaceOrderCommandIsNotConstructed)
}

func (c PlaceOrderCommand) Request() services.PlaceOrderRequest {
	return c.request
}
