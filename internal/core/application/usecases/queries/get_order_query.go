package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery loads one order with its owner's name and email. Any authenticated
// user may read any order.
type GetOrderQuery struct {
	actor   kernel.Actor
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

// NewGetOrderQuery validates the acting user and the order id.
func NewGetOrderQuery(actor kernel.Actor, orderID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(
		validateActor(actor),
		orderID.Validate(),
	); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{actor: actor, orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) Actor() kernel.Actor  { return q.actor }
func (q GetOrderQuery) OrderID() kernel.UUID { return q.orderID }
