package commands

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// orderTarget is the part every order command shares: who acts, on which order.
type orderTarget struct {
	actor   kernel.Actor
	orderID kernel.UUID
}

func newOrderTarget(actor kernel.Actor, orderID kernel.UUID) (orderTarget, error) {
	var target orderTarget
	if err := errors.Join(
		target.setActor(actor),
		target.setOrderID(orderID),
	); err != nil {
		return orderTarget{}, err
	}
	return target, nil
}

func (t orderTarget) Actor() kernel.Actor  { return t.actor }
func (t orderTarget) OrderID() kernel.UUID { return t.orderID }

func (t *orderTarget) setActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	t.actor = actor
	return nil
}

func (t *orderTarget) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	t.orderID = orderID
	return nil
}
