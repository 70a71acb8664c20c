package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
	"shop/internal/pkg/guard"
)

var ErrListMyOrdersQueryIsNotConstructed = errors.New(
	"ListMyOrdersQuery must be created via NewListMyOrdersQuery constructor",
)

// ListMyOrdersQuery returns the actor's own orders, newest first.
type ListMyOrdersQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

// NewListMyOrdersQuery validates the acting user.
func NewListMyOrdersQuery(actor kernel.Actor) (ListMyOrdersQuery, error) {
	if err := validateActor(actor); err != nil {
		return ListMyOrdersQuery{}, err
	}
	return ListMyOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListMyOrdersQueryIsNotConstructed)
}

func (q ListMyOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

func validateActor(actor kernel.Actor) error {
	if err := actor.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("actor", err)
	}
	return nil
}
