package queries

import (
	"errors"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/guard"
)

var ErrListAllOrdersQueryIsNotConstructed = errors.New(
	"ListAllOrdersQuery must be created via NewListAllOrdersQuery constructor",
)

// ListAllOrdersQuery returns every order for the back office. Admin only.
type ListAllOrdersQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

// NewListAllOrdersQuery validates the acting user. The admin check is done by the handler.
func NewListAllOrdersQuery(actor kernel.Actor) (ListAllOrdersQuery, error) {
	if err := validateActor(actor); err != nil {
		return ListAllOrdersQuery{}, err
	}
	return ListAllOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListAllOrdersQueryIsNotConstructed)
}

func (q ListAllOrdersQuery) Actor() kernel.Actor {
	return q.actor
}
