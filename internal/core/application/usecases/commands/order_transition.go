package commands

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
	"shop/internal/core/domain/services"
	"shop/internal/core/ports"
)

// orderTransition runs one state machine transition against a stored order:
// load, apply, update or delete, commit, then enqueue the transition's event.
// Nothing is enqueued unless the commit succeeded.
type orderTransition struct {
	uowFactory OrderUoWFactory
	machine    services.OrderStateMachine
	notifier   ports.Notifier
}

func (t orderTransition) apply(
	ctx context.Context,
	orderID kernel.UUID,
	transition func(*order.Order) (services.Outcome, error),
) (services.Outcome, error) {
	uow := t.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return services.Outcome{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return services.Outcome{}, err
	}

	outcome, err := transition(o)
	if err != nil {
		return services.Outcome{}, err
	}

	if outcome.Deleted {
		err = orderRepo.Delete(ctx, o.ID())
	} else {
		err = orderRepo.Update(ctx, o)
	}
	if err != nil {
		return services.Outcome{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return services.Outcome{}, err
	}

	t.notify(ctx, outcome)
	return outcome, nil
}

func (t orderTransition) notify(ctx context.Context, outcome services.Outcome) {
	if outcome.Event != nil {
		t.notifier.Enqueue(ctx, *outcome.Event)
	}
}
