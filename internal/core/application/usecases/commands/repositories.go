// Package commands contains business operations that modify system state.
// Every command follows the same steps: validate, open a unit of work, apply the domain
// rule, persist, commit, and only then hand the resulting event to the notifier.
package commands

import (
	"context"

	"shop/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	NotificationRepoFactory interface {
		NotificationRepository() ports.NotificationRepository
	}

	// OrderUoW manages transactions for order lifecycle transitions.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// NotificationUoW manages transactions for inbox operations.
	NotificationUoW interface {
		TxManager
		NotificationRepoFactory
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}

	// UoW spans both stores. Used by the retention purge.
	UoW interface {
		TxManager
		OrderRepoFactory
		NotificationRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
