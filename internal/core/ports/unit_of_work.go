package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// Client code must explicitly manage transaction lifecycle.
type UnitOfWork interface {
	Begin(ctx context.Context) error

	// Commit returns an error if no transaction is active or the commit fails.
	Commit(ctx context.Context) error

	// Rollback is safe to defer after Commit.
	Rollback(ctx context.Context) error

	// OrderRepository returns a repository bound to the transaction started by Begin.
	OrderRepository() OrderRepository

	// NotificationRepository returns a repository bound to the transaction started by Begin.
	NotificationRepository() NotificationRepository
}
