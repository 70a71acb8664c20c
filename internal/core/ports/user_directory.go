package ports

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/user"
)

// UserDirectory is the identity provider's read side: accounts are owned elsewhere.
type UserDirectory interface {
	// Get returns errs.ObjectNotFoundError for unknown ids.
	Get(ctx context.Context, id kernel.UUID) (user.User, error)
	ListByIDs(ctx context.Context, ids []kernel.UUID) ([]user.User, error)
	ListAdmins(ctx context.Context) ([]user.User, error)
	// ListCustomers returns every non-admin user.
	ListCustomers(ctx context.Context) ([]user.User, error)
}
