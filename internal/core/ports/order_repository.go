package ports

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	Add(ctx context.Context, aggregate *order.Order) error

	// Update overwrites the stored order. Concurrent writers to the same order are last-write-wins.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order. A missing order yields errs.ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error

	// Get returns errs.ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// DeleteCreatedBefore bulk-deletes orders whose createdAt is strictly before cutoff
	// and returns how many rows went away.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
