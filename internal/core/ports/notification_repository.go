package ports

import (
	"context"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"
)

// NotificationRepository defines the persistence contract for in-app notifications.
type NotificationRepository interface {
	// AddBatch inserts all notifications in one round trip.
	AddBatch(ctx context.Context, batch []*notification.Notification) error

	Update(ctx context.Context, aggregate *notification.Notification) error
	Delete(ctx context.Context, id kernel.UUID) error
	Get(ctx context.Context, id kernel.UUID) (*notification.Notification, error)

	// DeleteCreatedBefore bulk-deletes notifications whose createdAt is strictly before cutoff.
	DeleteCreatedBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
