package ports

import (
	"context"

	"shop/internal/core/domain/model/notification"
)

// Notifier accepts an event for delivery without waiting for it. Enqueue never blocks
// and never reports channel failures to the caller.
type Notifier interface {
	Enqueue(ctx context.Context, event notification.Event)
}
