// Package dispatch fans notification events out to every channel: in-app rows, push
// messages, transactional email and the event stream. Events arrive through a bounded
// queue drained by a fixed pool of workers; a failing channel is logged and counted but
// never affects the other channels or the caller that enqueued the event.
package dispatch

import (
	"context"

	"shop/internal/core/ports"
)

type (
	// NotificationUoW is the slice of the unit of work the in-app channel writes through.
	NotificationUoW interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
		NotificationRepository() ports.NotificationRepository
	}

	NotificationUoWFactory interface {
		Create() NotificationUoW
	}
)
