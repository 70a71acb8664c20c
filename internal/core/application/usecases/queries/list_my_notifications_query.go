package queries

import (
	"errors"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"
	"shop/internal/pkg/guard"
)

var ErrListMyNotificationsQueryIsNotConstructed = errors.New(
	"ListMyNotificationsQuery must be created via NewListMyNotificationsQuery constructor",
)

// ListMyNotificationsQuery returns the actor's inbox, newest first.
type ListMyNotificationsQuery struct {
	actor kernel.Actor
	guard guard.ConstructorGuard
}

// NewListMyNotificationsQuery validates the acting user.
func NewListMyNotificationsQuery(actor kernel.Actor) (ListMyNotificationsQuery, error) {
	if err := validateActor(actor); err != nil {
		return ListMyNotificationsQuery{}, err
	}
	return ListMyNotificationsQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMyNotificationsQuery) Validate() error {
	return q.guard.Validate(ErrListMyNotificationsQueryIsNotConstructed)
}

func (q ListMyNotificationsQuery) Actor() kernel.Actor {
	return q.actor
}

type NotificationView struct {
	ID        kernel.UUID       `json:"_id"`
	Title     string            `json:"title"`
	Message   string            `json:"message"`
	Type      notification.Type `json:"type"`
	IsRead    bool              `json:"isRead"`
	OrderID   *kernel.UUID      `json:"orderId,omitempty"`
	CreatedAt time.Time         `json:"createdAt"`
}
