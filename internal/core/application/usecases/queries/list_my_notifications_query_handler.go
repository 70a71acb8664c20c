package queries

import (
	"context"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListMyNotificationsQueryHandler struct {
	db *gorm.DB
}

// NewListMyNotificationsQueryHandler creates a new ListMyNotificationsQueryHandler.
func NewListMyNotificationsQueryHandler(db *gorm.DB) ListMyNotificationsQueryHandler {
	return ListMyNotificationsQueryHandler{db: db}
}

func (h ListMyNotificationsQueryHandler) Handle(
	ctx context.Context,
	query ListMyNotificationsQuery,
) ([]NotificationView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			title,
			message,
			type,
			is_read,
			order_id,
			created_at
		FROM notifications
		WHERE user_id = ?
		ORDER BY created_at DESC, id
	`, query.Actor().ID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	views := make([]NotificationView, 0)
	for rows.Next() {
		var (
			view    NotificationView
			id      uuid.UUID
			orderID uuid.NullUUID
			kind    string
		)

		if err := rows.Scan(&id, &view.Title, &view.Message, &kind, &view.IsRead, &orderID, &view.CreatedAt); err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if orderID.Valid {
			parsed, err := kernel.UUIDFromBytes(orderID.UUID[:])
			if err != nil {
				return nil, err
			}
			view.OrderID = &parsed
		}
		view.Type = notification.Type(kind)

		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
