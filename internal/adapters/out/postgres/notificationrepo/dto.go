package notificationrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"

	"github.com/google/uuid"
)

type NotificationDTO struct {
	ID        uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID  `gorm:"type:uuid;index;not null"`
	Title     string     `gorm:"not null"`
	Message   string     `gorm:"not null"`
	Type      string     `gorm:"size:32;not null"`
	IsRead    bool       `gorm:"not null;default:false"`
	OrderID   *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time  `gorm:"index;not null"`
}

func (NotificationDTO) TableName() string {
	return "notifications"
}

func fromDomain(n *notification.Notification) NotificationDTO {
	dto := NotificationDTO{
		ID:        n.ID().Bytes(),
		UserID:    n.User().Bytes(),
		Title:     n.Title(),
		Message:   n.Message(),
		Type:      n.Type().String(),
		IsRead:    n.IsRead(),
		CreatedAt: n.CreatedAt(),
	}

	if orderID := n.OrderID(); orderID != nil {
		id := orderID.Bytes()
		dto.OrderID = &id
	}

	return dto
}

func toDomain(dto NotificationDTO) (*notification.Notification, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	var orderID *kernel.UUID
	if dto.OrderID != nil {
		parsed, err := kernel.UUIDFromBytes(dto.OrderID[:])
		if err != nil {
			return nil, err
		}
		orderID = &parsed
	}

	return notification.RestoreNotification(
		id,
		userID,
		dto.Title,
		dto.Message,
		notification.Type(dto.Type),
		dto.IsRead,
		orderID,
		dto.CreatedAt,
	)
}
