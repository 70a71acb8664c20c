// Package orderrepo persists the Order aggregate with GORM. Items and the payment receipt
// are document-shaped and stored as jsonb; money columns are numeric.
package orderrepo

import (
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type OrderDTO struct {
	ID              uuid.UUID         `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID         `gorm:"type:uuid;index;not null"`
	Items           []ItemDTO         `gorm:"type:jsonb;serializer:json;not null"`
	ShippingAddress AddressDTO        `gorm:"embedded;embeddedPrefix:shipping_"`
	PaymentMethod   string            `gorm:"not null"`
	ItemsPrice      decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	TaxPrice        decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	ShippingPrice   decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	TotalPrice      decimal.Decimal   `gorm:"type:numeric(12,2);not null"`
	Status          int               `gorm:"index;not null"`
	IsPaid          bool              `gorm:"not null"`
	PaidAt          *time.Time
	PaymentResult   *PaymentResultDTO `gorm:"type:jsonb;serializer:json"`
	IsDelivered     bool              `gorm:"not null"`
	DeliveredAt     *time.Time
	CreatedAt       time.Time         `gorm:"index;not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type ItemDTO struct {
	ProductID string          `json:"product"`
	Name      string          `json:"name"`
	Image     string          `json:"image"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"qty"`
}

type AddressDTO struct {
	Address    string
	City       string
	PostalCode string
	Country    string
}

type PaymentResultDTO struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}

func fromDomain(o *order.Order) OrderDTO {
	s := o.Snapshot()

	items := make([]ItemDTO, 0, len(s.Items))
	for _, item := range s.Items {
		items = append(items, ItemDTO(item))
	}

	var receipt *PaymentResultDTO
	if s.PaymentResult != nil {
		r := PaymentResultDTO(*s.PaymentResult)
		receipt = &r
	}

	return OrderDTO{
		ID:              s.ID.Bytes(),
		UserID:          s.OwnerID.Bytes(),
		Items:           items,
		ShippingAddress: AddressDTO(s.ShippingAddress),
		PaymentMethod:   s.PaymentMethod,
		ItemsPrice:      s.Prices.Items,
		TaxPrice:        s.Prices.Tax,
		ShippingPrice:   s.Prices.Shipping,
		TotalPrice:      s.Prices.Total,
		Status:          int(s.Status),
		IsPaid:          s.IsPaid,
		PaidAt:          s.PaidAt,
		PaymentResult:   receipt,
		IsDelivered:     s.IsDelivered,
		DeliveredAt:     s.DeliveredAt,
		CreatedAt:       s.CreatedAt,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	owner, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, item := range dto.Items {
		items = append(items, order.Item(item))
	}

	var receipt *order.PaymentResult
	if dto.PaymentResult != nil {
		r := order.PaymentResult(*dto.PaymentResult)
		receipt = &r
	}

	return order.RestoreOrder(order.Snapshot{
		ID:              id,
		OwnerID:         owner,
		Items:           items,
		ShippingAddress: order.ShippingAddress(dto.ShippingAddress),
		PaymentMethod:   dto.PaymentMethod,
		Prices: order.Prices{
			Items:    dto.ItemsPrice,
			Tax:      dto.TaxPrice,
			Shipping: dto.ShippingPrice,
			Total:    dto.TotalPrice,
		},
		Status:        order.Status(dto.Status),
		IsPaid:        dto.IsPaid,
		PaidAt:        dto.PaidAt,
		PaymentResult: receipt,
		IsDelivered:   dto.IsDelivered,
		DeliveredAt:   dto.DeliveredAt,
		CreatedAt:     dto.CreatedAt,
	})
}
