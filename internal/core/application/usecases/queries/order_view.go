package queries

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OwnerView identifies the customer who placed an order. Email is only filled where the
// caller may see it.
type OwnerView struct {
	ID    kernel.UUID `json:"_id"`
	Name  string      `json:"name"`
	Email string      `json:"email,omitempty"`
}

// OrderView is the read model returned by every order query.
type OrderView struct {
	ID              kernel.UUID           `json:"_id"`
	Owner           OwnerView             `json:"user"`
	Items           []order.Item          `json:"orderItems"`
	ShippingAddress order.ShippingAddress `json:"shippingAddress"`
	PaymentMethod   string                `json:"paymentMethod"`
	ItemsPrice      decimal.Decimal       `json:"itemsPrice"`
	TaxPrice        decimal.Decimal       `json:"taxPrice"`
	ShippingPrice   decimal.Decimal       `json:"shippingPrice"`
	TotalPrice      decimal.Decimal       `json:"totalPrice"`
	Status          order.Status          `json:"status"`
	IsPaid          bool                  `json:"isPaid"`
	PaidAt          *time.Time            `json:"paidAt,omitempty"`
	PaymentResult   *order.PaymentResult  `json:"paymentResult,omitempty"`
	IsDelivered     bool                  `json:"isDelivered"`
	DeliveredAt     *time.Time            `json:"deliveredAt,omitempty"`
	CreatedAt       time.Time             `json:"createdAt"`
}

const selectOrderViews = `
	SELECT
		o.id,
		o.user_id,
		COALESCE(u.name, ''),
		COALESCE(u.email, ''),
		o.items,
		o.shipping_address,
		o.shipping_city,
		o.shipping_postal_code,
		o.shipping_country,
		o.payment_method,
		o.items_price,
		o.tax_price,
		o.shipping_price,
		o.total_price,
		o.status,
		o.is_paid,
		o.paid_at,
		o.payment_result,
		o.is_delivered,
		o.delivered_at,
		o.created_at
	FROM orders o
	LEFT JOIN users u ON u.id = o.user_id`

func scanOrderViews(rows *sql.Rows) ([]OrderView, error) {
	views := make([]OrderView, 0)

	for rows.Next() {
		var (
			view          OrderView
			id, ownerID   uuid.UUID
			items         []byte
			paymentResult []byte
			status        int
		)

		err := rows.Scan(
			&id,
			&ownerID,
			&view.Owner.Name,
			&view.Owner.Email,
			&items,
			&view.ShippingAddress.Address,
			&view.ShippingAddress.City,
			&view.ShippingAddress.PostalCode,
			&view.ShippingAddress.Country,
			&view.PaymentMethod,
			&view.ItemsPrice,
			&view.TaxPrice,
			&view.ShippingPrice,
			&view.TotalPrice,
			&status,
			&view.IsPaid,
			&view.PaidAt,
			&paymentResult,
			&view.IsDelivered,
			&view.DeliveredAt,
			&view.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if view.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if view.Owner.ID, err = kernel.UUIDFromBytes(ownerID[:]); err != nil {
			return nil, err
		}
		view.Status = order.Status(status)

		if err := json.Unmarshal(items, &view.Items); err != nil {
			return nil, fmt.Errorf("order %s items: %w", view.ID, err)
		}
		if len(paymentResult) > 0 && string(paymentResult) != "null" {
			view.PaymentResult = new(order.PaymentResult)
			if err := json.Unmarshal(paymentResult, view.PaymentResult); err != nil {
				return nil, fmt.Errorf("order %s payment result: %w", view.ID, err)
			}
		}

		views = append(views, view)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return views, nil
}
