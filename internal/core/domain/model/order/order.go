package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

var (
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
	ErrOrderHasNoItems       = errs.NewValueIsRequiredError("order items")
)

const reasonAlreadyPaid = "Order is already paid"

// Order is the aggregate root of the purchase lifecycle.
//
// Invariants:
//   - id, owner, items, shipping address, payment method, prices and createdAt never change
//   - items is never empty
//   - isDelivered implies status == Delivered and deliveredAt != nil
//   - paidAt != nil exactly when isPaid
//   - status is never Cancelled; cancelled orders are deleted
type Order struct {
	id              kernel.UUID
	owner           kernel.UUID
	items           []Item
	shippingAddress ShippingAddress
	paymentMethod   string
	prices          Prices

	status        Status
	isPaid        bool
	paidAt        *time.Time
	paymentResult *PaymentResult
	isDelivered   bool
	deliveredAt   *time.Time
	createdAt     time.Time

	isConstructed bool
}

// Snapshot is the full stored state of an order.
type Snapshot struct {
	ID              kernel.UUID
	OwnerID         kernel.UUID
	Items           []Item
	ShippingAddress ShippingAddress
	PaymentMethod   string
	Prices          Prices
	Status          Status
	IsPaid          bool
	PaidAt          *time.Time
	PaymentResult   *PaymentResult
	IsDelivered     bool
	DeliveredAt     *time.Time
	CreatedAt       time.Time
}

// NewOrder places a new order: Pending, unpaid and undelivered.
func NewOrder(
	id, owner kernel.UUID,
	items []Item,
	address ShippingAddress,
	paymentMethod string,
	prices Prices,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwner(owner),
		o.setItems(items),
		o.setShippingAddress(address),
		o.setPaymentMethod(paymentMethod),
		o.setPrices(prices),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds an order from storage and rejects state that breaks the invariants.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		status:        s.Status,
		isPaid:        s.IsPaid,
		paidAt:        copyTime(s.PaidAt),
		isDelivered:   s.IsDelivered,
		deliveredAt:   copyTime(s.DeliveredAt),
		createdAt:     s.CreatedAt,
		isConstructed: true,
	}
	if s.PaymentResult != nil {
		receipt := *s.PaymentResult
		o.paymentResult = &receipt
	}

	if err := errors.Join(
		o.setID(s.ID),
		o.setOwner(s.OwnerID),
		o.setItems(s.Items),
		o.setShippingAddress(s.ShippingAddress),
		o.setPaymentMethod(s.PaymentMethod),
		o.setPrices(s.Prices),
		s.Status.ValidatePersistable(),
		o.validateFlags(),
	); err != nil {
		return nil, err
	}

	return o, nil
}

func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.owner.IsEqual(userID)
}

func (o *Order) ID() kernel.UUID                  { return o.id }
func (o *Order) Owner() kernel.UUID               { return o.owner }
func (o *Order) Items() []Item                    { return append([]Item(nil), o.items...) }
func (o *Order) ShippingAddress() ShippingAddress { return o.shippingAddress }
func (o *Order) PaymentMethod() string            { return o.paymentMethod }
func (o *Order) Prices() Prices                   { return o.prices }
func (o *Order) Status() Status                   { return o.status }
func (o *Order) IsPaid() bool                     { return o.isPaid }
func (o *Order) PaidAt() *time.Time               { return copyTime(o.paidAt) }
func (o *Order) IsDelivered() bool                { return o.isDelivered }
func (o *Order) DeliveredAt() *time.Time          { return copyTime(o.deliveredAt) }
func (o *Order) CreatedAt() time.Time             { return o.createdAt }

func (o *Order) PaymentResult() *PaymentResult {
	if o.paymentResult == nil {
		return nil
	}
	receipt := *o.paymentResult
	return &receipt
}

// Snapshot exports the order state for persistence.
func (o *Order) Snapshot() Snapshot {
	return Snapshot{
		ID:              o.id,
		OwnerID:         o.owner,
		Items:           o.Items(),
		ShippingAddress: o.shippingAddress,
		PaymentMethod:   o.paymentMethod,
		Prices:          o.prices,
		Status:          o.status,
		IsPaid:          o.isPaid,
		PaidAt:          o.PaidAt(),
		PaymentResult:   o.PaymentResult(),
		IsDelivered:     o.isDelivered,
		DeliveredAt:     o.DeliveredAt(),
		CreatedAt:       o.createdAt,
	}
}

// Pay records the caller-supplied receipt. The receipt is not verified.
func (o *Order) Pay(receipt PaymentResult, now time.Time) error {
	if o.isPaid {
		return errs.NewInvalidStateError(reasonAlreadyPaid)
	}

	o.isPaid = true
	o.paidAt = &now
	o.paymentResult = &receipt
	return nil
}

// Deliver marks the order delivered.
func (o *Order) Deliver(now time.Time) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.isDelivered = true
	o.deliveredAt = &now
	return nil
}

// ChangeStatus applies an administrative status move. It reports false when target
// equals the current status, in which case nothing changes.
func (o *Order) ChangeStatus(target Status, now time.Time) (bool, error) {
	newStatus, err := o.status.MoveTo(target)
	if err != nil {
		return false, err
	}
	if newStatus == o.status {
		return false, nil
	}

	if newStatus == Delivered {
		return true, o.Deliver(now)
	}
	o.status = newStatus
	return true, nil
}

// SetPaid overrides the paid flag out of band. The stored receipt is kept either way.
func (o *Order) SetPaid(paid bool, now time.Time) bool {
	if paid == o.isPaid {
		return false
	}

	o.isPaid = paid
	if paid {
		if o.paidAt == nil {
			o.paidAt = &now
		}
	} else {
		o.paidAt = nil
	}
	return true
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwner(owner kernel.UUID) error {
	if err := owner.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("order owner", err)
	}
	o.owner = owner
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) == 0 {
		return ErrOrderHasNoItems
	}

	var result []error
	for i, item := range items {
		if err := item.Validate(); err != nil {
			result = append(result, fmt.Errorf("item %d: %w", i, err))
		}
	}
	if err := errors.Join(result...); err != nil {
		return err
	}

	o.items = append([]Item(nil), items...)
	return nil
}

func (o *Order) setShippingAddress(address ShippingAddress) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.shippingAddress = address
	return nil
}

func (o *Order) setPaymentMethod(method string) error {
	if strings.TrimSpace(method) == "" {
		return errs.NewValueIsRequiredError("payment method")
	}
	o.paymentMethod = method
	return nil
}

func (o *Order) setPrices(prices Prices) error {
	if err := prices.Validate(); err != nil {
		return err
	}
	o.prices = prices
	return nil
}

func (o *Order) validateFlags() error {
	var result []error
	if o.isDelivered && (o.status != Delivered || o.deliveredAt == nil) {
		result = append(result, errs.NewValueIsInvalidErrorWithCause(
			"delivery state is invalid",
			fmt.Errorf("delivered order has status %s", o.status),
		))
	}
	if o.isPaid != (o.paidAt != nil) {
		result = append(result, errs.NewValueIsInvalidErrorWithCause(
			"payment state is invalid",
			fmt.Errorf("isPaid is %t but paidAt set is %t", o.isPaid, o.paidAt != nil),
		))
	}
	return errors.Join(result...)
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
