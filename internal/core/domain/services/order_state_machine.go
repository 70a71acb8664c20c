package services

import (
	"fmt"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/core/domain/model/notification"
	"shop/internal/core/domain/model/order"
	"shop/internal/pkg/errs"
)

// Outcome is the result of a transition. Deleted asks the caller to remove the order
// instead of updating it. Event is nil for silent transitions.
type Outcome struct {
	Order   *order.Order
	Deleted bool
	Event   *notification.Event
}

// PlaceOrderRequest carries the caller input for a new order.
type PlaceOrderRequest struct {
	Items           []order.Item
	ShippingAddress order.ShippingAddress
	PaymentMethod   string
	Prices          order.Prices
}

// OrderStateMachine owns the order lifecycle rules:
//
//	| transition | actor          | guard                 | notifies         |
//	|------------|----------------|-----------------------|------------------|
//	| place      | owner          | items well formed     | admins (+ mail)  |
//	| pay        | owner          | not paid yet          | nobody           |
//	| deliver    | owner or admin | not delivered yet     | admins if owner  |
//	| set status | admin          | delivered is final    | owner            |
//	| set paid   | admin          |                       | nobody           |
//	| cancel     | owner or admin | owner: Pending only   | the other side   |
type OrderStateMachine struct {
	clock kernel.Clock
}

// NewOrderStateMachine returns a state machine stamping transitions with clock.
func NewOrderStateMachine(clock kernel.Clock) OrderStateMachine {
	return OrderStateMachine{clock: clock}
}

func (m OrderStateMachine) Place(actor kernel.Actor, id kernel.UUID, req PlaceOrderRequest) (Outcome, error) {
	if err := actor.Validate(); err != nil {
		return Outcome{}, errs.NewUnauthorizedErrorWithCause("place order", err)
	}

	o, err := order.NewOrder(id, actor.ID, req.Items, req.ShippingAddress, req.PaymentMethod, req.Prices, m.clock.Now())
	if err != nil {
		return Outcome{}, err
	}

	total := o.Prices().Total.StringFixed(2)
	ev, err := notification.NewEvent(
		notification.ToAdmins(),
		"New Order",
		fmt.Sprintf("New order #%s placed by %s for %s", o.ID(), actor.Name, total),
		notification.OrderPlaced,
		ptr(o.ID()),
	)
	if err != nil {
		return Outcome{}, err
	}
	ev = ev.WithMail("",
		fmt.Sprintf("New Order Placed - #%s", o.ID()),
		fmt.Sprintf("Customer %s <%s> placed order #%s with %d item(s), total %s, paid by %s.",
			actor.Name, actor.Email, o.ID(), len(o.Items()), total, o.PaymentMethod()),
	)

	return Outcome{Order: o, Event: &ev}, nil
}

// Pay records the owner's payment receipt. Receipts are not verified.
func (m OrderStateMachine) Pay(actor kernel.Actor, o *order.Order, receipt order.PaymentResult) (Outcome, error) {
	if err := o.Validate(); err != nil {
		return Outcome{}, err
	}
	if !o.IsOwnedBy(actor.ID) {
		return Outcome{}, errs.NewUnauthorizedError("pay for another user's order")
	}

	if err := o.Pay(receipt, m.clock.Now()); err != nil {
		return Outcome{}, err
	}

	return Outcome{Order: o}, nil
}

func (m OrderStateMachine) MarkDelivered(actor kernel.Actor, o *order.Order) (Outcome, error) {
	if err := o.Validate(); err != nil {
		return Outcome{}, err
	}
	if !actor.IsAdmin && !o.IsOwnedBy(actor.ID) {
		return Outcome{}, errs.NewUnauthorizedError("mark another user's order as delivered")
	}

	if err := o.Deliver(m.clock.Now()); err != nil {
		return Outcome{}, err
	}

	if actor.IsAdmin {
		return Outcome{Order: o}, nil
	}

	ev, err := notification.NewEvent(
		notification.ToAdmins(),
		"Order Delivered",
		fmt.Sprintf("Order #%s was marked as delivered by %s", o.ID(), actor.Name),
		notification.OrderStatusUpdate,
		ptr(o.ID()),
	)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Order: o, Event: &ev}, nil
}

// SetStatus moves the order to target. Cancelled deletes the order.
// Setting the current status again changes nothing and notifies nobody.
func (m OrderStateMachine) SetStatus(actor kernel.Actor, o *order.Order, target order.Status) (Outcome, error) {
	if err := o.Validate(); err != nil {
		return Outcome{}, err
	}
	if !actor.IsAdmin {
		return Outcome{}, errs.NewUnauthorizedError("change order status")
	}
	if err := target.Validate(); err != nil {
		return Outcome{}, err
	}

	if target == order.Cancelled {
		return m.removedByAdmin(o)
	}

	changed, err := o.ChangeStatus(target, m.clock.Now())
	if err != nil {
		return Outcome{}, err
	}
	if !changed {
		return Outcome{Order: o}, nil
	}

	ev, err := notification.NewEvent(
		notification.ToUsers(o.Owner()),
		"Order Status Updated",
		fmt.Sprintf("Your order #%s is now %s", o.ID(), o.Status()),
		notification.OrderStatusUpdate,
		ptr(o.ID()),
	)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Order: o, Event: &ev}, nil
}

func (m OrderStateMachine) SetPaid(actor kernel.Actor, o *order.Order, paid bool) (Outcome, error) {
	if err := o.Validate(); err != nil {
		return Outcome{}, err
	}
	if !actor.IsAdmin {
		return Outcome{}, errs.NewUnauthorizedError("change order payment flag")
	}

	o.SetPaid(paid, m.clock.Now())
	return Outcome{Order: o}, nil
}

// Cancel deletes the order. Administrators may cancel at any status, owners only while Pending.
func (m OrderStateMachine) Cancel(actor kernel.Actor, o *order.Order) (Outcome, error) {
	if err := o.Validate(); err != nil {
		return Outcome{}, err
	}

	if actor.IsAdmin {
		return m.removedByAdmin(o)
	}
	if !o.IsOwnedBy(actor.ID) {
		return Outcome{}, errs.NewUnauthorizedError("cancel another user's order")
	}
	if err := o.Status().ValidateOwnerCancel(); err != nil {
		return Outcome{}, err
	}

	ev, err := notification.NewEvent(
		notification.ToAdmins(),
		"Order Cancelled",
		fmt.Sprintf("Order #%s was cancelled by %s", o.ID(), actor.Name),
		notification.OrderStatusUpdate,
		ptr(o.ID()),
	)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Order: o, Deleted: true, Event: &ev}, nil
}

func (m OrderStateMachine) removedByAdmin(o *order.Order) (Outcome, error) {
	ev, err := notification.NewEvent(
		notification.ToUsers(o.Owner()),
		"Order Cancelled",
		fmt.Sprintf("Your order #%s has been cancelled and removed by the store", o.ID()),
		notification.OrderStatusUpdate,
		ptr(o.ID()),
	)
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{Order: o, Deleted: true, Event: &ev}, nil
}

func ptr[T any](v T) *T {
	return &v
}
