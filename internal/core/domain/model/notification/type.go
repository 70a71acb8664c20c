package notification

import (
	"fmt"

	"shop/internal/pkg/errs"
)

type Type string

const (
	OrderPlaced       Type = "ORDER_PLACED"
	OrderStatusUpdate Type = "ORDER_STATUS_UPDATE"
	Promotional       Type = "PROMOTIONAL"
	System            Type = "SYSTEM"
	SupportRequest    Type = "SUPPORT_REQUEST"
)

func (t Type) Validate() error {
	switch t {
	case OrderPlaced, OrderStatusUpdate, Promotional, System, SupportRequest:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("notification type is invalid", fmt.Errorf("%q is not a valid type", string(t)))
	}
}

// IsBroadcastable reports whether administrators may send this type to every customer.
func (t Type) IsBroadcastable() bool {
	return t == Promotional || t == System
}

func (t Type) String() string {
	return string(t)
}
