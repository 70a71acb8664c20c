package order

import (
	"fmt"
	"strings"

	"shop/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	          ┌──────── live ────────┐
//	          │ Pending              │
//	          │ Processing  (any to  │ ──> Delivered
//	          │ Shipped      any)    │
//	          └──────────────────────┘
//
// An admin may move an order between any of the live statuses (Pending, Processing,
// Shipped), backwards included, or on to Delivered. Delivered is final except for
// cancellation. Any state may be left through cancellation, which deletes the order
// instead of storing Cancelled.
type Status int

const (
	Unknown Status = iota
	Pending
	Processing
	Shipped
	Delivered
	// Cancelled is a logical target only. It is never persisted.
	Cancelled
)

const (
	reasonAlreadyDelivered = "Order is already delivered"
	reasonDeliveredIsFinal = "Cannot change the status of a delivered order"
	reasonOwnerCancel      = "Cannot cancel an order that is already being processed or shipped"
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Shipped:    "Shipped",
		Delivered:  "Delivered",
		Cancelled:  "Cancelled",
	}
}

// ParseStatus maps a status name, case-insensitively, to its Status.
func ParseStatus(name string) (Status, error) {
	for status, str := range getStatusStrings() {
		if status != Unknown && strings.EqualFold(str, strings.TrimSpace(name)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", name))
}

// Validate accepts every status a caller may request, Cancelled included.
func (s Status) Validate() error {
	if s < Pending || s > Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// ValidatePersistable accepts only the statuses a stored order may carry.
func (s Status) ValidatePersistable() error {
	if err := s.Validate(); err != nil {
		return err
	}
	if s == Cancelled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%s orders are deleted, not stored", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

func (s Status) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

func (s *Status) UnmarshalText(text []byte) error {
	parsed, err := ParseStatus(string(text))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Deliver transitions to Delivered from any live status.
func (s Status) Deliver() (Status, error) {
	if err := s.ValidatePersistable(); err != nil {
		return Unknown, err
	}
	if s == Delivered {
		return Unknown, errs.NewInvalidStateError(reasonAlreadyDelivered)
	}
	return Delivered, nil
}

// MoveTo validates an administrative move to target. Cancelled is rejected here since
// cancellation removes the order rather than changing its status.
func (s Status) MoveTo(target Status) (Status, error) {
	if err := target.ValidatePersistable(); err != nil {
		return Unknown, err
	}
	if s == Delivered && target != Delivered {
		return Unknown, errs.NewInvalidStateError(reasonDeliveredIsFinal)
	}
	return target, nil
}

// ValidateOwnerCancel allows an owner to cancel only orders nobody has started working on.
func (s Status) ValidateOwnerCancel() error {
	if s != Pending {
		return errs.NewInvalidStateError(reasonOwnerCancel)
	}
	return nil
}
