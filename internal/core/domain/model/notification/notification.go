package notification

import (
	"errors"
	"strings"
	"time"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

var ErrNotificationIsNotConstructed = errors.New("Notification must be created via NewNotification or RestoreNotification")

// Notification is one in-app message for one recipient. Rows are never shared between users.
type Notification struct {
	id        kernel.UUID
	user      kernel.UUID
	title     string
	message   string
	kind      Type
	isRead    bool
	orderID   *kernel.UUID
	createdAt time.Time

	isConstructed bool
}

// NewNotification creates an unread notification. All validation errors are
// returned together.
func NewNotification(
	id, user kernel.UUID,
	title, message string,
	kind Type,
	orderID *kernel.UUID,
	createdAt time.Time,
) (*Notification, error) {
	n := &Notification{createdAt: createdAt, isConstructed: true}

	if err := errors.Join(
		n.setID(id),
		n.setUser(user),
		n.setContent(title, message),
		n.setType(kind),
		n.setOrderID(orderID),
	); err != nil {
		return nil, err
	}

	return n, nil
}

// RestoreNotification rebuilds a stored notification.
func RestoreNotification(
	id, user kernel.UUID,
	title, message string,
	kind Type,
	isRead bool,
	orderID *kernel.UUID,
	createdAt time.Time,
) (*Notification, error) {
	n, err := NewNotification(id, user, title, message, kind, orderID, createdAt)
	if err != nil {
		return nil, err
	}
	n.isRead = isRead
	return n, nil
}

func (n *Notification) Validate() error {
	if n == nil || !n.isConstructed {
		return ErrNotificationIsNotConstructed
	}
	return nil
}

func (n *Notification) ID() kernel.UUID      { return n.id }
func (n *Notification) User() kernel.UUID    { return n.user }
func (n *Notification) Title() string        { return n.title }
func (n *Notification) Message() string      { return n.message }
func (n *Notification) Type() Type           { return n.kind }
func (n *Notification) IsRead() bool         { return n.isRead }
func (n *Notification) CreatedAt() time.Time { return n.createdAt }

func (n *Notification) OrderID() *kernel.UUID {
	if n.orderID == nil {
		return nil
	}
	id := *n.orderID
	return &id
}

func (n *Notification) IsOwnedBy(userID kernel.UUID) bool {
	return n.user.IsEqual(userID)
}

// SetRead toggles the read flag. Only the recipient may do so.
func (n *Notification) SetRead(actor kernel.Actor, read bool) error {
	if !n.IsOwnedBy(actor.ID) {
		return errs.NewUnauthorizedError("update another user's notification")
	}
	n.isRead = read
	return nil
}

func (n *Notification) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	n.id = id
	return nil
}

func (n *Notification) setUser(user kernel.UUID) error {
	if err := user.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("notification user", err)
	}
	n.user = user
	return nil
}

func (n *Notification) setContent(title, message string) error {
	var result []error
	if strings.TrimSpace(title) == "" {
		result = append(result, errs.NewValueIsRequiredError("notification title"))
	}
	if strings.TrimSpace(message) == "" {
		result = append(result, errs.NewValueIsRequiredError("notification message"))
	}
	if err := errors.Join(result...); err != nil {
		return err
	}
	n.title = title
	n.message = message
	return nil
}

func (n *Notification) setType(kind Type) error {
	if err := kind.Validate(); err != nil {
		return err
	}
	n.kind = kind
	return nil
}

func (n *Notification) setOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return err
	}
	id := *orderID
	n.orderID = &id
	return nil
}
