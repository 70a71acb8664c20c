package notification

import (
	"errors"
	"strings"

	"shop/internal/core/domain/model/kernel"
	"shop/internal/pkg/errs"
)

// RecipientSet names who receives an event. The sets are unioned and deduplicated on delivery.
type RecipientSet struct {
	UserIDs      []kernel.UUID `json:"userIds,omitempty"`
	AllAdmins    bool          `json:"allAdmins,omitempty"`
	AllCustomers bool          `json:"allCustomers,omitempty"`
}

func ToUsers(ids ...kernel.UUID) RecipientSet {
	return RecipientSet{UserIDs: ids}
}

func ToAdmins() RecipientSet {
	return RecipientSet{AllAdmins: true}
}

func ToCustomers() RecipientSet {
	return RecipientSet{AllCustomers: true}
}

func (r RecipientSet) IsEmpty() bool {
	return len(r.UserIDs) == 0 && !r.AllAdmins && !r.AllCustomers
}

// Mail designates the transactional email sent alongside an event.
// An empty To means the administrator mailbox.
type Mail struct {
	To      string `json:"to,omitempty"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Event is the unit of work handed to the dispatcher: one event, one fan-out.
type Event struct {
	ID         kernel.UUID  `json:"id"`
	Recipients RecipientSet `json:"recipients"`
	Title      string       `json:"title"`
	Message    string       `json:"message"`
	Type       Type         `json:"type"`
	OrderID    *kernel.UUID `json:"orderId,omitempty"`
	Mail       *Mail        `json:"mail,omitempty"`
}

// NewEvent assigns a fresh id and validates the event.
func NewEvent(recipients RecipientSet, title, message string, kind Type, orderID *kernel.UUID) (Event, error) {
	ev := Event{
		ID:         kernel.NewUUID(),
		Recipients: recipients,
		Title:      title,
		Message:    message,
		Type:       kind,
		OrderID:    orderID,
	}
	if err := ev.Validate(); err != nil {
		return Event{}, err
	}
	return ev, nil
}

// WithMail returns a copy of the event that also sends mail.
func (e Event) WithMail(to, subject, body string) Event {
	e.Mail = &Mail{To: to, Subject: subject, Body: body}
	return e
}

func (e Event) Validate() error {
	var result []error
	if e.Recipients.IsEmpty() {
		result = append(result, errs.NewValueIsRequiredError("event recipients"))
	}
	if strings.TrimSpace(e.Title) == "" {
		result = append(result, errs.NewValueIsRequiredError("event title"))
	}
	if strings.TrimSpace(e.Message) == "" {
		result = append(result, errs.NewValueIsRequiredError("event message"))
	}
	result = append(result, e.Type.Validate())
	return errors.Join(result...)
}
