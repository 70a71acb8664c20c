package ports

import (
	"context"
)

// EmailSender delivers a single transactional email.
type EmailSender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type PushMessage struct {
	Token string         `json:"to"`
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Data  map[string]any `json:"data,omitempty"`
}

// PushTicket is the provider's per-message answer, in request order.
type PushTicket struct {
	ID      string `json:"id,omitempty"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

func (t PushTicket) IsOK() bool {
	return t.Status == "ok"
}

// PushSender submits push messages in provider-sized chunks. Callers only pass tokens
// accepted by ValidToken.
type PushSender interface {
	ValidToken(token string) bool
	SendBatch(ctx context.Context, messages []PushMessage) ([]PushTicket, error)
}

// EventPublisher writes an event to a stream topic.
type EventPublisher interface {
	PublishEvent(ctx context.Context, topic, key string, event any) error
}
