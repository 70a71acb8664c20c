// Package push delivers push notifications through the Expo push HTTP API.
package push

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"shop/internal/core/domain/model/user"
	"shop/internal/core/ports"

	"github.com/go-resty/resty/v2"
)

const (
	DefaultEndpoint = "https://exp.host/--/api/v2/push/send"

	// maxChunk is the provider's limit of messages per request.
	maxChunk = 100
)

type expoMessage struct {
	To    string         `json:"to"`
	Title string         `json:"title"`
	Body  string         `json:"body"`
	Sound string         `json:"sound"`
	Data  map[string]any `json:"data,omitempty"`
}

type expoResponse struct {
	Data   []ports.PushTicket `json:"data"`
	Errors []struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"errors"`
}

// ExpoSender implements ports.PushSender.
type ExpoSender struct {
	endpoint string
	client   *resty.Client
}

// NewExpoSender builds a sender posting to endpoint, or to the public Expo API when
// endpoint is empty. timeout bounds each chunk request.
func NewExpoSender(endpoint string, timeout time.Duration) *ExpoSender {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	client := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/json")

	return &ExpoSender{endpoint: endpoint, client: client}
}

func (s *ExpoSender) ValidToken(token string) bool {
	return user.IsValidPushToken(token)
}

// SendBatch posts the messages in chunks and returns one ticket per message, in order.
// The first failing chunk aborts the remaining ones.
func (s *ExpoSender) SendBatch(ctx context.Context, messages []ports.PushMessage) ([]ports.PushTicket, error) {
	tickets := make([]ports.PushTicket, 0, len(messages))

	for start := 0; start < len(messages); start += maxChunk {
		end := min(start+maxChunk, len(messages))

		chunk, err := s.send(ctx, messages[start:end])
		if err != nil {
			return tickets, err
		}
		tickets = append(tickets, chunk...)
	}

	return tickets, nil
}

func (s *ExpoSender) send(ctx context.Context, messages []ports.PushMessage) ([]ports.PushTicket, error) {
	payload := make([]expoMessage, 0, len(messages))
	for _, m := range messages {
		payload = append(payload, expoMessage{To: m.Token, Title: m.Title, Body: m.Body, Sound: "default", Data: m.Data})
	}

	resp, err := s.client.R().
		SetContext(ctx).
		SetBody(payload).
		Post(s.endpoint)
	if err != nil {
		return nil, fmt.Errorf("push request: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("push provider responded %d: %s", resp.StatusCode(), resp.String())
	}

	var decoded expoResponse
	if err = json.Unmarshal(resp.Body(), &decoded); err != nil {
		return nil, fmt.Errorf("decode push response: %w", err)
	}
	if len(decoded.Errors) > 0 {
		return nil, fmt.Errorf("push provider error %s: %s", decoded.Errors[0].Code, decoded.Errors[0].Message)
	}
	if len(decoded.Data) != len(messages) {
		return nil, fmt.Errorf("push provider returned %d tickets for %d messages", len(decoded.Data), len(messages))
	}

	return decoded.Data, nil
}
