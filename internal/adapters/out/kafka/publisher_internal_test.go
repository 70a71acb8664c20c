package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *recordingWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	w.messages = append(w.messages, msgs...)
	return w.err
}

func (w *recordingWriter) Close() error {
	w.closed = true
	return nil
}

func TestParseBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, ParseBrokers(" a:9092, ,b:9092,"))
	assert.Empty(t, ParseBrokers(""))
}

func TestNewPublisher_NoBrokers_IsDisabled(t *testing.T) {
	_, err := NewPublisher(nil)
	require.ErrorIs(t, err, ErrDisabled)
}

func TestPublisher_PublishEvent_WritesJSONWithKeyAndTopic(t *testing.T) {
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	w := &recordingWriter{}
	p := &Publisher{writer: w, now: func() time.Time { return at }}

	err := p.PublishEvent(t.Context(), "shop.notifications", "event-1", map[string]string{"title": "New Order"})

	require.NoError(t, err)
	require.Len(t, w.messages, 1)
	msg := w.messages[0]
	assert.Equal(t, "shop.notifications", msg.Topic)
	assert.Equal(t, []byte("event-1"), msg.Key)
	assert.Equal(t, at, msg.Time)

	var decoded map[string]string
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, "New Order", decoded["title"])

	require.NoError(t, p.Close())
	assert.True(t, w.closed)
}

func TestPublisher_PublishEvent_Errors(t *testing.T) {
	p := &Publisher{writer: &recordingWriter{err: errors.New("leader not available")}, now: time.Now}

	require.EqualError(t, p.PublishEvent(t.Context(), "topic", "k", 1), "leader not available")
	require.Error(t, p.PublishEvent(t.Context(), "", "k", 1))
	require.Error(t, p.PublishEvent(t.Context(), "topic", "k", make(chan int)))
}
