// Package kafka publishes events to Kafka topics with segmentio/kafka-go.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

var ErrDisabled = errors.New("kafka disabled")

// ParseBrokers splits a comma-separated broker list, dropping blanks.
func ParseBrokers(brokersCSV string) []string {
	brokers := []string{}
	for _, b := range strings.Split(brokersCSV, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Publisher implements ports.EventPublisher. The topic travels on each message, so one
// writer serves every topic.
type Publisher struct {
	writer messageWriter
	now    func() time.Time
}

// NewPublisher returns ErrDisabled when no brokers are given.
func NewPublisher(brokers []string) (*Publisher, error) {
	if len(brokers) == 0 {
		return nil, ErrDisabled
	}

	return &Publisher{
		writer: &kafka.Writer{
			Addr:                   kafka.TCP(brokers...),
			Balancer:               &kafka.Hash{},
			RequiredAcks:           kafka.RequireOne,
			AllowAutoTopicCreation: true,
		},
		now: time.Now,
	}, nil
}

func (p *Publisher) PublishEvent(ctx context.Context, topic, key string, event any) error {
	if topic == "" {
		return errors.New("kafka topic is required")
	}

	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  p.now().UTC(),
	})
}

func (p *Publisher) Close() error {
	return p.writer.Close()
}
