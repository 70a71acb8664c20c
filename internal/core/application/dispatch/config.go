package dispatch

import (
	"errors"

	"shop/internal/pkg/errs"
)

const (
	DefaultWorkers   = 4
	DefaultQueueSize = 256
)

type Config struct {
	Workers   int
	QueueSize int

	// AdminEmail receives mail for events whose Mail.To is empty.
	AdminEmail string

	// StreamTopic is the topic every dispatched event is published to. Empty disables the channel.
	StreamTopic string
}

func (c Config) Validate() error {
	var result []error
	if c.Workers <= 0 {
		result = append(result, errs.NewValueIsOutOfRangeError("workers", c.Workers, 1, "unbounded"))
	}
	if c.QueueSize <= 0 {
		result = append(result, errs.NewValueIsOutOfRangeError("queue size", c.QueueSize, 1, "unbounded"))
	}
	return errors.Join(result...)
}
