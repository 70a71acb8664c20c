package dispatch

import (
	"errors"
	"sort"
)

// Report describes what one event delivery did on each channel.
type Report struct {
	Recipients int
	Delivered  []string
	Skipped    []string
	Failures   map[string]error
}

func newReport() Report {
	return Report{Failures: map[string]error{}}
}

func (r *Report) delivered(channel string) {
	r.Delivered = append(r.Delivered, channel)
}

func (r *Report) skipped(channel string) {
	r.Skipped = append(r.Skipped, channel)
}

func (r *Report) failed(channel string, err error) {
	r.Failures[channel] = err
}

// Err joins the channel failures in channel order, or returns nil.
func (r Report) Err() error {
	if len(r.Failures) == 0 {
		return nil
	}

	channels := make([]string, 0, len(r.Failures))
	for channel := range r.Failures {
		channels = append(channels, channel)
	}
	sort.Strings(channels)

	result := make([]error, 0, len(channels))
	for _, channel := range channels {
		result = append(result, r.Failures[channel])
	}
	return errors.Join(result...)
}
