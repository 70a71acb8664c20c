package jobs

import (
	"context"
	"errors"
	"fmt"
)

// Worker is a background component with an explicit lifecycle.
type Worker interface {
	Start() error
	Stop(ctx context.Context) error
}

// JobManager starts and stops the background machinery as one unit: the notification
// dispatcher workers and the retention schedule.
type JobManager struct {
	dispatcher   Worker
	retentionJob *RetentionJob
}

// NewJobManager wires the dispatcher and the retention job. Neither is started until
// StartAll.
func NewJobManager(dispatcher Worker, retentionJob *RetentionJob) *JobManager {
	return &JobManager{
		dispatcher:   dispatcher,
		retentionJob: retentionJob,
	}
}

// StartAll starts the dispatcher first so events produced by early requests are served.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatcher.Start(); err != nil {
		return fmt.Errorf("failed to start notification dispatcher: %w", err)
	}

	if err := jm.retentionJob.Start(); err != nil {
		// Stop already started workers if this one fails
		_ = jm.dispatcher.Stop(context.Background())
		return fmt.Errorf("failed to start retention job: %w", err)
	}

	return nil
}

// StopAll stops the retention schedule, then drains the dispatcher queue until ctx is done.
func (jm *JobManager) StopAll(ctx context.Context) error {
	jm.retentionJob.Stop()

	if err := jm.dispatcher.Stop(ctx); err != nil {
		return errors.Join(errors.New("notification dispatcher did not drain"), err)
	}

	return nil
}
