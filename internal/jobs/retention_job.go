package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"shop/internal/core/application/usecases/commands"
	"shop/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
)

const DefaultRetentionSchedule = "@every 24h"

// Purger runs one retention pass.
type Purger interface {
	Handle(ctx context.Context, cmd commands.PurgeExpiredRecordsCommand) (commands.PurgeResult, error)
}

// RetentionJob purges expired orders and notifications once on Start and then on
// every schedule tick. A failed sweep is logged and counted; the schedule keeps running.
type RetentionJob struct {
	handler  Purger
	cmd      commands.PurgeExpiredRecordsCommand
	schedule cron.Schedule
	expr     string
	cron     *cron.Cron
	metrics  *metrics.Metrics
	logger   *slog.Logger

	running  sync.Mutex
	inflight sync.WaitGroup
	stop     context.CancelFunc
}

// NewRetentionJob validates cmd and the cron expression. expr accepts the standard
// five-field format and descriptors such as "@every 24h". A panic inside a pass is
// turned into a failed pass for both kinds; the schedule keeps running.
func NewRetentionJob(
	handler Purger,
	cmd commands.PurgeExpiredRecordsCommand,
	expr string,
	m *metrics.Metrics,
	logger *slog.Logger,
) (*RetentionJob, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	schedule, err := cron.ParseStandard(expr)
	if err != nil {
		return nil, err
	}

	panicLogger := cron.PrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelError))

	return &RetentionJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		expr:     expr,
		cron:     cron.New(cron.WithLocation(time.UTC), cron.WithChain(cron.Recover(panicLogger))),
		metrics:  m,
		logger:   logger.With("component", "retention_job"),
	}, nil
}

// Start runs one pass in the background right away and schedules the rest.
func (j *RetentionJob) Start() error {
	ctx, cancel := context.WithCancel(context.Background())
	j.stop = cancel

	j.cron.Schedule(j.schedule, cron.FuncJob(func() {
		j.trigger(ctx)
	}))
	j.cron.Start()

	j.inflight.Add(1)
	go func() {
		defer j.inflight.Done()
		j.trigger(ctx)
	}()

	j.logger.InfoContext(ctx, "Retention job started", "schedule", j.expr)
	return nil
}

// Stop halts the schedule and waits for a pass in progress to finish.
func (j *RetentionJob) Stop() {
	<-j.cron.Stop().Done()
	j.inflight.Wait()
	if j.stop != nil {
		j.stop()
	}
	j.logger.InfoContext(context.Background(), "Retention job stopped")
}

func (j *RetentionJob) trigger(ctx context.Context) {
	if !j.running.TryLock() {
		j.logger.WarnContext(ctx, "Retention pass skipped, previous pass still running")
		return
	}
	defer j.running.Unlock()

	_, _ = j.RunOnce(ctx)
}

// RunOnce performs a single retention pass synchronously.
func (j *RetentionJob) RunOnce(ctx context.Context) (commands.PurgeResult, error) {
	result, err := j.purge(ctx)

	j.record(ctx, metrics.KindOrders, result.OrdersDeleted, result.OrderSweepErr)
	j.record(ctx, metrics.KindNotifications, result.NotificationsDeleted, result.NotificationSweepErr)

	if err != nil && result.OrderSweepErr == nil && result.NotificationSweepErr == nil {
		j.logger.ErrorContext(ctx, "Retention pass failed", "error", err)
	}

	return result, err
}

func (j *RetentionJob) purge(ctx context.Context) (result commands.PurgeResult, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("retention pass panicked: %v", r)
			result = commands.PurgeResult{OrderSweepErr: err, NotificationSweepErr: err}
		}
	}()

	return j.handler.Handle(ctx, j.cmd)
}

func (j *RetentionJob) record(ctx context.Context, kind string, deleted int64, err error) {
	if err != nil {
		j.metrics.RetentionFailures.WithLabelValues(kind).Inc()
		j.logger.ErrorContext(ctx, "Retention sweep failed", "kind", kind, "error", err)
		return
	}

	j.metrics.RetentionDeleted.WithLabelValues(kind).Add(float64(deleted))
	j.logger.InfoContext(ctx, "Retention sweep finished", "kind", kind, "deleted", deleted)
}
