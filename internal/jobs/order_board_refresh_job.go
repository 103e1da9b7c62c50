package jobs

import (
	"context"
	"log/slog"
	"time"

	"backoffice/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOrderBoardSchedule refreshes the boards every ten seconds.
const DefaultOrderBoardSchedule = "@every 10s"

type orderBoardRefresher interface {
	Handle(ctx context.Context, cmd commands.RefreshOrderBoardsCommand) (int, error)
}

// OrderBoardRefreshJob recomputes the status board of every establishment with
// orders and stores it in the board cache.
type OrderBoardRefreshJob struct {
	handler  orderBoardRefresher
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOrderBoardRefreshJob accepts any robfig/cron spec, seconds field included.
// Overlapping runs are skipped.
func NewOrderBoardRefreshJob(handler orderBoardRefresher, schedule string, logger *slog.Logger) *OrderBoardRefreshJob {
	if schedule == "" {
		schedule = DefaultOrderBoardSchedule
	}
	logger = logger.With("component", "order_board_refresh_job")

	return &OrderBoardRefreshJob{
		handler:  handler,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.SkipIfStillRunning(cron.DiscardLogger)),
		),
		logger: logger,
	}
}

func (j *OrderBoardRefreshJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.RunOnce); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order board refresh job started", "schedule", j.schedule)
	return nil
}

// RunOnce refreshes every board a single time.
func (j *OrderBoardRefreshJob) RunOnce() {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	refreshed, err := j.handler.Handle(ctx, commands.NewRefreshOrderBoardsCommand())
	if err != nil {
		j.logger.ErrorContext(ctx, "Order board refresh failed", "error", err, "refreshed", refreshed)
		return
	}
	j.logger.DebugContext(ctx, "Order boards refreshed", "refreshed", refreshed)
}

// Stop waits for a running refresh to finish.
func (j *OrderBoardRefreshJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Order board refresh job stopped")
}
