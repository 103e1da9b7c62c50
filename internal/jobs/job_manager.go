package jobs

import (
	"fmt"
	"log/slog"

	"backoffice/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderBoardRefreshJob *OrderBoardRefreshJob
}

// NewJobManager wires the jobs to their command handlers.
func NewJobManager(
	refreshBoardsHandler commands.RefreshOrderBoardsCommandHandler,
	boardSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderBoardRefreshJob: NewOrderBoardRefreshJob(refreshBoardsHandler, boardSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderBoardRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start order board refresh job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderBoardRefreshJob.Stop()
}
