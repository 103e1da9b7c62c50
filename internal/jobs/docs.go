// Package jobs provides scheduled background tasks of the back office.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and only call command handlers.
//
// # Available Jobs
//
// 1. OrderBoardRefreshJob - recomputes the per-status order counts of every
// establishment and stores them in the board cache, so the dashboard read is a
// cache hit most of the time.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(refreshBoardsHandler, "@every 10s", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules accept the six-field cron syntax (seconds first) and descriptors such
// as "@every 10s". A run that is still going when the next one is due makes the
// next one skip.
//
// # Error Handling
//
// A failed refresh is logged and retried on the next tick. Stale boards expire
// from the cache on their own.
package jobs
