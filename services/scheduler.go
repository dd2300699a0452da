// services/scheduler.go
package services

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

func (s *AIPerformanceService) StartReconcileScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	// Hourly: recompute AI summaries from raw sessions to bound the
	// floating-point drift of the incremental running mean
	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Hour),
		gocron.NewTask(func() {
			if err := s.ReconcileSummaries(); err != nil {
				log.Printf("[Scheduler] AI summary reconcile failed: %v", err)
			}
		}),
	)
}
