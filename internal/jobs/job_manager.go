package jobs

import (
	"fmt"
)

// JobManager coordinates the background machinery of the application: the
// periodic location refresh and the deferred transit scheduler.
type JobManager struct {
	locationRefreshJob *LocationRefreshJob
	transitScheduler   *TransitScheduler
}

// NewJobManager creates a job manager over the given jobs.
func NewJobManager(
	locationRefreshJob *LocationRefreshJob,
	transitScheduler *TransitScheduler,
) *JobManager {
	return &JobManager{
		locationRefreshJob: locationRefreshJob,
		transitScheduler:   transitScheduler,
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.locationRefreshJob.Start(); err != nil {
		return fmt.Errorf("failed to start location refresh job: %w", err)
	}

	return nil
}

// StopAll stops the scheduled jobs and cancels pending transit timers.
func (jm *JobManager) StopAll() {
	jm.locationRefreshJob.Stop()
	jm.transitScheduler.Stop()
}
