// Package jobs provides the scheduled background tasks of the delivery
// marketplace.
//
// Two mechanisms live here:
//
//  1. LocationRefreshJob - a cron job (github.com/robfig/cron/v3) that
//     refreshes the position of every online courier, by default every five
//     seconds, and republishes it to the live location feed.
//  2. TransitScheduler - a one-shot timer per collected delivery that moves
//     it into transit a short while after the handoff scan.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(locationRefreshJob, transitScheduler)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// The transit scheduler is not cron driven; the HTTP collect handler calls
// Schedule directly after a successful handoff. JobManager only owns its
// shutdown.
//
// # Error handling
//
// The location refresh job logs every handler error, as a failed refresh
// points at a system issue. The transit scheduler treats not-found and
// invalid-state errors at fire time as expected races and skips them
// silently; timers pending at shutdown lapse without firing.
package jobs
