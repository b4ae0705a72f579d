package jobs

import (
	"context"
	"log/slog"

	"deliveryconnect/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// defaultLocationRefreshSpec samples courier positions every five seconds.
const defaultLocationRefreshSpec = "*/5 * * * * *"

// LocationRefreshJob periodically refreshes the positions of online couriers.
// Each run samples the position provider, persists the new coordinates and
// republishes them to the live location feed.
type LocationRefreshJob struct {
	handler commands.RefreshCourierLocationsCommandHandler
	cron    *cron.Cron
	spec    string
	logger  *slog.Logger
}

// NewLocationRefreshJob creates a job that refreshes courier locations on the
// given cron spec. An empty spec falls back to the five second default.
func NewLocationRefreshJob(
	handler commands.RefreshCourierLocationsCommandHandler,
	spec string,
	logger *slog.Logger,
) *LocationRefreshJob {
	if spec == "" {
		spec = defaultLocationRefreshSpec
	}

	return &LocationRefreshJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		spec:    spec,
		logger:  logger.With("component", "location_refresh_job"),
	}
}

// Start begins the periodic location refresh.
func (j *LocationRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.spec, func() {
		ctx := context.Background()
		cmd := commands.NewRefreshCourierLocationsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Location refresh job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Location refresh job started", "spec", j.spec)
	return nil
}

// Stop stops the location refresh job.
func (j *LocationRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Location refresh job stopped")
}
