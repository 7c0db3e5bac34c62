package jobs

import (
	"context"
	"log/slog"

	"amenade/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// TripActivationJob manages the scheduled activation of due trips.
// Runs every minute to move posted trips past their departure into transit,
// carrying their matched packages along.
type TripActivationJob struct {
	handler commands.ActivateDueTripsCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewTripActivationJob creates a new job for activating due trips.
// Uses ActivateDueTripsCommandHandler to sweep departed trips every minute.
func NewTripActivationJob(handler commands.ActivateDueTripsCommandHandler, logger *slog.Logger) *TripActivationJob {
	return &TripActivationJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "trip_activation_job"),
	}
}

// Start begins the trip activation job to run every minute.
func (j *TripActivationJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewActivateDueTripsCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Trip activation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Trip activation job started (running every minute)")
	return nil
}

// Stop stops the trip activation job.
func (j *TripActivationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Trip activation job stopped")
}
