// Package jobs provides scheduled background tasks for the marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required by the delivery workflow.
//
// # Available Jobs
//
// 1. TripActivationJob - Runs every minute to activate posted trips whose
// departure time has passed and move their matched packages into transit
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(activateDueTripsHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The activation job uses the cron expression "* * * * *", running once a
// minute. Departure times have minute granularity, so a tighter schedule
// would only add load.
//
// # Error Handling
//
// Each trip is activated in its own transaction; one failing trip does not
// block the rest of the sweep. Collected errors are logged, never fatal.
package jobs
