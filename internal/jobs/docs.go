// Package jobs provides scheduled background tasks for the storefront.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. DailyPromotionJob - Sends the promotional campaign to opted-in subscribers
// on a daily schedule (noon by default).
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(sendDailyPromotionHandler, schedule, logger)
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
// The campaign job uses the standard five-field cron format. An empty
// schedule falls back to DefaultDailyPromotionSchedule ("0 12 * * *").
//
// # Error Handling
//
// A campaign tick that fails is logged and retried on the next tick; an
// empty catalog is not an error, the handler skips the campaign for the day.
package jobs
