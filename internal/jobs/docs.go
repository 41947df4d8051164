// Package jobs provides scheduled background tasks for the orders service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. OrderReportJob - Runs every minute to log how many orders were placed today
//
// # Usage
//
//	job := jobs.NewOrderReportJob(getOrdersByDateHandler, logger)
//	if err := job.Start(); err != nil {
//		log.Fatal("Failed to start job:", err)
//	}
//	defer job.Stop()
//
// # Error Handling
//
// Report failures are logged and retried on the next tick; they never stop
// the scheduler.
package jobs
