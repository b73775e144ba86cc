// Package jobs provides scheduled background tasks for the harvest service.
//
// Jobs run on github.com/robfig/cron/v3 with a seconds field in the schedule.
//
// # Available Jobs
//
// 1. BacklogReportJob - logs how many jobs are still open for labour and for
// transport, using the same query providers use to browse open jobs.
//
// # Usage
//
//	jobManager := jobs.NewJobManager(listOpenJobsHandler, "0 * * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed report is logged and the next run proceeds as scheduled. A schedule
// that does not parse fails StartAll.
package jobs
