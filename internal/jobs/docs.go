// Package jobs provides scheduled background tasks for the coffee shop.
//
// Jobs are driven by github.com/robfig/cron/v3 with second-level schedules, so both
// "@every 30s" and six-field cron expressions such as "0 */5 * * * *" are accepted.
//
// # Available Jobs
//
// ShopReportJob - logs the current top spender on a schedule.
//
// # Usage
//
//	job, err := jobs.NewShopReportJob("@every 1m", topSpenderHandler, logger)
//	if err != nil {
//		return err
//	}
//	job.Start()
//	defer job.Stop()
package jobs
