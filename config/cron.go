package config

import (
	"carolinebride.GO/cron/jobs"
)

// Map of job names to job functions
type CronJob struct {
	Schedule string
	Job      func(...string)
}

var CronJobs = map[string]CronJob{
	"catalogjsonjob":       {Schedule: "0 * * * *", Job: jobs.CatalogJsonJob},
	"appointmentdigestjob": {Schedule: "0 7 * * *", Job: jobs.AppointmentDigestJob},
	// Add more jobs here
}
