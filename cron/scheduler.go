package cron

import (
	"log"

	"github.com/robfig/cron/v3"
)

// Start schedules every registered job and starts the scheduler. A bad
// schedule is fatal; it means a typo, not a runtime condition.
func Start(reg *Registry) *cron.Cron {
	c := cron.New()
	for name, j := range reg.Jobs() {
		run := j.Run
		if _, err := c.AddFunc(j.Schedule, func() { run() }); err != nil {
			log.Fatalf("Failed to register job %s: %v", name, err)
		}
	}
	c.Start()
	return c
}
