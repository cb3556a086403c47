package cron

import (
	"fmt"
	"sync"
)

// Job holds schedule and run function.
type Job struct {
	Schedule string
	Run      func(...string)
}

// Registry collects named jobs before the scheduler starts. Built in main
// and passed to Start; there is no global instance.
type Registry struct {
	mu   sync.Mutex
	jobs map[string]Job
}

func NewRegistry() *Registry {
	return &Registry{jobs: make(map[string]Job)}
}

// Register adds a job. Panics on duplicate names, which are always a wiring
// mistake.
func (r *Registry) Register(name, schedule string, run func(...string)) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.jobs[name]; ok {
		panic(fmt.Sprintf("cron/registry: duplicate job %s", name))
	}
	r.jobs[name] = Job{Schedule: schedule, Run: run}
}

// Jobs returns a copy of the registered jobs.
func (r *Registry) Jobs() map[string]Job {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make(map[string]Job, len(r.jobs))
	for k, v := range r.jobs {
		out[k] = v
	}
	return out
}

// Lookup returns one job by name.
func (r *Registry) Lookup(name string) (Job, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	j, ok := r.jobs[name]
	return j, ok
}
