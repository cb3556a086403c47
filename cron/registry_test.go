package cron

import "testing"

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	reg.Register("catalog:warm", "@hourly", func(...string) {})

	if _, ok := reg.Lookup("catalog:warm"); !ok {
		t.Error("registered job not found")
	}
	if _, ok := reg.Lookup("nope"); ok {
		t.Error("unknown job found")
	}
	if got := len(reg.Jobs()); got != 1 {
		t.Errorf("len(Jobs) = %d, want 1", got)
	}
}

func TestRegistry_DuplicatePanics(t *testing.T) {
	reg := NewRegistry()
	reg.Register("catalog:warm", "@hourly", func(...string) {})

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	reg.Register("catalog:warm", "@daily", func(...string) {})
}

func TestStart_SchedulesAllJobs(t *testing.T) {
	reg := NewRegistry()
	reg.Register("a", "@hourly", func(...string) {})
	reg.Register("b", "@daily", func(...string) {})

	c := Start(reg)
	defer c.Stop()
	if got := len(c.Entries()); got != 2 {
		t.Errorf("entries = %d, want 2", got)
	}
}
