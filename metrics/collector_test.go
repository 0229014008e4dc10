package metrics

import (
	"sync"
	"testing"
)

func TestCollector_Counters(t *testing.T) {
	c := NewCollector("run-1", "softaculous-plugin")

	c.IncRunStarted()
	c.IncStepCompleted()
	c.IncStepCompleted()
	c.AddFilesWritten(5)
	c.IncCommandRun()
	c.IncCommandRun()
	c.IncCommandFailure()
	c.IncRunFailed()

	s := c.Snapshot()
	if s.RunsStarted != 1 {
		t.Errorf("RunsStarted = %d, want 1", s.RunsStarted)
	}
	if s.StepsCompleted != 2 {
		t.Errorf("StepsCompleted = %d, want 2", s.StepsCompleted)
	}
	if s.FilesWritten != 5 {
		t.Errorf("FilesWritten = %d, want 5", s.FilesWritten)
	}
	if s.CommandsRun != 2 {
		t.Errorf("CommandsRun = %d, want 2", s.CommandsRun)
	}
	if s.CommandFailures != 1 {
		t.Errorf("CommandFailures = %d, want 1", s.CommandFailures)
	}
	if s.RunsFailed != 1 {
		t.Errorf("RunsFailed = %d, want 1", s.RunsFailed)
	}
	if s.RunID != "run-1" || s.ImageRepo != "softaculous-plugin" {
		t.Errorf("dimensions not preserved: %+v", s)
	}
}

func TestCollector_NilSafe(t *testing.T) {
	var c *Collector
	c.IncRunStarted()
	c.IncRunCompleted()
	c.IncRunFailed()
	c.IncStepCompleted()
	c.AddFilesWritten(3)
	c.IncCommandRun()
	c.IncCommandFailure()

	s := c.Snapshot()
	if s != (Snapshot{}) {
		t.Errorf("nil collector snapshot should be zero, got %+v", s)
	}
}

func TestCollector_ConcurrentIncrements(t *testing.T) {
	c := NewCollector("run-c", "repo")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			c.IncCommandRun()
		}()
	}
	wg.Wait()

	if got := c.Snapshot().CommandsRun; got != 50 {
		t.Errorf("CommandsRun = %d, want 50", got)
	}
}
