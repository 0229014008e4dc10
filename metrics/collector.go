// Package metrics provides per-run counters for the release pipeline.
//
// The Collector accumulates counters during a single pipeline run. It is a
// leaf package with no internal dependencies; the pipeline feeds it and
// renders a Snapshot in the run summary.
package metrics

import "sync"

// Snapshot is an immutable point-in-time view of the run counters.
// Returned by Collector.Snapshot(). Safe to read concurrently after creation.
type Snapshot struct {
	// Run lifecycle
	RunsStarted   int64 `json:"runs_started"`
	RunsCompleted int64 `json:"runs_completed"`
	RunsFailed    int64 `json:"runs_failed"`

	// Pipeline progress
	StepsCompleted int64 `json:"steps_completed"`
	FilesWritten   int64 `json:"files_written"`

	// External commands
	CommandsRun     int64 `json:"commands_run"`
	CommandFailures int64 `json:"command_failures"`

	// Dimensions (informational, set at construction)
	RunID     string `json:"run_id"`
	ImageRepo string `json:"image_repo"`
}

// Collector accumulates metrics during a single run.
// Thread-safe via sync.Mutex. All increment methods are nil-receiver safe.
type Collector struct {
	mu sync.Mutex

	runsStarted   int64
	runsCompleted int64
	runsFailed    int64

	stepsCompleted int64
	filesWritten   int64

	commandsRun     int64
	commandFailures int64

	runID     string
	imageRepo string
}

// NewCollector creates a Collector with dimension labels.
func NewCollector(runID, imageRepo string) *Collector {
	return &Collector{runID: runID, imageRepo: imageRepo}
}

// IncRunStarted records a pipeline run start.
func (c *Collector) IncRunStarted() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.runsStarted++
	c.mu.Unlock()
}

// IncRunCompleted records a successful run completion.
func (c *Collector) IncRunCompleted() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.runsCompleted++
	c.mu.Unlock()
}

// IncRunFailed records a run aborted by a step failure.
func (c *Collector) IncRunFailed() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.runsFailed++
	c.mu.Unlock()
}

// IncStepCompleted records a completed pipeline step.
func (c *Collector) IncStepCompleted() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.stepsCompleted++
	c.mu.Unlock()
}

// AddFilesWritten records n files written by validation or scaffolding.
func (c *Collector) AddFilesWritten(n int) {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.filesWritten += int64(n)
	c.mu.Unlock()
}

// IncCommandRun records one external command invocation.
func (c *Collector) IncCommandRun() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.commandsRun++
	c.mu.Unlock()
}

// IncCommandFailure records an external command that exited non-zero.
func (c *Collector) IncCommandFailure() {
	if c == nil {
		return
	}
	c.mu.Lock()
	c.commandFailures++
	c.mu.Unlock()
}

// Snapshot returns an immutable copy of all counters.
// Nil-receiver safe: returns a zero Snapshot.
func (c *Collector) Snapshot() Snapshot {
	if c == nil {
		return Snapshot{}
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		RunsStarted:     c.runsStarted,
		RunsCompleted:   c.runsCompleted,
		RunsFailed:      c.runsFailed,
		StepsCompleted:  c.stepsCompleted,
		FilesWritten:    c.filesWritten,
		CommandsRun:     c.commandsRun,
		CommandFailures: c.commandFailures,
		RunID:           c.runID,
		ImageRepo:       c.imageRepo,
	}
}
