package jobs

import "strings"

// Status is the lifecycle state of a generation job as seen by the driver.
type Status string

const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusSucceeded Status = "succeeded"
	StatusFailed    Status = "failed"
	StatusTimedOut  Status = "timed_out"
)

// Terminal reports whether no further polling follows this status.
func (s Status) Terminal() bool {
	switch s {
	case StatusSucceeded, StatusFailed, StatusTimedOut:
		return true
	}
	return false
}

// statusFromWire maps a runner-reported status string onto a [Status].
// Unknown strings are treated as running so that polling continues until
// the attempt budget runs out rather than misreading a new runner state as
// terminal.
func statusFromWire(s string) Status {
	switch Status(s) {
	case StatusPending, StatusRunning, StatusSucceeded, StatusFailed:
		return Status(s)
	}
	return StatusRunning
}

// Job is one outstanding unit of remote work, owned exclusively by the
// driver's poll loop for its lifetime. Fragments are append-only and are
// never deduplicated; arrival order is preserved.
type Job struct {
	ID        string
	Status    Status
	fragments []string
}

func (j *Job) appendFragments(fragments ...string) {
	j.fragments = append(j.fragments, fragments...)
}

// Output returns all accumulated fragments concatenated in arrival order.
func (j *Job) Output() string {
	return strings.Join(j.fragments, "")
}
