package jobs

import (
	"errors"
	"fmt"
)

// FailureKind tags the reason a driver run did not produce output.
type FailureKind string

const (
	// FailureTransport means the runner could not be reached (network or
	// HTTP failure). The driver does not retry these; the caller decides
	// whether to resubmit.
	FailureTransport FailureKind = "transport"
	// FailureJob means the runner explicitly reported the job as failed.
	FailureJob FailureKind = "job_failed"
	// FailureTimeout means the attempt budget was exhausted without the job
	// reaching a terminal state.
	FailureTimeout FailureKind = "timed_out"
)

// Failure is the tagged error returned by [Driver.SubmitAndAwait]. Message
// carries the runner-reported error verbatim when one was available.
type Failure struct {
	Kind     FailureKind
	Message  string
	Attempts int
	Err      error
}

func (f *Failure) Error() string {
	if f.Err != nil {
		return fmt.Sprintf("generation job %s: %s: %v", f.Kind, f.Message, f.Err)
	}
	return fmt.Sprintf("generation job %s: %s", f.Kind, f.Message)
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// IsKind reports whether err is a [Failure] of the given kind.
func IsKind(err error, kind FailureKind) bool {
	var f *Failure
	return errors.As(err, &f) && f.Kind == kind
}
