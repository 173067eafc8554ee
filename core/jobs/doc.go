// Package jobs drives a remote asynchronous generation job to completion.
// The [Driver] submits a payload to a [runner.Provider], then polls at a
// fixed interval, accumulating output fragments, until the job reaches a
// terminal state or the attempt budget is exhausted. Failures are reported
// as tagged [Failure] values so callers can distinguish transport errors,
// runner-reported failures, and timeouts.
package jobs
