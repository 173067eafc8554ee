package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"souschef/providers/runner"
)

const (
	// DefaultPollInterval is the pause between consecutive job polls.
	DefaultPollInterval = 1 * time.Second
	// DefaultMaxAttempts is the hard ceiling on poll attempts; with the
	// default interval this bounds a run at roughly thirty seconds.
	DefaultMaxAttempts = 30
)

// SleepFunc pauses for d or returns early with the context's error when ctx
// is cancelled. Tests inject a no-op implementation for determinism.
type SleepFunc func(ctx context.Context, d time.Duration) error

// PollObserver receives the attempt count and observed status after each
// poll. It is a progress signal only and not part of the functional
// contract.
type PollObserver func(attempt int, status Status)

// Option configures a [Driver].
type Option func(*Driver)

// WithPollInterval overrides the pause between polls.
func WithPollInterval(interval time.Duration) Option {
	return func(d *Driver) {
		if interval > 0 {
			d.interval = interval
		}
	}
}

// WithMaxAttempts overrides the poll-attempt budget.
func WithMaxAttempts(attempts int) Option {
	return func(d *Driver) {
		if attempts > 0 {
			d.maxAttempts = attempts
		}
	}
}

// WithSleep replaces the sleep implementation used between polls.
func WithSleep(sleep SleepFunc) Option {
	return func(d *Driver) {
		if sleep != nil {
			d.sleep = sleep
		}
	}
}

// WithPollObserver registers a per-poll progress callback.
func WithPollObserver(observer PollObserver) Option {
	return func(d *Driver) {
		d.observer = observer
	}
}

// Driver submits one job at a time to a remote runner and polls it to a
// terminal state. A Driver holds no per-job state between calls and is safe
// to reuse across generation requests; each call owns its Job exclusively.
type Driver struct {
	provider    runner.Provider
	interval    time.Duration
	maxAttempts int
	sleep       SleepFunc
	observer    PollObserver
}

// NewDriver creates a Driver for the given runner provider with the default
// poll interval and attempt budget.
func NewDriver(provider runner.Provider, opts ...Option) *Driver {
	d := &Driver{
		provider:    provider,
		interval:    DefaultPollInterval,
		maxAttempts: DefaultMaxAttempts,
		sleep:       sleepWithContext,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// SubmitAndAwait submits req to the runner and polls until the job reaches
// a terminal state, returning all accumulated output fragments concatenated
// in arrival order.
//
// The poll loop sleeps the configured interval before every fetch, honours
// ctx cancellation at the sleep boundary and on every remote call, and
// performs at most the configured number of fetches. Non-success outcomes
// are returned as a tagged [*Failure]: transport errors are surfaced
// immediately and never retried, a runner-reported failure carries the
// runner's message verbatim, and exhausting the attempt budget yields a
// timeout failure.
func (d *Driver) SubmitAndAwait(ctx context.Context, req runner.JobRequest) (string, error) {
	handle, err := d.provider.CreateJob(ctx, req)
	if err != nil {
		return "", &Failure{Kind: FailureTransport, Message: "job submission failed", Err: err}
	}

	job := &Job{ID: handle.ID, Status: statusFromWire(handle.Status)}
	slog.Debug("generation job submitted", "job_id", job.ID, "status", job.Status)

	for attempt := 1; attempt <= d.maxAttempts; attempt++ {
		if err := d.sleep(ctx, d.interval); err != nil {
			return "", fmt.Errorf("polling cancelled on attempt %d: %w", attempt, err)
		}

		state, err := d.provider.GetJob(ctx, job.ID)
		if err != nil {
			return "", &Failure{Kind: FailureTransport, Message: "job poll failed", Attempts: attempt, Err: err}
		}

		// Partial output is collected as it arrives, not only on completion.
		job.appendFragments(state.Output...)
		job.Status = statusFromWire(state.Status)

		if d.observer != nil {
			d.observer(attempt, job.Status)
		}
		slog.Debug("generation job polled", "job_id", job.ID, "attempt", attempt, "status", job.Status)

		switch job.Status {
		case StatusSucceeded:
			return job.Output(), nil
		case StatusFailed:
			message := state.Error
			if message == "" {
				message = "job runner reported failure without a message"
			}
			return "", &Failure{Kind: FailureJob, Message: message, Attempts: attempt}
		}
	}

	job.Status = StatusTimedOut
	return "", &Failure{
		Kind:     FailureTimeout,
		Message:  fmt.Sprintf("no terminal state after %d polls", d.maxAttempts),
		Attempts: d.maxAttempts,
	}
}

func sleepWithContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
