package jobs

import (
	"context"
	"errors"
	"testing"
	"time"

	"souschef/providers/runner"
)

// scriptedRunner replays a fixed sequence of poll states. Once the script
// is exhausted it keeps returning the last state.
type scriptedRunner struct {
	createErr error
	pollErr   error
	states    []runner.JobState

	createCalls int
	pollCalls   int
}

func (s *scriptedRunner) CreateJob(ctx context.Context, req runner.JobRequest) (*runner.JobHandle, error) {
	s.createCalls++
	if s.createErr != nil {
		return nil, s.createErr
	}
	return &runner.JobHandle{ID: "job-1", Status: "pending"}, nil
}

func (s *scriptedRunner) GetJob(ctx context.Context, id string) (*runner.JobState, error) {
	s.pollCalls++
	if s.pollErr != nil {
		return nil, s.pollErr
	}
	i := s.pollCalls - 1
	if i >= len(s.states) {
		i = len(s.states) - 1
	}
	state := s.states[i]
	state.ID = id
	return &state, nil
}

func noSleep(ctx context.Context, d time.Duration) error {
	return ctx.Err()
}

func repeatState(state runner.JobState, n int) []runner.JobState {
	states := make([]runner.JobState, n)
	for i := range states {
		states[i] = state
	}
	return states
}

func TestSubmitAndAwait_SucceedsAfterRunningPolls(t *testing.T) {
	states := repeatState(runner.JobState{Status: "running"}, 5)
	states = append(states, runner.JobState{Status: "succeeded", Output: []string{"done"}})
	fake := &scriptedRunner{states: states}

	driver := NewDriver(fake, WithSleep(noSleep))
	output, err := driver.SubmitAndAwait(context.Background(), runner.JobRequest{Prompt: "make tea"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "done" {
		t.Errorf("output = %q, want %q", output, "done")
	}
	if fake.pollCalls != 6 {
		t.Errorf("poll calls = %d, want exactly 6", fake.pollCalls)
	}
	if fake.createCalls != 1 {
		t.Errorf("create calls = %d, want 1", fake.createCalls)
	}
}

func TestSubmitAndAwait_TimesOutAfterBudget(t *testing.T) {
	fake := &scriptedRunner{states: repeatState(runner.JobState{Status: "running"}, 1)}

	driver := NewDriver(fake, WithSleep(noSleep))
	_, err := driver.SubmitAndAwait(context.Background(), runner.JobRequest{Prompt: "make tea"})
	if !IsKind(err, FailureTimeout) {
		t.Fatalf("expected timeout failure, got %v", err)
	}
	if fake.pollCalls != 30 {
		t.Errorf("poll calls = %d, want exactly 30", fake.pollCalls)
	}

	var failure *Failure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *Failure, got %T", err)
	}
	if failure.Attempts != 30 {
		t.Errorf("failure attempts = %d, want 30", failure.Attempts)
	}
}

func TestSubmitAndAwait_JobFailedCarriesMessage(t *testing.T) {
	fake := &scriptedRunner{states: []runner.JobState{{Status: "failed", Error: "OOM"}}}

	driver := NewDriver(fake, WithSleep(noSleep))
	_, err := driver.SubmitAndAwait(context.Background(), runner.JobRequest{Prompt: "make tea"})
	if !IsKind(err, FailureJob) {
		t.Fatalf("expected job failure, got %v", err)
	}

	var failure *Failure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *Failure, got %T", err)
	}
	if failure.Message != "OOM" {
		t.Errorf("failure message = %q, want %q", failure.Message, "OOM")
	}
	if fake.pollCalls != 1 {
		t.Errorf("poll calls = %d, want 1 (no polling past a terminal state)", fake.pollCalls)
	}
}

func TestSubmitAndAwait_JobFailedWithoutMessage(t *testing.T) {
	fake := &scriptedRunner{states: []runner.JobState{{Status: "failed"}}}

	driver := NewDriver(fake, WithSleep(noSleep))
	_, err := driver.SubmitAndAwait(context.Background(), runner.JobRequest{Prompt: "make tea"})

	var failure *Failure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *Failure, got %v", err)
	}
	if failure.Message == "" {
		t.Error("expected a generic message when the runner reports none")
	}
}

func TestSubmitAndAwait_AccumulatesPartialOutputInOrder(t *testing.T) {
	fake := &scriptedRunner{states: []runner.JobState{
		{Status: "running", Output: []string{"a"}},
		{Status: "running"},
		{Status: "running", Output: []string{"b", "c"}},
		{Status: "succeeded", Output: []string{"d"}},
	}}

	driver := NewDriver(fake, WithSleep(noSleep))
	output, err := driver.SubmitAndAwait(context.Background(), runner.JobRequest{Prompt: "make tea"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if output != "abcd" {
		t.Errorf("output = %q, want %q", output, "abcd")
	}
}

func TestSubmitAndAwait_TransportErrorOnSubmit(t *testing.T) {
	fake := &scriptedRunner{createErr: errors.New("connection refused")}

	driver := NewDriver(fake, WithSleep(noSleep))
	_, err := driver.SubmitAndAwait(context.Background(), runner.JobRequest{Prompt: "make tea"})
	if !IsKind(err, FailureTransport) {
		t.Fatalf("expected transport failure, got %v", err)
	}
	if fake.pollCalls != 0 {
		t.Errorf("poll calls = %d, want 0", fake.pollCalls)
	}
}

func TestSubmitAndAwait_TransportErrorOnPoll(t *testing.T) {
	fake := &scriptedRunner{pollErr: errors.New("connection reset")}

	driver := NewDriver(fake, WithSleep(noSleep))
	_, err := driver.SubmitAndAwait(context.Background(), runner.JobRequest{Prompt: "make tea"})
	if !IsKind(err, FailureTransport) {
		t.Fatalf("expected transport failure, got %v", err)
	}
	if fake.pollCalls != 1 {
		t.Errorf("poll calls = %d, want 1 (transport errors are not retried)", fake.pollCalls)
	}

	var failure *Failure
	if !errors.As(err, &failure) {
		t.Fatalf("expected *Failure, got %T", err)
	}
	if failure.Err == nil {
		t.Error("transport failure should wrap the underlying error")
	}
}

func TestSubmitAndAwait_CancelledAtSleepBoundary(t *testing.T) {
	fake := &scriptedRunner{states: repeatState(runner.JobState{Status: "running"}, 1)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	driver := NewDriver(fake, WithSleep(sleepWithContext), WithPollInterval(time.Millisecond))
	_, err := driver.SubmitAndAwait(ctx, runner.JobRequest{Prompt: "make tea"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if fake.pollCalls != 0 {
		t.Errorf("poll calls = %d, want 0 after cancellation at the sleep boundary", fake.pollCalls)
	}
}

func TestSubmitAndAwait_ObserverSeesEveryAttempt(t *testing.T) {
	states := repeatState(runner.JobState{Status: "running"}, 2)
	states = append(states, runner.JobState{Status: "succeeded", Output: []string{"ok"}})
	fake := &scriptedRunner{states: states}

	var attempts []int
	var last Status
	driver := NewDriver(fake,
		WithSleep(noSleep),
		WithPollObserver(func(attempt int, status Status) {
			attempts = append(attempts, attempt)
			last = status
		}),
	)

	if _, err := driver.SubmitAndAwait(context.Background(), runner.JobRequest{Prompt: "make tea"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(attempts) != 3 || attempts[0] != 1 || attempts[2] != 3 {
		t.Errorf("observer attempts = %v, want [1 2 3]", attempts)
	}
	if last != StatusSucceeded {
		t.Errorf("last observed status = %q, want %q", last, StatusSucceeded)
	}
}

func TestStatusTerminal(t *testing.T) {
	tests := []struct {
		status Status
		want   bool
	}{
		{StatusPending, false},
		{StatusRunning, false},
		{StatusSucceeded, true},
		{StatusFailed, true},
		{StatusTimedOut, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			if got := tt.status.Terminal(); got != tt.want {
				t.Errorf("Terminal() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestStatusFromWire_UnknownKeepsPolling(t *testing.T) {
	if got := statusFromWire("warming_up"); got != StatusRunning {
		t.Errorf("statusFromWire(unknown) = %q, want %q", got, StatusRunning)
	}
}
