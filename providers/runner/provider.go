package runner

import "context"

// Provider is the interface every remote job-runner implementation must
// satisfy. It covers the two operations of the polled job lifecycle:
// submission and state fetch.
type Provider interface {
	// CreateJob submits a generation payload and returns the handle of the
	// newly created job. Returns an error if the runner cannot be reached
	// or rejects the submission.
	CreateJob(ctx context.Context, req JobRequest) (*JobHandle, error)

	// GetJob fetches the current state of a previously created job,
	// including any output fragments produced since the last poll.
	GetJob(ctx context.Context, id string) (*JobState, error)
}

// JobRequest is the payload submitted to the runner. The model identifier
// and sampling parameters are opaque configuration forwarded unmodified;
// souschef does not interpret their semantics.
type JobRequest struct {
	Model            string            `json:"model,omitempty"`
	Prompt           string            `json:"prompt"`
	SystemPrompt     string            `json:"system_prompt,omitempty"`
	GenerationConfig *GenerationConfig `json:"generation_config,omitempty"`
}

// GenerationConfig carries optional sampling parameters, passed through to
// the runner as-is.
type GenerationConfig struct {
	MaxTokens   int     `json:"max_tokens,omitempty"`
	Temperature float32 `json:"temperature,omitempty"` // Sampling temperature. Higher => more random; lower => more deterministic.
	TopP        float32 `json:"top_p,omitempty"`       // Nucleus (top-p) sampling, alternative to temperature.
}

// JobHandle identifies a freshly submitted job.
type JobHandle struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// JobState is one polled snapshot of a job. Output holds the text fragments
// produced since the previous poll, in generation order. Error carries the
// runner-reported message when Status is "failed".
type JobState struct {
	ID     string   `json:"id"`
	Status string   `json:"status"`
	Output []string `json:"output,omitempty"`
	Error  string   `json:"error,omitempty"`
}
