package httprunner

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"

	"souschef/internal/utils"
	"souschef/providers/runner"
)

const (
	defaultBaseURL = "https://api.souschef.dev"
	jobsEndpoint   = "/v1/jobs"
)

// HTTPRunner implements [runner.Provider] against an HTTP/JSON job API.
type HTTPRunner struct {
	apiKey  string
	baseURL string
	client  *http.Client
}

// New creates a runner provider with defaults taken from the environment:
// SOUSCHEF_API_KEY for the credential and SOUSCHEF_RUNNER_URL for the base
// URL.
func New() *HTTPRunner {
	baseURL := os.Getenv("SOUSCHEF_RUNNER_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	return &HTTPRunner{
		apiKey:  os.Getenv("SOUSCHEF_API_KEY"),
		baseURL: baseURL,
		client:  &http.Client{},
	}
}

// WithAPIKey sets the bearer credential used for authenticating requests.
func (r *HTTPRunner) WithAPIKey(apiKey string) *HTTPRunner {
	r.apiKey = apiKey
	return r
}

// WithBaseURL overrides the default base URL for API requests.
func (r *HTTPRunner) WithBaseURL(baseURL string) *HTTPRunner {
	r.baseURL = baseURL
	return r
}

// WithHttpClient sets the HTTP client used for outbound requests.
func (r *HTTPRunner) WithHttpClient(httpClient *http.Client) *HTTPRunner {
	r.client = httpClient
	return r
}

// CreateJob implements [runner.Provider].
func (r *HTTPRunner) CreateJob(ctx context.Context, req runner.JobRequest) (*runner.JobHandle, error) {
	if r.apiKey == "" {
		return nil, fmt.Errorf("API key is not set")
	}

	httpResponse, handle, err := utils.DoPostSync[runner.JobHandle](ctx, r.client, r.baseURL+jobsEndpoint, r.apiKey, req)
	if err != nil {
		return nil, err
	}
	if handle == nil || handle.ID == "" {
		return nil, fmt.Errorf("runner returned no job id: %s", httpResponse.Status)
	}
	return handle, nil
}

// GetJob implements [runner.Provider].
func (r *HTTPRunner) GetJob(ctx context.Context, id string) (*runner.JobState, error) {
	if r.apiKey == "" {
		return nil, fmt.Errorf("API key is not set")
	}
	if id == "" {
		return nil, fmt.Errorf("job id cannot be empty")
	}

	endpoint := r.baseURL + jobsEndpoint + "/" + url.PathEscape(id)
	httpResponse, state, err := utils.DoGetSync[runner.JobState](ctx, r.client, endpoint, r.apiKey)
	if err != nil {
		return nil, err
	}
	if state == nil {
		return nil, fmt.Errorf("empty job state from runner: %s", httpResponse.Status)
	}
	return state, nil
}
