// Package httprunner implements the runner.Provider interface over an
// HTTP/JSON job API: POST /v1/jobs submits a generation payload, GET
// /v1/jobs/{id} polls its state. Requests are authenticated with a bearer
// token taken from the SOUSCHEF_API_KEY environment variable unless
// overridden with WithAPIKey.
package httprunner
