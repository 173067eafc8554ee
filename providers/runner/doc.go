// Package runner defines the boundary to a remote asynchronous
// text-generation job runner. A runner accepts a generation payload,
// returns an opaque job id, and is then polled for status and partial
// output until the job reaches a terminal state.
//
// The [Provider] interface is implemented per transport; see the httprunner
// subpackage for the HTTP/JSON implementation.
package runner
