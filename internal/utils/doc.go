// Package utils contains small internal helpers shared across souschef:
// generic JSON-over-HTTP request helpers with uniform error handling and
// deterministic body cleanup, and string truncation for log-safe previews
// of remote responses.
package utils
