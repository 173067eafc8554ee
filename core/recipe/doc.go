// Package recipe turns raw language-model output into a structured recipe
// record. Because models frequently wrap JSON in narrative prose, drop
// quotes, leave trailing commas, or abandon structure entirely under load,
// extraction applies a layered recovery strategy — strict JSON span parsing,
// automatic JSON repair, heuristic line scanning, and a minimal fallback —
// so that a displayable record is always produced.
//
// The main entry points are [Extract], which never fails, and [Fallback],
// which builds a last-resort record directly from the caller's input text
// when the remote generation job itself was unusable.
package recipe
