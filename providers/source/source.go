// Package source supplies the raw narration text that recipe generation
// consumes. The core pipeline is agnostic about where the text came from; a
// Source is the optional pre-transcription step in front of it. Plain
// already-transcribed text is covered by [Text]; the webpage subpackage
// fetches a recipe page and converts it to Markdown.
package source

import "context"

// Source yields the narration text for one generation request.
type Source interface {
	Transcript(ctx context.Context) (string, error)
}

// Text is a Source over an already-transcribed narration string.
type Text string

// Transcript implements [Source].
func (t Text) Transcript(ctx context.Context) (string, error) {
	return string(t), nil
}
