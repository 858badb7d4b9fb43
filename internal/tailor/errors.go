package tailor

import "errors"

var (
	// ErrNoJSON signals that no strategy could pull a JSON object out of the
	// model's response text.
	ErrNoJSON = errors.New("No valid JSON found in response")

	// ErrIncomplete signals a parsed response missing the rewritten resume or
	// the cover letter. Partial results are never returned.
	ErrIncomplete = errors.New("model response missing rewritten resume or cover letter")
)

// GenerationError wraps any failure of the tailoring call, model or parsing,
// with a normalized user-facing message.
type GenerationError struct {
	Err error
}

func (e *GenerationError) Error() string {
	return "Failed to generate content using AI: " + e.Err.Error()
}

func (e *GenerationError) Unwrap() error { return e.Err }
