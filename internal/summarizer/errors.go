package summarizer

import "errors"

var (
	// ErrNonConvergent is returned when passes stop shrinking the text or exceed the pass limit.
	ErrNonConvergent = errors.New("non-convergent summarization")
	// ErrEmptyCompletion is returned when the backend answers without any content.
	ErrEmptyCompletion = errors.New("empty completion")
	// ErrRejected marks backend errors that retrying cannot fix (bad key, bad model, bad request).
	ErrRejected = errors.New("request rejected")
	// ErrKeysExhausted is returned when every API key was rate limited.
	ErrKeysExhausted = errors.New("all API keys exhausted")
)
