package analysis

import "errors"

// ErrQuotaExceeded indicates the model provider returned a quota/limit error (HTTP 429 or similar).
var ErrQuotaExceeded = errors.New("model quota exceeded")

// ErrEmptyCompletion indicates the provider returned no text at all.
var ErrEmptyCompletion = errors.New("empty completion from model")

// ErrUnparsableReply indicates the completion did not follow the required
// fenced-code-plus-explanation format.
var ErrUnparsableReply = errors.New("could not parse model reply format")
