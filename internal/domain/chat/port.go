package chat

import (
	"context"

	"codelens/internal/domain/analysis"
)

// TranscriptStore port (interface untuk persistence of the durable slot).
// Load returns the whole transcript; Append persists the new sequence
// synchronously before returning it; Clear erases the slot.
type TranscriptStore interface {
	Load(ctx context.Context) ([]ChatMessage, error)
	Append(ctx context.Context, transcript []ChatMessage, msg ChatMessage) ([]ChatMessage, error)
	Clear(ctx context.Context) error
}

// View port: a passive sink driven by the presenter. Implementations must
// not call back into the presenter from these methods.
type View interface {
	SetLoading(loading bool)
	ShowError(msg string)
	ClearError()
	ShowSuggestion(s *analysis.Suggestion)
	ClearSuggestion()
	ShowMessages(msgs []ChatMessage)
	SetEditorLanguage(lang string)
}
