// Package ui is the terminal chat frontend. It implements the presenter's
// View port and renders the transcript with bubbletea.
package ui

import (
	"sync"

	"codelens/internal/domain/analysis"
	"codelens/internal/domain/chat"
)

// ViewState is the passive sink the presenter writes into. The bubbletea
// model reads a snapshot after each turn; a mutex covers the handoff between
// the submit goroutine and the render loop.
type ViewState struct {
	mu         sync.Mutex
	loading    bool
	errMsg     string
	suggestion *analysis.Suggestion
	messages   []chat.ChatMessage
	editorLang string
}

func NewViewState() *ViewState { return &ViewState{} }

func (v *ViewState) SetLoading(loading bool) {
	v.mu.Lock()
	v.loading = loading
	v.mu.Unlock()
}

func (v *ViewState) ShowError(msg string) {
	v.mu.Lock()
	v.errMsg = msg
	v.mu.Unlock()
}

func (v *ViewState) ClearError() {
	v.mu.Lock()
	v.errMsg = ""
	v.mu.Unlock()
}

func (v *ViewState) ShowSuggestion(s *analysis.Suggestion) {
	v.mu.Lock()
	v.suggestion = s
	v.mu.Unlock()
}

func (v *ViewState) ClearSuggestion() {
	v.mu.Lock()
	v.suggestion = nil
	v.mu.Unlock()
}

func (v *ViewState) ShowMessages(msgs []chat.ChatMessage) {
	v.mu.Lock()
	v.messages = msgs
	v.mu.Unlock()
}

func (v *ViewState) SetEditorLanguage(lang string) {
	v.mu.Lock()
	v.editorLang = lang
	v.mu.Unlock()
}

// Snapshot returns a consistent copy for rendering.
type Snapshot struct {
	Loading    bool
	Err        string
	Suggestion *analysis.Suggestion
	Messages   []chat.ChatMessage
	EditorLang string
}

func (v *ViewState) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()
	msgs := make([]chat.ChatMessage, len(v.messages))
	copy(msgs, v.messages)
	return Snapshot{
		Loading:    v.loading,
		Err:        v.errMsg,
		Suggestion: v.suggestion,
		Messages:   msgs,
		EditorLang: v.editorLang,
	}
}
