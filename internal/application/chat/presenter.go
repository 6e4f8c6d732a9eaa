// Package chat implements the per-turn orchestration between the view, the
// transcript store, the language detector, and the analysis gateway.
package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"codelens/internal/application"
	"codelens/internal/detect"
	"codelens/internal/domain/analysis"
	domain "codelens/internal/domain/chat"
)

// Presenter drives a passive View. One turn: append the user message, detect
// the language, call the gateway, then append the assistant message or
// surface the error. The loading flag is released on every exit path.
type Presenter struct {
	Store   domain.TranscriptStore
	Gateway analysis.Gateway
	View    domain.View
	Clock   application.Clock

	// Archive, when set, receives a JSON snapshot of the transcript right
	// before a clear.
	Archive analysis.ArtifactStore

	mu       sync.Mutex
	loading  bool
	messages []domain.ChatMessage
	lastLang detect.Language
}

// LoadHistory hydrates the in-memory transcript from the durable slot and
// pushes it to the view. A corrupt slot is logged and treated as empty.
func (p *Presenter) LoadHistory(ctx context.Context) error {
	msgs, err := p.Store.Load(ctx)
	if err != nil {
		if !errors.Is(err, domain.ErrCorruptTranscript) {
			return err
		}
		log.Printf("transcript load: %v, starting empty", err)
		msgs = []domain.ChatMessage{}
	}
	p.mu.Lock()
	p.messages = msgs
	p.mu.Unlock()
	p.View.ShowMessages(msgs)
	return nil
}

// Submit runs one analysis turn. Returns ErrBusy when a previous turn is
// still in flight; the view should additionally block resubmission itself.
func (p *Presenter) Submit(ctx context.Context, code, prompt string) error {
	p.mu.Lock()
	if p.loading {
		p.mu.Unlock()
		return domain.ErrBusy
	}
	p.loading = true
	p.mu.Unlock()

	p.View.ClearError()
	p.View.SetLoading(true)
	defer func() {
		p.mu.Lock()
		p.loading = false
		p.mu.Unlock()
		p.View.SetLoading(false)
	}()

	now := p.Clock.Now()
	userMsg := domain.NewUserMessage(domain.NewMessageID(now), now, prompt, code)

	p.mu.Lock()
	transcript := p.messages
	p.mu.Unlock()

	transcript, err := p.Store.Append(ctx, transcript, userMsg)
	if err != nil {
		p.View.ShowError(fmt.Sprintf("could not save message: %v", err))
		return err
	}
	p.setMessages(transcript)

	lang := detect.Detect(code)
	p.mu.Lock()
	changed := lang != p.lastLang
	p.lastLang = lang
	p.mu.Unlock()
	if changed {
		p.View.SetEditorLanguage(string(lang))
	}

	suggestion, err := p.Gateway.Analyze(ctx, analysis.Request{
		Code:     code,
		Prompt:   prompt,
		Language: string(lang),
	})
	if err != nil {
		p.View.ClearSuggestion()
		p.View.ShowError(err.Error())
		return err
	}

	now = p.Clock.Now()
	assistantMsg := domain.NewAssistantMessage(domain.NewMessageID(now), now, suggestion)
	transcript, err = p.Store.Append(ctx, transcript, assistantMsg)
	if err != nil {
		p.View.ShowError(fmt.Sprintf("could not save suggestion: %v", err))
		return err
	}
	p.setMessages(transcript)

	p.View.ShowSuggestion(suggestion)
	return nil
}

// ClearHistory erases the durable slot and the in-memory cache, then pushes
// an empty transcript to the view. When an archive store is configured the
// old transcript is uploaded first.
func (p *Presenter) ClearHistory(ctx context.Context) error {
	p.mu.Lock()
	old := p.messages
	p.mu.Unlock()

	if p.Archive != nil && len(old) > 0 {
		if data, err := json.Marshal(old); err == nil {
			key := fmt.Sprintf("transcripts/%d.json", p.Clock.Now().UnixMilli())
			if _, err := p.Archive.PutText(ctx, key, "application/json", data); err != nil {
				log.Printf("transcript archive failed: %v", err)
			}
		}
	}

	if err := p.Store.Clear(ctx); err != nil {
		p.View.ShowError(fmt.Sprintf("could not clear history: %v", err))
		return err
	}
	p.setMessages([]domain.ChatMessage{})
	p.View.ClearSuggestion()
	p.View.ClearError()
	return nil
}

// Messages returns a copy of the cached transcript.
func (p *Presenter) Messages() []domain.ChatMessage {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]domain.ChatMessage, len(p.messages))
	copy(out, p.messages)
	return out
}

// Loading reports whether a turn is in flight.
func (p *Presenter) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

func (p *Presenter) setMessages(msgs []domain.ChatMessage) {
	p.mu.Lock()
	p.messages = msgs
	p.mu.Unlock()
	p.View.ShowMessages(msgs)
}
