package chat

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codelens/internal/domain/analysis"
	domain "codelens/internal/domain/chat"
)

type fakeStore struct {
	mu      sync.Mutex
	slot    []domain.ChatMessage
	loadErr error
	saveErr error
}

func (s *fakeStore) Load(ctx context.Context) ([]domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return []domain.ChatMessage{}, s.loadErr
	}
	out := make([]domain.ChatMessage, len(s.slot))
	copy(out, s.slot)
	return out, nil
}

func (s *fakeStore) Append(ctx context.Context, transcript []domain.ChatMessage, msg domain.ChatMessage) ([]domain.ChatMessage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return nil, s.saveErr
	}
	next := append(append([]domain.ChatMessage{}, transcript...), msg)
	s.slot = next
	return next, nil
}

func (s *fakeStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slot = nil
	return nil
}

func (s *fakeStore) persisted() []domain.ChatMessage {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.ChatMessage, len(s.slot))
	copy(out, s.slot)
	return out
}

type fakeGateway struct {
	suggestion *analysis.Suggestion
	err        error
	block      chan struct{} // when set, Analyze waits until closed
	gotReq     analysis.Request
}

func (g *fakeGateway) Analyze(ctx context.Context, req analysis.Request) (*analysis.Suggestion, error) {
	g.gotReq = req
	if g.block != nil {
		<-g.block
	}
	if g.err != nil {
		return nil, g.err
	}
	return g.suggestion, nil
}

type fakeView struct {
	mu          sync.Mutex
	loading     []bool
	errMsg      string
	errCleared  int
	suggestion  *analysis.Suggestion
	sugCleared  int
	messages    []domain.ChatMessage
	editorLangs []string
}

func (v *fakeView) SetLoading(l bool) {
	v.mu.Lock()
	v.loading = append(v.loading, l)
	v.mu.Unlock()
}
func (v *fakeView) ShowError(msg string) { v.mu.Lock(); v.errMsg = msg; v.mu.Unlock() }
func (v *fakeView) ClearError()          { v.mu.Lock(); v.errCleared++; v.mu.Unlock() }
func (v *fakeView) ShowSuggestion(s *analysis.Suggestion) {
	v.mu.Lock()
	v.suggestion = s
	v.mu.Unlock()
}
func (v *fakeView) ClearSuggestion() { v.mu.Lock(); v.sugCleared++; v.mu.Unlock() }
func (v *fakeView) ShowMessages(msgs []domain.ChatMessage) {
	v.mu.Lock()
	v.messages = msgs
	v.mu.Unlock()
}
func (v *fakeView) SetEditorLanguage(lang string) {
	v.mu.Lock()
	v.editorLangs = append(v.editorLangs, lang)
	v.mu.Unlock()
}

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

func newTestPresenter(gw *fakeGateway) (*Presenter, *fakeStore, *fakeView) {
	store := &fakeStore{}
	view := &fakeView{}
	p := &Presenter{
		Store:   store,
		Gateway: gw,
		View:    view,
		Clock:   fixedClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)},
	}
	return p, store, view
}

func TestSubmitSuccess(t *testing.T) {
	gw := &fakeGateway{suggestion: &analysis.Suggestion{
		Original:    "def foo(): pass",
		Suggested:   "def foo():\n    return 1",
		Explanation: "added a return",
	}}
	p, store, view := newTestPresenter(gw)

	err := p.Submit(context.Background(), "def foo(): pass", "make it return")
	require.NoError(t, err)

	// exactly one user message then one assistant message, in that order
	persisted := store.persisted()
	require.Len(t, persisted, 2)
	assert.Equal(t, domain.RoleUser, persisted[0].Role)
	assert.Equal(t, domain.RoleAssistant, persisted[1].Role)
	require.NotNil(t, persisted[1].Suggestion)
	assert.NotEmpty(t, persisted[1].Suggestion.Suggested)

	// detected tag rides along on the request
	assert.Equal(t, "python", gw.gotReq.Language)

	// loading toggled on then off
	assert.Equal(t, []bool{true, false}, view.loading)
	assert.Equal(t, gw.suggestion, view.suggestion)
	assert.Equal(t, []string{"python"}, view.editorLangs)
	assert.Empty(t, view.errMsg)
}

func TestSubmitGatewayFailure(t *testing.T) {
	gw := &fakeGateway{err: errors.New("model unavailable")}
	p, store, view := newTestPresenter(gw)

	err := p.Submit(context.Background(), "def foo(): pass", "help")
	require.Error(t, err)

	// transcript untouched except the already-appended user message
	persisted := store.persisted()
	require.Len(t, persisted, 1)
	assert.Equal(t, domain.RoleUser, persisted[0].Role)

	// error surfaced verbatim, suggestion cleared, loading released
	assert.Equal(t, "model unavailable", view.errMsg)
	assert.Equal(t, 1, view.sugCleared)
	assert.Equal(t, []bool{true, false}, view.loading)
	assert.False(t, p.Loading())
}

func TestSubmitWhileLoading(t *testing.T) {
	gw := &fakeGateway{
		suggestion: &analysis.Suggestion{Suggested: "x", Explanation: "y"},
		block:      make(chan struct{}),
	}
	p, _, _ := newTestPresenter(gw)

	done := make(chan error, 1)
	go func() { done <- p.Submit(context.Background(), "def a(): pass", "one") }()

	require.Eventually(t, p.Loading, time.Second, time.Millisecond)

	err := p.Submit(context.Background(), "def b(): pass", "two")
	assert.ErrorIs(t, err, domain.ErrBusy)

	close(gw.block)
	require.NoError(t, <-done)
	assert.False(t, p.Loading())
}

func TestSubmitStoreFailure(t *testing.T) {
	gw := &fakeGateway{suggestion: &analysis.Suggestion{Suggested: "x", Explanation: "y"}}
	p, store, view := newTestPresenter(gw)
	store.saveErr = fmt.Errorf("disk full")

	err := p.Submit(context.Background(), "def foo(): pass", "help")
	require.Error(t, err)
	assert.Contains(t, view.errMsg, "disk full")
	assert.Equal(t, []bool{true, false}, view.loading)
}

func TestClearHistory(t *testing.T) {
	gw := &fakeGateway{suggestion: &analysis.Suggestion{Suggested: "x", Explanation: "y"}}
	p, store, view := newTestPresenter(gw)

	require.NoError(t, p.Submit(context.Background(), "def foo(): pass", "help"))
	require.Len(t, store.persisted(), 2)

	require.NoError(t, p.ClearHistory(context.Background()))

	assert.Empty(t, store.persisted())
	assert.Empty(t, view.messages)
	assert.Empty(t, p.Messages())

	// clear followed by load yields an empty sequence
	loaded, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, loaded)
}

func TestLoadHistoryCorruptSlot(t *testing.T) {
	gw := &fakeGateway{}
	p, store, view := newTestPresenter(gw)
	store.loadErr = fmt.Errorf("%w: bad json", domain.ErrCorruptTranscript)

	require.NoError(t, p.LoadHistory(context.Background()))
	assert.Empty(t, view.messages)
	assert.Empty(t, p.Messages())
}

type fakeArchive struct {
	mu   sync.Mutex
	keys []string
	data [][]byte
}

func (a *fakeArchive) PutText(ctx context.Context, key, contentType string, data []byte) (string, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.keys = append(a.keys, key)
	a.data = append(a.data, data)
	return "http://archive/" + key, nil
}

func TestClearHistoryArchives(t *testing.T) {
	gw := &fakeGateway{suggestion: &analysis.Suggestion{Suggested: "x", Explanation: "y"}}
	p, _, _ := newTestPresenter(gw)
	archive := &fakeArchive{}
	p.Archive = archive

	require.NoError(t, p.Submit(context.Background(), "def foo(): pass", "help"))
	require.NoError(t, p.ClearHistory(context.Background()))

	require.Len(t, archive.keys, 1)
	assert.Contains(t, archive.keys[0], "transcripts/")
	assert.NotEmpty(t, archive.data[0])
}

func TestEditorLanguageOnlyOnChange(t *testing.T) {
	gw := &fakeGateway{suggestion: &analysis.Suggestion{Suggested: "x", Explanation: "y"}}
	p, _, view := newTestPresenter(gw)

	require.NoError(t, p.Submit(context.Background(), "def foo(): pass", "one"))
	require.NoError(t, p.Submit(context.Background(), "def bar(): pass", "two"))
	require.NoError(t, p.Submit(context.Background(), "#include <iostream>", "three"))

	assert.Equal(t, []string{"python", "cpp"}, view.editorLangs)
}
