package analysis

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codelens/internal/application"
	domain "codelens/internal/domain/analysis"
)

type fakeModel struct {
	reply string
	err   error
	got   string
}

func (m *fakeModel) Complete(ctx context.Context, prompt string) (string, error) {
	m.got = prompt
	if m.err != nil {
		return "", m.err
	}
	return m.reply, nil
}

type memRepo struct {
	mu   sync.Mutex
	rows []*domain.Record
}

func (r *memRepo) Save(ctx context.Context, rec *domain.Record) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rows = append(r.rows, rec)
	return nil
}

func (r *memRepo) Paginate(ctx context.Context, page, pageSize int) ([]*domain.Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]*domain.Record{}, r.rows...), nil
}

const goodReply = "```python\ndef foo():\n    return 1\n```\n\nExplanation:\nAdded a return."

func TestAnalyzeSuccess(t *testing.T) {
	model := &fakeModel{reply: goodReply}
	svc := &Service{Client: model, Clock: application.SystemClock{}}

	s, err := svc.Analyze(context.Background(), domain.Request{
		Code:     "def foo(): pass",
		Prompt:   "make it return something",
		Language: "python",
	})
	require.NoError(t, err)

	assert.Equal(t, "def foo(): pass", s.Original)
	assert.Equal(t, "def foo():\n    return 1", s.Suggested)
	assert.Equal(t, "Added a return.", s.Explanation)

	// the built prompt carries the code and the user's request
	assert.Contains(t, model.got, "def foo(): pass")
	assert.Contains(t, model.got, "make it return something")
}

func TestAnalyzeModelError(t *testing.T) {
	model := &fakeModel{err: errors.New("upstream down")}
	svc := &Service{Client: model, Clock: application.SystemClock{}}

	_, err := svc.Analyze(context.Background(), domain.Request{Code: "x", Prompt: "y", Language: "python"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "upstream down")
}

func TestAnalyzeQuotaErrorPassesThrough(t *testing.T) {
	model := &fakeModel{err: domain.ErrQuotaExceeded}
	svc := &Service{Client: model, Clock: application.SystemClock{}}

	_, err := svc.Analyze(context.Background(), domain.Request{Code: "x", Prompt: "y", Language: "python"})
	assert.ErrorIs(t, err, domain.ErrQuotaExceeded)
}

func TestAnalyzeUnparsableReply(t *testing.T) {
	model := &fakeModel{reply: "sorry, no code today"}
	svc := &Service{Client: model, Clock: application.SystemClock{}}

	_, err := svc.Analyze(context.Background(), domain.Request{Code: "x", Prompt: "y", Language: "python"})
	assert.ErrorIs(t, err, domain.ErrUnparsableReply)
}

func TestAnalyzeRecordsHistory(t *testing.T) {
	model := &fakeModel{reply: goodReply}
	repo := &memRepo{}
	svc := &Service{Client: model, Repo: repo, Clock: fixedClock{}}

	_, err := svc.Analyze(context.Background(), domain.Request{
		Code:     "def foo(): pass",
		Prompt:   "optimize the loop",
		Language: "python",
	})
	require.NoError(t, err)

	require.Len(t, repo.rows, 1)
	rec := repo.rows[0]
	assert.NotEmpty(t, rec.ID)
	assert.Equal(t, "python", rec.Language)
	assert.Equal(t, "performance", rec.Context)
	assert.Equal(t, "def foo():\n    return 1", rec.Suggestion.Suggested)
	assert.False(t, rec.CreatedAt.IsZero())
}

func TestHistoryWithoutRepo(t *testing.T) {
	svc := &Service{Client: &fakeModel{}, Clock: application.SystemClock{}}
	list, err := svc.History(context.Background(), 1, 20)
	require.NoError(t, err)
	assert.Empty(t, list)
}

type fixedClock struct{}

func (fixedClock) Now() time.Time { return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC) }
