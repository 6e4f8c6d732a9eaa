// Package analysis implements the server-side analyze use case: route the
// request to a focus area, build the prompt, call the model, parse the reply.
package analysis

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"codelens/internal/application"
	domain "codelens/internal/domain/analysis"
	"codelens/internal/infra/ai/prompt"
)

// Service is safe for concurrent use. Repo and Artifacts are optional; when
// nil the analysis is still performed, just not recorded.
type Service struct {
	Client    domain.ModelClient
	Repo      domain.Repository
	Artifacts domain.ArtifactStore
	Clock     application.Clock
}

// Analyze runs one analysis. The suggestion's Original field always echoes
// the submitted code untouched.
func (s *Service) Analyze(ctx context.Context, req domain.Request) (*domain.Suggestion, error) {
	focus := prompt.DetermineContext(req.Code, req.Prompt)
	log.Printf("analyze language=%s context=%s code_bytes=%d", req.Language, focus, len(req.Code))

	full := prompt.Build(focus, req.Language, req.Code, req.Prompt)

	raw, err := s.Client.Complete(ctx, full)
	if err != nil {
		return nil, fmt.Errorf("model error: %w", err)
	}

	suggested, explanation, err := prompt.Parse(raw, req.Language)
	if err != nil {
		log.Printf("analyze parse failed: %v reply_bytes=%d", err, len(raw))
		return nil, err
	}

	suggestion := &domain.Suggestion{
		Original:    req.Code,
		Suggested:   suggested,
		Explanation: explanation,
	}

	s.record(ctx, req, focus, suggestion, raw)
	return suggestion, nil
}

// History returns a page of stored analyses, newest first.
func (s *Service) History(ctx context.Context, page, pageSize int) ([]*domain.Record, error) {
	if s.Repo == nil {
		return []*domain.Record{}, nil
	}
	return s.Repo.Paginate(ctx, page, pageSize)
}

// record archives the raw reply and saves the history row. Failures here are
// logged, never surfaced: the caller already has its suggestion.
func (s *Service) record(ctx context.Context, req domain.Request, focus string, sg *domain.Suggestion, raw string) {
	id := uuid.New().String()

	artifactURL := ""
	if s.Artifacts != nil {
		key := fmt.Sprintf("replies/%s.txt", id)
		url, err := s.Artifacts.PutText(ctx, key, "text/plain", []byte(raw))
		if err != nil {
			log.Printf("reply archive failed: %v", err)
		} else {
			artifactURL = url
		}
	}

	if s.Repo == nil {
		return
	}
	rec := &domain.Record{
		ID:          domain.RecordID(id),
		Language:    req.Language,
		Context:     focus,
		Prompt:      req.Prompt,
		Suggestion:  *sg,
		ArtifactURL: artifactURL,
		CreatedAt:   s.Clock.Now(),
	}
	if err := s.Repo.Save(ctx, rec); err != nil {
		log.Printf("analysis history save failed: %v", err)
	}
}
