package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	domain "codelens/internal/domain/analysis"
)

type RecordRepository struct {
	db *sql.DB
}

func NewRecordRepository(db *sql.DB) *RecordRepository {
	return &RecordRepository{db: db}
}

// Save inserts or updates an analysis history row
func (r *RecordRepository) Save(ctx context.Context, rec *domain.Record) error {
	const q = `
INSERT INTO analysis_history
  (id, language, context, prompt, suggestion_json, artifact_url, created_at)
VALUES ($1,$2,$3,$4,$5,$6,$7)
ON CONFLICT (id) DO UPDATE SET
  language=EXCLUDED.language,
  context=EXCLUDED.context,
  prompt=EXCLUDED.prompt,
  suggestion_json=EXCLUDED.suggestion_json,
  artifact_url=EXCLUDED.artifact_url;
`
	suggestion, err := json.Marshal(rec.Suggestion)
	if err != nil {
		return err
	}
	createdAt := rec.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}
	_, err = r.db.ExecContext(ctx, q,
		rec.ID, rec.Language, rec.Context, rec.Prompt, string(suggestion), rec.ArtifactURL, createdAt)
	return err
}

// Paginate returns a page of history rows ordered by created_at desc
func (r *RecordRepository) Paginate(ctx context.Context, page, pageSize int) ([]*domain.Record, error) {
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 20
	}
	offset := (page - 1) * pageSize

	const q = `
SELECT id, language, context, prompt, suggestion_json, artifact_url, created_at
FROM analysis_history
ORDER BY created_at DESC, id DESC
LIMIT $1 OFFSET $2;
`
	rows, err := r.db.QueryContext(ctx, q, pageSize, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []*domain.Record
	for rows.Next() {
		var rec domain.Record
		var suggestion string
		var created time.Time
		if err := rows.Scan(&rec.ID, &rec.Language, &rec.Context, &rec.Prompt, &suggestion, &rec.ArtifactURL, &created); err != nil {
			return nil, err
		}
		if err := json.Unmarshal([]byte(suggestion), &rec.Suggestion); err != nil {
			return nil, err
		}
		rec.CreatedAt = created
		out = append(out, &rec)
	}
	return out, rows.Err()
}
