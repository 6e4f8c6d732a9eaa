package transcript

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"codelens/internal/domain/chat"
)

// Schema for the transcript slot: one named row holding the serialized
// transcript, same single-value contract as the file backend.
const schema = `
CREATE TABLE IF NOT EXISTS transcript_slot (
    name        TEXT PRIMARY KEY,
    payload     TEXT NOT NULL,
    updated_at  INTEGER NOT NULL
);
`

const slotName = "chat_history"

// SQLiteStore keeps the transcript in a single-row sqlite table.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLite opens or creates the database at path and runs migrations.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) Close() error { return s.db.Close() }

func (s *SQLiteStore) Load(ctx context.Context) ([]chat.ChatMessage, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM transcript_slot WHERE name=?`, slotName).Scan(&payload)
	if err == sql.ErrNoRows {
		return []chat.ChatMessage{}, nil
	}
	if err != nil {
		return nil, err
	}
	var msgs []chat.ChatMessage
	if err := json.Unmarshal([]byte(payload), &msgs); err != nil {
		return []chat.ChatMessage{}, fmt.Errorf("%w: %v", chat.ErrCorruptTranscript, err)
	}
	if msgs == nil {
		msgs = []chat.ChatMessage{}
	}
	return msgs, nil
}

func (s *SQLiteStore) Append(ctx context.Context, transcript []chat.ChatMessage, msg chat.ChatMessage) ([]chat.ChatMessage, error) {
	next := make([]chat.ChatMessage, 0, len(transcript)+1)
	next = append(next, transcript...)
	next = append(next, msg)

	payload, err := json.Marshal(next)
	if err != nil {
		return nil, err
	}
	_, err = s.db.ExecContext(ctx, `
INSERT INTO transcript_slot (name, payload, updated_at)
VALUES (?, ?, ?)
ON CONFLICT(name) DO UPDATE SET payload=excluded.payload, updated_at=excluded.updated_at;
`, slotName, string(payload), msg.CreatedAt.UnixMilli())
	if err != nil {
		return nil, err
	}
	return next, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx,
		`DELETE FROM transcript_slot WHERE name=?`, slotName)
	return err
}
