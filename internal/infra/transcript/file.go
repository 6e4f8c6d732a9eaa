// Package transcript provides durable-slot backends for the chat transcript.
// Each backend stores the whole transcript as one value: load, append
// (rewrite), clear are the only operations.
package transcript

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"codelens/internal/domain/chat"
)

// FileStore keeps the transcript as a single JSON document on disk.
type FileStore struct {
	path string
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the slot. A missing file is an empty transcript; a file that no
// longer decodes is also treated as empty but reported via ErrCorruptTranscript.
func (s *FileStore) Load(ctx context.Context) ([]chat.ChatMessage, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []chat.ChatMessage{}, nil
		}
		return nil, err
	}
	var msgs []chat.ChatMessage
	if err := json.Unmarshal(data, &msgs); err != nil {
		return []chat.ChatMessage{}, fmt.Errorf("%w: %v", chat.ErrCorruptTranscript, err)
	}
	if msgs == nil {
		msgs = []chat.ChatMessage{}
	}
	return msgs, nil
}

// Append persists transcript+msg synchronously, then returns the new sequence.
func (s *FileStore) Append(ctx context.Context, transcript []chat.ChatMessage, msg chat.ChatMessage) ([]chat.ChatMessage, error) {
	next := make([]chat.ChatMessage, 0, len(transcript)+1)
	next = append(next, transcript...)
	next = append(next, msg)
	if err := s.write(next); err != nil {
		return nil, err
	}
	return next, nil
}

// Clear erases the slot. Clearing an absent slot is not an error.
func (s *FileStore) Clear(ctx context.Context) error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// write replaces the document atomically: temp file in the same directory,
// then rename over the slot.
func (s *FileStore) write(msgs []chat.ChatMessage) error {
	data, err := json.MarshalIndent(msgs, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(dir, ".transcript-*")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), s.path)
}
