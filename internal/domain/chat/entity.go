package chat

import (
	"time"

	"codelens/internal/domain/analysis"
)

// MessageID tipe untuk ChatMessage
type MessageID string

// Role enum
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// ChatMessage is one entry in a transcript. Immutable once created.
type ChatMessage struct {
	ID         MessageID            `json:"id"`
	Role       Role                 `json:"role"`
	Content    string               `json:"content"`
	CreatedAt  time.Time            `json:"created_at"`
	Code       string               `json:"code,omitempty"`
	Suggestion *analysis.Suggestion `json:"suggestion,omitempty"`
}

// NewUserMessage builds a user turn carrying the submitted snippet.
func NewUserMessage(id MessageID, now time.Time, prompt, code string) ChatMessage {
	return ChatMessage{
		ID:        id,
		Role:      RoleUser,
		Content:   prompt,
		CreatedAt: now,
		Code:      code,
	}
}

// NewAssistantMessage builds an assistant turn carrying the model's suggestion.
func NewAssistantMessage(id MessageID, now time.Time, s *analysis.Suggestion) ChatMessage {
	return ChatMessage{
		ID:         id,
		Role:       RoleAssistant,
		Content:    s.Explanation,
		CreatedAt:  now,
		Suggestion: s,
	}
}
