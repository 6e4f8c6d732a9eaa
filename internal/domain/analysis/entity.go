package analysis

import "time"

// RecordID tipe untuk Record
type RecordID string

// Request is one analysis round trip: the snippet, the user's ask, and the
// detected language tag.
type Request struct {
	Code     string `json:"code"`
	Prompt   string `json:"prompt"`
	Language string `json:"language"`
}

// Suggestion is the model's answer: the untouched input, the rewritten code,
// and a natural-language explanation.
type Suggestion struct {
	Original    string `json:"original"`
	Suggested   string `json:"suggested"`
	Explanation string `json:"explanation"`
}

// Record is the server-side history row kept for every completed analysis.
type Record struct {
	ID          RecordID   `json:"id"`
	Language    string     `json:"language"`
	Context     string     `json:"context"`
	Prompt      string     `json:"prompt"`
	Suggestion  Suggestion `json:"suggestion"`
	ArtifactURL string     `json:"artifact_url,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}
