// Package gemini is a thin wrapper around the official genai client. It only
// covers the plain-text completion this service needs.
package gemini

import (
	"context"

	genai "google.golang.org/genai"

	"codelens/internal/domain/analysis"
)

const defaultModel = "gemini-1.5-flash"

type Client struct {
	cli   *genai.Client
	model string
}

// NewClient builds a Gemini-backed ModelClient. The genai client reads the
// API key from the environment (GEMINI_API_KEY / GOOGLE_API_KEY).
func NewClient(ctx context.Context, model string) (*Client, error) {
	cli, err := genai.NewClient(ctx, &genai.ClientConfig{Backend: genai.BackendGeminiAPI})
	if err != nil {
		return nil, err
	}
	if model == "" {
		model = defaultModel
	}
	return &Client{cli: cli, model: model}, nil
}

func (c *Client) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := c.cli.Models.GenerateContent(ctx, c.model,
		[]*genai.Content{{Parts: []*genai.Part{{Text: prompt}}}},
		nil,
	)
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", analysis.ErrEmptyCompletion
	}
	txt := resp.Candidates[0].Content.Parts[0].Text
	if txt == "" {
		return "", analysis.ErrEmptyCompletion
	}
	return txt, nil
}
