package analysis

import "context"

// Gateway port (client side): one synchronous round trip to the analysis
// endpoint. Fire-once; no retry.
type Gateway interface {
	Analyze(ctx context.Context, req Request) (*Suggestion, error)
}

// ModelClient port (server side): raw prompt in, raw completion text out.
type ModelClient interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// Repository port (interface untuk persistence of analysis history)
type Repository interface {
	Save(ctx context.Context, rec *Record) error
	Paginate(ctx context.Context, page, pageSize int) ([]*Record, error)
}

// ArtifactStore port (interface untuk archiving raw model replies)
type ArtifactStore interface {
	PutText(ctx context.Context, key, contentType string, data []byte) (string, error)
}
