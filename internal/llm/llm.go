package llm

import (
	"context"
	"errors"
)

// Client abstracts the external text-generation service. Implementations
// return the raw model output for a single prompt; callers own parsing.
type Client interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// ErrNotConfigured is returned by the placeholder client.
var ErrNotConfigured = errors.New("text-generation client not configured")

// PlaceholderClient is a stub implementation used when no API credential is
// present. Every call fails, which routes callers onto their fallback path.
type PlaceholderClient struct{}

// Complete returns ErrNotConfigured.
func (PlaceholderClient) Complete(ctx context.Context, prompt string) (string, error) {
	_ = ctx
	_ = prompt
	return "", ErrNotConfigured
}

var _ Client = PlaceholderClient{}
