package datasources

import "context"

// Embedder embeds text into a vector in the same space as post embeddings.
type Embedder interface {
	EmbedText(ctx context.Context, text string) ([]float32, error)
}

// NullEmbedder is a null implementation of Embedder. A nil vector means no
// embedding is available and callers treat the user or post as unembedded.
type NullEmbedder struct{}

var _ Embedder = NullEmbedder{}

func (NullEmbedder) EmbedText(_ context.Context, _ string) ([]float32, error) {
	return nil, nil
}
