package datasources

import (
	"context"

	"github.com/jbeshir/community-feed/internal/domain"
)

// SimilarityRepository combines the vector index operations.
type SimilarityRepository interface {
	SimilarPostsByVectorLister
	PostVectorUpserter
}

// SimilarPostsByVectorLister returns up to limit posts nearest to vector,
// ordered by similarity descending.
type SimilarPostsByVectorLister interface {
	ListSimilarPostsByVector(ctx context.Context, vector []float32, limit int) ([]domain.Candidate, error)
}

type PostVectorUpserter interface {
	UpsertPostVectors(ctx context.Context, embeddings []domain.PostEmbedding) error
}

// NullSimilarityRepository is a null implementation of SimilarityRepository.
// Recall against it always falls back to cold start.
type NullSimilarityRepository struct{}

var _ SimilarityRepository = NullSimilarityRepository{}

func (NullSimilarityRepository) ListSimilarPostsByVector(
	_ context.Context,
	_ []float32,
	_ int,
) ([]domain.Candidate, error) {
	return nil, nil
}

func (NullSimilarityRepository) UpsertPostVectors(_ context.Context, _ []domain.PostEmbedding) error {
	return nil
}
