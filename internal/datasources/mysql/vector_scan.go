package mysql

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
)

var _ datasources.SimilarityRepository = (*VectorScan)(nil)

// VectorScan answers similarity queries by scoring every stored embedding
// published within the scan window. It suits deployments without a vector
// index; embeddings are written by SetPostEmbedding, so upserts are no-ops.
type VectorScan struct {
	embeddings datasources.PostEmbeddingLister
	window     time.Duration
	now        func() time.Time
}

// NewVectorScan returns a scanner over posts published in the last window.
// A zero window scans every post.
func NewVectorScan(embeddings datasources.PostEmbeddingLister, window time.Duration) *VectorScan {
	return &VectorScan{
		embeddings: embeddings,
		window:     window,
		now:        time.Now,
	}
}

func (s *VectorScan) ListSimilarPostsByVector(
	ctx context.Context,
	vector []float32,
	limit int,
) ([]domain.Candidate, error) {
	if len(vector) == 0 || limit <= 0 {
		return nil, nil
	}

	var filters domain.PostFilters
	if s.window > 0 {
		filters.PublishedAfter = s.now().Add(-s.window)
	}

	embeddings, err := s.embeddings.ListPostEmbeddings(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("listing post embeddings: %w", err)
	}

	return domain.TopKBySimilarity(vector, embeddings, nil, limit), nil
}

func (s *VectorScan) UpsertPostVectors(_ context.Context, _ []domain.PostEmbedding) error {
	return nil
}
