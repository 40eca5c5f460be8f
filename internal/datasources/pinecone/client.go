package pinecone

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/pinecone-io/go-pinecone/pinecone"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ datasources.SimilarityRepository = (*Client)(nil)

const (
	namespace = "posts"

	// maxTopK is the largest result set Pinecone returns from one query
	// that includes metadata.
	maxTopK = 1000

	upsertBatchSize = 100
)

// Client queries a Pinecone index holding one vector per post. Vector IDs
// are post IDs; metadata carries post_id and published_at (unix seconds)
// for the recency tie-break.
type Client struct {
	pinecone *pinecone.Client
	index    *pinecone.Index
}

func NewClient(
	ctx context.Context,
	apiKey string,
	indexName string,
) (*Client, error) {
	pc, err := pinecone.NewClient(pinecone.NewClientParams{
		ApiKey:     apiKey,
		Headers:    nil,
		Host:       "",
		RestClient: nil,
		SourceTag:  "",
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone client: %w", err)
	}

	idx, err := pc.DescribeIndex(ctx, indexName)
	if err != nil {
		return nil, fmt.Errorf("retrieving pinecone index metadata for [%s]: %w", indexName, err)
	}

	return &Client{
		pinecone: pc,
		index:    idx,
	}, nil
}

func (c *Client) connect() (*pinecone.IndexConnection, error) {
	idxConn, err := c.pinecone.Index(pinecone.NewIndexConnParams{
		Host:      c.index.Host,
		Namespace: namespace,
	})
	if err != nil {
		return nil, fmt.Errorf("creating pinecone index connection: %w", err)
	}
	return idxConn, nil
}

func topK(limit int) uint32 {
	return uint32(min(limit, maxTopK))
}

func (c *Client) ListSimilarPostsByVector(
	ctx context.Context,
	vector []float32,
	limit int,
) ([]domain.Candidate, error) {
	if len(vector) == 0 || limit <= 0 {
		return nil, nil
	}

	idxConn, err := c.connect()
	if err != nil {
		return nil, err
	}
	defer func() { _ = idxConn.Close() }()

	resp, err := idxConn.QueryByVectorValues(ctx, &pinecone.QueryByVectorValuesRequest{
		Vector:          vector,
		TopK:            topK(limit),
		MetadataFilter:  nil,
		IncludeValues:   false,
		IncludeMetadata: true,
		SparseValues:    nil,
	})
	if err != nil {
		return nil, fmt.Errorf("querying for similar vectors: %w", err)
	}

	candidates := make([]domain.Candidate, 0, len(resp.Matches))
	for _, match := range resp.Matches {
		if match == nil || match.Vector == nil {
			continue
		}
		candidates = append(candidates, domain.Candidate{
			PostID:      match.Vector.Id,
			Similarity:  float64(match.Score),
			PublishedAt: publishedAt(match.Vector.Metadata),
		})
	}

	// The index orders by score only; re-sort for the recency and ID tie-breaks.
	domain.SortCandidates(candidates)
	return candidates, nil
}

func (c *Client) UpsertPostVectors(ctx context.Context, embeddings []domain.PostEmbedding) error {
	if len(embeddings) == 0 {
		return nil
	}

	idxConn, err := c.connect()
	if err != nil {
		return err
	}
	defer func() { _ = idxConn.Close() }()

	for start := 0; start < len(embeddings); start += upsertBatchSize {
		end := min(start+upsertBatchSize, len(embeddings))

		vectors := make([]*pinecone.Vector, 0, end-start)
		for _, e := range embeddings[start:end] {
			metadata, err := postMetadata(e)
			if err != nil {
				return err
			}
			vectors = append(vectors, &pinecone.Vector{
				Id:       e.PostID,
				Values:   e.Vector,
				Metadata: metadata,
			})
		}

		if _, err := idxConn.UpsertVectors(ctx, vectors); err != nil {
			return fmt.Errorf("upserting vectors: %w", err)
		}
	}

	return nil
}

func postMetadata(e domain.PostEmbedding) (*pinecone.Metadata, error) {
	metadata, err := structpb.NewStruct(map[string]any{
		"post_id":      e.PostID,
		"published_at": float64(e.PublishedAt.Unix()),
	})
	if err != nil {
		return nil, fmt.Errorf("creating metadata for post [%s]: %w", e.PostID, err)
	}
	return metadata, nil
}

func publishedAt(metadata *pinecone.Metadata) time.Time {
	if metadata == nil {
		return time.Time{}
	}
	field, ok := metadata.GetFields()["published_at"]
	if !ok {
		return time.Time{}
	}
	return time.Unix(int64(field.GetNumberValue()), 0).UTC()
}
