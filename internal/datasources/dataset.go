package datasources

import (
	"context"
	"time"

	"github.com/jbeshir/community-feed/internal/domain"
)

// DatasetRepository combines the post and user reads the feed pipeline needs
// from the durable store.
type DatasetRepository interface {
	PostFetcher
	ColdStartPostLister
	UserGetter
}

// PostFetcher returns the posts that still exist among ids, in no particular order.
type PostFetcher interface {
	FetchPostsByID(ctx context.Context, ids []string) ([]domain.Post, error)
}

// ColdStartPostLister lists non-personalized candidates: the most engaged
// posts published after filters.PublishedAfter, then the most recent posts.
type ColdStartPostLister interface {
	ListColdStartPosts(ctx context.Context, filters domain.PostFilters, limit int) ([]domain.Candidate, error)
}

// PostEmbeddingLister lists stored post embeddings matching filters.
type PostEmbeddingLister interface {
	ListPostEmbeddings(ctx context.Context, filters domain.PostFilters) ([]domain.PostEmbedding, error)
}

// PostsNeedingEmbeddingLister lists posts with no embedding or whose text
// changed since the embedding was generated.
type PostsNeedingEmbeddingLister interface {
	ListPostsNeedingEmbedding(ctx context.Context, limit int) ([]domain.PostText, error)
}

type PostEmbeddingWriter interface {
	SetPostEmbedding(ctx context.Context, embedding domain.PostEmbedding) error
}

// UserGetter returns domain.ErrNotFound for unknown users.
type UserGetter interface {
	GetUser(ctx context.Context, userID string) (domain.User, error)
}

type UserInterestVectorWriter interface {
	SetUserInterestVector(ctx context.Context, userID string, vector []float32, updatedAt time.Time) error
}

// InterestRefreshUserLister lists users whose profile or likes changed since
// their interest vector was last computed.
type InterestRefreshUserLister interface {
	ListUsersNeedingInterestRefresh(ctx context.Context, limit int) ([]string, error)
}

// LikedPostVectorsLister returns embeddings of posts the user up-voted,
// timestamped with when the vote was flushed, most recent first.
type LikedPostVectorsLister interface {
	ListLikedPostVectors(ctx context.Context, userID string, limit int) ([]domain.TimestampedVector, error)
}
