package datasources

import (
	"context"
	"time"

	"github.com/jbeshir/community-feed/internal/domain"
)

// FeedCache stores whole ranked feeds. found is false on a miss.
type FeedCache interface {
	GetFeed(
		ctx context.Context, userID string, page, limit int, boardFilter string,
	) (entry domain.FeedCacheEntry, found bool, err error)
	SetFeed(ctx context.Context, entry domain.FeedCacheEntry, ttl time.Duration) error
}

// RecallCache stores a user's personalized recall candidates.
type RecallCache interface {
	GetRecall(ctx context.Context, userID string) (candidates []domain.Candidate, found bool, err error)
	SetRecall(ctx context.Context, userID string, candidates []domain.Candidate, ttl time.Duration) error
}

// HotCommentsCache stores the top comments of a post.
type HotCommentsCache interface {
	GetHotComments(ctx context.Context, postID string) (comments []domain.Comment, found bool, err error)
	SetHotComments(ctx context.Context, postID string, comments []domain.Comment, ttl time.Duration) error
}

// StaleHotCommentsTracker records posts whose hot comments need recomputing.
type StaleHotCommentsTracker interface {
	MarkHotCommentsStale(ctx context.Context, postIDs []string) error
	PopStaleHotComments(ctx context.Context, limit int) ([]string, error)
}

// TopCommentsLister returns a post's comments ordered by likes, then newest.
type TopCommentsLister interface {
	ListTopComments(ctx context.Context, postID string, limit int) ([]domain.Comment, error)
}
