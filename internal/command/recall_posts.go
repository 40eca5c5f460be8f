package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/jbeshir/community-feed/internal/metrics"
)

// RecallPostsRequest is the request for the RecallPosts command.
type RecallPostsRequest struct {
	UserID         string
	Limit          int
	ExcludePostIDs []string

	// ForceRefresh skips the recall cache and queries the similarity driver.
	ForceRefresh bool
}

// RecallPostsConfig holds configuration for candidate recall.
type RecallPostsConfig struct {
	// MaxLimit caps how many candidates a single recall may return.
	MaxLimit int

	// CacheTTL is how long personalized recall results are reused.
	CacheTTL time.Duration

	// Timeout bounds each similarity driver query. On expiry recall falls
	// back to cold start rather than failing.
	Timeout time.Duration

	// ColdStartWindow is how far back cold start looks for engaged posts
	// before filling with the most recent ones.
	ColdStartWindow time.Duration
}

// RecallPosts produces the candidate set for a user's feed: the posts
// nearest to their interest vector, or a non-personalized fallback when no
// vector or no similarity result is available.
type RecallPosts struct {
	Users        datasources.UserGetter
	VectorWriter datasources.UserInterestVectorWriter
	Embedder     datasources.Embedder
	Similarity   datasources.SimilarPostsByVectorLister
	ColdStart    datasources.ColdStartPostLister
	Cache        datasources.RecallCache
	Config       RecallPostsConfig

	now func() time.Time
}

// NewRecallPosts creates a properly initialized RecallPosts command.
func NewRecallPosts(
	users datasources.UserGetter,
	vectorWriter datasources.UserInterestVectorWriter,
	embedder datasources.Embedder,
	similarity datasources.SimilarPostsByVectorLister,
	coldStart datasources.ColdStartPostLister,
	cache datasources.RecallCache,
	config RecallPostsConfig,
) *RecallPosts {
	return &RecallPosts{
		Users:        users,
		VectorWriter: vectorWriter,
		Embedder:     embedder,
		Similarity:   similarity,
		ColdStart:    coldStart,
		Cache:        cache,
		Config:       config,
		now:          time.Now,
	}
}

// Execute returns up to req.Limit candidates ordered by similarity, then
// recency, then post ID. Only a failing cold start query is an error.
func (c *RecallPosts) Execute(ctx context.Context, req RecallPostsRequest) ([]domain.Candidate, error) {
	logger := domain.LoggerFromContext(ctx)

	limit := req.Limit
	if limit < 1 {
		limit = 1
	}
	if c.Config.MaxLimit > 0 && limit > c.Config.MaxLimit {
		limit = c.Config.MaxLimit
	}

	exclude := domain.IDSet(req.ExcludePostIDs)
	want := limit + len(exclude)

	if !req.ForceRefresh {
		cached, found, err := c.Cache.GetRecall(ctx, req.UserID)
		switch {
		case err != nil:
			logger.WarnContext(ctx, "unable to read recall cache", "user_id", req.UserID, "error", err)
		case found && len(cached) >= want:
			metrics.RecallResults.WithLabelValues("cache").Inc()
			return truncateCandidates(domain.ExcludeCandidates(cached, exclude), limit), nil
		}
	}

	vector := c.interestVector(ctx, req.UserID)
	if len(vector) == 0 {
		logger.DebugContext(ctx, "no interest vector, using cold start", "user_id", req.UserID)
		return c.coldStart(ctx, req.ExcludePostIDs, limit)
	}

	candidates, err := c.similar(ctx, vector, want)
	if err != nil {
		logger.WarnContext(ctx, "similarity query failed, using cold start",
			"user_id", req.UserID, "error", err)
		return c.coldStart(ctx, req.ExcludePostIDs, limit)
	}
	if len(candidates) == 0 {
		logger.DebugContext(ctx, "similarity query returned nothing, using cold start", "user_id", req.UserID)
		return c.coldStart(ctx, req.ExcludePostIDs, limit)
	}

	if err := c.Cache.SetRecall(ctx, req.UserID, candidates, c.Config.CacheTTL); err != nil {
		logger.WarnContext(ctx, "unable to write recall cache", "user_id", req.UserID, "error", err)
	}

	metrics.RecallResults.WithLabelValues("vector").Inc()
	return truncateCandidates(domain.ExcludeCandidates(candidates, exclude), limit), nil
}

// interestVector returns the user's stored vector, generating one from their
// profile text when none is stored yet. A nil result means cold start.
func (c *RecallPosts) interestVector(ctx context.Context, userID string) []float32 {
	logger := domain.LoggerFromContext(ctx)

	user, err := c.Users.GetUser(ctx, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		logger.WarnContext(ctx, "unable to load user", "user_id", userID, "error", err)
		return nil
	}

	if len(user.InterestVector) > 0 {
		return user.InterestVector
	}
	if user.ProfileText == "" {
		return nil
	}

	vector, err := c.Embedder.EmbedText(ctx, user.ProfileText)
	if err != nil {
		logger.WarnContext(ctx, "unable to embed profile text", "user_id", userID, "error", err)
		return nil
	}
	if len(vector) == 0 {
		return nil
	}

	if err := c.VectorWriter.SetUserInterestVector(ctx, userID, vector, c.now()); err != nil {
		logger.WarnContext(ctx, "unable to store generated interest vector", "user_id", userID, "error", err)
	}

	return vector
}

func (c *RecallPosts) similar(ctx context.Context, vector []float32, limit int) ([]domain.Candidate, error) {
	if c.Config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.Config.Timeout)
		defer cancel()
	}

	candidates, err := c.Similarity.ListSimilarPostsByVector(ctx, vector, limit)
	if err != nil {
		return nil, fmt.Errorf("listing similar posts: %w", err)
	}
	return candidates, nil
}

func (c *RecallPosts) coldStart(ctx context.Context, excludePostIDs []string, limit int) ([]domain.Candidate, error) {
	candidates, err := c.ColdStart.ListColdStartPosts(ctx, domain.PostFilters{
		PublishedAfter: c.now().Add(-c.Config.ColdStartWindow),
		ExcludePostIDs: excludePostIDs,
	}, limit)
	if err != nil {
		return nil, fmt.Errorf("listing cold start posts: %w", err)
	}

	metrics.RecallResults.WithLabelValues("cold_start").Inc()
	return candidates, nil
}

func truncateCandidates(candidates []domain.Candidate, limit int) []domain.Candidate {
	if len(candidates) > limit {
		return candidates[:limit]
	}
	return candidates
}
