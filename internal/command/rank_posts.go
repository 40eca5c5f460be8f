package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
)

// RankPostsRequest is the request for the RankPosts command.
type RankPostsRequest struct {
	Candidates []domain.Candidate
	Params     domain.RankingParams

	// BoardFilter, when set, drops candidates from other boards.
	BoardFilter string
}

// RankPosts loads the posts and engagement behind a candidate set and
// orders them with the ranking function.
type RankPosts struct {
	Posts  datasources.PostFetcher
	Counts datasources.AggregateCountsGetter
	Config domain.RankingConfig

	now func() time.Time
}

// NewRankPosts creates a properly initialized RankPosts command.
func NewRankPosts(
	posts datasources.PostFetcher,
	counts datasources.AggregateCountsGetter,
	config domain.RankingConfig,
) *RankPosts {
	return &RankPosts{
		Posts:  posts,
		Counts: counts,
		Config: config,
		now:    time.Now,
	}
}

// Execute ranks the candidates. Candidates whose post no longer exists are
// dropped; counts come from the fast store where it has them and from the
// durable aggregate loaded with the post otherwise.
func (c *RankPosts) Execute(ctx context.Context, req RankPostsRequest) ([]domain.RankedPost, error) {
	logger := domain.LoggerFromContext(ctx)

	if len(req.Candidates) == 0 {
		return []domain.RankedPost{}, nil
	}

	ids := make([]string, 0, len(req.Candidates))
	seen := make(map[string]struct{}, len(req.Candidates))
	for _, candidate := range req.Candidates {
		if _, dup := seen[candidate.PostID]; dup {
			continue
		}
		seen[candidate.PostID] = struct{}{}
		ids = append(ids, candidate.PostID)
	}

	posts, err := c.Posts.FetchPostsByID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching candidate posts: %w", err)
	}

	postsByID := make(map[string]domain.Post, len(posts))
	for _, post := range posts {
		postsByID[post.ID] = post
	}

	liveCounts, err := c.Counts.GetCounts(ctx, domain.SubjectTypePost, ids)
	if err != nil {
		logger.WarnContext(ctx, "unable to read live counts, ranking with durable counts", "error", err)
		liveCounts = nil
	}

	inputs := make([]domain.RankingInput, 0, len(ids))
	added := make(map[string]struct{}, len(ids))
	for _, candidate := range req.Candidates {
		post, ok := postsByID[candidate.PostID]
		if !ok {
			continue
		}
		if _, dup := added[post.ID]; dup {
			continue
		}
		if req.BoardFilter != "" && post.Board != req.BoardFilter {
			continue
		}
		added[post.ID] = struct{}{}

		counts := post.Counts
		if live, ok := liveCounts[post.ID]; ok {
			counts = live
		}
		counts.SubjectID = post.ID

		inputs = append(inputs, domain.RankingInput{
			Post:       post,
			Similarity: candidate.Similarity,
			Counts:     &counts,
		})
	}

	if dropped := len(ids) - len(postsByID); dropped > 0 {
		logger.DebugContext(ctx, "dropped candidates without a post record", "count", dropped)
	}

	return domain.RankPosts(inputs, req.Params, c.Config, c.now()), nil
}
