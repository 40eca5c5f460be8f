package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
)

// ListTrendingPostsRequest is the request for the ListTrendingPosts command.
type ListTrendingPostsRequest struct {
	Board string
	Limit int
}

// ListTrendingPostsConfig holds configuration for the non-personalized feed.
type ListTrendingPostsConfig struct {
	Window       time.Duration
	DefaultLimit int
	MaxLimit     int
}

// ListTrendingPosts returns the most engaged recent posts, the same ordering
// cold start recall serves users without an interest vector.
type ListTrendingPosts struct {
	Candidates datasources.ColdStartPostLister
	Posts      datasources.PostFetcher
	Config     ListTrendingPostsConfig

	now func() time.Time
}

// NewListTrendingPosts creates a properly initialized ListTrendingPosts command.
func NewListTrendingPosts(
	candidates datasources.ColdStartPostLister,
	posts datasources.PostFetcher,
	config ListTrendingPostsConfig,
) *ListTrendingPosts {
	return &ListTrendingPosts{
		Candidates: candidates,
		Posts:      posts,
		Config:     config,
		now:        time.Now,
	}
}

func (c *ListTrendingPosts) Execute(ctx context.Context, req ListTrendingPostsRequest) ([]domain.Post, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = c.Config.DefaultLimit
	}
	limit = min(limit, c.Config.MaxLimit)

	candidates, err := c.Candidates.ListColdStartPosts(ctx, domain.PostFilters{
		Board:          req.Board,
		PublishedAfter: c.now().Add(-c.Config.Window),
	}, limit)
	if err != nil {
		return nil, fmt.Errorf("listing trending candidates: %w", err)
	}
	if len(candidates) == 0 {
		return nil, nil
	}

	ids := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		ids = append(ids, candidate.PostID)
	}

	fetched, err := c.Posts.FetchPostsByID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("fetching trending posts: %w", err)
	}

	byID := make(map[string]domain.Post, len(fetched))
	for _, post := range fetched {
		byID[post.ID] = post
	}

	posts := make([]domain.Post, 0, len(ids))
	for _, id := range ids {
		if post, ok := byID[id]; ok {
			posts = append(posts, post)
		}
	}
	return posts, nil
}
