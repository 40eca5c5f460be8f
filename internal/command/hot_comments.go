package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
)

// HotCommentsConfig holds configuration shared by the hot comment commands.
type HotCommentsConfig struct {
	// Limit is how many top comments are kept per post.
	Limit int
	TTL   time.Duration

	// DefaultMaxPosts bounds how many stale posts one refresh run recomputes.
	DefaultMaxPosts int
}

// RefreshHotCommentsRequest is the request for the RefreshHotComments command.
type RefreshHotCommentsRequest struct {
	MaxPosts int
}

type RefreshHotCommentsResult struct {
	Refreshed int `json:"refreshed"`
	Failed    int `json:"failed"`
}

// RefreshHotComments recomputes the cached top comments of posts marked
// stale by the engagement flush.
type RefreshHotComments struct {
	Stale    datasources.StaleHotCommentsTracker
	Comments datasources.TopCommentsLister
	Cache    datasources.HotCommentsCache
	Config   HotCommentsConfig
}

// NewRefreshHotComments creates a properly initialized RefreshHotComments command.
func NewRefreshHotComments(
	stale datasources.StaleHotCommentsTracker,
	comments datasources.TopCommentsLister,
	cache datasources.HotCommentsCache,
	config HotCommentsConfig,
) *RefreshHotComments {
	return &RefreshHotComments{
		Stale:    stale,
		Comments: comments,
		Cache:    cache,
		Config:   config,
	}
}

func (c *RefreshHotComments) Execute(
	ctx context.Context, req RefreshHotCommentsRequest,
) (RefreshHotCommentsResult, error) {
	logger := domain.LoggerFromContext(ctx)

	maxPosts := req.MaxPosts
	if maxPosts <= 0 {
		maxPosts = c.Config.DefaultMaxPosts
	}

	postIDs, err := c.Stale.PopStaleHotComments(ctx, maxPosts)
	if err != nil {
		return RefreshHotCommentsResult{}, fmt.Errorf("popping stale posts: %w", err)
	}

	var (
		result RefreshHotCommentsResult
		failed []string
	)
	for _, postID := range postIDs {
		if err := c.refresh(ctx, postID); err != nil {
			logger.ErrorContext(ctx, "failed to refresh hot comments", "post_id", postID, "error", err)
			failed = append(failed, postID)
			continue
		}
		result.Refreshed++
	}
	result.Failed = len(failed)

	if len(failed) > 0 {
		if err := c.Stale.MarkHotCommentsStale(ctx, failed); err != nil {
			return result, fmt.Errorf("re-marking failed posts stale: %w", err)
		}
	}

	logger.InfoContext(ctx, "hot comments refresh complete",
		"refreshed", result.Refreshed, "failed", result.Failed)
	return result, nil
}

func (c *RefreshHotComments) refresh(ctx context.Context, postID string) error {
	comments, err := c.Comments.ListTopComments(ctx, postID, c.Config.Limit)
	if err != nil {
		return fmt.Errorf("listing top comments: %w", err)
	}
	if err := c.Cache.SetHotComments(ctx, postID, comments, c.Config.TTL); err != nil {
		return fmt.Errorf("caching hot comments: %w", err)
	}
	return nil
}

// GetHotCommentsRequest is the request for the GetHotComments command.
type GetHotCommentsRequest struct {
	PostID string
}

// GetHotComments serves a post's cached top comments, recomputing them from
// the durable store on a miss.
type GetHotComments struct {
	Comments datasources.TopCommentsLister
	Cache    datasources.HotCommentsCache
	Config   HotCommentsConfig
}

// NewGetHotComments creates a properly initialized GetHotComments command.
func NewGetHotComments(
	comments datasources.TopCommentsLister,
	cache datasources.HotCommentsCache,
	config HotCommentsConfig,
) *GetHotComments {
	return &GetHotComments{
		Comments: comments,
		Cache:    cache,
		Config:   config,
	}
}

func (c *GetHotComments) Execute(ctx context.Context, req GetHotCommentsRequest) ([]domain.Comment, error) {
	logger := domain.LoggerFromContext(ctx)

	cached, found, err := c.Cache.GetHotComments(ctx, req.PostID)
	if err != nil {
		logger.WarnContext(ctx, "unable to read hot comments cache", "post_id", req.PostID, "error", err)
	} else if found {
		return cached, nil
	}

	comments, err := c.Comments.ListTopComments(ctx, req.PostID, c.Config.Limit)
	if err != nil {
		return nil, fmt.Errorf("listing top comments: %w", err)
	}
	if comments == nil {
		comments = []domain.Comment{}
	}

	if err := c.Cache.SetHotComments(ctx, req.PostID, comments, c.Config.TTL); err != nil {
		logger.WarnContext(ctx, "unable to write hot comments cache", "post_id", req.PostID, "error", err)
	}

	return comments, nil
}
