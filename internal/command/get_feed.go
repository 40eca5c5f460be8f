package command

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/jbeshir/community-feed/internal/metrics"
)

// GetFeedRequest is the request for the GetFeed command.
type GetFeedRequest struct {
	UserID           string
	Page             int
	Limit            int
	BoardFilter      string
	ExcludePostIDs   []string
	RankingOverrides domain.RankingParamsOverride
}

// GetFeedConfig holds configuration for serving feeds.
type GetFeedConfig struct {
	DefaultLimit int
	MaxLimit     int

	// RecallLimit is how many candidates are recalled and ranked per compute.
	// The whole ranked set is cached, so it bounds how deep a user can page.
	RecallLimit int

	CacheTTL time.Duration

	// MinFillRatio is the share of a page that must survive exclusions for a
	// cached entry to be served instead of recomputing.
	MinFillRatio float64

	// ComputeTimeout bounds a recompute. It runs detached from the request
	// so an abandoned request still populates the cache.
	ComputeTimeout time.Duration

	DefaultRankingParams domain.RankingParams
}

// GetFeed serves a page of a user's ranked feed, from cache when a fresh
// entry ranked with the same parameters exists.
type GetFeed struct {
	Recall Command[RecallPostsRequest, []domain.Candidate]
	Rank   Command[RankPostsRequest, []domain.RankedPost]
	Users  datasources.UserGetter
	Cache  datasources.FeedCache
	Counts datasources.AggregateCountsGetter
	Config GetFeedConfig

	group singleflight.Group
	now   func() time.Time
}

// NewGetFeed creates a properly initialized GetFeed command.
func NewGetFeed(
	recall Command[RecallPostsRequest, []domain.Candidate],
	rank Command[RankPostsRequest, []domain.RankedPost],
	users datasources.UserGetter,
	cache datasources.FeedCache,
	counts datasources.AggregateCountsGetter,
	config GetFeedConfig,
) *GetFeed {
	return &GetFeed{
		Recall: recall,
		Rank:   rank,
		Users:  users,
		Cache:  cache,
		Counts: counts,
		Config: config,
		now:    time.Now,
	}
}

func (c *GetFeed) Execute(ctx context.Context, req GetFeedRequest) (domain.FeedPage, error) {
	logger := domain.LoggerFromContext(ctx)

	if err := domain.ValidateStruct(req.RankingOverrides); err != nil {
		return domain.FeedPage{}, fmt.Errorf("%w: %w", domain.ErrInvalidRequest, err)
	}

	page := max(req.Page, 1)
	limit := req.Limit
	if limit < 1 {
		limit = c.Config.DefaultLimit
	}
	if c.Config.MaxLimit > 0 && limit > c.Config.MaxLimit {
		limit = c.Config.MaxLimit
	}

	params := req.RankingOverrides.Apply(c.baseRankingParams(ctx, req.UserID))
	exclude := domain.IDSet(req.ExcludePostIDs)

	if feedPage, ok := c.fromCache(ctx, req, page, limit, params, exclude); ok {
		metrics.FeedRequests.WithLabelValues("cache_hit").Inc()
		return c.withLiveCounts(ctx, feedPage), nil
	}

	ch := c.group.DoChan(c.flightKey(req, page, limit, params), func() (any, error) {
		computeCtx := context.WithoutCancel(ctx)
		if c.Config.ComputeTimeout > 0 {
			var cancel context.CancelFunc
			computeCtx, cancel = context.WithTimeout(computeCtx, c.Config.ComputeTimeout)
			defer cancel()
		}
		return c.compute(computeCtx, req, page, limit, params)
	})

	var ranked []domain.RankedPost
	select {
	case <-ctx.Done():
		metrics.FeedRequests.WithLabelValues("error").Inc()
		return domain.FeedPage{}, fmt.Errorf("waiting for feed compute: %w", ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			metrics.FeedRequests.WithLabelValues("error").Inc()
			return domain.FeedPage{}, res.Err
		}
		ranked = res.Val.([]domain.RankedPost)
		if res.Shared {
			logger.DebugContext(ctx, "shared in-flight feed compute", "user_id", req.UserID)
		}
	}

	metrics.FeedRequests.WithLabelValues("computed").Inc()

	ranked = domain.ExcludePosts(ranked, exclude)
	posts, hasMore := domain.PageOf(ranked, page, limit)
	return c.withLiveCounts(ctx, domain.FeedPage{
		Posts:             posts,
		Page:              page,
		Limit:             limit,
		Total:             len(ranked),
		HasMore:           hasMore,
		RankingParamsUsed: params,
		FromCache:         false,
	}), nil
}

// baseRankingParams returns the user's stored defaults, or the configured
// defaults when the user has none or cannot be loaded.
func (c *GetFeed) baseRankingParams(ctx context.Context, userID string) domain.RankingParams {
	user, err := c.Users.GetUser(ctx, userID)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			domain.LoggerFromContext(ctx).WarnContext(ctx, "unable to load user ranking defaults",
				"user_id", userID, "error", err)
		}
		return c.Config.DefaultRankingParams
	}
	if user.RankingDefaults == nil {
		return c.Config.DefaultRankingParams
	}
	return *user.RankingDefaults
}

func (c *GetFeed) fromCache(
	ctx context.Context,
	req GetFeedRequest,
	page, limit int,
	params domain.RankingParams,
	exclude map[string]struct{},
) (domain.FeedPage, bool) {
	logger := domain.LoggerFromContext(ctx)

	entry, found, err := c.Cache.GetFeed(ctx, req.UserID, page, limit, req.BoardFilter)
	if err != nil {
		logger.WarnContext(ctx, "unable to read feed cache", "user_id", req.UserID, "error", err)
		return domain.FeedPage{}, false
	}
	if !found || !entry.Valid(c.now()) || entry.RankingParamsUsed != params || entry.BoardFilter != req.BoardFilter {
		return domain.FeedPage{}, false
	}

	expected, _ := domain.PageOf(entry.Posts, page, limit)
	remaining := domain.ExcludePosts(entry.Posts, exclude)
	posts, hasMore := domain.PageOf(remaining, page, limit)
	if !domain.MeetsFill(len(posts), len(expected), c.Config.MinFillRatio) {
		logger.DebugContext(ctx, "cached feed page under-filled after exclusions",
			"user_id", req.UserID, "got", len(posts), "expected", len(expected))
		return domain.FeedPage{}, false
	}

	return domain.FeedPage{
		Posts:             posts,
		Page:              page,
		Limit:             limit,
		Total:             len(remaining),
		HasMore:           hasMore,
		RankingParamsUsed: params,
		FromCache:         true,
	}, true
}

func (c *GetFeed) compute(
	ctx context.Context,
	req GetFeedRequest,
	page, limit int,
	params domain.RankingParams,
) ([]domain.RankedPost, error) {
	logger := domain.LoggerFromContext(ctx)
	start := c.now()

	candidates, err := c.Recall.Execute(ctx, RecallPostsRequest{
		UserID:         req.UserID,
		Limit:          c.Config.RecallLimit,
		ExcludePostIDs: req.ExcludePostIDs,
	})
	if err != nil {
		return nil, fmt.Errorf("recalling candidates: %w", err)
	}

	ranked, err := c.Rank.Execute(ctx, RankPostsRequest{
		Candidates:  candidates,
		Params:      params,
		BoardFilter: req.BoardFilter,
	})
	if err != nil {
		return nil, fmt.Errorf("ranking candidates: %w", err)
	}

	now := c.now()
	metrics.FeedComputeDuration.Observe(now.Sub(start).Seconds())

	entry := domain.FeedCacheEntry{
		UserID:            req.UserID,
		Page:              page,
		Limit:             limit,
		BoardFilter:       req.BoardFilter,
		Posts:             ranked,
		RankingParamsUsed: params,
		CreatedAt:         now,
		ExpiresAt:         now.Add(c.Config.CacheTTL),
	}
	if err := c.Cache.SetFeed(ctx, entry, c.Config.CacheTTL); err != nil {
		logger.WarnContext(ctx, "unable to write feed cache", "user_id", req.UserID, "error", err)
	}

	return ranked, nil
}

// withLiveCounts overlays the fast store's counts on a copy of the page.
// The page may share its backing array with a cached or in-flight result.
func (c *GetFeed) withLiveCounts(ctx context.Context, feedPage domain.FeedPage) domain.FeedPage {
	feedPage.Posts = slices.Clone(feedPage.Posts)
	if len(feedPage.Posts) == 0 {
		if feedPage.Posts == nil {
			feedPage.Posts = []domain.RankedPost{}
		}
		return feedPage
	}

	ids := make([]string, 0, len(feedPage.Posts))
	for _, p := range feedPage.Posts {
		ids = append(ids, p.Post.ID)
	}

	counts, err := c.Counts.GetCounts(ctx, domain.SubjectTypePost, ids)
	if err != nil {
		domain.LoggerFromContext(ctx).WarnContext(ctx, "unable to read live counts for feed page", "error", err)
		return feedPage
	}

	for i := range feedPage.Posts {
		if live, ok := counts[feedPage.Posts[i].Post.ID]; ok {
			feedPage.Posts[i].Post.Counts = live
		}
	}
	return feedPage
}

func (c *GetFeed) flightKey(req GetFeedRequest, page, limit int, params domain.RankingParams) string {
	exclude := slices.Clone(req.ExcludePostIDs)
	slices.Sort(exclude)

	return strings.Join([]string{
		req.UserID,
		strconv.Itoa(page),
		strconv.Itoa(limit),
		req.BoardFilter,
		strconv.FormatFloat(params.SimilarityWeight, 'g', -1, 64),
		strconv.FormatFloat(params.RecencyWeight, 'g', -1, 64),
		strconv.FormatFloat(params.EngagementWeight, 'g', -1, 64),
		strconv.FormatBool(params.ApplyDiversity),
		strings.Join(exclude, ","),
	}, "|")
}
