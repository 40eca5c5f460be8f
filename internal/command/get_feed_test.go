package command

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	cmdmocks "github.com/jbeshir/community-feed/internal/command/mocks"
	"github.com/jbeshir/community-feed/internal/datasources/mocks"
	"github.com/jbeshir/community-feed/internal/datasources/redis"
	"github.com/jbeshir/community-feed/internal/domain"
)

var feedNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func testGetFeedConfig() GetFeedConfig {
	return GetFeedConfig{
		DefaultLimit:   20,
		MaxLimit:       100,
		RecallLimit:    1000,
		CacheTTL:       20 * time.Minute,
		MinFillRatio:   0.8,
		ComputeTimeout: 5 * time.Second,
		DefaultRankingParams: domain.RankingParams{
			SimilarityWeight: 0.5,
			RecencyWeight:    0.3,
			EngagementWeight: 0.2,
		},
	}
}

func rankedPosts(n int) []domain.RankedPost {
	posts := make([]domain.RankedPost, 0, n)
	for i := range n {
		posts = append(posts, domain.RankedPost{
			Post:  domain.Post{ID: fmt.Sprintf("p%03d", i)},
			Score: 1 - float64(i)/float64(n+1),
		})
	}
	return posts
}

type feedMocks struct {
	recall *cmdmocks.MockCommand[RecallPostsRequest, []domain.Candidate]
	rank   *cmdmocks.MockCommand[RankPostsRequest, []domain.RankedPost]
	users  *mocks.MockUserGetter
	cache  *mocks.MockFeedCache
	counts *mocks.MockAggregateCountsGetter
}

func newTestGetFeed(t *testing.T) (*GetFeed, feedMocks) {
	t.Helper()
	m := feedMocks{
		recall: cmdmocks.NewMockCommand[RecallPostsRequest, []domain.Candidate](t),
		rank:   cmdmocks.NewMockCommand[RankPostsRequest, []domain.RankedPost](t),
		users:  mocks.NewMockUserGetter(t),
		cache:  mocks.NewMockFeedCache(t),
		counts: mocks.NewMockAggregateCountsGetter(t),
	}
	cmd := NewGetFeed(m.recall, m.rank, m.users, m.cache, m.counts, testGetFeedConfig())
	cmd.now = func() time.Time { return feedNow }
	return cmd, m
}

func TestGetFeed_Execute_ServesValidCacheEntry(t *testing.T) {
	params := testGetFeedConfig().DefaultRankingParams

	cases := []struct {
		name        string
		posts       []domain.RankedPost
		page        int
		expectedIDs []string
		hasMore     bool
		total       int
	}{
		{
			name:        "first_page",
			posts:       rankedPosts(5),
			page:        1,
			expectedIDs: []string{"p000", "p001"},
			hasMore:     true,
			total:       5,
		},
		{
			name:        "last_page",
			posts:       rankedPosts(5),
			page:        3,
			expectedIDs: []string{"p004"},
			hasMore:     false,
			total:       5,
		},
		{
			name:        "page_past_end",
			posts:       rankedPosts(2),
			page:        4,
			expectedIDs: []string{},
			total:       2,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, m := newTestGetFeed(t)
			m.users.EXPECT().GetUser(mock.Anything, "user1").Return(domain.User{ID: "user1"}, nil)
			m.cache.EXPECT().GetFeed(mock.Anything, "user1", tc.page, 2, "").Return(domain.FeedCacheEntry{
				UserID:            "user1",
				Page:              tc.page,
				Limit:             2,
				Posts:             tc.posts,
				RankingParamsUsed: params,
				ExpiresAt:         feedNow.Add(time.Minute),
			}, true, nil)
			if len(tc.expectedIDs) > 0 {
				m.counts.EXPECT().GetCounts(mock.Anything, domain.SubjectTypePost, tc.expectedIDs).
					Return(map[string]domain.AggregateCounts{}, nil)
			}

			result, err := cmd.Execute(context.Background(), GetFeedRequest{
				UserID: "user1",
				Page:   tc.page,
				Limit:  2,
			})
			require.NoError(t, err)
			assert.True(t, result.FromCache)
			assert.Equal(t, tc.expectedIDs, rankedIDs(result.Posts))
			assert.Equal(t, tc.hasMore, result.HasMore)
			assert.Equal(t, tc.total, result.Total)
			assert.Equal(t, params, result.RankingParamsUsed)
		})
	}
}

func TestGetFeed_Execute_RecomputesUnusableCacheEntry(t *testing.T) {
	params := testGetFeedConfig().DefaultRankingParams
	fresh := feedNow.Add(time.Minute)

	cases := []struct {
		name    string
		entry   domain.FeedCacheEntry
		found   bool
		err     error
		exclude []string
	}{
		{
			name: "miss",
		},
		{
			name: "read_error",
			err:  errors.New("redis down"),
		},
		{
			name:  "expired",
			found: true,
			entry: domain.FeedCacheEntry{
				Posts: rankedPosts(10), RankingParamsUsed: params, ExpiresAt: feedNow,
			},
		},
		{
			name:  "different_ranking_params",
			found: true,
			entry: domain.FeedCacheEntry{
				Posts:             rankedPosts(10),
				RankingParamsUsed: domain.RankingParams{SimilarityWeight: 1},
				ExpiresAt:         fresh,
			},
		},
		{
			name:  "different_board_filter",
			found: true,
			entry: domain.FeedCacheEntry{
				Posts: rankedPosts(10), RankingParamsUsed: params, ExpiresAt: fresh, BoardFilter: "all",
			},
		},
		{
			name:    "under_filled_after_exclusions",
			found:   true,
			exclude: []string{"p000", "p001", "p002"},
			entry: domain.FeedCacheEntry{
				Posts: rankedPosts(5), RankingParamsUsed: params, ExpiresAt: fresh,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, m := newTestGetFeed(t)
			computed := rankedPosts(10)[3:]

			m.users.EXPECT().GetUser(mock.Anything, "user1").Return(domain.User{}, domain.ErrNotFound)
			m.cache.EXPECT().GetFeed(mock.Anything, "user1", 1, 5, "").Return(tc.entry, tc.found, tc.err)
			m.recall.EXPECT().Execute(mock.Anything, RecallPostsRequest{
				UserID:         "user1",
				Limit:          1000,
				ExcludePostIDs: tc.exclude,
			}).Return([]domain.Candidate{{PostID: "p003"}}, nil)
			m.rank.EXPECT().Execute(mock.Anything, RankPostsRequest{
				Candidates: []domain.Candidate{{PostID: "p003"}},
				Params:     params,
			}).Return(computed, nil)
			m.cache.EXPECT().SetFeed(mock.Anything, mock.MatchedBy(func(e domain.FeedCacheEntry) bool {
				return e.UserID == "user1" && e.Page == 1 && e.Limit == 5 &&
					len(e.Posts) == len(computed) && e.ExpiresAt.Equal(feedNow.Add(20*time.Minute))
			}), 20*time.Minute).Return(errors.New("write failed"))
			m.counts.EXPECT().GetCounts(mock.Anything, domain.SubjectTypePost, mock.Anything).
				Return(nil, errors.New("redis down"))

			result, err := cmd.Execute(context.Background(), GetFeedRequest{
				UserID:         "user1",
				Page:           1,
				Limit:          5,
				ExcludePostIDs: tc.exclude,
			})
			require.NoError(t, err)
			assert.False(t, result.FromCache)
			assert.Equal(t, []string{"p003", "p004", "p005", "p006", "p007"}, rankedIDs(result.Posts))
			assert.True(t, result.HasMore)
			assert.Equal(t, 7, result.Total)
		})
	}
}

func TestGetFeed_Execute_RankingParams(t *testing.T) {
	userDefaults := domain.RankingParams{SimilarityWeight: 0.2, RecencyWeight: 0.8}
	weight := 0.9
	diversity := true

	cases := []struct {
		name      string
		user      domain.User
		userErr   error
		overrides domain.RankingParamsOverride
		expected  domain.RankingParams
	}{
		{
			name:     "config_defaults",
			user:     domain.User{ID: "user1"},
			expected: testGetFeedConfig().DefaultRankingParams,
		},
		{
			name:     "user_defaults",
			user:     domain.User{ID: "user1", RankingDefaults: &userDefaults},
			expected: userDefaults,
		},
		{
			name:     "user_lookup_error_uses_config",
			userErr:  errors.New("db down"),
			expected: testGetFeedConfig().DefaultRankingParams,
		},
		{
			name: "overrides_win",
			user: domain.User{ID: "user1", RankingDefaults: &userDefaults},
			overrides: domain.RankingParamsOverride{
				EngagementWeight: &weight,
				ApplyDiversity:   &diversity,
			},
			expected: domain.RankingParams{
				SimilarityWeight: 0.2,
				RecencyWeight:    0.8,
				EngagementWeight: 0.9,
				ApplyDiversity:   true,
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, m := newTestGetFeed(t)
			m.users.EXPECT().GetUser(mock.Anything, "user1").Return(tc.user, tc.userErr)
			m.cache.EXPECT().GetFeed(mock.Anything, "user1", 1, 20, "go").Return(domain.FeedCacheEntry{}, false, nil)
			m.recall.EXPECT().Execute(mock.Anything, mock.Anything).Return(nil, nil)
			m.rank.EXPECT().Execute(mock.Anything, RankPostsRequest{
				Params:      tc.expected,
				BoardFilter: "go",
			}).Return([]domain.RankedPost{}, nil)
			m.cache.EXPECT().SetFeed(mock.Anything, mock.Anything, mock.Anything).Return(nil)

			result, err := cmd.Execute(context.Background(), GetFeedRequest{
				UserID:           "user1",
				BoardFilter:      "go",
				RankingOverrides: tc.overrides,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result.RankingParamsUsed)
			assert.Equal(t, 20, result.Limit)
			assert.Equal(t, 1, result.Page)
			assert.NotNil(t, result.Posts)
			assert.Empty(t, result.Posts)
		})
	}
}

func TestGetFeed_Execute_Errors(t *testing.T) {
	t.Run("invalid_override", func(t *testing.T) {
		cmd, _ := newTestGetFeed(t)
		weight := 1.5

		_, err := cmd.Execute(context.Background(), GetFeedRequest{
			UserID:           "user1",
			RankingOverrides: domain.RankingParamsOverride{RecencyWeight: &weight},
		})
		require.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("recall_error", func(t *testing.T) {
		cmd, m := newTestGetFeed(t)
		m.users.EXPECT().GetUser(mock.Anything, "user1").Return(domain.User{ID: "user1"}, nil)
		m.cache.EXPECT().GetFeed(mock.Anything, "user1", 1, 20, "").Return(domain.FeedCacheEntry{}, false, nil)
		m.recall.EXPECT().Execute(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		_, err := cmd.Execute(context.Background(), GetFeedRequest{UserID: "user1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "recalling candidates")
	})

	t.Run("rank_error", func(t *testing.T) {
		cmd, m := newTestGetFeed(t)
		m.users.EXPECT().GetUser(mock.Anything, "user1").Return(domain.User{ID: "user1"}, nil)
		m.cache.EXPECT().GetFeed(mock.Anything, "user1", 1, 20, "").Return(domain.FeedCacheEntry{}, false, nil)
		m.recall.EXPECT().Execute(mock.Anything, mock.Anything).Return([]domain.Candidate{{PostID: "p1"}}, nil)
		m.rank.EXPECT().Execute(mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

		_, err := cmd.Execute(context.Background(), GetFeedRequest{UserID: "user1"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "ranking candidates")
	})
}

func TestGetFeed_Execute_OverlaysLiveCountsOnCopy(t *testing.T) {
	cmd, m := newTestGetFeed(t)
	params := testGetFeedConfig().DefaultRankingParams
	cached := rankedPosts(2)

	m.users.EXPECT().GetUser(mock.Anything, "user1").Return(domain.User{ID: "user1"}, nil)
	m.cache.EXPECT().GetFeed(mock.Anything, "user1", 1, 2, "").Return(domain.FeedCacheEntry{
		Posts: cached, RankingParamsUsed: params, ExpiresAt: feedNow.Add(time.Minute),
	}, true, nil)
	m.counts.EXPECT().GetCounts(mock.Anything, domain.SubjectTypePost, []string{"p000", "p001"}).
		Return(map[string]domain.AggregateCounts{"p001": {SubjectID: "p001", LikeCount: 9}}, nil)

	result, err := cmd.Execute(context.Background(), GetFeedRequest{UserID: "user1", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, int64(9), result.Posts[1].Post.Counts.LikeCount)
	assert.Equal(t, int64(0), cached[1].Post.Counts.LikeCount)
}

// TestGetFeed_EndToEnd runs recall, ranking and the feed cache against a
// Redis fast store, with the durable store and vector index mocked.
func TestGetFeed_EndToEnd(t *testing.T) {
	ctx := context.Background()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := redis.New(client, redis.DefaultConfig())

	const total = 1000
	vector := []float32{1, 0}
	posts := make([]domain.Post, 0, total)
	candidates := make([]domain.Candidate, 0, total)
	ids := make([]string, 0, total)
	for i := range total {
		id := fmt.Sprintf("post-%04d", i)
		published := feedNow.Add(-time.Duration(i) * time.Minute)
		posts = append(posts, domain.Post{
			ID:          id,
			AuthorID:    fmt.Sprintf("author-%d", i%7),
			Board:       fmt.Sprintf("board-%d", i%5),
			PublishedAt: published,
			Counts:      domain.AggregateCounts{SubjectID: id, LikeCount: int64(i % 13)},
		})
		candidates = append(candidates, domain.Candidate{
			PostID:      id,
			Similarity:  1 - float64(i)/total,
			PublishedAt: published,
		})
		ids = append(ids, id)
	}

	users := mocks.NewMockUserGetter(t)
	users.EXPECT().GetUser(mock.Anything, "user1").
		Return(domain.User{ID: "user1", InterestVector: vector}, nil)

	similarity := mocks.NewMockSimilarPostsByVectorLister(t)
	similarity.EXPECT().ListSimilarPostsByVector(mock.Anything, vector, total).
		Return(candidates, nil).Once()

	postFetcher := mocks.NewMockPostFetcher(t)
	postFetcher.EXPECT().FetchPostsByID(mock.Anything, ids).Return(posts, nil).Once()

	recall := NewRecallPosts(
		users,
		mocks.NewMockUserInterestVectorWriter(t),
		mocks.NewMockEmbedder(t),
		similarity,
		mocks.NewMockColdStartPostLister(t),
		store,
		RecallPostsConfig{MaxLimit: 2000, CacheTTL: 3 * time.Hour, Timeout: time.Second},
	)
	rank := NewRankPosts(postFetcher, store, domain.DefaultRankingConfig())
	rank.now = func() time.Time { return feedNow }

	config := testGetFeedConfig()
	config.DefaultRankingParams.ApplyDiversity = true
	feed := NewGetFeed(recall, rank, users, store, store, config)
	feed.now = func() time.Time { return feedNow }

	first, err := feed.Execute(ctx, GetFeedRequest{UserID: "user1", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.Len(t, first.Posts, 20)
	assert.True(t, first.HasMore)
	assert.Equal(t, total, first.Total)

	second, err := feed.Execute(ctx, GetFeedRequest{UserID: "user1", Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, rankedIDs(first.Posts), rankedIDs(second.Posts))
	assert.True(t, second.HasMore)
	assert.Equal(t, total, second.Total)

	assert.True(t, mr.Exists(store.Keys().Feed("user1", 1, 20, "")))
	assert.True(t, mr.Exists(store.Keys().Recall("user1")))
}
