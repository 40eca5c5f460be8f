package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jbeshir/community-feed/internal/datasources/mocks"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var rankNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func rankedIDs(posts []domain.RankedPost) []string {
	ids := make([]string, 0, len(posts))
	for _, p := range posts {
		ids = append(ids, p.Post.ID)
	}
	return ids
}

func newTestRankPosts(t *testing.T) (*RankPosts, *mocks.MockPostFetcher, *mocks.MockAggregateCountsGetter) {
	t.Helper()
	posts := mocks.NewMockPostFetcher(t)
	counts := mocks.NewMockAggregateCountsGetter(t)
	cmd := NewRankPosts(posts, counts, domain.DefaultRankingConfig())
	cmd.now = func() time.Time { return rankNow }
	return cmd, posts, counts
}

func TestRankPosts_Execute(t *testing.T) {
	similarityOnly := domain.RankingParams{SimilarityWeight: 1}
	engagementOnly := domain.RankingParams{EngagementWeight: 1}

	posts := []domain.Post{
		{ID: "p1", Board: "go", PublishedAt: rankNow, Counts: domain.AggregateCounts{LikeCount: 1}},
		{ID: "p2", Board: "rust", PublishedAt: rankNow, Counts: domain.AggregateCounts{LikeCount: 50}},
		{ID: "p3", Board: "go", PublishedAt: rankNow},
	}
	cands := []domain.Candidate{
		{PostID: "p1", Similarity: 0.9},
		{PostID: "p2", Similarity: 0.8},
		{PostID: "p3", Similarity: 0.7},
		{PostID: "gone", Similarity: 0.95},
	}

	cases := []struct {
		name        string
		params      domain.RankingParams
		board       string
		liveCounts  map[string]domain.AggregateCounts
		countsErr   error
		expectedIDs []string
	}{
		{
			name:        "orders_by_similarity_and_drops_missing_posts",
			params:      similarityOnly,
			expectedIDs: []string{"p1", "p2", "p3"},
		},
		{
			name:        "board_filter",
			params:      similarityOnly,
			board:       "go",
			expectedIDs: []string{"p1", "p3"},
		},
		{
			name:        "durable_counts_when_fast_store_has_none",
			params:      engagementOnly,
			liveCounts:  map[string]domain.AggregateCounts{},
			expectedIDs: []string{"p2", "p1", "p3"},
		},
		{
			name:   "live_counts_win",
			params: engagementOnly,
			liveCounts: map[string]domain.AggregateCounts{
				"p3": {SubjectID: "p3", LikeCount: 500},
			},
			expectedIDs: []string{"p3", "p2", "p1"},
		},
		{
			name:        "fast_store_error_degrades_to_durable",
			params:      engagementOnly,
			countsErr:   errors.New("redis down"),
			expectedIDs: []string{"p2", "p1", "p3"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, postFetcher, counts := newTestRankPosts(t)
			postFetcher.EXPECT().
				FetchPostsByID(mock.Anything, []string{"p1", "p2", "p3", "gone"}).
				Return(posts, nil)
			counts.EXPECT().
				GetCounts(mock.Anything, domain.SubjectTypePost, []string{"p1", "p2", "p3", "gone"}).
				Return(tc.liveCounts, tc.countsErr)

			result, err := cmd.Execute(context.Background(), RankPostsRequest{
				Candidates:  cands,
				Params:      tc.params,
				BoardFilter: tc.board,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.expectedIDs, rankedIDs(result))
		})
	}
}

func TestRankPosts_Execute_CarriesCountsOnPosts(t *testing.T) {
	cmd, postFetcher, counts := newTestRankPosts(t)
	postFetcher.EXPECT().FetchPostsByID(mock.Anything, []string{"p1"}).
		Return([]domain.Post{{ID: "p1", Counts: domain.AggregateCounts{LikeCount: 1}}}, nil)
	counts.EXPECT().GetCounts(mock.Anything, domain.SubjectTypePost, []string{"p1"}).
		Return(map[string]domain.AggregateCounts{"p1": {SubjectID: "p1", LikeCount: 7, ViewCount: 3}}, nil)

	result, err := cmd.Execute(context.Background(), RankPostsRequest{
		Candidates: []domain.Candidate{{PostID: "p1", Similarity: 0.5}},
		Params:     domain.RankingParams{SimilarityWeight: 1},
	})
	require.NoError(t, err)
	require.Len(t, result, 1)
	assert.Equal(t, domain.AggregateCounts{SubjectID: "p1", LikeCount: 7, ViewCount: 3}, result[0].Post.Counts)
}

func TestRankPosts_Execute_Deterministic(t *testing.T) {
	posts := make([]domain.Post, 0, 50)
	cands := make([]domain.Candidate, 0, 50)
	ids := make([]string, 0, 50)
	for i := range 50 {
		id := string(rune('a'+i%26)) + string(rune('a'+i/26))
		posts = append(posts, domain.Post{ID: id, AuthorID: "author", PublishedAt: rankNow})
		cands = append(cands, domain.Candidate{PostID: id, Similarity: 0.5})
		ids = append(ids, id)
	}

	var previous []string
	for range 3 {
		cmd, postFetcher, counts := newTestRankPosts(t)
		postFetcher.EXPECT().FetchPostsByID(mock.Anything, ids).Return(posts, nil)
		counts.EXPECT().GetCounts(mock.Anything, domain.SubjectTypePost, ids).
			Return(map[string]domain.AggregateCounts{}, nil)

		result, err := cmd.Execute(context.Background(), RankPostsRequest{
			Candidates: cands,
			Params:     domain.RankingParams{SimilarityWeight: 1, RecencyWeight: 1, ApplyDiversity: true},
		})
		require.NoError(t, err)
		require.Len(t, result, 50)

		if previous != nil {
			assert.Equal(t, previous, rankedIDs(result))
		}
		previous = rankedIDs(result)
	}
}

func TestRankPosts_Execute_Errors(t *testing.T) {
	t.Run("empty_candidates", func(t *testing.T) {
		cmd, _, _ := newTestRankPosts(t)
		result, err := cmd.Execute(context.Background(), RankPostsRequest{})
		require.NoError(t, err)
		assert.Empty(t, result)
	})

	t.Run("post_fetch_error", func(t *testing.T) {
		cmd, postFetcher, _ := newTestRankPosts(t)
		postFetcher.EXPECT().FetchPostsByID(mock.Anything, []string{"p1"}).
			Return(nil, errors.New("db down"))

		_, err := cmd.Execute(context.Background(), RankPostsRequest{
			Candidates: []domain.Candidate{{PostID: "p1"}},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "fetching candidate posts")
	})
}
