package domain

import (
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func countsPtr(likes, dislikes, comments, views int64) *AggregateCounts {
	return &AggregateCounts{LikeCount: likes, DislikeCount: dislikes, CommentCount: comments, ViewCount: views}
}

func rankedIDs(ranked []RankedPost) []string {
	ids := make([]string, 0, len(ranked))
	for _, r := range ranked {
		ids = append(ids, r.Post.ID)
	}
	return ids
}

func TestRankingParams_Normalized(t *testing.T) {
	cases := []struct {
		name                   string
		params                 RankingParams
		wantSim, wantRec, wEng float64
	}{
		{
			name:    "already_normalized",
			params:  RankingParams{SimilarityWeight: 0.5, RecencyWeight: 0.3, EngagementWeight: 0.2},
			wantSim: 0.5, wantRec: 0.3, wEng: 0.2,
		},
		{
			name:    "scaled_up",
			params:  RankingParams{SimilarityWeight: 1, RecencyWeight: 1, EngagementWeight: 0},
			wantSim: 0.5, wantRec: 0.5, wEng: 0,
		},
		{
			name:    "all_zero_means_equal",
			params:  RankingParams{},
			wantSim: 1.0 / 3, wantRec: 1.0 / 3, wEng: 1.0 / 3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			sim, rec, eng := tc.params.Normalized()
			assert.InDelta(t, tc.wantSim, sim, 0.0001)
			assert.InDelta(t, tc.wantRec, rec, 0.0001)
			assert.InDelta(t, tc.wEng, eng, 0.0001)
		})
	}
}

func TestRankingParamsOverride_Apply(t *testing.T) {
	base := RankingParams{SimilarityWeight: 0.6, RecencyWeight: 0.3, EngagementWeight: 0.1}
	recency := 0.9
	diversity := true

	got := RankingParamsOverride{RecencyWeight: &recency, ApplyDiversity: &diversity}.Apply(base)

	assert.Equal(t, RankingParams{
		SimilarityWeight: 0.6,
		RecencyWeight:    0.9,
		EngagementWeight: 0.1,
		ApplyDiversity:   true,
	}, got)
}

func TestRecencyFactor(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	config := DefaultRankingConfig()

	cases := []struct {
		name        string
		publishedAt time.Time
		want        float64
	}{
		{name: "brand_new", publishedAt: now, want: 1},
		{name: "future", publishedAt: now.Add(time.Hour), want: 1},
		{name: "one_half_life", publishedAt: now.AddDate(0, 0, -3), want: 0.5},
		{name: "two_half_lives", publishedAt: now.AddDate(0, 0, -6), want: 0.25},
		{name: "beyond_horizon", publishedAt: now.AddDate(0, 0, -30), want: 0},
		{name: "unknown", publishedAt: time.Time{}, want: 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, RecencyFactor(tc.publishedAt, now, config), 0.001)
		})
	}
}

func TestEngagementFactors(t *testing.T) {
	config := DefaultRankingConfig()

	inputs := []RankingInput{
		{Post: Post{ID: "viral"}, Counts: countsPtr(10000, 0, 500, 100000)},
		{Post: Post{ID: "modest"}, Counts: countsPtr(100, 0, 5, 1000)},
		{Post: Post{ID: "disliked"}, Counts: countsPtr(5, 50, 0, 0)},
		{Post: Post{ID: "missing"}, Counts: nil},
	}

	factors := EngagementFactors(inputs, config)
	require.Len(t, factors, 4)

	assert.InDelta(t, 1.0, factors[0], 0.0001)
	// log scaling keeps a post with 1% of the engagement well above 1% of the score
	assert.Greater(t, factors[1], 0.4)
	assert.Less(t, factors[1], factors[0])
	assert.InDelta(t, 0.0, factors[2], 0.0001)
	assert.InDelta(t, 0.0, factors[3], 0.0001)
}

func TestRankPosts_WeightedScore(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	config := DefaultRankingConfig()

	inputs := []RankingInput{
		{Post: Post{ID: "similar_old", PublishedAt: now.AddDate(0, 0, -25)}, Similarity: 0.95},
		{Post: Post{ID: "fresh_unrelated", PublishedAt: now}, Similarity: 0.1},
	}

	cases := []struct {
		name     string
		params   RankingParams
		expected []string
	}{
		{
			name:     "similarity_dominates",
			params:   RankingParams{SimilarityWeight: 1},
			expected: []string{"similar_old", "fresh_unrelated"},
		},
		{
			name:     "recency_dominates",
			params:   RankingParams{RecencyWeight: 1},
			expected: []string{"fresh_unrelated", "similar_old"},
		},
		{
			name:     "balanced_prefers_fresh",
			params:   RankingParams{SimilarityWeight: 0.5, RecencyWeight: 0.5},
			expected: []string{"fresh_unrelated", "similar_old"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			ranked := RankPosts(inputs, tc.params, config, now)
			assert.Equal(t, tc.expected, rankedIDs(ranked))
		})
	}
}

func TestRankPosts_ExactScore(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	config := DefaultRankingConfig()

	inputs := []RankingInput{
		{Post: Post{ID: "a", PublishedAt: now.AddDate(0, 0, -3)}, Similarity: 0.8, Counts: countsPtr(10, 0, 0, 0)},
	}
	params := RankingParams{SimilarityWeight: 0.5, RecencyWeight: 0.25, EngagementWeight: 0.25}

	ranked := RankPosts(inputs, params, config, now)
	require.Len(t, ranked, 1)

	// similarity 0.8, recency 0.5 (one half-life), engagement: only likes,
	// normalized against itself -> likeWeight / totalWeight = 0.5
	want := 0.5*0.8 + 0.25*0.5 + 0.25*0.5
	assert.InDelta(t, want, ranked[0].Score, 0.0001)
	assert.Equal(t, int64(10), ranked[0].Post.Counts.LikeCount)
}

func TestRankPosts_MissingDataDoesNotFail(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	inputs := []RankingInput{
		{Post: Post{ID: "no_time_no_counts"}, Similarity: 0.5},
		{Post: Post{ID: "nan_similarity", PublishedAt: now}, Similarity: math.NaN()},
		{Post: Post{ID: "negative_similarity", PublishedAt: now}, Similarity: -0.7},
	}

	ranked := RankPosts(inputs, RankingParams{SimilarityWeight: 1, RecencyWeight: 1}, DefaultRankingConfig(), now)
	require.Len(t, ranked, 3)

	for _, r := range ranked {
		assert.False(t, math.IsNaN(r.Score), "score for %s is NaN", r.Post.ID)
		assert.GreaterOrEqual(t, r.Score, 0.0)
	}
	// nan and negative similarity both clamp to 0 and tie on recency; ID breaks the tie
	assert.Equal(t, []string{"nan_similarity", "negative_similarity", "no_time_no_counts"}, rankedIDs(ranked))
}

func TestRankPosts_Deterministic(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	config := DefaultRankingConfig()
	params := RankingParams{SimilarityWeight: 0.5, RecencyWeight: 0.3, EngagementWeight: 0.2, ApplyDiversity: true}

	var inputs []RankingInput
	for i := range 200 {
		inputs = append(inputs, RankingInput{
			Post: Post{
				ID:          fmt.Sprintf("post-%03d", i),
				AuthorID:    fmt.Sprintf("author-%d", i%7),
				Board:       fmt.Sprintf("board-%d", i%3),
				PublishedAt: now.Add(-time.Duration(i%11) * time.Hour),
			},
			// many exact ties on similarity
			Similarity: float64(i%5) / 5,
			Counts:     countsPtr(int64(i%13), 0, int64(i%4), int64(i%17)),
		})
	}

	first := RankPosts(inputs, params, config, now)
	second := RankPosts(inputs, params, config, now)

	assert.Equal(t, first, second)
	assert.Len(t, first, len(inputs))
}

func TestRankPosts_TiesBrokenByID(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	inputs := []RankingInput{
		{Post: Post{ID: "c", PublishedAt: now}, Similarity: 0.5},
		{Post: Post{ID: "a", PublishedAt: now}, Similarity: 0.5},
		{Post: Post{ID: "b", PublishedAt: now}, Similarity: 0.5},
	}

	ranked := RankPosts(inputs, RankingParams{SimilarityWeight: 1}, DefaultRankingConfig(), now)
	assert.Equal(t, []string{"a", "b", "c"}, rankedIDs(ranked))
}

func TestDiversify(t *testing.T) {
	config := RankingConfig{DiversityWindow: 3, DiversityMaxPerAuthor: 1}

	post := func(id, author string, score float64) RankedPost {
		return RankedPost{Post: Post{ID: id, AuthorID: author}, Score: score}
	}

	cases := []struct {
		name     string
		ranked   []RankedPost
		expected []string
	}{
		{
			name: "spreads_single_author",
			ranked: []RankedPost{
				post("a1", "alice", 0.9),
				post("a2", "alice", 0.8),
				post("a3", "alice", 0.7),
				post("b1", "bob", 0.6),
				post("c1", "carol", 0.5),
			},
			expected: []string{"a1", "b1", "c1", "a2", "a3"},
		},
		{
			name: "never_drops_posts_when_nothing_fits",
			ranked: []RankedPost{
				post("a1", "alice", 0.9),
				post("a2", "alice", 0.8),
				post("a3", "alice", 0.7),
			},
			expected: []string{"a1", "a2", "a3"},
		},
		{
			name: "already_diverse_unchanged",
			ranked: []RankedPost{
				post("a1", "alice", 0.9),
				post("b1", "bob", 0.8),
				post("c1", "carol", 0.7),
				post("a2", "alice", 0.6),
			},
			expected: []string{"a1", "b1", "c1", "a2"},
		},
		{
			name: "unknown_authors_not_grouped",
			ranked: []RankedPost{
				post("x1", "", 0.9),
				post("x2", "", 0.8),
				post("x3", "", 0.7),
			},
			expected: []string{"x1", "x2", "x3"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			result := Diversify(tc.ranked, config)
			assert.Equal(t, tc.expected, rankedIDs(result))
		})
	}
}

func TestDiversify_BoardCap(t *testing.T) {
	config := RankingConfig{DiversityWindow: 4, DiversityMaxPerBoard: 2}

	ranked := []RankedPost{
		{Post: Post{ID: "g1", AuthorID: "u1", Board: "golang"}, Score: 0.9},
		{Post: Post{ID: "g2", AuthorID: "u2", Board: "golang"}, Score: 0.8},
		{Post: Post{ID: "g3", AuthorID: "u3", Board: "golang"}, Score: 0.7},
		{Post: Post{ID: "r1", AuthorID: "u4", Board: "rust"}, Score: 0.6},
	}

	result := Diversify(ranked, config)
	assert.Equal(t, []string{"g1", "g2", "r1", "g3"}, rankedIDs(result))
}
