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

var recallNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

func testRecallPostsConfig() RecallPostsConfig {
	return RecallPostsConfig{
		MaxLimit:        100,
		CacheTTL:        3 * time.Hour,
		Timeout:         time.Second,
		ColdStartWindow: 7 * 24 * time.Hour,
	}
}

type recallMocks struct {
	users      *mocks.MockUserGetter
	writer     *mocks.MockUserInterestVectorWriter
	embedder   *mocks.MockEmbedder
	similarity *mocks.MockSimilarPostsByVectorLister
	coldStart  *mocks.MockColdStartPostLister
	cache      *mocks.MockRecallCache
}

func newTestRecallPosts(t *testing.T) (*RecallPosts, recallMocks) {
	t.Helper()
	m := recallMocks{
		users:      mocks.NewMockUserGetter(t),
		writer:     mocks.NewMockUserInterestVectorWriter(t),
		embedder:   mocks.NewMockEmbedder(t),
		similarity: mocks.NewMockSimilarPostsByVectorLister(t),
		coldStart:  mocks.NewMockColdStartPostLister(t),
		cache:      mocks.NewMockRecallCache(t),
	}
	cmd := NewRecallPosts(m.users, m.writer, m.embedder, m.similarity, m.coldStart, m.cache, testRecallPostsConfig())
	cmd.now = func() time.Time { return recallNow }
	return cmd, m
}

func testCandidates(ids ...string) []domain.Candidate {
	result := make([]domain.Candidate, 0, len(ids))
	for i, id := range ids {
		result = append(result, domain.Candidate{
			PostID:      id,
			Similarity:  1 - float64(i)*0.1,
			PublishedAt: recallNow.Add(-time.Duration(i) * time.Hour),
		})
	}
	return result
}

func candidateIDs(cs []domain.Candidate) []string {
	ids := make([]string, 0, len(cs))
	for _, c := range cs {
		ids = append(ids, c.PostID)
	}
	return ids
}

func coldStartFilters(exclude []string) domain.PostFilters {
	return domain.PostFilters{
		PublishedAfter: recallNow.Add(-7 * 24 * time.Hour),
		ExcludePostIDs: exclude,
	}
}

func TestRecallPosts_Execute_CacheHit(t *testing.T) {
	cases := []struct {
		name     string
		cached   []domain.Candidate
		limit    int
		exclude  []string
		expected []string
	}{
		{
			name:     "truncates_to_limit",
			cached:   testCandidates("p1", "p2", "p3"),
			limit:    2,
			expected: []string{"p1", "p2"},
		},
		{
			name:     "subtracts_exclusions",
			cached:   testCandidates("p1", "p2", "p3", "p4"),
			limit:    2,
			exclude:  []string{"p1"},
			expected: []string{"p2", "p3"},
		},
		{
			name:     "exclusions_not_in_cache",
			cached:   testCandidates("p1", "p2", "p3"),
			limit:    2,
			exclude:  []string{"p9"},
			expected: []string{"p1", "p2"},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, m := newTestRecallPosts(t)
			m.cache.EXPECT().GetRecall(mock.Anything, "user1").Return(tc.cached, true, nil)

			result, err := cmd.Execute(context.Background(), RecallPostsRequest{
				UserID:         "user1",
				Limit:          tc.limit,
				ExcludePostIDs: tc.exclude,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, candidateIDs(result))
		})
	}
}

func TestRecallPosts_Execute_Personalized(t *testing.T) {
	vector := []float32{0.1, 0.2}
	found := testCandidates("p1", "p2", "p3", "p4")

	cases := []struct {
		name        string
		cached      []domain.Candidate
		cacheFound  bool
		cacheErr    error
		forceFresh  bool
		exclude     []string
		expected    []string
		expectLimit int
	}{
		{
			name:        "cache_miss",
			expected:    []string{"p1", "p2", "p3"},
			expectLimit: 3,
		},
		{
			name:        "cached_list_too_short_for_exclusions",
			cached:      testCandidates("p1", "p2", "p3"),
			cacheFound:  true,
			exclude:     []string{"p2"},
			expected:    []string{"p1", "p3", "p4"},
			expectLimit: 4,
		},
		{
			name:        "cache_error_degrades",
			cacheErr:    errors.New("redis down"),
			expected:    []string{"p1", "p2", "p3"},
			expectLimit: 3,
		},
		{
			name:        "force_refresh_skips_cache",
			forceFresh:  true,
			expected:    []string{"p1", "p2", "p3"},
			expectLimit: 3,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, m := newTestRecallPosts(t)
			if !tc.forceFresh {
				m.cache.EXPECT().GetRecall(mock.Anything, "user1").Return(tc.cached, tc.cacheFound, tc.cacheErr)
			}
			m.users.EXPECT().GetUser(mock.Anything, "user1").
				Return(domain.User{ID: "user1", InterestVector: vector}, nil)
			m.similarity.EXPECT().ListSimilarPostsByVector(mock.Anything, vector, tc.expectLimit).
				Return(found, nil)
			m.cache.EXPECT().SetRecall(mock.Anything, "user1", found, 3*time.Hour).Return(nil)

			result, err := cmd.Execute(context.Background(), RecallPostsRequest{
				UserID:         "user1",
				Limit:          3,
				ExcludePostIDs: tc.exclude,
				ForceRefresh:   tc.forceFresh,
			})
			require.NoError(t, err)
			assert.Equal(t, tc.expected, candidateIDs(result))
		})
	}
}

func TestRecallPosts_Execute_GeneratesVectorFromProfile(t *testing.T) {
	cmd, m := newTestRecallPosts(t)
	vector := []float32{0.5, 0.5}

	m.cache.EXPECT().GetRecall(mock.Anything, "user1").Return(nil, false, nil)
	m.users.EXPECT().GetUser(mock.Anything, "user1").
		Return(domain.User{ID: "user1", ProfileText: "distributed systems"}, nil)
	m.embedder.EXPECT().EmbedText(mock.Anything, "distributed systems").Return(vector, nil)
	m.writer.EXPECT().SetUserInterestVector(mock.Anything, "user1", vector, recallNow).
		Return(errors.New("write failed"))
	m.similarity.EXPECT().ListSimilarPostsByVector(mock.Anything, vector, 2).
		Return(testCandidates("p1", "p2"), nil)
	m.cache.EXPECT().SetRecall(mock.Anything, "user1", mock.Anything, mock.Anything).Return(nil)

	result, err := cmd.Execute(context.Background(), RecallPostsRequest{UserID: "user1", Limit: 2})
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p2"}, candidateIDs(result))
}

func TestRecallPosts_Execute_ColdStart(t *testing.T) {
	vector := []float32{0.1, 0.2}
	fallback := []domain.Candidate{{PostID: "c1"}, {PostID: "c2"}}

	cases := []struct {
		name  string
		setup func(m recallMocks)
	}{
		{
			name: "unknown_user",
			setup: func(m recallMocks) {
				m.users.EXPECT().GetUser(mock.Anything, "user1").
					Return(domain.User{}, domain.ErrNotFound)
			},
		},
		{
			name: "user_lookup_error",
			setup: func(m recallMocks) {
				m.users.EXPECT().GetUser(mock.Anything, "user1").
					Return(domain.User{}, errors.New("db down"))
			},
		},
		{
			name: "no_vector_no_profile",
			setup: func(m recallMocks) {
				m.users.EXPECT().GetUser(mock.Anything, "user1").Return(domain.User{ID: "user1"}, nil)
			},
		},
		{
			name: "embedder_unavailable",
			setup: func(m recallMocks) {
				m.users.EXPECT().GetUser(mock.Anything, "user1").
					Return(domain.User{ID: "user1", ProfileText: "hello"}, nil)
				m.embedder.EXPECT().EmbedText(mock.Anything, "hello").Return(nil, nil)
			},
		},
		{
			name: "similarity_error",
			setup: func(m recallMocks) {
				m.users.EXPECT().GetUser(mock.Anything, "user1").
					Return(domain.User{ID: "user1", InterestVector: vector}, nil)
				m.similarity.EXPECT().ListSimilarPostsByVector(mock.Anything, vector, 3).
					Return(nil, errors.New("circuit open"))
			},
		},
		{
			name: "similarity_empty",
			setup: func(m recallMocks) {
				m.users.EXPECT().GetUser(mock.Anything, "user1").
					Return(domain.User{ID: "user1", InterestVector: vector}, nil)
				m.similarity.EXPECT().ListSimilarPostsByVector(mock.Anything, vector, 3).
					Return([]domain.Candidate{}, nil)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd, m := newTestRecallPosts(t)
			m.cache.EXPECT().GetRecall(mock.Anything, "user1").Return(nil, false, nil)
			tc.setup(m)
			m.coldStart.EXPECT().ListColdStartPosts(mock.Anything, coldStartFilters([]string{"x1"}), 2).
				Return(fallback, nil)

			result, err := cmd.Execute(context.Background(), RecallPostsRequest{
				UserID:         "user1",
				Limit:          2,
				ExcludePostIDs: []string{"x1"},
			})
			require.NoError(t, err)
			assert.Equal(t, fallback, result)
		})
	}
}

func TestRecallPosts_Execute_ColdStartError(t *testing.T) {
	cmd, m := newTestRecallPosts(t)
	m.cache.EXPECT().GetRecall(mock.Anything, "user1").Return(nil, false, nil)
	m.users.EXPECT().GetUser(mock.Anything, "user1").Return(domain.User{ID: "user1"}, nil)
	m.coldStart.EXPECT().ListColdStartPosts(mock.Anything, coldStartFilters(nil), 5).
		Return(nil, errors.New("db down"))

	_, err := cmd.Execute(context.Background(), RecallPostsRequest{UserID: "user1", Limit: 5})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing cold start posts")
}

func TestRecallPosts_Execute_ClampsLimit(t *testing.T) {
	cmd, m := newTestRecallPosts(t)
	m.cache.EXPECT().GetRecall(mock.Anything, "user1").Return(nil, false, nil)
	m.users.EXPECT().GetUser(mock.Anything, "user1").Return(domain.User{ID: "user1"}, nil)
	m.coldStart.EXPECT().ListColdStartPosts(mock.Anything, coldStartFilters(nil), 100).
		Return(nil, nil)

	result, err := cmd.Execute(context.Background(), RecallPostsRequest{UserID: "user1", Limit: 5000})
	require.NoError(t, err)
	assert.Empty(t, result)
}
