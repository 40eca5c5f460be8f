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

func testHotCommentsConfig() HotCommentsConfig {
	return HotCommentsConfig{Limit: 10, TTL: time.Hour, DefaultMaxPosts: 500}
}

func TestRefreshHotComments_Execute(t *testing.T) {
	top := []domain.Comment{{ID: "c1", PostID: "p1", LikeCount: 4}}

	stale := mocks.NewMockStaleHotCommentsTracker(t)
	lister := mocks.NewMockTopCommentsLister(t)
	cache := mocks.NewMockHotCommentsCache(t)

	stale.EXPECT().PopStaleHotComments(mock.Anything, 500).Return([]string{"p1", "p2", "p3"}, nil)
	lister.EXPECT().ListTopComments(mock.Anything, "p1", 10).Return(top, nil)
	cache.EXPECT().SetHotComments(mock.Anything, "p1", top, time.Hour).Return(nil)
	lister.EXPECT().ListTopComments(mock.Anything, "p2", 10).Return(nil, errors.New("db down"))
	lister.EXPECT().ListTopComments(mock.Anything, "p3", 10).Return(nil, nil)
	cache.EXPECT().SetHotComments(mock.Anything, "p3", []domain.Comment(nil), time.Hour).
		Return(errors.New("redis down"))
	stale.EXPECT().MarkHotCommentsStale(mock.Anything, []string{"p2", "p3"}).Return(nil)

	cmd := NewRefreshHotComments(stale, lister, cache, testHotCommentsConfig())
	result, err := cmd.Execute(context.Background(), RefreshHotCommentsRequest{})
	require.NoError(t, err)
	assert.Equal(t, RefreshHotCommentsResult{Refreshed: 1, Failed: 2}, result)
}

func TestRefreshHotComments_Execute_PopError(t *testing.T) {
	stale := mocks.NewMockStaleHotCommentsTracker(t)
	stale.EXPECT().PopStaleHotComments(mock.Anything, 5).Return(nil, errors.New("redis down"))

	cmd := NewRefreshHotComments(stale, mocks.NewMockTopCommentsLister(t), mocks.NewMockHotCommentsCache(t),
		testHotCommentsConfig())
	_, err := cmd.Execute(context.Background(), RefreshHotCommentsRequest{MaxPosts: 5})
	require.Error(t, err)
}

func TestGetHotComments_Execute(t *testing.T) {
	top := []domain.Comment{{ID: "c1", PostID: "p1", LikeCount: 4}}

	cases := []struct {
		name     string
		setup    func(lister *mocks.MockTopCommentsLister, cache *mocks.MockHotCommentsCache)
		expected []domain.Comment
		wantErr  bool
	}{
		{
			name: "cache_hit",
			setup: func(_ *mocks.MockTopCommentsLister, cache *mocks.MockHotCommentsCache) {
				cache.EXPECT().GetHotComments(mock.Anything, "p1").Return(top, true, nil)
			},
			expected: top,
		},
		{
			name: "cache_miss_recomputes",
			setup: func(lister *mocks.MockTopCommentsLister, cache *mocks.MockHotCommentsCache) {
				cache.EXPECT().GetHotComments(mock.Anything, "p1").Return(nil, false, nil)
				lister.EXPECT().ListTopComments(mock.Anything, "p1", 10).Return(top, nil)
				cache.EXPECT().SetHotComments(mock.Anything, "p1", top, time.Hour).Return(nil)
			},
			expected: top,
		},
		{
			name: "cache_down_degrades",
			setup: func(lister *mocks.MockTopCommentsLister, cache *mocks.MockHotCommentsCache) {
				cache.EXPECT().GetHotComments(mock.Anything, "p1").Return(nil, false, errors.New("redis down"))
				lister.EXPECT().ListTopComments(mock.Anything, "p1", 10).Return(nil, nil)
				cache.EXPECT().SetHotComments(mock.Anything, "p1", []domain.Comment{}, time.Hour).
					Return(errors.New("redis down"))
			},
			expected: []domain.Comment{},
		},
		{
			name: "durable_error",
			setup: func(lister *mocks.MockTopCommentsLister, cache *mocks.MockHotCommentsCache) {
				cache.EXPECT().GetHotComments(mock.Anything, "p1").Return(nil, false, nil)
				lister.EXPECT().ListTopComments(mock.Anything, "p1", 10).Return(nil, errors.New("db down"))
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lister := mocks.NewMockTopCommentsLister(t)
			cache := mocks.NewMockHotCommentsCache(t)
			tc.setup(lister, cache)

			cmd := NewGetHotComments(lister, cache, testHotCommentsConfig())
			result, err := cmd.Execute(context.Background(), GetHotCommentsRequest{PostID: "p1"})
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}
