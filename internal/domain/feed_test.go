package domain

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func makeRanked(n int) []RankedPost {
	posts := make([]RankedPost, 0, n)
	for i := range n {
		posts = append(posts, RankedPost{Post: Post{ID: fmt.Sprintf("p%d", i)}, Score: float64(n - i)})
	}
	return posts
}

func TestPageOf(t *testing.T) {
	posts := makeRanked(45)

	cases := []struct {
		name        string
		page, limit int
		wantFirst   string
		wantLen     int
		wantHasMore bool
	}{
		{name: "first_page", page: 1, limit: 20, wantFirst: "p0", wantLen: 20, wantHasMore: true},
		{name: "second_page", page: 2, limit: 20, wantFirst: "p20", wantLen: 20, wantHasMore: true},
		{name: "last_partial_page", page: 3, limit: 20, wantFirst: "p40", wantLen: 5, wantHasMore: false},
		{name: "past_the_end", page: 4, limit: 20, wantLen: 0, wantHasMore: false},
		{name: "exact_fit", page: 1, limit: 45, wantFirst: "p0", wantLen: 45, wantHasMore: false},
		{name: "invalid_page", page: 0, limit: 20, wantLen: 0, wantHasMore: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			slice, hasMore := PageOf(posts, tc.page, tc.limit)
			assert.Len(t, slice, tc.wantLen)
			assert.Equal(t, tc.wantHasMore, hasMore)
			if tc.wantLen > 0 {
				assert.Equal(t, tc.wantFirst, slice[0].Post.ID)
			}
		})
	}
}

func TestExcludePosts(t *testing.T) {
	posts := makeRanked(4)

	filtered := ExcludePosts(posts, IDSet([]string{"p1", "p3", "unknown"}))
	assert.Equal(t, []string{"p0", "p2"}, rankedIDs(filtered))

	assert.Equal(t, posts, ExcludePosts(posts, nil))
}

func TestMeetsFill(t *testing.T) {
	cases := []struct {
		name          string
		got, expected int
		want          bool
	}{
		{name: "full", got: 20, expected: 20, want: true},
		{name: "exactly_eighty_percent", got: 16, expected: 20, want: true},
		{name: "below_threshold", got: 15, expected: 20, want: false},
		{name: "small_page_rounds_up", got: 2, expected: 3, want: false},
		{name: "nothing_expected", got: 0, expected: 0, want: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, MeetsFill(tc.got, tc.expected, 0.8))
		})
	}
}

func TestFeedCacheEntry_Valid(t *testing.T) {
	written := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	entry := FeedCacheEntry{CreatedAt: written, ExpiresAt: written.Add(20 * time.Minute)}

	assert.True(t, entry.Valid(written.Add(19*time.Minute)))
	assert.False(t, entry.Valid(written.Add(20*time.Minute)))
	assert.False(t, entry.Valid(written.Add(time.Hour)))
}
