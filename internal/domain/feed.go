package domain

import (
	"math"
	"time"
)

// FeedCacheEntry is the full ranked result for one (user, page, limit, board)
// request. Entries are replaced whole and trusted only while now < ExpiresAt.
type FeedCacheEntry struct {
	UserID            string        `json:"user_id"`
	Page              int           `json:"page"`
	Limit             int           `json:"limit"`
	BoardFilter       string        `json:"board_filter"`
	Posts             []RankedPost  `json:"posts"`
	RankingParamsUsed RankingParams `json:"ranking_params_used"`
	CreatedAt         time.Time     `json:"created_at"`
	ExpiresAt         time.Time     `json:"expires_at"`
}

// Valid reports whether the entry may still be served at now.
func (e FeedCacheEntry) Valid(now time.Time) bool {
	return now.Before(e.ExpiresAt)
}

type FeedPage struct {
	Posts             []RankedPost  `json:"posts"`
	Page              int           `json:"page"`
	Limit             int           `json:"limit"`
	Total             int           `json:"total"`
	HasMore           bool          `json:"has_more"`
	RankingParamsUsed RankingParams `json:"ranking_params_used"`
	FromCache         bool          `json:"from_cache"`
}

// PageOf slices one page out of a full ranked list.
func PageOf(posts []RankedPost, page, limit int) (slice []RankedPost, hasMore bool) {
	if page < 1 || limit < 1 {
		return []RankedPost{}, false
	}

	offset := (page - 1) * limit
	if offset >= len(posts) {
		return []RankedPost{}, false
	}

	end := min(offset+limit, len(posts))
	return posts[offset:end], end < len(posts)
}

// ExcludePosts returns posts without the given IDs, preserving order.
func ExcludePosts(posts []RankedPost, exclude map[string]struct{}) []RankedPost {
	if len(exclude) == 0 {
		return posts
	}

	filtered := make([]RankedPost, 0, len(posts))
	for _, p := range posts {
		if _, excluded := exclude[p.Post.ID]; excluded {
			continue
		}
		filtered = append(filtered, p)
	}
	return filtered
}

// MeetsFill reports whether a cached page that shrank from expected to got
// posts after exclusions is still full enough to serve.
func MeetsFill(got, expected int, minFillRatio float64) bool {
	if expected <= 0 {
		return true
	}
	return got >= int(math.Ceil(minFillRatio*float64(expected)))
}

// IDSet builds a lookup set from a list of IDs.
func IDSet(ids []string) map[string]struct{} {
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if id != "" {
			set[id] = struct{}{}
		}
	}
	return set
}
