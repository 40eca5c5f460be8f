package domain

import (
	"time"
)

type Post struct {
	ID          string    `json:"id"`
	AuthorID    string    `json:"author_id"`
	Board       string    `json:"board"`
	Title       string    `json:"title"`
	TextStart   string    `json:"text_start"`
	PublishedAt time.Time `json:"published_at"`

	// Counts holds the durable aggregate at the time the post was loaded.
	// Feed responses overwrite it with the fast store's view.
	Counts AggregateCounts `json:"counts"`
}

// PostEmbedding is the stored vector for a post along with the hash of the
// text it was generated from.
type PostEmbedding struct {
	PostID      string
	Vector      []float32
	TextHash    string
	PublishedAt time.Time
}

// PostText is the embeddable content of a post.
type PostText struct {
	PostID      string
	Board       string
	AuthorID    string
	Text        string
	TextHash    string
	PublishedAt time.Time
}

type PostFilters struct {
	Board           string
	PublishedAfter  time.Time
	ExcludePostIDs  []string
	RequireEmbedded bool
}

// Candidate is a single recall result.
type Candidate struct {
	PostID      string    `json:"post_id"`
	Similarity  float64   `json:"similarity"`
	PublishedAt time.Time `json:"published_at"`
}

// RankedPost is a post with the score the ranking pass assigned it.
type RankedPost struct {
	Post  Post    `json:"post"`
	Score float64 `json:"score"`
}

type User struct {
	ID                string
	ProfileText       string
	InterestVector    []float32
	InterestUpdatedAt time.Time
	RankingDefaults   *RankingParams
}

type Comment struct {
	ID        string    `json:"id"`
	PostID    string    `json:"post_id"`
	UserID    string    `json:"user_id"`
	Body      string    `json:"body"`
	LikeCount int64     `json:"like_count"`
	CreatedAt time.Time `json:"created_at"`
}
