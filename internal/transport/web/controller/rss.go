package controller

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/feeds"
	"github.com/jbeshir/community-feed/internal/command"
	"github.com/jbeshir/community-feed/internal/domain"
)

// RSS serves the non-personalized trending feed.
type RSS struct {
	FeedBaseURL     string
	FeedPath        string
	FeedAuthorName  string
	FeedAuthorEmail string
	Command         command.Command[command.ListTrendingPostsRequest, []domain.Post]
	CacheMaxAge     time.Duration
}

func (c RSS) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	q := r.URL.Query()

	_, limit, err := parsePageLimit(q)
	if err != nil {
		logger.WarnContext(ctx, "unable to parse feed limit in query string", "error", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	board := q.Get("board")
	posts, err := c.Command.Execute(ctx, command.ListTrendingPostsRequest{Board: board, Limit: limit})
	if err != nil {
		logger.ErrorContext(ctx, "unable to fetch posts for feed", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	title := "Community Feed"
	if board != "" {
		title += ": " + board
	}
	feed := &feeds.Feed{
		Title:       title,
		Link:        &feeds.Link{Href: c.FeedBaseURL + c.FeedPath},
		Description: "Trending posts across the community",
		Author:      &feeds.Author{Name: c.FeedAuthorName, Email: c.FeedAuthorEmail},
		Created:     time.Now(),
	}

	for _, p := range posts {
		feed.Items = append(feed.Items, &feeds.Item{
			Id:          p.ID,
			IsPermaLink: "false",
			Title:       p.Title,
			Link:        &feeds.Link{Href: c.FeedBaseURL + "/posts/" + p.ID},
			Description: p.TextStart,
			Author:      &feeds.Author{Name: p.AuthorID},
			Created:     p.PublishedAt,
		})
	}

	rss, err := feed.ToRss()
	if err != nil {
		logger.ErrorContext(ctx, "unable to format feed as RSS", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/xml")
	w.Header().Set("Cache-Control", fmt.Sprintf("max-age=%d", int(c.CacheMaxAge.Seconds())))

	if _, err := w.Write([]byte(rss)); err != nil {
		logger.ErrorContext(ctx, "unable to write feed to response", "error", err)
	}
}
