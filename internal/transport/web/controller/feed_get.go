package controller

import (
	"errors"
	"net/http"
	"net/url"

	"github.com/jbeshir/community-feed/internal/command"
	"github.com/jbeshir/community-feed/internal/domain"
)

// FeedGet handles GET /v1/feed, serving the authenticated user's ranked feed.
type FeedGet struct {
	Command command.Command[command.GetFeedRequest, domain.FeedPage]
}

func (c FeedGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	req, err := feedRequestFromQuery(r.URL.Query())
	if err != nil {
		logger.WarnContext(ctx, "unable to parse feed query string", "error", err)
		writeClientError(ctx, w, http.StatusBadRequest, err)
		return
	}
	req.UserID = userID

	feedPage, err := c.Command.Execute(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) {
			writeClientError(ctx, w, http.StatusBadRequest, err)
			return
		}
		logger.ErrorContext(ctx, "unable to get feed", "user_id", userID, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if feedPage.Posts == nil {
		feedPage.Posts = []domain.RankedPost{}
	}

	writeJSON(ctx, w, http.StatusOK, feedPage)
}

func feedRequestFromQuery(q url.Values) (command.GetFeedRequest, error) {
	var req command.GetFeedRequest

	page, limit, err := parsePageLimit(q)
	if err != nil {
		return command.GetFeedRequest{}, err
	}
	req.Page = page
	req.Limit = limit
	req.BoardFilter = q.Get("board")

	if req.ExcludePostIDs, err = parseIDList(q, "exclude"); err != nil {
		return command.GetFeedRequest{}, err
	}

	overrides := &req.RankingOverrides
	if overrides.SimilarityWeight, err = parseOptionalFloat(q, "similarity_weight"); err != nil {
		return command.GetFeedRequest{}, err
	}
	if overrides.RecencyWeight, err = parseOptionalFloat(q, "recency_weight"); err != nil {
		return command.GetFeedRequest{}, err
	}
	if overrides.EngagementWeight, err = parseOptionalFloat(q, "engagement_weight"); err != nil {
		return command.GetFeedRequest{}, err
	}
	if overrides.ApplyDiversity, err = parseOptionalBool(q, "diversity"); err != nil {
		return command.GetFeedRequest{}, err
	}

	return req, nil
}
