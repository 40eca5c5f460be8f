package controller

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/jbeshir/community-feed/internal/command"
	"github.com/jbeshir/community-feed/internal/domain"
)

type HotCommentsResponse struct {
	Data []domain.Comment `json:"data"`
}

// HotCommentsGet handles GET /v1/posts/{post_id}/hot_comments.
type HotCommentsGet struct {
	Command command.Command[command.GetHotCommentsRequest, []domain.Comment]
}

func (c HotCommentsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	postID := mux.Vars(r)["post_id"]
	logger := domain.LoggerFromContext(r.Context()).With("post_id", postID)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	comments, err := c.Command.Execute(ctx, command.GetHotCommentsRequest{PostID: postID})
	if err != nil {
		logger.ErrorContext(ctx, "unable to get hot comments", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if comments == nil {
		comments = []domain.Comment{}
	}

	writeJSON(ctx, w, http.StatusOK, HotCommentsResponse{Data: comments})
}
