package controller

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/jbeshir/community-feed/internal/command"
	"github.com/jbeshir/community-feed/internal/domain"
)

const maxEngagementBodyBytes = 64 << 10

// EngagementOperationRequest is the JSON request body for an engagement write.
type EngagementOperationRequest struct {
	SubjectType domain.SubjectType    `json:"subject_type"`
	SubjectID   string                `json:"subject_id"`
	Kind        domain.EngagementKind `json:"kind"`
	CommentID   string                `json:"comment_id,omitempty"`
	Body        string                `json:"body,omitempty"`
}

type EngagementOperationResponse struct {
	Success         bool                   `json:"success"`
	Action          domain.BufferAction    `json:"action"`
	AggregateCounts domain.AggregateCounts `json:"aggregate_counts"`
	CommentID       string                 `json:"comment_id,omitempty"`
}

// EngagementOperationCreate handles POST /v1/engagement, buffering a vote,
// view, or comment operation for the authenticated user.
type EngagementOperationCreate struct {
	Command command.Command[domain.EngagementOperation, domain.BufferResult]
}

func (c EngagementOperationCreate) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)

	userID := domain.UserIDFromContext(ctx)
	if userID == "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	var body EngagementOperationRequest
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxEngagementBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&body); err != nil {
		logger.WarnContext(ctx, "unable to parse engagement request body", "error", err)
		writeClientError(ctx, w, http.StatusBadRequest, errors.New("malformed request body"))
		return
	}

	result, err := c.Command.Execute(ctx, domain.EngagementOperation{
		SubjectType: body.SubjectType,
		SubjectID:   body.SubjectID,
		UserID:      userID,
		Kind:        body.Kind,
		CommentID:   body.CommentID,
		Body:        body.Body,
	})
	switch {
	case errors.Is(err, domain.ErrInvalidOperation):
		writeClientError(ctx, w, http.StatusBadRequest, err)
		return
	case errors.Is(err, domain.ErrCommentNotOnPost):
		writeClientError(ctx, w, http.StatusConflict, err)
		return
	case errors.Is(err, domain.ErrNotCommentAuthor):
		writeClientError(ctx, w, http.StatusForbidden, err)
		return
	case err != nil:
		logger.ErrorContext(ctx, "unable to buffer engagement operation",
			"subject_type", body.SubjectType, "subject_id", body.SubjectID, "kind", body.Kind, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, EngagementOperationResponse{
		Success:         true,
		Action:          result.Action,
		AggregateCounts: result.Counts,
		CommentID:       result.CommentID,
	})
}
