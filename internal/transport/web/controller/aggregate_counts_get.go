package controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jbeshir/community-feed/internal/command"
	"github.com/jbeshir/community-feed/internal/domain"
)

type AggregateCountsResponse struct {
	Data map[string]domain.AggregateCounts `json:"data"`
}

// AggregateCountsGet handles GET /v1/engagement/counts.
type AggregateCountsGet struct {
	Command command.Command[command.GetAggregateCountsRequest, map[string]domain.AggregateCounts]
}

func (c AggregateCountsGet) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := domain.LoggerFromContext(ctx)
	q := r.URL.Query()

	subjectType := domain.SubjectType(q.Get("subject_type"))
	if subjectType == "" {
		subjectType = domain.SubjectTypePost
	}
	if subjectType != domain.SubjectTypePost && subjectType != domain.SubjectTypeComment {
		writeClientError(ctx, w, http.StatusBadRequest, fmt.Errorf("unrecognised subject type [%s]", subjectType))
		return
	}

	ids, err := parseIDList(q, "ids")
	if err != nil {
		writeClientError(ctx, w, http.StatusBadRequest, err)
		return
	}
	if len(ids) == 0 {
		writeClientError(ctx, w, http.StatusBadRequest, errors.New("ids is required"))
		return
	}

	counts, err := c.Command.Execute(ctx, command.GetAggregateCountsRequest{
		SubjectType: subjectType,
		SubjectIDs:  ids,
	})
	if err != nil {
		logger.ErrorContext(ctx, "unable to get aggregate counts", "subject_type", subjectType, "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	writeJSON(ctx, w, http.StatusOK, AggregateCountsResponse{Data: counts})
}
