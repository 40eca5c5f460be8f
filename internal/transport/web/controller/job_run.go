package controller

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/jbeshir/community-feed/internal/command"
	"github.com/jbeshir/community-feed/internal/domain"
)

// JobRunner runs one batch of a background job. A zero batch size means the
// job's configured default.
type JobRunner func(ctx context.Context, batchSize int) (any, error)

// CommandJob adapts a command into a JobRunner.
func CommandJob[Req, Res any](cmd command.Command[Req, Res], request func(batchSize int) Req) JobRunner {
	return func(ctx context.Context, batchSize int) (any, error) {
		return cmd.Execute(ctx, request(batchSize))
	}
}

type JobRunResponse struct {
	Job    string `json:"job"`
	Result any    `json:"result"`
	Error  string `json:"error,omitempty"`
}

// JobRun handles POST /v1/jobs/{job} from the external scheduler.
type JobRun struct {
	Jobs map[string]JobRunner
}

func (c JobRun) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	job := mux.Vars(r)["job"]
	logger := domain.LoggerFromContext(r.Context()).With("job", job)
	ctx := domain.ContextWithLogger(r.Context(), logger)

	runner, ok := c.Jobs[job]
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		return
	}

	var batchSize int
	if q := r.URL.Query(); q.Has("batch_size") {
		v, err := strconv.ParseInt(q.Get("batch_size"), 10, 32)
		if err != nil || v < 0 {
			writeClientError(ctx, w, http.StatusBadRequest, fmt.Errorf("invalid batch_size [%s]", q.Get("batch_size")))
			return
		}
		batchSize = int(v)
	}

	result, err := runner(ctx, batchSize)
	if err != nil {
		logger.ErrorContext(ctx, "job run failed", "error", err)
		writeJSON(ctx, w, http.StatusInternalServerError, JobRunResponse{Job: job, Result: result, Error: "job failed"})
		return
	}

	logger.InfoContext(ctx, "job run complete", "result", result)
	writeJSON(ctx, w, http.StatusOK, JobRunResponse{Job: job, Result: result})
}
