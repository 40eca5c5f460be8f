package controller

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/jbeshir/community-feed/internal/domain"
)

type errorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(body); err != nil {
		logger := domain.LoggerFromContext(ctx)
		logger.ErrorContext(ctx, "unable to write response", "error", err)
	}
}

// writeClientError reports a rejected request. Only errors caused by the
// request itself are passed here; internal failures get a bare 500.
func writeClientError(ctx context.Context, w http.ResponseWriter, status int, err error) {
	writeJSON(ctx, w, status, errorResponse{Success: false, Error: err.Error()})
}
