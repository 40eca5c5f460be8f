package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/community-feed/internal/command"
	cmdmocks "github.com/jbeshir/community-feed/internal/command/mocks"
	"github.com/jbeshir/community-feed/internal/domain"
)

func TestEngagementOperationCreate_ServeHTTP(t *testing.T) {
	counts := domain.AggregateCounts{SubjectID: "p1", LikeCount: 3}

	cases := []struct {
		name         string
		userID       string
		body         string
		expectedOp   *domain.EngagementOperation
		result       domain.BufferResult
		commandErr   error
		wantStatus   int
		wantResponse *EngagementOperationResponse
	}{
		{
			name:   "vote_created",
			userID: "user1",
			body:   `{"subject_type":"post","subject_id":"p1","kind":"like"}`,
			expectedOp: &domain.EngagementOperation{
				SubjectType: domain.SubjectTypePost, SubjectID: "p1", UserID: "user1", Kind: domain.KindLike,
			},
			result:     domain.BufferResult{Applied: true, Action: domain.ActionCreated, Counts: counts},
			wantStatus: http.StatusOK,
			wantResponse: &EngagementOperationResponse{
				Success: true, Action: domain.ActionCreated, AggregateCounts: counts,
			},
		},
		{
			name:   "duplicate_vote",
			userID: "user1",
			body:   `{"subject_type":"post","subject_id":"p1","kind":"like"}`,
			expectedOp: &domain.EngagementOperation{
				SubjectType: domain.SubjectTypePost, SubjectID: "p1", UserID: "user1", Kind: domain.KindLike,
			},
			result:     domain.BufferResult{Action: domain.ActionDuplicate, Counts: counts},
			wantStatus: http.StatusOK,
			wantResponse: &EngagementOperationResponse{
				Success: true, Action: domain.ActionDuplicate, AggregateCounts: counts,
			},
		},
		{
			name:   "comment_created",
			userID: "user1",
			body:   `{"subject_type":"post","subject_id":"p1","kind":"comment:create","body":"hi"}`,
			expectedOp: &domain.EngagementOperation{
				SubjectType: domain.SubjectTypePost, SubjectID: "p1", UserID: "user1",
				Kind: domain.KindCommentCreate, Body: "hi",
			},
			result: domain.BufferResult{
				Applied: true, Action: domain.ActionCreated, Counts: counts, CommentID: "c1",
			},
			wantStatus: http.StatusOK,
			wantResponse: &EngagementOperationResponse{
				Success: true, Action: domain.ActionCreated, AggregateCounts: counts, CommentID: "c1",
			},
		},
		{
			name:       "unauthenticated",
			body:       `{"subject_type":"post","subject_id":"p1","kind":"like"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed_body",
			userID:     "user1",
			body:       `{"subject_type":`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "unknown_field",
			userID:     "user1",
			body:       `{"subject_type":"post","subject_id":"p1","kind":"like","user_id":"someone_else"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "invalid_operation",
			userID: "user1",
			body:   `{"subject_type":"post","subject_id":"p1","kind":"explode"}`,
			expectedOp: &domain.EngagementOperation{
				SubjectType: domain.SubjectTypePost, SubjectID: "p1", UserID: "user1", Kind: "explode",
			},
			commandErr: fmt.Errorf("%w: Kind must be one of: like", domain.ErrInvalidOperation),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:   "comment_not_on_post",
			userID: "user1",
			body:   `{"subject_type":"post","subject_id":"p1","kind":"comment:delete","comment_id":"c9"}`,
			expectedOp: &domain.EngagementOperation{
				SubjectType: domain.SubjectTypePost, SubjectID: "p1", UserID: "user1",
				Kind: domain.KindCommentDelete, CommentID: "c9",
			},
			commandErr: fmt.Errorf("checking comment: %w", domain.ErrCommentNotOnPost),
			wantStatus: http.StatusConflict,
		},
		{
			name:   "comment_by_other_user",
			userID: "user2",
			body:   `{"subject_type":"post","subject_id":"p1","kind":"comment:delete","comment_id":"c9"}`,
			expectedOp: &domain.EngagementOperation{
				SubjectType: domain.SubjectTypePost, SubjectID: "p1", UserID: "user2",
				Kind: domain.KindCommentDelete, CommentID: "c9",
			},
			commandErr: fmt.Errorf("comment [c9] by user [user2]: %w", domain.ErrNotCommentAuthor),
			wantStatus: http.StatusForbidden,
		},
		{
			name:   "buffer_unavailable",
			userID: "user1",
			body:   `{"subject_type":"post","subject_id":"p1","kind":"view"}`,
			expectedOp: &domain.EngagementOperation{
				SubjectType: domain.SubjectTypePost, SubjectID: "p1", UserID: "user1", Kind: domain.KindView,
			},
			commandErr: errors.New("redis down"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cmdmocks.NewMockCommand[domain.EngagementOperation, domain.BufferResult](t)
			if tc.expectedOp != nil {
				cmd.EXPECT().Execute(mock.Anything, *tc.expectedOp).Return(tc.result, tc.commandErr)
			}

			req := httptest.NewRequest(http.MethodPost, "/v1/engagement", strings.NewReader(tc.body))
			if tc.userID != "" {
				req = testContextWithUserID(tc.userID)(req)
			} else {
				req = testContext()(req)
			}
			rec := httptest.NewRecorder()

			EngagementOperationCreate{Command: cmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantResponse != nil {
				var response EngagementOperationResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.Equal(t, *tc.wantResponse, response)
			}
			if tc.wantStatus == http.StatusBadRequest || tc.wantStatus == http.StatusConflict {
				var response errorResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
				assert.False(t, response.Success)
				assert.NotEmpty(t, response.Error)
			}
		})
	}
}

var _ command.Command[domain.EngagementOperation, domain.BufferResult] = (*command.BufferEngagement)(nil)
