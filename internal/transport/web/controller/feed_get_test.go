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

func TestFeedGet_ServeHTTP(t *testing.T) {
	weight := 0.8
	tooHeavy := 2.0
	diversity := false
	page := domain.FeedPage{
		Posts:   []domain.RankedPost{{Post: domain.Post{ID: "p1"}, Score: 0.9}},
		Page:    2,
		Limit:   20,
		Total:   41,
		HasMore: true,
	}

	cases := []struct {
		name        string
		userID      string
		query       string
		expectedReq *command.GetFeedRequest
		result      domain.FeedPage
		commandErr  error
		wantStatus  int
	}{
		{
			name:   "full_query",
			userID: "user1",
			query:  "page=2&limit=20&board=go&exclude=a,,b&similarity_weight=0.8&diversity=false",
			expectedReq: &command.GetFeedRequest{
				UserID:         "user1",
				Page:           2,
				Limit:          20,
				BoardFilter:    "go",
				ExcludePostIDs: []string{"a", "b"},
				RankingOverrides: domain.RankingParamsOverride{
					SimilarityWeight: &weight,
					ApplyDiversity:   &diversity,
				},
			},
			result:     page,
			wantStatus: http.StatusOK,
		},
		{
			name:        "defaults",
			userID:      "user1",
			expectedReq: &command.GetFeedRequest{UserID: "user1", Page: 1},
			result:      domain.FeedPage{Page: 1, Limit: 20},
			wantStatus:  http.StatusOK,
		},
		{
			name:       "unauthenticated",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "invalid_page",
			userID:     "user1",
			query:      "page=0",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "limit_too_large",
			userID:     "user1",
			query:      "limit=1000",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid_weight",
			userID:     "user1",
			query:      "recency_weight=lots",
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "too_many_exclusions",
			userID:     "user1",
			query:      "exclude=" + manyIDs(maxIDList+1),
			wantStatus: http.StatusBadRequest,
		},
		{
			name:        "out_of_range_weight",
			userID:      "user1",
			query:       "engagement_weight=2",
			expectedReq: &command.GetFeedRequest{
				UserID:           "user1",
				Page:             1,
				RankingOverrides: domain.RankingParamsOverride{EngagementWeight: &tooHeavy},
			},
			commandErr:  fmt.Errorf("%w: EngagementWeight is out of range", domain.ErrInvalidRequest),
			wantStatus:  http.StatusBadRequest,
		},
		{
			name:        "command_error",
			userID:      "user1",
			expectedReq: &command.GetFeedRequest{UserID: "user1", Page: 1},
			commandErr:  errors.New("recall failed"),
			wantStatus:  http.StatusInternalServerError,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := cmdmocks.NewMockCommand[command.GetFeedRequest, domain.FeedPage](t)
			if tc.expectedReq != nil {
				cmd.EXPECT().Execute(mock.Anything, *tc.expectedReq).Return(tc.result, tc.commandErr)
			}

			req := httptest.NewRequest(http.MethodGet, "/v1/feed?"+tc.query, nil)
			if tc.userID != "" {
				req = testContextWithUserID(tc.userID)(req)
			} else {
				req = testContext()(req)
			}
			rec := httptest.NewRecorder()

			FeedGet{Command: cmd}.ServeHTTP(rec, req)

			assert.Equal(t, tc.wantStatus, rec.Code)
			if tc.wantStatus != http.StatusOK {
				return
			}

			var response domain.FeedPage
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&response))
			assert.Equal(t, tc.result.Page, response.Page)
			assert.Equal(t, tc.result.HasMore, response.HasMore)
			assert.Equal(t, tc.result.Total, response.Total)
			assert.NotNil(t, response.Posts)
		})
	}
}

func manyIDs(n int) string {
	ids := make([]string, n)
	for i := range ids {
		ids[i] = fmt.Sprintf("p%d", i)
	}
	return strings.Join(ids, ",")
}
