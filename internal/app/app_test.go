package app

import (
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/datasources/breaker"
	"github.com/jbeshir/community-feed/internal/domain"
)

func TestJobs(t *testing.T) {
	jobs := Jobs(NewCommands(Datasources{}))

	names := make([]string, 0, len(jobs))
	for name := range jobs {
		names = append(names, name)
	}
	slices.Sort(names)
	assert.Equal(t, []string{JobEmbedPosts, JobFlush, JobRefreshHotComments, JobRefreshInterestVectors}, names)
}

func TestSetupSimilarityRepository(t *testing.T) {
	ctx := testContext()

	t.Setenv("SIMILARITY_DRIVER", "null")
	similarity, err := setupSimilarityRepository(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, datasources.NullSimilarityRepository{}, similarity)

	t.Setenv("SIMILARITY_DRIVER", "mysql_scan")
	similarity, err = setupSimilarityRepository(ctx, nil)
	require.NoError(t, err)
	assert.IsType(t, &breaker.SimilarityRepository{}, similarity)

	t.Setenv("SIMILARITY_DRIVER", "faiss")
	_, err = setupSimilarityRepository(ctx, nil)
	require.Error(t, err)
}

func TestSetupEmbedders(t *testing.T) {
	ctx := testContext()

	t.Setenv("EMBEDDER_DRIVER", "null")
	query, document, err := setupEmbedders(ctx)
	require.NoError(t, err)
	assert.Equal(t, datasources.NullEmbedder{}, query)
	assert.Equal(t, datasources.NullEmbedder{}, document)

	t.Setenv("EMBEDDER_DRIVER", "openai")
	_, _, err = setupEmbedders(ctx)
	require.Error(t, err)
}

func TestSetupAuthMiddleware(t *testing.T) {
	ctx := testContext()

	t.Setenv("AUTH_DRIVERS", "header")
	t.Setenv("AUTH_USER_HEADER", "X-Forwarded-User")
	middleware, err := setupAuthMiddleware(ctx)
	require.NoError(t, err)

	var seen string
	handler := middleware(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		seen = domain.UserIDFromContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/v1/feed", nil)
	req.Header.Set("X-Forwarded-User", "user1")
	handler.ServeHTTP(httptest.NewRecorder(), req.WithContext(ctx))
	assert.Equal(t, "user1", seen)

	t.Setenv("AUTH_DRIVERS", "api_token")
	_, err = setupAuthMiddleware(ctx)
	require.Error(t, err)
}
