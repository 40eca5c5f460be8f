package command

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/community-feed/internal/datasources/mocks"
	"github.com/jbeshir/community-feed/internal/domain"
)

func TestEmbedPosts_Execute(t *testing.T) {
	published := time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)
	texts := []domain.PostText{
		{PostID: "p1", Text: "one", TextHash: "h1", PublishedAt: published},
		{PostID: "p2", Text: "two", TextHash: "h2", PublishedAt: published},
		{PostID: "p3", Text: "three", TextHash: "h3", PublishedAt: published},
	}
	p1 := domain.PostEmbedding{PostID: "p1", Vector: []float32{1, 0}, TextHash: "h1", PublishedAt: published}
	p3 := domain.PostEmbedding{PostID: "p3", Vector: []float32{0, 1}, TextHash: "h3", PublishedAt: published}

	cases := []struct {
		name        string
		setup       func(index *mocks.MockPostVectorUpserter, writer *mocks.MockPostEmbeddingWriter)
		expected    EmbedPostsResult
		errContains string
	}{
		{
			name: "writes_index_then_durable",
			setup: func(index *mocks.MockPostVectorUpserter, writer *mocks.MockPostEmbeddingWriter) {
				index.EXPECT().UpsertPostVectors(mock.Anything, []domain.PostEmbedding{p1, p3}).Return(nil)
				writer.EXPECT().SetPostEmbedding(mock.Anything, p1).Return(nil)
				writer.EXPECT().SetPostEmbedding(mock.Anything, p3).Return(errors.New("db down"))
			},
			expected: EmbedPostsResult{Embedded: 1, Skipped: 1, Failed: 1},
		},
		{
			name: "index_error_skips_durable_write",
			setup: func(index *mocks.MockPostVectorUpserter, _ *mocks.MockPostEmbeddingWriter) {
				index.EXPECT().UpsertPostVectors(mock.Anything, []domain.PostEmbedding{p1, p3}).
					Return(errors.New("pinecone unavailable"))
			},
			expected:    EmbedPostsResult{Skipped: 1, Failed: 2},
			errContains: "upserting post vectors",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			posts := mocks.NewMockPostsNeedingEmbeddingLister(t)
			embedder := mocks.NewMockEmbedder(t)
			index := mocks.NewMockPostVectorUpserter(t)
			writer := mocks.NewMockPostEmbeddingWriter(t)

			posts.EXPECT().ListPostsNeedingEmbedding(mock.Anything, 25).Return(texts, nil)
			embedder.EXPECT().EmbedText(mock.Anything, "one").Return([]float32{1, 0}, nil)
			embedder.EXPECT().EmbedText(mock.Anything, "two").Return(nil, nil)
			embedder.EXPECT().EmbedText(mock.Anything, "three").Return([]float32{0, 1}, nil)
			tc.setup(index, writer)

			cmd := NewEmbedPosts(posts, embedder, index, writer, EmbedPostsConfig{DefaultMaxPosts: 25})
			result, err := cmd.Execute(context.Background(), EmbedPostsRequest{})
			if tc.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errContains)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestEmbedPosts_Execute_EmbedderError(t *testing.T) {
	posts := mocks.NewMockPostsNeedingEmbeddingLister(t)
	embedder := mocks.NewMockEmbedder(t)

	posts.EXPECT().ListPostsNeedingEmbedding(mock.Anything, 5).
		Return([]domain.PostText{{PostID: "p1", Text: "one"}}, nil)
	embedder.EXPECT().EmbedText(mock.Anything, "one").Return(nil, errors.New("rate limited"))

	cmd := NewEmbedPosts(posts, embedder, mocks.NewMockPostVectorUpserter(t), mocks.NewMockPostEmbeddingWriter(t),
		EmbedPostsConfig{DefaultMaxPosts: 25})
	result, err := cmd.Execute(context.Background(), EmbedPostsRequest{MaxPosts: 5})
	require.NoError(t, err)
	assert.Equal(t, EmbedPostsResult{Failed: 1}, result)
}
