package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
)

// EmbedPostsRequest is the request for the EmbedPosts command.
type EmbedPostsRequest struct {
	MaxPosts int
}

type EmbedPostsResult struct {
	Embedded int `json:"embedded"`
	Skipped  int `json:"skipped"`
	Failed   int `json:"failed"`
}

// EmbedPostsConfig holds configuration for the post embedding job.
type EmbedPostsConfig struct {
	DefaultMaxPosts int
}

// EmbedPosts embeds posts whose embedding is missing or was computed from
// different text, then writes the vectors to the index and the durable store.
type EmbedPosts struct {
	Posts    datasources.PostsNeedingEmbeddingLister
	Embedder datasources.Embedder
	Index    datasources.PostVectorUpserter
	Writer   datasources.PostEmbeddingWriter
	Config   EmbedPostsConfig
}

// NewEmbedPosts creates a properly initialized EmbedPosts command.
func NewEmbedPosts(
	posts datasources.PostsNeedingEmbeddingLister,
	embedder datasources.Embedder,
	index datasources.PostVectorUpserter,
	writer datasources.PostEmbeddingWriter,
	config EmbedPostsConfig,
) *EmbedPosts {
	return &EmbedPosts{
		Posts:    posts,
		Embedder: embedder,
		Index:    index,
		Writer:   writer,
		Config:   config,
	}
}

// Execute embeds one batch. The index is written before the durable store so
// a failed upsert leaves the posts listed for the next run.
func (c *EmbedPosts) Execute(ctx context.Context, req EmbedPostsRequest) (EmbedPostsResult, error) {
	logger := domain.LoggerFromContext(ctx)

	maxPosts := req.MaxPosts
	if maxPosts <= 0 {
		maxPosts = c.Config.DefaultMaxPosts
	}

	posts, err := c.Posts.ListPostsNeedingEmbedding(ctx, maxPosts)
	if err != nil {
		return EmbedPostsResult{}, fmt.Errorf("listing posts needing embedding: %w", err)
	}

	var (
		result     EmbedPostsResult
		embeddings []domain.PostEmbedding
	)
	for _, post := range posts {
		if ctx.Err() != nil {
			break
		}

		vector, err := c.Embedder.EmbedText(ctx, post.Text)
		if err != nil {
			logger.ErrorContext(ctx, "failed to embed post", "post_id", post.PostID, "error", err)
			result.Failed++
			continue
		}
		if len(vector) == 0 {
			logger.DebugContext(ctx, "no embedding available for post", "post_id", post.PostID)
			result.Skipped++
			continue
		}

		embeddings = append(embeddings, domain.PostEmbedding{
			PostID:      post.PostID,
			Vector:      vector,
			TextHash:    post.TextHash,
			PublishedAt: post.PublishedAt,
		})
	}

	if len(embeddings) == 0 {
		return result, nil
	}

	if err := c.Index.UpsertPostVectors(ctx, embeddings); err != nil {
		result.Failed += len(embeddings)
		return result, fmt.Errorf("upserting post vectors: %w", err)
	}

	for _, embedding := range embeddings {
		if err := c.Writer.SetPostEmbedding(ctx, embedding); err != nil {
			logger.ErrorContext(ctx, "failed to store post embedding", "post_id", embedding.PostID, "error", err)
			result.Failed++
			continue
		}
		result.Embedded++
	}

	logger.InfoContext(ctx, "post embedding complete",
		"embedded", result.Embedded, "skipped", result.Skipped, "failed", result.Failed)
	return result, nil
}
