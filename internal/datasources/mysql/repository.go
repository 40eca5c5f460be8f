package mysql

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"math"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
)

var (
	_ datasources.DatasetRepository           = (*Repository)(nil)
	_ datasources.PostEmbeddingLister         = (*Repository)(nil)
	_ datasources.PostsNeedingEmbeddingLister = (*Repository)(nil)
	_ datasources.PostEmbeddingWriter         = (*Repository)(nil)
)

// textStartLength is how much of a post body is returned with listings.
const textStartLength = 300

type Repository struct {
	db *sql.DB
}

func New(db *sql.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FetchPostsByID(ctx context.Context, ids []string) ([]domain.Post, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	sb := sqlbuilder.Select(
		"p.id", "p.author_id", "p.board", "p.title",
		fmt.Sprintf("LEFT(p.body, %d)", textStartLength),
		"p.published_at",
		"COALESCE(c.like_count, 0)", "COALESCE(c.dislike_count, 0)",
		"COALESCE(c.view_count, 0)", "COALESCE(c.comment_count, 0)",
	)
	sb.From("posts p")
	joinPostCounts(sb)
	sb.Where(
		sb.In("p.id", toArgs(ids)...),
		sb.IsNull("p.deleted_at"),
	)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running posts query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	posts := make([]domain.Post, 0, len(ids))
	for rows.Next() {
		var p domain.Post
		if err := rows.Scan(
			&p.ID, &p.AuthorID, &p.Board, &p.Title, &p.TextStart, &p.PublishedAt,
			&p.Counts.LikeCount, &p.Counts.DislikeCount, &p.Counts.ViewCount, &p.Counts.CommentCount,
		); err != nil {
			return nil, fmt.Errorf("scanning posts: %w", err)
		}
		p.Counts.SubjectID = p.ID
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return posts, nil
}

// ListColdStartPosts orders posts published after filters.PublishedAfter by
// net likes plus comments, then every older post by recency.
func (r *Repository) ListColdStartPosts(
	ctx context.Context, filters domain.PostFilters, limit int,
) ([]domain.Candidate, error) {
	if limit <= 0 {
		return nil, nil
	}

	sb := sqlbuilder.Select("p.id", "p.published_at")
	sb.From("posts p")
	joinPostCounts(sb)

	conds := buildPostsConditions(sb, domain.PostFilters{
		Board:          filters.Board,
		ExcludePostIDs: filters.ExcludePostIDs,
	})
	sb.Where(conds...)

	engagement := "GREATEST(COALESCE(c.like_count - c.dislike_count, 0), 0) + COALESCE(c.comment_count, 0)"
	sb.OrderBy(
		"CASE WHEN p.published_at >= "+sb.Args.Add(filters.PublishedAfter)+" THEN "+engagement+" ELSE -1 END DESC",
		"p.published_at DESC",
		"p.id",
	)
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running cold start query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var candidates []domain.Candidate
	for rows.Next() {
		var c domain.Candidate
		if err := rows.Scan(&c.PostID, &c.PublishedAt); err != nil {
			return nil, fmt.Errorf("scanning cold start posts: %w", err)
		}
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return candidates, nil
}

func (r *Repository) ListPostEmbeddings(
	ctx context.Context, filters domain.PostFilters,
) ([]domain.PostEmbedding, error) {
	sb := sqlbuilder.Select("p.id", "p.embedding", "p.embedding_text_hash", "p.published_at")
	sb.From("posts p")

	filters.RequireEmbedded = true
	sb.Where(buildPostsConditions(sb, filters)...)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running post embeddings query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var embeddings []domain.PostEmbedding
	for rows.Next() {
		var (
			e      domain.PostEmbedding
			raw    []byte
			hashNS sql.NullString
		)
		if err := rows.Scan(&e.PostID, &raw, &hashNS, &e.PublishedAt); err != nil {
			return nil, fmt.Errorf("scanning post embeddings: %w", err)
		}
		e.Vector, err = bytesToFloat32Slice(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding embedding for post %s: %w", e.PostID, err)
		}
		e.TextHash = hashNS.String
		embeddings = append(embeddings, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return embeddings, nil
}

func (r *Repository) ListPostsNeedingEmbedding(ctx context.Context, limit int) ([]domain.PostText, error) {
	if limit <= 0 {
		return nil, nil
	}

	sb := sqlbuilder.Select("id", "board", "author_id", "title", "body", "published_at")
	sb.From("posts")
	sb.Where(
		sb.IsNull("deleted_at"),
		sb.Or(
			sb.IsNull("embedding"),
			sb.IsNull("embedding_text_hash"),
			"embedding_text_hash <> SHA2(CONCAT(title, '\\n\\n', body), 256)",
		),
	)
	sb.OrderBy("published_at").Desc()
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running posts needing embedding query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var posts []domain.PostText
	for rows.Next() {
		var (
			p           domain.PostText
			title, body string
		)
		if err := rows.Scan(&p.PostID, &p.Board, &p.AuthorID, &title, &body, &p.PublishedAt); err != nil {
			return nil, fmt.Errorf("scanning posts needing embedding: %w", err)
		}
		p.Text = EmbeddingText(title, body)
		p.TextHash = TextHash(p.Text)
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return posts, nil
}

func (r *Repository) SetPostEmbedding(ctx context.Context, embedding domain.PostEmbedding) error {
	ub := sqlbuilder.Update("posts")
	ub.Set(
		ub.Assign("embedding", float32SliceToBytes(embedding.Vector)),
		ub.Assign("embedding_text_hash", embedding.TextHash),
	)
	ub.Where(ub.Equal("id", embedding.PostID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating post embedding: %w", err)
	}
	return nil
}

// EmbeddingText is the text a post's embedding is generated from.
func EmbeddingText(title, body string) string {
	return title + "\n\n" + body
}

// TextHash is the hex SHA-256 of text, matching MySQL's SHA2(text, 256).
func TextHash(text string) string {
	sum := sha256.Sum256([]byte(text))
	return hex.EncodeToString(sum[:])
}

func joinPostCounts(sb *sqlbuilder.SelectBuilder) {
	sb.JoinWithOption(sqlbuilder.LeftJoin, "engagement_counts c",
		"c.subject_type = 'post'",
		"c.subject_id = p.id",
	)
}

func buildPostsConditions(sb *sqlbuilder.SelectBuilder, filters domain.PostFilters) []string {
	conds := []string{sb.IsNull("p.deleted_at")}

	if filters.Board != "" {
		conds = append(conds, sb.Equal("p.board", filters.Board))
	}

	if filters.PublishedAfter != (time.Time{}) {
		conds = append(conds, sb.GreaterEqualThan("p.published_at", filters.PublishedAfter))
	}

	if len(filters.ExcludePostIDs) > 0 {
		conds = append(conds, sb.NotIn("p.id", toArgs(filters.ExcludePostIDs)...))
	}

	if filters.RequireEmbedded {
		conds = append(conds, sb.IsNotNull("p.embedding"))
	}

	return conds
}

func toArgs(values []string) []interface{} {
	args := make([]interface{}, 0, len(values))
	for _, v := range values {
		args = append(args, v)
	}
	return args
}

// Helper functions for binary vector serialization

func float32SliceToBytes(floats []float32) []byte {
	bytes := make([]byte, len(floats)*4)
	for i, f := range floats {
		binary.LittleEndian.PutUint32(bytes[i*4:], math.Float32bits(f))
	}
	return bytes
}

func bytesToFloat32Slice(bytes []byte) ([]float32, error) {
	if len(bytes)%4 != 0 {
		return nil, fmt.Errorf("invalid byte length for float32 slice: %d", len(bytes))
	}
	floats := make([]float32, len(bytes)/4)
	for i := range floats {
		floats[i] = math.Float32frombits(binary.LittleEndian.Uint32(bytes[i*4:]))
	}
	return floats, nil
}
