package mysql

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/huandu/go-sqlbuilder"
	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
)

var (
	_ datasources.UserInterestVectorWriter  = (*Repository)(nil)
	_ datasources.InterestRefreshUserLister = (*Repository)(nil)
	_ datasources.LikedPostVectorsLister    = (*Repository)(nil)
)

func (r *Repository) GetUser(ctx context.Context, userID string) (domain.User, error) {
	sb := sqlbuilder.Select(
		"id", "profile_text", "interest_vector", "interest_updated_at",
		"ranking_similarity_weight", "ranking_recency_weight", "ranking_engagement_weight",
		"ranking_apply_diversity",
	)
	sb.From("users")
	sb.Where(sb.Equal("id", userID))

	query, args := sb.Build()

	var (
		user                            domain.User
		vector                          []byte
		interestUpdatedAt               sql.NullTime
		similarity, recency, engagement sql.NullFloat64
		diversity                       sql.NullBool
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&user.ID, &user.ProfileText, &vector, &interestUpdatedAt,
		&similarity, &recency, &engagement, &diversity,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.User{}, fmt.Errorf("user [%s]: %w", userID, domain.ErrNotFound)
	}
	if err != nil {
		return domain.User{}, fmt.Errorf("fetching user: %w", err)
	}

	if len(vector) > 0 {
		user.InterestVector, err = bytesToFloat32Slice(vector)
		if err != nil {
			return domain.User{}, fmt.Errorf("decoding interest vector: %w", err)
		}
	}
	user.InterestUpdatedAt = interestUpdatedAt.Time

	if similarity.Valid && recency.Valid && engagement.Valid {
		user.RankingDefaults = &domain.RankingParams{
			SimilarityWeight: similarity.Float64,
			RecencyWeight:    recency.Float64,
			EngagementWeight: engagement.Float64,
			ApplyDiversity:   diversity.Bool,
		}
	}

	return user, nil
}

func (r *Repository) SetUserInterestVector(
	ctx context.Context, userID string, vector []float32, updatedAt time.Time,
) error {
	ub := sqlbuilder.Update("users")
	ub.Set(
		ub.Assign("interest_vector", float32SliceToBytes(vector)),
		ub.Assign("interest_updated_at", updatedAt),
	)
	ub.Where(ub.Equal("id", userID))

	query, args := ub.Build()
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("updating interest vector: %w", err)
	}
	return nil
}

func (r *Repository) ListUsersNeedingInterestRefresh(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}

	sb := sqlbuilder.Select("u.id")
	sb.From("users u")
	sb.Where(sb.Or(
		sb.IsNull("u.interest_updated_at"),
		"u.profile_updated_at > u.interest_updated_at",
		"EXISTS (SELECT 1 FROM votes v WHERE v.user_id = u.id AND v.subject_type = 'post'"+
			" AND v.state = 'up' AND v.updated_at > u.interest_updated_at)",
	))
	sb.OrderBy("u.id")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running users needing refresh query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scanning user ids: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return ids, nil
}

func (r *Repository) ListLikedPostVectors(
	ctx context.Context, userID string, limit int,
) ([]domain.TimestampedVector, error) {
	if limit <= 0 {
		return nil, nil
	}

	sb := sqlbuilder.Select("p.embedding", "v.updated_at")
	sb.From("votes v")
	sb.Join("posts p", "p.id = v.subject_id")
	sb.Where(
		sb.Equal("v.subject_type", string(domain.SubjectTypePost)),
		sb.Equal("v.user_id", userID),
		sb.Equal("v.state", string(domain.VoteStateUp)),
		sb.IsNotNull("p.embedding"),
		sb.IsNull("p.deleted_at"),
	)
	sb.OrderBy("v.updated_at").Desc()
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running liked post vectors query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var vectors []domain.TimestampedVector
	for rows.Next() {
		var (
			raw   []byte
			liked time.Time
		)
		if err := rows.Scan(&raw, &liked); err != nil {
			return nil, fmt.Errorf("scanning liked post vectors: %w", err)
		}
		vector, err := bytesToFloat32Slice(raw)
		if err != nil {
			return nil, fmt.Errorf("decoding liked post vector: %w", err)
		}
		vectors = append(vectors, domain.TimestampedVector{Vector: vector, Timestamp: liked})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return vectors, nil
}
