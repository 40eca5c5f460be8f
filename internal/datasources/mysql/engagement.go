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
	_ datasources.DurableEngagementRepository = (*Repository)(nil)
	_ datasources.TopCommentsLister           = (*Repository)(nil)
)

func (r *Repository) GetEngagementBaseline(
	ctx context.Context, subjectType domain.SubjectType, subjectID, userID string,
) (domain.EngagementBaseline, error) {
	counts, err := r.GetDurableCounts(ctx, subjectType, []string{subjectID})
	if err != nil {
		return domain.EngagementBaseline{}, err
	}

	baseline := domain.EngagementBaseline{
		Counts: counts[subjectID],
		State:  domain.VoteStateNone,
	}
	if userID == "" {
		return baseline, nil
	}

	sb := sqlbuilder.Select("state")
	sb.From("votes")
	sb.Where(
		sb.Equal("subject_type", string(subjectType)),
		sb.Equal("subject_id", subjectID),
		sb.Equal("user_id", userID),
	)
	query, args := sb.Build()

	var state string
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&state)
	switch {
	case errors.Is(err, sql.ErrNoRows):
	case err != nil:
		return domain.EngagementBaseline{}, fmt.Errorf("fetching vote state: %w", err)
	default:
		baseline.State = domain.VoteState(state)
	}

	return baseline, nil
}

func (r *Repository) GetDurableCounts(
	ctx context.Context, subjectType domain.SubjectType, subjectIDs []string,
) (map[string]domain.AggregateCounts, error) {
	counts := make(map[string]domain.AggregateCounts, len(subjectIDs))
	if len(subjectIDs) == 0 {
		return counts, nil
	}
	for _, id := range subjectIDs {
		counts[id] = domain.AggregateCounts{SubjectID: id}
	}

	sb := sqlbuilder.Select("subject_id", "like_count", "dislike_count", "view_count", "comment_count")
	sb.From("engagement_counts")
	sb.Where(
		sb.Equal("subject_type", string(subjectType)),
		sb.In("subject_id", toArgs(subjectIDs)...),
	)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running counts query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var c domain.AggregateCounts
		if err := rows.Scan(&c.SubjectID, &c.LikeCount, &c.DislikeCount, &c.ViewCount, &c.CommentCount); err != nil {
			return nil, fmt.Errorf("scanning counts: %w", err)
		}
		counts[c.SubjectID] = c
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return counts, nil
}

// ApplyEngagementSnapshot writes absolute counts and vote states, then each
// comment operation not already recorded in applied_operations, in a single
// transaction.
func (r *Repository) ApplyEngagementSnapshot(ctx context.Context, snapshot domain.SubjectSnapshot) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	now := time.Now().UTC()

	if err := upsertCounts(ctx, tx, snapshot, now); err != nil {
		return err
	}
	if err := upsertVotes(ctx, tx, snapshot, now); err != nil {
		return err
	}
	for _, op := range snapshot.CommentOps {
		if err := applyCommentOperation(ctx, tx, op, now); err != nil {
			return fmt.Errorf("applying comment operation %s: %w", op.OperationID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}
	return nil
}

func upsertCounts(ctx context.Context, tx *sql.Tx, snapshot domain.SubjectSnapshot, now time.Time) error {
	ib := sqlbuilder.InsertInto("engagement_counts")
	ib.Cols("subject_type", "subject_id", "like_count", "dislike_count", "view_count", "comment_count", "updated_at")
	ib.Values(
		string(snapshot.SubjectType), snapshot.SubjectID,
		snapshot.Counts.LikeCount, snapshot.Counts.DislikeCount,
		snapshot.Counts.ViewCount, snapshot.Counts.CommentCount,
		now,
	)
	ib.SQL("ON DUPLICATE KEY UPDATE like_count = VALUES(like_count), dislike_count = VALUES(dislike_count)," +
		" view_count = VALUES(view_count), comment_count = VALUES(comment_count), updated_at = VALUES(updated_at)")

	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting counts: %w", err)
	}
	return nil
}

func upsertVotes(ctx context.Context, tx *sql.Tx, snapshot domain.SubjectSnapshot, now time.Time) error {
	if len(snapshot.Votes) == 0 {
		return nil
	}

	ib := sqlbuilder.InsertInto("votes")
	ib.Cols("subject_type", "subject_id", "user_id", "state", "updated_at")
	for _, v := range snapshot.Votes {
		ib.Values(string(snapshot.SubjectType), snapshot.SubjectID, v.UserID, string(v.State), now)
	}
	ib.SQL("ON DUPLICATE KEY UPDATE updated_at = IF(state = VALUES(state), updated_at, VALUES(updated_at))," +
		" state = VALUES(state)")

	query, args := ib.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upserting votes: %w", err)
	}
	return nil
}

func applyCommentOperation(
	ctx context.Context, tx *sql.Tx, op domain.PendingCommentOperation, now time.Time,
) error {
	guard := sqlbuilder.InsertIgnoreInto("applied_operations")
	guard.Cols("op_id", "applied_at")
	guard.Values(op.OperationID, now)
	query, args := guard.Build()

	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("recording operation: %w", err)
	}
	if affected, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("checking operation record: %w", err)
	} else if affected == 0 {
		return nil
	}

	timestamp := op.Timestamp.UTC()
	if op.Timestamp.IsZero() {
		timestamp = now
	}

	switch op.Kind {
	case domain.KindCommentCreate:
		ib := sqlbuilder.InsertIgnoreInto("comments")
		ib.Cols("id", "post_id", "user_id", "body", "created_at", "updated_at")
		ib.Values(op.CommentID, op.PostID, op.UserID, op.Body, timestamp, timestamp)
		query, args = ib.Build()

	case domain.KindCommentUpdate:
		ub := sqlbuilder.Update("comments")
		ub.Set(ub.Assign("body", op.Body), ub.Assign("updated_at", timestamp))
		ub.Where(
			ub.Equal("id", op.CommentID),
			ub.Equal("post_id", op.PostID),
			ub.Equal("user_id", op.UserID),
			ub.IsNull("deleted_at"),
		)
		query, args = ub.Build()

	case domain.KindCommentDelete:
		ub := sqlbuilder.Update("comments")
		ub.Set(ub.Assign("deleted_at", timestamp))
		ub.Where(
			ub.Equal("id", op.CommentID),
			ub.Equal("post_id", op.PostID),
			ub.Equal("user_id", op.UserID),
			ub.IsNull("deleted_at"),
		)
		query, args = ub.Build()

	default:
		return fmt.Errorf("unknown comment operation kind: %s", op.Kind)
	}

	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("writing comment: %w", err)
	}
	return nil
}

func (r *Repository) GetCommentRef(ctx context.Context, commentID string) (domain.CommentRef, error) {
	sb := sqlbuilder.Select("post_id", "user_id", "deleted_at IS NOT NULL")
	sb.From("comments")
	sb.Where(sb.Equal("id", commentID))
	query, args := sb.Build()

	ref := domain.CommentRef{CommentID: commentID}
	err := r.db.QueryRowContext(ctx, query, args...).Scan(&ref.PostID, &ref.UserID, &ref.Deleted)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return domain.CommentRef{}, domain.ErrNotFound
	case err != nil:
		return domain.CommentRef{}, fmt.Errorf("fetching comment: %w", err)
	}
	return ref, nil
}

func (r *Repository) ListCommentPostIDs(ctx context.Context, commentIDs []string) (map[string]string, error) {
	postIDs := make(map[string]string, len(commentIDs))
	if len(commentIDs) == 0 {
		return postIDs, nil
	}

	sb := sqlbuilder.Select("id", "post_id")
	sb.From("comments")
	sb.Where(sb.In("id", toArgs(commentIDs)...))

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running comment posts query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var commentID, postID string
		if err := rows.Scan(&commentID, &postID); err != nil {
			return nil, fmt.Errorf("scanning comment posts: %w", err)
		}
		postIDs[commentID] = postID
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return postIDs, nil
}

func (r *Repository) ListTopComments(ctx context.Context, postID string, limit int) ([]domain.Comment, error) {
	if limit <= 0 {
		return nil, nil
	}

	sb := sqlbuilder.Select("cm.id", "cm.post_id", "cm.user_id", "cm.body", "COALESCE(c.like_count, 0) AS likes",
		"cm.created_at")
	sb.From("comments cm")
	sb.JoinWithOption(sqlbuilder.LeftJoin, "engagement_counts c",
		"c.subject_type = 'comment'",
		"c.subject_id = cm.id",
	)
	sb.Where(
		sb.Equal("cm.post_id", postID),
		sb.IsNull("cm.deleted_at"),
	)
	sb.OrderBy("likes DESC", "cm.created_at DESC", "cm.id")
	sb.Limit(limit)

	query, args := sb.Build()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("running top comments query: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.PostID, &c.UserID, &c.Body, &c.LikeCount, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning top comments: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating rows: %w", err)
	}

	return comments, nil
}
