package command

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/jbeshir/community-feed/internal/metrics"
)

// BufferEngagementConfig holds configuration for buffering engagement writes.
type BufferEngagementConfig struct {
	// MaxVoteAttempts bounds how often a vote is retried after losing a race
	// with a concurrent vote by the same user on the same subject.
	MaxVoteAttempts int
}

// BufferEngagement records an engagement operation in the fast store and
// returns the subject's updated counts. The durable store is only read, to
// seed the fast store with a subject's baseline the first time it is touched.
type BufferEngagement struct {
	Buffer        datasources.EngagementBuffer
	Baselines     datasources.EngagementBaselineGetter
	DurableCounts datasources.DurableCountsGetter
	Comments      datasources.CommentRefGetter
	Config        BufferEngagementConfig

	now   func() time.Time
	newID func() string
}

// NewBufferEngagement creates a properly initialized BufferEngagement command.
func NewBufferEngagement(
	buffer datasources.EngagementBuffer,
	baselines datasources.EngagementBaselineGetter,
	durableCounts datasources.DurableCountsGetter,
	comments datasources.CommentRefGetter,
	config BufferEngagementConfig,
) *BufferEngagement {
	return &BufferEngagement{
		Buffer:        buffer,
		Baselines:     baselines,
		DurableCounts: durableCounts,
		Comments:      comments,
		Config:        config,
		now:           time.Now,
		newID:         uuid.NewString,
	}
}

// Execute validates and buffers op. Invalid operations are rejected with
// domain.ErrInvalidOperation before anything is written.
func (c *BufferEngagement) Execute(ctx context.Context, op domain.EngagementOperation) (domain.BufferResult, error) {
	if op.Timestamp.IsZero() {
		op.Timestamp = c.now()
	}
	if err := op.Validate(); err != nil {
		return domain.BufferResult{}, err
	}

	var (
		result domain.BufferResult
		err    error
	)
	switch {
	case op.Kind.IsVote():
		result, err = c.bufferVote(ctx, op)
	case op.Kind == domain.KindView:
		result, err = c.bufferView(ctx, op)
	case op.Kind.IsComment():
		result, err = c.bufferComment(ctx, op)
	default:
		return domain.BufferResult{}, fmt.Errorf("%w: unsupported kind [%s]", domain.ErrInvalidOperation, op.Kind)
	}
	if err != nil {
		return domain.BufferResult{}, err
	}

	metrics.EngagementOperations.WithLabelValues(string(op.Kind), string(result.Action)).Inc()
	return result, nil
}

func (c *BufferEngagement) bufferVote(ctx context.Context, op domain.EngagementOperation) (domain.BufferResult, error) {
	logger := domain.LoggerFromContext(ctx)

	attempts := max(c.Config.MaxVoteAttempts, 1)
	for attempt := 1; attempt <= attempts; attempt++ {
		snapshot, err := c.voteSnapshot(ctx, op)
		if err != nil {
			return domain.BufferResult{}, err
		}

		previous := snapshot.State
		if previous == "" {
			previous = domain.VoteStateNone
		}

		target, changed := domain.ResolveVote(op.Kind, previous)
		if !changed {
			counts, err := c.currentCounts(ctx, op.SubjectType, op.SubjectID)
			if err != nil {
				return domain.BufferResult{}, err
			}
			return domain.BufferResult{
				Applied:       false,
				Action:        domain.ActionDuplicate,
				PreviousState: previous,
				Counts:        counts,
			}, nil
		}

		counts, swapped, err := c.Buffer.CompareAndSetVote(ctx, op.SubjectType, op.SubjectID, op.UserID, previous, target)
		if err != nil {
			return domain.BufferResult{}, fmt.Errorf("storing vote: %w", err)
		}
		if swapped {
			action := domain.ActionUpdated
			if previous == domain.VoteStateNone {
				action = domain.ActionCreated
			}
			return domain.BufferResult{
				Applied:       true,
				Action:        action,
				PreviousState: previous,
				Counts:        counts,
			}, nil
		}

		logger.DebugContext(ctx, "vote changed concurrently, retrying",
			"subject_type", op.SubjectType, "subject_id", op.SubjectID, "user_id", op.UserID, "attempt", attempt)
	}

	return domain.BufferResult{}, fmt.Errorf("vote on [%s/%s] still contended after %d attempts",
		op.SubjectType, op.SubjectID, attempts)
}

// voteSnapshot reads the pair's fast-store state, seeding it from the
// durable store first when the subject or the pair is not yet present.
func (c *BufferEngagement) voteSnapshot(ctx context.Context, op domain.EngagementOperation) (domain.VoteSnapshot, error) {
	snapshot, err := c.Buffer.GetVoteSnapshot(ctx, op.SubjectType, op.SubjectID, op.UserID)
	if err != nil {
		return domain.VoteSnapshot{}, fmt.Errorf("reading vote snapshot: %w", err)
	}
	if snapshot.CountsKnown && snapshot.StateKnown {
		return snapshot, nil
	}

	baseline, err := c.Baselines.GetEngagementBaseline(ctx, op.SubjectType, op.SubjectID, op.UserID)
	if err != nil {
		return domain.VoteSnapshot{}, fmt.Errorf("loading engagement baseline: %w", err)
	}
	baseline.Counts.SubjectID = op.SubjectID

	if err := c.Buffer.SeedBaseline(ctx, op.SubjectType, op.SubjectID, op.UserID, baseline); err != nil {
		return domain.VoteSnapshot{}, fmt.Errorf("seeding engagement baseline: %w", err)
	}

	snapshot, err = c.Buffer.GetVoteSnapshot(ctx, op.SubjectType, op.SubjectID, op.UserID)
	if err != nil {
		return domain.VoteSnapshot{}, fmt.Errorf("reading vote snapshot: %w", err)
	}
	return snapshot, nil
}

func (c *BufferEngagement) bufferView(ctx context.Context, op domain.EngagementOperation) (domain.BufferResult, error) {
	if err := c.ensureCounts(ctx, op.SubjectType, op.SubjectID); err != nil {
		return domain.BufferResult{}, err
	}

	counts, err := c.Buffer.IncrementViews(ctx, op.SubjectType, op.SubjectID)
	if err != nil {
		return domain.BufferResult{}, fmt.Errorf("incrementing views: %w", err)
	}

	return domain.BufferResult{
		Applied: true,
		Action:  domain.ActionUpdated,
		Counts:  counts,
	}, nil
}

// bufferComment queues a comment operation. Updates and deletes are checked
// against the comment's author and deletion state in the fast store, loaded
// from the durable store the first time the comment is touched there.
func (c *BufferEngagement) bufferComment(ctx context.Context, op domain.EngagementOperation) (domain.BufferResult, error) {
	commentID := op.CommentID
	if op.Kind == domain.KindCommentCreate {
		commentID = c.newID()
	}

	if err := c.ensureCounts(ctx, domain.SubjectTypePost, op.SubjectID); err != nil {
		return domain.BufferResult{}, err
	}

	pending := domain.PendingCommentOperation{
		OperationID: c.newID(),
		Kind:        op.Kind,
		PostID:      op.SubjectID,
		CommentID:   commentID,
		UserID:      op.UserID,
		Body:        op.Body,
		Timestamp:   op.Timestamp,
	}

	counts, status, err := c.Buffer.EnqueueCommentOperation(ctx, pending)
	if err != nil {
		return domain.BufferResult{}, fmt.Errorf("queueing comment operation: %w", err)
	}
	if status == domain.CommentOpUnknownComment {
		if err := c.seedCommentState(ctx, op); err != nil {
			return domain.BufferResult{}, err
		}
		counts, status, err = c.Buffer.EnqueueCommentOperation(ctx, pending)
		if err != nil {
			return domain.BufferResult{}, fmt.Errorf("queueing comment operation: %w", err)
		}
	}

	switch status {
	case domain.CommentOpApplied:
		action := domain.ActionUpdated
		if op.Kind == domain.KindCommentCreate {
			action = domain.ActionCreated
		}
		return domain.BufferResult{
			Applied:   true,
			Action:    action,
			Counts:    counts,
			CommentID: commentID,
		}, nil
	case domain.CommentOpAlreadyDeleted:
		if op.Kind != domain.KindCommentDelete {
			return domain.BufferResult{}, fmt.Errorf("%w: comment [%s] is deleted", domain.ErrInvalidOperation, commentID)
		}
		return domain.BufferResult{
			Applied:   false,
			Action:    domain.ActionDuplicate,
			Counts:    counts,
			CommentID: commentID,
		}, nil
	case domain.CommentOpNotAuthor:
		return domain.BufferResult{}, fmt.Errorf("comment [%s] by user [%s]: %w",
			commentID, op.UserID, domain.ErrNotCommentAuthor)
	default:
		return domain.BufferResult{}, fmt.Errorf("%w: comment [%s] not found", domain.ErrInvalidOperation, commentID)
	}
}

func (c *BufferEngagement) seedCommentState(ctx context.Context, op domain.EngagementOperation) error {
	ref, err := c.Comments.GetCommentRef(ctx, op.CommentID)
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("%w: comment [%s] not found", domain.ErrInvalidOperation, op.CommentID)
	}
	if err != nil {
		return fmt.Errorf("looking up comment: %w", err)
	}
	if ref.PostID != op.SubjectID {
		return fmt.Errorf("comment [%s] on post [%s]: %w", op.CommentID, op.SubjectID, domain.ErrCommentNotOnPost)
	}

	if err := c.Buffer.SeedCommentState(ctx, ref); err != nil {
		return fmt.Errorf("seeding comment state: %w", err)
	}
	return nil
}

// ensureCounts seeds the subject's durable counts into the fast store when
// it holds none, so increments apply on top of the durable values.
func (c *BufferEngagement) ensureCounts(ctx context.Context, subjectType domain.SubjectType, subjectID string) error {
	existing, err := c.Buffer.GetCounts(ctx, subjectType, []string{subjectID})
	if err != nil {
		return fmt.Errorf("reading counts: %w", err)
	}
	if _, ok := existing[subjectID]; ok {
		return nil
	}

	durable, err := c.DurableCounts.GetDurableCounts(ctx, subjectType, []string{subjectID})
	if err != nil {
		return fmt.Errorf("loading durable counts: %w", err)
	}
	counts := durable[subjectID]
	counts.SubjectID = subjectID

	if err := c.Buffer.SeedCounts(ctx, subjectType, []domain.AggregateCounts{counts}); err != nil {
		return fmt.Errorf("seeding counts: %w", err)
	}
	return nil
}

func (c *BufferEngagement) currentCounts(
	ctx context.Context, subjectType domain.SubjectType, subjectID string,
) (domain.AggregateCounts, error) {
	counts, err := c.Buffer.GetCounts(ctx, subjectType, []string{subjectID})
	if err != nil {
		return domain.AggregateCounts{}, fmt.Errorf("reading counts: %w", err)
	}
	result := counts[subjectID]
	result.SubjectID = subjectID
	return result, nil
}
