package command

import (
	"context"
	"fmt"
	"slices"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/jbeshir/community-feed/internal/metrics"
)

// FlushEngagementRequest is the request for the FlushEngagement command.
type FlushEngagementRequest struct {
	// BatchSize is the number of buffered votes and comment operations
	// flushed per subject type. Zero uses the configured default.
	BatchSize int
}

type FlushEngagementResult struct {
	Processed      int                    `json:"processed"`
	FailedSubjects []domain.FailedSubject `json:"failed_subjects"`
}

// FlushEngagementConfig holds configuration for flushing the engagement buffer.
type FlushEngagementConfig struct {
	DefaultBatchSize int
	MaxBatchSize     int
}

// FlushEngagement moves buffered engagement from the fast store into the
// durable store. It keeps no state between runs: everything it needs is
// read from the fast store, so repeated or overlapping runs converge.
type FlushEngagement struct {
	Pending  datasources.PendingEngagementStore
	Durable  datasources.EngagementSnapshotApplier
	Comments datasources.CommentPostIDsLister
	Stale    datasources.StaleHotCommentsTracker
	Config   FlushEngagementConfig
}

// NewFlushEngagement creates a properly initialized FlushEngagement command.
func NewFlushEngagement(
	pending datasources.PendingEngagementStore,
	durable datasources.EngagementSnapshotApplier,
	comments datasources.CommentPostIDsLister,
	stale datasources.StaleHotCommentsTracker,
	config FlushEngagementConfig,
) *FlushEngagement {
	return &FlushEngagement{
		Pending:  pending,
		Durable:  durable,
		Comments: comments,
		Stale:    stale,
		Config:   config,
	}
}

type subjectTypeFlush struct {
	processed int
	failed    []domain.FailedSubject

	// hotCommentPosts are posts whose comments, or their likes, changed.
	hotCommentPosts []string
}

// Execute flushes each subject type concurrently. Failed subjects stay
// pending and are reported; only an unreadable dirty set is an error.
func (c *FlushEngagement) Execute(ctx context.Context, req FlushEngagementRequest) (FlushEngagementResult, error) {
	logger := domain.LoggerFromContext(ctx)

	batchSize := req.BatchSize
	if batchSize <= 0 {
		batchSize = c.Config.DefaultBatchSize
	}
	if c.Config.MaxBatchSize > 0 && batchSize > c.Config.MaxBatchSize {
		batchSize = c.Config.MaxBatchSize
	}

	var (
		mu      sync.Mutex
		results = make(map[domain.SubjectType]subjectTypeFlush, len(domain.SubjectTypes))
		g       errgroup.Group
	)
	for _, subjectType := range domain.SubjectTypes {
		g.Go(func() error {
			flushed, err := c.flushSubjectType(ctx, subjectType, batchSize)
			mu.Lock()
			results[subjectType] = flushed
			mu.Unlock()
			return err
		})
	}
	err := g.Wait()

	result := FlushEngagementResult{FailedSubjects: []domain.FailedSubject{}}
	var stalePosts []string
	for _, subjectType := range domain.SubjectTypes {
		flushed := results[subjectType]
		result.Processed += flushed.processed
		result.FailedSubjects = append(result.FailedSubjects, flushed.failed...)
		stalePosts = append(stalePosts, flushed.hotCommentPosts...)
	}

	if len(stalePosts) > 0 {
		stalePosts = uniqueIDs(stalePosts)
		slices.Sort(stalePosts)
		if err := c.Stale.MarkHotCommentsStale(ctx, stalePosts); err != nil {
			logger.WarnContext(ctx, "unable to mark hot comments stale", "post_count", len(stalePosts), "error", err)
		}
	}

	logger.InfoContext(ctx, "engagement flush complete",
		"processed", result.Processed, "failed_count", len(result.FailedSubjects))

	return result, err
}

func (c *FlushEngagement) flushSubjectType(
	ctx context.Context, subjectType domain.SubjectType, batchSize int,
) (subjectTypeFlush, error) {
	logger := domain.LoggerFromContext(ctx)

	var result subjectTypeFlush

	subjectIDs, err := c.Pending.ListDirtySubjects(ctx, subjectType, batchSize)
	if err != nil {
		return result, fmt.Errorf("listing dirty %s subjects: %w", subjectType, err)
	}

	var changedComments []string
	budget := batchSize
	for _, subjectID := range subjectIDs {
		if budget <= 0 || ctx.Err() != nil {
			break
		}

		snapshot, err := c.flushSubject(ctx, subjectType, subjectID, budget)
		if err != nil {
			logger.ErrorContext(ctx, "failed to flush subject",
				"subject_type", subjectType, "subject_id", subjectID, "error", err)
			metrics.FlushFailures.WithLabelValues(string(subjectType)).Inc()
			result.failed = append(result.failed, domain.FailedSubject{
				SubjectType: subjectType,
				SubjectID:   subjectID,
				Error:       err.Error(),
			})
			continue
		}

		budget -= len(snapshot.Votes) + len(snapshot.CommentOps)
		result.processed += snapshot.OperationCount()
		metrics.FlushedOperations.WithLabelValues(string(subjectType)).Add(float64(snapshot.OperationCount()))

		switch {
		case subjectType == domain.SubjectTypePost && len(snapshot.CommentOps) > 0:
			result.hotCommentPosts = append(result.hotCommentPosts, subjectID)
		case subjectType == domain.SubjectTypeComment && len(snapshot.Votes) > 0:
			changedComments = append(changedComments, subjectID)
		}
	}

	if len(changedComments) > 0 {
		postIDs, err := c.Comments.ListCommentPostIDs(ctx, changedComments)
		if err != nil {
			logger.WarnContext(ctx, "unable to resolve posts of voted comments", "error", err)
		}
		for _, postID := range postIDs {
			result.hotCommentPosts = append(result.hotCommentPosts, postID)
		}
	}

	return result, nil
}

// flushSubject writes one subject's snapshot to the durable store, then
// acknowledges it in the fast store.
func (c *FlushEngagement) flushSubject(
	ctx context.Context, subjectType domain.SubjectType, subjectID string, maxOps int,
) (domain.SubjectSnapshot, error) {
	logger := domain.LoggerFromContext(ctx)

	snapshot, err := c.Pending.SnapshotSubject(ctx, subjectType, subjectID, maxOps)
	if err != nil {
		return domain.SubjectSnapshot{}, fmt.Errorf("snapshotting subject: %w", err)
	}

	if err := c.Durable.ApplyEngagementSnapshot(ctx, snapshot); err != nil {
		return domain.SubjectSnapshot{}, fmt.Errorf("applying snapshot: %w", err)
	}

	drained, err := c.Pending.AckSubject(ctx, snapshot)
	if err != nil {
		return domain.SubjectSnapshot{}, fmt.Errorf("acknowledging snapshot: %w", err)
	}

	logger.DebugContext(ctx, "flushed subject",
		"subject_type", subjectType, "subject_id", subjectID,
		"operations", snapshot.OperationCount(), "drained", drained)

	return snapshot, nil
}
