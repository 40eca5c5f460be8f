package datasources

import (
	"context"

	"github.com/jbeshir/community-feed/internal/domain"
)

// EngagementBuffer is the fast-store side of engagement writes.
type EngagementBuffer interface {
	VoteSnapshotGetter
	EngagementBaselineSeeder
	VoteCompareAndSetter
	ViewIncrementer
	CommentOperationEnqueuer
	CommentStateSeeder
	AggregateCountsGetter
	AggregateCountsSeeder
}

// VoteSnapshotGetter reports what the fast store holds for a (subject, user)
// pair and whether the subject's counts are present at all.
type VoteSnapshotGetter interface {
	GetVoteSnapshot(
		ctx context.Context, subjectType domain.SubjectType, subjectID, userID string,
	) (domain.VoteSnapshot, error)
}

// EngagementBaselineSeeder writes durable counts and vote state into the fast
// store, leaving any value already present untouched.
type EngagementBaselineSeeder interface {
	SeedBaseline(
		ctx context.Context,
		subjectType domain.SubjectType,
		subjectID, userID string,
		baseline domain.EngagementBaseline,
	) error
}

// VoteCompareAndSetter moves a pair from expected to target state and applies
// the matching count delta atomically. swapped is false, with nothing
// written, when the stored state no longer equals expected.
type VoteCompareAndSetter interface {
	CompareAndSetVote(
		ctx context.Context,
		subjectType domain.SubjectType,
		subjectID, userID string,
		expected, target domain.VoteState,
	) (counts domain.AggregateCounts, swapped bool, err error)
}

type ViewIncrementer interface {
	IncrementViews(
		ctx context.Context, subjectType domain.SubjectType, subjectID string,
	) (domain.AggregateCounts, error)
}

// CommentOperationEnqueuer checks a comment operation against the post's
// comment states and, when it applies, appends it to the post's pending list
// and adjusts the comment count: +1 for a create, -1 for a delete. Any other
// status leaves the store untouched and returns the current counts.
type CommentOperationEnqueuer interface {
	EnqueueCommentOperation(
		ctx context.Context, op domain.PendingCommentOperation,
	) (domain.AggregateCounts, domain.CommentOpStatus, error)
}

// CommentStateSeeder records a durable comment's author and deletion state,
// leaving any state the fast store already holds for it untouched.
type CommentStateSeeder interface {
	SeedCommentState(ctx context.Context, ref domain.CommentRef) error
}

// AggregateCountsGetter returns the fast store's counts. Subjects it holds no
// counts for are absent from the result.
type AggregateCountsGetter interface {
	GetCounts(
		ctx context.Context, subjectType domain.SubjectType, subjectIDs []string,
	) (map[string]domain.AggregateCounts, error)
}

type AggregateCountsSeeder interface {
	SeedCounts(ctx context.Context, subjectType domain.SubjectType, counts []domain.AggregateCounts) error
}

// PendingEngagementStore is the flush-side view of the fast store.
type PendingEngagementStore interface {
	DirtySubjectLister
	SubjectSnapshotter
	SubjectAcker
}

// DirtySubjectLister lists subjects with unflushed changes, oldest first.
type DirtySubjectLister interface {
	ListDirtySubjects(ctx context.Context, subjectType domain.SubjectType, limit int) ([]string, error)
}

// SubjectSnapshotter captures the pending changes of one subject, including
// at most maxOps dirty votes and queued comment operations combined.
type SubjectSnapshotter interface {
	SnapshotSubject(
		ctx context.Context, subjectType domain.SubjectType, subjectID string, maxOps int,
	) (domain.SubjectSnapshot, error)
}

// SubjectAcker removes the parts of a snapshot that are unchanged since it was
// taken. drained reports whether the subject left the dirty set.
type SubjectAcker interface {
	AckSubject(ctx context.Context, snapshot domain.SubjectSnapshot) (drained bool, err error)
}

// DurableEngagementRepository is the durable-store side of engagement.
type DurableEngagementRepository interface {
	EngagementBaselineGetter
	DurableCountsGetter
	EngagementSnapshotApplier
	CommentPostIDsLister
	CommentRefGetter
}

type EngagementBaselineGetter interface {
	GetEngagementBaseline(
		ctx context.Context, subjectType domain.SubjectType, subjectID, userID string,
	) (domain.EngagementBaseline, error)
}

// DurableCountsGetter returns zero counts for subjects with no stored aggregate.
type DurableCountsGetter interface {
	GetDurableCounts(
		ctx context.Context, subjectType domain.SubjectType, subjectIDs []string,
	) (map[string]domain.AggregateCounts, error)
}

// EngagementSnapshotApplier writes a snapshot in one transaction. Applying the
// same snapshot twice leaves the store as if it had been applied once.
type EngagementSnapshotApplier interface {
	ApplyEngagementSnapshot(ctx context.Context, snapshot domain.SubjectSnapshot) error
}

// CommentPostIDsLister maps stored comment IDs to their post IDs. Unknown
// comments are absent from the result.
type CommentPostIDsLister interface {
	ListCommentPostIDs(ctx context.Context, commentIDs []string) (map[string]string, error)
}

// CommentRefGetter returns domain.ErrNotFound for comments not in the durable store.
type CommentRefGetter interface {
	GetCommentRef(ctx context.Context, commentID string) (domain.CommentRef, error)
}
