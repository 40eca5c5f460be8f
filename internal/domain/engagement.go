package domain

import (
	"fmt"
	"time"
)

type SubjectType string

const (
	SubjectTypePost    SubjectType = "post"
	SubjectTypeComment SubjectType = "comment"
)

// SubjectTypes lists every subject type the buffer accepts, in flush order.
var SubjectTypes = []SubjectType{SubjectTypePost, SubjectTypeComment}

type EngagementKind string

const (
	KindLike          EngagementKind = "like"
	KindUnlike        EngagementKind = "unlike"
	KindVoteUp        EngagementKind = "vote:up"
	KindVoteDown      EngagementKind = "vote:down"
	KindRemove        EngagementKind = "remove"
	KindView          EngagementKind = "view"
	KindCommentCreate EngagementKind = "comment:create"
	KindCommentUpdate EngagementKind = "comment:update"
	KindCommentDelete EngagementKind = "comment:delete"
)

func (k EngagementKind) IsVote() bool {
	switch k {
	case KindLike, KindUnlike, KindVoteUp, KindVoteDown, KindRemove:
		return true
	default:
		return false
	}
}

func (k EngagementKind) IsComment() bool {
	switch k {
	case KindCommentCreate, KindCommentUpdate, KindCommentDelete:
		return true
	default:
		return false
	}
}

// VoteState is the stored vote of one user on one subject.
type VoteState string

const (
	VoteStateNone VoteState = "none"
	VoteStateUp   VoteState = "up"
	VoteStateDown VoteState = "down"
)

// ResolveVote returns the state a vote operation moves the pair into.
// changed is false when the operation would leave the state as it is, which
// callers report as a duplicate.
func ResolveVote(kind EngagementKind, current VoteState) (target VoteState, changed bool) {
	if current == "" {
		current = VoteStateNone
	}

	switch kind {
	case KindLike, KindVoteUp:
		target = VoteStateUp
	case KindVoteDown:
		target = VoteStateDown
	case KindUnlike:
		if current != VoteStateUp {
			return current, false
		}
		target = VoteStateNone
	case KindRemove:
		target = VoteStateNone
	default:
		return current, false
	}

	return target, target != current
}

// VoteDelta is the change to like/dislike counts caused by moving from one
// vote state to another.
func VoteDelta(from, to VoteState) (likes, dislikes int64) {
	switch from {
	case VoteStateUp:
		likes--
	case VoteStateDown:
		dislikes--
	}
	switch to {
	case VoteStateUp:
		likes++
	case VoteStateDown:
		dislikes++
	}
	return likes, dislikes
}

type EngagementOperation struct {
	SubjectType SubjectType    `json:"subject_type" validate:"required,oneof=post comment"`
	SubjectID   string         `json:"subject_id" validate:"required,max=64"`
	UserID      string         `json:"user_id" validate:"required,max=128"`
	Kind        EngagementKind `json:"kind" validate:"required,oneof=like unlike vote:up vote:down remove view comment:create comment:update comment:delete"`
	CommentID   string         `json:"comment_id,omitempty" validate:"max=64"`
	Body        string         `json:"body,omitempty" validate:"max=10000"`
	Timestamp   time.Time      `json:"timestamp"`
}

// Validate checks the operation before it is buffered.
func (op EngagementOperation) Validate() error {
	if err := ValidateStruct(op); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOperation, err)
	}

	if op.Kind.IsComment() && op.SubjectType != SubjectTypePost {
		return fmt.Errorf("%w: comment operations apply to posts, not [%s]", ErrInvalidOperation, op.SubjectType)
	}
	switch op.Kind {
	case KindCommentCreate:
		if op.Body == "" {
			return fmt.Errorf("%w: comment body is required", ErrInvalidOperation)
		}
	case KindCommentUpdate:
		if op.CommentID == "" || op.Body == "" {
			return fmt.Errorf("%w: comment_id and body are required", ErrInvalidOperation)
		}
	case KindCommentDelete:
		if op.CommentID == "" {
			return fmt.Errorf("%w: comment_id is required", ErrInvalidOperation)
		}
	}

	return nil
}

type AggregateCounts struct {
	SubjectID    string `json:"subject_id"`
	LikeCount    int64  `json:"like_count"`
	DislikeCount int64  `json:"dislike_count"`
	ViewCount    int64  `json:"view_count"`
	CommentCount int64  `json:"comment_count"`
}

type BufferAction string

const (
	ActionCreated   BufferAction = "created"
	ActionUpdated   BufferAction = "updated"
	ActionDuplicate BufferAction = "duplicate"
)

// BufferResult is the outcome of buffering one engagement operation.
type BufferResult struct {
	Applied       bool            `json:"applied"`
	Action        BufferAction    `json:"action"`
	PreviousState VoteState       `json:"previous_state,omitempty"`
	Counts        AggregateCounts `json:"aggregate_counts"`
	CommentID     string          `json:"comment_id,omitempty"`
}

// VoteSnapshot is what the fast store currently knows about a pair.
type VoteSnapshot struct {
	State       VoteState
	StateKnown  bool
	CountsKnown bool
}

// EngagementBaseline is the durable view used to seed the fast store.
type EngagementBaseline struct {
	Counts AggregateCounts
	State  VoteState
}

// PendingCommentOperation is a queued comment create/update/delete.
type PendingCommentOperation struct {
	OperationID string         `json:"op_id"`
	Kind        EngagementKind `json:"kind"`
	PostID      string         `json:"post_id"`
	CommentID   string         `json:"comment_id"`
	UserID      string         `json:"user_id"`
	Body        string         `json:"body,omitempty"`
	Timestamp   time.Time      `json:"timestamp"`
}

// CommentRef is the durable store's record of who wrote a comment and where.
type CommentRef struct {
	CommentID string
	PostID    string
	UserID    string
	Deleted   bool
}

// CommentOpStatus is how the fast store resolved a comment operation.
type CommentOpStatus string

const (
	CommentOpApplied CommentOpStatus = "applied"
	// CommentOpUnknownComment means the fast store holds no state for the
	// comment; nothing was written.
	CommentOpUnknownComment CommentOpStatus = "unknown_comment"
	CommentOpAlreadyDeleted CommentOpStatus = "already_deleted"
	CommentOpNotAuthor      CommentOpStatus = "not_author"
)

type VoterState struct {
	UserID string
	State  VoteState
}

// SubjectSnapshot is the set of buffered changes for one subject that a flush
// applies to the durable store in a single write.
type SubjectSnapshot struct {
	SubjectType  SubjectType
	SubjectID    string
	Counts       AggregateCounts
	Version      int64
	Votes        []VoterState
	CommentOps   []PendingCommentOperation
	PendingViews int64
}

// OperationCount is how many buffered operations the snapshot represents.
func (s SubjectSnapshot) OperationCount() int {
	return len(s.Votes) + len(s.CommentOps) + int(s.PendingViews)
}

// FailedSubject identifies a subject whose flush failed.
type FailedSubject struct {
	SubjectType SubjectType `json:"subject_type"`
	SubjectID   string      `json:"subject_id"`
	Error       string      `json:"error"`
}
