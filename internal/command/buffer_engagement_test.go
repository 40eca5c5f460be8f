package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/jbeshir/community-feed/internal/datasources/mocks"
	"github.com/jbeshir/community-feed/internal/datasources/redis"
	"github.com/jbeshir/community-feed/internal/domain"
)

var bufferNow = time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

type bufferFixture struct {
	cmd           *BufferEngagement
	store         *redis.Store
	mr            *miniredis.Miniredis
	baselines     *mocks.MockEngagementBaselineGetter
	durableCounts *mocks.MockDurableCountsGetter
	comments      *mocks.MockCommentRefGetter
}

func newBufferFixture(t *testing.T) bufferFixture {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	store := redis.New(client, redis.DefaultConfig())

	f := bufferFixture{
		store:         store,
		mr:            mr,
		baselines:     mocks.NewMockEngagementBaselineGetter(t),
		durableCounts: mocks.NewMockDurableCountsGetter(t),
		comments:      mocks.NewMockCommentRefGetter(t),
	}
	f.cmd = NewBufferEngagement(store, f.baselines, f.durableCounts, f.comments, BufferEngagementConfig{MaxVoteAttempts: 5})
	f.cmd.now = func() time.Time { return bufferNow }

	var next int
	f.cmd.newID = func() string {
		next++
		return fmt.Sprintf("id-%d", next)
	}
	return f
}

func voteOp(kind domain.EngagementKind) domain.EngagementOperation {
	return domain.EngagementOperation{
		SubjectType: domain.SubjectTypePost,
		SubjectID:   "p1",
		UserID:      "u1",
		Kind:        kind,
	}
}

func TestBufferEngagement_Execute_VoteSequence(t *testing.T) {
	f := newBufferFixture(t)
	ctx := context.Background()

	f.baselines.EXPECT().GetEngagementBaseline(mock.Anything, domain.SubjectTypePost, "p1", "u1").
		Return(domain.EngagementBaseline{
			Counts: domain.AggregateCounts{LikeCount: 5, DislikeCount: 1, ViewCount: 40, CommentCount: 2},
			State:  domain.VoteStateNone,
		}, nil).Once()

	steps := []struct {
		name     string
		kind     domain.EngagementKind
		applied  bool
		action   domain.BufferAction
		previous domain.VoteState
		likes    int64
		dislikes int64
	}{
		{name: "first_like", kind: domain.KindLike, applied: true, action: domain.ActionCreated,
			previous: domain.VoteStateNone, likes: 6, dislikes: 1},
		{name: "duplicate_like", kind: domain.KindLike, applied: false, action: domain.ActionDuplicate,
			previous: domain.VoteStateUp, likes: 6, dislikes: 1},
		{name: "vote_up_same_as_like", kind: domain.KindVoteUp, applied: false, action: domain.ActionDuplicate,
			previous: domain.VoteStateUp, likes: 6, dislikes: 1},
		{name: "switch_to_down", kind: domain.KindVoteDown, applied: true, action: domain.ActionUpdated,
			previous: domain.VoteStateUp, likes: 5, dislikes: 2},
		{name: "unlike_ignores_down_vote", kind: domain.KindUnlike, applied: false, action: domain.ActionDuplicate,
			previous: domain.VoteStateDown, likes: 5, dislikes: 2},
		{name: "remove", kind: domain.KindRemove, applied: true, action: domain.ActionUpdated,
			previous: domain.VoteStateDown, likes: 5, dislikes: 1},
		{name: "remove_again", kind: domain.KindRemove, applied: false, action: domain.ActionDuplicate,
			previous: domain.VoteStateNone, likes: 5, dislikes: 1},
	}

	for _, step := range steps {
		result, err := f.cmd.Execute(ctx, voteOp(step.kind))
		require.NoError(t, err, step.name)
		assert.Equal(t, step.applied, result.Applied, step.name)
		assert.Equal(t, step.action, result.Action, step.name)
		assert.Equal(t, step.previous, result.PreviousState, step.name)
		assert.Equal(t, step.likes, result.Counts.LikeCount, step.name)
		assert.Equal(t, step.dislikes, result.Counts.DislikeCount, step.name)
		assert.Equal(t, int64(40), result.Counts.ViewCount, step.name)
		assert.Equal(t, "p1", result.Counts.SubjectID, step.name)
	}
}

func TestBufferEngagement_Execute_DurableVoteIsDuplicate(t *testing.T) {
	f := newBufferFixture(t)

	f.baselines.EXPECT().GetEngagementBaseline(mock.Anything, domain.SubjectTypePost, "p1", "u1").
		Return(domain.EngagementBaseline{
			Counts: domain.AggregateCounts{LikeCount: 3},
			State:  domain.VoteStateUp,
		}, nil).Once()

	result, err := f.cmd.Execute(context.Background(), voteOp(domain.KindLike))
	require.NoError(t, err)
	assert.False(t, result.Applied)
	assert.Equal(t, domain.ActionDuplicate, result.Action)
	assert.Equal(t, int64(3), result.Counts.LikeCount)
}

func TestBufferEngagement_Execute_SeedsOnlyMissingPair(t *testing.T) {
	f := newBufferFixture(t)
	ctx := context.Background()

	f.baselines.EXPECT().GetEngagementBaseline(mock.Anything, domain.SubjectTypePost, "p1", "u1").
		Return(domain.EngagementBaseline{Counts: domain.AggregateCounts{LikeCount: 5}}, nil).Once()
	_, err := f.cmd.Execute(ctx, voteOp(domain.KindLike))
	require.NoError(t, err)

	// The durable store is behind the fast store here; its counts must not
	// overwrite the buffered like.
	f.baselines.EXPECT().GetEngagementBaseline(mock.Anything, domain.SubjectTypePost, "p1", "u2").
		Return(domain.EngagementBaseline{Counts: domain.AggregateCounts{LikeCount: 5}}, nil).Once()
	op := voteOp(domain.KindLike)
	op.UserID = "u2"
	result, err := f.cmd.Execute(ctx, op)
	require.NoError(t, err)
	assert.Equal(t, domain.ActionCreated, result.Action)
	assert.Equal(t, int64(7), result.Counts.LikeCount)
}

func TestBufferEngagement_Execute_Views(t *testing.T) {
	f := newBufferFixture(t)
	ctx := context.Background()

	f.durableCounts.EXPECT().GetDurableCounts(mock.Anything, domain.SubjectTypeComment, []string{"c1"}).
		Return(map[string]domain.AggregateCounts{"c1": {SubjectID: "c1", ViewCount: 10}}, nil).Once()

	op := domain.EngagementOperation{
		SubjectType: domain.SubjectTypeComment,
		SubjectID:   "c1",
		UserID:      "u1",
		Kind:        domain.KindView,
	}
	for expected := int64(11); expected <= 13; expected++ {
		result, err := f.cmd.Execute(ctx, op)
		require.NoError(t, err)
		assert.True(t, result.Applied)
		assert.Equal(t, expected, result.Counts.ViewCount)
	}
}

func TestBufferEngagement_Execute_Comments(t *testing.T) {
	f := newBufferFixture(t)
	ctx := context.Background()

	f.durableCounts.EXPECT().GetDurableCounts(mock.Anything, domain.SubjectTypePost, []string{"p1"}).
		Return(map[string]domain.AggregateCounts{"p1": {SubjectID: "p1", CommentCount: 2}}, nil).Once()

	created, err := f.cmd.Execute(ctx, domain.EngagementOperation{
		SubjectType: domain.SubjectTypePost,
		SubjectID:   "p1",
		UserID:      "u1",
		Kind:        domain.KindCommentCreate,
		Body:        "first!",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionCreated, created.Action)
	assert.Equal(t, "id-1", created.CommentID)
	assert.Equal(t, int64(3), created.Counts.CommentCount)

	f.comments.EXPECT().GetCommentRef(mock.Anything, "c9").
		Return(domain.CommentRef{CommentID: "c9", PostID: "p1", UserID: "u1"}, nil).Once()
	updated, err := f.cmd.Execute(ctx, domain.EngagementOperation{
		SubjectType: domain.SubjectTypePost,
		SubjectID:   "p1",
		UserID:      "u1",
		Kind:        domain.KindCommentUpdate,
		CommentID:   "c9",
		Body:        "edited",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ActionUpdated, updated.Action)
	assert.Equal(t, int64(3), updated.Counts.CommentCount)

	deleted, err := f.cmd.Execute(ctx, domain.EngagementOperation{
		SubjectType: domain.SubjectTypePost,
		SubjectID:   "p1",
		UserID:      "u1",
		Kind:        domain.KindCommentDelete,
		CommentID:   "id-1",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted.Counts.CommentCount)

	queued, err := f.mr.List(f.store.Keys().CommentOps("p1"))
	require.NoError(t, err)
	require.Len(t, queued, 3)

	var ops []domain.PendingCommentOperation
	for _, raw := range queued {
		var op domain.PendingCommentOperation
		require.NoError(t, json.Unmarshal([]byte(raw), &op))
		ops = append(ops, op)
	}
	assert.Equal(t, domain.PendingCommentOperation{
		OperationID: "id-2",
		Kind:        domain.KindCommentCreate,
		PostID:      "p1",
		CommentID:   "id-1",
		UserID:      "u1",
		Body:        "first!",
		Timestamp:   bufferNow,
	}, ops[0])
	assert.Equal(t, domain.KindCommentUpdate, ops[1].Kind)
	assert.Equal(t, "c9", ops[1].CommentID)
	assert.Equal(t, domain.KindCommentDelete, ops[2].Kind)
	assert.Equal(t, "id-1", ops[2].CommentID)
}

func expectPostCounts(f bufferFixture, comments int64) {
	f.durableCounts.EXPECT().GetDurableCounts(mock.Anything, domain.SubjectTypePost, []string{"p1"}).
		Return(map[string]domain.AggregateCounts{"p1": {SubjectID: "p1", CommentCount: comments}}, nil).Once()
}

func TestBufferEngagement_Execute_CommentDeletesApplyOnce(t *testing.T) {
	f := newBufferFixture(t)
	ctx := context.Background()

	expectPostCounts(f, 5)
	f.comments.EXPECT().GetCommentRef(mock.Anything, "real").
		Return(domain.CommentRef{CommentID: "real", PostID: "p1", UserID: "u1"}, nil).Once()
	f.comments.EXPECT().GetCommentRef(mock.Anything, "bogus-1").Return(domain.CommentRef{}, domain.ErrNotFound).Once()
	f.comments.EXPECT().GetCommentRef(mock.Anything, "bogus-2").Return(domain.CommentRef{}, domain.ErrNotFound).Once()

	del := func(userID, commentID string) (domain.BufferResult, error) {
		return f.cmd.Execute(ctx, domain.EngagementOperation{
			SubjectType: domain.SubjectTypePost,
			SubjectID:   "p1",
			UserID:      userID,
			Kind:        domain.KindCommentDelete,
			CommentID:   commentID,
		})
	}

	first, err := del("u1", "real")
	require.NoError(t, err)
	assert.True(t, first.Applied)
	assert.Equal(t, domain.ActionUpdated, first.Action)
	assert.Equal(t, int64(4), first.Counts.CommentCount)

	again, err := del("u1", "real")
	require.NoError(t, err)
	assert.False(t, again.Applied)
	assert.Equal(t, domain.ActionDuplicate, again.Action)
	assert.Equal(t, int64(4), again.Counts.CommentCount)

	_, err = del("u1", "bogus-1")
	require.ErrorIs(t, err, domain.ErrInvalidOperation)
	_, err = del("u1", "bogus-2")
	require.ErrorIs(t, err, domain.ErrInvalidOperation)

	_, err = del("u2", "real")
	require.ErrorIs(t, err, domain.ErrNotCommentAuthor)

	counts, err := f.store.GetCounts(ctx, domain.SubjectTypePost, []string{"p1"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), counts["p1"].CommentCount)

	queued, err := f.mr.List(f.store.Keys().CommentOps("p1"))
	require.NoError(t, err)
	assert.Len(t, queued, 1)
}

func TestBufferEngagement_Execute_Rejects(t *testing.T) {
	cases := []struct {
		name    string
		op      domain.EngagementOperation
		setup   func(f bufferFixture)
		wantErr error
	}{
		{
			name:    "unknown_kind",
			op:      domain.EngagementOperation{SubjectType: "post", SubjectID: "p1", UserID: "u1", Kind: "share"},
			wantErr: domain.ErrInvalidOperation,
		},
		{
			name:    "unknown_subject_type",
			op:      domain.EngagementOperation{SubjectType: "user", SubjectID: "p1", UserID: "u1", Kind: "like"},
			wantErr: domain.ErrInvalidOperation,
		},
		{
			name:    "missing_user",
			op:      domain.EngagementOperation{SubjectType: "post", SubjectID: "p1", Kind: "like"},
			wantErr: domain.ErrInvalidOperation,
		},
		{
			name: "comment_on_comment",
			op: domain.EngagementOperation{
				SubjectType: "comment", SubjectID: "c1", UserID: "u1", Kind: "comment:create", Body: "x",
			},
			wantErr: domain.ErrInvalidOperation,
		},
		{
			name: "comment_from_other_post",
			op: domain.EngagementOperation{
				SubjectType: "post", SubjectID: "p1", UserID: "u1", Kind: "comment:delete", CommentID: "c2",
			},
			setup: func(f bufferFixture) {
				expectPostCounts(f, 0)
				f.comments.EXPECT().GetCommentRef(mock.Anything, "c2").
					Return(domain.CommentRef{CommentID: "c2", PostID: "p2", UserID: "u1"}, nil)
			},
			wantErr: domain.ErrCommentNotOnPost,
		},
		{
			name: "unknown_comment",
			op: domain.EngagementOperation{
				SubjectType: "post", SubjectID: "p1", UserID: "u1", Kind: "comment:delete", CommentID: "bogus",
			},
			setup: func(f bufferFixture) {
				expectPostCounts(f, 0)
				f.comments.EXPECT().GetCommentRef(mock.Anything, "bogus").Return(domain.CommentRef{}, domain.ErrNotFound)
			},
			wantErr: domain.ErrInvalidOperation,
		},
		{
			name: "comment_by_other_user",
			op: domain.EngagementOperation{
				SubjectType: "post", SubjectID: "p1", UserID: "u1", Kind: "comment:update", CommentID: "c2", Body: "x",
			},
			setup: func(f bufferFixture) {
				expectPostCounts(f, 0)
				f.comments.EXPECT().GetCommentRef(mock.Anything, "c2").
					Return(domain.CommentRef{CommentID: "c2", PostID: "p1", UserID: "u9"}, nil)
			},
			wantErr: domain.ErrNotCommentAuthor,
		},
		{
			name: "update_deleted_comment",
			op: domain.EngagementOperation{
				SubjectType: "post", SubjectID: "p1", UserID: "u1", Kind: "comment:update", CommentID: "c2", Body: "x",
			},
			setup: func(f bufferFixture) {
				expectPostCounts(f, 0)
				f.comments.EXPECT().GetCommentRef(mock.Anything, "c2").
					Return(domain.CommentRef{CommentID: "c2", PostID: "p1", UserID: "u1", Deleted: true}, nil)
			},
			wantErr: domain.ErrInvalidOperation,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newBufferFixture(t)
			if tc.setup != nil {
				tc.setup(f)
			}

			_, err := f.cmd.Execute(context.Background(), tc.op)
			require.ErrorIs(t, err, tc.wantErr)
			if tc.setup == nil {
				assert.Empty(t, f.mr.Keys())
			}
			assert.False(t, f.mr.Exists(f.store.Keys().CommentOps("p1")))
			assert.False(t, f.mr.Exists(f.store.Keys().Dirty(domain.SubjectTypePost)))
		})
	}
}

func TestBufferEngagement_Execute_VoteContention(t *testing.T) {
	known := domain.VoteSnapshot{State: domain.VoteStateNone, StateKnown: true, CountsKnown: true}
	counts := domain.AggregateCounts{SubjectID: "p1", LikeCount: 1}

	t.Run("retries_lost_race", func(t *testing.T) {
		buffer := mocks.NewMockEngagementBuffer(t)
		cmd := NewBufferEngagement(buffer, nil, nil, nil, BufferEngagementConfig{MaxVoteAttempts: 3})

		buffer.EXPECT().GetVoteSnapshot(mock.Anything, domain.SubjectTypePost, "p1", "u1").Return(known, nil).Times(2)
		buffer.EXPECT().
			CompareAndSetVote(mock.Anything, domain.SubjectTypePost, "p1", "u1", domain.VoteStateNone, domain.VoteStateUp).
			Return(domain.AggregateCounts{}, false, nil).Once()
		buffer.EXPECT().
			CompareAndSetVote(mock.Anything, domain.SubjectTypePost, "p1", "u1", domain.VoteStateNone, domain.VoteStateUp).
			Return(counts, true, nil).Once()

		result, err := cmd.Execute(context.Background(), voteOp(domain.KindLike))
		require.NoError(t, err)
		assert.Equal(t, domain.ActionCreated, result.Action)
		assert.Equal(t, counts, result.Counts)
	})

	t.Run("gives_up_after_max_attempts", func(t *testing.T) {
		buffer := mocks.NewMockEngagementBuffer(t)
		cmd := NewBufferEngagement(buffer, nil, nil, nil, BufferEngagementConfig{MaxVoteAttempts: 2})

		buffer.EXPECT().GetVoteSnapshot(mock.Anything, domain.SubjectTypePost, "p1", "u1").Return(known, nil).Times(2)
		buffer.EXPECT().
			CompareAndSetVote(mock.Anything, domain.SubjectTypePost, "p1", "u1", domain.VoteStateNone, domain.VoteStateUp).
			Return(domain.AggregateCounts{}, false, nil).Times(2)

		_, err := cmd.Execute(context.Background(), voteOp(domain.KindLike))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "still contended")
	})

	t.Run("fast_store_error_surfaces", func(t *testing.T) {
		buffer := mocks.NewMockEngagementBuffer(t)
		cmd := NewBufferEngagement(buffer, nil, nil, nil, BufferEngagementConfig{MaxVoteAttempts: 2})

		buffer.EXPECT().GetVoteSnapshot(mock.Anything, domain.SubjectTypePost, "p1", "u1").
			Return(domain.VoteSnapshot{}, errors.New("redis down"))

		_, err := cmd.Execute(context.Background(), voteOp(domain.KindLike))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "reading vote snapshot")
	})
}
