package redis

import (
	"fmt"

	"github.com/jbeshir/community-feed/internal/domain"
)

// Keys builds every key the store touches. An empty Prefix yields the bare
// layout below; a non-empty one is prepended with a colon.
//
//	engagement:{type}:{id}:counts         HASH  like, dislike, view, comment, v (version), pv (pending views)
//	engagement:{type}:{id}:votes          HASH  userID -> none|up|down
//	engagement:{type}:{id}:dirty_voters   ZSET  userIDs whose vote is not yet flushed, scored by first-dirty time (ms)
//	engagement:{type}:dirty               ZSET  subjectID scored by first-dirty time (ms)
//	post:{id}:comment_ops                 LIST  JSON pending comment operations
//	post:{id}:comment_states              HASH  commentID -> live|deleted:authorID
//	post:{id}:hot_comments                STRING JSON []domain.Comment
//	hot_comments:stale                    SET   postIDs
//	user:{id}:feed:{page}:{limit}:{board} STRING JSON domain.FeedCacheEntry; board is "-" or "b=<name>"
//	user:{id}:recall:posts                STRING JSON []domain.Candidate
type Keys struct {
	Prefix string
}

func (k Keys) key(format string, args ...any) string {
	key := fmt.Sprintf(format, args...)
	if k.Prefix == "" {
		return key
	}
	return k.Prefix + ":" + key
}

func (k Keys) Counts(subjectType domain.SubjectType, subjectID string) string {
	return k.key("engagement:%s:%s:counts", subjectType, subjectID)
}

func (k Keys) Votes(subjectType domain.SubjectType, subjectID string) string {
	return k.key("engagement:%s:%s:votes", subjectType, subjectID)
}

func (k Keys) DirtyVoters(subjectType domain.SubjectType, subjectID string) string {
	return k.key("engagement:%s:%s:dirty_voters", subjectType, subjectID)
}

func (k Keys) Dirty(subjectType domain.SubjectType) string {
	return k.key("engagement:%s:dirty", subjectType)
}

func (k Keys) CommentOps(postID string) string {
	return k.key("post:%s:comment_ops", postID)
}

func (k Keys) CommentStates(postID string) string {
	return k.key("post:%s:comment_states", postID)
}

func (k Keys) HotComments(postID string) string {
	return k.key("post:%s:hot_comments", postID)
}

func (k Keys) HotCommentsStale() string {
	return k.key("hot_comments:stale")
}

// Feed is keyed by the full request shape. Board names are prefixed so no
// board can collide with the unfiltered feed.
func (k Keys) Feed(userID string, page, limit int, boardFilter string) string {
	board := "-"
	if boardFilter != "" {
		board = "b=" + boardFilter
	}
	return k.key("user:%s:feed:%d:%d:%s", userID, page, limit, board)
}

func (k Keys) Recall(userID string) string {
	return k.key("user:%s:recall:posts", userID)
}
