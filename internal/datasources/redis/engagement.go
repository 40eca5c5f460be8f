package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
)

var (
	_ datasources.EngagementBuffer       = (*Store)(nil)
	_ datasources.PendingEngagementStore = (*Store)(nil)
)

const countsLua = `
local function counts(key)
  local raw = redis.call('HMGET', key, 'like', 'dislike', 'view', 'comment')
  local out = {}
  for i = 1, 4 do
    out[i] = tonumber(raw[i] or '0')
  end
  return out
end
local function floor_zero(key, field, value)
  if value < 0 then
    redis.call('HSET', key, field, 0)
  end
end
`

// KEYS: counts, votes, dirty voters
// ARGV: like, dislike, view, comment, userID ('' to skip), state, ttl seconds
var seedBaselineScript = goredis.NewScript(`
local ttl = tonumber(ARGV[7])
if redis.call('EXISTS', KEYS[1]) == 0 then
  redis.call('HSET', KEYS[1], 'like', ARGV[1], 'dislike', ARGV[2], 'view', ARGV[3], 'comment', ARGV[4], 'v', 0, 'pv', 0)
  if ttl > 0 then
    redis.call('EXPIRE', KEYS[1], ttl)
  end
end
if ARGV[5] ~= '' then
  redis.call('HSETNX', KEYS[2], ARGV[5], ARGV[6])
  if ttl > 0 and redis.call('TTL', KEYS[2]) == -1 and redis.call('EXISTS', KEYS[3]) == 0 then
    redis.call('EXPIRE', KEYS[2], ttl)
  end
end
return 1
`)

// KEYS: counts, votes, dirty voters, dirty subjects
// ARGV: userID, expected state, target state, like delta, dislike delta, subjectID, now ms
// Dirty voters keep the time they first became dirty, so flushes take them oldest first.
var compareAndSetVoteScript = goredis.NewScript(countsLua + `
local current = redis.call('HGET', KEYS[2], ARGV[1])
if not current then
  current = 'none'
end
if current ~= ARGV[2] then
  return {0}
end
redis.call('HSET', KEYS[2], ARGV[1], ARGV[3])
floor_zero(KEYS[1], 'like', redis.call('HINCRBY', KEYS[1], 'like', ARGV[4]))
floor_zero(KEYS[1], 'dislike', redis.call('HINCRBY', KEYS[1], 'dislike', ARGV[5]))
redis.call('HINCRBY', KEYS[1], 'v', 1)
redis.call('ZADD', KEYS[3], 'NX', ARGV[7], ARGV[1])
redis.call('ZADD', KEYS[4], 'NX', ARGV[7], ARGV[6])
redis.call('PERSIST', KEYS[1])
redis.call('PERSIST', KEYS[2])
local c = counts(KEYS[1])
return {1, c[1], c[2], c[3], c[4]}
`)

// KEYS: counts, dirty subjects
// ARGV: subjectID, now ms
var incrementViewsScript = goredis.NewScript(countsLua + `
redis.call('HINCRBY', KEYS[1], 'view', 1)
redis.call('HINCRBY', KEYS[1], 'pv', 1)
redis.call('HINCRBY', KEYS[1], 'v', 1)
redis.call('ZADD', KEYS[2], 'NX', ARGV[2], ARGV[1])
redis.call('PERSIST', KEYS[1])
return counts(KEYS[1])
`)

// Comment states are stored as "<state>:<authorID>", state being live or deleted.
const (
	commentStateLive    = "live"
	commentStateDeleted = "deleted"
)

// Script status codes for a comment operation.
const (
	commentStatusApplied        = 1
	commentStatusUnknown        = 2
	commentStatusAlreadyDeleted = 3
	commentStatusNotAuthor      = 4
)

// KEYS: counts, comment ops, dirty subjects, comment states
// ARGV: op JSON, kind, commentID, userID, postID, now ms
// Returns the status followed by the post's counts.
var enqueueCommentScript = goredis.NewScript(countsLua + `
local function result(status)
  local c = counts(KEYS[1])
  return {status, c[1], c[2], c[3], c[4]}
end
local delta = 0
if ARGV[2] == 'comment:create' then
  redis.call('HSET', KEYS[4], ARGV[3], 'live:' .. ARGV[4])
  delta = 1
else
  local entry = redis.call('HGET', KEYS[4], ARGV[3])
  if not entry then
    return result(2)
  end
  local sep = string.find(entry, ':', 1, true)
  local state = string.sub(entry, 1, sep - 1)
  local author = string.sub(entry, sep + 1)
  if author ~= ARGV[4] then
    return result(4)
  end
  if state == 'deleted' then
    return result(3)
  end
  if ARGV[2] == 'comment:delete' then
    redis.call('HSET', KEYS[4], ARGV[3], 'deleted:' .. ARGV[4])
    delta = -1
  end
end
redis.call('RPUSH', KEYS[2], ARGV[1])
if delta ~= 0 then
  floor_zero(KEYS[1], 'comment', redis.call('HINCRBY', KEYS[1], 'comment', delta))
end
redis.call('HINCRBY', KEYS[1], 'v', 1)
redis.call('ZADD', KEYS[3], 'NX', ARGV[6], ARGV[5])
redis.call('PERSIST', KEYS[1])
redis.call('PERSIST', KEYS[4])
return result(1)
`)

// KEYS: comment states
// ARGV: commentID, state entry, ttl seconds
var seedCommentStateScript = goredis.NewScript(`
local existed = redis.call('EXISTS', KEYS[1])
redis.call('HSETNX', KEYS[1], ARGV[1], ARGV[2])
local ttl = tonumber(ARGV[3])
if existed == 0 and ttl > 0 then
  redis.call('EXPIRE', KEYS[1], ttl)
end
return 1
`)

// KEYS: counts, votes, dirty voters, comment ops, dirty subjects, comment states
// ARGV: subjectID, version, pending views flushed, ttl seconds, n, n comment op IDs, then userID/state pairs
var ackSubjectScript = goredis.NewScript(`
local nops = tonumber(ARGV[5])
for i = 1, nops do
  local head = redis.call('LINDEX', KEYS[4], 0)
  if head and string.find(head, '"op_id":"' .. ARGV[5 + i] .. '"', 1, true) then
    redis.call('LPOP', KEYS[4])
  else
    break
  end
end
for i = 6 + nops, #ARGV, 2 do
  local current = redis.call('HGET', KEYS[2], ARGV[i])
  if not current then
    current = 'none'
  end
  if current == ARGV[i + 1] then
    redis.call('ZREM', KEYS[3], ARGV[i])
  end
end
local views = tonumber(ARGV[3])
if views > 0 and redis.call('EXISTS', KEYS[1]) == 1 then
  if redis.call('HINCRBY', KEYS[1], 'pv', -views) < 0 then
    redis.call('HSET', KEYS[1], 'pv', 0)
  end
end
local version = redis.call('HGET', KEYS[1], 'v') or '0'
local pending = tonumber(redis.call('HGET', KEYS[1], 'pv') or '0')
if version == ARGV[2] and pending == 0
  and redis.call('ZCARD', KEYS[3]) == 0 and redis.call('LLEN', KEYS[4]) == 0 then
  redis.call('ZREM', KEYS[5], ARGV[1])
  local ttl = tonumber(ARGV[4])
  if ttl > 0 then
    redis.call('EXPIRE', KEYS[1], ttl)
    redis.call('EXPIRE', KEYS[2], ttl)
    redis.call('EXPIRE', KEYS[6], ttl)
  end
  return 1
end
return 0
`)

func (s *Store) drainedTTLSeconds() int64 {
	return int64(s.config.DrainedTTL.Seconds())
}

func (s *Store) nowMillis() int64 {
	return s.now().UnixMilli()
}

func (s *Store) GetVoteSnapshot(
	ctx context.Context, subjectType domain.SubjectType, subjectID, userID string,
) (domain.VoteSnapshot, error) {
	pipe := s.client.Pipeline()
	existsCmd := pipe.Exists(ctx, s.keys.Counts(subjectType, subjectID))
	stateCmd := pipe.HGet(ctx, s.keys.Votes(subjectType, subjectID), userID)
	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, goredis.Nil) {
		return domain.VoteSnapshot{}, fmt.Errorf("reading vote snapshot: %w", err)
	}

	snapshot := domain.VoteSnapshot{CountsKnown: existsCmd.Val() > 0}
	state, err := stateCmd.Result()
	switch {
	case errors.Is(err, goredis.Nil):
	case err != nil:
		return domain.VoteSnapshot{}, fmt.Errorf("reading vote state: %w", err)
	default:
		snapshot.State = domain.VoteState(state)
		snapshot.StateKnown = true
	}

	return snapshot, nil
}

func (s *Store) SeedBaseline(
	ctx context.Context,
	subjectType domain.SubjectType,
	subjectID, userID string,
	baseline domain.EngagementBaseline,
) error {
	state := baseline.State
	if state == "" {
		state = domain.VoteStateNone
	}

	err := seedBaselineScript.Run(ctx, s.client,
		[]string{
			s.keys.Counts(subjectType, subjectID),
			s.keys.Votes(subjectType, subjectID),
			s.keys.DirtyVoters(subjectType, subjectID),
		},
		baseline.Counts.LikeCount,
		baseline.Counts.DislikeCount,
		baseline.Counts.ViewCount,
		baseline.Counts.CommentCount,
		userID,
		string(state),
		s.drainedTTLSeconds(),
	).Err()
	if err != nil {
		return fmt.Errorf("seeding baseline: %w", err)
	}
	return nil
}

func (s *Store) CompareAndSetVote(
	ctx context.Context,
	subjectType domain.SubjectType,
	subjectID, userID string,
	expected, target domain.VoteState,
) (domain.AggregateCounts, bool, error) {
	likeDelta, dislikeDelta := domain.VoteDelta(expected, target)

	result, err := compareAndSetVoteScript.Run(ctx, s.client,
		[]string{
			s.keys.Counts(subjectType, subjectID),
			s.keys.Votes(subjectType, subjectID),
			s.keys.DirtyVoters(subjectType, subjectID),
			s.keys.Dirty(subjectType),
		},
		userID,
		string(expected),
		string(target),
		likeDelta,
		dislikeDelta,
		subjectID,
		s.nowMillis(),
	).Int64Slice()
	if err != nil {
		return domain.AggregateCounts{}, false, fmt.Errorf("running vote script: %w", err)
	}
	if len(result) == 0 || result[0] == 0 {
		return domain.AggregateCounts{}, false, nil
	}

	counts, err := countsFromScript(subjectID, result[1:])
	if err != nil {
		return domain.AggregateCounts{}, false, err
	}
	return counts, true, nil
}

func (s *Store) IncrementViews(
	ctx context.Context, subjectType domain.SubjectType, subjectID string,
) (domain.AggregateCounts, error) {
	result, err := incrementViewsScript.Run(ctx, s.client,
		[]string{s.keys.Counts(subjectType, subjectID), s.keys.Dirty(subjectType)},
		subjectID,
		s.nowMillis(),
	).Int64Slice()
	if err != nil {
		return domain.AggregateCounts{}, fmt.Errorf("running view script: %w", err)
	}
	return countsFromScript(subjectID, result)
}

func (s *Store) EnqueueCommentOperation(
	ctx context.Context, op domain.PendingCommentOperation,
) (domain.AggregateCounts, domain.CommentOpStatus, error) {
	payload, err := json.Marshal(op)
	if err != nil {
		return domain.AggregateCounts{}, "", fmt.Errorf("encoding comment operation: %w", err)
	}

	result, err := enqueueCommentScript.Run(ctx, s.client,
		[]string{
			s.keys.Counts(domain.SubjectTypePost, op.PostID),
			s.keys.CommentOps(op.PostID),
			s.keys.Dirty(domain.SubjectTypePost),
			s.keys.CommentStates(op.PostID),
		},
		string(payload),
		string(op.Kind),
		op.CommentID,
		op.UserID,
		op.PostID,
		s.nowMillis(),
	).Int64Slice()
	if err != nil {
		return domain.AggregateCounts{}, "", fmt.Errorf("running comment script: %w", err)
	}
	if len(result) == 0 {
		return domain.AggregateCounts{}, "", errors.New("empty comment script result")
	}

	var status domain.CommentOpStatus
	switch result[0] {
	case commentStatusApplied:
		status = domain.CommentOpApplied
	case commentStatusUnknown:
		status = domain.CommentOpUnknownComment
	case commentStatusAlreadyDeleted:
		status = domain.CommentOpAlreadyDeleted
	case commentStatusNotAuthor:
		status = domain.CommentOpNotAuthor
	default:
		return domain.AggregateCounts{}, "", fmt.Errorf("unexpected comment script status %d", result[0])
	}

	counts, err := countsFromScript(op.PostID, result[1:])
	if err != nil {
		return domain.AggregateCounts{}, "", err
	}
	return counts, status, nil
}

func (s *Store) SeedCommentState(ctx context.Context, ref domain.CommentRef) error {
	state := commentStateLive
	if ref.Deleted {
		state = commentStateDeleted
	}

	err := seedCommentStateScript.Run(ctx, s.client,
		[]string{s.keys.CommentStates(ref.PostID)},
		ref.CommentID,
		state+":"+ref.UserID,
		s.drainedTTLSeconds(),
	).Err()
	if err != nil {
		return fmt.Errorf("seeding comment state: %w", err)
	}
	return nil
}

func (s *Store) GetCounts(
	ctx context.Context, subjectType domain.SubjectType, subjectIDs []string,
) (map[string]domain.AggregateCounts, error) {
	if len(subjectIDs) == 0 {
		return map[string]domain.AggregateCounts{}, nil
	}

	pipe := s.client.Pipeline()
	cmds := make([]*goredis.SliceCmd, len(subjectIDs))
	for i, id := range subjectIDs {
		cmds[i] = pipe.HMGet(ctx, s.keys.Counts(subjectType, id), "like", "dislike", "view", "comment")
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, fmt.Errorf("reading counts: %w", err)
	}

	counts := make(map[string]domain.AggregateCounts, len(subjectIDs))
	for i, id := range subjectIDs {
		values := cmds[i].Val()
		if allNil(values) {
			continue
		}
		fields, err := parseInt64Fields(values)
		if err != nil {
			return nil, fmt.Errorf("parsing counts for [%s]: %w", id, err)
		}
		counts[id] = domain.AggregateCounts{
			SubjectID:    id,
			LikeCount:    fields[0],
			DislikeCount: fields[1],
			ViewCount:    fields[2],
			CommentCount: fields[3],
		}
	}
	return counts, nil
}

func (s *Store) SeedCounts(
	ctx context.Context, subjectType domain.SubjectType, counts []domain.AggregateCounts,
) error {
	for _, c := range counts {
		if err := s.SeedBaseline(ctx, subjectType, c.SubjectID, "", domain.EngagementBaseline{Counts: c}); err != nil {
			return fmt.Errorf("seeding counts for [%s]: %w", c.SubjectID, err)
		}
	}
	return nil
}

func (s *Store) ListDirtySubjects(
	ctx context.Context, subjectType domain.SubjectType, limit int,
) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	ids, err := s.client.ZRange(ctx, s.keys.Dirty(subjectType), 0, int64(limit-1)).Result()
	if err != nil {
		return nil, fmt.Errorf("listing dirty subjects: %w", err)
	}
	return ids, nil
}

// SnapshotSubject reads counts, version, dirty voters and queued comment
// operations in one transaction. At most maxOps votes and comment operations
// are included, votes first; pending views are always included in full.
func (s *Store) SnapshotSubject(
	ctx context.Context, subjectType domain.SubjectType, subjectID string, maxOps int,
) (domain.SubjectSnapshot, error) {
	var (
		countsCmd *goredis.SliceCmd
		votersCmd *goredis.StringSliceCmd
		opsCmd    *goredis.StringSliceCmd
	)
	_, err := s.client.TxPipelined(ctx, func(pipe goredis.Pipeliner) error {
		countsCmd = pipe.HMGet(ctx, s.keys.Counts(subjectType, subjectID),
			"like", "dislike", "view", "comment", "v", "pv")
		if maxOps > 0 {
			votersCmd = pipe.ZRange(ctx, s.keys.DirtyVoters(subjectType, subjectID), 0, int64(maxOps-1))
		}
		if subjectType == domain.SubjectTypePost && maxOps > 0 {
			opsCmd = pipe.LRange(ctx, s.keys.CommentOps(subjectID), 0, int64(maxOps-1))
		}
		return nil
	})
	if err != nil {
		return domain.SubjectSnapshot{}, fmt.Errorf("reading subject snapshot: %w", err)
	}

	fields, err := parseInt64Fields(countsCmd.Val())
	if err != nil {
		return domain.SubjectSnapshot{}, fmt.Errorf("parsing counts: %w", err)
	}
	snapshot := domain.SubjectSnapshot{
		SubjectType: subjectType,
		SubjectID:   subjectID,
		Counts: domain.AggregateCounts{
			SubjectID:    subjectID,
			LikeCount:    fields[0],
			DislikeCount: fields[1],
			ViewCount:    fields[2],
			CommentCount: fields[3],
		},
		Version:      fields[4],
		PendingViews: fields[5],
	}

	var voters []string
	if votersCmd != nil {
		voters = votersCmd.Val()
	}
	if len(voters) > 0 {
		states, err := s.client.HMGet(ctx, s.keys.Votes(subjectType, subjectID), voters...).Result()
		if err != nil {
			return domain.SubjectSnapshot{}, fmt.Errorf("reading voter states: %w", err)
		}
		for i, userID := range voters {
			state := domain.VoteStateNone
			if raw, ok := states[i].(string); ok {
				state = domain.VoteState(raw)
			}
			snapshot.Votes = append(snapshot.Votes, domain.VoterState{UserID: userID, State: state})
		}
	}

	if opsCmd != nil {
		rawOps := opsCmd.Val()
		if remaining := maxOps - len(snapshot.Votes); len(rawOps) > remaining {
			rawOps = rawOps[:max(remaining, 0)]
		}
		for _, raw := range rawOps {
			var op domain.PendingCommentOperation
			if err := json.Unmarshal([]byte(raw), &op); err != nil {
				return domain.SubjectSnapshot{}, fmt.Errorf("decoding comment operation: %w", err)
			}
			snapshot.CommentOps = append(snapshot.CommentOps, op)
		}
	}

	return snapshot, nil
}

func (s *Store) AckSubject(ctx context.Context, snapshot domain.SubjectSnapshot) (bool, error) {
	// Comment operations are only popped while the list head still carries
	// the snapshot's op IDs, so a concurrent flush cannot trim unflushed ops.
	args := []any{
		snapshot.SubjectID,
		strconv.FormatInt(snapshot.Version, 10),
		snapshot.PendingViews,
		s.drainedTTLSeconds(),
		len(snapshot.CommentOps),
	}
	for _, op := range snapshot.CommentOps {
		args = append(args, op.OperationID)
	}
	for _, v := range snapshot.Votes {
		args = append(args, v.UserID, string(v.State))
	}

	drained, err := ackSubjectScript.Run(ctx, s.client,
		[]string{
			s.keys.Counts(snapshot.SubjectType, snapshot.SubjectID),
			s.keys.Votes(snapshot.SubjectType, snapshot.SubjectID),
			s.keys.DirtyVoters(snapshot.SubjectType, snapshot.SubjectID),
			s.keys.CommentOps(snapshot.SubjectID),
			s.keys.Dirty(snapshot.SubjectType),
			s.keys.CommentStates(snapshot.SubjectID),
		},
		args...,
	).Int64()
	if err != nil {
		return false, fmt.Errorf("running ack script: %w", err)
	}
	return drained == 1, nil
}

func countsFromScript(subjectID string, values []int64) (domain.AggregateCounts, error) {
	if len(values) < 4 {
		return domain.AggregateCounts{}, fmt.Errorf("unexpected script result length %d", len(values))
	}
	return domain.AggregateCounts{
		SubjectID:    subjectID,
		LikeCount:    values[0],
		DislikeCount: values[1],
		ViewCount:    values[2],
		CommentCount: values[3],
	}, nil
}

func allNil(values []any) bool {
	for _, v := range values {
		if v != nil {
			return false
		}
	}
	return true
}

// parseInt64Fields converts HMGET results, treating missing fields as zero.
func parseInt64Fields(values []any) ([]int64, error) {
	out := make([]int64, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}
