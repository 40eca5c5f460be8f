package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
)

var (
	_ datasources.FeedCache               = (*Store)(nil)
	_ datasources.RecallCache             = (*Store)(nil)
	_ datasources.HotCommentsCache        = (*Store)(nil)
	_ datasources.StaleHotCommentsTracker = (*Store)(nil)
)

func (s *Store) GetFeed(
	ctx context.Context, userID string, page, limit int, boardFilter string,
) (domain.FeedCacheEntry, bool, error) {
	var entry domain.FeedCacheEntry
	found, err := s.getJSON(ctx, s.keys.Feed(userID, page, limit, boardFilter), &entry)
	if err != nil {
		return domain.FeedCacheEntry{}, false, fmt.Errorf("reading feed cache: %w", err)
	}
	return entry, found, nil
}

// SetFeed replaces the whole entry; partial updates are never written.
func (s *Store) SetFeed(ctx context.Context, entry domain.FeedCacheEntry, ttl time.Duration) error {
	key := s.keys.Feed(entry.UserID, entry.Page, entry.Limit, entry.BoardFilter)
	if err := s.setJSON(ctx, key, entry, ttl); err != nil {
		return fmt.Errorf("writing feed cache: %w", err)
	}
	return nil
}

func (s *Store) GetRecall(ctx context.Context, userID string) ([]domain.Candidate, bool, error) {
	var candidates []domain.Candidate
	found, err := s.getJSON(ctx, s.keys.Recall(userID), &candidates)
	if err != nil {
		return nil, false, fmt.Errorf("reading recall cache: %w", err)
	}
	return candidates, found, nil
}

func (s *Store) SetRecall(ctx context.Context, userID string, candidates []domain.Candidate, ttl time.Duration) error {
	if err := s.setJSON(ctx, s.keys.Recall(userID), candidates, ttl); err != nil {
		return fmt.Errorf("writing recall cache: %w", err)
	}
	return nil
}

func (s *Store) GetHotComments(ctx context.Context, postID string) ([]domain.Comment, bool, error) {
	var comments []domain.Comment
	found, err := s.getJSON(ctx, s.keys.HotComments(postID), &comments)
	if err != nil {
		return nil, false, fmt.Errorf("reading hot comments: %w", err)
	}
	return comments, found, nil
}

func (s *Store) SetHotComments(ctx context.Context, postID string, comments []domain.Comment, ttl time.Duration) error {
	if comments == nil {
		comments = []domain.Comment{}
	}
	if err := s.setJSON(ctx, s.keys.HotComments(postID), comments, ttl); err != nil {
		return fmt.Errorf("writing hot comments: %w", err)
	}
	return nil
}

func (s *Store) MarkHotCommentsStale(ctx context.Context, postIDs []string) error {
	if len(postIDs) == 0 {
		return nil
	}
	members := make([]any, len(postIDs))
	for i, id := range postIDs {
		members[i] = id
	}
	if err := s.client.SAdd(ctx, s.keys.HotCommentsStale(), members...).Err(); err != nil {
		return fmt.Errorf("marking hot comments stale: %w", err)
	}
	return nil
}

func (s *Store) PopStaleHotComments(ctx context.Context, limit int) ([]string, error) {
	if limit <= 0 {
		return nil, nil
	}
	ids, err := s.client.SPopN(ctx, s.keys.HotCommentsStale(), int64(limit)).Result()
	if err != nil && !errors.Is(err, goredis.Nil) {
		return nil, fmt.Errorf("popping stale hot comments: %w", err)
	}
	return ids, nil
}

func (s *Store) getJSON(ctx context.Context, key string, dst any) (bool, error) {
	raw, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return false, fmt.Errorf("decoding [%s]: %w", key, err)
	}
	return true, nil
}

func (s *Store) setJSON(ctx context.Context, key string, value any, ttl time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("encoding [%s]: %w", key, err)
	}
	return s.client.Set(ctx, key, raw, ttl).Err()
}
