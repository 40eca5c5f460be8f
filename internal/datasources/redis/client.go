package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Connect opens a client to a single Redis node and checks it responds.
func Connect(ctx context.Context, addr string) (*goredis.Client, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:         addr,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  2 * time.Second,
		WriteTimeout: 2 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return rdb, nil
}

// Config holds the store's tunables.
type Config struct {
	KeyPrefix string

	// DrainedTTL is applied to a subject's counts and votes once nothing is
	// left to flush, so idle subjects age out and are re-seeded on next use.
	DrainedTTL time.Duration
}

func DefaultConfig() Config {
	return Config{DrainedTTL: 24 * time.Hour}
}

// Store is the fast store: engagement buffer, pending-flush state and caches.
type Store struct {
	client goredis.UniversalClient
	keys   Keys
	config Config
	now    func() time.Time
}

func New(client goredis.UniversalClient, config Config) *Store {
	return &Store{
		client: client,
		keys:   Keys{Prefix: config.KeyPrefix},
		config: config,
		now:    time.Now,
	}
}

// Keys exposes the key layout, mainly for tests and operational tooling.
func (s *Store) Keys() Keys {
	return s.keys
}
