package app

import (
	"time"

	"github.com/jbeshir/community-feed/internal/command"
	"github.com/jbeshir/community-feed/internal/datasources/breaker"
	"github.com/jbeshir/community-feed/internal/domain"
)

// DefaultRecallPostsConfig returns the default config for candidate recall.
func DefaultRecallPostsConfig() command.RecallPostsConfig {
	return command.RecallPostsConfig{
		MaxLimit:        2000,
		CacheTTL:        3 * time.Hour,
		Timeout:         2 * time.Second,
		ColdStartWindow: 72 * time.Hour,
	}
}

// DefaultGetFeedConfig returns the default config for serving feeds.
func DefaultGetFeedConfig() command.GetFeedConfig {
	return command.GetFeedConfig{
		DefaultLimit:   20,
		MaxLimit:       100,
		RecallLimit:    1000,
		CacheTTL:       20 * time.Minute,
		MinFillRatio:   0.8,
		ComputeTimeout: 10 * time.Second,
		DefaultRankingParams: domain.RankingParams{
			SimilarityWeight: 0.5,
			RecencyWeight:    0.3,
			EngagementWeight: 0.2,
			ApplyDiversity:   true,
		},
	}
}

func DefaultBufferEngagementConfig() command.BufferEngagementConfig {
	return command.BufferEngagementConfig{MaxVoteAttempts: 5}
}

func DefaultFlushEngagementConfig() command.FlushEngagementConfig {
	return command.FlushEngagementConfig{
		DefaultBatchSize: 500,
		MaxBatchSize:     5000,
	}
}

func DefaultHotCommentsConfig() command.HotCommentsConfig {
	return command.HotCommentsConfig{
		Limit:           10,
		TTL:             time.Hour,
		DefaultMaxPosts: 500,
	}
}

func DefaultRefreshInterestVectorsConfig() command.RefreshInterestVectorsConfig {
	return command.RefreshInterestVectorsConfig{DefaultMaxUsers: 200}
}

func DefaultEmbedPostsConfig() command.EmbedPostsConfig {
	return command.EmbedPostsConfig{DefaultMaxPosts: 100}
}

// DefaultListTrendingPostsConfig returns the default config for the RSS feed.
func DefaultListTrendingPostsConfig() command.ListTrendingPostsConfig {
	return command.ListTrendingPostsConfig{
		Window:       72 * time.Hour,
		DefaultLimit: 50,
		MaxLimit:     200,
	}
}

// DefaultVectorScanWindow bounds the posts the mysql_scan similarity driver scores.
const DefaultVectorScanWindow = 30 * 24 * time.Hour

func DefaultSimilarityBreakerConfig() breaker.Config {
	return breaker.DefaultConfig()
}
