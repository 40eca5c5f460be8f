package breaker

import (
	"context"
	"errors"
	"time"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/jbeshir/community-feed/internal/metrics"
	gobreaker "github.com/sony/gobreaker/v2"
)

var _ datasources.SimilarityRepository = (*SimilarityRepository)(nil)

type Config struct {
	Name string

	// MinRequests is how many requests the current interval must see before
	// the failure ratio can open the circuit.
	MinRequests  uint32
	FailureRatio float64

	// Interval resets the closed-state counts; Timeout is how long the
	// circuit stays open before letting a trial request through.
	Interval time.Duration
	Timeout  time.Duration

	// HalfOpenRequests bounds the trial requests allowed while half-open.
	HalfOpenRequests uint32
}

func DefaultConfig() Config {
	return Config{
		Name:             "similarity",
		MinRequests:      10,
		FailureRatio:     0.6,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		HalfOpenRequests: 3,
	}
}

// SimilarityRepository guards similarity queries with a circuit breaker.
// Vector upserts pass straight through; they run from jobs that report
// their own failures.
type SimilarityRepository struct {
	next datasources.SimilarityRepository
	cb   *gobreaker.CircuitBreaker[[]domain.Candidate]
	name string
}

func NewSimilarityRepository(next datasources.SimilarityRepository, config Config) *SimilarityRepository {
	metrics.CircuitBreakerState.WithLabelValues(config.Name).Set(0)

	cb := gobreaker.NewCircuitBreaker[[]domain.Candidate](gobreaker.Settings{
		Name:        config.Name,
		MaxRequests: config.HalfOpenRequests,
		Interval:    config.Interval,
		Timeout:     config.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < config.MinRequests {
				return false
			}
			return float64(counts.TotalFailures)/float64(counts.Requests) >= config.FailureRatio
		},
		OnStateChange: func(name string, _, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
		},
		IsSuccessful: func(err error) bool {
			// A caller giving up is not a failure of the index.
			return err == nil || errors.Is(err, context.Canceled)
		},
	})

	return &SimilarityRepository{
		next: next,
		cb:   cb,
		name: config.Name,
	}
}

func (r *SimilarityRepository) ListSimilarPostsByVector(
	ctx context.Context,
	vector []float32,
	limit int,
) ([]domain.Candidate, error) {
	candidates, err := r.cb.Execute(func() ([]domain.Candidate, error) {
		return r.next.ListSimilarPostsByVector(ctx, vector, limit)
	})

	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(r.name, "rejected").Inc()
	case err != nil:
		metrics.CircuitBreakerRequests.WithLabelValues(r.name, "failure").Inc()
	default:
		metrics.CircuitBreakerRequests.WithLabelValues(r.name, "success").Inc()
	}

	return candidates, err
}

func (r *SimilarityRepository) UpsertPostVectors(ctx context.Context, embeddings []domain.PostEmbedding) error {
	return r.next.UpsertPostVectors(ctx, embeddings)
}

// State reports the breaker's current state.
func (r *SimilarityRepository) State() gobreaker.State {
	return r.cb.State()
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return 0
	}
}
