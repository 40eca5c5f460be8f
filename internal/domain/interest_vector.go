package domain

import (
	"math"
	"time"
)

// TimestampedVector is an embedding with the time the user engaged with it.
type TimestampedVector struct {
	Vector    []float32
	Timestamp time.Time
}

// InterestVectorConfig controls how a user's interest vector is derived.
type InterestVectorConfig struct {
	// ProfileWeight is the share of the final vector taken from the profile
	// text embedding when liked-post embeddings are also available.
	ProfileWeight float64

	// LikeHalfLifeDays is the half-life applied to liked-post embeddings.
	LikeHalfLifeDays float64

	// MaxLikedPosts bounds how many recent likes feed into the vector.
	MaxLikedPosts int
}

func DefaultInterestVectorConfig() InterestVectorConfig {
	return InterestVectorConfig{
		ProfileWeight:    0.4,
		LikeHalfLifeDays: 30,
		MaxLikedPosts:    200,
	}
}

// DecayedAverage averages vectors weighting each by exp(-ln2 * ageDays / halfLifeDays).
// Vectors with a different dimension to the first one are skipped.
// Returns nil if there is nothing to average.
func DecayedAverage(vectors []TimestampedVector, halfLifeDays float64, now time.Time) []float32 {
	if len(vectors) == 0 || halfLifeDays <= 0 {
		return nil
	}

	lambda := math.Ln2 / halfLifeDays

	var sum []float64
	var totalWeight float64
	for _, v := range vectors {
		if len(v.Vector) == 0 {
			continue
		}
		if sum == nil {
			sum = make([]float64, len(v.Vector))
		}
		if len(v.Vector) != len(sum) {
			continue
		}

		ageDays := max(now.Sub(v.Timestamp).Hours()/24, 0)
		weight := math.Exp(-lambda * ageDays)
		for i, val := range v.Vector {
			sum[i] += weight * float64(val)
		}
		totalWeight += weight
	}

	if totalWeight == 0 {
		return nil
	}

	result := make([]float32, len(sum))
	for i, val := range sum {
		result[i] = float32(val / totalWeight)
	}
	return result
}

// BlendInterestVector combines the profile embedding with the decayed
// average of liked-post embeddings. Either side may be missing; when both
// are, nil is returned and the user is treated as a cold start.
func BlendInterestVector(
	profile []float32,
	liked []TimestampedVector,
	config InterestVectorConfig,
	now time.Time,
) []float32 {
	behaviour := DecayedAverage(liked, config.LikeHalfLifeDays, now)

	switch {
	case len(profile) == 0 && len(behaviour) == 0:
		return nil
	case len(behaviour) == 0:
		return profile
	case len(profile) == 0 || len(profile) != len(behaviour):
		return behaviour
	}

	w := min(max(config.ProfileWeight, 0), 1)
	result := make([]float32, len(profile))
	for i := range profile {
		result[i] = float32(w*float64(profile[i]) + (1-w)*float64(behaviour[i]))
	}
	return result
}
