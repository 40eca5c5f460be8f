package domain

import (
	"cmp"
	"math"
	"slices"
	"strings"
)

// CosineSimilarity returns the cosine of the angle between a and b, or 0 when
// either vector is empty, zero, or the lengths differ.
func CosineSimilarity(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		normA += float64(a[i]) * float64(a[i])
		normB += float64(b[i]) * float64(b[i])
	}
	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}

// SortCandidates orders candidates by similarity, then by most recent
// publish time, then by post ID.
func SortCandidates(candidates []Candidate) {
	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		if c := cmp.Compare(b.Similarity, a.Similarity); c != 0 {
			return c
		}
		if c := b.PublishedAt.Compare(a.PublishedAt); c != 0 {
			return c
		}
		return strings.Compare(a.PostID, b.PostID)
	})
}

// TopKBySimilarity scores every embedding against query and returns the k
// best candidates that are not excluded.
func TopKBySimilarity(
	query []float32,
	embeddings []PostEmbedding,
	exclude map[string]struct{},
	k int,
) []Candidate {
	candidates := make([]Candidate, 0, len(embeddings))
	for _, e := range embeddings {
		if _, excluded := exclude[e.PostID]; excluded {
			continue
		}
		if len(e.Vector) == 0 {
			continue
		}
		candidates = append(candidates, Candidate{
			PostID:      e.PostID,
			Similarity:  CosineSimilarity(query, e.Vector),
			PublishedAt: e.PublishedAt,
		})
	}

	SortCandidates(candidates)
	if k >= 0 && len(candidates) > k {
		candidates = candidates[:k]
	}
	return candidates
}

// ExcludeCandidates removes excluded posts, preserving order.
func ExcludeCandidates(candidates []Candidate, exclude map[string]struct{}) []Candidate {
	if len(exclude) == 0 {
		return candidates
	}

	filtered := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if _, excluded := exclude[c.PostID]; excluded {
			continue
		}
		filtered = append(filtered, c)
	}
	return filtered
}
