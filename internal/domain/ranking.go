package domain

import (
	"cmp"
	"math"
	"slices"
	"strings"
	"time"
)

// RankingParams weights the signals combined into a post's score. Weights are
// relative proportions and are normalized before use.
type RankingParams struct {
	SimilarityWeight float64 `json:"similarity_weight" validate:"gte=0,lte=1"`
	RecencyWeight    float64 `json:"recency_weight" validate:"gte=0,lte=1"`
	EngagementWeight float64 `json:"engagement_weight" validate:"gte=0,lte=1"`
	ApplyDiversity   bool    `json:"apply_diversity"`
}

// Normalized returns the weights scaled to sum to one. All-zero weights are
// treated as equal weights.
func (p RankingParams) Normalized() (similarity, recency, engagement float64) {
	total := p.SimilarityWeight + p.RecencyWeight + p.EngagementWeight
	if total <= 0 {
		return 1.0 / 3, 1.0 / 3, 1.0 / 3
	}
	return p.SimilarityWeight / total, p.RecencyWeight / total, p.EngagementWeight / total
}

// RankingParamsOverride holds per-request overrides; nil fields keep the base value.
type RankingParamsOverride struct {
	SimilarityWeight *float64 `validate:"omitempty,gte=0,lte=1"`
	RecencyWeight    *float64 `validate:"omitempty,gte=0,lte=1"`
	EngagementWeight *float64 `validate:"omitempty,gte=0,lte=1"`
	ApplyDiversity   *bool
}

func (o RankingParamsOverride) Apply(base RankingParams) RankingParams {
	if o.SimilarityWeight != nil {
		base.SimilarityWeight = *o.SimilarityWeight
	}
	if o.RecencyWeight != nil {
		base.RecencyWeight = *o.RecencyWeight
	}
	if o.EngagementWeight != nil {
		base.EngagementWeight = *o.EngagementWeight
	}
	if o.ApplyDiversity != nil {
		base.ApplyDiversity = *o.ApplyDiversity
	}
	return base
}

// RankingConfig holds the tunables of the scoring function.
type RankingConfig struct {
	// RecencyHalfLifeDays is the age at which a post's recency factor halves.
	RecencyHalfLifeDays float64

	// RecencyHorizonDays is the age beyond which recency contributes nothing.
	RecencyHorizonDays float64

	// Relative weights of the engagement signals.
	LikeWeight    float64
	CommentWeight float64
	ViewWeight    float64

	// DiversityWindow is the number of consecutive results the caps apply to.
	DiversityWindow       int
	DiversityMaxPerAuthor int
	DiversityMaxPerBoard  int
}

func DefaultRankingConfig() RankingConfig {
	return RankingConfig{
		RecencyHalfLifeDays:   3,
		RecencyHorizonDays:    21,
		LikeWeight:            0.5,
		CommentWeight:         0.3,
		ViewWeight:            0.2,
		DiversityWindow:       5,
		DiversityMaxPerAuthor: 2,
		DiversityMaxPerBoard:  3,
	}
}

// RankingInput is one candidate with everything the scoring function needs.
// A nil Counts means engagement data was unavailable.
type RankingInput struct {
	Post       Post
	Similarity float64
	Counts     *AggregateCounts
}

// RecencyFactor decays from 1 for a brand-new post towards 0, reaching 0 at
// the configured horizon. Unknown publish times score 0.
func RecencyFactor(publishedAt, now time.Time, config RankingConfig) float64 {
	if publishedAt.IsZero() {
		return 0
	}

	ageDays := now.Sub(publishedAt).Hours() / 24
	if ageDays <= 0 {
		return 1
	}
	if config.RecencyHorizonDays > 0 && ageDays >= config.RecencyHorizonDays {
		return 0
	}
	if config.RecencyHalfLifeDays <= 0 {
		return 0
	}

	return math.Exp(-math.Ln2 * ageDays / config.RecencyHalfLifeDays)
}

// EngagementFactors scores each input's engagement in [0,1]. Each signal is
// log-scaled against the largest value in the set so a single viral post
// cannot flatten the rest of the ordering.
func EngagementFactors(inputs []RankingInput, config RankingConfig) []float64 {
	var maxLikes, maxComments, maxViews int64
	for _, in := range inputs {
		if in.Counts == nil {
			continue
		}
		maxLikes = max(maxLikes, netLikes(*in.Counts))
		maxComments = max(maxComments, in.Counts.CommentCount)
		maxViews = max(maxViews, in.Counts.ViewCount)
	}

	totalWeight := config.LikeWeight + config.CommentWeight + config.ViewWeight
	factors := make([]float64, len(inputs))
	if totalWeight <= 0 {
		return factors
	}

	for i, in := range inputs {
		if in.Counts == nil {
			continue
		}
		score := config.LikeWeight*logScale(netLikes(*in.Counts), maxLikes) +
			config.CommentWeight*logScale(in.Counts.CommentCount, maxComments) +
			config.ViewWeight*logScale(in.Counts.ViewCount, maxViews)
		factors[i] = score / totalWeight
	}

	return factors
}

func netLikes(c AggregateCounts) int64 {
	return max(0, c.LikeCount-c.DislikeCount)
}

func logScale(v, maxV int64) float64 {
	if v <= 0 || maxV <= 0 {
		return 0
	}
	return math.Log1p(float64(v)) / math.Log1p(float64(maxV))
}

// RankPosts scores and orders the inputs. The result is a total order: equal
// scores are broken by post ID, so identical inputs always produce identical
// output.
func RankPosts(inputs []RankingInput, params RankingParams, config RankingConfig, now time.Time) []RankedPost {
	wSim, wRec, wEng := params.Normalized()
	engagement := EngagementFactors(inputs, config)

	ranked := make([]RankedPost, 0, len(inputs))
	for i, in := range inputs {
		similarity := min(max(in.Similarity, 0), 1)
		if math.IsNaN(similarity) {
			similarity = 0
		}

		score := wSim*similarity +
			wRec*RecencyFactor(in.Post.PublishedAt, now, config) +
			wEng*engagement[i]

		post := in.Post
		if in.Counts != nil {
			post.Counts = *in.Counts
		}
		ranked = append(ranked, RankedPost{Post: post, Score: score})
	}

	slices.SortStableFunc(ranked, compareRanked)

	if params.ApplyDiversity {
		ranked = Diversify(ranked, config)
	}

	return ranked
}

func compareRanked(a, b RankedPost) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return strings.Compare(a.Post.ID, b.Post.ID)
}

// Diversify re-orders an already sorted list so no window of
// DiversityWindow consecutive results holds more than the configured number
// of posts by one author or from one board. Posts are only moved later,
// never dropped: when nothing remaining fits the caps, the best remaining
// post is emitted anyway.
func Diversify(ranked []RankedPost, config RankingConfig) []RankedPost {
	if config.DiversityWindow <= 1 || len(ranked) < 2 {
		return ranked
	}

	remaining := slices.Clone(ranked)
	result := make([]RankedPost, 0, len(ranked))

	for len(remaining) > 0 {
		pick := 0
		for i, candidate := range remaining {
			if fitsDiversityWindow(result, candidate, config) {
				pick = i
				break
			}
		}
		result = append(result, remaining[pick])
		remaining = slices.Delete(remaining, pick, pick+1)
	}

	return result
}

func fitsDiversityWindow(result []RankedPost, candidate RankedPost, config RankingConfig) bool {
	start := max(0, len(result)-(config.DiversityWindow-1))

	var sameAuthor, sameBoard int
	for _, prev := range result[start:] {
		if candidate.Post.AuthorID != "" && prev.Post.AuthorID == candidate.Post.AuthorID {
			sameAuthor++
		}
		if candidate.Post.Board != "" && prev.Post.Board == candidate.Post.Board {
			sameBoard++
		}
	}

	if config.DiversityMaxPerAuthor > 0 && sameAuthor >= config.DiversityMaxPerAuthor {
		return false
	}
	if config.DiversityMaxPerBoard > 0 && sameBoard >= config.DiversityMaxPerBoard {
		return false
	}
	return true
}
