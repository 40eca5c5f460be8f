package command

import (
	"context"
	"fmt"
	"time"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
)

// UpdateInterestVectorRequest is the request for the UpdateInterestVector command.
type UpdateInterestVectorRequest struct {
	UserID string
}

// UpdateInterestVector recomputes a user's interest vector from their
// profile text and the posts they liked, weighting recent likes more.
type UpdateInterestVector struct {
	Users    datasources.UserGetter
	Embedder datasources.Embedder
	Likes    datasources.LikedPostVectorsLister
	Writer   datasources.UserInterestVectorWriter
	Config   domain.InterestVectorConfig

	now func() time.Time
}

// NewUpdateInterestVector creates a properly initialized UpdateInterestVector command.
func NewUpdateInterestVector(
	users datasources.UserGetter,
	embedder datasources.Embedder,
	likes datasources.LikedPostVectorsLister,
	writer datasources.UserInterestVectorWriter,
	config domain.InterestVectorConfig,
) *UpdateInterestVector {
	return &UpdateInterestVector{
		Users:    users,
		Embedder: embedder,
		Likes:    likes,
		Writer:   writer,
		Config:   config,
		now:      time.Now,
	}
}

// Execute stores the new vector. A user with neither profile text nor likes
// gets an empty vector and is served cold start recall.
func (c *UpdateInterestVector) Execute(ctx context.Context, req UpdateInterestVectorRequest) (Empty, error) {
	user, err := c.Users.GetUser(ctx, req.UserID)
	if err != nil {
		return Empty{}, fmt.Errorf("getting user: %w", err)
	}

	var profile []float32
	if user.ProfileText != "" {
		profile, err = c.Embedder.EmbedText(ctx, user.ProfileText)
		if err != nil {
			return Empty{}, fmt.Errorf("embedding profile text: %w", err)
		}
	}

	liked, err := c.Likes.ListLikedPostVectors(ctx, req.UserID, c.Config.MaxLikedPosts)
	if err != nil {
		return Empty{}, fmt.Errorf("listing liked post vectors: %w", err)
	}

	now := c.now()
	vector := domain.BlendInterestVector(profile, liked, c.Config, now)

	if err := c.Writer.SetUserInterestVector(ctx, req.UserID, vector, now); err != nil {
		return Empty{}, fmt.Errorf("storing interest vector: %w", err)
	}

	return Empty{}, nil
}

// RefreshInterestVectorsRequest is the request for the RefreshInterestVectors command.
type RefreshInterestVectorsRequest struct {
	MaxUsers int
}

type RefreshInterestVectorsResult struct {
	Refreshed int `json:"refreshed"`
	Failed    int `json:"failed"`
}

// RefreshInterestVectorsConfig holds configuration for the background refresh.
type RefreshInterestVectorsConfig struct {
	DefaultMaxUsers int
}

// RefreshInterestVectors updates the interest vectors of users whose
// profile or likes changed since their vector was last computed.
type RefreshInterestVectors struct {
	Users     datasources.InterestRefreshUserLister
	UpdateCmd Command[UpdateInterestVectorRequest, Empty]
	Config    RefreshInterestVectorsConfig
}

// NewRefreshInterestVectors creates a properly initialized RefreshInterestVectors command.
func NewRefreshInterestVectors(
	users datasources.InterestRefreshUserLister,
	updateCmd Command[UpdateInterestVectorRequest, Empty],
	config RefreshInterestVectorsConfig,
) *RefreshInterestVectors {
	return &RefreshInterestVectors{
		Users:     users,
		UpdateCmd: updateCmd,
		Config:    config,
	}
}

// Execute refreshes each listed user, isolating per-user failures.
func (c *RefreshInterestVectors) Execute(
	ctx context.Context, req RefreshInterestVectorsRequest,
) (RefreshInterestVectorsResult, error) {
	logger := domain.LoggerFromContext(ctx)

	maxUsers := req.MaxUsers
	if maxUsers <= 0 {
		maxUsers = c.Config.DefaultMaxUsers
	}

	userIDs, err := c.Users.ListUsersNeedingInterestRefresh(ctx, maxUsers)
	if err != nil {
		return RefreshInterestVectorsResult{}, fmt.Errorf("listing users needing refresh: %w", err)
	}

	if len(userIDs) == 0 {
		logger.InfoContext(ctx, "no users need interest vector refresh")
		return RefreshInterestVectorsResult{}, nil
	}

	var result RefreshInterestVectorsResult
	for _, userID := range userIDs {
		if ctx.Err() != nil {
			break
		}
		if _, err := c.UpdateCmd.Execute(ctx, UpdateInterestVectorRequest{UserID: userID}); err != nil {
			logger.ErrorContext(ctx, "failed to refresh interest vector", "user_id", userID, "error", err)
			result.Failed++
			continue
		}
		result.Refreshed++
	}

	logger.InfoContext(ctx, "interest vector refresh complete",
		"refreshed", result.Refreshed, "failed", result.Failed)
	return result, nil
}
