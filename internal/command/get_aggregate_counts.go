package command

import (
	"context"
	"fmt"

	"github.com/jbeshir/community-feed/internal/datasources"
	"github.com/jbeshir/community-feed/internal/domain"
)

// GetAggregateCountsRequest is the request for the GetAggregateCounts command.
type GetAggregateCountsRequest struct {
	SubjectType domain.SubjectType
	SubjectIDs  []string
}

// GetAggregateCounts reads counts from the fast store, which is the read
// authority. Subjects it does not hold are loaded from the durable store and
// seeded; if the fast store is unavailable durable counts are served as is.
type GetAggregateCounts struct {
	Buffer  datasources.AggregateCountsGetter
	Seeder  datasources.AggregateCountsSeeder
	Durable datasources.DurableCountsGetter
}

// NewGetAggregateCounts creates a properly initialized GetAggregateCounts command.
func NewGetAggregateCounts(
	buffer datasources.AggregateCountsGetter,
	seeder datasources.AggregateCountsSeeder,
	durable datasources.DurableCountsGetter,
) *GetAggregateCounts {
	return &GetAggregateCounts{
		Buffer:  buffer,
		Seeder:  seeder,
		Durable: durable,
	}
}

func (c *GetAggregateCounts) Execute(
	ctx context.Context, req GetAggregateCountsRequest,
) (map[string]domain.AggregateCounts, error) {
	logger := domain.LoggerFromContext(ctx)

	ids := uniqueIDs(req.SubjectIDs)
	if len(ids) == 0 {
		return map[string]domain.AggregateCounts{}, nil
	}

	counts, err := c.Buffer.GetCounts(ctx, req.SubjectType, ids)
	if err != nil {
		logger.WarnContext(ctx, "unable to read fast store counts, serving durable counts",
			"subject_type", req.SubjectType, "error", err)

		durable, err := c.durableCounts(ctx, req.SubjectType, ids)
		if err != nil {
			return nil, err
		}
		return durable, nil
	}

	if counts == nil {
		counts = make(map[string]domain.AggregateCounts, len(ids))
	}

	var missing []string
	for _, id := range ids {
		if _, ok := counts[id]; !ok {
			missing = append(missing, id)
		}
	}
	if len(missing) == 0 {
		return counts, nil
	}

	durable, err := c.durableCounts(ctx, req.SubjectType, missing)
	if err != nil {
		return nil, err
	}

	seed := make([]domain.AggregateCounts, 0, len(missing))
	for _, id := range missing {
		counts[id] = durable[id]
		seed = append(seed, durable[id])
	}

	if err := c.Seeder.SeedCounts(ctx, req.SubjectType, seed); err != nil {
		logger.WarnContext(ctx, "unable to seed fast store counts",
			"subject_type", req.SubjectType, "count", len(seed), "error", err)
	}

	return counts, nil
}

func (c *GetAggregateCounts) durableCounts(
	ctx context.Context, subjectType domain.SubjectType, ids []string,
) (map[string]domain.AggregateCounts, error) {
	durable, err := c.Durable.GetDurableCounts(ctx, subjectType, ids)
	if err != nil {
		return nil, fmt.Errorf("loading durable counts: %w", err)
	}

	result := make(map[string]domain.AggregateCounts, len(ids))
	for _, id := range ids {
		counts := durable[id]
		counts.SubjectID = id
		result[id] = counts
	}
	return result, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
