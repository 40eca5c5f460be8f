package command

import (
	"context"
	"errors"
	"testing"

	"github.com/jbeshir/community-feed/internal/datasources/mocks"
	"github.com/jbeshir/community-feed/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestGetAggregateCounts_Execute(t *testing.T) {
	live := domain.AggregateCounts{SubjectID: "p1", LikeCount: 10}
	durable := domain.AggregateCounts{SubjectID: "p2", LikeCount: 3}

	cases := []struct {
		name      string
		ids       []string
		setup     func(buffer *mocks.MockAggregateCountsGetter, seeder *mocks.MockAggregateCountsSeeder, store *mocks.MockDurableCountsGetter)
		expected  map[string]domain.AggregateCounts
		wantErr   bool
		errSubstr string
	}{
		{
			name:     "no_ids",
			ids:      []string{"", ""},
			setup:    func(*mocks.MockAggregateCountsGetter, *mocks.MockAggregateCountsSeeder, *mocks.MockDurableCountsGetter) {},
			expected: map[string]domain.AggregateCounts{},
		},
		{
			name: "all_in_fast_store",
			ids:  []string{"p1", "p1"},
			setup: func(buffer *mocks.MockAggregateCountsGetter, _ *mocks.MockAggregateCountsSeeder, _ *mocks.MockDurableCountsGetter) {
				buffer.EXPECT().GetCounts(mock.Anything, domain.SubjectTypePost, []string{"p1"}).
					Return(map[string]domain.AggregateCounts{"p1": live}, nil)
			},
			expected: map[string]domain.AggregateCounts{"p1": live},
		},
		{
			name: "misses_seeded_from_durable",
			ids:  []string{"p1", "p2", "p3"},
			setup: func(buffer *mocks.MockAggregateCountsGetter, seeder *mocks.MockAggregateCountsSeeder, store *mocks.MockDurableCountsGetter) {
				buffer.EXPECT().GetCounts(mock.Anything, domain.SubjectTypePost, []string{"p1", "p2", "p3"}).
					Return(map[string]domain.AggregateCounts{"p1": live}, nil)
				store.EXPECT().GetDurableCounts(mock.Anything, domain.SubjectTypePost, []string{"p2", "p3"}).
					Return(map[string]domain.AggregateCounts{"p2": durable}, nil)
				seeder.EXPECT().SeedCounts(mock.Anything, domain.SubjectTypePost, []domain.AggregateCounts{
					durable, {SubjectID: "p3"},
				}).Return(errors.New("seed failed"))
			},
			expected: map[string]domain.AggregateCounts{
				"p1": live,
				"p2": durable,
				"p3": {SubjectID: "p3"},
			},
		},
		{
			name: "fast_store_down_serves_durable",
			ids:  []string{"p1", "p2"},
			setup: func(buffer *mocks.MockAggregateCountsGetter, _ *mocks.MockAggregateCountsSeeder, store *mocks.MockDurableCountsGetter) {
				buffer.EXPECT().GetCounts(mock.Anything, domain.SubjectTypePost, []string{"p1", "p2"}).
					Return(nil, errors.New("redis down"))
				store.EXPECT().GetDurableCounts(mock.Anything, domain.SubjectTypePost, []string{"p1", "p2"}).
					Return(map[string]domain.AggregateCounts{"p2": durable}, nil)
			},
			expected: map[string]domain.AggregateCounts{
				"p1": {SubjectID: "p1"},
				"p2": durable,
			},
		},
		{
			name: "both_stores_down",
			ids:  []string{"p1"},
			setup: func(buffer *mocks.MockAggregateCountsGetter, _ *mocks.MockAggregateCountsSeeder, store *mocks.MockDurableCountsGetter) {
				buffer.EXPECT().GetCounts(mock.Anything, domain.SubjectTypePost, []string{"p1"}).
					Return(nil, errors.New("redis down"))
				store.EXPECT().GetDurableCounts(mock.Anything, domain.SubjectTypePost, []string{"p1"}).
					Return(nil, errors.New("db down"))
			},
			wantErr:   true,
			errSubstr: "loading durable counts",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buffer := mocks.NewMockAggregateCountsGetter(t)
			seeder := mocks.NewMockAggregateCountsSeeder(t)
			store := mocks.NewMockDurableCountsGetter(t)
			tc.setup(buffer, seeder, store)

			cmd := NewGetAggregateCounts(buffer, seeder, store)
			result, err := cmd.Execute(context.Background(), GetAggregateCountsRequest{
				SubjectType: domain.SubjectTypePost,
				SubjectIDs:  tc.ids,
			})

			if tc.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errSubstr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expected, result)
		})
	}
}
