package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivolan/listing_analyzer/domain/models"
)

// hundredListings builds a partition whose 90th percentiles are exactly
// 50 reviews and 2.0 reviews per month.
func hundredListings() []models.Listing {
	var listings []models.Listing
	add := func(n int, reviews int, rate float64) {
		for i := 0; i < n; i++ {
			listings = append(listings, models.Listing{
				ID:              int64(len(listings) + 1),
				Group:           models.GroupQueens,
				NumberOfReviews: reviews,
				ReviewsPerMonth: rate,
			})
		}
	}
	add(88, 10, 1.0)
	add(1, 51, 1.5) // id 89: fails the rate predicate
	add(1, 60, 2.5) // id 90: passes both
	add(7, 70, 3.0)
	add(1, 10, 2.2)
	add(2, 50, 2.0)
	return listings
}

func ids(listings []models.Listing) []int64 {
	out := make([]int64, 0, len(listings))
	for _, l := range listings {
		out = append(out, l.ID)
	}
	return out
}

func TestFindTopPerformers(t *testing.T) {
	listings := hundredListings()
	require.Len(t, listings, 100)

	top := FindTopPerformers(listings)
	assert.Equal(t, 50.0, top.ReviewsThreshold)
	assert.Equal(t, 2.0, top.RateThreshold)

	assert.NotContains(t, ids(top.Listings), int64(89))
	assert.Contains(t, ids(top.Listings), int64(90))
	assert.Len(t, top.Listings, 8)

	for _, l := range top.Listings {
		assert.Greater(t, float64(l.NumberOfReviews), top.ReviewsThreshold)
		assert.Greater(t, l.ReviewsPerMonth, top.RateThreshold)
	}
}

func TestFindTopPerformersSmallPartition(t *testing.T) {
	tests := []struct {
		name     string
		listings []models.Listing
	}{
		{"empty", nil},
		{"single", []models.Listing{{ID: 1, NumberOfReviews: 5, ReviewsPerMonth: 1}}},
		{"equal values", []models.Listing{
			{ID: 1, NumberOfReviews: 5, ReviewsPerMonth: 1},
			{ID: 2, NumberOfReviews: 5, ReviewsPerMonth: 1},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Empty(t, FindTopPerformers(tt.listings).Listings)
		})
	}
}

func TestSelectComplement(t *testing.T) {
	listings := hundredListings()
	top := FindTopPerformers(listings).Listings
	others := SelectComplement(listings, top)

	assert.Len(t, others, len(listings)-len(top))

	seen := make(map[int64]int)
	for _, l := range top {
		seen[l.ID]++
	}
	for _, l := range others {
		seen[l.ID]++
	}
	// disjoint, and together they rebuild the partition
	require.Len(t, seen, len(listings))
	for id, n := range seen {
		assert.Equal(t, 1, n, "listing %d", id)
	}
}

func TestSelectComplementKeepsOrder(t *testing.T) {
	original := []models.Listing{{ID: 3}, {ID: 1}, {ID: 2}}
	assert.Equal(t, []int64{3, 2}, ids(SelectComplement(original, []models.Listing{{ID: 1}})))
	assert.Equal(t, []int64{3, 1, 2}, ids(SelectComplement(original, nil)))
	assert.Empty(t, SelectComplement(original, original))
}

func TestPartitionByGroup(t *testing.T) {
	listings := []models.Listing{
		{ID: 1, Group: models.GroupBronx},
		{ID: 2, Group: models.GroupStatenIsland},
		{ID: 3, Group: models.GroupBronx},
	}
	assert.Equal(t, []int64{1, 3}, ids(PartitionByGroup(listings, models.GroupBronx)))
	assert.Equal(t, []int64{2}, ids(PartitionByGroup(listings, models.GroupStatenIsland)))
	assert.Empty(t, PartitionByGroup(listings, models.GroupQueens))
}

func TestQuantile(t *testing.T) {
	values := []float64{5, 1, 4, 2, 3}
	assert.Equal(t, 3.0, Quantile(values, 0.5))
	assert.InDelta(t, 4.6, Quantile(values, 0.9), 1e-9)
	assert.Equal(t, 0.0, Quantile(nil, 0.9))
	// input order is preserved
	assert.Equal(t, []float64{5, 1, 4, 2, 3}, values)
}

func TestAnalyzeNumbers(t *testing.T) {
	assert.Nil(t, AnalyzeNumbers(nil))

	stats := AnalyzeNumbers([]float64{100, 50, 150, 200})
	require.NotNil(t, stats)
	assert.Equal(t, 4, stats.Count)
	assert.Equal(t, 125.0, stats.Average)
	assert.Equal(t, 125.0, stats.Median)
	assert.Equal(t, 50.0, stats.Min)
	assert.Equal(t, 200.0, stats.Max)
	assert.Equal(t, 185.0, stats.Quantiles[0.9])
}
