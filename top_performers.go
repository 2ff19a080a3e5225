package main

import (
	"github.com/pivolan/listing_analyzer/domain/models"
)

// TopPercentile is the quantile both review signals must exceed.
const TopPercentile = 0.90

// FindTopPerformers keeps listings whose number_of_reviews and
// reviews_per_month are both strictly above the 90th percentile of the input.
// Small inputs may legitimately yield no listings.
func FindTopPerformers(listings []models.Listing) models.TopPerformers {
	result := models.TopPerformers{
		ReviewsThreshold: Quantile(reviewCounts(listings), TopPercentile),
		RateThreshold:    Quantile(reviewRates(listings), TopPercentile),
	}
	for _, l := range listings {
		if float64(l.NumberOfReviews) > result.ReviewsThreshold && l.ReviewsPerMonth > result.RateThreshold {
			result.Listings = append(result.Listings, l)
		}
	}
	return result
}

// SelectComplement returns the listings of original whose ID is absent from top.
func SelectComplement(original, top []models.Listing) []models.Listing {
	topIDs := make(map[int64]struct{}, len(top))
	for _, l := range top {
		topIDs[l.ID] = struct{}{}
	}

	var others []models.Listing
	for _, l := range original {
		if _, ok := topIDs[l.ID]; !ok {
			others = append(others, l)
		}
	}
	return others
}
