// number_analyzer.go
package main

import (
	"math"
	"sort"

	"github.com/pivolan/listing_analyzer/domain/models"
)

// calculateQuantile вычисляет квантиль заданного уровня.
// sorted must be ascending; positions between ranks are interpolated linearly.
func calculateQuantile(sorted []float64, p float64) float64 {
	if len(sorted) == 0 {
		return 0
	}

	pos := p * float64(len(sorted)-1)
	floor := math.Floor(pos)
	ceil := math.Ceil(pos)

	if floor == ceil {
		return sorted[int(pos)]
	}

	lower := sorted[int(floor)]
	upper := sorted[int(ceil)]
	fraction := pos - floor

	return lower + fraction*(upper-lower)
}

// Quantile returns the p-quantile of values without modifying them.
func Quantile(values []float64, p float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)
	return calculateQuantile(sorted, p)
}

// AnalyzeNumbers вычисляет статистические метрики для массива чисел
func AnalyzeNumbers(numbers []float64) *models.NumberStats {
	if len(numbers) == 0 {
		return nil
	}

	sorted := make([]float64, len(numbers))
	copy(sorted, numbers)
	sort.Float64s(sorted)

	sum := 0.0
	for _, num := range numbers {
		sum += num
	}
	avg := sum / float64(len(numbers))

	quantiles := make(map[float64]float64)
	for _, p := range []float64{0.1, 0.25, 0.75, 0.9} {
		quantiles[p] = roundToTwo(calculateQuantile(sorted, p))
	}

	return &models.NumberStats{
		Average:   roundToTwo(avg),
		Median:    roundToTwo(calculateQuantile(sorted, 0.5)),
		Min:       roundToTwo(sorted[0]),
		Max:       roundToTwo(sorted[len(sorted)-1]),
		Count:     len(numbers),
		Quantiles: quantiles,
	}
}

func roundToTwo(num float64) float64 {
	return math.Round(num*100) / 100
}

func prices(listings []models.Listing) []float64 {
	out := make([]float64, len(listings))
	for i, l := range listings {
		out[i] = l.Price
	}
	return out
}

func reviewCounts(listings []models.Listing) []float64 {
	out := make([]float64, len(listings))
	for i, l := range listings {
		out[i] = float64(l.NumberOfReviews)
	}
	return out
}

func reviewRates(listings []models.Listing) []float64 {
	out := make([]float64, len(listings))
	for i, l := range listings {
		out[i] = l.ReviewsPerMonth
	}
	return out
}
