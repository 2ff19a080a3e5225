package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/pivolan/listing_analyzer/domain/models"
)

// GenerateSummaryTable renders one row per group label.
func GenerateSummaryTable(reports []models.GroupReport) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Group", "Listings", "Top performers", "Others", "P90 reviews", "P90 reviews/month", "Median reviews", "Median price", "Top word"})

	for _, r := range reports {
		topWord := "-"
		if len(r.Words) > 0 && r.Words[0].Count > 0 {
			topWord = fmt.Sprintf("%s (%d)", r.Words[0].Word, r.Words[0].Count)
		}
		medianReviews, medianPrice := "-", "-"
		if r.ReviewsStats != nil {
			medianReviews = fmt.Sprintf("%.2f", r.ReviewsStats.Median)
		}
		if r.PriceStats != nil {
			medianPrice = fmt.Sprintf("%.2f", r.PriceStats.Median)
		}
		t.AppendRow(table.Row{
			r.Label,
			len(r.Partition),
			len(r.Top.Listings),
			len(r.Others),
			fmt.Sprintf("%.2f", r.Top.ReviewsThreshold),
			fmt.Sprintf("%.2f", r.Top.RateThreshold),
			medianReviews,
			medianPrice,
			topWord,
		})
	}

	t.SetStyle(table.StyleDefault)
	return t.Render()
}

// GenerateWordsTable renders the ranked word counts of one group.
func GenerateWordsTable(report models.GroupReport) string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Top words: %s", report.Label))
	t.AppendHeader(table.Row{"#", "Word", "Count"})
	for i, w := range report.Words {
		t.AppendRow(table.Row{i + 1, w.Word, w.Count})
	}
	t.SetStyle(table.StyleDefault)
	return t.Render()
}
