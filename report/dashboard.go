package report

import (
	"bytes"
	"fmt"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/pivolan/listing_analyzer/domain/models"
)

const (
	privateRoomColor = "#d62728"
	otherRoomColor   = "#1f77b4"
	chartWidth       = "1000px"
	chartHeight      = "560px"
)

// RenderDashboard builds a go-echarts page with the word frequency bars and
// both scatter views of the top performers. Chart ids are derived from the
// label so that repeated runs produce identical files.
func RenderDashboard(label string, words []models.WordCount, top []models.Listing) ([]byte, error) {
	id := FileLabel(label)

	page := components.NewPage()
	page.PageTitle = fmt.Sprintf("Top performers: %s", label)
	page.AddCharts(
		wordsBar(id, label, words),
		priceScatter(id+"_reviews", fmt.Sprintf("Reviews vs Price In %s", label), "Number of reviews", top,
			func(l models.Listing) float64 { return float64(l.NumberOfReviews) }),
		priceScatter(id+"_rate", fmt.Sprintf("Reviews Per Month vs Price In %s", label), "Reviews per month", top,
			func(l models.Listing) float64 { return l.ReviewsPerMonth }),
	)

	buffer := bytes.NewBuffer([]byte{})
	if err := page.Render(buffer); err != nil {
		return nil, fmt.Errorf("error rendering dashboard: %v", err)
	}
	return buffer.Bytes(), nil
}

// WriteDashboard renders the dashboard to DashboardPath(outputDir, label).
func WriteDashboard(outputDir, label string, words []models.WordCount, top []models.Listing) (string, error) {
	data, err := RenderDashboard(label, words, top)
	if err != nil {
		return "", err
	}
	path := DashboardPath(outputDir, label)
	return path, WriteArtifact(path, data)
}

func wordsBar(id, label string, words []models.WordCount) *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{ChartID: id + "_words", Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Top %d Most Common Words In Top Performers In %s", len(words), label)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Frequency", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Words", Type: "category"}),
	)

	// category axes grow upwards, feed the most common word last so it is on top
	labels := make([]string, len(words))
	items := make([]opts.BarData, len(words))
	for i, w := range words {
		j := len(words) - 1 - i
		labels[j] = w.Word
		items[j] = opts.BarData{Name: w.Word, Value: w.Count}
	}

	bar.SetXAxis(labels).
		AddSeries("Frequency", items, charts.WithItemStyleOpts(opts.ItemStyle{Color: "#add8e6", BorderColor: "#000000"})).
		XYReversal()
	return bar
}

func priceScatter(id, title, xName string, listings []models.Listing, x func(models.Listing) float64) *charts.Scatter {
	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{ChartID: id, Width: chartWidth, Height: chartHeight}),
		charts.WithTitleOpts(opts.Title{Title: title}),
		charts.WithXAxisOpts(opts.XAxis{Name: xName, Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Price", Type: "value"}),
	)

	var private, other []opts.ScatterData
	for _, l := range listings {
		point := opts.ScatterData{Name: l.Listing, Value: []interface{}{x(l), l.Price}}
		if l.RoomType == models.PrivateRoom {
			private = append(private, point)
		} else {
			other = append(other, point)
		}
	}

	scatter.AddSeries(models.PrivateRoom, private, charts.WithItemStyleOpts(opts.ItemStyle{Color: privateRoomColor}))
	scatter.AddSeries("Other room types", other, charts.WithItemStyleOpts(opts.ItemStyle{Color: otherRoomColor}))
	return scatter
}
