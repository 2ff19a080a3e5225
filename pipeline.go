package main

import (
	"errors"
	"fmt"
	"log"
	"path/filepath"

	"github.com/pivolan/listing_analyzer/config"
	"github.com/pivolan/listing_analyzer/domain/models"
	"github.com/pivolan/listing_analyzer/plot"
	"github.com/pivolan/listing_analyzer/report"
)

type Pipeline struct {
	cfg   *config.Config
	runID string
}

func NewPipeline(cfg *config.Config, runID string) *Pipeline {
	return &Pipeline{cfg: cfg, runID: runID}
}

// renderer produces the artifacts of one kind for a group and returns their paths.
type renderer struct {
	name     string
	needsTop bool
	render   func(p *Pipeline, r models.GroupReport) ([]string, error)
}

var renderers = []renderer{
	{name: "bar", needsTop: true, render: renderWordBar},
	{name: "scatter", needsTop: true, render: renderScatter},
	{name: "combined", needsTop: true, render: renderCombined},
	{name: "map", render: renderMap},
	{name: "dashboard", needsTop: true, render: renderDashboard},
}

// Run applies the same analysis to every borough and then to the whole city.
func (p *Pipeline) Run(listings []models.Listing) []models.GroupReport {
	reports := make([]models.GroupReport, 0, len(models.Groups)+1)
	for _, group := range models.Groups {
		reports = append(reports, p.RunGroup(string(group), PartitionByGroup(listings, group)))
	}
	reports = append(reports, p.RunGroup(models.OverallLabel, listings))
	return reports
}

// RunGroup analyzes one partition and runs the enabled renderers. A failed
// render is logged and counted; it does not stop the other renders.
func (p *Pipeline) RunGroup(label string, partition []models.Listing) models.GroupReport {
	r := Analyze(label, partition, p.cfg.TopWords)
	log.Printf("run %s: %s: %d listings, %d top performers (reviews > %.2f, reviews/month > %.2f)",
		p.runID, label, len(r.Partition), len(r.Top.Listings), r.Top.ReviewsThreshold, r.Top.RateThreshold)

	if err := checkNotEmpty(label, "partition", r.Partition); err != nil {
		log.Printf("run %s: %v, nothing to render", p.runID, err)
		return r
	}
	topErr := checkNotEmpty(label, "top performers", r.Top.Listings)

	for _, rd := range renderers {
		if !p.cfg.Enabled(rd.name) {
			continue
		}
		if rd.needsTop && topErr != nil {
			log.Printf("run %s: skip %s: %v", p.runID, rd.name, topErr)
			continue
		}
		paths, err := rd.render(p, r)
		if err != nil {
			var renderErr *RenderIOError
			if !errors.As(err, &renderErr) {
				err = &RenderIOError{Renderer: rd.name, Err: err}
			}
			log.Printf("run %s: %s: %v", p.runID, label, err)
			r.RenderFailures++
			continue
		}
		for _, path := range paths {
			log.Printf("run %s: %s: wrote %s", p.runID, label, path)
		}
	}
	return r
}

// Analyze derives the top performers, their common words and the
// complement of a partition. It has no side effects.
func Analyze(label string, partition []models.Listing, topWords int) models.GroupReport {
	top := FindTopPerformers(partition)
	return models.GroupReport{
		Label:        label,
		Partition:    partition,
		Top:          top,
		Others:       SelectComplement(partition, top.Listings),
		Words:        TopWords(top.Listings, topWords),
		PriceStats:   AnalyzeNumbers(prices(partition)),
		ReviewsStats: AnalyzeNumbers(reviewCounts(partition)),
	}
}

func checkNotEmpty(label, what string, listings []models.Listing) error {
	if len(listings) == 0 {
		return &EmptyPartitionError{Label: label, What: what}
	}
	return nil
}

func (p *Pipeline) chartPath(kind, label string) string {
	return filepath.Join(p.cfg.ChartsDir, fmt.Sprintf("%s_%s.png", kind, report.FileLabel(label)))
}

func writeChart(name, path string, draw func() ([]byte, error)) error {
	data, err := draw()
	if err != nil {
		return &RenderIOError{Renderer: name, Path: path, Err: err}
	}
	if err := report.WriteArtifact(path, data); err != nil {
		return &RenderIOError{Renderer: name, Path: path, Err: err}
	}
	return nil
}

func renderWordBar(p *Pipeline, r models.GroupReport) ([]string, error) {
	words := make([]string, len(r.Words))
	counts := make([]float64, len(r.Words))
	for i, w := range r.Words {
		words[i] = w.Word
		counts[i] = float64(w.Count)
	}
	data := plot.NewDataWordsForGraph(words, counts, "Frequency", fmt.Sprintf("Top %d Words", len(words)),
		fmt.Sprintf("Top %d Most Common Words In Top Performers In %s", len(words), r.Label))

	path := p.chartPath("top_words", r.Label)
	return []string{path}, writeChart("bar", path, func() ([]byte, error) {
		return plot.DrawWordBar(data)
	})
}

// scatterColumns extracts the top performer values both scatter views plot.
func scatterColumns(listings []models.Listing) (reviews, rate, price []float64, rooms []string) {
	for _, l := range listings {
		reviews = append(reviews, float64(l.NumberOfReviews))
		rate = append(rate, l.ReviewsPerMonth)
		price = append(price, l.Price)
		rooms = append(rooms, l.RoomType)
	}
	return
}

func renderScatter(p *Pipeline, r models.GroupReport) ([]string, error) {
	reviews, rate, price, rooms := scatterColumns(r.Top.Listings)

	reviewsPath := p.chartPath("scatter_reviews_price", r.Label)
	if err := writeChart("scatter", reviewsPath, func() ([]byte, error) {
		return plot.DrawScatter(plot.NewDataScatterForGraph(reviews, price, rooms,
			"Number of reviews", "Price", fmt.Sprintf("Reviews vs Price Of Top Performers In %s", r.Label)))
	}); err != nil {
		return nil, err
	}

	ratePath := p.chartPath("scatter_rate_price", r.Label)
	if err := writeChart("scatter", ratePath, func() ([]byte, error) {
		return plot.DrawScatter(plot.NewDataScatterForGraph(rate, price, rooms,
			"Reviews per month", "Price", fmt.Sprintf("Reviews Per Month vs Price Of Top Performers In %s", r.Label)))
	}); err != nil {
		return []string{reviewsPath}, err
	}
	return []string{reviewsPath, ratePath}, nil
}

func renderCombined(p *Pipeline, r models.GroupReport) ([]string, error) {
	reviews, rate, price, rooms := scatterColumns(r.Top.Listings)

	path := p.chartPath("scatter_combined", r.Label)
	return []string{path}, writeChart("combined", path, func() ([]byte, error) {
		return plot.DrawCombinedScatter(
			plot.NewDataScatterForGraph(reviews, price, rooms, "Number of reviews", "Price",
				fmt.Sprintf("Reviews vs Price In %s", r.Label)),
			plot.NewDataScatterForGraph(rate, price, rooms, "Reviews per month", "Price",
				fmt.Sprintf("Reviews Per Month vs Price In %s", r.Label)),
		)
	})
}

func renderMap(p *Pipeline, r models.GroupReport) ([]string, error) {
	path, err := report.WriteMap(p.cfg.OutputDir, r.Label, r.Top.Listings, r.Others)
	if err != nil {
		return nil, &RenderIOError{Renderer: "map", Path: report.MapPath(p.cfg.OutputDir, r.Label), Err: err}
	}
	return []string{path}, nil
}

func renderDashboard(p *Pipeline, r models.GroupReport) ([]string, error) {
	path, err := report.WriteDashboard(p.cfg.OutputDir, r.Label, r.Words, r.Top.Listings)
	if err != nil {
		return nil, &RenderIOError{Renderer: "dashboard", Path: report.DashboardPath(p.cfg.OutputDir, r.Label), Err: err}
	}
	return []string{path}, nil
}
