package plot

import (
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

var (
	barFillColor   = drawing.ColorFromHex("add8e6") // lightblue
	barStrokeColor = drawing.ColorBlack
)

type dataWordsForGraph struct {
	words     []string
	counts    []float64
	nameXAxis string
	nameYAxis string
	nameGraph string
}

// NewDataWordsForGraph describes a word frequency table. Words are drawn in
// the given order, the first one at the top.
func NewDataWordsForGraph(words []string, counts []float64, nameXAxis, nameYAxis, nameGraph string) dataWordsForGraph {
	return dataWordsForGraph{
		words:     words,
		counts:    counts,
		nameXAxis: nameXAxis,
		nameYAxis: nameYAxis,
		nameGraph: nameGraph,
	}
}

func (d dataWordsForGraph) GetNameGraph() string {
	return d.nameGraph
}
func (d dataWordsForGraph) getNameXAxis() string {
	return d.nameXAxis
}
func (d dataWordsForGraph) getNameYAxis() string {
	return d.nameYAxis
}
func (d dataWordsForGraph) getYValues() []float64 {
	return d.counts
}

func (d dataWordsForGraph) lenXValues() int {
	return len(d.words)
}

// calculateChartDimensions grows the canvas height with the number of bars.
func (d dataWordsForGraph) calculateChartDimensions(barHeight float64) (width, height int) {
	if len(d.counts) == 0 || d.lenXValues() <= 0 || barHeight <= 0 {
		return 0, 0
	}

	const (
		chartWidth   = 1200
		paddingY     = 140 // title on top, tick labels and axis name below
		spacingRatio = 0.3
	)

	barSpacing := barHeight * spacingRatio
	height = int((barHeight+barSpacing)*float64(d.lenXValues())) + paddingY
	return chartWidth, height
}

func (d dataWordsForGraph) generateBarValues() []chart.Value {
	n := d.lenXValues()
	if len(d.counts) < n {
		n = len(d.counts)
	}
	bars := make([]chart.Value, 0, n)
	for i := 0; i < n; i++ {
		bars = append(bars, chart.Value{
			Value: d.counts[i],
			Label: d.words[i],
			Style: chart.Style{
				FillColor:   barFillColor,
				StrokeColor: barStrokeColor,
				StrokeWidth: 1,
			},
		})
	}
	return bars
}
