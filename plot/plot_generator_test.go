package plot

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCalculateGridStep(t *testing.T) {
	tests := []struct {
		name string
		max  float64
		want float64
	}{
		{"zero", 0, 0},
		{"negative", -5, 0},
		{"tens", 50, 10},
		{"hundreds", 365, 100},
		{"small", 2.5, 1},
		{"thousands", 9000, 2000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, calculateGridStep(tt.max), 1e-9)
		})
	}
}

func TestGenerateTicks(t *testing.T) {
	top, ticks := generateTicks(47)
	assert.Equal(t, 50.0, top)
	require.Len(t, ticks, 6)
	assert.Equal(t, "0", ticks[0].Label)
	assert.Equal(t, "50", ticks[5].Label)

	top, ticks = generateTicks(0)
	assert.Equal(t, 1.0, top)
	assert.Len(t, ticks, 2)
}

func TestDrawWordBar(t *testing.T) {
	data := NewDataWordsForGraph(
		[]string{"cozy", "loft", "studio"},
		[]float64{2, 2, 1},
		"Frequency", "Top 15 Words", "Top 15 Most Common Words In Top Performers In Brooklyn",
	)

	b, err := DrawWordBar(data)
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(b))
	require.NoError(t, err)
	width, height := data.calculateChartDimensions(wordBarHeight)
	assert.Equal(t, width, cfg.Width)
	assert.Equal(t, height, cfg.Height)
}

func TestDrawWordBarZeroCounts(t *testing.T) {
	data := NewDataWordsForGraph([]string{"in", "near"}, []float64{0, 0}, "Frequency", "Words", "stopwords only")
	_, err := DrawWordBar(data)
	assert.NoError(t, err)
}

func TestDrawWordBarEmpty(t *testing.T) {
	_, err := DrawWordBar(NewDataWordsForGraph(nil, nil, "x", "y", "empty"))
	assert.Error(t, err)
}

func TestDrawWordBarIsDeterministic(t *testing.T) {
	data := NewDataWordsForGraph([]string{"a", "b"}, []float64{3, 1}, "x", "y", "same")
	first, err := DrawWordBar(data)
	require.NoError(t, err)
	second, err := DrawWordBar(data)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestScatterSplitByRoomType(t *testing.T) {
	data := NewDataScatterForGraph(
		[]float64{1, 2, 3},
		[]float64{100, 200, 300},
		[]string{PrivateRoom, "Entire home/apt", "Shared room"},
		"Reviews", "Price", "split",
	)
	privX, privY, otherX, otherY := data.split()
	assert.Equal(t, []float64{1}, privX)
	assert.Equal(t, []float64{100}, privY)
	assert.Equal(t, []float64{2, 3}, otherX)
	assert.Equal(t, []float64{200, 300}, otherY)
	assert.Len(t, data.generateSeries(), 2)
}

func TestDrawScatter(t *testing.T) {
	data := NewDataScatterForGraph(
		[]float64{10, 250, 40, 90},
		[]float64{75, 120, 60, 300},
		[]string{PrivateRoom, "Entire home/apt", PrivateRoom, "Entire home/apt"},
		"Number of reviews", "Price", "Reviews vs Price In Queens",
	)
	b, err := DrawScatter(data)
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, scatterWidth, cfg.Width)
	assert.Equal(t, scatterHeight, cfg.Height)
}

func TestDrawScatterNoPoints(t *testing.T) {
	_, err := DrawScatter(NewDataScatterForGraph(nil, nil, nil, "x", "y", "empty"))
	assert.Error(t, err)
}

func TestDrawCombinedScatter(t *testing.T) {
	rooms := []string{PrivateRoom, "Entire home/apt"}
	left := NewDataScatterForGraph([]float64{10, 20}, []float64{50, 80}, rooms, "Number of reviews", "Price", "left")
	right := NewDataScatterForGraph([]float64{1.5, 4.2}, []float64{50, 80}, rooms, "Reviews per month", "Price", "right")

	b, err := DrawCombinedScatter(left, right)
	require.NoError(t, err)

	cfg, err := png.DecodeConfig(bytes.NewReader(b))
	require.NoError(t, err)
	assert.Equal(t, 2*scatterWidth, cfg.Width)
	assert.Equal(t, scatterHeight, cfg.Height)
}
