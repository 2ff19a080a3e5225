package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivolan/listing_analyzer/domain/models"
)

func sampleListings() (top, others []models.Listing) {
	top = []models.Listing{
		{ID: 1, Listing: "Cozy Loft <near> Subway", Group: models.GroupBrooklyn, Latitude: 40.68, Longitude: -73.95,
			RoomType: models.PrivateRoom, Price: 89, NumberOfReviews: 120, ReviewsPerMonth: 4.5},
	}
	others = []models.Listing{
		{ID: 2, Listing: "Quiet Studio", Group: models.GroupBrooklyn, Latitude: 40.70, Longitude: -73.93,
			RoomType: "Entire home/apt", Price: 150, NumberOfReviews: 3, ReviewsPerMonth: 0.2},
	}
	return top, others
}

func TestFileLabel(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Bronx", "Bronx"},
		{"Staten Island", "Staten_Island"},
		{"Overall In New York", "Overall_In_New_York"},
		{"Bergstraße", "Bergstrasse"},
	}
	for _, tt := range tests {
		t.Run(tt.label, func(t *testing.T) {
			assert.Equal(t, tt.want, FileLabel(tt.label))
		})
	}
}

func TestMapPath(t *testing.T) {
	assert.Equal(t, filepath.Join("output", "ny_top_performers_Staten_Island.html"), MapPath("output", "Staten Island"))
}

func TestRenderMap(t *testing.T) {
	top, others := sampleListings()

	b, err := RenderMap("Brooklyn", top, others)
	require.NoError(t, err)
	page := string(b)

	assert.Contains(t, page, "Top performers (1)")
	assert.Contains(t, page, "Other listings (1)")
	assert.Contains(t, page, "L.control.layers")
	assert.Contains(t, page, "Quiet Studio")
	// listing titles are escaped inside the popup markup
	assert.NotContains(t, page, "<near>")
	assert.Contains(t, page, topPerformerColor)
	assert.Contains(t, page, otherColor)
}

func TestRenderMapEmpty(t *testing.T) {
	b, err := RenderMap("Staten Island", nil, nil)
	require.NoError(t, err)
	assert.Contains(t, string(b), "Top performers (0)")
}

func TestRenderMapIsDeterministic(t *testing.T) {
	top, others := sampleListings()
	first, err := RenderMap("Brooklyn", top, others)
	require.NoError(t, err)
	second, err := RenderMap("Brooklyn", top, others)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestCenter(t *testing.T) {
	top, others := sampleListings()
	lat, lng := center(top, others)
	assert.InDelta(t, 40.69, lat, 1e-9)
	assert.InDelta(t, -73.94, lng, 1e-9)

	lat, lng = center(nil)
	assert.Equal(t, defaultLatitude, lat)
	assert.Equal(t, defaultLongitude, lng)
}

func TestWriteMap(t *testing.T) {
	dir := t.TempDir()
	top, others := sampleListings()

	path, err := WriteMap(filepath.Join(dir, "output"), "Brooklyn", top, others)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "output", "ny_top_performers_Brooklyn.html"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(b), "<!DOCTYPE html>"))
}

func TestWriteDashboard(t *testing.T) {
	dir := t.TempDir()
	top, _ := sampleListings()
	words := []models.WordCount{{Word: "cozy", Count: 2}, {Word: "loft", Count: 1}, {Word: "in", Count: 0}}

	path, err := WriteDashboard(dir, "Staten Island", words, top)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "ny_dashboard_Staten_Island.html"), path)

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	page := string(b)
	assert.Contains(t, page, "Staten_Island_words")
	assert.Contains(t, page, "Staten_Island_reviews")
	assert.Contains(t, page, "Staten_Island_rate")

	again, err := RenderDashboard("Staten Island", words, top)
	require.NoError(t, err)
	assert.Equal(t, b, again)
}
