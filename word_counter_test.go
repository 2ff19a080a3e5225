package main

import (
	"fmt"
	"testing"

	"github.com/pivolan/go_utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pivolan/listing_analyzer/domain/models"
)

func titled(titles ...string) []models.Listing {
	listings := make([]models.Listing, len(titles))
	for i, title := range titles {
		listings[i] = models.Listing{ID: int64(i + 1), Listing: title}
	}
	return listings
}

func TestTokenizeListing(t *testing.T) {
	tests := []struct {
		input string
		want  []string
	}{
		{"Cozy Loft in Brooklyn", []string{"cozy", "loft", "in", "brooklyn"}},
		{"Large Cozy 1 BR Apartment, In Midtown East", []string{"large", "cozy", "1", "br", "apartment", "in", "midtown", "east"}},
		{"THE VILLAGE OF HARLEM....NEW YORK !", []string{"the", "village", "of", "harlemnew", "york"}},
		{"Sunny  room_2 near   park!!", []string{"sunny", "room_2", "near", "park"}},
		{"Café & Bäckerei", []string{"café", "bäckerei"}},
		{"", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, TokenizeListing(tt.input))
		})
	}
}

func TestTopWords(t *testing.T) {
	words := TopWords(titled("Cozy Loft in Brooklyn", "Loft near Subway", "Cozy Studio"), 15)

	assert.Equal(t, []models.WordCount{
		{Word: "cozy", Count: 2},
		{Word: "loft", Count: 2},
		{Word: "brooklyn", Count: 1},
		{Word: "studio", Count: 1},
		{Word: "subway", Count: 1},
		{Word: "in", Count: 0},
		{Word: "near", Count: 0},
	}, words)
}

func TestTopWordsLimit(t *testing.T) {
	var titles []string
	for i := 0; i < 30; i++ {
		titles = append(titles, fmt.Sprintf("word%02d the", i))
	}
	titles = append(titles, "word05 word07 the")

	words := TopWords(titled(titles...), 15)
	require.Len(t, words, 15)
	assert.Equal(t, models.WordCount{Word: "word05", Count: 2}, words[0])
	assert.Equal(t, models.WordCount{Word: "word07", Count: 2}, words[1])

	for i, w := range words {
		if go_utils.InArray(w.Word, Stopwords) {
			assert.Zero(t, w.Count, w.Word)
		}
		if i > 0 {
			assert.LessOrEqual(t, w.Count, words[i-1].Count)
		}
		// the most frequent token is a stopword and falls out of the ranking
		assert.NotEqual(t, "the", w.Word)
	}
}

func TestTopWordsNoLimit(t *testing.T) {
	words := TopWords(titled("a b c d"), 0)
	assert.Len(t, words, 4)
	assert.Empty(t, TopWords(nil, 15))
}
