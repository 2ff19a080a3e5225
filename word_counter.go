package main

import (
	"regexp"
	"sort"
	"strings"

	"github.com/pivolan/go_utils"
	"github.com/pivolan/listing_analyzer/domain/models"
)

// Stopwords keep their place in the counts but are forced to zero.
var Stopwords = []string{"and", "in", "on", "the", "to", "by", "with", "near", "1", "2", "of", "from"}

var punctuationRe = regexp.MustCompile(`[^\p{L}\p{N}_\s]`)

func RemovePunctuation(text string) string {
	return punctuationRe.ReplaceAllString(text, "")
}

// TokenizeListing lowercases a title, drops punctuation and splits on whitespace.
func TokenizeListing(title string) []string {
	return strings.Fields(RemovePunctuation(strings.ToLower(title)))
}

// CountWords counts every token of every listing title.
func CountWords(listings []models.Listing) map[string]int64 {
	counts := make(map[string]int64)
	for _, l := range listings {
		for _, token := range TokenizeListing(l.Listing) {
			counts[token]++
		}
	}
	return counts
}

// TopWords returns up to limit most common title words. Stopwords stay in the
// ranking with a zero count; ties are ordered alphabetically.
func TopWords(listings []models.Listing, limit int) []models.WordCount {
	counts := CountWords(listings)

	words := make([]models.WordCount, 0, len(counts))
	for word, count := range counts {
		if go_utils.InArray(word, Stopwords) {
			count = 0
		}
		words = append(words, models.WordCount{Word: word, Count: count})
	}

	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})

	if limit > 0 && len(words) > limit {
		words = words[:limit]
	}
	return words
}
