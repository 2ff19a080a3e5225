package main

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pivolan/listing_analyzer/domain/models"
)

const SEPARATOR = ','

// UnknownValue replaces an absent host or listing name.
const UnknownValue = "Unknown"

const (
	colID              = "id"
	colName            = "name"
	colListing         = "listing"
	colHostID          = "host_id"
	colHostName        = "host_name"
	colGroup           = "neighbourhood_group"
	colNeighbourhood   = "neighbourhood"
	colLatitude        = "latitude"
	colLongitude       = "longitude"
	colRoomType        = "room_type"
	colPrice           = "price"
	colMinimumNights   = "minimum_nights"
	colNumberOfReviews = "number_of_reviews"
	colLastReview      = "last_review"
	colReviewsPerMonth = "reviews_per_month"
	colAvailability    = "availability_365"
)

var requiredColumns = []string{
	colID, colGroup, colLatitude, colLongitude, colRoomType, colPrice,
	colNumberOfReviews, colLastReview, colReviewsPerMonth, colAvailability,
}

// LoadListings reads and cleans the dataset at filePath.
func LoadListings(filePath string) ([]models.Listing, error) {
	src, err := openSource(filePath)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", filePath, err)
	}
	defer src.Close()

	listings, err := ReadListings(src)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filePath, err)
	}
	return listings, nil
}

// ReadListings parses CSV rows, drops rows without review signals, fills
// missing names with UnknownValue and exposes "name" as the listing title.
func ReadListings(r io.Reader) ([]models.Listing, error) {
	reader := csv.NewReader(r)
	reader.Comma = SEPARATOR
	reader.LazyQuotes = true

	firstRow, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, &SchemaError{Reason: "input is empty"}
	}
	if err != nil {
		return nil, err
	}

	analysis := AnalyzeHeaders(firstRow)
	if analysis == nil || analysis.FirstRowIsData {
		return nil, &SchemaError{Reason: "header row not found"}
	}
	index := analysis.ColumnIndex()

	// rename name -> listing
	titleCol, ok := index[colName]
	if !ok {
		titleCol, ok = index[colListing]
		if !ok {
			return nil, &SchemaError{Column: colName}
		}
	}
	for _, name := range requiredColumns {
		if _, ok := index[name]; !ok {
			return nil, &SchemaError{Column: name}
		}
	}

	var listings []models.Listing
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, err
		}
		line, _ := reader.FieldPos(0)

		row := rowReader{record: record, index: index, line: line}
		if row.str(colLastReview) == "" || row.str(colReviewsPerMonth) == "" {
			continue
		}

		l := models.Listing{
			ID:               row.integer(colID),
			Listing:          strings.TrimSpace(record[titleCol]),
			HostID:           row.optionalInteger(colHostID),
			HostName:         row.str(colHostName),
			Group:            models.Group(row.str(colGroup)),
			Neighbourhood:    row.str(colNeighbourhood),
			Latitude:         row.float(colLatitude),
			Longitude:        row.float(colLongitude),
			RoomType:         row.str(colRoomType),
			Price:            row.float(colPrice),
			MinimumNights:    int(row.optionalInteger(colMinimumNights)),
			NumberOfReviews:  int(row.integer(colNumberOfReviews)),
			LastReview:       row.str(colLastReview),
			ReviewsPerMonth:  row.float(colReviewsPerMonth),
			AvailabilityDays: int(row.integer(colAvailability)),
		}
		if row.err != nil {
			return nil, row.err
		}
		if l.Listing == "" {
			l.Listing = UnknownValue
		}
		if l.HostName == "" {
			l.HostName = UnknownValue
		}
		listings = append(listings, l)
	}

	return listings, nil
}

// rowReader keeps the first conversion error of a record.
type rowReader struct {
	record []string
	index  map[string]int
	line   int
	err    error
}

func (r *rowReader) str(column string) string {
	i, ok := r.index[column]
	if !ok || i >= len(r.record) {
		return ""
	}
	return strings.TrimSpace(r.record[i])
}

func (r *rowReader) float(column string) float64 {
	value := r.str(column)
	v, err := strconv.ParseFloat(value, 64)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("line %d: column %s: invalid number %q", r.line, column, value)
	}
	return v
}

func (r *rowReader) integer(column string) int64 {
	value := r.str(column)
	if v, err := strconv.ParseInt(value, 10, 64); err == nil {
		return v
	}
	// integers written as floats, e.g. "12.0"
	f, err := strconv.ParseFloat(value, 64)
	if err != nil && r.err == nil {
		r.err = fmt.Errorf("line %d: column %s: invalid integer %q", r.line, column, value)
	}
	return int64(f)
}

func (r *rowReader) optionalInteger(column string) int64 {
	if r.str(column) == "" {
		return 0
	}
	return r.integer(column)
}
