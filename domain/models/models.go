package models

type Group string

const (
	GroupBronx        Group = "Bronx"
	GroupBrooklyn     Group = "Brooklyn"
	GroupManhattan    Group = "Manhattan"
	GroupQueens       Group = "Queens"
	GroupStatenIsland Group = "Staten Island"
)

// Groups is the fixed borough enumeration the pipeline iterates over.
var Groups = []Group{GroupBronx, GroupBrooklyn, GroupManhattan, GroupQueens, GroupStatenIsland}

// OverallLabel names the pass over the whole city.
const OverallLabel = "Overall In New York"

const PrivateRoom = "Private room"

// Listing is one cleaned row of the rental dataset.
type Listing struct {
	ID               int64
	Listing          string // "name" column, renamed on load
	HostID           int64
	HostName         string
	Group            Group // neighbourhood_group
	Neighbourhood    string
	Latitude         float64
	Longitude        float64
	RoomType         string
	Price            float64
	MinimumNights    int
	NumberOfReviews  int
	LastReview       string
	ReviewsPerMonth  float64
	AvailabilityDays int // availability_365
}

type WordCount struct {
	Word  string
	Count int64
}

// TopPerformers is the result of the dual-percentile filter.
type TopPerformers struct {
	Listings         []Listing
	ReviewsThreshold float64
	RateThreshold    float64
}

// GroupReport collects everything derived for one group label.
type GroupReport struct {
	Label          string
	Partition      []Listing
	Top            TopPerformers
	Others         []Listing
	Words          []WordCount
	PriceStats     *NumberStats
	ReviewsStats   *NumberStats
	RenderFailures int
}

type NumberStats struct {
	Average   float64
	Median    float64
	Min       float64
	Max       float64
	Count     int
	Quantiles map[float64]float64
}
