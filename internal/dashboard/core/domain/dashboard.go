package domain

// GrowthResult compares a period with the equal-length period right before it.
type GrowthResult struct {
	CurrentTotal  float64
	PriorTotal    float64
	PercentChange float64
}

// GrowthCandidate is one category or country competing for "fastest growing".
type GrowthCandidate struct {
	Key string
	GrowthResult
}

type GrowthSummary struct {
	Prior           DateRange
	Overall         GrowthResult
	FastestCategory *GrowthCandidate
	FastestCountry  *GrowthCandidate
	Cross           CrossFilter
}

// PeerValue is one peer of a ranking group with its summed metric.
type PeerValue struct {
	Peer  string
	Value float64
}

// DimensionView is a per-country or per-category row of the dashboard.
type DimensionView struct {
	Key       string
	Totals    AggregateBucket
	Rank      int
	PeerCount int
	// Ranked is false when there are not enough peers for the rank to mean anything.
	Ranked bool
	Peers  []PeerValue
}

// SeriesPoint is one (date, chain) point of the time-series chart.
type SeriesPoint struct {
	Date   string
	Chain  string
	Totals AggregateBucket
}

// RegionView joins a geography feature with the country bucket it resolves to.
type RegionView struct {
	Numeric string
	Alpha2  string
	Name    string
	Found   bool
	Totals  AggregateBucket
}

// RangeView pairs the slider values with the dates they stand for.
type RangeView struct {
	Slider SliderRange
	Range  DateRange
}

// Dashboard is the full view-model for one state.
type Dashboard struct {
	Chain  string
	Metric Metric
	Range  RangeView

	Totals     AggregateBucket
	GlobalRank int
	ChainCount int

	Series     []SeriesPoint
	Countries  []DimensionView
	Categories []DimensionView
	Regions    []RegionView
	Growth     GrowthSummary

	// SourceError carries the row source failure message when the engine
	// recovered by aggregating over no rows.
	SourceError string
}
