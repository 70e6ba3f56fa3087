package domain

// CrossFilter is the mutually exclusive selection shared by the growth cards.
// At most one of the two fields is non-empty.
type CrossFilter struct {
	ByCategory string `json:"filtered_by_category,omitempty"`
	ByCountry  string `json:"filtered_by_country,omitempty"`
}

// DashboardState is everything the UI has selected. The engine reads it and never keeps it.
type DashboardState struct {
	Chain    string    // home chain
	Range    DateRange // active period, inclusive
	Country  string    // optional row filter
	Category string    // optional row filter
	Cross    CrossFilter
	Metric   Metric
}

// SliderRange is the pair of thumb values of the dual-range slider.
type SliderRange struct {
	Left  int `json:"left"`
	Right int `json:"right"`
}
