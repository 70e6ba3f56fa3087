package domain

import (
	"errors"
	"strings"
)

var ErrUnknownMetric = errors.New("unknown metric")

// Metric selects which summed fact drives rankings and growth.
type Metric string

const (
	MetricRequests Metric = "requests"
	MetricUsers    Metric = "users"
	MetricVolume   Metric = "volume"
)

// ParseMetric accepts the metric name case-insensitively; empty means requests.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "requests", "total_requests":
		return MetricRequests, nil
	case "users", "unique_users":
		return MetricUsers, nil
	case "volume", "tx_volume_usd":
		return MetricVolume, nil
	default:
		return "", ErrUnknownMetric
	}
}

// Value extracts the metric from a bucket as a float for ranking and growth math.
func (m Metric) Value(b AggregateBucket) float64 {
	switch m {
	case MetricUsers:
		return float64(b.UniqueUsers)
	case MetricVolume:
		return b.TxVolumeUSD.InexactFloat64()
	default:
		return float64(b.TotalRequests)
	}
}
