// Package growth compares a period with the equal-length period before it.
package growth

import (
	"chain-usage-dashboard/internal/dashboard/core/aggregate"
	"chain-usage-dashboard/internal/dashboard/core/domain"
)

// NewBaselinePercent is reported when the prior period is empty and the current one is not.
const NewBaselinePercent = 100.0

// CompareGrowth returns the percent change from prior to current.
//
//	prior > 0            -> (current - prior) / prior * 100
//	prior == 0, current > 0 -> 100
//	both 0               -> 0
func CompareGrowth(current, prior float64) float64 {
	if prior > 0 {
		return (current - prior) / prior * 100
	}
	if current > 0 {
		return NewBaselinePercent
	}
	return 0
}

// PriorPeriod returns the window of the same length as r ending the day before r starts.
func PriorPeriod(r domain.DateRange) domain.DateRange {
	start := domain.Truncate(r.Start)
	priorEnd := start.AddDate(0, 0, -1)
	return domain.DateRange{
		Start: priorEnd.AddDate(0, 0, -r.Days()),
		End:   priorEnd,
	}
}

// Compare builds a GrowthResult for the chosen metric.
func Compare(current, prior domain.AggregateBucket, metric domain.Metric) domain.GrowthResult {
	c := metric.Value(current)
	p := metric.Value(prior)
	return domain.GrowthResult{
		CurrentTotal:  c,
		PriorTotal:    p,
		PercentChange: CompareGrowth(c, p),
	}
}

// Candidates computes the growth of every current bucket against the prior
// bucket with the same key, in first-seen order. A key with no prior bucket
// has a zero baseline.
func Candidates(current, prior *aggregate.Buckets, metric domain.Metric, label func(domain.Key) string) []domain.GrowthCandidate {
	items := current.Items()
	out := make([]domain.GrowthCandidate, 0, len(items))
	for _, cur := range items {
		p, _ := prior.Get(cur.Key)
		out = append(out, domain.GrowthCandidate{
			Key:          label(cur.Key),
			GrowthResult: Compare(cur, p, metric),
		})
	}
	return out
}

// Fastest picks the candidate with the highest percent change. The first
// candidate wins a tie. ok is false when there are no candidates.
func Fastest(candidates []domain.GrowthCandidate) (best domain.GrowthCandidate, ok bool) {
	for i, c := range candidates {
		if i == 0 || c.PercentChange > best.PercentChange {
			best = c
			ok = true
		}
	}
	return best, ok
}

// FastestGrowing combines Candidates and Fastest.
func FastestGrowing(current, prior *aggregate.Buckets, metric domain.Metric, label func(domain.Key) string) (domain.GrowthCandidate, bool) {
	return Fastest(Candidates(current, prior, metric, label))
}
