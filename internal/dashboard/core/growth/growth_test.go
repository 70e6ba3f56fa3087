package growth_test

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chain-usage-dashboard/internal/dashboard/core/aggregate"
	"chain-usage-dashboard/internal/dashboard/core/domain"
	"chain-usage-dashboard/internal/dashboard/core/growth"
)

func TestCompareGrowth(t *testing.T) {
	tests := []struct {
		name           string
		current, prior float64
		want           float64
	}{
		{"both zero", 0, 0, 0},
		{"new baseline", 120, 0, 100},
		{"tiny new baseline", 0.5, 0, 100},
		{"up half", 150, 100, 50},
		{"down half", 50, 100, -50},
		{"flat", 100, 100, 0},
		{"to zero", 0, 100, -100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := growth.CompareGrowth(tt.current, tt.prior)
			assert.False(t, math.IsNaN(got))
			assert.False(t, math.IsInf(got, 0))
			assert.InDelta(t, tt.want, got, 1e-9)
		})
	}
}

func day(s string) time.Time {
	d, err := domain.ParseDay(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestPriorPeriod_ContiguousAndDisjoint(t *testing.T) {
	tests := []struct {
		from, to           string
		priorFrom, priorTo string
	}{
		{"2025-06-10", "2025-06-19", "2025-05-31", "2025-06-09"},
		{"2025-06-10", "2025-06-10", "2025-06-09", "2025-06-09"},
		{"2025-03-01", "2025-03-31", "2025-01-29", "2025-02-28"},
		{"2024-01-01", "2024-12-31", "2022-12-31", "2023-12-31"},
	}

	for _, tt := range tests {
		r := domain.DateRange{Start: day(tt.from), End: day(tt.to)}
		p := growth.PriorPeriod(r)

		assert.Equal(t, tt.priorFrom, p.From(), "%s..%s", tt.from, tt.to)
		assert.Equal(t, tt.priorTo, p.To(), "%s..%s", tt.from, tt.to)
		assert.Equal(t, r.Days(), p.Days())
		assert.True(t, p.End.AddDate(0, 0, 1).Equal(r.Start))
		assert.False(t, p.Contains(r.Start))
	}
}

func i64(v int64) *int64 { return &v }

func TestFastestGrowing_ZeroBaselineAndTies(t *testing.T) {
	current := []domain.FactRow{
		{Date: "2025-06-10", Category: "defi", TotalRequests: i64(150)},
		{Date: "2025-06-10", Category: "nft", TotalRequests: i64(200)},
		{Date: "2025-06-10", Category: "gaming", TotalRequests: i64(40)},
		{Date: "2025-06-10", Category: "bridges", TotalRequests: i64(10)},
	}
	prior := []domain.FactRow{
		{Date: "2025-06-01", Category: "defi", TotalRequests: i64(100)},
		{Date: "2025-06-01", Category: "nft", TotalRequests: i64(100)},
		{Date: "2025-06-01", Category: "bridges", TotalRequests: i64(20)},
	}

	cur := aggregate.Aggregate(current, aggregate.ByCategory)
	pri := aggregate.Aggregate(prior, aggregate.ByCategory)
	label := func(k domain.Key) string { return k.Category }

	cands := growth.Candidates(cur, pri, domain.MetricRequests, label)
	require.Len(t, cands, 4)
	assert.InDelta(t, 50, cands[0].PercentChange, 1e-9)
	assert.InDelta(t, 100, cands[1].PercentChange, 1e-9)
	assert.InDelta(t, 100, cands[2].PercentChange, 1e-9)
	assert.InDelta(t, -50, cands[3].PercentChange, 1e-9)

	best, ok := growth.FastestGrowing(cur, pri, domain.MetricRequests, label)
	require.True(t, ok)
	// nft and gaming tie at 100; nft is seen first
	assert.Equal(t, "nft", best.Key)
	assert.Equal(t, float64(200), best.CurrentTotal)
	assert.Equal(t, float64(100), best.PriorTotal)
}

func TestFastest_Empty(t *testing.T) {
	_, ok := growth.Fastest(nil)
	assert.False(t, ok)
}

func TestFastest_AllNegative(t *testing.T) {
	best, ok := growth.Fastest([]domain.GrowthCandidate{
		{Key: "a", GrowthResult: domain.GrowthResult{PercentChange: -80}},
		{Key: "b", GrowthResult: domain.GrowthResult{PercentChange: -10}},
	})
	require.True(t, ok)
	assert.Equal(t, "b", best.Key)
}

func TestCompare_NewBaseline(t *testing.T) {
	cur := domain.AggregateBucket{TotalRequests: 1}
	pri := domain.AggregateBucket{TotalRequests: 0}

	res := growth.Compare(cur, pri, domain.MetricRequests)
	assert.Equal(t, domain.GrowthResult{CurrentTotal: 1, PriorTotal: 0, PercentChange: 100}, res)
}
