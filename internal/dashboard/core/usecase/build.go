package usecase

import (
	"sort"

	"chain-usage-dashboard/internal/dashboard/core/aggregate"
	"chain-usage-dashboard/internal/dashboard/core/crossfilter"
	"chain-usage-dashboard/internal/dashboard/core/domain"
	"chain-usage-dashboard/internal/dashboard/core/geo"
	"chain-usage-dashboard/internal/dashboard/core/growth"
	"chain-usage-dashboard/internal/dashboard/core/rank"
	"chain-usage-dashboard/internal/dashboard/core/slider"
)

// Build computes the dashboard view-model from already fetched rows. It is a
// pure function of its inputs; current and prior are not modified. mapper may
// be nil, in which case the slider values are left at zero. Callers check the
// range with Mapper.Fits first; a range outside the window gets clamped values.
func Build(state domain.DashboardState, current, prior []domain.FactRow, mapper *slider.Mapper) *domain.Dashboard {
	priorRange := growth.PriorPeriod(state.Range)

	current = aggregate.Apply(current, aggregate.Filter{
		Range:    &state.Range,
		Country:  state.Country,
		Category: state.Category,
	})
	prior = aggregate.Apply(prior, aggregate.Filter{
		Range:    &priorRange,
		Country:  state.Country,
		Category: state.Category,
	})

	home := aggregate.Apply(current, aggregate.Filter{Chain: state.Chain})
	homePrior := aggregate.Apply(prior, aggregate.Filter{Chain: state.Chain})

	d := &domain.Dashboard{
		Chain:  state.Chain,
		Metric: state.Metric,
		Range:  domain.RangeView{Range: state.Range},
		Totals: aggregate.Sum(home),
	}
	if mapper != nil {
		d.Range.Slider = mapper.DatesToRange(state.Range)
	}

	allChains := aggregate.PeerGroups(current, aggregate.All, aggregate.ChainOf, state.Metric, true)[domain.Key{}]
	d.GlobalRank = rank.RankGlobal(allChains, state.Chain)
	d.ChainCount = rank.PeerCount(allChains)

	d.Series = series(current)

	countryBuckets := aggregate.Aggregate(home, aggregate.ByCountry)
	d.Countries = dimensionViews(
		countryBuckets,
		aggregate.PeerGroups(current, aggregate.ByCountry, aggregate.ChainOf, state.Metric, true),
		state,
		func(k domain.Key) string { return k.Country },
	)
	d.Categories = dimensionViews(
		aggregate.Aggregate(home, aggregate.ByCategory),
		aggregate.PeerGroups(current, aggregate.ByCategory, aggregate.ChainOf, state.Metric, true),
		state,
		func(k domain.Key) string { return k.Category },
	)
	d.Regions = regions(countryBuckets)
	d.Growth = growthSummary(state, priorRange, home, homePrior)

	return d
}

// series is the per-date, per-chain time series ordered by date then chain.
func series(rows []domain.FactRow) []domain.SeriesPoint {
	items := aggregate.Aggregate(rows, aggregate.ByDateChain).Items()
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Key.Date != items[j].Key.Date {
			return items[i].Key.Date < items[j].Key.Date
		}
		return items[i].Key.Chain < items[j].Key.Chain
	})

	out := make([]domain.SeriesPoint, 0, len(items))
	for _, it := range items {
		out = append(out, domain.SeriesPoint{Date: it.Key.Date, Chain: it.Key.Chain, Totals: it})
	}
	return out
}

func dimensionViews(buckets *aggregate.Buckets, peers map[domain.Key]aggregate.PeerValueMap, state domain.DashboardState, label func(domain.Key) string) []domain.DimensionView {
	items := buckets.Items()
	out := make([]domain.DimensionView, 0, len(items))
	for _, it := range items {
		group := peers[it.Key]
		count := rank.PeerCount(group)
		out = append(out, domain.DimensionView{
			Key:       label(it.Key),
			Totals:    it,
			Rank:      rank.Rank(group, state.Chain),
			PeerCount: count,
			Ranked:    rank.Meaningful(count),
			Peers:     rank.Breakdown(group),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		vi, vj := state.Metric.Value(out[i].Totals), state.Metric.Value(out[j].Totals)
		if vi != vj {
			return vi > vj
		}
		return out[i].Key < out[j].Key
	})
	return out
}

// regions resolves every map feature against the country buckets.
func regions(countries *aggregate.Buckets) []domain.RegionView {
	features := geo.Features()
	out := make([]domain.RegionView, 0, len(features))
	for _, f := range features {
		b, ok := geo.LookupBucket(countries, f)
		out = append(out, domain.RegionView{
			Numeric: f.Numeric,
			Alpha2:  f.Alpha2,
			Name:    f.Name,
			Found:   ok,
			Totals:  b,
		})
	}
	return out
}

func growthSummary(state domain.DashboardState, priorRange domain.DateRange, home, homePrior []domain.FactRow) domain.GrowthSummary {
	coord := crossfilter.New(state.Cross)

	s := domain.GrowthSummary{
		Prior:   priorRange,
		Overall: growth.Compare(aggregate.Sum(home), aggregate.Sum(homePrior), state.Metric),
		Cross:   coord.State(),
	}

	if c, ok := growth.FastestGrowing(
		aggregate.Aggregate(coord.RowsForCategoryGrowth(home), aggregate.ByCategory),
		aggregate.Aggregate(coord.RowsForCategoryGrowth(homePrior), aggregate.ByCategory),
		state.Metric,
		func(k domain.Key) string { return k.Category },
	); ok {
		s.FastestCategory = &c
	}

	if c, ok := growth.FastestGrowing(
		aggregate.Aggregate(coord.RowsForCountryGrowth(home), aggregate.ByCountry),
		aggregate.Aggregate(coord.RowsForCountryGrowth(homePrior), aggregate.ByCountry),
		state.Metric,
		func(k domain.Key) string { return k.Country },
	); ok {
		s.FastestCountry = &c
	}

	return s
}
