package crossfilter_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chain-usage-dashboard/internal/dashboard/core/crossfilter"
	"chain-usage-dashboard/internal/dashboard/core/domain"
)

func TestSelect_IsMutuallyExclusive(t *testing.T) {
	c := crossfilter.New(domain.CrossFilter{})

	c.SelectCountry("US")
	assert.Equal(t, domain.CrossFilter{ByCountry: "US"}, c.State())

	c.SelectCategory("defi")
	assert.Equal(t, domain.CrossFilter{ByCategory: "defi"}, c.State())

	c.SelectCountry("DE")
	assert.Equal(t, domain.CrossFilter{ByCountry: "DE"}, c.State())
}

func TestSelect_RandomSequencesStayExclusive(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	c := crossfilter.New(domain.CrossFilter{})

	for i := 0; i < 500; i++ {
		switch rng.Intn(4) {
		case 0:
			c.SelectCategory("cat")
			assert.Empty(t, c.State().ByCountry)
		case 1:
			c.SelectCountry("US")
			assert.Empty(t, c.State().ByCategory)
		case 2:
			c.ClearCategory()
		case 3:
			c.ClearCountry()
		}
		s := c.State()
		assert.False(t, s.ByCategory != "" && s.ByCountry != "", "both set after step %d", i)
	}
}

func TestClear_LeavesOtherUntouched(t *testing.T) {
	c := crossfilter.New(domain.CrossFilter{ByCountry: "US"})

	c.ClearCategory()
	assert.Equal(t, "US", c.State().ByCountry)

	c.ClearCountry()
	assert.Equal(t, domain.CrossFilter{}, c.State())
}

func TestNew_NormalizesConflictingState(t *testing.T) {
	c := crossfilter.New(domain.CrossFilter{ByCategory: "defi", ByCountry: "US"})
	assert.Equal(t, domain.CrossFilter{ByCategory: "defi"}, c.State())
}

func TestApply(t *testing.T) {
	c := crossfilter.New(domain.CrossFilter{})

	require.NoError(t, c.Apply(crossfilter.ActionSelectCountry, " US "))
	assert.Equal(t, domain.CrossFilter{ByCountry: "US"}, c.State())

	require.NoError(t, c.Apply(crossfilter.ActionSelectCategory, "nft"))
	assert.Equal(t, domain.CrossFilter{ByCategory: "nft"}, c.State())

	require.NoError(t, c.Apply(crossfilter.ActionClearCategory, ""))
	assert.Equal(t, domain.CrossFilter{}, c.State())

	assert.ErrorIs(t, c.Apply(crossfilter.ActionSelectCountry, ""), crossfilter.ErrMissingValue)
	assert.ErrorIs(t, c.Apply("toggle", "x"), crossfilter.ErrUnknownAction)
}

func TestRowsForGrowth(t *testing.T) {
	rows := []domain.FactRow{
		{Country: "US", Category: "defi"},
		{Country: "us", Category: "nft"},
		{Country: "DE", Category: "DeFi"},
	}

	c := crossfilter.New(domain.CrossFilter{})
	assert.Len(t, c.RowsForCategoryGrowth(rows), 3)
	assert.Len(t, c.RowsForCountryGrowth(rows), 3)

	c.SelectCountry("US")
	assert.Len(t, c.RowsForCategoryGrowth(rows), 2)
	assert.Len(t, c.RowsForCountryGrowth(rows), 3)

	c.SelectCategory("defi")
	assert.Len(t, c.RowsForCategoryGrowth(rows), 3)
	assert.Len(t, c.RowsForCountryGrowth(rows), 2)
}
