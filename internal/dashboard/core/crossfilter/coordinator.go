// Package crossfilter keeps the category and country selections of the
// growth cards mutually exclusive and decides which rows feed each growth
// computation.
package crossfilter

import (
	"errors"
	"strings"

	"chain-usage-dashboard/internal/dashboard/core/aggregate"
	"chain-usage-dashboard/internal/dashboard/core/domain"
)

var (
	ErrUnknownAction = errors.New("unknown cross-filter action")
	ErrMissingValue  = errors.New("cross-filter value is required")
)

// Action names accepted by Apply.
const (
	ActionSelectCategory = "select_category"
	ActionSelectCountry  = "select_country"
	ActionClearCategory  = "clear_category"
	ActionClearCountry   = "clear_country"
)

// Coordinator owns one CrossFilter. The zero value has nothing selected.
type Coordinator struct {
	state domain.CrossFilter
}

// New starts from an existing state. A state with both selections set keeps
// the category.
func New(state domain.CrossFilter) *Coordinator {
	if state.ByCategory != "" && state.ByCountry != "" {
		state.ByCountry = ""
	}
	return &Coordinator{state: state}
}

func (c *Coordinator) State() domain.CrossFilter { return c.state }

// SelectCategory sets the category filter and clears the country filter.
func (c *Coordinator) SelectCategory(category string) {
	c.state = domain.CrossFilter{ByCategory: category}
}

// SelectCountry sets the country filter and clears the category filter.
func (c *Coordinator) SelectCountry(country string) {
	c.state = domain.CrossFilter{ByCountry: country}
}

func (c *Coordinator) ClearCategory() { c.state.ByCategory = "" }

func (c *Coordinator) ClearCountry() { c.state.ByCountry = "" }

// Apply runs a named action. Select actions need a non-empty value.
func (c *Coordinator) Apply(action, value string) error {
	value = strings.TrimSpace(value)
	switch action {
	case ActionSelectCategory:
		if value == "" {
			return ErrMissingValue
		}
		c.SelectCategory(value)
	case ActionSelectCountry:
		if value == "" {
			return ErrMissingValue
		}
		c.SelectCountry(value)
	case ActionClearCategory:
		c.ClearCategory()
	case ActionClearCountry:
		c.ClearCountry()
	default:
		return ErrUnknownAction
	}
	return nil
}

// RowsForCategoryGrowth keeps only the selected country's rows when a country is selected.
func (c *Coordinator) RowsForCategoryGrowth(rows []domain.FactRow) []domain.FactRow {
	if c.state.ByCountry == "" {
		return rows
	}
	return aggregate.Apply(rows, aggregate.Filter{Country: c.state.ByCountry})
}

// RowsForCountryGrowth keeps only the selected category's rows when a category is selected.
func (c *Coordinator) RowsForCountryGrowth(rows []domain.FactRow) []domain.FactRow {
	if c.state.ByCategory == "" {
		return rows
	}
	return aggregate.Apply(rows, aggregate.Filter{Category: c.state.ByCategory})
}
