package aggregate

import (
	"strings"

	"chain-usage-dashboard/internal/dashboard/core/domain"
)

// Filter is the set of active row predicates. Zero values disable a predicate.
type Filter struct {
	Range    *domain.DateRange
	Chain    string
	Country  string
	Category string
}

// EqualFold is the case-insensitive comparison used by every string predicate.
func EqualFold(a, b string) bool {
	return strings.EqualFold(strings.TrimSpace(a), strings.TrimSpace(b))
}

// Match reports whether the row passes every active predicate.
func (f Filter) Match(r domain.FactRow) bool {
	if f.Range != nil && !f.Range.ContainsDate(r.Date) {
		return false
	}
	if f.Chain != "" && !EqualFold(r.Chain, f.Chain) {
		return false
	}
	if f.Country != "" && !EqualFold(r.Country, f.Country) {
		return false
	}
	if f.Category != "" && !EqualFold(r.Category, f.Category) {
		return false
	}
	return true
}

// Apply returns the rows matching f, in input order. The input slice is not modified.
func Apply(rows []domain.FactRow, f Filter) []domain.FactRow {
	out := make([]domain.FactRow, 0, len(rows))
	for _, r := range rows {
		if f.Match(r) {
			out = append(out, r)
		}
	}
	return out
}
