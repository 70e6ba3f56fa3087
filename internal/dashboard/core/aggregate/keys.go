package aggregate

import "chain-usage-dashboard/internal/dashboard/core/domain"

func ByDate(r domain.FactRow) domain.Key     { return domain.Key{Date: r.Date} }
func ByCountry(r domain.FactRow) domain.Key  { return domain.Key{Country: r.Country} }
func ByChain(r domain.FactRow) domain.Key    { return domain.Key{Chain: r.Chain} }
func ByCategory(r domain.FactRow) domain.Key { return domain.Key{Category: r.Category} }

func ByDateChain(r domain.FactRow) domain.Key {
	return domain.Key{Date: r.Date, Chain: r.Chain}
}

func ByCountryChain(r domain.FactRow) domain.Key {
	return domain.Key{Country: r.Country, Chain: r.Chain}
}

func ByCategoryChain(r domain.FactRow) domain.Key {
	return domain.Key{Category: r.Category, Chain: r.Chain}
}

func ByCountryCategory(r domain.FactRow) domain.Key {
	return domain.Key{Country: r.Country, Category: r.Category}
}

// All puts every row in the same group.
func All(domain.FactRow) domain.Key { return domain.Key{} }

// Compose merges the non-empty dimensions of several key functions.
// Later functions win when two set the same dimension.
func Compose(fns ...KeyFunc) KeyFunc {
	return func(r domain.FactRow) domain.Key {
		var k domain.Key
		for _, fn := range fns {
			p := fn(r)
			if p.Date != "" {
				k.Date = p.Date
			}
			if p.Country != "" {
				k.Country = p.Country
			}
			if p.Chain != "" {
				k.Chain = p.Chain
			}
			if p.Category != "" {
				k.Category = p.Category
			}
		}
		return k
	}
}

// Peer extractors for PeerGroups.

func ChainOf(r domain.FactRow) string    { return r.Chain }
func CategoryOf(r domain.FactRow) string { return r.Category }
func CountryOf(r domain.FactRow) string  { return r.Country }
