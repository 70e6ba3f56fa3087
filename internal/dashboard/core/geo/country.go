// Package geo reconciles the country identifiers used by the map layer
// (ISO-3166 numeric codes and display names) with the alpha-2 codes stored in
// fact rows.
package geo

import (
	"strconv"
	"strings"

	"chain-usage-dashboard/internal/dashboard/core/aggregate"
	"chain-usage-dashboard/internal/dashboard/core/domain"
)

// Country is a resolved identifier. Fields unknown to the table stay empty.
type Country struct {
	Numeric string // three digits, zero padded
	Alpha2  string
	Name    string
}

type entry struct {
	alpha2 string
	name   string
}

// numericTable is the closed set of countries the map knows about.
var numericTable = map[string]entry{
	"004": {"AF", "Afghanistan"},
	"008": {"AL", "Albania"},
	"012": {"DZ", "Algeria"},
	"032": {"AR", "Argentina"},
	"036": {"AU", "Australia"},
	"040": {"AT", "Austria"},
	"050": {"BD", "Bangladesh"},
	"056": {"BE", "Belgium"},
	"076": {"BR", "Brazil"},
	"100": {"BG", "Bulgaria"},
	"124": {"CA", "Canada"},
	"152": {"CL", "Chile"},
	"156": {"CN", "China"},
	"170": {"CO", "Colombia"},
	"191": {"HR", "Croatia"},
	"203": {"CZ", "Czechia"},
	"208": {"DK", "Denmark"},
	"818": {"EG", "Egypt"},
	"233": {"EE", "Estonia"},
	"246": {"FI", "Finland"},
	"250": {"FR", "France"},
	"276": {"DE", "Germany"},
	"288": {"GH", "Ghana"},
	"300": {"GR", "Greece"},
	"344": {"HK", "Hong Kong"},
	"348": {"HU", "Hungary"},
	"356": {"IN", "India"},
	"360": {"ID", "Indonesia"},
	"364": {"IR", "Iran"},
	"372": {"IE", "Ireland"},
	"376": {"IL", "Israel"},
	"380": {"IT", "Italy"},
	"392": {"JP", "Japan"},
	"398": {"KZ", "Kazakhstan"},
	"404": {"KE", "Kenya"},
	"410": {"KR", "South Korea"},
	"428": {"LV", "Latvia"},
	"440": {"LT", "Lithuania"},
	"458": {"MY", "Malaysia"},
	"484": {"MX", "Mexico"},
	"504": {"MA", "Morocco"},
	"528": {"NL", "Netherlands"},
	"554": {"NZ", "New Zealand"},
	"566": {"NG", "Nigeria"},
	"578": {"NO", "Norway"},
	"586": {"PK", "Pakistan"},
	"604": {"PE", "Peru"},
	"608": {"PH", "Philippines"},
	"616": {"PL", "Poland"},
	"620": {"PT", "Portugal"},
	"642": {"RO", "Romania"},
	"643": {"RU", "Russia"},
	"682": {"SA", "Saudi Arabia"},
	"688": {"RS", "Serbia"},
	"702": {"SG", "Singapore"},
	"703": {"SK", "Slovakia"},
	"705": {"SI", "Slovenia"},
	"710": {"ZA", "South Africa"},
	"724": {"ES", "Spain"},
	"752": {"SE", "Sweden"},
	"756": {"CH", "Switzerland"},
	"158": {"TW", "Taiwan"},
	"764": {"TH", "Thailand"},
	"792": {"TR", "Turkey"},
	"804": {"UA", "Ukraine"},
	"784": {"AE", "United Arab Emirates"},
	"826": {"GB", "United Kingdom"},
	"840": {"US", "United States"},
	"858": {"UY", "Uruguay"},
	"862": {"VE", "Venezuela"},
	"704": {"VN", "Vietnam"},
}

var (
	byAlpha2 = make(map[string]string, len(numericTable)) // alpha2 -> numeric
	byName   = make(map[string]string, len(numericTable)) // lower(name) -> numeric
)

func init() {
	for num, e := range numericTable {
		byAlpha2[e.alpha2] = num
		byName[strings.ToLower(e.name)] = num
	}
}

// normalizeNumeric zero-pads an all-digit code to three digits. ok is false for non-numeric input.
func normalizeNumeric(code string) (string, bool) {
	code = strings.TrimSpace(code)
	if code == "" || len(code) > 3 {
		return "", false
	}
	n, err := strconv.Atoi(code)
	if err != nil || n < 0 {
		return "", false
	}
	return padNumeric(n), true
}

func padNumeric(n int) string {
	s := strconv.Itoa(n)
	for len(s) < 3 {
		s = "0" + s
	}
	return s
}

// ToAlpha2 maps a numeric ISO-3166 code to its alpha-2 code. Codes outside
// the table are returned unchanged.
func ToAlpha2(code string) string {
	if num, ok := normalizeNumeric(code); ok {
		if e, found := numericTable[num]; found {
			return e.alpha2
		}
	}
	return code
}

// Resolve turns a numeric code, alpha-2 code or display name into a Country.
// Unknown identifiers pass through: they land in Alpha2 when they look like a
// two-letter code and in Name otherwise.
func Resolve(id string) Country {
	id = strings.TrimSpace(id)
	if num, ok := normalizeNumeric(id); ok {
		if e, found := numericTable[num]; found {
			return Country{Numeric: num, Alpha2: e.alpha2, Name: e.name}
		}
		return Country{Numeric: num}
	}
	if num, ok := byAlpha2[strings.ToUpper(id)]; ok && len(id) == 2 {
		e := numericTable[num]
		return Country{Numeric: num, Alpha2: e.alpha2, Name: e.name}
	}
	if num, ok := byName[strings.ToLower(id)]; ok {
		e := numericTable[num]
		return Country{Numeric: num, Alpha2: e.alpha2, Name: e.name}
	}
	if len(id) == 2 {
		return Country{Alpha2: id}
	}
	return Country{Name: id}
}

// Features lists every country of the table, ordered by numeric code.
func Features() []Country {
	out := make([]Country, 0, len(numericTable))
	for n := 0; n < 1000; n++ {
		num := padNumeric(n)
		if e, ok := numericTable[num]; ok {
			out = append(out, Country{Numeric: num, Alpha2: e.alpha2, Name: e.name})
		}
	}
	return out
}

// LookupBucket finds the country bucket for display. The display name is
// tried first, then the alpha-2 code; each exactly and then case-insensitively.
func LookupBucket(buckets *aggregate.Buckets, c Country) (domain.AggregateBucket, bool) {
	for _, id := range []string{c.Name, c.Alpha2} {
		if id == "" {
			continue
		}
		if b, ok := buckets.Get(domain.Key{Country: id}); ok {
			return b, true
		}
	}
	for _, id := range []string{c.Name, c.Alpha2} {
		if id == "" {
			continue
		}
		for _, b := range buckets.Items() {
			if aggregate.EqualFold(b.Key.Country, id) {
				return b, true
			}
		}
	}
	return domain.AggregateBucket{}, false
}
