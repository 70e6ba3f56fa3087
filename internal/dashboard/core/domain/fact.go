package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-day format used by fact rows and query params.
const DateLayout = "2006-01-02"

// FactRow is one observation of usage metrics for a (date, country, chain, category) tuple.
// Numeric facts are nullable; a nil value counts as zero.
type FactRow struct {
	Date     string // YYYY-MM-DD
	Country  string
	Chain    string
	Category string

	TotalRequests *int64
	UniqueUsers   *int64
	TxVolumeUSD   *decimal.Decimal
}

func (r FactRow) Requests() int64 {
	if r.TotalRequests == nil {
		return 0
	}
	return *r.TotalRequests
}

func (r FactRow) Users() int64 {
	if r.UniqueUsers == nil {
		return 0
	}
	return *r.UniqueUsers
}

func (r FactRow) Volume() decimal.Decimal {
	if r.TxVolumeUSD == nil {
		return decimal.Zero
	}
	return *r.TxVolumeUSD
}

// Key is a grouping tuple. Dimensions not chosen by a key function stay empty.
type Key struct {
	Date     string
	Country  string
	Chain    string
	Category string
}

// String joins the non-empty parts of the key with "/".
func (k Key) String() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{k.Date, k.Country, k.Category, k.Chain} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, "/")
}

// AggregateBucket holds the running sums of one grouping key.
type AggregateBucket struct {
	Key           Key
	TotalRequests int64
	UniqueUsers   int64
	TxVolumeUSD   decimal.Decimal
	Rows          int
}

// Add folds a row into the bucket.
func (b *AggregateBucket) Add(r FactRow) {
	b.TotalRequests += r.Requests()
	b.UniqueUsers += r.Users()
	b.TxVolumeUSD = b.TxVolumeUSD.Add(r.Volume())
	b.Rows++
}

// Merge adds the sums of another bucket, keeping this bucket's key.
func (b *AggregateBucket) Merge(o AggregateBucket) {
	b.TotalRequests += o.TotalRequests
	b.UniqueUsers += o.UniqueUsers
	b.TxVolumeUSD = b.TxVolumeUSD.Add(o.TxVolumeUSD)
	b.Rows += o.Rows
}
