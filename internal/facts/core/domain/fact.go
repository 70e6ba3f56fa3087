package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fact is one usage observation as it is stored.
type Fact struct {
	Date     time.Time // midnight UTC
	Country  string
	Chain    string
	Category string

	TotalRequests *int64
	UniqueUsers   *int64
	TxVolumeUSD   *decimal.Decimal

	DedupeKey string
}
