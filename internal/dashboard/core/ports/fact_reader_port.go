package ports

import (
	"context"
	"time"

	"chain-usage-dashboard/internal/dashboard/core/domain"
)

// RowFilter selects fact rows. Date bounds are inclusive; string filters match case-insensitively.
type RowFilter struct {
	From     time.Time
	To       time.Time
	Chain    *string // optional
	Country  *string // optional
	Category *string // optional
}

type FactReaderPort interface {
	QueryFacts(ctx context.Context, f RowFilter) ([]domain.FactRow, error)
}
