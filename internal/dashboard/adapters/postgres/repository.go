package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"chain-usage-dashboard/internal/dashboard/core/domain"
	"chain-usage-dashboard/internal/dashboard/core/ports"
)

type RowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close() error
}

type DB interface {
	QueryContext(ctx context.Context, query string, args ...any) (RowScanner, error)
}

type FactReader struct {
	db DB
}

func NewFactReader(db DB) *FactReader {
	return &FactReader{db: db}
}

var _ ports.FactReaderPort = (*FactReader)(nil)

const selectFactsSQL = `
SELECT
    day,
    country,
    chain,
    category,
    total_requests,
    unique_users,
    tx_volume_usd
FROM chain_usage_facts
WHERE `

// QueryFacts returns the rows between f.From and f.To inclusive. Rows come
// back in insertion order so that first-seen grouping stays stable.
func (r *FactReader) QueryFacts(ctx context.Context, f ports.RowFilter) ([]domain.FactRow, error) {
	where := "day BETWEEN $1 AND $2"
	args := []any{f.From.UTC(), f.To.UTC()}
	argIndex := 3

	for _, opt := range []struct {
		column string
		value  *string
	}{
		{"chain", f.Chain},
		{"country", f.Country},
		{"category", f.Category},
	} {
		if opt.value == nil {
			continue
		}
		where += fmt.Sprintf(" AND lower(%s) = lower($%d)", opt.column, argIndex)
		args = append(args, *opt.value)
		argIndex++
	}

	rows, err := r.db.QueryContext(ctx, selectFactsSQL+where+"\nORDER BY id", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.FactRow
	for rows.Next() {
		var (
			day                        time.Time
			country, chain, category   string
			totalRequests, uniqueUsers sql.NullInt64
			volume                     decimal.NullDecimal
		)
		if err := rows.Scan(&day, &country, &chain, &category, &totalRequests, &uniqueUsers, &volume); err != nil {
			return nil, err
		}

		row := domain.FactRow{
			Date:     day.UTC().Format(domain.DateLayout),
			Country:  country,
			Chain:    chain,
			Category: category,
		}
		if totalRequests.Valid {
			v := totalRequests.Int64
			row.TotalRequests = &v
		}
		if uniqueUsers.Valid {
			v := uniqueUsers.Int64
			row.UniqueUsers = &v
		}
		if volume.Valid {
			v := volume.Decimal
			row.TxVolumeUSD = &v
		}
		out = append(out, row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return out, nil
}
