package postgres

import (
	"context"
	"database/sql"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"

	"chain-usage-dashboard/internal/facts/core/domain"
	"chain-usage-dashboard/internal/facts/core/ports"
)

const dateLayout = "2006-01-02"

type FactRepository struct {
	db DB
}

func NewFactRepository(db DB) *FactRepository {
	return &FactRepository{db: db}
}

var _ ports.FactRepositoryPort = (*FactRepository)(nil)

// SQL template
const insertFactSQL = `
INSERT INTO chain_usage_facts (
    day,
    country,
    chain,
    category,
    total_requests,
    unique_users,
    tx_volume_usd,
    dedupe_key
) VALUES (
    $1, $2, $3, $4,
    $5, $6, $7, $8
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

// One statement for the whole batch; arrays are unnested column by column.
const insertFactsSQL = `
INSERT INTO chain_usage_facts (
    day,
    country,
    chain,
    category,
    total_requests,
    unique_users,
    tx_volume_usd,
    dedupe_key
)
SELECT * FROM unnest(
    $1::date[], $2::text[], $3::text[], $4::text[],
    $5::bigint[], $6::bigint[], $7::numeric[], $8::text[]
)
ON CONFLICT (dedupe_key) DO NOTHING;
`

func (r *FactRepository) InsertFact(ctx context.Context, f *domain.Fact) (bool, error) {
	res, err := r.db.ExecContext(ctx, insertFactSQL,
		f.Date.Format(dateLayout),
		f.Country,
		f.Chain,
		f.Category,
		nullInt64(f.TotalRequests),
		nullInt64(f.UniqueUsers),
		nullDecimal(f.TxVolumeUSD),
		f.DedupeKey,
	)
	if err != nil {
		return false, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, err
	}

	// rows == 1  -> new record
	// rows == 0  -> duplicate (ON CONFLICT DO NOTHING)
	return rows > 0, nil
}

func (r *FactRepository) InsertFacts(ctx context.Context, fs []*domain.Fact) (int, error) {
	if len(fs) == 0 {
		return 0, nil
	}

	var (
		days       = make([]string, len(fs))
		countries  = make([]string, len(fs))
		chains     = make([]string, len(fs))
		categories = make([]string, len(fs))
		requests   = make([]sql.NullInt64, len(fs))
		users      = make([]sql.NullInt64, len(fs))
		volumes    = make([]decimal.NullDecimal, len(fs))
		keys       = make([]string, len(fs))
	)
	for i, f := range fs {
		days[i] = f.Date.Format(dateLayout)
		countries[i] = f.Country
		chains[i] = f.Chain
		categories[i] = f.Category
		requests[i] = nullInt64(f.TotalRequests)
		users[i] = nullInt64(f.UniqueUsers)
		volumes[i] = nullDecimal(f.TxVolumeUSD)
		keys[i] = f.DedupeKey
	}

	res, err := r.db.ExecContext(ctx, insertFactsSQL,
		pq.Array(days),
		pq.Array(countries),
		pq.Array(chains),
		pq.Array(categories),
		pq.Array(requests),
		pq.Array(users),
		pq.Array(volumes),
		pq.Array(keys),
	)
	if err != nil {
		return 0, err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	return int(rows), nil
}

func nullInt64(v *int64) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: *v, Valid: true}
}

func nullDecimal(v *decimal.Decimal) decimal.NullDecimal {
	if v == nil {
		return decimal.NullDecimal{}
	}
	return decimal.NullDecimal{Decimal: *v, Valid: true}
}
