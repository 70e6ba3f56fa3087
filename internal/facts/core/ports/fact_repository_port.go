package ports

import (
	"context"

	"chain-usage-dashboard/internal/facts/core/domain"
)

type FactRepositoryPort interface {
	// InsertFact:
	//   created = true,  err = nil  -> new record
	//   created = false, err = nil  -> duplicate (idempotent)
	//   created = false, err != nil -> DB error
	InsertFact(ctx context.Context, f *domain.Fact) (created bool, err error)

	// InsertFacts stores a batch in one statement and returns how many rows
	// were new. The rest were duplicates.
	InsertFacts(ctx context.Context, fs []*domain.Fact) (created int, err error)
}
