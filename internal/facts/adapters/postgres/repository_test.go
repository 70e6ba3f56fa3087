package postgres

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"chain-usage-dashboard/internal/facts/core/domain"
)

// fakeResult implements sql.Result for tests.
type fakeResult struct {
	rowsAffected int64
}

func (f *fakeResult) LastInsertId() (int64, error) {
	return 0, errors.New("not implemented")
}

func (f *fakeResult) RowsAffected() (int64, error) {
	return f.rowsAffected, nil
}

// fakeDB implements DB interface for tests.
type fakeDB struct {
	ExecFn     func(ctx context.Context, query string, args ...any) (sql.Result, error)
	lastQuery  string
	lastArgs   []any
	execCalled bool
}

func (f *fakeDB) ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error) {
	f.execCalled = true
	f.lastQuery = query
	f.lastArgs = args
	if f.ExecFn != nil {
		return f.ExecFn(ctx, query, args...)
	}
	return &fakeResult{rowsAffected: 1}, nil
}

func sampleFact() *domain.Fact {
	requests := int64(100)
	volume := decimal.RequireFromString("12.5")
	return &domain.Fact{
		Date:          time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		Country:       "US",
		Chain:         "ethereum",
		Category:      "defi",
		TotalRequests: &requests,
		TxVolumeUSD:   &volume,
		DedupeKey:     "2025-06-01|us|ethereum|defi",
	}
}

// ------------------------------------------------------------
// SUCCESS (created)
// ------------------------------------------------------------

func TestFactRepository_InsertFact_Created(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "INSERT INTO chain_usage_facts") {
				t.Fatalf("unexpected query: %s", query)
			}
			return &fakeResult{rowsAffected: 1}, nil
		},
	}

	repo := NewFactRepository(db)

	created, err := repo.InsertFact(context.Background(), sampleFact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true, got false")
	}
	if !db.execCalled {
		t.Fatalf("expected ExecContext to be called")
	}
	if len(db.lastArgs) != 8 {
		t.Fatalf("expected 8 args, got %d", len(db.lastArgs))
	}
	if db.lastArgs[0] != "2025-06-01" {
		t.Fatalf("expected day arg 2025-06-01, got %v", db.lastArgs[0])
	}
	if users := db.lastArgs[5].(sql.NullInt64); users.Valid {
		t.Fatalf("expected NULL unique_users, got %v", users)
	}
	if volume := db.lastArgs[6].(decimal.NullDecimal); !volume.Valid || volume.Decimal.String() != "12.5" {
		t.Fatalf("unexpected volume arg %v", volume)
	}
}

// ------------------------------------------------------------
// DUPLICATE (rowsAffected=0)
// ------------------------------------------------------------

func TestFactRepository_InsertFact_Duplicate(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return &fakeResult{rowsAffected: 0}, nil
		},
	}

	repo := NewFactRepository(db)

	created, err := repo.InsertFact(context.Background(), sampleFact())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatalf("expected created=false for duplicate")
	}
}

// ------------------------------------------------------------
// DB ERROR
// ------------------------------------------------------------

func TestFactRepository_InsertFact_Error(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			return nil, errors.New("db error")
		},
	}

	repo := NewFactRepository(db)

	created, err := repo.InsertFact(context.Background(), sampleFact())
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
	if created {
		t.Fatalf("expected created=false on error")
	}
}

// ------------------------------------------------------------
// BULK
// ------------------------------------------------------------

func TestFactRepository_InsertFacts(t *testing.T) {
	db := &fakeDB{
		ExecFn: func(ctx context.Context, query string, args ...any) (sql.Result, error) {
			if !strings.Contains(query, "unnest(") {
				t.Fatalf("expected a single unnest insert, got: %s", query)
			}
			return &fakeResult{rowsAffected: 1}, nil
		},
	}

	repo := NewFactRepository(db)

	second := sampleFact()
	second.TotalRequests = nil
	created, err := repo.InsertFacts(context.Background(), []*domain.Fact{sampleFact(), second})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created != 1 {
		t.Fatalf("expected created=1, got %d", created)
	}
	if len(db.lastArgs) != 8 {
		t.Fatalf("expected 8 array args, got %d", len(db.lastArgs))
	}

	days, err := db.lastArgs[0].(driver.Valuer).Value()
	if err != nil || days != `{"2025-06-01","2025-06-01"}` {
		t.Fatalf("unexpected day array %v (%v)", days, err)
	}
	requests, err := db.lastArgs[4].(driver.Valuer).Value()
	if err != nil || requests != "{100,NULL}" {
		t.Fatalf("unexpected total_requests array %v (%v)", requests, err)
	}
}

func TestFactRepository_InsertFacts_Empty(t *testing.T) {
	db := &fakeDB{}
	repo := NewFactRepository(db)

	created, err := repo.InsertFacts(context.Background(), nil)
	if err != nil || created != 0 {
		t.Fatalf("expected no-op, got created=%d err=%v", created, err)
	}
	if db.execCalled {
		t.Fatalf("expected no statement for an empty batch")
	}
}
