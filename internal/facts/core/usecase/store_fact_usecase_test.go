package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"chain-usage-dashboard/internal/facts/core/domain"
	"chain-usage-dashboard/internal/facts/core/usecase"
)

// Fake repository implementing FactRepositoryPort
type fakeFactRepo struct {
	InsertFn func(ctx context.Context, f *domain.Fact) (bool, error)
}

func (f *fakeFactRepo) InsertFact(ctx context.Context, fact *domain.Fact) (bool, error) {
	return f.InsertFn(ctx, fact)
}

func (f *fakeFactRepo) InsertFacts(ctx context.Context, fs []*domain.Fact) (int, error) {
	return 0, errors.New("not used")
}

func i64(v int64) *int64 { return &v }

func yesterday() string {
	return time.Now().UTC().AddDate(0, 0, -1).Format("2006-01-02")
}

func validInput() usecase.StoreFactInput {
	return usecase.StoreFactInput{
		Date:          yesterday(),
		Country:       "US",
		Chain:         "Ethereum",
		Category:      "DeFi",
		TotalRequests: i64(100),
	}
}

// ------------------------------------------------------------
// SUCCESS TEST
// ------------------------------------------------------------
func TestStoreFact_Success(t *testing.T) {
	called := false

	repo := &fakeFactRepo{
		InsertFn: func(ctx context.Context, f *domain.Fact) (bool, error) {
			called = true

			if f.Chain != "Ethereum" {
				t.Fatalf("expected chain 'Ethereum', got %s", f.Chain)
			}
			if f.Country != "US" {
				t.Fatalf("expected country 'US', got %s", f.Country)
			}
			if f.Date.Format("2006-01-02") != yesterday() {
				t.Fatalf("unexpected date %v", f.Date)
			}
			if f.DedupeKey != yesterday()+"|us|ethereum|defi" {
				t.Fatalf("unexpected dedupe key %q", f.DedupeKey)
			}

			return true, nil
		},
	}

	uc := usecase.NewStoreFactUseCase(repo, nil)

	created, err := uc.Execute(context.Background(), validInput())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !created {
		t.Fatalf("expected created=true, got false")
	}
	if !called {
		t.Fatalf("repository InsertFact was not called")
	}
}

func TestStoreFact_NumericCountryIsNormalized(t *testing.T) {
	var got *domain.Fact
	repo := &fakeFactRepo{
		InsertFn: func(ctx context.Context, f *domain.Fact) (bool, error) {
			got = f
			return true, nil
		},
	}
	uc := usecase.NewStoreFactUseCase(repo, nil)

	in := validInput()
	in.Country = "276"
	if _, err := uc.Execute(context.Background(), in); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Country != "DE" {
		t.Fatalf("expected country DE, got %s", got.Country)
	}
}

func TestStoreFact_CountryCaseSharesDedupeKey(t *testing.T) {
	var keys []string
	repo := &fakeFactRepo{
		InsertFn: func(ctx context.Context, f *domain.Fact) (bool, error) {
			keys = append(keys, f.DedupeKey)
			return true, nil
		},
	}
	uc := usecase.NewStoreFactUseCase(repo, nil)

	for _, country := range []string{"US", "us", " Us ", "840"} {
		in := validInput()
		in.Country = country
		if _, err := uc.Execute(context.Background(), in); err != nil {
			t.Fatalf("unexpected error for %q: %v", country, err)
		}
	}

	for _, k := range keys[1:] {
		if k != keys[0] {
			t.Fatalf("expected one dedupe key for every country spelling, got %v", keys)
		}
	}
}

// ------------------------------------------------------------
// INVALID FIELDS
// ------------------------------------------------------------
func TestStoreFact_InvalidFields(t *testing.T) {
	repo := &fakeFactRepo{}
	uc := usecase.NewStoreFactUseCase(repo, nil)

	neg := decimal.NewFromInt(-1)
	tests := []func(in *usecase.StoreFactInput){
		func(in *usecase.StoreFactInput) { in.Chain = "" },
		func(in *usecase.StoreFactInput) { in.Country = " " },
		func(in *usecase.StoreFactInput) { in.Category = "" },
		func(in *usecase.StoreFactInput) { in.Date = "06/01/2025" },
		func(in *usecase.StoreFactInput) { in.TotalRequests = i64(-5) },
		func(in *usecase.StoreFactInput) { in.UniqueUsers = i64(-1) },
		func(in *usecase.StoreFactInput) { in.TxVolumeUSD = &neg },
	}

	for i, mutate := range tests {
		in := validInput()
		mutate(&in)

		created, err := uc.Execute(context.Background(), in)

		if err == nil {
			t.Fatalf("case %d: expected error for invalid input, got nil", i)
		}
		if created {
			t.Fatalf("case %d: expected created=false", i)
		}
		if !errors.Is(err, usecase.ErrInvalidFact) {
			t.Fatalf("case %d: expected ErrInvalidFact, got %v", i, err)
		}
	}
}

// ------------------------------------------------------------
// FUTURE DATE
// ------------------------------------------------------------
func TestStoreFact_FutureDate(t *testing.T) {
	repo := &fakeFactRepo{}
	uc := usecase.NewStoreFactUseCase(repo, nil)

	in := validInput()
	in.Date = time.Now().UTC().AddDate(0, 0, 2).Format("2006-01-02")

	created, err := uc.Execute(context.Background(), in)

	if err == nil {
		t.Fatalf("expected error for future date, got nil")
	}
	if created {
		t.Fatalf("expected created=false")
	}
	if !errors.Is(err, usecase.ErrFutureDate) {
		t.Fatalf("expected ErrFutureDate, got %v", err)
	}
}

// ------------------------------------------------------------
// DUPLICATE
// ------------------------------------------------------------
func TestStoreFact_Duplicate(t *testing.T) {
	repo := &fakeFactRepo{
		InsertFn: func(ctx context.Context, f *domain.Fact) (bool, error) {
			return false, nil // duplicate
		},
	}

	uc := usecase.NewStoreFactUseCase(repo, nil)

	created, err := uc.Execute(context.Background(), validInput())

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created {
		t.Fatalf("expected created=false for duplicate")
	}
}

// ------------------------------------------------------------
// REPOSITORY ERROR
// ------------------------------------------------------------
func TestStoreFact_RepositoryError(t *testing.T) {
	repo := &fakeFactRepo{
		InsertFn: func(ctx context.Context, f *domain.Fact) (bool, error) {
			return false, errors.New("db failure")
		},
	}

	uc := usecase.NewStoreFactUseCase(repo, nil)

	created, err := uc.Execute(context.Background(), validInput())

	if err == nil {
		t.Fatalf("expected db error, got nil")
	}
	if created {
		t.Fatalf("expected created=false")
	}
	if err.Error() != "db failure" {
		t.Fatalf("expected 'db failure', got %v", err)
	}
}
