package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"chain-usage-dashboard/internal/dashboard/core/geo"
	"chain-usage-dashboard/internal/facts/core/domain"
	"chain-usage-dashboard/internal/facts/core/ports"
	"chain-usage-dashboard/internal/observability"
)

const dateLayout = "2006-01-02"

var (
	ErrInvalidFact = errors.New("invalid fact")
	ErrFutureDate  = errors.New("date cannot be in the future")
)

type StoreFactUseCase struct {
	repo    ports.FactRepositoryPort
	metrics *observability.Metrics
}

func NewStoreFactUseCase(repo ports.FactRepositoryPort, metrics *observability.Metrics) *StoreFactUseCase {
	return &StoreFactUseCase{repo: repo, metrics: metrics}
}

type StoreFactInput struct {
	Date     string // YYYY-MM-DD
	Country  string // alpha-2 or ISO numeric
	Chain    string
	Category string

	TotalRequests *int64
	UniqueUsers   *int64
	TxVolumeUSD   *decimal.Decimal
}

func (uc *StoreFactUseCase) Execute(ctx context.Context, in StoreFactInput) (bool, error) {
	f, err := uc.newFact(in)
	if err != nil {
		uc.metrics.FactIngested("rejected")
		return false, err
	}

	created, err := uc.repo.InsertFact(ctx, f)
	if err != nil {
		return false, err
	}

	uc.count(created)
	return created, nil
}

type BulkCreateFactsInput struct {
	Facts []StoreFactInput
}

type BulkCreateFactsResult struct {
	Created    int
	Duplicates int
}

// BulkCreateFacts validates every fact before storing any of them.
func (uc *StoreFactUseCase) BulkCreateFacts(ctx context.Context, in BulkCreateFactsInput) (BulkCreateFactsResult, error) {
	var res BulkCreateFactsResult

	facts := make([]*domain.Fact, 0, len(in.Facts))
	for i, raw := range in.Facts {
		f, err := uc.newFact(raw)
		if err != nil {
			uc.metrics.FactIngested("rejected")
			return res, fmt.Errorf("fact %d: %w", i, err)
		}
		facts = append(facts, f)
	}
	if len(facts) == 0 {
		return res, nil
	}

	created, err := uc.repo.InsertFacts(ctx, facts)
	if err != nil {
		return res, err
	}

	res.Created = created
	res.Duplicates = len(facts) - created
	for i := 0; i < res.Created; i++ {
		uc.count(true)
	}
	for i := 0; i < res.Duplicates; i++ {
		uc.count(false)
	}
	return res, nil
}

func (uc *StoreFactUseCase) count(created bool) {
	if created {
		uc.metrics.FactIngested("created")
	} else {
		uc.metrics.FactIngested("duplicate")
	}
}

func (uc *StoreFactUseCase) newFact(in StoreFactInput) (*domain.Fact, error) {
	day, err := uc.validateInput(in)
	if err != nil {
		return nil, err
	}

	f := &domain.Fact{
		Date:          day,
		Country:       geo.ToAlpha2(strings.TrimSpace(in.Country)),
		Chain:         strings.TrimSpace(in.Chain),
		Category:      strings.TrimSpace(in.Category),
		TotalRequests: in.TotalRequests,
		UniqueUsers:   in.UniqueUsers,
		TxVolumeUSD:   in.TxVolumeUSD,
	}
	f.DedupeKey = buildDedupeKey(f)
	return f, nil
}

func buildDedupeKey(f *domain.Fact) string {
	// date + country + chain + category, all compared without case
	return fmt.Sprintf("%s|%s|%s|%s",
		f.Date.Format(dateLayout),
		strings.ToLower(f.Country),
		strings.ToLower(f.Chain),
		strings.ToLower(f.Category),
	)
}

func (uc *StoreFactUseCase) validateInput(in StoreFactInput) (time.Time, error) {
	if strings.TrimSpace(in.Chain) == "" ||
		strings.TrimSpace(in.Country) == "" ||
		strings.TrimSpace(in.Category) == "" {
		return time.Time{}, ErrInvalidFact
	}

	day, err := time.Parse(dateLayout, in.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date must be YYYY-MM-DD", ErrInvalidFact)
	}
	if day.After(time.Now().UTC()) {
		return time.Time{}, ErrFutureDate
	}

	if (in.TotalRequests != nil && *in.TotalRequests < 0) ||
		(in.UniqueUsers != nil && *in.UniqueUsers < 0) ||
		(in.TxVolumeUSD != nil && in.TxVolumeUSD.IsNegative()) {
		return time.Time{}, fmt.Errorf("%w: facts cannot be negative", ErrInvalidFact)
	}

	return day, nil
}
