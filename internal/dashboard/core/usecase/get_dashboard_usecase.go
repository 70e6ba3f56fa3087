package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"chain-usage-dashboard/internal/dashboard/core/domain"
	"chain-usage-dashboard/internal/dashboard/core/geo"
	"chain-usage-dashboard/internal/dashboard/core/growth"
	"chain-usage-dashboard/internal/dashboard/core/ports"
	"chain-usage-dashboard/internal/dashboard/core/slider"
	"chain-usage-dashboard/internal/observability"
)

var (
	ErrInvalidChain           = errors.New("chain is required")
	ErrInvalidDateRange       = errors.New("invalid date range")
	ErrInvalidMetric          = errors.New("invalid metric")
	ErrConflictingCrossFilter = errors.New("filtered_by_category and filtered_by_country are mutually exclusive")
	ErrStaleRequest           = errors.New("request superseded by a newer one")
	ErrRangeOutsideSlider     = errors.New("date range does not fit the slider window")
)

type GetDashboardInput struct {
	Chain string
	From  string // YYYY-MM-DD, inclusive
	To    string // YYYY-MM-DD, inclusive

	Country  string // optional
	Category string // optional

	FilteredByCategory string // optional, exclusive with FilteredByCountry
	FilteredByCountry  string
	Metric             string // requests | users | volume
}

// State validates the input and turns it into the engine's explicit state.
func (in GetDashboardInput) State() (domain.DashboardState, error) {
	chain := strings.TrimSpace(in.Chain)
	if chain == "" {
		return domain.DashboardState{}, ErrInvalidChain
	}

	r, err := domain.NewDateRange(in.From, in.To)
	if err != nil {
		return domain.DashboardState{}, ErrInvalidDateRange
	}

	metric, err := domain.ParseMetric(in.Metric)
	if err != nil {
		return domain.DashboardState{}, ErrInvalidMetric
	}

	cross := domain.CrossFilter{
		ByCategory: strings.TrimSpace(in.FilteredByCategory),
		ByCountry:  countryID(in.FilteredByCountry),
	}
	if cross.ByCategory != "" && cross.ByCountry != "" {
		return domain.DashboardState{}, ErrConflictingCrossFilter
	}

	return domain.DashboardState{
		Chain:    chain,
		Range:    r,
		Country:  countryID(in.Country),
		Category: strings.TrimSpace(in.Category),
		Cross:    cross,
		Metric:   metric,
	}, nil
}

// countryID maps numeric ISO codes coming from the map layer to the alpha-2
// codes stored in fact rows.
func countryID(s string) string {
	return geo.ToAlpha2(strings.TrimSpace(s))
}

type Options struct {
	// HaltOnSourceError returns row source failures to the caller instead of
	// building the dashboard over an empty row set.
	HaltOnSourceError bool
	// DefaultMetric is used when the input names no metric.
	DefaultMetric     string
	Mapper            *slider.Mapper
	// SliderMinGap is the smallest number of days between the two thumbs.
	SliderMinGap      int
	Logger            *zap.Logger
	Metrics           *observability.Metrics
}

type GetDashboardUseCase struct {
	reader ports.FactReaderPort
	opts   Options
	log    *zap.Logger
}

func NewGetDashboardUseCase(reader ports.FactReaderPort, opts Options) *GetDashboardUseCase {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	return &GetDashboardUseCase{reader: reader, opts: opts, log: log.Named("dashboard")}
}

// Execute validates the input, fetches the current and prior period rows and
// builds the dashboard view-model.
func (uc *GetDashboardUseCase) Execute(ctx context.Context, in GetDashboardInput) (*domain.Dashboard, error) {
	if strings.TrimSpace(in.Metric) == "" {
		in.Metric = uc.opts.DefaultMetric
	}
	state, err := in.State()
	if err != nil {
		return nil, err
	}
	if m := uc.opts.Mapper; m != nil && !m.Fits(state.Range, uc.opts.SliderMinGap) {
		return nil, fmt.Errorf("%w: %s..%s", ErrRangeOutsideSlider, state.Range.From(), state.Range.To())
	}

	started := time.Now()

	current, prior, err := uc.fetch(ctx, state)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			uc.opts.Metrics.ObserveDashboard("cancelled", time.Since(started))
			return nil, ctxErr
		}

		uc.opts.Metrics.SourceError()
		if uc.opts.HaltOnSourceError {
			uc.opts.Metrics.ObserveDashboard("source_error", time.Since(started))
			return nil, err
		}

		uc.log.Warn("row source failed, aggregating over no rows",
			zap.String("chain", state.Chain),
			zap.String("from", state.Range.From()),
			zap.String("to", state.Range.To()),
			zap.Error(err),
		)
		current, prior = nil, nil
	}

	d := Build(state, current, prior, uc.opts.Mapper)
	if err != nil {
		d.SourceError = err.Error()
	}

	uc.opts.Metrics.ObserveDashboard("ok", time.Since(started))
	uc.log.Debug("dashboard built",
		zap.String("chain", state.Chain),
		zap.Int("current_rows", len(current)),
		zap.Int("prior_rows", len(prior)),
		zap.Duration("took", time.Since(started)),
	)
	return d, nil
}

// fetch reads both periods concurrently. Rows for every chain are needed for
// rankings. Source errors are returned as they are.
func (uc *GetDashboardUseCase) fetch(ctx context.Context, state domain.DashboardState) (current, prior []domain.FactRow, err error) {
	priorRange := growth.PriorPeriod(state.Range)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := uc.reader.QueryFacts(gctx, rowFilter(state, state.Range))
		if err != nil {
			return err
		}
		current = rows
		return nil
	})
	g.Go(func() error {
		rows, err := uc.reader.QueryFacts(gctx, rowFilter(state, priorRange))
		if err != nil {
			return err
		}
		prior = rows
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return current, prior, nil
}

func rowFilter(state domain.DashboardState, r domain.DateRange) ports.RowFilter {
	f := ports.RowFilter{From: r.Start, To: r.End}
	if state.Country != "" {
		c := state.Country
		f.Country = &c
	}
	if state.Category != "" {
		c := state.Category
		f.Category = &c
	}
	return f
}
