package usecase

import (
	"errors"
	"fmt"

	"chain-usage-dashboard/internal/dashboard/core/crossfilter"
	"chain-usage-dashboard/internal/dashboard/core/domain"
	"chain-usage-dashboard/internal/dashboard/core/slider"
)

var ErrInvalidControlInput = errors.New("invalid control input")

// SliderState is the slider after a replay together with the dates it selects.
type SliderState struct {
	Range domain.SliderRange
	Mode  string
	Dates domain.DateRange
}

// ControlsUseCase serves the stateless UI controls: the date slider and the
// growth card cross-filter.
type ControlsUseCase struct {
	mapper slider.Mapper
	minGap int
	step   int
}

func NewControlsUseCase(mapper slider.Mapper, minGap, step int) *ControlsUseCase {
	return &ControlsUseCase{mapper: mapper, minGap: minGap, step: step}
}

// Dates converts slider values to the date range they select. The values are
// clamped like any other slider update first.
func (uc *ControlsUseCase) Dates(left, right int) (SliderState, error) {
	s, err := uc.mapper.NewSlider(uc.minGap, uc.step, domain.SliderRange{Left: left, Right: right})
	if err != nil {
		return SliderState{}, fmt.Errorf("%w: %v", ErrInvalidControlInput, err)
	}
	return uc.state(s), nil
}

// Values converts a YYYY-MM-DD range to slider values.
func (uc *ControlsUseCase) Values(from, to string) (SliderState, error) {
	r, err := domain.NewDateRange(from, to)
	if err != nil {
		return SliderState{}, ErrInvalidDateRange
	}
	v := uc.mapper.DatesToRange(r)
	return uc.Dates(v.Left, v.Right)
}

// Replay applies UI events to a slider starting at start.
func (uc *ControlsUseCase) Replay(start domain.SliderRange, events []slider.Event) (SliderState, error) {
	s, err := uc.mapper.NewSlider(uc.minGap, uc.step, start)
	if err != nil {
		return SliderState{}, fmt.Errorf("%w: %v", ErrInvalidControlInput, err)
	}
	if err := s.Replay(events); err != nil {
		return SliderState{}, fmt.Errorf("%w: %v", ErrInvalidControlInput, err)
	}
	return uc.state(s), nil
}

func (uc *ControlsUseCase) state(s *slider.DualRange) SliderState {
	return SliderState{
		Range: s.Range(),
		Mode:  s.Mode().String(),
		Dates: uc.mapper.RangeToDates(s.Range()),
	}
}

// CrossFilter applies one action to the current selection.
func (uc *ControlsUseCase) CrossFilter(current domain.CrossFilter, action, value string) (domain.CrossFilter, error) {
	if current.ByCountry != "" {
		current.ByCountry = countryID(current.ByCountry)
	}
	if action == crossfilter.ActionSelectCountry {
		value = countryID(value)
	}

	c := crossfilter.New(current)
	if err := c.Apply(action, value); err != nil {
		return domain.CrossFilter{}, fmt.Errorf("%w: %v", ErrInvalidControlInput, err)
	}
	return c.State(), nil
}
