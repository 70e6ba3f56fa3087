package slider

import (
	"math"
	"time"

	"chain-usage-dashboard/internal/dashboard/core/domain"
)

// Mapper converts slider values to calendar days and back: value v is Epoch + v days.
type Mapper struct {
	Epoch   time.Time
	MaxDays int
}

func NewMapper(epoch time.Time, maxDays int) Mapper {
	return Mapper{Epoch: domain.Truncate(epoch), MaxDays: maxDays}
}

func (m Mapper) ValueToDate(v int) time.Time {
	return domain.Truncate(m.Epoch).AddDate(0, 0, v)
}

// DateToValue is the inverse of ValueToDate, rounding to the nearest day.
func (m Mapper) DateToValue(d time.Time) int {
	delta := d.Sub(domain.Truncate(m.Epoch))
	return int(math.Round(float64(delta) / float64(domain.Day)))
}

func (m Mapper) RangeToDates(r domain.SliderRange) domain.DateRange {
	return domain.DateRange{
		Start: m.ValueToDate(r.Left),
		End:   m.ValueToDate(r.Right),
	}
}

// DatesToRange converts a date range and clamps both values into [0, MaxDays].
func (m Mapper) DatesToRange(r domain.DateRange) domain.SliderRange {
	return domain.SliderRange{
		Left:  clamp(m.DateToValue(r.Start), 0, m.MaxDays),
		Right: clamp(m.DateToValue(r.End), 0, m.MaxDays),
	}
}

// Fits reports whether r lies inside the mapper window and spans at least
// minGap days, so that the slider pair for r maps back to r exactly.
func (m Mapper) Fits(r domain.DateRange, minGap int) bool {
	lo, hi := m.DateToValue(r.Start), m.DateToValue(r.End)
	return lo >= 0 && hi <= m.MaxDays && hi-lo >= minGap
}

// NewSlider builds a slider spanning the whole mapper window.
func (m Mapper) NewSlider(minGap, step int, r domain.SliderRange) (*DualRange, error) {
	return New(0, m.MaxDays, minGap, step, r.Left, r.Right)
}
