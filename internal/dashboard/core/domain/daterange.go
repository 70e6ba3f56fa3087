package domain

import (
	"errors"
	"time"
)

var ErrInvalidDateRange = errors.New("invalid date range")

const Day = 24 * time.Hour

// DateRange is an inclusive range of calendar days in UTC.
type DateRange struct {
	Start time.Time
	End   time.Time
}

// Truncate returns t as midnight UTC of its calendar day.
func Truncate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string as midnight UTC.
func ParseDay(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// NewDateRange parses both bounds and requires start <= end.
func NewDateRange(from, to string) (DateRange, error) {
	start, err := ParseDay(from)
	if err != nil {
		return DateRange{}, ErrInvalidDateRange
	}
	end, err := ParseDay(to)
	if err != nil {
		return DateRange{}, ErrInvalidDateRange
	}
	r := DateRange{Start: start, End: end}
	if !r.Valid() {
		return DateRange{}, ErrInvalidDateRange
	}
	return r, nil
}

func (r DateRange) Valid() bool {
	return !r.Start.IsZero() && !r.End.IsZero() && !r.End.Before(r.Start)
}

// Days is the number of whole days between Start and End (End - Start).
func (r DateRange) Days() int {
	return int(Truncate(r.End).Sub(Truncate(r.Start)) / Day)
}

// Contains reports whether the day is within the range, bounds included.
func (r DateRange) Contains(day time.Time) bool {
	d := Truncate(day)
	return !d.Before(Truncate(r.Start)) && !d.After(Truncate(r.End))
}

// ContainsDate is Contains for a YYYY-MM-DD string. Unparseable dates are outside every range.
func (r DateRange) ContainsDate(s string) bool {
	d, err := ParseDay(s)
	if err != nil {
		return false
	}
	return r.Contains(d)
}

func (r DateRange) From() string { return r.Start.Format(DateLayout) }
func (r DateRange) To() string   { return r.End.Format(DateLayout) }
