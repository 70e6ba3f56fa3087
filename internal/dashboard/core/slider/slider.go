// Package slider models the dual-thumb date range control and its mapping to
// calendar dates.
//
// The thumbs always satisfy Min <= Left, Left+MinGap <= Right, Right <= Max.
// Updates that would break this are clamped, never rejected.
package slider

import (
	"errors"
	"strings"

	"chain-usage-dashboard/internal/dashboard/core/domain"
)

var (
	ErrInvalidBounds = errors.New("slider bounds cannot fit the minimum gap")
	ErrUnknownThumb  = errors.New("unknown slider thumb")
	ErrUnknownKey    = errors.New("unknown slider key")
	ErrUnknownEvent  = errors.New("unknown slider event")
)

type Thumb int

const (
	ThumbNone Thumb = iota
	ThumbLeft
	ThumbRight
)

func ParseThumb(s string) (Thumb, error) {
	switch strings.ToLower(s) {
	case "left", "start":
		return ThumbLeft, nil
	case "right", "end":
		return ThumbRight, nil
	default:
		return ThumbNone, ErrUnknownThumb
	}
}

type Mode int

const (
	Idle Mode = iota
	DraggingLeft
	DraggingRight
)

func (m Mode) String() string {
	switch m {
	case DraggingLeft:
		return "dragging-left"
	case DraggingRight:
		return "dragging-right"
	default:
		return "idle"
	}
}

// DualRange is the slider state machine.
type DualRange struct {
	Min    int
	Max    int
	MinGap int
	Step   int

	left  int
	right int

	mode Mode
}

// New validates the bounds and clamps the initial thumbs into place.
// A non-positive step becomes 1, a negative gap becomes 0.
func New(min, max, minGap, step, left, right int) (*DualRange, error) {
	if minGap < 0 {
		minGap = 0
	}
	if step <= 0 {
		step = 1
	}
	if max-min < minGap {
		return nil, ErrInvalidBounds
	}
	s := &DualRange{Min: min, Max: max, MinGap: minGap, Step: step, right: max}
	s.SetLeft(left)
	s.SetRight(right)
	return s, nil
}

func (s *DualRange) Mode() Mode { return s.mode }

func (s *DualRange) Range() domain.SliderRange {
	return domain.SliderRange{Left: s.left, Right: s.right}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// SetLeft moves the left thumb, stopping at Min and at Right-MinGap.
func (s *DualRange) SetLeft(v int) {
	s.left = clamp(v, s.Min, s.right-s.MinGap)
}

// SetRight moves the right thumb, stopping at Left+MinGap and at Max.
func (s *DualRange) SetRight(v int) {
	s.right = clamp(v, s.left+s.MinGap, s.Max)
}

func (s *DualRange) set(t Thumb, v int) {
	switch t {
	case ThumbLeft:
		s.SetLeft(v)
	case ThumbRight:
		s.SetRight(v)
	}
}

// PointerDown starts dragging a thumb. It is ignored while another drag is active.
func (s *DualRange) PointerDown(t Thumb) bool {
	if s.mode != Idle {
		return false
	}
	switch t {
	case ThumbLeft:
		s.mode = DraggingLeft
	case ThumbRight:
		s.mode = DraggingRight
	default:
		return false
	}
	return true
}

// PointerMove moves the captured thumb. No-op when idle.
func (s *DualRange) PointerMove(v int) {
	switch s.mode {
	case DraggingLeft:
		s.SetLeft(v)
	case DraggingRight:
		s.SetRight(v)
	}
}

func (s *DualRange) PointerUp() { s.mode = Idle }

// TrackClick moves the thumb closer to v. On equal distance the left thumb
// moves unless v is at or past the right thumb.
func (s *DualRange) TrackClick(v int) Thumb {
	if s.mode != Idle {
		return ThumbNone
	}
	dl := abs(v - s.left)
	dr := abs(v - s.right)
	if dl < dr || (dl == dr && v < s.right) {
		s.SetLeft(v)
		return ThumbLeft
	}
	s.SetRight(v)
	return ThumbRight
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

type Key int

const (
	KeyArrowLeft Key = iota + 1
	KeyArrowRight
	KeyArrowUp
	KeyArrowDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
)

// ParseKey accepts DOM KeyboardEvent.key names.
func ParseKey(s string) (Key, error) {
	switch s {
	case "ArrowLeft", "Left":
		return KeyArrowLeft, nil
	case "ArrowRight", "Right":
		return KeyArrowRight, nil
	case "ArrowUp", "Up":
		return KeyArrowUp, nil
	case "ArrowDown", "Down":
		return KeyArrowDown, nil
	case "PageUp":
		return KeyPageUp, nil
	case "PageDown":
		return KeyPageDown, nil
	case "Home":
		return KeyHome, nil
	case "End":
		return KeyEnd, nil
	default:
		return 0, ErrUnknownKey
	}
}

// KeyDown moves the focused thumb: arrows by Step, page keys by 10*Step,
// Home and End to the slider bounds. The clamp still applies.
func (s *DualRange) KeyDown(t Thumb, k Key) error {
	cur := s.left
	if t == ThumbRight {
		cur = s.right
	} else if t != ThumbLeft {
		return ErrUnknownThumb
	}

	switch k {
	case KeyArrowLeft, KeyArrowDown:
		s.set(t, cur-s.Step)
	case KeyArrowRight, KeyArrowUp:
		s.set(t, cur+s.Step)
	case KeyPageUp:
		s.set(t, cur+10*s.Step)
	case KeyPageDown:
		s.set(t, cur-10*s.Step)
	case KeyHome:
		s.set(t, s.Min)
	case KeyEnd:
		s.set(t, s.Max)
	default:
		return ErrUnknownKey
	}
	return nil
}
