package slider_test

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chain-usage-dashboard/internal/dashboard/core/domain"
	"chain-usage-dashboard/internal/dashboard/core/slider"
)

func newSlider(t *testing.T, min, max, gap, step, left, right int) *slider.DualRange {
	t.Helper()
	s, err := slider.New(min, max, gap, step, left, right)
	require.NoError(t, err)
	return s
}

func TestDrag_LeftClampsBelowRight(t *testing.T) {
	s := newSlider(t, 0, 60, 1, 1, 0, 60)

	require.True(t, s.PointerDown(slider.ThumbLeft))
	assert.Equal(t, slider.DraggingLeft, s.Mode())

	s.PointerMove(59)
	assert.Equal(t, 59, s.Range().Left)

	s.PointerMove(60)
	assert.Equal(t, 59, s.Range().Left, "left stops at right - minGap")
	assert.Equal(t, 60, s.Range().Right)

	s.PointerUp()
	assert.Equal(t, slider.Idle, s.Mode())
}

func TestDrag_RightClampsAboveLeft(t *testing.T) {
	s := newSlider(t, 0, 60, 5, 1, 20, 40)

	s.PointerDown(slider.ThumbRight)
	s.PointerMove(3)
	assert.Equal(t, 25, s.Range().Right)
	s.PointerMove(99)
	assert.Equal(t, 60, s.Range().Right)
	assert.Equal(t, 20, s.Range().Left)
}

func TestPointerDown_OneThumbAtATime(t *testing.T) {
	s := newSlider(t, 0, 10, 0, 1, 2, 8)

	require.True(t, s.PointerDown(slider.ThumbLeft))
	assert.False(t, s.PointerDown(slider.ThumbRight))
	assert.Equal(t, slider.DraggingLeft, s.Mode())

	s.PointerMove(5)
	assert.Equal(t, 5, s.Range().Left)
	assert.Equal(t, 8, s.Range().Right)
}

func TestPointerMove_IdleIsNoop(t *testing.T) {
	s := newSlider(t, 0, 10, 0, 1, 2, 8)
	s.PointerMove(5)
	assert.Equal(t, domain.SliderRange{Left: 2, Right: 8}, s.Range())
}

func TestTrackClick_MovesCloserThumb(t *testing.T) {
	s := newSlider(t, 0, 100, 1, 1, 20, 80)

	assert.Equal(t, slider.ThumbLeft, s.TrackClick(30))
	assert.Equal(t, 30, s.Range().Left)

	assert.Equal(t, slider.ThumbRight, s.TrackClick(70))
	assert.Equal(t, 70, s.Range().Right)

	// equidistant goes to the left thumb
	assert.Equal(t, slider.ThumbLeft, s.TrackClick(50))
	assert.Equal(t, 50, s.Range().Left)

	assert.Equal(t, slider.ThumbRight, s.TrackClick(95))
	assert.Equal(t, 95, s.Range().Right)
}

func TestTrackClick_CollapsedThumbs(t *testing.T) {
	s := newSlider(t, 0, 100, 0, 1, 40, 40)

	assert.Equal(t, slider.ThumbLeft, s.TrackClick(10))
	assert.Equal(t, domain.SliderRange{Left: 10, Right: 40}, s.Range())

	s2 := newSlider(t, 0, 100, 0, 1, 40, 40)
	assert.Equal(t, slider.ThumbRight, s2.TrackClick(90))
	assert.Equal(t, domain.SliderRange{Left: 40, Right: 90}, s2.Range())
}

func TestKeyboard(t *testing.T) {
	s := newSlider(t, 0, 100, 2, 3, 10, 50)

	require.NoError(t, s.KeyDown(slider.ThumbLeft, slider.KeyArrowRight))
	assert.Equal(t, 13, s.Range().Left)
	require.NoError(t, s.KeyDown(slider.ThumbLeft, slider.KeyArrowDown))
	assert.Equal(t, 10, s.Range().Left)
	require.NoError(t, s.KeyDown(slider.ThumbLeft, slider.KeyPageUp))
	assert.Equal(t, 40, s.Range().Left)
	require.NoError(t, s.KeyDown(slider.ThumbLeft, slider.KeyPageUp))
	assert.Equal(t, 48, s.Range().Left)
	require.NoError(t, s.KeyDown(slider.ThumbLeft, slider.KeyHome))
	assert.Equal(t, 0, s.Range().Left)
	require.NoError(t, s.KeyDown(slider.ThumbLeft, slider.KeyEnd))
	assert.Equal(t, 48, s.Range().Left)

	require.NoError(t, s.KeyDown(slider.ThumbRight, slider.KeyEnd))
	assert.Equal(t, 100, s.Range().Right)
	require.NoError(t, s.KeyDown(slider.ThumbRight, slider.KeyPageDown))
	assert.Equal(t, 70, s.Range().Right)
	require.NoError(t, s.KeyDown(slider.ThumbRight, slider.KeyHome))
	assert.Equal(t, 50, s.Range().Right)

	assert.ErrorIs(t, s.KeyDown(slider.ThumbNone, slider.KeyHome), slider.ErrUnknownThumb)
	assert.ErrorIs(t, s.KeyDown(slider.ThumbLeft, slider.Key(99)), slider.ErrUnknownKey)
}

func TestNew_InvalidBounds(t *testing.T) {
	_, err := slider.New(0, 3, 5, 1, 0, 3)
	assert.ErrorIs(t, err, slider.ErrInvalidBounds)
}

func TestNew_ClampsInitialThumbs(t *testing.T) {
	s := newSlider(t, 0, 10, 2, 1, 12, -4)
	assert.Equal(t, domain.SliderRange{Left: 8, Right: 10}, s.Range())
}

func TestRandomOperations_KeepThumbsOrdered(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for _, gap := range []int{0, 1, 3, 10} {
		s := newSlider(t, 0, 60, gap, 1+rng.Intn(3), rng.Intn(61), rng.Intn(61))

		for i := 0; i < 2000; i++ {
			v := rng.Intn(90) - 15
			thumb := slider.Thumb(1 + rng.Intn(2))
			switch rng.Intn(6) {
			case 0:
				s.PointerDown(thumb)
			case 1:
				s.PointerMove(v)
			case 2:
				s.PointerUp()
			case 3:
				s.TrackClick(v)
			case 4:
				_ = s.KeyDown(thumb, slider.Key(1+rng.Intn(8)))
			case 5:
				s.SetLeft(v)
			}

			require.LessOrEqual(t, s.Min, s.Range().Left)
			require.LessOrEqual(t, s.Range().Left+gap, s.Range().Right, "gap=%d step=%d", gap, i)
			require.LessOrEqual(t, s.Range().Right, s.Max)
		}
	}
}

func TestReplay(t *testing.T) {
	s := newSlider(t, 0, 60, 1, 1, 0, 60)

	err := s.Replay([]slider.Event{
		{Type: "pointer_down", Thumb: "left"},
		{Type: "pointer_move", Value: 59},
		{Type: "pointer_move", Value: 75},
		{Type: "pointer_up"},
		{Type: "key_down", Thumb: "right", Key: "PageDown"},
		{Type: "track_click", Value: 2},
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SliderRange{Left: 2, Right: 60}, s.Range())

	err = s.Replay([]slider.Event{{Type: "set_left", Value: 10}, {Type: "wiggle"}, {Type: "set_left", Value: 20}})
	assert.ErrorIs(t, err, slider.ErrUnknownEvent)
	assert.Equal(t, 10, s.Range().Left)
}

func TestMapper_RoundTrip(t *testing.T) {
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	m := slider.NewMapper(epoch, 800)

	for v := 0; v <= m.MaxDays; v++ {
		d := m.ValueToDate(v)
		require.Equal(t, v, m.DateToValue(d))
		require.True(t, d.Equal(m.ValueToDate(m.DateToValue(d))))
	}

	assert.Equal(t, "2024-03-01", m.ValueToDate(60).Format(domain.DateLayout))
	assert.Equal(t, 1, m.DateToValue(epoch.Add(20*time.Hour)))
	assert.Equal(t, 0, m.DateToValue(epoch.Add(11*time.Hour)))
}

func TestMapper_Ranges(t *testing.T) {
	m := slider.NewMapper(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC), 365)

	dr := m.RangeToDates(domain.SliderRange{Left: 31, Right: 58})
	assert.Equal(t, "2025-02-01", dr.From())
	assert.Equal(t, "2025-02-28", dr.To())
	assert.Equal(t, domain.SliderRange{Left: 31, Right: 58}, m.DatesToRange(dr))

	r, err := domain.NewDateRange("2024-12-01", "2027-01-01")
	require.NoError(t, err)
	assert.Equal(t, domain.SliderRange{Left: 0, Right: 365}, m.DatesToRange(r))
}

func TestSetters_AreTheOnlyWayToMoveThumbs(t *testing.T) {
	s := newSlider(t, 0, 100, 5, 1, 10, 20)

	s.SetLeft(500)
	s.SetRight(-500)

	assert.Equal(t, domain.SliderRange{Left: 15, Right: 20}, s.Range())
}
