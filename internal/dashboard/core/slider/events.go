package slider

// Event is one serialized UI interaction.
type Event struct {
	Type  string `json:"type"` // pointer_down, pointer_move, pointer_up, track_click, key_down, set_left, set_right
	Thumb string `json:"thumb,omitempty"`
	Value int    `json:"value,omitempty"`
	Key   string `json:"key,omitempty"`
}

// Apply feeds one event to the state machine.
func (s *DualRange) Apply(e Event) error {
	switch e.Type {
	case "pointer_down":
		t, err := ParseThumb(e.Thumb)
		if err != nil {
			return err
		}
		s.PointerDown(t)
	case "pointer_move":
		s.PointerMove(e.Value)
	case "pointer_up":
		s.PointerUp()
	case "track_click":
		s.TrackClick(e.Value)
	case "key_down":
		t, err := ParseThumb(e.Thumb)
		if err != nil {
			return err
		}
		k, err := ParseKey(e.Key)
		if err != nil {
			return err
		}
		return s.KeyDown(t, k)
	case "set_left":
		s.SetLeft(e.Value)
	case "set_right":
		s.SetRight(e.Value)
	default:
		return ErrUnknownEvent
	}
	return nil
}

// Replay applies events in order and stops at the first bad one.
// The state reflects every event before it.
func (s *DualRange) Replay(events []Event) error {
	for _, e := range events {
		if err := s.Apply(e); err != nil {
			return err
		}
	}
	return nil
}
