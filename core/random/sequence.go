package random

// Sequence replays a fixed list of floats, wrapping around when exhausted.
// It is meant for tests and for replaying recorded runs.
type Sequence struct {
	values []float64
	next   int
	drawn  int
}

// NewSequence returns a Sequence over values. An empty sequence yields 0.
func NewSequence(values ...float64) *Sequence {
	return &Sequence{values: append([]float64(nil), values...)}
}

// Float implements Source
func (s *Sequence) Float() float64 {
	s.drawn++
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}

// Drawn reports how many values have been consumed.
func (s *Sequence) Drawn() int {
	return s.drawn
}

// Roll returns the float that makes D100 produce roll. Tests use it to
// script percentile outcomes.
func Roll(roll int) float64 {
	return (float64(roll) - 0.5) / 100
}
