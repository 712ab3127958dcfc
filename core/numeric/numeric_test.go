package numeric

import "testing"

func TestRoundHalfUp(t *testing.T) {
	cases := map[float64]float64{
		2.5:  3,
		2.49: 2,
		-2.5: -2,
		-2.6: -3,
		0:    0,
	}
	for in, want := range cases {
		if got := Round(in); got != want {
			t.Errorf("Round(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(3, 5, 195); got != 5 {
		t.Errorf("expected lower bound, got %d", got)
	}
	if got := Clamp(250.0, 5.0, 195.0); got != 195 {
		t.Errorf("expected upper bound, got %v", got)
	}
	if got := Clamp(40, 5, 195); got != 40 {
		t.Errorf("expected unchanged value, got %d", got)
	}
}

func TestRoundToStep(t *testing.T) {
	if got := RoundToStep(37.5, 5); got != 40 {
		t.Errorf("RoundToStep(37.5, 5) = %v, want 40", got)
	}
	if got := RoundToStep(36, 5); got != 35 {
		t.Errorf("RoundToStep(36, 5) = %v, want 35", got)
	}
}
