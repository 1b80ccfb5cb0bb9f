package random

import "testing"

func TestNew_SameSeedSameSequence(t *testing.T) {
	a, b := New(7), New(7)
	for i := 0; i < 20; i++ {
		if x, y := a.IntN(1000), b.IntN(1000); x != y {
			t.Fatalf("draw %d: got %d and %d from the same seed", i, x, y)
		}
	}
}

func TestDerive_StreamsDiffer(t *testing.T) {
	a, b := Derive(7, 0), Derive(7, 1)
	same := true
	for i := 0; i < 20; i++ {
		if a.Int64() != b.Int64() {
			same = false
		}
	}
	if same {
		t.Error("streams 0 and 1 of one seed produced the same sequence")
	}
}

func TestIntN_NonPositive(t *testing.T) {
	s := New(1)
	if got := s.IntN(0); got != 0 {
		t.Errorf("IntN(0) = %d, want 0", got)
	}
	if got := s.IntN(-3); got != 0 {
		t.Errorf("IntN(-3) = %d, want 0", got)
	}
}
