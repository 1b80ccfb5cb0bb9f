package world

import "testing"

// corridor returns a horizontal line of floor from x=-n to x=n
func corridor(n int) FloorSet {
	s := NewFloorSet()
	for x := -n; x <= n; x++ {
		s.Put(Pt(x, 0))
	}
	return s
}

func TestCalculateFOV_Corridor(t *testing.T) {
	vis := CalculateFOV(corridor(5), Origin, 3)

	cases := map[Point]bool{
		Origin:    true,
		Pt(3, 0):  true,
		Pt(-3, 0): true,
		Pt(4, 0):  false, // beyond radius
		Pt(0, 1):  true,  // wall next to the corridor
		Pt(0, 2):  false, // behind that wall
	}
	for p, want := range cases {
		if got := vis.Has(p); got != want {
			t.Errorf("visible(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestCalculateFOV_ZeroRadius(t *testing.T) {
	vis := CalculateFOV(corridor(2), Origin, 0)
	if vis.Size() != 1 || !vis.Has(Origin) {
		t.Errorf("radius 0 sees %v, want only the centre", vis.Sorted())
	}
}

func TestRevealFOV_Accumulates(t *testing.T) {
	floor := corridor(10)
	discovered := NewFloorSet()
	RevealFOV(discovered, floor, Pt(-8, 0), 2)
	RevealFOV(discovered, floor, Pt(8, 0), 2)

	if !discovered.Has(Pt(-10, 0)) || !discovered.Has(Pt(10, 0)) {
		t.Error("both ends should be discovered")
	}
	if discovered.Has(Origin) {
		t.Error("origin discovered without being in sight")
	}
}
