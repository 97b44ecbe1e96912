package core

import "testing"

func TestSizeHelpers(t *testing.T) {
	s := Size{W: 640, H: 200}
	if s.Transposed() != (Size{W: 200, H: 640}) {
		t.Fatalf("unexpected transpose %v", s.Transposed())
	}
	if got := s.ClampTo(512); got != (Size{W: 512, H: 200}) {
		t.Fatalf("unexpected clamp %v", got)
	}
	if (Size{W: 0, H: 3}).Area() != 0 {
		t.Fatal("empty size must have zero area")
	}
}

func TestGridIndexIsRowMajorByX(t *testing.T) {
	g := NewGrid(4)
	g.Cells()[g.Index(2, 3)] = 7
	if g.At(2, 3) != 7 || g.Row(2)[3] != 7 {
		t.Fatal("Index, At and Row disagree")
	}
	if g.Index(2, 3) != 11 {
		t.Fatalf("expected index 11, got %d", g.Index(2, 3))
	}
	c := g.Clone()
	c.Cells()[0] = 1
	if g.Cells()[0] != 0 {
		t.Fatal("Clone must not share storage")
	}
	if !NewGrid(0).Empty() {
		t.Fatal("zero side grid must be empty")
	}
}

func TestRNGDeterministic(t *testing.T) {
	a, b := NewRNG(9), NewRNG(9)
	for i := 0; i < 8; i++ {
		if a.Range(0, 360) != b.Range(0, 360) {
			t.Fatal("same seed must produce the same sequence")
		}
	}
	if v := NewRNG(1).Range(5, 5); v != 5 {
		t.Fatalf("degenerate range must return lo, got %v", v)
	}
}

func TestParameterControlClamp(t *testing.T) {
	c := ParameterControl{Min: 1, Max: 60}
	if c.Clamp(0) != 1 || c.Clamp(90) != 60 || c.Clamp(30) != 30 {
		t.Fatal("clamp out of bounds")
	}
	snap := ParameterSnapshot{Groups: []ParameterGroup{{Params: []Parameter{{Key: "a", Value: "1"}}}}}
	if p, ok := snap.Lookup("a"); !ok || p.Value != "1" {
		t.Fatal("Lookup failed")
	}
}
