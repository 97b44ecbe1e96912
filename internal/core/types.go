package core

// Size describes the dimensions of a raster or surface in pixels.
type Size struct {
	W int
	H int
}

// Empty reports whether either dimension is non-positive.
func (s Size) Empty() bool { return s.W <= 0 || s.H <= 0 }

// Area returns W*H, or zero for empty sizes.
func (s Size) Area() int {
	if s.Empty() {
		return 0
	}
	return s.W * s.H
}

// Transposed swaps the width and height.
func (s Size) Transposed() Size { return Size{W: s.H, H: s.W} }

// ClampTo limits both dimensions to at most max.
func (s Size) ClampTo(max int) Size {
	if s.W > max {
		s.W = max
	}
	if s.H > max {
		s.H = max
	}
	return s
}
