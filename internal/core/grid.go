package core

// Grid stores a square field of float64 values in row-major order, where the
// row is the first coordinate: Index(x, y) == x*Side + y.
type Grid struct {
	Side int
	data []float64
}

// NewGrid allocates a side*side grid. Non-positive sides yield an empty grid.
func NewGrid(side int) *Grid {
	if side <= 0 {
		return &Grid{}
	}
	return &Grid{Side: side, data: make([]float64, side*side)}
}

// Cells exposes the backing slice so callers can read/write values directly.
func (g *Grid) Cells() []float64 { return g.data }

// Row returns the slice holding row x.
func (g *Grid) Row(x int) []float64 { return g.data[x*g.Side : (x+1)*g.Side] }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return x*g.Side + y }

// At returns the value stored at (x, y).
func (g *Grid) At(x, y int) float64 { return g.data[x*g.Side+y] }

// Len reports the number of cells.
func (g *Grid) Len() int { return len(g.data) }

// Empty reports whether the grid holds no cells.
func (g *Grid) Empty() bool { return len(g.data) == 0 }

// Clone returns a deep copy of the grid.
func (g *Grid) Clone() *Grid {
	out := &Grid{Side: g.Side}
	if g.data != nil {
		out.data = append([]float64(nil), g.data...)
	}
	return out
}
