package plasma

import (
	"math"
	"runtime"

	"plasma/internal/core"

	"golang.org/x/sync/errgroup"
)

// DefaultMapSize is the side length of both height maps.
const DefaultMapSize = 1024

const (
	// RippleMax is the largest value stored in the ripple map.
	RippleMax = 128
	// ChaosMax is the largest value stored in the chaos map.
	ChaosMax = 127

	chaosScale = 0.022
)

// HeightMaps holds the two static fields the plasma scrolls over. Both are
// immutable after Generate returns and may be shared between sessions.
type HeightMaps struct {
	Size   int
	Ripple *core.Grid
	Chaos  *core.Grid
}

// Empty reports whether either map failed to build.
func (m *HeightMaps) Empty() bool {
	return m == nil || m.Ripple == nil || m.Chaos == nil || m.Ripple.Empty() || m.Chaos.Empty()
}

// Generate builds the ripple and chaos maps for a mapSize*mapSize domain.
// Rows are computed concurrently; the result does not depend on scheduling.
func Generate(mapSize int) *HeightMaps {
	m := &HeightMaps{Size: mapSize, Ripple: core.NewGrid(mapSize), Chaos: core.NewGrid(mapSize)}
	if mapSize <= 0 {
		m.Size = 0
		return m
	}

	half := mapSize / 2
	stretchHalf := half
	if stretchHalf < 1 {
		stretchHalf = 1
	}
	stretch := (3 * math.Pi) / float64(stretchHalf)

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))
	for x := 0; x < mapSize; x++ {
		g.Go(func() error {
			fillRippleRow(m.Ripple.Row(x), x, half, stretch)
			fillChaosRow(m.Chaos.Row(x), x, half)
			return nil
		})
	}
	_ = g.Wait()
	return m
}

func fillRippleRow(row []float64, x, half int, stretch float64) {
	cx := x - half
	for y := range row {
		cy := y - half
		d := math.Sqrt(float64(cx*cx + cy*cy))
		ripple := math.Sin(d * stretch)
		row[y] = math.Floor(((ripple + 1) / 2) * RippleMax)
	}
}

func fillChaosRow(row []float64, x, half int) {
	cx := float64(x - half)
	for y := range row {
		cy := float64(y - half)
		d1 := distance(0.8*cx, 1.3*cy) * chaosScale
		d2 := distance(1.35*cx, 0.45*cy) * chaosScale
		h := math.Sin(d1) + math.Cos(d2)
		row[y] = math.Floor(((h + 2) / 4) * ChaosMax)
	}
}

func distance(x, y float64) float64 {
	return math.Sqrt(x*x + y*y)
}
