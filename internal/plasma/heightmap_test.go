package plasma

import (
	"math"
	"slices"
	"sync"
	"testing"
)

var testMaps = sync.OnceValue(func() *HeightMaps { return Generate(DefaultMapSize) })

func TestGenerateSizesAndRanges(t *testing.T) {
	for _, size := range []int{1, 2, 3, 7, 64, 255} {
		m := Generate(size)
		checkMaps(t, m, size)
	}
	checkMaps(t, testMaps(), DefaultMapSize)
}

func checkMaps(t *testing.T, m *HeightMaps, size int) {
	t.Helper()
	if m.Size != size {
		t.Fatalf("size %d: maps report size %d", size, m.Size)
	}
	if m.Ripple.Len() != size*size || m.Chaos.Len() != size*size {
		t.Fatalf("size %d: got %d/%d cells, want %d", size, m.Ripple.Len(), m.Chaos.Len(), size*size)
	}
	for i, v := range m.Ripple.Cells() {
		if v < 0 || v > RippleMax || v != math.Trunc(v) {
			t.Fatalf("size %d: ripple[%d] = %v out of range", size, i, v)
		}
	}
	for i, v := range m.Chaos.Cells() {
		if v < 0 || v > ChaosMax || v != math.Trunc(v) {
			t.Fatalf("size %d: chaos[%d] = %v out of range", size, i, v)
		}
	}
}

func TestGenerateCenterValues(t *testing.T) {
	m := testMaps()
	half := DefaultMapSize / 2
	// d == 0 at the centre: sin(0) = 0 for the ripple, sin(0)+cos(0) = 1 for chaos.
	if got := m.Ripple.At(half, half); got != 64 {
		t.Fatalf("ripple centre = %v, want 64", got)
	}
	if got := m.Chaos.At(half, half); got != 95 {
		t.Fatalf("chaos centre = %v, want 95", got)
	}
	// The ripple is radially symmetric around the centre.
	if m.Ripple.At(half-10, half) != m.Ripple.At(half+10, half) || m.Ripple.At(half, half-7) != m.Ripple.At(half+7, half) {
		t.Fatal("ripple map is not radially symmetric")
	}
}

func TestGenerateDeterministic(t *testing.T) {
	a := Generate(96)
	b := Generate(96)
	if !slices.Equal(a.Ripple.Cells(), b.Ripple.Cells()) {
		t.Fatal("ripple map differs between identical calls")
	}
	if !slices.Equal(a.Chaos.Cells(), b.Chaos.Cells()) {
		t.Fatal("chaos map differs between identical calls")
	}
}

func TestGenerateNonPositiveSizeIsEmpty(t *testing.T) {
	for _, size := range []int{0, -4} {
		if m := Generate(size); !m.Empty() || m.Size != 0 {
			t.Fatalf("Generate(%d) should yield empty maps", size)
		}
	}
	var nilMaps *HeightMaps
	if !nilMaps.Empty() {
		t.Fatal("nil maps must report empty")
	}
}

func TestCombinedHeightFitsPalette(t *testing.T) {
	m := Generate(128)
	maxRipple := slices.Max(m.Ripple.Cells())
	maxChaos := slices.Max(m.Chaos.Cells())
	if maxRipple+maxChaos > PaletteSize-1 {
		t.Fatalf("combined height can reach %v", maxRipple+maxChaos)
	}
}
