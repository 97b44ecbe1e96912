package plasma

import (
	"runtime"

	"plasma/internal/core"
	"plasma/internal/render"

	"golang.org/x/sync/errgroup"
)

// minParallelPixels is the raster area below which RenderFrame stays on the
// calling goroutine.
const minParallelPixels = 64 * 64

// RenderFrame rasterizes one plasma frame into dst, which must hold
// raster.W*raster.H pixels. Pixel (x, y) is written to dst[x*raster.H+y].
//
// The caller guarantees raster.W, raster.H <= maps.Size/2; Config.Validate
// enforces this for sessions. When the height maps are empty every pixel is
// set to debug instead. Work is split by x across at most workers goroutines
// (GOMAXPROCS when workers <= 0), each writing a disjoint block of dst.
func RenderFrame(dst []uint32, maps *HeightMaps, palette *Palette, off Offsets, raster core.Size, workers int, debug uint32) {
	dst = dst[:raster.Area()]
	if maps.Empty() || palette == nil {
		render.Fill(dst, debug)
		return
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers == 1 || raster.Area() < minParallelPixels {
		renderRows(dst, maps, palette, off, raster, 0, raster.W)
		return
	}

	chunk := (raster.W + workers - 1) / workers
	var g errgroup.Group
	for start := 0; start < raster.W; start += chunk {
		end := min(start+chunk, raster.W)
		g.Go(func() error {
			renderRows(dst, maps, palette, off, raster, start, end)
			return nil
		})
	}
	_ = g.Wait()
}

// renderRows fills the buffer blocks for x in [from, to).
func renderRows(dst []uint32, maps *HeightMaps, palette *Palette, off Offsets, raster core.Size, from, to int) {
	size := maps.Size
	ripple := maps.Ripple.Cells()
	chaos := maps.Chaos.Cells()
	lut := &palette.Packed
	h := raster.H
	for x := from; x < to; x++ {
		i := (x+off.DY1)*size + off.DX1
		k := (x+off.DY2)*size + off.DX2
		r1 := ripple[i : i+h]
		r2 := chaos[k : k+h]
		out := dst[x*h : x*h+h]
		for y := range out {
			out[y] = lut[uint8(r1[y]+r2[y])]
		}
	}
}
