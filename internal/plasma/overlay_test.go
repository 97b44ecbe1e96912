package plasma

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"
)

func TestOverlayDrawsNearBaseline(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 120, 80))
	NewOverlay(nil).DrawFPS(img, 20)

	drawn := 0
	minY, maxY := img.Bounds().Dy(), 0
	for y := 0; y < img.Bounds().Dy(); y++ {
		for x := 0; x < img.Bounds().Dx(); x++ {
			if img.RGBAAt(x, y) == (color.RGBA{255, 255, 255, 255}) {
				drawn++
				minY = min(minY, y)
				maxY = max(maxY, y)
				if x < 20 {
					t.Fatalf("text drawn left of the origin at x=%d", x)
				}
			}
		}
	}
	if drawn == 0 {
		t.Fatal("no text pixels drawn")
	}
	if maxY > 62 || minY < 45 {
		t.Fatalf("text spans rows %d..%d, expected around baseline 60", minY, maxY)
	}
}

func TestFPSLabel(t *testing.T) {
	if FPSLabel(17) != "17 FPS" {
		t.Fatalf("unexpected label %q", FPSLabel(17))
	}
}

func TestLoadFaceMissingFile(t *testing.T) {
	if _, err := LoadFace(filepath.Join(t.TempDir(), "missing.ttf"), 24); err == nil {
		t.Fatal("expected an error for a missing font")
	}
}
