package atlas

import (
	"image"
	"image/color"
	"testing"
)

func TestImageCanvasBlitAndFillRect(t *testing.T) {
	c := NewImageCanvas(20, 20)

	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}
	c.Blit(src, src.Bounds(), 2, 3)

	got := c.Image().At(2, 3)
	r, g, b, a := got.RGBA()
	if r>>8 != 255 || g>>8 != 0 || b>>8 != 0 || a>>8 != 255 {
		t.Errorf("blitted pixel = (%d,%d,%d,%d), want (255,0,0,255)", r>>8, g>>8, b>>8, a>>8)
	}
	// Outside the blit target, the canvas should remain untouched (black/transparent).
	outside := c.Image().At(15, 15)
	_, _, _, a2 := outside.RGBA()
	if a2 != 0 {
		t.Errorf("pixel outside blit should be untouched, alpha = %d", a2)
	}

	c.FillRect(Rectangle{X: 0, Y: 0, W: 5, H: 5}, color.RGBA{G: 255, A: 255})
	fr, fg, fb, _ := c.Image().At(0, 0).RGBA()
	if fr>>8 != 0 || fg>>8 != 255 || fb>>8 != 0 {
		t.Errorf("filled pixel = (%d,%d,%d), want (0,255,0)", fr>>8, fg>>8, fb>>8)
	}
}

func TestImageCanvasDimensions(t *testing.T) {
	c := NewImageCanvas(37, 41)
	if c.Width() != 37 || c.Height() != 41 {
		t.Errorf("dimensions = (%d,%d), want (37,41)", c.Width(), c.Height())
	}
}

func TestValidateRasterizedGlyphPanicsOnNilSource(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for a nil source image")
		}
	}()
	validateRasterizedGlyph(RasterizedGlyph{BoundingBox: BoundingBox{Right: 1, Bottom: 1}})
}

func TestValidateRasterizedGlyphPanicsOnInvalidBoundingBox(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic for an inverted bounding box")
		}
	}()
	g := makeGlyph(4, 4)
	g.BoundingBox = BoundingBox{Left: 5, Top: 0, Right: 1, Bottom: 3}
	validateRasterizedGlyph(g)
}
