package atlas

import (
	"image"
	"image/color"
	"image/draw"
)

// Canvas is the drawing-surface contract an allocator needs: a clipped
// blit from a source bitmap region to a destination rectangle, plus enough
// surface access to support the usage preview (fill a rectangle, draw the
// live canvas at reduced alpha, and export everything as an image).
//
// The core never requires more than this from its drawing surface; a real
// renderer backend can implement Canvas directly over a GPU-backed texture
// instead of using ImageCanvas.
type Canvas interface {
	// Width and Height report the canvas's fixed pixel dimensions.
	Width() int
	Height() int

	// Blit copies the srcRect region of src onto the canvas with its
	// top-left corner at (dstX, dstY). No scaling, no blending beyond a
	// straight copy — it behaves like image/draw.Draw with draw.Src.
	Blit(src image.Image, srcRect image.Rectangle, dstX, dstY int)

	// FillRect fills a rectangle with a flat color, used by the usage
	// preview to paint category overlays.
	FillRect(r Rectangle, c color.Color)

	// Image exports the canvas contents as a read-only image, e.g. for a
	// usage preview or a debug dump to PNG.
	Image() image.Image
}

// ImageCanvas is the default Canvas implementation, backed by a plain
// image.RGBA. It is not safe for concurrent use, matching the allocator's
// own single-threaded contract.
type ImageCanvas struct {
	img *image.RGBA
}

// NewImageCanvas creates a canvas of the given pixel dimensions.
func NewImageCanvas(width, height int) *ImageCanvas {
	if width <= 0 || height <= 0 {
		panic("atlas: canvas dimensions must be positive")
	}
	return &ImageCanvas{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the canvas width in pixels.
func (c *ImageCanvas) Width() int { return c.img.Bounds().Dx() }

// Height returns the canvas height in pixels.
func (c *ImageCanvas) Height() int { return c.img.Bounds().Dy() }

// Blit copies srcRect from src to (dstX, dstY) on the canvas.
func (c *ImageCanvas) Blit(src image.Image, srcRect image.Rectangle, dstX, dstY int) {
	dst := image.Rect(dstX, dstY, dstX+srcRect.Dx(), dstY+srcRect.Dy())
	draw.Draw(c.img, dst, src, srcRect.Min, draw.Src)
}

// FillRect fills r with a flat color using a straight copy (no blending).
func (c *ImageCanvas) FillRect(r Rectangle, col color.Color) {
	dst := image.Rect(r.X, r.Y, r.Right(), r.Bottom())
	draw.Draw(c.img, dst, image.NewUniform(col), image.Point{}, draw.Src)
}

// Image returns the canvas's current pixel contents.
func (c *ImageCanvas) Image() image.Image { return c.img }

// blitGlyph copies the bounding-box window of a rasterized glyph onto a
// canvas at (x, y). Shared by both allocators.
func blitGlyph(c Canvas, g RasterizedGlyph, x, y int) {
	b := g.BoundingBox
	srcRect := image.Rect(b.Left, b.Top, b.Right+1, b.Bottom+1)
	c.Blit(g.Source, srcRect, x, y)
}

func validateRasterizedGlyph(g RasterizedGlyph) {
	if g.Source == nil {
		panic("atlas: " + ErrNilSource.Error())
	}
	if !g.BoundingBox.valid() {
		panic("atlas: " + ErrInvalidBoundingBox.Error())
	}
}

// drawOverWithAlpha composites src onto dst at a flat alpha using
// draw.DrawMask with a uniform alpha mask, the way font_atlas.go composites
// a glyph mask with draw.Over.
func drawOverWithAlpha(dst *image.RGBA, src image.Image, alpha uint8) {
	mask := image.NewUniform(color.Alpha{A: alpha})
	draw.DrawMask(dst, dst.Bounds(), src, image.Point{}, mask, image.Point{}, draw.Over)
}
