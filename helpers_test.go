package atlas

import (
	"image"
	"image/color"
	"image/draw"
)

// makeGlyph builds a RasterizedGlyph with a solid-color w*h source bitmap
// and a bounding box that covers it exactly (Right/Bottom inclusive).
func makeGlyph(w, h int) RasterizedGlyph {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	return RasterizedGlyph{
		Source:      img,
		BoundingBox: BoundingBox{Left: 0, Top: 0, Right: w - 1, Bottom: h - 1},
	}
}

// makeGlyphWithOrigin is makeGlyph plus an explicit origin offset.
func makeGlyphWithOrigin(w, h, ox, oy int) RasterizedGlyph {
	g := makeGlyph(w, h)
	g.OriginOffsetX = ox
	g.OriginOffsetY = oy
	return g
}
