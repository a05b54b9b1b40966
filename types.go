package atlas

import "image"

// Rectangle is an axis-aligned integer rectangle in canvas pixel space.
// x+w must not exceed the canvas width, and y+h must not exceed the canvas
// height, for any rectangle this package hands back to a caller.
type Rectangle struct {
	X, Y, W, H int
}

// Right returns the exclusive right edge, X+W.
func (r Rectangle) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge, Y+H.
func (r Rectangle) Bottom() int { return r.Y + r.H }

// Overlaps reports whether r and o share any pixel.
func (r Rectangle) Overlaps(o Rectangle) bool {
	return r.X < o.Right() && o.X < r.Right() && r.Y < o.Bottom() && o.Y < r.Bottom()
}

// Area returns W*H.
func (r Rectangle) Area() int { return r.W * r.H }

// BoundingBox is the tight, inclusive bound of the inked pixels inside a
// rasterized glyph's source image. Left/Top/Right/Bottom are zero-based
// pixel coordinates; Right and Bottom are inclusive, not exclusive.
type BoundingBox struct {
	Left, Top, Right, Bottom int
}

// Width returns the bounding box's width: Right-Left+1.
func (b BoundingBox) Width() int { return b.Right - b.Left + 1 }

// Height returns the bounding box's height: Bottom-Top+1.
func (b BoundingBox) Height() int { return b.Bottom - b.Top + 1 }

// valid reports whether the box describes a non-degenerate region.
func (b BoundingBox) valid() bool {
	return b.Right >= b.Left && b.Bottom >= b.Top
}

// RasterizedGlyph is the input contract supplied by an external rasterizer.
// The allocator only reads Source through the BoundingBox window; it never
// rasterizes glyphs itself.
type RasterizedGlyph struct {
	// Source is the bitmap produced by the rasterizer. The allocator reads
	// the BoundingBox sub-rectangle of it; it is never written to.
	Source image.Image

	// BoundingBox is the tight inclusive box of inked pixels within Source.
	BoundingBox BoundingBox

	// OriginOffsetX/Y is the pen-origin offset in bitmap pixels, copied
	// verbatim into the resulting PlacedGlyph.
	OriginOffsetX, OriginOffsetY int
}

// PlacedGlyph is a single successfully-allocated glyph record.
type PlacedGlyph struct {
	// Index is monotonically increasing, zero-based, and unique within one
	// allocator instance.
	Index int

	// X, Y, W, H describe the glyph's rectangle on the atlas canvas.
	X, Y, W, H int

	// OriginOffsetX/Y are copied verbatim from the RasterizedGlyph that
	// produced this placement.
	OriginOffsetX, OriginOffsetY int
}

// Rect returns the glyph's canvas rectangle.
func (g PlacedGlyph) Rect() Rectangle {
	return Rectangle{X: g.X, Y: g.Y, W: g.W, H: g.H}
}

// GlyphKey is the two-part key a glyph is indexed under: the characters it
// renders plus the style (font, size, weight, ...) it was rasterized with.
// A single (Chars, StyleKey) pair maps to exactly one placement; subpixel
// duplicates are out of scope (spec non-goal).
type GlyphKey struct {
	Chars    string
	StyleKey int
}

// UnusedRect is a free sub-rectangle left over inside a slab when the
// slab's tiling doesn't evenly divide slabW/slabH. The slab allocator
// indexes these twice — by exact height and by exact width — so a later
// glyph whose narrow side matches can reclaim one in O(1).
type UnusedRect struct {
	X, Y, W, H int
}

// Rect returns the free rectangle's canvas rectangle.
func (u UnusedRect) Rect() Rectangle {
	return Rectangle{X: u.X, Y: u.Y, W: u.W, H: u.H}
}
