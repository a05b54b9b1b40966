package atlas

// shelfRow is the current-row cursor for a ShelfAllocator: a left edge X,
// a baseline Y, and an accrued height H equal to the tallest glyph placed
// in the row so far.
type shelfRow struct {
	x, y, h int
}

// ShelfAllocator packs rectangles into horizontal rows. Each row grows
// left to right; a glyph too wide for the remaining space on the current
// row finalizes it and starts a new one below.
//
// Grounded on the teacher's shelf-packing allocator (text/msdf/shelf.go),
// generalized from fixed-padding rectangle packing to the glyph-keyed
// Allocate contract this package specifies, and with no sync.Mutex: the
// allocator is single-threaded by contract (see doc.go), not a concurrent
// cache like the teacher's AtlasManager.
type ShelfAllocator struct {
	canvas Canvas
	row    shelfRow
	index  *GlyphIndex
	next   int
}

// NewShelfAllocator creates a shelf allocator that packs glyphs onto the
// given canvas, starting from an empty top-left row.
func NewShelfAllocator(canvas Canvas) *ShelfAllocator {
	return &ShelfAllocator{
		canvas: canvas,
		index:  newGlyphIndex(),
	}
}

// Allocate places a glyph on the current shelf, advancing or finalizing
// the row as needed. It returns (PlacedGlyph{}, false) if the glyph cannot
// fit, with no canvas pixels drawn, no index entry written, and no
// counter advanced.
func (a *ShelfAllocator) Allocate(chars string, styleKey int, g RasterizedGlyph) (PlacedGlyph, bool) {
	validateRasterizedGlyph(g)

	canvasW, canvasH := a.canvas.Width(), a.canvas.Height()
	gw, gh := g.BoundingBox.Width(), g.BoundingBox.Height()

	// Precondition: a glyph wider than the entire canvas can never fit,
	// regardless of row state. The original shelf algorithm advances the
	// row and then only re-checks height, silently overflowing a glyph
	// that is simply too wide; this guard closes that gap (see spec's
	// open question on shelf horizontal overflow).
	if gw > canvasW {
		return PlacedGlyph{}, false
	}

	// 1. Horizontal advance: finalize the row if the glyph doesn't fit in
	// the remaining width. The new row state is only committed once the
	// glyph is known to fit.
	row := a.row
	if gw > canvasW-row.x {
		row.x = 0
		row.y += row.h
		row.h = 1 // preserved quirk: reset to 1, not 0 (see spec §9)
	}

	// 2. Vertical check.
	if row.y+gh > canvasH {
		return PlacedGlyph{}, false
	}

	// 3. Blit.
	x, y := row.x, row.y
	blitGlyph(a.canvas, g, x, y)

	// 4. Record.
	placed := PlacedGlyph{
		Index:         a.next,
		X:             x,
		Y:             y,
		W:             gw,
		H:             gh,
		OriginOffsetX: g.OriginOffsetX,
		OriginOffsetY: g.OriginOffsetY,
	}
	a.next++

	// 5. Advance cursor.
	row.x += gw
	if gh > row.h {
		row.h = gh
	}
	a.row = row

	// 6. Index.
	a.index.insert(chars, styleKey, placed)

	return placed, true
}

// GlyphMap returns a read-only view of the allocator's glyph index.
func (a *ShelfAllocator) GlyphMap() *GlyphIndex { return a.index }

// CanvasSize returns the allocator's fixed canvas dimensions.
func (a *ShelfAllocator) CanvasSize() (w, h int) { return a.canvas.Width(), a.canvas.Height() }

// UsagePreview produces a diagnostic image plus textual pixel accounting.
func (a *ShelfAllocator) UsagePreview() (*Preview, error) {
	return shelfUsagePreview(a)
}
