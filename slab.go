package atlas

// entryKey identifies an active slab by its exact entry tile dimensions.
type entryKey struct {
	w, h int
}

// slab is a fixed-size square region of the canvas specialized to a single
// entry dimension at creation time. It tiles glyphs of exactly (entryW,
// entryH) in row-major order.
type slab struct {
	x, y           int
	entryW, entryH int
	perRow, perCol int
	count          int
}

// capacity returns the number of entry tiles the slab can hold.
func (s *slab) capacity() int { return s.perRow * s.perCol }

// position returns the canvas coordinate of the n-th tile in row-major
// order.
func (s *slab) position(n int) (x, y int) {
	return s.x + (n%s.perRow)*s.entryW, s.y + (n/s.perRow)*s.entryH
}

// SlabAllocator groups like-sized glyphs into fixed-size square regions and
// recycles the leftover edges — strips too narrow for a full tile — for
// smaller glyphs.
//
// Grounded on the teacher's GridAllocator (text/msdf/shelf.go) for the
// "tile a fixed-size region in row-major order" core, generalized to
// specialize each slab to its own entry size and to recycle the remainder
// via exact-dimension free lists, per spec. Like ShelfAllocator, it carries
// no mutex: Allocate is single-threaded by contract.
type SlabAllocator struct {
	canvas Canvas
	index  *GlyphIndex
	next   int

	cfg         SlabConfig
	slabsPerRow int
	slabRows    int

	slabs  []*slab
	active map[entryKey]*slab

	// widthBuckets holds vertical recycled strips keyed by their exact
	// width; heightBuckets holds horizontal strips keyed by their exact
	// height. untracked holds carve byproducts that are never re-searched
	// (see popFreeRect / carveWidthKeyed / carveHeightKeyed).
	widthBuckets  map[int][]*UnusedRect
	heightBuckets map[int][]*UnusedRect
	untracked     []UnusedRect

	// edgeTotal accumulates the structural "slab edge" area — the portion
	// of every created slab's square not covered by its integer entry
	// grid — at slab-creation time. It is a diagnostic capacity figure for
	// the usage preview, not part of the disjoint used/wasted/restricted/
	// free partition (see preview.go).
	edgeTotal int
}

// NewSlabAllocator creates a slab allocator over canvas using cfg. It
// panics if cfg fails Validate against the canvas's dimensions — an
// invalid configuration is a programming error, not a runtime outcome.
func NewSlabAllocator(canvas Canvas, cfg SlabConfig) *SlabAllocator {
	if err := cfg.Validate(canvas.Width(), canvas.Height()); err != nil {
		panic("atlas: " + err.Error())
	}
	return &SlabAllocator{
		canvas:        canvas,
		index:         newGlyphIndex(),
		cfg:           cfg,
		slabsPerRow:   canvas.Width() / cfg.SlabW,
		slabRows:      canvas.Height() / cfg.SlabH,
		active:        make(map[entryKey]*slab),
		widthBuckets:  make(map[int][]*UnusedRect),
		heightBuckets: make(map[int][]*UnusedRect),
	}
}

// Allocate places a glyph using the active-slab / free-rect / new-slab
// sequence from spec §4.3.3. It returns (PlacedGlyph{}, false) with no
// side effects if the glyph cannot be placed anywhere.
func (a *SlabAllocator) Allocate(chars string, styleKey int, g RasterizedGlyph) (PlacedGlyph, bool) {
	validateRasterizedGlyph(g)

	gw, gh := g.BoundingBox.Width(), g.BoundingBox.Height()

	x, y, ok := a.allocateFromActiveSlab(gw, gh)
	if !ok {
		x, y, ok = a.allocateFromFreeRect(gw, gh)
	}
	if !ok {
		x, y, ok = a.allocateFromNewSlab(gw, gh)
	}
	if !ok {
		return PlacedGlyph{}, false
	}

	blitGlyph(a.canvas, g, x, y)

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
	a.index.insert(chars, styleKey, placed)

	return placed, true
}

// allocateFromActiveSlab tries the unique active slab for (gw, gh).
func (a *SlabAllocator) allocateFromActiveSlab(gw, gh int) (x, y int, ok bool) {
	key := entryKey{gw, gh}
	sl, exists := a.active[key]
	if !exists || sl.count >= sl.capacity() {
		return 0, 0, false
	}
	x, y = sl.position(sl.count)
	sl.count++
	if sl.count >= sl.capacity() {
		delete(a.active, key) // full: drops out of the active map, stays in a.slabs
	}
	return x, y, true
}

// allocateFromFreeRect searches the free-list bucketed on the glyph's
// smaller side, scanning from the end of the bucket (LIFO).
func (a *SlabAllocator) allocateFromFreeRect(gw, gh int) (x, y int, ok bool) {
	if gw < gh {
		r, found := popFreeRect(a.widthBuckets, gw, gw, gh)
		if !found {
			return 0, 0, false
		}
		x, y = a.carveWidthKeyed(r, gw, gh)
		return x, y, true
	}
	r, found := popFreeRect(a.heightBuckets, gh, gw, gh)
	if !found {
		return 0, 0, false
	}
	x, y = a.carveHeightKeyed(r, gw, gh)
	return x, y, true
}

// popFreeRect scans bucket[key] from the end for the first rectangle that
// can hold a (gw, gh) tile, removing it via swap-with-last. Order beyond
// "scan from the end" is not observable (spec design note), so swap-remove
// is used instead of an O(n) splice from the middle.
func popFreeRect(buckets map[int][]*UnusedRect, key, gw, gh int) (*UnusedRect, bool) {
	bucket := buckets[key]
	for i := len(bucket) - 1; i >= 0; i-- {
		r := bucket[i]
		if r.W >= gw && r.H >= gh {
			bucket[i] = bucket[len(bucket)-1]
			buckets[key] = bucket[:len(bucket)-1]
			return r, true
		}
	}
	return nil, false
}

// carveWidthKeyed carves a (gw, gh) tile from the top of r (a vertical
// strip, r.W == gw's bucket key) and shrinks r downward. Any horizontal
// leftover is pushed to the untracked list rather than re-indexed.
func (a *SlabAllocator) carveWidthKeyed(r *UnusedRect, gw, gh int) (x, y int) {
	x, y = r.X, r.Y
	if leftoverW := r.W - gw; leftoverW > 0 {
		a.untracked = append(a.untracked, UnusedRect{X: r.X + gw, Y: r.Y, W: leftoverW, H: gh})
	}
	r.Y += gh
	r.H -= gh
	if r.H > 0 {
		a.widthBuckets[r.W] = append(a.widthBuckets[r.W], r)
	}
	return x, y
}

// carveHeightKeyed carves a (gw, gh) tile from the left of r (a horizontal
// strip, r.H == gh's bucket key) and shrinks r rightward. This fixes the
// source's shrink-check asymmetry (it tested r.h == 0 here; it must be
// r.w == 0 — spec §9).
func (a *SlabAllocator) carveHeightKeyed(r *UnusedRect, gw, gh int) (x, y int) {
	x, y = r.X, r.Y
	if leftoverH := r.H - gh; leftoverH > 0 {
		a.untracked = append(a.untracked, UnusedRect{X: r.X, Y: r.Y + gh, W: gw, H: leftoverH})
	}
	r.X += gw
	r.W -= gw
	if r.W > 0 {
		a.heightBuckets[r.H] = append(a.heightBuckets[r.H], r)
	}
	return x, y
}

// allocateFromNewSlab creates a slab at the next grid position and places
// the triggering glyph as its first entry. It fails (no side effects) if
// the glyph can't fit in a slab tile at all, or the slab grid is full.
func (a *SlabAllocator) allocateFromNewSlab(gw, gh int) (x, y int, ok bool) {
	if gw > a.cfg.SlabW || gh > a.cfg.SlabH {
		return 0, 0, false
	}
	perRow := a.cfg.SlabW / gw
	perCol := a.cfg.SlabH / gh
	if perRow == 0 || perCol == 0 {
		return 0, 0, false
	}

	i := len(a.slabs)
	if i >= a.slabsPerRow*a.slabRows {
		return 0, 0, false // out of grid positions: spec's unimplemented TODO path
	}

	sl := &slab{
		x:      (i % a.slabsPerRow) * a.cfg.SlabW,
		y:      (i / a.slabsPerRow) * a.cfg.SlabH,
		entryW: gw,
		entryH: gh,
		perRow: perRow,
		perCol: perCol,
	}
	a.slabs = append(a.slabs, sl)
	a.recordSideRegions(sl)

	x, y = sl.position(sl.count)
	sl.count++
	if sl.count < sl.capacity() {
		a.active[entryKey{gw, gh}] = sl
	}
	return x, y, true
}

// recordSideRegions records the vertical and horizontal recycling strips
// left over when the slab's entry size doesn't evenly divide slabW/slabH.
func (a *SlabAllocator) recordSideRegions(sl *slab) {
	unusedW := a.cfg.SlabW % sl.entryW
	unusedH := a.cfg.SlabH % sl.entryH

	if unusedW > 0 {
		r := &UnusedRect{
			X: sl.x + a.cfg.SlabW - unusedW,
			Y: sl.y,
			W: unusedW,
			H: a.cfg.SlabH - unusedH,
		}
		a.widthBuckets[unusedW] = append(a.widthBuckets[unusedW], r)
		a.edgeTotal += r.W * r.H
	}
	if unusedH > 0 {
		r := &UnusedRect{
			X: sl.x,
			Y: sl.y + a.cfg.SlabH - unusedH,
			W: a.cfg.SlabW,
			H: unusedH,
		}
		a.heightBuckets[unusedH] = append(a.heightBuckets[unusedH], r)
		a.edgeTotal += r.W * r.H
	}
}

// GlyphMap returns a read-only view of the allocator's glyph index.
func (a *SlabAllocator) GlyphMap() *GlyphIndex { return a.index }

// CanvasSize returns the allocator's fixed canvas dimensions.
func (a *SlabAllocator) CanvasSize() (w, h int) { return a.canvas.Width(), a.canvas.Height() }

// SlabConfig returns the slab sizing this allocator was constructed with.
func (a *SlabAllocator) SlabConfig() SlabConfig { return a.cfg }

// UsagePreview produces a diagnostic image plus textual pixel accounting.
func (a *SlabAllocator) UsagePreview() (*Preview, error) {
	return slabUsagePreview(a)
}
