package atlas

// GlyphIndex is a keyed map from (chars, styleKey) to a placed glyph
// record. It is append-only from the allocator's point of view: entries
// are written during Allocate and never removed. Iteration order is not
// observable and must not be relied on.
type GlyphIndex struct {
	entries map[GlyphKey]PlacedGlyph
}

// newGlyphIndex returns an empty index ready to use.
func newGlyphIndex() *GlyphIndex {
	return &GlyphIndex{entries: make(map[GlyphKey]PlacedGlyph)}
}

// Get returns the placed glyph for (chars, styleKey), if any.
func (idx *GlyphIndex) Get(chars string, styleKey int) (PlacedGlyph, bool) {
	g, ok := idx.entries[GlyphKey{Chars: chars, StyleKey: styleKey}]
	return g, ok
}

// Has reports whether (chars, styleKey) has a recorded placement.
func (idx *GlyphIndex) Has(chars string, styleKey int) bool {
	_, ok := idx.entries[GlyphKey{Chars: chars, StyleKey: styleKey}]
	return ok
}

// Len returns the number of indexed glyphs.
func (idx *GlyphIndex) Len() int {
	return len(idx.entries)
}

// Range calls fn for every indexed glyph, in unspecified order. Range must
// not be called while an allocation is in progress (see the package
// concurrency notes in doc.go).
func (idx *GlyphIndex) Range(fn func(key GlyphKey, g PlacedGlyph) bool) {
	for k, g := range idx.entries {
		if !fn(k, g) {
			return
		}
	}
}

// insert records a placement, overwriting any previous entry under the
// same key. Duplicate inserts are allowed (callers are expected to dedupe)
// but are not guaranteed to be idempotent: the previous canvas region
// becomes orphaned rather than reclaimed.
func (idx *GlyphIndex) insert(chars string, styleKey int, g PlacedGlyph) {
	idx.entries[GlyphKey{Chars: chars, StyleKey: styleKey}] = g
}
