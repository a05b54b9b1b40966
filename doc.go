// Package atlas implements a texture atlas allocator core: a 2D bin-packing
// subsystem that places rasterized glyph bitmaps onto a fixed-size
// rectangular canvas and remembers where each glyph landed so a renderer
// can later reference it by pixel or UV coordinates.
//
// # Overview
//
// Two interchangeable strategies implement the Allocator interface:
//
//   - ShelfAllocator packs glyphs into horizontal rows ("shelves"). Simple
//     and fast, but can waste space when glyph heights vary widely within a
//     row.
//   - SlabAllocator groups same-sized glyphs into fixed-size square regions
//     ("slabs") and recycles the leftover edges — strips too narrow for a
//     full slab tile — for smaller glyphs.
//
// Both allocators are single-threaded and synchronous: Allocate is not
// re-entrant, and concurrent calls on the same allocator are undefined
// behavior. Callers needing concurrent access must serialize it themselves.
//
// # Quick start
//
//	canvas := atlas.NewImageCanvas(1024, 1024)
//	a := atlas.NewShelfAllocator(canvas)
//
//	g := atlas.RasterizedGlyph{
//	    Source:      rasterizedBitmap,
//	    BoundingBox: atlas.BoundingBox{Left: 0, Top: 0, Right: 11, Bottom: 15},
//	    OriginOffsetX: 1, OriginOffsetY: -2,
//	}
//	placed, ok := a.Allocate("A", styleKey, g)
//	if !ok {
//	    // canvas is full; seal it and start a new atlas
//	}
//
// # What this package does not do
//
// It does not rasterize glyphs (see the external rasterizer contract,
// RasterizedGlyph), does not upload textures to a GPU, does not manage
// multiple atlases or evict entries, and does not attempt optimal bin
// packing. Those are the surrounding pipeline's job.
package atlas
