package atlas

import (
	"fmt"
	"image"
	"image/color"
	"sort"
)

// Preview is the usage-preview output: a diagnostic image plus the
// textual pixel accounting that produced it.
type Preview struct {
	Image  image.Image
	Report Report
}

// Report carries the pixel-category accounting for one usage preview.
//
// Used, Wasted, Restricted and Free partition the canvas exactly:
// Used+Wasted+Restricted+Free == CanvasW*CanvasH. SlabEdgeUnused is a
// separate, informational figure — the total recycling capacity ever
// carved out of a slab at creation time — and may overlap with Used or
// Restricted once some of that capacity gets consumed by later
// allocations; it is not part of the disjoint partition (see the
// accompanying Open Question note in DESIGN.md).
type Report struct {
	CanvasW, CanvasH int
	Total            int
	Used             int
	Wasted           int
	Restricted       int
	SlabEdgeUnused   int
	Free             int

	// SlabCount and SlabOccupancy are zero for a shelf allocator's report.
	SlabCount     int
	SlabOccupancy float64 // fraction of reserved slab tiles actually filled
}

// String renders a human-readable summary, in the teacher's convention of
// giving every stats struct a String() method (gpu.AtlasRegion.String()).
func (r Report) String() string {
	pct := func(n int) float64 {
		if r.Total == 0 {
			return 0
		}
		return 100 * float64(n) / float64(r.Total)
	}
	s := fmt.Sprintf(
		"atlas usage: %dx%d (%d px)\n  used:       %8d (%.1f%%)\n  wasted:     %8d (%.1f%%)\n  restricted: %8d (%.1f%%)\n  free:       %8d (%.1f%%)\n  slab edge (informational): %d\n",
		r.CanvasW, r.CanvasH, r.Total,
		r.Used, pct(r.Used),
		r.Wasted, pct(r.Wasted),
		r.Restricted, pct(r.Restricted),
		r.Free, pct(r.Free),
		r.SlabEdgeUnused,
	)
	if r.SlabCount > 0 {
		s += fmt.Sprintf("  slabs: %d, occupancy %.1f%%\n", r.SlabCount, r.SlabOccupancy*100)
	}
	return s
}

// Preview palette: grey background, colored category overlays, then the
// live canvas composited at 50% alpha on top — grounded on
// bloeys-nterm/glyphs/font_atlas.go's draw.Draw(..., draw.Src) /
// draw.DrawMask(..., draw.Over) blit pattern.
var (
	previewBackground = color.RGBA{60, 60, 60, 255}
	previewUsedColor   = color.RGBA{60, 160, 80, 255}
	previewWastedColor = color.RGBA{200, 70, 70, 255}
	previewRestricted  = color.RGBA{220, 180, 60, 255}
)

const previewCanvasAlpha = 128 // ~50%

// paintBase fills the preview canvas with the grey background and then
// the given category rectangles, returning the finished diagnostic image
// composited with the live canvas at 50% alpha.
func paintBase(live Canvas, used, wasted, restricted []Rectangle) image.Image {
	w, h := live.Width(), live.Height()
	preview := NewImageCanvas(w, h)
	preview.FillRect(Rectangle{X: 0, Y: 0, W: w, H: h}, previewBackground)

	for _, r := range used {
		preview.FillRect(r, previewUsedColor)
	}
	for _, r := range wasted {
		preview.FillRect(r, previewWastedColor)
	}
	for _, r := range restricted {
		preview.FillRect(r, previewRestricted)
	}

	compositeAtAlpha(preview, live, previewCanvasAlpha)
	return preview.Image()
}

// compositeAtAlpha draws src onto dst at a fixed alpha, using a uniform
// alpha mask the way draw.DrawMask expects.
func compositeAtAlpha(dst *ImageCanvas, src Canvas, alpha uint8) {
	drawOverWithAlpha(dst.img, src.Image(), alpha)
}

func usedArea(idx *GlyphIndex) int {
	total := 0
	idx.Range(func(_ GlyphKey, g PlacedGlyph) bool {
		total += g.W * g.H
		return true
	})
	return total
}

// shelfUsagePreview builds the usage preview for a ShelfAllocator. Rows
// are reconstructed from the glyph index by grouping on Y; the height of
// each row other than the current one is the gap to the next row's Y
// (rows are contiguous by the shelf invariant), and the current row's
// height is the allocator's live accrued height.
func shelfUsagePreview(a *ShelfAllocator) (*Preview, error) {
	canvasW, canvasH := a.CanvasSize()

	type rowInfo struct {
		maxRight int
		glyphs   []PlacedGlyph
	}
	rows := make(map[int]*rowInfo)
	ySet := map[int]bool{a.row.y: true}

	a.index.Range(func(_ GlyphKey, g PlacedGlyph) bool {
		ri, ok := rows[g.Y]
		if !ok {
			ri = &rowInfo{}
			rows[g.Y] = ri
		}
		ri.glyphs = append(ri.glyphs, g)
		if right := g.Rect().Right(); right > ri.maxRight {
			ri.maxRight = right
		}
		ySet[g.Y] = true
		return true
	})

	ys := make([]int, 0, len(ySet))
	for y := range ySet {
		ys = append(ys, y)
	}
	sort.Ints(ys)

	rowHeight := make(map[int]int, len(ys))
	for i, y := range ys {
		if i+1 < len(ys) {
			rowHeight[y] = ys[i+1] - y
		} else {
			rowHeight[y] = a.row.h
		}
	}

	var usedRects, wastedRects []Rectangle
	used, wasted := 0, 0

	for y, ri := range rows {
		rh := rowHeight[y]
		for _, g := range ri.glyphs {
			used += g.W * g.H
			usedRects = append(usedRects, g.Rect())
			if gap := rh - g.H; gap > 0 {
				wasted += g.W * gap
				wastedRects = append(wastedRects, Rectangle{X: g.X, Y: g.Y + g.H, W: g.W, H: gap})
			}
		}
		if y != a.row.y { // finalized row: account for the unused horizontal tail
			if tail := canvasW - ri.maxRight; tail > 0 {
				wasted += tail * rh
				wastedRects = append(wastedRects, Rectangle{X: ri.maxRight, Y: y, W: tail, H: rh})
			}
		}
	}

	total := canvasW * canvasH
	free := total - used - wasted
	if free < 0 {
		free = 0
	}

	report := Report{
		CanvasW: canvasW, CanvasH: canvasH,
		Total: total, Used: used, Wasted: wasted, Free: free,
	}

	img := paintBase(a.canvas, usedRects, wastedRects, nil)
	return &Preview{Image: img, Report: report}, nil
}

// slabUsagePreview builds the usage preview for a SlabAllocator.
func slabUsagePreview(a *SlabAllocator) (*Preview, error) {
	canvasW, canvasH := a.CanvasSize()

	var usedRects, restrictedRects []Rectangle
	used := usedArea(a.index)
	a.index.Range(func(_ GlyphKey, g PlacedGlyph) bool {
		usedRects = append(usedRects, g.Rect())
		return true
	})

	restricted := 0
	for _, bucket := range a.widthBuckets {
		for _, r := range bucket {
			restricted += r.W * r.H
			restrictedRects = append(restrictedRects, r.Rect())
		}
	}
	for _, bucket := range a.heightBuckets {
		for _, r := range bucket {
			restricted += r.W * r.H
			restrictedRects = append(restrictedRects, r.Rect())
		}
	}
	for _, r := range a.untracked {
		restricted += r.W * r.H
		restrictedRects = append(restrictedRects, r.Rect())
	}

	// Wasted(slab) is the gap between each slab's reserved entry tiles and
	// the actual glyph ink within them. Every slab's entry size is fixed
	// to the exact bounding-box size of the glyph that triggered its
	// creation, and only glyphs matching that exact size are ever placed
	// into it (allocateFromActiveSlab), so reserved area always equals
	// ink area: this is structurally zero under the spec's slab model.
	wasted := 0

	total := canvasW * canvasH
	free := total - used - wasted - restricted
	if free < 0 {
		free = 0
	}

	filled, capacity := 0, 0
	for _, sl := range a.slabs {
		filled += sl.count
		capacity += sl.capacity()
	}
	occupancy := 0.0
	if capacity > 0 {
		occupancy = float64(filled) / float64(capacity)
	}

	report := Report{
		CanvasW: canvasW, CanvasH: canvasH,
		Total: total, Used: used, Wasted: wasted,
		Restricted: restricted, SlabEdgeUnused: a.edgeTotal, Free: free,
		SlabCount: len(a.slabs), SlabOccupancy: occupancy,
	}

	img := paintBase(a.canvas, usedRects, nil, restrictedRects)
	return &Preview{Image: img, Report: report}, nil
}
