package atlas

import "testing"

// S1 (shelf, exact row): canvas 10x10, widths 3,4,3 heights 2,2,2, then one
// more (3,2) that rolls onto a new row.
func TestShelfAllocator_S1ExactRow(t *testing.T) {
	canvas := NewImageCanvas(10, 10)
	a := NewShelfAllocator(canvas)

	want := []struct{ x, y, w, h int }{
		{0, 0, 3, 2},
		{3, 0, 4, 2},
		{7, 0, 3, 2},
	}
	for i, wCase := range want {
		g, ok := a.Allocate("g", i, makeGlyph(wCase.w, wCase.h))
		if !ok {
			t.Fatalf("glyph %d: allocation failed", i)
		}
		if g.X != wCase.x || g.Y != wCase.y || g.W != wCase.w || g.H != wCase.h {
			t.Errorf("glyph %d: got (%d,%d,%d,%d), want (%d,%d,%d,%d)",
				i, g.X, g.Y, g.W, g.H, wCase.x, wCase.y, wCase.w, wCase.h)
		}
	}

	g, ok := a.Allocate("g", 99, makeGlyph(3, 2))
	if !ok {
		t.Fatal("fourth glyph allocation failed")
	}
	if g.X != 0 || g.Y != 2 || g.W != 3 || g.H != 2 {
		t.Errorf("fourth glyph = (%d,%d,%d,%d), want (0,2,3,2)", g.X, g.Y, g.W, g.H)
	}
}

// S2 (shelf, overflow): canvas 4x4, glyph wider than the whole canvas must
// return none rather than overflow.
func TestShelfAllocator_S2WiderThanCanvas(t *testing.T) {
	canvas := NewImageCanvas(4, 4)
	a := NewShelfAllocator(canvas)

	_, ok := a.Allocate("g", 0, makeGlyph(5, 1))
	if ok {
		t.Fatal("expected allocation of a too-wide glyph to fail")
	}
	if a.GlyphMap().Len() != 0 {
		t.Error("failed allocation must not write to the glyph index")
	}
}

// S6 (full canvas): a 1x1 canvas can never fit a (2,2) glyph, and no
// partial state should be left behind.
func TestShelfAllocator_S6TooSmallCanvas(t *testing.T) {
	canvas := NewImageCanvas(1, 1)
	a := NewShelfAllocator(canvas)

	_, ok := a.Allocate("g", 0, makeGlyph(2, 2))
	if ok {
		t.Fatal("expected allocation to fail on a too-small canvas")
	}
	if a.GlyphMap().Len() != 0 {
		t.Error("failed allocation must not write to the glyph index")
	}
}

func TestShelfAllocator_UniformRowFillsFloorCanvasWOverW(t *testing.T) {
	const canvasW, canvasH, w, h = 100, 100, 9, 5
	canvas := NewImageCanvas(canvasW, canvasH)
	a := NewShelfAllocator(canvas)

	want := canvasW / w
	placedInFirstRow := 0
	lastX := -1
	for i := 0; i < want; i++ {
		g, ok := a.Allocate("g", i, makeGlyph(w, h))
		if !ok {
			t.Fatalf("glyph %d: allocation unexpectedly failed", i)
		}
		if g.Y != 0 {
			t.Fatalf("glyph %d: Y=%d, want 0 (still first row)", i, g.Y)
		}
		if g.X <= lastX {
			t.Fatalf("glyph %d: X=%d did not increase monotonically from %d", i, g.X, lastX)
		}
		lastX = g.X
		placedInFirstRow++
	}
	if placedInFirstRow != want {
		t.Errorf("placed %d glyphs in first row, want %d", placedInFirstRow, want)
	}
}

func TestShelfAllocator_NonOverlapAndBounds(t *testing.T) {
	canvas := NewImageCanvas(50, 50)
	a := NewShelfAllocator(canvas)

	sizes := [][2]int{{7, 5}, {3, 9}, {12, 4}, {6, 6}, {20, 3}, {5, 5}, {8, 8}}
	var placed []PlacedGlyph
	for i, sz := range sizes {
		g, ok := a.Allocate("g", i, makeGlyph(sz[0], sz[1]))
		if !ok {
			continue
		}
		placed = append(placed, g)
	}

	for _, g := range placed {
		if g.X < 0 || g.Y < 0 || g.Rect().Right() > 50 || g.Rect().Bottom() > 50 {
			t.Errorf("glyph %+v out of canvas bounds", g)
		}
	}
	for i := range placed {
		for j := i + 1; j < len(placed); j++ {
			if placed[i].Rect().Overlaps(placed[j].Rect()) {
				t.Errorf("glyphs %+v and %+v overlap", placed[i], placed[j])
			}
		}
	}
}

func TestShelfAllocator_DenseIndexAndOriginPreservation(t *testing.T) {
	canvas := NewImageCanvas(30, 30)
	a := NewShelfAllocator(canvas)

	seen := map[int]bool{}
	for i := 0; i < 4; i++ {
		g, ok := a.Allocate("g", i, makeGlyphWithOrigin(5, 5, i, -i))
		if !ok {
			t.Fatalf("glyph %d: allocation failed", i)
		}
		if g.Index != i {
			t.Errorf("glyph %d: Index = %d, want %d", i, g.Index, i)
		}
		if g.OriginOffsetX != i || g.OriginOffsetY != -i {
			t.Errorf("glyph %d: origin offset = (%d,%d), want (%d,%d)", i, g.OriginOffsetX, g.OriginOffsetY, i, -i)
		}
		seen[g.Index] = true
	}
	if len(seen) != 4 {
		t.Errorf("expected 4 distinct indices, got %d", len(seen))
	}
}

func TestShelfAllocator_KeyRoundTrip(t *testing.T) {
	canvas := NewImageCanvas(30, 30)
	a := NewShelfAllocator(canvas)

	placed, ok := a.Allocate("Q", 42, makeGlyph(5, 5))
	if !ok {
		t.Fatal("allocation failed")
	}
	got, ok := a.GlyphMap().Get("Q", 42)
	if !ok || got != placed {
		t.Errorf("GlyphMap().Get() = %+v, %v, want %+v, true", got, ok, placed)
	}
}
