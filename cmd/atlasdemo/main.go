// Command atlasdemo rasterizes a handful of glyphs from a TTF file, packs
// them onto a texture atlas with both allocator strategies, and writes the
// resulting canvas and usage-preview images to disk.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"log"
	"os"

	"github.com/glyphpack/atlas"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/width"
)

func main() {
	var (
		fontFile  = flag.String("font", "", "path to a TTF/TTC file (required)")
		text      = flag.String("text", "Hello, Atlas! 0123456789", "characters to rasterize")
		pointSize = flag.Float64("size", 32, "font point size")
		strategy  = flag.String("strategy", "shelf", "packing strategy: shelf or slab")
		canvasDim = flag.Int("canvas", 512, "canvas width and height in pixels")
		outPrefix = flag.String("out", "atlasdemo", "output file prefix")
	)
	flag.Parse()

	if *fontFile == "" {
		log.Fatal("atlasdemo: -font is required")
	}

	fontBytes, err := os.ReadFile(*fontFile)
	if err != nil {
		log.Fatalf("atlasdemo: reading font file: %v", err)
	}
	f, err := truetype.Parse(fontBytes)
	if err != nil {
		log.Fatalf("atlasdemo: parsing font: %v", err)
	}

	face := truetype.NewFace(f, &truetype.Options{Size: *pointSize})
	defer face.Close()

	canvas := atlas.NewImageCanvas(*canvasDim, *canvasDim)

	var allocator atlas.Allocator
	switch *strategy {
	case "shelf":
		allocator = atlas.NewShelfAllocator(canvas)
	case "slab":
		cfg := atlas.DefaultSlabConfig(*canvasDim, *canvasDim, 1.0)
		allocator = atlas.NewSlabAllocator(canvas, cfg)
	default:
		log.Fatalf("atlasdemo: unknown strategy %q (want shelf or slab)", *strategy)
	}

	const styleKey = 0
	placed := 0
	for _, r := range *text {
		// Normalize halfwidth/fullwidth variants before keying the atlas so
		// visually-identical runes from different input forms reuse the
		// same slot.
		key := width.Narrow.String(string(r))
		if allocator.GlyphMap().Has(key, styleKey) {
			placed++
			continue
		}

		glyph, ok := rasterizeGlyph(face, r)
		if !ok {
			log.Printf("atlasdemo: skipping rune %q: no glyph in font", r)
			continue
		}

		if _, ok := allocator.Allocate(key, styleKey, glyph); !ok {
			log.Printf("atlasdemo: canvas full, could not place rune %q", r)
			continue
		}
		placed++
	}
	log.Printf("atlasdemo: placed %d/%d runes using the %s strategy", placed, len([]rune(*text)), *strategy)

	if err := savePNG(canvas.Image(), *outPrefix+".png"); err != nil {
		log.Fatalf("atlasdemo: saving canvas: %v", err)
	}

	preview, err := allocator.UsagePreview()
	if err != nil {
		log.Fatalf("atlasdemo: building usage preview: %v", err)
	}
	if err := savePNG(preview.Image, *outPrefix+".preview.png"); err != nil {
		log.Fatalf("atlasdemo: saving preview: %v", err)
	}
	fmt.Print(preview.Report.String())
}

// rasterizeGlyph renders a single rune through the font face into a tightly
// cropped RGBA bitmap, mirroring bloeys-nterm's per-glyph draw.DrawMask use
// but keeping each glyph as an independent image rather than baking
// everything into one fixed-grid atlas image up front.
func rasterizeGlyph(face font.Face, r rune) (atlas.RasterizedGlyph, bool) {
	dr, mask, maskp, advance, ok := face.Glyph(fixed.P(0, 0), r)
	if !ok || dr.Empty() {
		return atlas.RasterizedGlyph{}, false
	}

	bounds := dr.Sub(dr.Min)
	bitmap := image.NewRGBA(bounds)
	draw.DrawMask(bitmap, bounds, image.White, image.Point{}, mask, maskp, draw.Over)
	_ = advance // belongs to the caller's line-layout, not the atlas

	return atlas.RasterizedGlyph{
		Source: bitmap,
		BoundingBox: atlas.BoundingBox{
			Left: 0, Top: 0,
			Right:  bounds.Dx() - 1,
			Bottom: bounds.Dy() - 1,
		},
		OriginOffsetX: dr.Min.X,
		OriginOffsetY: dr.Min.Y,
	}, true
}

func savePNG(img image.Image, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return png.Encode(f, img)
}
