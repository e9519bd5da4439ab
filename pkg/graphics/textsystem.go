package graphics

// FontID identifies a font resolved by the external TextSystem capability
// (spec.md §6.4). The engine treats it as an opaque handle.
type FontID uint32

// GlyphRun is one shaped run of glyphs at a fixed font/size along the
// baseline, as produced by TextSystem.LayoutLine.
type GlyphRun struct {
	Font   FontID
	Glyphs []uint16
	X      []float64 // per-glyph advance-origin offsets, relative to the run start
}

// TextLayout is a shaped line ready to be drawn, returned by the external
// TextSystem and consumed by Canvas.DrawText and by intrinsic-size queries
// during layout.
type TextLayout struct {
	Width   float64
	Ascent  float64
	Descent float64
	Runs    []GlyphRun
}

// TextSystem is the external capability described in spec.md §6.4. The core
// calls it during paint/layout of text render objects; it never parses font
// files itself (font-file parsing is a Non-goal).
type TextSystem interface {
	AllFontNames() []string
	FontID(name string) (FontID, bool)
	FontMetrics(font FontID) (ascent, descent, lineGap float64)
	GlyphForChar(font FontID, r rune) (uint16, bool)
	LayoutLine(text string, size float64, runs []GlyphRun) *TextLayout
}
