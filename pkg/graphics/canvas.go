package graphics

import (
	"math"

	"github.com/flui-dev/flui/pkg/geom"
)

// ClipOp specifies how a new clip shape combines with the existing one.
type ClipOp int

const (
	ClipOpIntersect ClipOp = iota
	ClipOpDifference
)

// Canvas records or renders drawing commands. This is the one canonical
// DrawCommand surface chosen per spec.md §9's open question: a single
// Skia-like interface, trimmed of the GPU-backend-specific members (SVG FFI
// handles, image sampling caches) that belong to the Painter capability on
// the far side of the engine/GPU boundary.
type Canvas interface {
	Save()
	SaveLayerAlpha(bounds geom.Rect, alpha float64)
	Restore()

	Translate(dx, dy float64)
	Scale(sx, sy float64)
	Rotate(radians float64)
	Transform(m geom.Matrix)

	ClipRect(rect geom.Rect)
	ClipRRect(rrect geom.RRect)
	ClipPath(path *Path, op ClipOp)

	DrawRect(rect geom.Rect, paint Paint)
	DrawRRect(rrect geom.RRect, paint Paint)
	DrawCircle(center geom.Offset, radius float64, paint Paint)
	DrawLine(start, end geom.Offset, paint Paint)
	DrawPath(path *Path, paint Paint)
	DrawRectShadow(rect geom.Rect, shadow BoxShadow)
	DrawText(layout *TextLayout, position geom.Offset)

	Size() geom.Size
}

// op is a single recorded drawing operation, replayable onto any Canvas.
type op func(Canvas)

// DisplayList is an immutable, cheap-to-share sequence of draw commands.
// Save/Restore, transform and clip calls are recorded as ops of their own,
// so replaying the list in order reproduces the transform each draw command
// was recorded under; a draw command does not store a transform of its own.
// DisplayList values are intended to be handed around by pointer and
// treated as immutable once EndRecording has produced them.
type DisplayList struct {
	ops        []op
	size       geom.Size
	bounds     geom.Rect
	hitRegions []geom.Rect
}

// Paint replays the recorded operations onto the target canvas.
func (d *DisplayList) Paint(canvas Canvas) {
	for _, o := range d.ops {
		o(canvas)
	}
}

func (d *DisplayList) Size() geom.Size      { return d.size }
func (d *DisplayList) Bounds() geom.Rect    { return d.bounds }
func (d *DisplayList) HitRegions() []geom.Rect { return d.hitRegions }

// AppendCanvas extends this display list with another's recorded ops. This
// is O(1) when d is empty (the slice header is simply replaced), matching
// spec.md §4.4's append_canvas zero-copy-when-empty rule.
func (d *DisplayList) AppendCanvas(other *DisplayList) {
	if other == nil || len(other.ops) == 0 {
		return
	}
	if len(d.ops) == 0 {
		d.ops = other.ops
		d.bounds = other.bounds
		d.hitRegions = other.hitRegions
		return
	}
	d.ops = append(d.ops, other.ops...)
	d.bounds = d.bounds.Union(other.bounds)
	d.hitRegions = append(d.hitRegions, other.hitRegions...)
}

// PictureRecorder records drawing commands into a DisplayList via a
// recordingCanvas, mirroring the framework's PictureRecorder/recordingCanvas
// split (pkg/graphics/display_list.go) so paint() implementations can target
// the same Canvas interface whether recording or drawing live.
type PictureRecorder struct {
	canvas *recordingCanvas
	size   geom.Size
}

// BeginRecording starts a new recording session and returns the Canvas to
// paint into.
func (r *PictureRecorder) BeginRecording(size geom.Size) Canvas {
	r.size = size
	r.canvas = &recordingCanvas{size: size, state: newRootState(size)}
	return r.canvas
}

// EndRecording finishes the session and returns the recorded DisplayList.
// The recorder keeps no buffers afterwards; the next BeginRecording starts
// from a fresh canvas.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if r.canvas == nil {
		return &DisplayList{size: r.size}
	}
	dl := &DisplayList{
		ops:        r.canvas.ops,
		size:       r.size,
		bounds:     r.canvas.bounds,
		hitRegions: r.canvas.hitRegions,
	}
	r.canvas = nil
	return dl
}

type canvasState struct {
	transform geom.Matrix
	clip      geom.Rect
}

// recordingCanvas implements Canvas by appending closures that replay each
// call against a concrete rendering canvas, while tracking the transform
// and clip stack so the bounds and hit regions of draw commands are
// recorded in the recording's root coordinates.
type recordingCanvas struct {
	size       geom.Size
	ops        []op
	bounds     geom.Rect
	hitRegions []geom.Rect
	state      canvasState
	stack      []canvasState
}

func newRootState(size geom.Size) canvasState {
	return canvasState{transform: geom.Identity(), clip: geom.RectFromLTWH(0, 0, size.Width, size.Height)}
}

func (c *recordingCanvas) Save() {
	c.stack = append(c.stack, c.state)
	c.ops = append(c.ops, func(target Canvas) { target.Save() })
}

func (c *recordingCanvas) Restore() {
	if len(c.stack) == 0 {
		return
	}
	c.state = c.stack[len(c.stack)-1]
	c.stack = c.stack[:len(c.stack)-1]
	c.ops = append(c.ops, func(target Canvas) { target.Restore() })
}

func (c *recordingCanvas) SaveLayerAlpha(bounds geom.Rect, alpha float64) {
	c.stack = append(c.stack, c.state)
	c.ops = append(c.ops, func(target Canvas) { target.SaveLayerAlpha(bounds, alpha) })
}

func (c *recordingCanvas) Translate(dx, dy float64) {
	c.state.transform = c.state.transform.Concat(geom.Translation(dx, dy))
	c.ops = append(c.ops, func(target Canvas) { target.Translate(dx, dy) })
}

func (c *recordingCanvas) Scale(sx, sy float64) {
	c.state.transform = c.state.transform.Concat(geom.ScaleMatrix(sx, sy))
	c.ops = append(c.ops, func(target Canvas) { target.Scale(sx, sy) })
}

func (c *recordingCanvas) Rotate(radians float64) {
	c.state.transform = c.state.transform.Concat(geom.Rotation(radians))
	c.ops = append(c.ops, func(target Canvas) { target.Rotate(radians) })
}

func (c *recordingCanvas) Transform(m geom.Matrix) {
	c.state.transform = c.state.transform.Concat(m)
	c.ops = append(c.ops, func(target Canvas) { target.Transform(m) })
}

func (c *recordingCanvas) ClipRect(rect geom.Rect) {
	c.state.clip = c.state.clip.Intersect(rect)
	c.ops = append(c.ops, func(target Canvas) { target.ClipRect(rect) })
}

func (c *recordingCanvas) ClipRRect(rrect geom.RRect) {
	c.state.clip = c.state.clip.Intersect(rrect.Rect)
	c.ops = append(c.ops, func(target Canvas) { target.ClipRRect(rrect) })
}

func (c *recordingCanvas) ClipPath(path *Path, op ClipOp) {
	c.ops = append(c.ops, func(target Canvas) { target.ClipPath(path, op) })
}

func (c *recordingCanvas) recordBounds(rect geom.Rect) {
	m := c.state.transform
	p1 := m.Apply(geom.Offset{X: rect.Left, Y: rect.Top})
	p2 := m.Apply(geom.Offset{X: rect.Right, Y: rect.Top})
	p3 := m.Apply(geom.Offset{X: rect.Left, Y: rect.Bottom})
	p4 := m.Apply(geom.Offset{X: rect.Right, Y: rect.Bottom})
	transformed := geom.Rect{
		Left:   math.Min(math.Min(p1.X, p2.X), math.Min(p3.X, p4.X)),
		Top:    math.Min(math.Min(p1.Y, p2.Y), math.Min(p3.Y, p4.Y)),
		Right:  math.Max(math.Max(p1.X, p2.X), math.Max(p3.X, p4.X)),
		Bottom: math.Max(math.Max(p1.Y, p2.Y), math.Max(p3.Y, p4.Y)),
	}
	c.bounds = c.bounds.Union(transformed)
	c.hitRegions = append(c.hitRegions, transformed)
}

func (c *recordingCanvas) DrawRect(rect geom.Rect, paint Paint) {
	c.recordBounds(rect)
	c.ops = append(c.ops, func(target Canvas) { target.DrawRect(rect, paint) })
}

func (c *recordingCanvas) DrawRRect(rrect geom.RRect, paint Paint) {
	c.recordBounds(rrect.Rect)
	c.ops = append(c.ops, func(target Canvas) { target.DrawRRect(rrect, paint) })
}

func (c *recordingCanvas) DrawCircle(center geom.Offset, radius float64, paint Paint) {
	rect := geom.RectFromLTWH(center.X-radius, center.Y-radius, radius*2, radius*2)
	c.recordBounds(rect)
	c.ops = append(c.ops, func(target Canvas) { target.DrawCircle(center, radius, paint) })
}

func (c *recordingCanvas) DrawLine(start, end geom.Offset, paint Paint) {
	c.ops = append(c.ops, func(target Canvas) { target.DrawLine(start, end, paint) })
}

func (c *recordingCanvas) DrawPath(path *Path, paint Paint) {
	c.ops = append(c.ops, func(target Canvas) { target.DrawPath(path, paint) })
}

func (c *recordingCanvas) DrawRectShadow(rect geom.Rect, shadow BoxShadow) {
	c.ops = append(c.ops, func(target Canvas) { target.DrawRectShadow(rect, shadow) })
}

func (c *recordingCanvas) DrawText(layout *TextLayout, position geom.Offset) {
	c.ops = append(c.ops, func(target Canvas) { target.DrawText(layout, position) })
}

func (c *recordingCanvas) Size() geom.Size { return c.size }
