package graphics

import "github.com/flui-dev/flui/pkg/geom"

// CanvasSceneSink adapts a single concrete Canvas to the SceneSink interface
// a Layer tree composites against (spec.md §4.3 composite()), the default
// sink used when no GPU painter capability is wired in: every Push*
// translates to a Canvas Save plus the matching state change, and Pop always
// restores it, mirroring the recordingCanvas Save/Restore pairing used when
// the same layer content was first recorded.
type CanvasSceneSink struct {
	canvas Canvas
}

// NewCanvasSceneSink returns a SceneSink that composites directly onto
// canvas.
func NewCanvasSceneSink(canvas Canvas) *CanvasSceneSink {
	return &CanvasSceneSink{canvas: canvas}
}

// BeginPicture returns the wrapped canvas; a CanvasSceneSink has only one
// real target, so every Picture layer paints onto the same surface.
func (s *CanvasSceneSink) BeginPicture(bounds geom.Rect) Canvas {
	return s.canvas
}

// EndPicture is a no-op: BeginPicture didn't open a separate target to close.
func (s *CanvasSceneSink) EndPicture() {}

func (s *CanvasSceneSink) PushTransform(m geom.Matrix) {
	s.canvas.Save()
	s.canvas.Transform(m)
}

func (s *CanvasSceneSink) PushClipRect(r geom.Rect) {
	s.canvas.Save()
	s.canvas.ClipRect(r)
}

func (s *CanvasSceneSink) PushClipRRect(r geom.RRect) {
	s.canvas.Save()
	s.canvas.ClipRRect(r)
}

// PushOpacity saves a layer at the full canvas bounds; the Layer/SceneSink
// split doesn't thread a tighter bounds rect into PushOpacity, so this sink
// uses the canvas's own size as the layer bounds.
func (s *CanvasSceneSink) PushOpacity(alpha float64) {
	s.canvas.SaveLayerAlpha(geom.RectFromLTWH(0, 0, s.canvas.Size().Width, s.canvas.Size().Height), alpha)
}

func (s *CanvasSceneSink) Pop() {
	s.canvas.Restore()
}
