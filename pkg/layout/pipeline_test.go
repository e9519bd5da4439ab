package layout

import (
	"testing"

	"github.com/flui-dev/flui/pkg/geom"
)

type recordingBox struct {
	RenderBoxBase
	layouts int
	paints  int
}

func (r *recordingBox) PerformLayout() {
	r.layouts++
	r.SetSize(geom.Size{Width: 20, Height: 20})
}

func (r *recordingBox) Paint(ctx *PaintContext) {
	r.paints++
}

func (r *recordingBox) HitTest(position geom.Offset, result *HitTestResult) bool {
	return false
}

func (r *recordingBox) IsRepaintBoundary() bool {
	return true
}

func newRecordingRoot() *recordingBox {
	root := &recordingBox{}
	root.SetSelf(root)
	return root
}

func TestPipelineOwnerFlushLaysOutAndPaintsRoot(t *testing.T) {
	owner := NewPipelineOwner()
	root := newRecordingRoot()
	root.SetOwner(owner)
	owner.SetRoot(root)
	owner.ScheduleLayout(root)
	owner.SchedulePaint(root)

	owner.Flush(Tight(geom.Size{Width: 20, Height: 20}))

	if root.layouts != 1 {
		t.Fatalf("expected root to be laid out once, got %d", root.layouts)
	}
	if root.paints != 1 {
		t.Fatalf("expected root to be painted once, got %d", root.paints)
	}
	if owner.NeedsLayout() || owner.NeedsPaint() {
		t.Fatalf("expected pipeline to be clean after Flush")
	}
}

func TestPipelineOwnerScheduleDedupesPendingWork(t *testing.T) {
	owner := NewPipelineOwner()
	root := newRecordingRoot()
	root.SetOwner(owner)
	owner.SetRoot(root)

	owner.ScheduleLayout(root)
	owner.ScheduleLayout(root)
	owner.SchedulePaint(root)
	owner.SchedulePaint(root)

	owner.Flush(Tight(geom.Size{Width: 20, Height: 20}))

	if root.layouts != 1 || root.paints != 1 {
		t.Fatalf("expected a single layout/paint pass despite duplicate scheduling, got layouts=%d paints=%d", root.layouts, root.paints)
	}
}

func TestPipelineOwnerFlushPaintSkipsCleanBoundaries(t *testing.T) {
	owner := NewPipelineOwner()
	root := newRecordingRoot()
	root.SetOwner(owner)
	owner.SetRoot(root)
	owner.ScheduleLayout(root)
	owner.SchedulePaint(root)
	owner.Flush(Tight(geom.Size{Width: 20, Height: 20}))

	initialPaints := root.paints
	if initialPaints != 1 {
		t.Fatalf("expected root to be painted once before the no-op flush, got %d", initialPaints)
	}

	// Flush paint again without marking anything dirty; the first flush
	// cleared needsPaint, so this one must not repaint.
	owner.FlushPaint()

	if root.paints != initialPaints {
		t.Fatalf("expected FlushPaint to be a no-op once clean, got %d new paints", root.paints-initialPaints)
	}
}
