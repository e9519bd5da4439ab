package platform

import "github.com/flui-dev/flui/pkg/graphics"

// Painter is the GPU-side sink the core hands a composited scene to each
// frame. The core treats it as opaque: it never inspects what the painter
// does with a DisplayList, only guarantees scenes are handed over in
// monotonically increasing validity order across frames (spec.md §6 item
// 3).
type Painter interface {
	// Present submits a frame's DisplayList for the painter to render,
	// at the given physical size.
	Present(scene *graphics.DisplayList, physicalWidth, physicalHeight float64) error
}

var activePainter Painter

// RegisterPainter installs the Painter a host's GPU backend exposes.
func RegisterPainter(p Painter) {
	dispatchMu.Lock()
	activePainter = p
	dispatchMu.Unlock()
}

// ActivePainter returns the currently registered Painter, or nil.
func ActivePainter() Painter {
	dispatchMu.RLock()
	defer dispatchMu.RUnlock()
	return activePainter
}
