// Package engine binds the tree, layout, gesture, and scheduler packages
// into the single per-frame entry point a host embedder drives: feed it
// input and a canvas, and it lays out, paints, and composites whatever
// render tree the upstream reconciler has handed it via SetRoot.
//
// engine deliberately knows nothing about widgets or element
// reconciliation; the tree it paints is supplied from outside (spec.md
// §6's "Reconciler (upstream)" collaborator) as a plain layout.RenderObject.
package engine

import (
	"fmt"
	"sync"

	"github.com/flui-dev/flui/pkg/focus"
	"github.com/flui-dev/flui/pkg/geom"
	"github.com/flui-dev/flui/pkg/gestures"
	"github.com/flui-dev/flui/pkg/graphics"
	"github.com/flui-dev/flui/pkg/layout"
	"github.com/flui-dev/flui/pkg/platform"
	"github.com/flui-dev/flui/pkg/scheduler"
)

// PointerPhase identifies the stage of a raw platform pointer sample, kept
// distinct from gestures.PointerPhase because a platform window reports
// device pixels and an engine-local phase before the engine has resolved a
// hit test and converted to logical coordinates.
type PointerPhase int

const (
	PointerPhaseDown PointerPhase = iota
	PointerPhaseMove
	PointerPhaseUp
	PointerPhaseCancel
)

// PointerEvent is the raw sample a platform window delivers: device pixel
// position and a lifecycle phase, not yet hit-tested or scaled.
type PointerEvent struct {
	PointerID int64
	X, Y      float64
	Phase     PointerPhase
}

// Engine owns the render tree, the pipeline that lays it out and paints it,
// and the scheduler that sequences a frame's phases.
type Engine struct {
	mu sync.Mutex

	scheduler *scheduler.Scheduler
	pipeline  *layout.PipelineOwner

	root        layout.RenderObject
	deviceScale float64
	background  graphics.Color

	pointerEntries   map[int64][]layout.HitTestEntry
	pointerPositions map[int64]geom.Offset

	router *layout.EventRouter

	samples *scheduler.FrameSampleBuffer
}

// New returns an Engine driven by vsync, targeting targetFPS frames per
// second.
func New(vsync scheduler.VsyncSource, targetFPS float64) *Engine {
	return &Engine{
		scheduler:        scheduler.New(vsync, targetFPS),
		pipeline:         layout.NewPipelineOwner(),
		deviceScale:      1,
		background:       graphics.RGB(0, 0, 0),
		pointerEntries:   make(map[int64][]layout.HitTestEntry),
		pointerPositions: make(map[int64]geom.Offset),
		router:           layout.NewEventRouter(),
		samples:          scheduler.NewFrameSampleBuffer(0),
	}
}

// SetRoot installs root as the tree the engine lays out, paints, and
// hit-tests. Call this whenever the upstream reconciler swaps the tree;
// the engine itself never builds or reconciles one.
func (e *Engine) SetRoot(root layout.RenderObject) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.root = root
	e.pipeline.SetRoot(root)
	if root != nil {
		e.pipeline.ScheduleLayout(root)
		e.pipeline.SchedulePaint(root)
	}
	e.scheduler.RequestFrame()
}

// SetDeviceScale updates the device pixel scale used to convert between
// the logical coordinates the tree is laid out in and the device pixels a
// platform window reports input and surfaces in.
func (e *Engine) SetDeviceScale(scale float64) {
	if scale <= 0 {
		scale = 1
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.deviceScale == scale {
		return
	}
	e.deviceScale = scale
	if e.root != nil {
		e.root.MarkNeedsLayout()
	}
}

// SetBackgroundColor sets the color the canvas is cleared to before each
// frame's composite phase.
func (e *Engine) SetBackgroundColor(color graphics.Color) {
	e.mu.Lock()
	e.background = color
	e.mu.Unlock()
}

// Dispatch schedules callback to run during the named priority band of the
// next frame. Safe to call from any goroutine.
func (e *Engine) Dispatch(priority scheduler.Priority, callback func()) {
	e.scheduler.Dispatch(priority, callback)
}

// RequestFrame marks the engine as needing a fresh frame.
func (e *Engine) RequestFrame() {
	e.scheduler.RequestFrame()
}

// NeedsFrame reports whether a new frame should be rendered: an empty
// tree, queued work, or an active ticker all justify one.
func (e *Engine) NeedsFrame() bool {
	e.mu.Lock()
	root := e.root
	e.mu.Unlock()
	return root == nil || e.scheduler.NeedsFrame()
}

// Scheduler returns the engine's frame scheduler, for host code that needs
// to register tickers or inspect the current phase.
func (e *Engine) Scheduler() *scheduler.Scheduler { return e.scheduler }

// Samples returns a chronological snapshot of recent per-phase frame
// timings, for a host-side performance overlay.
func (e *Engine) Samples() []scheduler.FrameSample { return e.samples.Snapshot() }

// RunFrame advances the scheduler through a full frame: user input is
// drained eagerly, then the build band runs, then layout, then animation
// tickers, then paint, then composite onto canvas at size, then idle work
// if the frame budget allows (spec.md §4.6, §5).
func (e *Engine) RunFrame(canvas graphics.Canvas, size geom.Size) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during frame: %v", r)
		}
	}()

	e.scheduler.DrainUserInput()

	e.mu.Lock()
	scale := e.deviceScale
	bg := e.background
	root := e.root
	logicalSize := geom.Size{Width: size.Width / scale, Height: size.Height / scale}
	e.mu.Unlock()

	e.scheduler.RunFrame(scheduler.FrameHooks{
		Layout: func() {
			if root == nil {
				return
			}
			e.pipeline.Flush(layout.Tight(logicalSize))
		},
		Paint: func() {
			if root == nil {
				return
			}
			e.pipeline.FlushPaint()
		},
		Composite: func() {
			if root == nil {
				return
			}
			canvas.DrawRect(geom.RectFromLTWH(0, 0, size.Width, size.Height), graphics.NewFillPaint(bg))
			canvas.Save()
			canvas.Scale(scale, scale)
			layout.CompositeRoot(root, canvas)
			canvas.Restore()
		},
	})

	budget := e.scheduler.Budget()
	e.samples.Add(scheduler.SampleFromBudget(budget, scheduler.NowSeconds()))
	return nil
}

// HandlePointer hit-tests event.Phase's Down sample against the current
// tree via the engine's EventRouter, then on every phase re-dispatches
// through that same frozen set of HitTestEntry values: each handler along
// the path receives the event re-mapped into its own local coordinates by
// inverting the transform captured when it was hit, and dispatch stops as
// soon as a handler returns gestures.Stop (spec.md §4.5, §4.5 scenario D).
// The gesture arena resolves once the pointer's lifecycle closes (spec.md
// §5.2).
func (e *Engine) HandlePointer(event PointerEvent) {
	pointerID := event.PointerID
	var entries []layout.HitTestEntry
	delta := geom.Offset{}

	e.mu.Lock()
	root := e.root
	if root == nil {
		e.mu.Unlock()
		return
	}
	scale := e.deviceScale
	position := geom.Offset{X: event.X / scale, Y: event.Y / scale}

	if event.Phase != PointerPhaseDown {
		if last, ok := e.pointerPositions[pointerID]; ok {
			delta = geom.Offset{X: position.X - last.X, Y: position.Y - last.Y}
		}
	}
	e.pointerPositions[pointerID] = position

	if event.Phase == PointerPhaseDown {
		entries = e.router.HitTest(root, position)
		if len(entries) > 0 {
			e.pointerEntries[pointerID] = entries
		}
	} else {
		entries = e.pointerEntries[pointerID]
	}

	if event.Phase == PointerPhaseUp || event.Phase == PointerPhaseCancel {
		delete(e.pointerEntries, pointerID)
		delete(e.pointerPositions, pointerID)
	}
	e.mu.Unlock()

	if len(entries) == 0 {
		return
	}

	e.router.Dispatch(entries, pointerID, convertPointerPhase(event.Phase), gestures.PointerKindTouch, 0, 0, position, delta)

	if event.Phase == PointerPhaseDown {
		gestures.DefaultArena.Close(pointerID)
	}
	if event.Phase == PointerPhaseUp || event.Phase == PointerPhaseCancel {
		gestures.DefaultArena.Sweep(pointerID)
	}
}

// HandleScroll routes a platform scroll/wheel sample to the render tree
// via the engine's EventRouter; platform.ScrollEvent previously had no
// path from a window into the tree at all.
func (e *Engine) HandleScroll(event platform.ScrollEvent) {
	e.mu.Lock()
	root := e.root
	scale := e.deviceScale
	e.mu.Unlock()
	if root == nil {
		return
	}
	event.Position = geom.Offset{X: event.Position.X / scale, Y: event.Position.Y / scale}
	e.router.DispatchScroll(root, event)
}

// HandleKey routes a platform key event to the focused node, falling back
// to the root focus scope (spec.md §6's key event schema).
func (e *Engine) HandleKey(event gestures.KeyEvent) focus.KeyEventResult {
	return focus.GetFocusManager().DispatchKeyEvent(event)
}

func convertPointerPhase(phase PointerPhase) gestures.PointerPhase {
	switch phase {
	case PointerPhaseDown:
		return gestures.PointerPhaseDown
	case PointerPhaseMove:
		return gestures.PointerPhaseMove
	case PointerPhaseUp:
		return gestures.PointerPhaseUp
	case PointerPhaseCancel:
		return gestures.PointerPhaseCancel
	default:
		return gestures.PointerPhaseCancel
	}
}
