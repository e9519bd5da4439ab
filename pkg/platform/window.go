// Package platform declares the capability surface the core expects from
// its host: a window to draw into and receive input from, a sink for
// painted scenes, and the clipboard/URL/cursor/file-dialog capabilities
// recognizers and widgets reach for opportunistically. None of these are
// implemented here; a host embedder supplies a concrete PlatformWindow and
// registers it, the way the engine registers its dispatch function in
// dispatch.go.
package platform

import (
	"github.com/flui-dev/flui/pkg/geom"
	"github.com/flui-dev/flui/pkg/gestures"
)

// WindowBoundsKind classifies the geometry a window reports and accepts
// for resize.
type WindowBoundsKind int

const (
	WindowBoundsWindowed WindowBoundsKind = iota
	WindowBoundsMaximized
	WindowBoundsFullscreen
)

// WindowBounds pairs a geometry kind with its rectangle; the rectangle is
// meaningless for Maximized and Fullscreen beyond reporting the restored
// size to return to.
type WindowBounds struct {
	Kind WindowBoundsKind
	Rect geom.Rect
}

// Appearance is the platform's light/dark/vibrant theme hint.
type Appearance int

const (
	AppearanceLight Appearance = iota
	AppearanceDark
	AppearanceVibrantLight
	AppearanceVibrantDark
)

// BackgroundAppearance controls how a window's background composites with
// whatever is behind it; Blurred/Mica variants are host-specific and may
// fall back to Opaque where unsupported.
type BackgroundAppearance int

const (
	BackgroundOpaque BackgroundAppearance = iota
	BackgroundTransparent
	BackgroundBlurred
	BackgroundMica
	BackgroundMicaAlt
)

// PlatformInputKind discriminates which event a PlatformInput carries.
type PlatformInputKind int

const (
	PlatformInputPointer PlatformInputKind = iota
	PlatformInputScroll
	PlatformInputKey
)

// PlatformInput is the union of raw input a window delivers through
// on_input; exactly one of Pointer, Scroll, or Key is populated per Kind.
type PlatformInput struct {
	Kind    PlatformInputKind
	Pointer gestures.PointerEvent
	Scroll  ScrollEvent
	Key     gestures.KeyEvent
}

// ScrollDeltaUnit distinguishes a wheel's line-based delta from a
// trackpad's pixel-based delta.
type ScrollDeltaUnit int

const (
	ScrollDeltaLines ScrollDeltaUnit = iota
	ScrollDeltaPixels
)

// ScrollEvent is a platform scroll/wheel sample.
type ScrollEvent struct {
	Unit      ScrollDeltaUnit
	DeltaX    float64
	DeltaY    float64
	Position  geom.Offset
	Modifiers gestures.Modifiers
	Timestamp float64
}

// DispatchResult is what an on_input handler returns: whether the event
// should keep propagating to the platform's own default handling, and
// whether the core claimed it.
type DispatchResult struct {
	Propagate      bool
	DefaultPrevented bool
}

// Display describes one of the host's physical displays.
type Display struct {
	Name        string
	Bounds      geom.Rect
	ScaleFactor float64
}

// WindowCallbacks are the per-window callback slots a host installs; any
// left nil is simply never invoked. OnClose fires at most once per window.
type WindowCallbacks struct {
	OnInput               func(PlatformInput) DispatchResult
	OnRequestFrame        func()
	OnResize              func(size geom.Size, scale float64)
	OnMoved               func()
	OnClose               func()
	OnShouldClose         func() bool
	OnActiveStatusChange  func(active bool)
	OnHoverStatusChange   func(hovered bool)
	OnAppearanceChanged   func()
}

// PlatformWindow is the capability a host embedder exposes to the core:
// the surface the scheduler asks to redraw, the source of input events,
// and the set of queries/controls widgets and recognizers use to react to
// and manipulate window chrome (spec.md §6 item 2).
type PlatformWindow interface {
	// RequestRedraw is called whenever the scheduler needs a frame drawn;
	// the host should arrange a vsync-timed callback into OnRequestFrame.
	RequestRedraw()

	// SetCallbacks installs the window's callback slots, replacing any
	// previously installed set.
	SetCallbacks(WindowCallbacks)

	PhysicalSize() geom.Size
	LogicalSize() geom.Size
	Bounds() geom.Rect
	ContentSize() geom.Size
	WindowBounds() WindowBounds
	ScaleFactor() float64
	IsFocused() bool
	IsVisible() bool
	IsMaximized() bool
	IsFullscreen() bool
	IsActive() bool
	IsHovered() bool
	MousePosition() geom.Offset
	Modifiers() gestures.Modifiers
	Appearance() Appearance
	CurrentDisplay() Display
	Title() string

	SetTitle(title string)
	Activate()
	Minimize()
	Maximize()
	Restore()
	ToggleFullscreen()
	Resize(size geom.Size)
	Close()
	SetBackgroundAppearance(BackgroundAppearance)
}

var (
	activeWindow PlatformWindow
)

// RegisterWindow installs the PlatformWindow the core drives. A host calls
// this once during startup, mirroring RegisterDispatch in dispatch.go.
func RegisterWindow(w PlatformWindow) {
	dispatchMu.Lock()
	activeWindow = w
	dispatchMu.Unlock()
}

// Window returns the currently registered PlatformWindow, or nil if none
// has been registered yet.
func Window() PlatformWindow {
	dispatchMu.RLock()
	defer dispatchMu.RUnlock()
	return activeWindow
}
