package platform

import (
	"testing"

	"github.com/flui-dev/flui/pkg/geom"
	"github.com/flui-dev/flui/pkg/gestures"
)

func TestDispatchRunsRegisteredFunction(t *testing.T) {
	var ran bool
	RegisterDispatch(func(callback func()) { callback() })
	defer RegisterDispatch(nil)

	if !Dispatch(func() { ran = true }) {
		t.Fatalf("expected Dispatch to report success once a dispatch function is registered")
	}
	if !ran {
		t.Fatalf("expected the callback to run")
	}
}

func TestDispatchWithoutRegistrationFails(t *testing.T) {
	RegisterDispatch(nil)
	if Dispatch(func() {}) {
		t.Fatalf("expected Dispatch to report failure with no dispatch function registered")
	}
}

// fakeWindow is a minimal PlatformWindow stub used only to exercise the
// registration plumbing, not real windowing behavior.
type fakeWindow struct {
	title string
	size  geom.Size
}

func (f *fakeWindow) RequestRedraw()                            {}
func (f *fakeWindow) SetCallbacks(WindowCallbacks)               {}
func (f *fakeWindow) PhysicalSize() geom.Size                    { return f.size }
func (f *fakeWindow) LogicalSize() geom.Size                     { return f.size }
func (f *fakeWindow) Bounds() geom.Rect                          { return geom.RectFromLTWH(0, 0, f.size.Width, f.size.Height) }
func (f *fakeWindow) ContentSize() geom.Size                     { return f.size }
func (f *fakeWindow) WindowBounds() WindowBounds                 { return WindowBounds{Kind: WindowBoundsWindowed, Rect: f.Bounds()} }
func (f *fakeWindow) ScaleFactor() float64                       { return 1 }
func (f *fakeWindow) IsFocused() bool                            { return true }
func (f *fakeWindow) IsVisible() bool                            { return true }
func (f *fakeWindow) IsMaximized() bool                          { return false }
func (f *fakeWindow) IsFullscreen() bool                         { return false }
func (f *fakeWindow) IsActive() bool                             { return true }
func (f *fakeWindow) IsHovered() bool                            { return false }
func (f *fakeWindow) MousePosition() geom.Offset                 { return geom.Offset{} }
func (f *fakeWindow) Modifiers() gestures.Modifiers              { return 0 }
func (f *fakeWindow) Appearance() Appearance                     { return AppearanceLight }
func (f *fakeWindow) CurrentDisplay() Display                    { return Display{Name: "fake"} }
func (f *fakeWindow) Title() string                              { return f.title }
func (f *fakeWindow) SetTitle(title string)                      { f.title = title }
func (f *fakeWindow) Activate()                                  {}
func (f *fakeWindow) Minimize()                                  {}
func (f *fakeWindow) Maximize()                                  {}
func (f *fakeWindow) Restore()                                   {}
func (f *fakeWindow) ToggleFullscreen()                          {}
func (f *fakeWindow) Resize(size geom.Size)                      { f.size = size }
func (f *fakeWindow) Close()                                     {}
func (f *fakeWindow) SetBackgroundAppearance(BackgroundAppearance) {}

func TestRegisterWindowRoundTrips(t *testing.T) {
	w := &fakeWindow{title: "flui", size: geom.Size{Width: 800, Height: 600}}
	RegisterWindow(w)
	defer RegisterWindow(nil)

	got := Window()
	if got == nil {
		t.Fatalf("expected Window() to return the registered window")
	}
	if got.Title() != "flui" {
		t.Fatalf("expected title %q, got %q", "flui", got.Title())
	}
	if got.PhysicalSize() != (geom.Size{Width: 800, Height: 600}) {
		t.Fatalf("expected physical size to round-trip, got %+v", got.PhysicalSize())
	}
}

type fakeClipboard struct{ text string }

func (c *fakeClipboard) ReadText() (string, error)  { return c.text, nil }
func (c *fakeClipboard) WriteText(text string) error { c.text = text; return nil }

func TestRegisterClipboardRoundTrips(t *testing.T) {
	RegisterClipboard(nil)
	if GetClipboard() != nil {
		t.Fatalf("expected no clipboard registered initially")
	}

	c := &fakeClipboard{}
	RegisterClipboard(c)
	defer RegisterClipboard(nil)
	if GetClipboard() != c {
		t.Fatalf("expected GetClipboard to return the registered clipboard")
	}
}
