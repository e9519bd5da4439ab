package platform

// Clipboard, URLLauncher, Cursor, and FileDialog are capabilities
// recognizers and widgets reach for opportunistically; they sit off the
// critical render/layout/hit-test path, so the core only needs a place to
// look them up, not a registration protocol tied into frame scheduling
// (spec.md §6 item 5).

// Clipboard reads and writes the system clipboard's plain text contents.
type Clipboard interface {
	ReadText() (string, error)
	WriteText(text string) error
}

// URLLauncher opens URLs in the system's default handler.
type URLLauncher interface {
	OpenURL(url string) error
	CanOpenURL(url string) (bool, error)
}

// CursorShape is a standard pointer cursor a host renders natively.
type CursorShape int

const (
	CursorDefault CursorShape = iota
	CursorPointer
	CursorText
	CursorCrosshair
	CursorGrab
	CursorGrabbing
	CursorResizeColumn
	CursorResizeRow
	CursorNotAllowed
	CursorNone
)

// Cursor controls the host's pointer appearance over the window.
type Cursor interface {
	SetCursor(CursorShape)
}

// FileDialogFilter restricts a file dialog to a named set of extensions.
type FileDialogFilter struct {
	Name       string
	Extensions []string
}

// FileDialog presents native open/save file pickers.
type FileDialog interface {
	OpenFile(filters []FileDialogFilter) (path string, ok bool, err error)
	SaveFile(suggestedName string, filters []FileDialogFilter) (path string, ok bool, err error)
}

// capabilities bundles whichever of the above a host has chosen to
// implement; fields left nil are simply unavailable.
type capabilities struct {
	clipboard   Clipboard
	urlLauncher URLLauncher
	cursor      Cursor
	fileDialog  FileDialog
}

var registeredCapabilities capabilities

// RegisterClipboard installs the host's Clipboard implementation.
func RegisterClipboard(c Clipboard) {
	dispatchMu.Lock()
	registeredCapabilities.clipboard = c
	dispatchMu.Unlock()
}

// GetClipboard returns the registered Clipboard, or nil if none was
// registered.
func GetClipboard() Clipboard {
	dispatchMu.RLock()
	defer dispatchMu.RUnlock()
	return registeredCapabilities.clipboard
}

// RegisterURLLauncher installs the host's URLLauncher implementation.
func RegisterURLLauncher(u URLLauncher) {
	dispatchMu.Lock()
	registeredCapabilities.urlLauncher = u
	dispatchMu.Unlock()
}

// GetURLLauncher returns the registered URLLauncher, or nil if none was
// registered.
func GetURLLauncher() URLLauncher {
	dispatchMu.RLock()
	defer dispatchMu.RUnlock()
	return registeredCapabilities.urlLauncher
}

// RegisterCursor installs the host's Cursor implementation.
func RegisterCursor(c Cursor) {
	dispatchMu.Lock()
	registeredCapabilities.cursor = c
	dispatchMu.Unlock()
}

// GetCursor returns the registered Cursor, or nil if none was registered.
func GetCursor() Cursor {
	dispatchMu.RLock()
	defer dispatchMu.RUnlock()
	return registeredCapabilities.cursor
}

// RegisterFileDialog installs the host's FileDialog implementation.
func RegisterFileDialog(f FileDialog) {
	dispatchMu.Lock()
	registeredCapabilities.fileDialog = f
	dispatchMu.Unlock()
}

// GetFileDialog returns the registered FileDialog, or nil if none was
// registered.
func GetFileDialog() FileDialog {
	dispatchMu.RLock()
	defer dispatchMu.RUnlock()
	return registeredCapabilities.fileDialog
}
