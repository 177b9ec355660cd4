package catalog

// DefaultWindow is the initial "show N" page size for browsing views.
const DefaultWindow = 24

// Window is the incrementing pagination window over a filtered list. It
// grows by its initial size on "load more" and snaps back whenever any
// filter input changes.
type Window struct {
	initial int
	size    int
}

// NewWindow creates a window with the given initial size; non-positive
// values fall back to DefaultWindow.
func NewWindow(initial int) *Window {
	if initial <= 0 {
		initial = DefaultWindow
	}
	return &Window{initial: initial, size: initial}
}

// Size reports the current window size.
func (w *Window) Size() int { return w.size }

// Grow expands the window by one step.
func (w *Window) Grow() { w.size += w.initial }

// Reset snaps the window back to its initial size. Called on every filter
// change.
func (w *Window) Reset() { w.size = w.initial }

// Clip bounds the window to the filtered result length and returns how many
// elements are shown.
func (w *Window) Clip(n int) int {
	if w.size > n {
		return n
	}
	return w.size
}
