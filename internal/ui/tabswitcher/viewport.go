package tabswitcher

import "sync"

// CompactBreakpoint is the viewport width, in layout units, below which the
// switcher collapses into a horizontally scrolling strip.
const CompactBreakpoint = 768

// DefaultCellWidth is the number of layout units one terminal column counts for.
const DefaultCellWidth = 8

// IsCompact reports whether a viewport width selects the compact layout
func IsCompact(width int) bool {
	return width < CompactBreakpoint
}

// ViewportObserver reports the current viewport width and notifies on resize.
// OnResize returns a release func that removes the listener.
type ViewportObserver interface {
	Width() int
	OnResize(fn func(width int)) (release func())
}

// TerminalViewport converts terminal columns into layout units and fans
// resize notifications out to registered listeners.
type TerminalViewport struct {
	mu        sync.Mutex
	cellWidth int
	width     int
	listeners map[int]func(int)
	nextID    int
}

// NewTerminalViewport creates a viewport where one column is cellWidth units.
// A non-positive cellWidth uses DefaultCellWidth.
func NewTerminalViewport(cellWidth int) *TerminalViewport {
	if cellWidth <= 0 {
		cellWidth = DefaultCellWidth
	}
	return &TerminalViewport{
		cellWidth: cellWidth,
		listeners: make(map[int]func(int)),
	}
}

// Width returns the current width in layout units
func (v *TerminalViewport) Width() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.width
}

// Resize records a new terminal width in columns
func (v *TerminalViewport) Resize(columns int) {
	v.mu.Lock()
	units := columns * v.cellWidth
	v.mu.Unlock()
	v.SetWidth(units)
}

// SetWidth records a new width in layout units and notifies listeners
func (v *TerminalViewport) SetWidth(units int) {
	v.mu.Lock()
	v.width = units
	fns := make([]func(int), 0, len(v.listeners))
	for _, fn := range v.listeners {
		fns = append(fns, fn)
	}
	v.mu.Unlock()

	for _, fn := range fns {
		fn(units)
	}
}

// OnResize registers fn for resize notifications
func (v *TerminalViewport) OnResize(fn func(width int)) func() {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.nextID
	v.nextID++
	v.listeners[id] = fn

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			delete(v.listeners, id)
		})
	}
}

// Listeners returns the number of registered listeners
func (v *TerminalViewport) Listeners() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}
