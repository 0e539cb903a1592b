package tabswitcher

// Axis is the direction tab controls are laid out along
type Axis int

const (
	AxisHorizontal Axis = iota
	AxisVertical
)

func (a Axis) String() string {
	if a == AxisVertical {
		return "vertical"
	}
	return "horizontal"
}

// Layout constants, in terminal cells
const (
	compactMinTabWidth = 15 // 120 units at the default cell width
	compactGap         = 1
	sidebarWidth       = 36
	verticalGap        = 1
)

// TabLayout is the on-screen extent of every tab control along one axis.
// Columns for horizontal layouts, rows for vertical ones.
type TabLayout struct {
	Axis    Axis
	Extents []int
	Gap     int
}

// Bounds is the offset and extent of the indicator along the layout axis
type Bounds struct {
	Offset int
	Extent int
}

// ComputeIndicatorBounds places the indicator exactly over the control at
// activeIndex. An out-of-range index yields zero Bounds.
func ComputeIndicatorBounds(layout TabLayout, activeIndex int) Bounds {
	if activeIndex < 0 || activeIndex >= len(layout.Extents) {
		return Bounds{}
	}
	offset := 0
	for i := 0; i < activeIndex; i++ {
		offset += layout.Extents[i] + layout.Gap
	}
	return Bounds{Offset: offset, Extent: layout.Extents[activeIndex]}
}

// Total is the full length of the layout including gaps
func (l TabLayout) Total() int {
	if len(l.Extents) == 0 {
		return 0
	}
	total := l.Gap * (len(l.Extents) - 1)
	for _, e := range l.Extents {
		total += e
	}
	return total
}

// IndexAt returns the tab whose control covers pos, or -1
func (l TabLayout) IndexAt(pos int) int {
	if pos < 0 {
		return -1
	}
	start := 0
	for i, e := range l.Extents {
		if pos >= start && pos < start+e {
			return i
		}
		start += e + l.Gap
	}
	return -1
}

// evenLayout splits total columns across n tabs. Leftmost tabs absorb the
// remainder; no tab is narrower than its natural width.
func evenLayout(total int, natural []int) TabLayout {
	n := len(natural)
	layout := TabLayout{Axis: AxisHorizontal, Extents: make([]int, n)}
	if n == 0 {
		return layout
	}
	share, rem := total/n, total%n
	for i := range natural {
		e := share
		if i < rem {
			e++
		}
		if e < natural[i] {
			e = natural[i]
		}
		layout.Extents[i] = e
	}
	return layout
}

// compactLayout sizes each tab to its natural width with a minimum
func compactLayout(natural []int) TabLayout {
	layout := TabLayout{Axis: AxisHorizontal, Extents: make([]int, len(natural)), Gap: compactGap}
	for i, w := range natural {
		layout.Extents[i] = max(w, compactMinTabWidth)
	}
	return layout
}

// verticalLayout stacks one-row tabs separated by a blank row
func verticalLayout(n int) TabLayout {
	layout := TabLayout{Axis: AxisVertical, Extents: make([]int, n), Gap: verticalGap}
	for i := range layout.Extents {
		layout.Extents[i] = 1
	}
	return layout
}

// StripOffset returns the scroll position that centers the active control in
// a strip showing visible cells, clamped to the strip ends.
func StripOffset(layout TabLayout, activeIndex, visible int) int {
	total := layout.Total()
	if visible <= 0 || total <= visible {
		return 0
	}
	b := ComputeIndicatorBounds(layout, activeIndex)
	offset := b.Offset + b.Extent/2 - visible/2
	return min(max(offset, 0), total-visible)
}
