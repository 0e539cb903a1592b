package tabswitcher

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tabswitch/internal/domain"
)

const (
	defaultWidth = 80
	slideShift   = 2
	scaleInset   = 1
	stripRows    = 2 // tab row + indicator row
)

// frame is the measured geometry of one render pass
type frame struct {
	container lipgloss.Style
	tab       lipgloss.Style
	activeTab lipgloss.Style
	panel     lipgloss.Style

	inner  int // content width inside the container
	axis   Axis
	layout TabLayout
	labels []string
	offset int // compact strip scroll position
}

// measure lays out the tab controls for the current size and mode
func (m *Model) measure() frame {
	f := frame{
		container: apply(m.overrides.Container, m.styles.Container),
		tab:       apply(m.overrides.Tab, m.styles.Tab),
		activeTab: apply(m.overrides.Tab, m.styles.ActiveTab),
		panel:     apply(m.overrides.Content, m.styles.Panel),
	}

	width := m.width
	if width <= 0 {
		width = defaultWidth
	}
	f.inner = max(width-f.container.GetHorizontalFrameSize(), 1)

	f.labels = make([]string, len(m.tabs))
	natural := make([]int, len(m.tabs))
	active := m.ActiveIndex()
	for i := range m.tabs {
		f.labels[i] = m.renderLabel(f, i, i == active)
		natural[i] = lipgloss.Width(f.labels[i])
	}

	switch {
	case m.compact:
		f.axis = AxisHorizontal
		f.layout = compactLayout(natural)
		f.offset = StripOffset(f.layout, active, f.inner)
	case m.orientation == domain.Vertical:
		f.axis = AxisVertical
		f.layout = verticalLayout(len(m.tabs))
	default:
		f.axis = AxisHorizontal
		f.layout = evenLayout(f.inner, natural)
	}
	return f
}

func (m *Model) renderLabel(f frame, i int, active bool) string {
	t := m.tabs[i]
	label := t.Label
	if glyph := IconGlyph(t.Icon); glyph != "" {
		icon := m.styles.Icon
		if active {
			icon = m.styles.ActiveIcon
		}
		label = icon.Render(glyph) + " " + label
	}

	st := f.tab
	if active {
		st = f.activeTab
	}
	if m.region == RegionTabs && t.ID == m.focusedID {
		st = apply(m.styles.FocusedTab, st)
	}
	return st.Render(label)
}

// View renders the switcher
func (m *Model) View() string {
	if m.closed {
		return ""
	}
	f := m.measure()
	if len(m.tabs) == 0 {
		return f.container.Render(m.styles.Empty.Width(f.inner).Render("No tabs"))
	}

	var body string
	if f.axis == AxisVertical {
		body = m.viewVertical(f)
	} else {
		body = m.viewHorizontal(f)
	}
	return f.container.Render(body)
}

func (m *Model) viewHorizontal(f frame) string {
	cells := make([]string, len(f.labels))
	for i, label := range f.labels {
		cells[i] = fitCell(label, f.layout.Extents[i])
	}
	strip := strings.Join(cells, strings.Repeat(" ", f.layout.Gap))

	total := f.layout.Total()
	b := ComputeIndicatorBounds(f.layout, m.ActiveIndex())
	rule := m.styles.Rule.Render(strings.Repeat("─", b.Offset)) +
		m.styles.paintIndicator("━", b.Extent) +
		m.styles.Rule.Render(strings.Repeat("─", max(total-b.Offset-b.Extent, 0)))

	if m.compact {
		strip = ansi.Cut(strip, f.offset, f.offset+f.inner)
		rule = ansi.Cut(rule, f.offset, f.offset+f.inner)
	} else if total > f.inner {
		strip = ansi.Truncate(strip, f.inner, "")
		rule = ansi.Truncate(rule, f.inner, "")
	}
	if w := ansi.StringWidth(rule); w < f.inner {
		rule += m.styles.Rule.Render(strings.Repeat("─", f.inner-w))
	}

	height := 0
	if m.height > 0 {
		height = max(m.height-f.container.GetVerticalFrameSize()-stripRows, 1)
	}
	panel := m.viewPanel(f, f.inner, height)

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.NewStyle().Width(f.inner).Render(strip),
		rule,
		panel,
	)
}

func (m *Model) viewVertical(f frame) string {
	side := min(sidebarWidth, f.inner/2)
	b := ComputeIndicatorBounds(f.layout, m.ActiveIndex())

	rows := make([]string, 0, f.layout.Total())
	for i, label := range f.labels {
		if i > 0 {
			for g := 0; g < f.layout.Gap; g++ {
				rows = append(rows, strings.Repeat(" ", side))
			}
		}
		bar := " "
		if i*(1+f.layout.Gap) >= b.Offset && i*(1+f.layout.Gap) < b.Offset+b.Extent {
			bar = m.styles.indicatorCell("┃", i, len(f.labels))
		}
		cell := lipgloss.PlaceHorizontal(side-1, lipgloss.Left, ansi.Truncate(label, side-1, "…"))
		rows = append(rows, bar+cell)
	}

	height := 0
	if m.height > 0 {
		height = max(m.height-f.container.GetVerticalFrameSize(), len(rows))
	}
	panelWidth := max(f.inner-side-1, 1)
	panel := m.viewPanel(f, panelWidth, height)

	sidebar := lipgloss.NewStyle().Width(side).Render(strings.Join(rows, "\n"))
	n := max(lipgloss.Height(sidebar), lipgloss.Height(panel))
	sep := m.styles.Rule.Render(strings.TrimSuffix(strings.Repeat("│\n", n), "\n"))

	return lipgloss.JoinHorizontal(lipgloss.Top, sidebar, sep, panel)
}

// viewPanel renders only the active panel. Inactive panels are never drawn.
func (m *Model) viewPanel(f frame, width, height int) string {
	p := m.panel
	p.Width = width
	p.Height = height
	if m.region == RegionPanel && height > 1 {
		p.Height = height - 1
	}

	content := m.panelContent(f, width)
	if height <= 0 {
		return lipgloss.NewStyle().Width(width).Render(content)
	}

	p.SetContent(content)
	out := p.View()
	if m.region == RegionPanel && height > 1 {
		mark := fmt.Sprintf("── %3.f%% ──", p.ScrollPercent()*100)
		out += "\n" + m.styles.Scrollmark.Width(width).Align(lipgloss.Right).Render(mark)
	}
	return out
}

// panelContent is the active tab body inside the content style, decorated
// while a transition is in flight
func (m *Model) panelContent(f frame, width int) string {
	tab := m.tabs[m.ActiveIndex()]
	bodyWidth := max(width-f.panel.GetHorizontalFrameSize(), 1)

	if !m.transitioning {
		return f.panel.Width(width).Render(tab.Body(bodyWidth))
	}

	switch m.animation {
	case domain.AnimationScale:
		inner := max(bodyWidth-2*scaleInset, 1)
		body := m.fade(tab.Body(inner))
		return f.panel.Width(width).Render(indent(body, scaleInset))
	case domain.AnimationFade:
		return f.panel.Width(width).Render(m.fade(tab.Body(bodyWidth)))
	default:
		// Both phases lean toward the direction of travel
		body := m.fade(tab.Body(bodyWidth))
		if m.direction == domain.Forward {
			body = shiftRight(body, slideShift, bodyWidth)
		} else {
			body = shiftLeft(body, slideShift)
		}
		return f.panel.Width(width).Render(body)
	}
}

func (m *Model) fade(s string) string {
	lines := strings.Split(ansi.Strip(s), "\n")
	for i, l := range lines {
		lines[i] = m.styles.Transition.Render(l)
	}
	return strings.Join(lines, "\n")
}

// syncPanel loads the active body into the scrolling panel so key scrolling
// sees the same bounds View draws
func (m *Model) syncPanel() {
	if m.inert() {
		return
	}
	f := m.measure()
	width := f.inner
	height := 0
	if m.height > 0 {
		height = max(m.height-f.container.GetVerticalFrameSize()-stripRows, 1)
	}
	if f.axis == AxisVertical {
		width = max(f.inner-min(sidebarWidth, f.inner/2)-1, 1)
		if m.height > 0 {
			height = max(m.height-f.container.GetVerticalFrameSize(), 1)
		}
	}
	if height > 1 {
		height--
	}
	m.panel.Width = width
	m.panel.Height = height
	m.panel.SetContent(m.panelContent(f, width))
}

// hitTest maps a cell relative to the widget origin to a tab index, or -1
func (m *Model) hitTest(x, y int) int {
	if len(m.tabs) == 0 {
		return -1
	}
	f := m.measure()
	x -= f.container.GetMarginLeft() + f.container.GetBorderLeftSize() + f.container.GetPaddingLeft()
	y -= f.container.GetMarginTop() + f.container.GetBorderTopSize() + f.container.GetPaddingTop()
	if x < 0 || y < 0 || x >= f.inner {
		return -1
	}

	if f.axis == AxisVertical {
		if x >= min(sidebarWidth, f.inner/2) {
			return -1
		}
		return f.layout.IndexAt(y)
	}
	if y != 0 {
		return -1
	}
	return f.layout.IndexAt(x + f.offset)
}

// IndicatorBounds returns where the indicator is drawn for the current state
func (m *Model) IndicatorBounds() Bounds {
	if m.inert() {
		return Bounds{}
	}
	f := m.measure()
	return ComputeIndicatorBounds(f.layout, m.ActiveIndex())
}

// Layout returns the tab layout for the current state
func (m *Model) Layout() TabLayout {
	return m.measure().layout
}

// StripScroll returns the compact strip scroll position, 0 outside compact mode
func (m *Model) StripScroll() int {
	if m.inert() {
		return 0
	}
	return m.measure().offset
}

// fitCell centers s in n columns, truncating when it does not fit
func fitCell(s string, n int) string {
	if n <= 0 {
		return ""
	}
	if lipgloss.Width(s) > n {
		return ansi.Truncate(s, n, "…")
	}
	return lipgloss.PlaceHorizontal(n, lipgloss.Center, s)
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = pad + l
	}
	return strings.Join(lines, "\n")
}

func shiftLeft(s string, n int) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = ansi.TruncateLeft(l, n, "")
	}
	return strings.Join(lines, "\n")
}

func shiftRight(s string, n, width int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = ansi.Truncate(pad+l, width, "")
	}
	return strings.Join(lines, "\n")
}
