package tabswitcher

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"

	"tabswitch/internal/domain"
)

// Styles holds the built-in look of a switcher for one palette
type Styles struct {
	Container  lipgloss.Style
	Tab        lipgloss.Style
	ActiveTab  lipgloss.Style
	FocusedTab lipgloss.Style
	Icon       lipgloss.Style
	ActiveIcon lipgloss.Style
	Rule       lipgloss.Style
	Panel      lipgloss.Style
	Transition lipgloss.Style
	Empty      lipgloss.Style
	Indicator  []lipgloss.Style // gradient stops, left to right
	Scrollmark lipgloss.Style
}

// indicator gradient: blue -> purple -> pink
var indicatorStops = []string{"#3b82f6", "#a855f7", "#ec4899"}

const indicatorSteps = 12

// DefaultStyles returns the switcher styles for a light or dark palette
func DefaultStyles(dark bool) Styles {
	active := lipgloss.Color("#2563eb")
	inactive := lipgloss.Color("#4b5563")
	rule := lipgloss.Color("#e5e7eb")
	if dark {
		active = lipgloss.Color("#60a5fa")
		inactive = lipgloss.Color("#9ca3af")
		rule = lipgloss.Color("#374151")
	}

	return Styles{
		Container: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(rule),
		Tab:        lipgloss.NewStyle().Foreground(inactive).Padding(0, 1),
		ActiveTab:  lipgloss.NewStyle().Foreground(active).Bold(true).Padding(0, 1),
		FocusedTab: lipgloss.NewStyle().Underline(true),
		Icon:       lipgloss.NewStyle().Foreground(inactive),
		ActiveIcon: lipgloss.NewStyle().Foreground(active),
		Rule:       lipgloss.NewStyle().Foreground(rule),
		Panel:      lipgloss.NewStyle().Padding(1, 2),
		Transition: lipgloss.NewStyle().Faint(true),
		Empty:      lipgloss.NewStyle().Faint(true).Italic(true),
		Indicator:  gradient(indicatorStops, indicatorSteps),
		Scrollmark: lipgloss.NewStyle().Foreground(inactive),
	}
}

// gradient blends evenly spaced foreground styles across the given stops
func gradient(stops []string, steps int) []lipgloss.Style {
	colors := make([]colorful.Color, 0, len(stops))
	for _, s := range stops {
		c, err := colorful.Hex(s)
		if err != nil {
			continue
		}
		colors = append(colors, c)
	}
	if len(colors) == 0 || steps <= 0 {
		return nil
	}
	if len(colors) == 1 {
		return []lipgloss.Style{lipgloss.NewStyle().Foreground(lipgloss.Color(colors[0].Hex()))}
	}

	out := make([]lipgloss.Style, steps)
	for i := range out {
		t := float64(i) / float64(max(steps-1, 1))
		seg := t * float64(len(colors)-1)
		lo := min(int(seg), len(colors)-2)
		c := colors[lo].BlendLuv(colors[lo+1], seg-float64(lo)).Clamped()
		out[i] = lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex()))
	}
	return out
}

// paintIndicator renders n copies of glyph colored along the gradient
func (s Styles) paintIndicator(glyph string, n int) string {
	if n <= 0 {
		return ""
	}
	if len(s.Indicator) == 0 {
		return strings.Repeat(glyph, n)
	}
	var b strings.Builder
	for i := 0; i < n; i++ {
		idx := 0
		if n > 1 {
			idx = i * (len(s.Indicator) - 1) / (n - 1)
		}
		b.WriteString(s.Indicator[idx].Render(glyph))
	}
	return b.String()
}

// indicatorCell colors a single vertical indicator cell by its position
func (s Styles) indicatorCell(glyph string, pos, n int) string {
	if len(s.Indicator) == 0 {
		return glyph
	}
	idx := 0
	if n > 1 {
		idx = pos * (len(s.Indicator) - 1) / (n - 1)
	}
	return s.Indicator[idx].Render(glyph)
}

var iconGlyphs = map[domain.Icon]string{
	domain.IconHome:     "⌂",
	domain.IconBarChart: "▥",
	domain.IconSettings: "⚙",
	domain.IconUser:     "☺",
}

// IconGlyph returns the glyph for an icon, or "" when it has none
func IconGlyph(icon domain.Icon) string {
	return iconGlyphs[icon]
}

// apply layers an override on top of a base style. Inherit skips padding,
// so the base padding is carried over unless the override sets its own.
func apply(override, base lipgloss.Style) lipgloss.Style {
	st := override.Inherit(base)
	ot, or, ob, ol := override.GetPadding()
	if ot == 0 && or == 0 && ob == 0 && ol == 0 {
		st = st.Padding(base.GetPadding())
	}
	return st
}
