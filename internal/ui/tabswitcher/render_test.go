package tabswitcher

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tabswitch/internal/domain"
)

func plain(s string) string { return ansi.Strip(s) }

func TestViewHorizontal(t *testing.T) {
	m := New(abc(), Options{DefaultTab: "b"})
	m.SetSize(80, 12)

	out := plain(m.View())
	assert.Contains(t, out, "Alpha")
	assert.Contains(t, out, "Beta")
	assert.Contains(t, out, "Gamma")
	assert.Contains(t, out, "beta body")
	assert.NotContains(t, out, "alpha body")
	assert.NotContains(t, out, "gamma body")
	assert.Contains(t, out, "━")
	assert.Equal(t, 12, lipgloss.Height(out))

	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 80, ansi.StringWidth(line))
	}
}

func TestIndicatorTracksActiveTab(t *testing.T) {
	m := newTestModel(abc(), nil)
	m.SetSize(80, 12)

	assert.Equal(t, Bounds{Offset: 0, Extent: 26}, m.IndicatorBounds())

	pump(t, m, m.SelectTab("c"))
	assert.Equal(t, Bounds{Offset: 52, Extent: 26}, m.IndicatorBounds())

	// The indicator row puts the bar under the last third
	rows := strings.Split(plain(m.View()), "\n")
	require.Greater(t, len(rows), 2)
	bar := []rune(rows[2])
	assert.Equal(t, '─', bar[1+51])
	assert.Equal(t, '━', bar[1+52])
	assert.Equal(t, '━', bar[1+77])
}

func TestViewVertical(t *testing.T) {
	m := New(abc(), Options{Orientation: domain.Vertical, DefaultTab: "c"})
	m.SetSize(100, 12)

	out := plain(m.View())
	assert.Contains(t, out, "┃")
	assert.Contains(t, out, "│")
	assert.Contains(t, out, "gamma body")
	assert.Equal(t, Bounds{Offset: 4, Extent: 1}, m.IndicatorBounds())

	lines := strings.Split(out, "\n")
	// Border row, then one row per tab with a blank row between
	assert.Contains(t, lines[5], "┃")
	assert.Contains(t, lines[5], "Gamma")
}

func TestViewCompactCentersActive(t *testing.T) {
	tabs := make([]domain.TabDescriptor, 8)
	for i := range tabs {
		id := string(rune('a' + i))
		tabs[i] = domain.TabDescriptor{ID: id, Label: "Tab " + id, Content: domain.Text("body " + id)}
	}
	vp := newFakeViewport(300)
	m := New(tabs, Options{Viewport: vp, DefaultTab: "f"})
	m.SetSize(40, 10)

	require.True(t, m.Compact())
	assert.Equal(t, 68, m.StripScroll())

	out := plain(m.View())
	assert.Contains(t, out, "Tab f")
	assert.NotContains(t, out, "Tab a")
	for _, line := range strings.Split(out, "\n") {
		assert.Equal(t, 40, ansi.StringWidth(line))
	}
}

func TestViewEmpty(t *testing.T) {
	m := New(nil, Options{})
	out := plain(m.View())
	assert.Contains(t, out, "No tabs")
	assert.NotContains(t, out, "━")
}

func TestViewTransitionStyles(t *testing.T) {
	for _, style := range domain.AnimationStyles {
		t.Run(style.String(), func(t *testing.T) {
			m := New(abc(), Options{AnimationStyle: style, Timing: fast})
			m.SetSize(80, 12)

			cmd := m.SelectTab("b")
			require.True(t, m.Transitioning())
			out := plain(m.View())
			// Outgoing content is still shown until the commit
			assert.Contains(t, out, "pha body")
			assert.NotContains(t, out, "beta body")

			settle := m.Update(cmd())
			out = plain(m.View())
			assert.Contains(t, out, "beta body")
			assert.NotContains(t, out, "alpha body")

			m.Update(settle())
			assert.False(t, m.Transitioning())
		})
	}
}

// column returns the display column of needle in the first line holding it
func column(t *testing.T, view, needle string) int {
	t.Helper()
	for _, line := range strings.Split(plain(view), "\n") {
		if i := strings.Index(line, needle); i >= 0 {
			return ansi.StringWidth(line[:i])
		}
	}
	t.Fatalf("%q not rendered", needle)
	return -1
}

func TestSlideLeansWithDirection(t *testing.T) {
	t.Run("forward", func(t *testing.T) {
		m := New(abc(), Options{AnimationStyle: domain.AnimationSlide, Timing: fast})
		m.SetSize(80, 12)
		rest := column(t, m.View(), "alpha body")

		cmd := m.SelectTab("b")
		assert.Equal(t, rest+2, column(t, m.View(), "alpha body"))

		m.Update(cmd())
		assert.Equal(t, rest+2, column(t, m.View(), "beta body"))
	})

	t.Run("backward", func(t *testing.T) {
		m := New(abc(), Options{DefaultTab: "c", AnimationStyle: domain.AnimationSlide, Timing: fast})
		m.SetSize(80, 12)
		rest := column(t, m.View(), "gamma body")

		cmd := m.SelectTab("a")
		require.Equal(t, domain.Backward, m.Direction())
		assert.Equal(t, rest, column(t, m.View(), "mma body"))
		assert.NotContains(t, plain(m.View()), "gamma body")

		m.Update(cmd())
		assert.Equal(t, rest, column(t, m.View(), "pha body"))
		assert.NotContains(t, plain(m.View()), "alpha body")
	})
}

func TestSlideShiftsContent(t *testing.T) {
	assert.Equal(t, "llo\n", shiftLeft("hello\n", 2))
	assert.Equal(t, "  hel", shiftRight("hello", 2, 5))
	assert.Equal(t, " a\n b", indent("a\nb", 1))
}

func TestFitCell(t *testing.T) {
	assert.Equal(t, "  ab  ", fitCell("ab", 6))
	assert.Equal(t, 4, ansi.StringWidth(fitCell("abcdefgh", 4)))
	assert.Equal(t, "", fitCell("ab", 0))
}

func TestStyleOverrides(t *testing.T) {
	m := New(abc(), Options{Styles: StyleOverrides{
		Container: lipgloss.NewStyle().Border(lipgloss.NormalBorder()),
	}})
	m.SetSize(60, 10)

	out := plain(m.View())
	assert.True(t, strings.HasPrefix(out, "┌"))
	assert.Contains(t, out, "Alpha")
}

func TestIconGlyphs(t *testing.T) {
	tabs := []domain.TabDescriptor{
		{ID: "home", Label: "Home", Icon: domain.IconHome},
		{ID: "plain", Label: "Plain"},
	}
	m := New(tabs, Options{})
	m.SetSize(60, 8)

	out := plain(m.View())
	assert.Contains(t, out, "⌂ Home")
	assert.Equal(t, "", IconGlyph(domain.IconNone))
}
