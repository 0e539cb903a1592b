package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PopupRenderer handles popup/modal rendering
type PopupRenderer struct {
	styles *Styles
}

// NewPopupRenderer creates a new popup renderer
func NewPopupRenderer(styles *Styles) *PopupRenderer {
	return &PopupRenderer{
		styles: styles,
	}
}

// RenderPopupOverlay draws popupContent centered over a greyed-out copy of
// mainContent
func (pr *PopupRenderer) RenderPopupOverlay(mainContent, popupContent string, height, width int) string {
	styledPopup := pr.styles.Popup.Render(popupContent)

	modalW := lipgloss.Width(styledPopup)
	modalH := lipgloss.Height(styledPopup)
	if modalW > width-6 { // keep a small margin
		modalW = max(width-6, 1)
	}
	if modalH > height-4 {
		modalH = max(height-4, 1)
	}
	x := max((width-modalW)/2, 0)
	y := max((height-modalH)/2, 0)

	base := strings.Split(desaturate(mainContent, pr.styles.Backdrop), "\n")
	for len(base) < height {
		base = append(base, "")
	}

	popupLines := strings.Split(styledPopup, "\n")
	for i := 0; i < modalH && i < len(popupLines) && y+i < len(base); i++ {
		base[y+i] = overlayLine(base[y+i], ansi.Truncate(popupLines[i], modalW, ""), x, modalW)
	}
	return strings.Join(base, "\n")
}

// overlayLine replaces columns [x, x+w) of line with top
func overlayLine(line, top string, x, w int) string {
	left := ansi.Truncate(line, x, "")
	if pad := x - ansi.StringWidth(left); pad > 0 {
		left += strings.Repeat(" ", pad)
	}
	if tw := ansi.StringWidth(top); tw < w {
		top += strings.Repeat(" ", w-tw)
	}
	right := ansi.TruncateLeft(line, x+w, "")
	return left + top + right
}

// desaturate strips colors and redraws every line in the backdrop style
func desaturate(s string, backdrop lipgloss.Style) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		plain := ansi.Strip(l)
		if strings.TrimSpace(plain) == "" {
			lines[i] = plain
			continue
		}
		lines[i] = backdrop.Render(plain)
	}
	return strings.Join(lines, "\n")
}
