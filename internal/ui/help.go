package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/x/ansi"

	"tabswitch/internal/ui/input/types"
	"tabswitch/internal/ui/tabswitcher"
	"tabswitch/internal/ui/views"
)

type helpSection struct {
	title    string
	bindings []key.Binding
	note     string
}

// HelpRenderer handles help content rendering
type HelpRenderer struct {
	sections []helpSection
}

// NewHelpRenderer builds the help text from the live key maps
func NewHelpRenderer(page types.KeyMap, tabs tabswitcher.KeyMap) *HelpRenderer {
	return &HelpRenderer{sections: []helpSection{
		{title: "Tabs", bindings: []key.Binding{tabs.Prev, tabs.Next, tabs.Home, tabs.End, tabs.Activate}},
		{
			title:    "Focus",
			bindings: []key.Binding{tabs.FocusNext, tabs.FocusPrev},
			note:     "Focus moves to the new tab once its content has settled.",
		},
		{title: "Panel", bindings: []key.Binding{tabs.ScrollUp, tabs.ScrollDown, tabs.PageUp, tabs.PageDown}},
		{title: "Page", bindings: []key.Binding{page.Theme, page.Animation, page.Orientation, page.Reload}},
		{
			title:    "Other",
			bindings: []key.Binding{page.Help, page.Pager, page.OvPager, page.Quit},
			note:     "Click a tab to select it.",
		},
	}}
}

// Content renders the full help text with the given styles
func (r *HelpRenderer) Content(styles *views.Styles) string {
	keyWidth := 0
	for _, s := range r.sections {
		for _, b := range s.bindings {
			keyWidth = max(keyWidth, ansi.StringWidth(b.Help().Key))
		}
	}

	var help strings.Builder
	help.WriteString(styles.PopupTitle.Render("Tab Switcher Help"))
	help.WriteString("\n")

	for i, s := range r.sections {
		if i > 0 {
			help.WriteString("\n")
		}
		help.WriteString(styles.Section.Render(s.title))
		help.WriteString("\n")
		for _, b := range s.bindings {
			if !b.Enabled() {
				continue
			}
			h := b.Help()
			pad := strings.Repeat(" ", keyWidth-ansi.StringWidth(h.Key))
			help.WriteString(fmt.Sprintf("  %s%s  %s\n", styles.Key.Render(h.Key), pad, styles.Desc.Render(h.Desc)))
		}
		if s.note != "" {
			help.WriteString(styles.Scroll.Render("  " + s.note))
			help.WriteString("\n")
		}
	}
	return strings.TrimRight(help.String(), "\n")
}

// lines splits the help content for scrolling
func (r *HelpRenderer) lines(styles *views.Styles) []string {
	return strings.Split(r.Content(styles), "\n")
}

// visibleRows is how many help lines fit in a popup on a screen of height
func visibleRows(height int) int {
	// popup border and padding
	return max(height-8, 5)
}

// MaxOffset is the largest useful scroll offset for a screen height
func (r *HelpRenderer) MaxOffset(styles *views.Styles, height int) int {
	return max(len(r.lines(styles))-visibleRows(height), 0)
}

// Render returns the visible window of the help text at scrollOffset
func (r *HelpRenderer) Render(styles *views.Styles, height, scrollOffset int) string {
	lines := r.lines(styles)
	totalLines := len(lines)
	visibleHeight := visibleRows(height)

	if totalLines <= visibleHeight {
		return strings.Join(lines, "\n")
	}

	maxOffset := totalLines - visibleHeight
	scrollOffset = min(max(scrollOffset, 0), maxOffset)

	end := scrollOffset + visibleHeight
	visible := append([]string(nil), lines[scrollOffset:end]...)

	// Add scroll indicators
	if scrollOffset > 0 {
		visible[0] = styles.Scroll.Render("↑ (more above)")
	}
	if end < totalLines {
		visible[len(visible)-1] = styles.Scroll.Render("↓ (more below)")
	}
	return strings.Join(visible, "\n")
}
