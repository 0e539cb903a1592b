package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"tabswitch/internal/domain"
)

const (
	Title    = "Interactive Tab Switcher"
	Subtitle = "Showcase of smooth animations and modern UI design"
	Tagline  = "Fully accessible and responsive • Works at any terminal width"

	headerRows = 4 // title, subtitle, controls, gap
	footerRows = 3 // status, key hints, tagline
)

// StatusKind selects the status line color
type StatusKind int

const (
	StatusInfo StatusKind = iota
	StatusSuccess
	StatusError
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width       int
	Height      int
	Animation   domain.AnimationStyle
	Orientation domain.Orientation
	Theme       domain.Theme
	Compact     bool
	Source      string // "built-in" or the manifest path
	Switcher    string // pre-rendered switcher view
	Status      string
	StatusKind  StatusKind
	HelpModel   help.Model
	HelpKeys    []key.Binding
}

// Renderer handles all view rendering
type Renderer struct {
	styles      *Styles
	popupRender *PopupRenderer
}

// NewRenderer creates a new renderer for a palette
func NewRenderer(dark bool) *Renderer {
	styles := NewStyles(dark)
	return &Renderer{
		styles:      styles,
		popupRender: NewPopupRenderer(styles),
	}
}

// SetDark swaps the palette
func (r *Renderer) SetDark(dark bool) {
	r.styles = NewStyles(dark)
	r.popupRender = NewPopupRenderer(r.styles)
}

// Styles returns the active styles
func (r *Renderer) Styles() *Styles {
	return r.styles
}

// Popup returns the popup renderer
func (r *Renderer) Popup() *PopupRenderer {
	return r.popupRender
}

// SwitcherArea returns where the switcher sits on a width x height screen
func (r *Renderer) SwitcherArea(width, height int) (x, y, w, h int) {
	main := r.styles.Main
	x = main.GetPaddingLeft()
	y = main.GetPaddingTop() + headerRows
	w = max(width-main.GetHorizontalFrameSize(), 0)
	h = max(height-main.GetVerticalFrameSize()-headerRows-footerRows, 0)
	return x, y, w, h
}

// Render produces the complete page
func (r *Renderer) Render(state ViewState) string {
	_, _, inner, _ := r.SwitcherArea(state.Width, state.Height)
	if inner <= 0 {
		inner = 76
	}

	lines := []string{
		r.fit(r.styles.GradientTitle(Title), inner),
		r.fit(r.styles.Subtitle.Render(Subtitle), inner),
		r.fit(r.renderControls(state), inner),
		"",
		state.Switcher,
		r.fit(r.renderStatus(state), inner),
		r.fit(r.renderKeys(state), inner),
		r.fit(lipgloss.PlaceHorizontal(inner, lipgloss.Center, r.styles.Tagline.Render(Tagline)), inner),
	}
	return r.styles.Main.Render(strings.Join(lines, "\n"))
}

func (r *Renderer) renderControls(state ViewState) string {
	layout := "full"
	if state.Compact {
		layout = "compact"
	}
	item := func(label, value string) string {
		return r.styles.ControlLabel.Render(label+" ") + r.styles.ControlValue.Render(value)
	}
	sep := r.styles.Dim.Render("  │  ")
	parts := []string{
		item("Animation", state.Animation.String()),
		item("Orientation", state.Orientation.String()),
		item("Theme", state.Theme.String()),
		item("Layout", layout),
	}
	if state.Source != "" {
		parts = append(parts, item("Tabs", state.Source))
	}
	return strings.Join(parts, sep)
}

func (r *Renderer) renderStatus(state ViewState) string {
	if state.Status == "" {
		return r.styles.Dim.Render("Ready")
	}
	switch state.StatusKind {
	case StatusError:
		return r.styles.StatusError.Render("✗ " + state.Status)
	case StatusSuccess:
		return r.styles.StatusSuccess.Render("✓ " + state.Status)
	default:
		return r.styles.Status.Render(state.Status)
	}
}

func (r *Renderer) renderKeys(state ViewState) string {
	if len(state.HelpKeys) == 0 {
		return ""
	}
	return state.HelpModel.ShortHelpView(state.HelpKeys)
}

// fit truncates a single line to width
func (r *Renderer) fit(s string, width int) string {
	return ansi.Truncate(s, width, "…")
}

// StatusText formats a tab change for the status line
func StatusText(label string, dir domain.Direction) string {
	arrow := "→"
	if dir == domain.Backward {
		arrow = "←"
	}
	return fmt.Sprintf("%s %s", arrow, label)
}
