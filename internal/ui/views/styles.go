package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// Styles contains all the style definitions for the page
type Styles struct {
	Title         lipgloss.Style
	Subtitle      lipgloss.Style
	ControlLabel  lipgloss.Style
	ControlValue  lipgloss.Style
	Dim           lipgloss.Style
	Status        lipgloss.Style
	StatusError   lipgloss.Style
	StatusSuccess lipgloss.Style
	Tagline       lipgloss.Style
	Main          lipgloss.Style
	Popup         lipgloss.Style
	PopupTitle    lipgloss.Style
	Section       lipgloss.Style
	Key           lipgloss.Style
	Desc          lipgloss.Style
	Scroll        lipgloss.Style
	Backdrop      lipgloss.Style

	// title gradient endpoints
	titleFrom string
	titleTo   string
}

// NewStyles returns the page styles for a light or dark palette
func NewStyles(dark bool) *Styles {
	text := lipgloss.Color("#111827")
	muted := lipgloss.Color("#4b5563")
	faint := lipgloss.Color("#9ca3af")
	border := lipgloss.Color("#d1d5db")
	accent := lipgloss.Color("#2563eb")
	from, to := "#2563eb", "#9333ea"
	if dark {
		text = lipgloss.Color("#f3f4f6")
		muted = lipgloss.Color("#9ca3af")
		faint = lipgloss.Color("#6b7280")
		border = lipgloss.Color("#374151")
		accent = lipgloss.Color("#60a5fa")
		from, to = "#60a5fa", "#c084fc"
	}

	return &Styles{
		Title:         lipgloss.NewStyle().Bold(true),
		Subtitle:      lipgloss.NewStyle().Foreground(muted),
		ControlLabel:  lipgloss.NewStyle().Foreground(muted),
		ControlValue:  lipgloss.NewStyle().Foreground(accent).Bold(true),
		Dim:           lipgloss.NewStyle().Foreground(faint),
		Status:        lipgloss.NewStyle().Foreground(muted),
		StatusError:   lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		StatusSuccess: lipgloss.NewStyle().Foreground(lipgloss.Color("78")),  // green
		Tagline:       lipgloss.NewStyle().Foreground(faint).Italic(true),
		Main:          lipgloss.NewStyle().Padding(1, 2).Foreground(text),
		Popup: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(1, 2),
		PopupTitle: lipgloss.NewStyle().Bold(true).Foreground(accent).MarginBottom(1),
		Section:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		Key:        lipgloss.NewStyle().Foreground(lipgloss.Color("220")),
		Desc:       lipgloss.NewStyle().Foreground(text),
		Scroll:     lipgloss.NewStyle().Foreground(faint).Italic(true),
		Backdrop:   lipgloss.NewStyle().Foreground(faint),
		titleFrom:  from,
		titleTo:    to,
	}
}

// GradientTitle renders s with a left-to-right color blend
func (s *Styles) GradientTitle(text string) string {
	runes := []rune(text)
	if len(runes) == 0 {
		return ""
	}
	from, err1 := colorful.Hex(s.titleFrom)
	to, err2 := colorful.Hex(s.titleTo)
	if err1 != nil || err2 != nil {
		return s.Title.Render(text)
	}

	var b strings.Builder
	for i, r := range runes {
		t := 0.0
		if len(runes) > 1 {
			t = float64(i) / float64(len(runes)-1)
		}
		c := from.BlendLuv(to, t).Clamped()
		b.WriteString(s.Title.Foreground(lipgloss.Color(c.Hex())).Render(string(r)))
	}
	return b.String()
}
