package domain

import "strings"

// Renderer produces the body of a tab panel for a given content width
type Renderer interface {
	Render(width int) string
}

// RenderFunc adapts a plain function to Renderer
type RenderFunc func(width int) string

// Render calls f(width)
func (f RenderFunc) Render(width int) string { return f(width) }

// Text is a static panel body
type Text string

// Render returns the text unchanged
func (t Text) Render(int) string { return string(t) }

// TabDescriptor is the identity, label and content of one selectable section
type TabDescriptor struct {
	ID      string
	Label   string
	Icon    Icon
	Content Renderer
}

// Body renders the tab content, tolerating a nil renderer
func (t TabDescriptor) Body(width int) string {
	if t.Content == nil {
		return ""
	}
	return t.Content.Render(width)
}

// Icon is one of the fixed set of tab glyphs
type Icon int

const (
	IconNone Icon = iota
	IconHome
	IconBarChart
	IconSettings
	IconUser
)

// ParseIcon maps a symbolic icon name to an Icon. Unknown names map to IconNone.
func ParseIcon(name string) Icon {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "home":
		return IconHome
	case "bar-chart":
		return IconBarChart
	case "settings":
		return IconSettings
	case "user":
		return IconUser
	default:
		return IconNone
	}
}

func (i Icon) String() string {
	switch i {
	case IconHome:
		return "home"
	case IconBarChart:
		return "bar-chart"
	case IconSettings:
		return "settings"
	case IconUser:
		return "user"
	default:
		return ""
	}
}

// AnimationStyle selects how panel content moves during a transition
type AnimationStyle int

const (
	AnimationSlide AnimationStyle = iota
	AnimationFade
	AnimationScale
)

// AnimationStyles lists the styles in cycling order
var AnimationStyles = []AnimationStyle{AnimationSlide, AnimationFade, AnimationScale}

// ParseAnimationStyle parses "slide", "fade" or "scale"
func ParseAnimationStyle(s string) (AnimationStyle, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "slide":
		return AnimationSlide, true
	case "fade":
		return AnimationFade, true
	case "scale":
		return AnimationScale, true
	default:
		return AnimationSlide, false
	}
}

func (a AnimationStyle) String() string {
	switch a {
	case AnimationFade:
		return "fade"
	case AnimationScale:
		return "scale"
	default:
		return "slide"
	}
}

// Next returns the following style, wrapping around
func (a AnimationStyle) Next() AnimationStyle {
	for i, s := range AnimationStyles {
		if s == a {
			return AnimationStyles[(i+1)%len(AnimationStyles)]
		}
	}
	return AnimationSlide
}

// Orientation is the configured axis of the tab list
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

// ParseOrientation parses "horizontal" or "vertical"
func ParseOrientation(s string) (Orientation, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "horizontal":
		return Horizontal, true
	case "vertical":
		return Vertical, true
	default:
		return Horizontal, false
	}
}

func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Direction of a tab transition relative to list order
type Direction int

const (
	Forward Direction = iota
	Backward
)

func (d Direction) String() string {
	if d == Backward {
		return "backward"
	}
	return "forward"
}

// Theme is the page palette
type Theme int

const (
	ThemeAuto Theme = iota
	ThemeLight
	ThemeDark
)

// ParseTheme parses "auto", "light" or "dark"
func ParseTheme(s string) (Theme, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return ThemeAuto, true
	case "light":
		return ThemeLight, true
	case "dark":
		return ThemeDark, true
	default:
		return ThemeAuto, false
	}
}

func (t Theme) String() string {
	switch t {
	case ThemeLight:
		return "light"
	case ThemeDark:
		return "dark"
	default:
		return "auto"
	}
}

// Toggle flips between light and dark. Auto toggles as light.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}
