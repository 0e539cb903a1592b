package tabswitcher

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	"tabswitch/internal/domain"
)

// Fixed transition choreography. The commit delay lets outgoing content
// animate out before the swap; the settle delay lets incoming content come
// to rest. Focus follows selection once both have elapsed.
const (
	DefaultCommitDelay = 150 * time.Millisecond
	DefaultSettleDelay = 50 * time.Millisecond
	DefaultFocusDelay  = 200 * time.Millisecond
)

// Timing overrides the transition delays. Zero fields use the defaults.
type Timing struct {
	Commit time.Duration
	Settle time.Duration
	Focus  time.Duration
}

func (t Timing) withDefaults() Timing {
	if t.Commit <= 0 {
		t.Commit = DefaultCommitDelay
	}
	if t.Settle <= 0 {
		t.Settle = DefaultSettleDelay
	}
	if t.Focus <= 0 {
		t.Focus = DefaultFocusDelay
	}
	return t
}

// StyleOverrides are layered over the built-in styles of the container, each
// tab control and the content panel. Unset properties contribute nothing.
type StyleOverrides struct {
	Container lipgloss.Style
	Tab       lipgloss.Style
	Content   lipgloss.Style
}

// Options configures a tab switcher
type Options struct {
	// DefaultTab is activated initially; falls back to the first tab when
	// empty or unknown.
	DefaultTab     string
	AnimationStyle domain.AnimationStyle
	Orientation    domain.Orientation
	Styles         StyleOverrides
	Dark           bool

	// OnTabChange is called once per committed tab change with the new id.
	OnTabChange func(tabID string)
	// OnLayoutChange is called when the viewport crosses the compact breakpoint.
	OnLayoutChange func(compact bool, width int)

	Viewport ViewportObserver
	KeyMap   *KeyMap
	Timing   Timing
}
