// Package tabswitcher implements a tabbed content switcher for Bubble Tea
// programs: a sliding indicator under the active tab, a two-phase timed
// transition between panels, keyboard and mouse navigation, and a compact
// scrolling strip for narrow viewports.
//
// A Model moves through Idle(active) -> Transitioning(from, to, direction)
// on SelectTab, commits the new active tab after the commit delay, and
// clears the transition decoration after the settle delay. At most one
// transition is in flight per instance.
package tabswitcher

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"tabswitch/internal/domain"
)

// Region is the tab stop that currently holds keyboard focus
type Region int

const (
	RegionTabs Region = iota
	RegionPanel
)

func (r Region) String() string {
	if r == RegionPanel {
		return "panel"
	}
	return "tabs"
}

// Model is a single tab switcher instance
type Model struct {
	id   string
	tabs []domain.TabDescriptor
	pos  map[string]int

	activeID      string
	transitioning bool
	target        string
	direction     domain.Direction
	seq           int

	compact  bool
	vpWidth  int
	viewport ViewportObserver
	release  func()

	focusedID string
	region    Region

	animation   domain.AnimationStyle
	orientation domain.Orientation
	overrides   StyleOverrides
	styles      Styles
	keys        KeyMap
	timing      Timing

	onTabChange    func(string)
	onLayoutChange func(bool, int)

	width   int
	height  int
	originX int
	originY int
	panel   viewport.Model

	gen    int
	closed bool
}

// New creates a switcher over tabs. An empty list yields an inert widget
// with no active tab.
func New(tabs []domain.TabDescriptor, opts Options) *Model {
	m := &Model{
		id:             uuid.NewString(),
		animation:      opts.AnimationStyle,
		orientation:    opts.Orientation,
		overrides:      opts.Styles,
		styles:         DefaultStyles(opts.Dark),
		keys:           DefaultKeyMap,
		timing:         opts.Timing.withDefaults(),
		onTabChange:    opts.OnTabChange,
		onLayoutChange: opts.OnLayoutChange,
		viewport:       opts.Viewport,
		panel:          viewport.New(0, 0),
	}
	if opts.KeyMap != nil {
		m.keys = *opts.KeyMap
	}

	m.setTabs(tabs)
	if _, ok := m.pos[opts.DefaultTab]; ok {
		m.activeID = opts.DefaultTab
	} else if len(m.tabs) > 0 {
		m.activeID = m.tabs[0].ID
	}
	m.focusedID = m.activeID

	// Mount: read the current width and follow resizes until Close
	if m.viewport != nil {
		m.vpWidth = m.viewport.Width()
		m.compact = IsCompact(m.vpWidth)
		m.release = m.viewport.OnResize(m.handleResize)
	}

	return m
}

// setTabs installs a deduplicated copy of tabs
func (m *Model) setTabs(tabs []domain.TabDescriptor) {
	m.tabs = make([]domain.TabDescriptor, 0, len(tabs))
	m.pos = make(map[string]int, len(tabs))
	for _, t := range tabs {
		if _, dup := m.pos[t.ID]; dup {
			log.Warn("tabswitcher: dropping duplicate tab id", "id", t.ID)
			continue
		}
		m.pos[t.ID] = len(m.tabs)
		m.tabs = append(m.tabs, t)
	}
}

// ID returns the instance id carried by this switcher's timer messages
func (m *Model) ID() string { return m.id }

// Tabs returns the current tab list
func (m *Model) Tabs() []domain.TabDescriptor {
	out := make([]domain.TabDescriptor, len(m.tabs))
	copy(out, m.tabs)
	return out
}

// ActiveID returns the active tab id, "" for an inert switcher
func (m *Model) ActiveID() string { return m.activeID }

// ActiveIndex returns the position of the active tab, -1 if none
func (m *Model) ActiveIndex() int {
	if i, ok := m.pos[m.activeID]; ok {
		return i
	}
	return -1
}

// Transitioning reports whether a transition is in flight
func (m *Model) Transitioning() bool { return m.transitioning }

// Direction of the current or most recent transition
func (m *Model) Direction() domain.Direction { return m.direction }

// Compact reports whether the compact strip layout is in effect
func (m *Model) Compact() bool { return m.compact }

// FocusedID returns the tab control holding keyboard focus
func (m *Model) FocusedID() string { return m.focusedID }

// FocusRegion returns which tab stop holds keyboard focus
func (m *Model) FocusRegion() Region { return m.region }

// AnimationStyle returns the configured transition style
func (m *Model) AnimationStyle() domain.AnimationStyle { return m.animation }

// Orientation returns the configured orientation
func (m *Model) Orientation() domain.Orientation { return m.orientation }

// KeyMap returns the active key bindings
func (m *Model) KeyMap() KeyMap { return m.keys }

// Closed reports whether the switcher has been torn down
func (m *Model) Closed() bool { return m.closed }

func (m *Model) inert() bool {
	return m.closed || len(m.tabs) == 0
}

// SelectTab starts a transition to tabID. It is a no-op when tabID is
// already active, unknown, or a transition is in flight.
func (m *Model) SelectTab(tabID string) tea.Cmd {
	if m.inert() || tabID == m.activeID || m.transitioning {
		return nil
	}
	target, ok := m.pos[tabID]
	if !ok {
		return nil
	}

	if target > m.ActiveIndex() {
		m.direction = domain.Forward
	} else {
		m.direction = domain.Backward
	}
	m.transitioning = true
	m.target = tabID
	m.seq++

	log.Debug("tabswitcher: transition started", "instance", m.id, "from", m.activeID, "to", tabID, "direction", m.direction)

	return after(m.timing.Commit, commitMsg{instance: m.id, gen: m.gen, seq: m.seq, target: tabID})
}

// HandleKeyNavigation maps a key press on the control of currentTabID to a
// tab change. Directional moves are relative to the active tab and wrap;
// focus follows the new selection after the focus delay.
func (m *Model) HandleKeyNavigation(msg tea.KeyMsg, currentTabID string) tea.Cmd {
	if m.inert() {
		return nil
	}

	n := len(m.tabs)
	current := m.ActiveIndex()
	next := current

	switch {
	case key.Matches(msg, m.keys.Prev):
		if current > 0 {
			next = current - 1
		} else {
			next = n - 1
		}
	case key.Matches(msg, m.keys.Next):
		if current < n-1 {
			next = current + 1
		} else {
			next = 0
		}
	case key.Matches(msg, m.keys.Home):
		next = 0
	case key.Matches(msg, m.keys.End):
		next = n - 1
	case key.Matches(msg, m.keys.Activate):
		return m.SelectTab(currentTabID)
	default:
		return nil
	}

	if next == current {
		return nil
	}
	return tea.Batch(
		m.SelectTab(m.tabs[next].ID),
		after(m.timing.Focus, focusMsg{instance: m.id, gen: m.gen}),
	)
}

// Update handles timer, key, mouse and size messages addressed to this switcher
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case commitMsg:
		return m.commit(msg)

	case settleMsg:
		if m.owns(msg.instance, msg.gen) && msg.seq == m.seq {
			m.transitioning = false
		}
		return nil

	case focusMsg:
		if m.owns(msg.instance, msg.gen) && !m.inert() {
			m.focusedID = m.activeID
			m.region = RegionTabs
		}
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}
	return nil
}

func (m *Model) owns(instance string, gen int) bool {
	return !m.closed && instance == m.id && gen == m.gen
}

func (m *Model) commit(msg commitMsg) tea.Cmd {
	if !m.owns(msg.instance, msg.gen) || msg.seq != m.seq || !m.transitioning || msg.target != m.target {
		return nil
	}
	m.target = ""

	// The list was replaced mid-flight and the target is gone
	if _, ok := m.pos[msg.target]; !ok {
		m.transitioning = false
		return nil
	}

	m.activeID = msg.target
	m.panel.GotoTop()
	log.Debug("tabswitcher: committed", "instance", m.id, "active", m.activeID)

	if m.onTabChange != nil {
		m.onTabChange(m.activeID)
	}
	return after(m.timing.Settle, settleMsg{instance: m.id, gen: m.gen, seq: m.seq})
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if m.inert() {
		return nil
	}

	switch {
	case key.Matches(msg, m.keys.FocusNext), key.Matches(msg, m.keys.FocusPrev):
		// Only two tab stops: the active control and the visible panel
		if m.region == RegionTabs {
			m.region = RegionPanel
		} else {
			m.region = RegionTabs
			m.focusedID = m.activeID
		}
		return nil
	}

	if m.region == RegionPanel {
		m.syncPanel()
		switch {
		case key.Matches(msg, m.keys.ScrollUp):
			m.panel.ScrollUp(1)
		case key.Matches(msg, m.keys.ScrollDown):
			m.panel.ScrollDown(1)
		case key.Matches(msg, m.keys.PageUp):
			m.panel.PageUp()
		case key.Matches(msg, m.keys.PageDown):
			m.panel.PageDown()
		}
		return nil
	}

	return m.HandleKeyNavigation(msg, m.focusedID)
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if m.inert() || msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return nil
	}
	idx := m.hitTest(msg.X-m.originX, msg.Y-m.originY)
	if idx < 0 {
		return nil
	}
	// A click focuses the control it lands on
	m.region = RegionTabs
	m.focusedID = m.tabs[idx].ID
	return m.SelectTab(m.tabs[idx].ID)
}

// handleResize is the viewport listener
func (m *Model) handleResize(width int) {
	if m.closed {
		return
	}
	m.vpWidth = width
	compact := IsCompact(width)
	if compact == m.compact {
		return
	}
	m.compact = compact
	log.Debug("tabswitcher: layout changed", "instance", m.id, "compact", compact, "width", width)
	if m.onLayoutChange != nil {
		m.onLayoutChange(compact, width)
	}
}

// SetTabs replaces the tab list. The active tab is kept when it survives;
// otherwise the first tab becomes active without a change notification.
func (m *Model) SetTabs(tabs []domain.TabDescriptor) {
	if m.closed {
		return
	}
	m.setTabs(tabs)

	if _, ok := m.pos[m.activeID]; !ok {
		m.activeID = ""
		if len(m.tabs) > 0 {
			m.activeID = m.tabs[0].ID
		}
		m.panel.GotoTop()
	}
	if _, ok := m.pos[m.focusedID]; !ok {
		m.focusedID = m.activeID
	}
	if len(m.tabs) == 0 {
		m.transitioning = false
		m.target = ""
	}
}

// SetAnimationStyle changes the transition style
func (m *Model) SetAnimationStyle(style domain.AnimationStyle) {
	m.animation = style
}

// SetOrientation changes the configured axis. Compact layout still wins.
func (m *Model) SetOrientation(o domain.Orientation) {
	m.orientation = o
}

// SetDark switches the built-in palette
func (m *Model) SetDark(dark bool) {
	m.styles = DefaultStyles(dark)
}

// SetStyleOverrides replaces the container/tab/content overrides
func (m *Model) SetStyleOverrides(o StyleOverrides) {
	m.overrides = o
}

// SetSize sets the outer size of the widget in cells
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// SetOrigin records where the widget is drawn so mouse clicks can be mapped
func (m *Model) SetOrigin(x, y int) {
	m.originX = x
	m.originY = y
}

// Close tears the switcher down: the resize listener is released and any
// pending timer messages are ignored.
func (m *Model) Close() {
	if m.closed {
		return
	}
	if m.release != nil {
		m.release()
		m.release = nil
	}
	m.gen++
	m.closed = true
	m.transitioning = false
	m.target = ""
}
