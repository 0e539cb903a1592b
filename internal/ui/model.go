// Package ui is the demo page: a header with the page controls, one tab
// switcher, and a footer with the status line and key hints.
package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"tabswitch/internal/config"
	"tabswitch/internal/content"
	"tabswitch/internal/domain"
	"tabswitch/internal/eventbus"
	"tabswitch/internal/ui/input"
	inputtypes "tabswitch/internal/ui/input/types"
	"tabswitch/internal/ui/tabswitcher"
	"tabswitch/internal/ui/views"
)

// Model represents the UI state
type Model struct {
	bus       eventbus.EventBus
	config    *config.Config
	configSvc config.ConfigService // nil disables saving
	manifest  string

	switcher *tabswitcher.Model
	viewport *tabswitcher.TerminalViewport

	// Handlers
	inputHandler *input.Handler
	renderer     *views.Renderer
	helpText     *HelpRenderer

	help  help.Model
	pager viewport.Model

	theme      domain.Theme // resolved, never auto
	width      int
	height     int
	helpScroll int
	measured   bool // terminal size known
	status     string
	statusKind views.StatusKind
	quitting   bool
}

// NewModel creates the page around tabs. dark is the detected terminal
// background, used when the configured theme is auto.
func NewModel(bus eventbus.EventBus, cfg *config.Config, tabs []domain.TabDescriptor, dark bool) *Model {
	theme := cfg.Theme()
	if theme == domain.ThemeAuto {
		theme = domain.ThemeLight
		if dark {
			theme = domain.ThemeDark
		}
	}

	m := &Model{
		bus:          bus,
		config:       cfg,
		theme:        theme,
		help:         help.New(),
		pager:        viewport.New(0, 0),
		inputHandler: input.New(),
		renderer:     views.NewRenderer(theme == domain.ThemeDark),
		viewport:     tabswitcher.NewTerminalViewport(cfg.UISettings.CellWidth),
	}
	lipgloss.SetHasDarkBackground(theme == domain.ThemeDark)

	m.switcher = tabswitcher.New(tabs, tabswitcher.Options{
		DefaultTab:     cfg.UISettings.DefaultTab,
		AnimationStyle: cfg.AnimationStyle(),
		Orientation:    cfg.Orientation(),
		Dark:           theme == domain.ThemeDark,
		OnTabChange:    m.onTabChange,
		OnLayoutChange: m.onLayoutChange,
		Viewport:       m.viewport,
	})
	m.helpText = NewHelpRenderer(m.inputHandler.KeyMap(), m.switcher.KeyMap())
	return m
}

// SetConfigService enables saving page settings on every change
func (m *Model) SetConfigService(svc config.ConfigService) {
	m.configSvc = svc
}

// SetManifest records the manifest the tabs came from, enabling reloads
func (m *Model) SetManifest(path string) {
	m.manifest = path
}

// Switcher exposes the hosted tab switcher
func (m *Model) Switcher() *tabswitcher.Model {
	return m.switcher
}

// Theme returns the resolved page theme
func (m *Model) Theme() domain.Theme {
	return m.theme
}

// Mode returns the current input mode
func (m *Model) Mode() inputtypes.Mode {
	return m.inputHandler.CurrentMode()
}

// Status returns the status line text
func (m *Model) Status() string {
	return m.status
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(views.Title)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		ctx := &input.ModelContext{Switcher: m.switcher, Manifest: m.manifest}
		actions, consumed := m.inputHandler.HandleKey(msg, ctx)
		if consumed {
			var cmds []tea.Cmd
			for _, action := range actions {
				cmds = append(cmds, m.processAction(action))
			}
			return m, tea.Batch(cmds...)
		}
		return m, m.forward(msg)

	case tea.MouseMsg:
		return m, m.forward(msg)

	case EventMsg:
		return m, m.handleEvent(msg.Event)

	case contentLoadedMsg:
		if msg.err != nil {
			log.Error("manifest reload failed", "path", msg.source, "error", msg.err)
			m.setStatus(fmt.Sprintf("Reload failed: %v", msg.err), views.StatusError)
			return m, nil
		}
		m.applyTabs(msg.tabs, msg.source)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Error("help pager failed", "error", msg.err)
			m.setStatus(fmt.Sprintf("Help pager failed: %v", msg.err), views.StatusError)
		}
		return m, nil

	case configSavedMsg:
		if msg.err != nil {
			log.Error("failed to save config", "error", msg.err)
			m.setStatus(fmt.Sprintf("Config not saved: %v", msg.err), views.StatusError)
		}
		return m, nil
	}

	// Switcher timers
	return m, m.switcher.Update(msg)
}

// forward hands keys and mouse events the page did not claim to whatever
// owns the screen in the current mode
func (m *Model) forward(msg tea.Msg) tea.Cmd {
	switch m.inputHandler.CurrentMode() {
	case inputtypes.ModePager:
		var cmd tea.Cmd
		m.pager, cmd = m.pager.Update(msg)
		return cmd
	case inputtypes.ModeNormal:
		return m.switcher.Update(msg)
	}
	return nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width

	x, y, w, h := m.renderer.SwitcherArea(width, height)
	m.switcher.SetSize(w, h)
	m.switcher.SetOrigin(x, y)
	// Fires the compact breakpoint listener when crossed
	m.viewport.Resize(width)
	m.measured = true

	m.pager.Width = width
	m.pager.Height = max(height-2, 1)
}

func (m *Model) processAction(action inputtypes.Action) tea.Cmd {
	switch a := action.(type) {
	case inputtypes.QuitAction:
		m.quitting = true
		m.switcher.Close()
		return tea.Quit

	case inputtypes.ToggleThemeAction:
		m.theme = m.theme.Toggle()
		m.applyTheme()
		m.publish(domain.ThemeChangedEvent{Theme: m.theme})
		m.setStatus("Theme: "+m.theme.String(), views.StatusInfo)
		return m.saveSettings()

	case inputtypes.CycleAnimationAction:
		style := m.switcher.AnimationStyle().Next()
		m.switcher.SetAnimationStyle(style)
		m.publish(domain.AnimationStyleChangedEvent{Style: style})
		m.setStatus("Animation: "+style.String(), views.StatusInfo)
		return m.saveSettings()

	case inputtypes.ToggleOrientationAction:
		o := domain.Vertical
		if m.switcher.Orientation() == domain.Vertical {
			o = domain.Horizontal
		}
		m.switcher.SetOrientation(o)
		m.publish(domain.OrientationChangedEvent{Orientation: o})
		status := "Orientation: " + o.String()
		if m.switcher.Compact() {
			status += " (compact layout stays horizontal)"
		}
		m.setStatus(status, views.StatusInfo)
		return m.saveSettings()

	case inputtypes.ReloadContentAction:
		m.setStatus("Reloading tabs…", views.StatusInfo)
		return loadManifest(m.manifest)

	case inputtypes.ChangeModeAction:
		switch a.Mode {
		case inputtypes.ModeHelp:
			m.helpScroll = 0
		case inputtypes.ModePager:
			m.pager.SetContent(m.helpText.Content(m.renderer.Styles()))
			m.pager.GotoTop()
		}
		return nil

	case inputtypes.OpenOvPagerAction:
		return m.openOvPager()

	case inputtypes.ScrollAction:
		m.scroll(a.Direction)
		return nil
	}
	return nil
}

func (m *Model) scroll(direction string) {
	if m.inputHandler.CurrentMode() == inputtypes.ModePager {
		switch direction {
		case "home":
			m.pager.GotoTop()
		case "end":
			m.pager.GotoBottom()
		}
		return
	}

	maxOffset := m.helpText.MaxOffset(m.renderer.Styles(), m.height)
	page := max(m.height/2, 1)
	switch direction {
	case "up":
		m.helpScroll--
	case "down":
		m.helpScroll++
	case "pageup":
		m.helpScroll -= page
	case "pagedown":
		m.helpScroll += page
	case "home":
		m.helpScroll = 0
	case "end":
		m.helpScroll = maxOffset
	}
	m.helpScroll = min(max(m.helpScroll, 0), maxOffset)
}

func (m *Model) applyTheme() {
	dark := m.theme == domain.ThemeDark
	lipgloss.SetHasDarkBackground(dark)
	m.renderer.SetDark(dark)
	m.switcher.SetDark(dark)
}

func (m *Model) handleEvent(event eventbus.DomainEvent) tea.Cmd {
	switch e := event.(type) {
	case domain.TabChangedEvent:
		if e.InstanceID != m.switcher.ID() {
			return nil
		}
		label := e.TabID
		for _, t := range m.switcher.Tabs() {
			if t.ID == e.TabID {
				label = t.Label
				break
			}
		}
		m.setStatus(views.StatusText(label, e.Direction), views.StatusInfo)

	case domain.LayoutChangedEvent:
		if e.InstanceID != m.switcher.ID() {
			return nil
		}
		if e.Initial {
			return nil
		}
		if e.Compact {
			m.setStatus("Compact layout", views.StatusInfo)
		} else {
			m.setStatus("Full layout", views.StatusInfo)
		}

	case domain.ContentReloadedEvent:
		m.applyTabs(e.Tabs, e.Source)

	case domain.ConfigSavedEvent:
		m.setStatus("Saved settings to "+e.Path, views.StatusSuccess)

	case domain.ErrorEvent:
		text := e.Message
		if e.Err != nil {
			text = fmt.Sprintf("%s: %v", e.Message, e.Err)
		}
		m.setStatus(text, views.StatusError)
	}
	return nil
}

func (m *Model) applyTabs(tabs []domain.TabDescriptor, source string) {
	m.switcher.SetTabs(tabs)
	log.Info("tabs replaced", "source", source, "count", len(tabs), "active", m.switcher.ActiveID())
	m.setStatus(fmt.Sprintf("Loaded %d tabs", len(m.switcher.Tabs())), views.StatusSuccess)
}

// onTabChange is the switcher's commit callback
func (m *Model) onTabChange(tabID string) {
	log.Info("tab changed", "tab", tabID)
	m.publish(domain.TabChangedEvent{
		InstanceID: m.switcher.ID(),
		TabID:      tabID,
		Direction:  m.switcher.Direction(),
	})
}

func (m *Model) onLayoutChange(compact bool, width int) {
	if m.switcher == nil {
		return
	}
	log.Debug("layout changed", "compact", compact, "width", width)
	m.publish(domain.LayoutChangedEvent{
		InstanceID: m.switcher.ID(),
		Compact:    compact,
		Width:      width,
		Initial:    !m.measured,
	})
}

func (m *Model) publish(e domain.DomainEvent) {
	if m.bus != nil {
		m.bus.Publish(e)
	}
}

func (m *Model) setStatus(text string, kind views.StatusKind) {
	m.status = text
	m.statusKind = kind
}

// saveSettings persists the page controls when saving is enabled
func (m *Model) saveSettings() tea.Cmd {
	m.config.UISettings.Animation = m.switcher.AnimationStyle().String()
	m.config.UISettings.Orientation = m.switcher.Orientation().String()
	m.config.UISettings.Theme = m.theme.String()
	if m.configSvc == nil {
		return nil
	}

	snapshot := *m.config
	svc := m.configSvc
	return func() tea.Msg {
		return configSavedMsg{err: svc.Save(&snapshot)}
	}
}

func loadManifest(path string) tea.Cmd {
	return func() tea.Msg {
		tabs, err := content.LoadManifest(path)
		return contentLoadedMsg{source: path, tabs: tabs, err: err}
	}
}

// View renders the page
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	styles := m.renderer.Styles()
	if m.inputHandler.CurrentMode() == inputtypes.ModePager {
		header := styles.PopupTitle.UnsetMarginBottom().Render("Tab Switcher Help")
		footer := styles.Scroll.Render(fmt.Sprintf("%3.f%%  q/esc to close", m.pager.ScrollPercent()*100))
		return header + "\n" + m.pager.View() + "\n" + footer
	}

	source := "built-in"
	if m.manifest != "" {
		source = m.manifest
	}
	page := m.renderer.Render(views.ViewState{
		Width:       m.width,
		Height:      m.height,
		Animation:   m.switcher.AnimationStyle(),
		Orientation: m.switcher.Orientation(),
		Theme:       m.theme,
		Compact:     m.switcher.Compact(),
		Source:      source,
		Switcher:    m.switcher.View(),
		Status:      m.status,
		StatusKind:  m.statusKind,
		HelpModel:   m.help,
		HelpKeys:    m.shortHelp(),
	})

	if m.inputHandler.CurrentMode() == inputtypes.ModeHelp {
		popup := m.helpText.Render(styles, m.height, m.helpScroll)
		return m.renderer.Popup().RenderPopupOverlay(page, popup, m.height, m.width)
	}
	return page
}

func (m *Model) shortHelp() []key.Binding {
	page := m.inputHandler.KeyMap()
	tabs := m.switcher.KeyMap()
	return []key.Binding{tabs.Prev, tabs.Next, tabs.FocusNext, page.Theme, page.Animation, page.Orientation, page.Help, page.Quit}
}
