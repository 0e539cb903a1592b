package types

// Mode transition actions
type ChangeModeAction struct {
	Mode Mode
}

func (a ChangeModeAction) Type() string { return "change_mode" }

// Page controls
type ToggleThemeAction struct{}

func (a ToggleThemeAction) Type() string { return "toggle_theme" }

type CycleAnimationAction struct{}

func (a CycleAnimationAction) Type() string { return "cycle_animation" }

type ToggleOrientationAction struct{}

func (a ToggleOrientationAction) Type() string { return "toggle_orientation" }

type ReloadContentAction struct{}

func (a ReloadContentAction) Type() string { return "reload_content" }

// OpenOvPagerAction hands the help text to ov
type OpenOvPagerAction struct{}

func (a OpenOvPagerAction) Type() string { return "open_ov_pager" }

// ScrollAction scrolls the help popup or pager
type ScrollAction struct {
	Direction string // "up", "down", "pageup", "pagedown", "home", "end"
}

func (a ScrollAction) Type() string { return "scroll" }

type QuitAction struct {
	Force bool // true for Ctrl+C, false for 'q'
}

func (a QuitAction) Type() string { return "quit" }
