package input

import (
	"tabswitch/internal/ui/tabswitcher"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Switcher *tabswitcher.Model
	Manifest string
}

// HasManifest reports whether tabs were loaded from a manifest file
func (c *ModelContext) HasManifest() bool {
	return c.Manifest != ""
}

// PanelFocused reports whether the switcher's panel holds focus
func (c *ModelContext) PanelFocused() bool {
	return c.Switcher != nil && c.Switcher.FocusRegion() == tabswitcher.RegionPanel
}

// ActiveTab returns the switcher's active tab id
func (c *ModelContext) ActiveTab() string {
	if c.Switcher == nil {
		return ""
	}
	return c.Switcher.ActiveID()
}
