package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tabswitch/internal/ui/input/types"
)

// NormalMode maps page controls to actions. Keys it leaves unconsumed are
// forwarded to the tab switcher.
type NormalMode struct {
	keys types.KeyMap
}

func NewNormalMode(keys types.KeyMap) *NormalMode {
	return &NormalMode{keys: keys}
}

func (m *NormalMode) Name() string {
	return "normal"
}

func (m *NormalMode) Enter(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *NormalMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true

	case key.Matches(msg, m.keys.Quit):
		return []types.Action{types.QuitAction{Force: false}}, true

	case key.Matches(msg, m.keys.Theme):
		return []types.Action{types.ToggleThemeAction{}}, true

	case key.Matches(msg, m.keys.Animation):
		return []types.Action{types.CycleAnimationAction{}}, true

	case key.Matches(msg, m.keys.Orientation):
		return []types.Action{types.ToggleOrientationAction{}}, true

	case key.Matches(msg, m.keys.Reload):
		// Only meaningful with a manifest; otherwise let it through
		if ctx.HasManifest() {
			return []types.Action{types.ReloadContentAction{}}, true
		}
		return nil, false

	case key.Matches(msg, m.keys.Help):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeHelp}}, true

	case key.Matches(msg, m.keys.Pager):
		return []types.Action{types.ChangeModeAction{Mode: types.ModePager}}, true

	case key.Matches(msg, m.keys.OvPager):
		return []types.Action{types.OpenOvPagerAction{}}, true
	}

	return nil, false
}
