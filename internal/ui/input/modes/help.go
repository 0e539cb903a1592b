package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tabswitch/internal/ui/input/types"
)

// HelpMode is active while the help popup is open. It swallows every key.
type HelpMode struct {
	keys types.KeyMap
}

func NewHelpMode(keys types.KeyMap) *HelpMode {
	return &HelpMode{keys: keys}
}

func (m *HelpMode) Name() string {
	return "help"
}

func (m *HelpMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.ScrollAction{Direction: "home"}}
}

func (m *HelpMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *HelpMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return []types.Action{types.QuitAction{Force: true}}, true
	}
	if key.Matches(msg, m.keys.Close) {
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	}

	switch msg.String() {
	case "up", "k":
		return []types.Action{types.ScrollAction{Direction: "up"}}, true
	case "down", "j":
		return []types.Action{types.ScrollAction{Direction: "down"}}, true
	case "pgup":
		return []types.Action{types.ScrollAction{Direction: "pageup"}}, true
	case "pgdown":
		return []types.Action{types.ScrollAction{Direction: "pagedown"}}, true
	case "home", "g":
		return []types.Action{types.ScrollAction{Direction: "home"}}, true
	case "end", "G":
		return []types.Action{types.ScrollAction{Direction: "end"}}, true
	}
	return nil, true
}
