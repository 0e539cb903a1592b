package modes

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"tabswitch/internal/ui/input/types"
)

// PagerMode shows the help text full screen. Keys other than close are
// left for the pager viewport.
type PagerMode struct {
	keys types.KeyMap
}

func NewPagerMode(keys types.KeyMap) *PagerMode {
	return &PagerMode{keys: keys}
}

func (m *PagerMode) Name() string {
	return "pager"
}

func (m *PagerMode) Enter(ctx types.Context) []types.Action {
	return []types.Action{types.ScrollAction{Direction: "home"}}
}

func (m *PagerMode) Exit(ctx types.Context) []types.Action {
	return nil
}

func (m *PagerMode) HandleKey(msg tea.KeyMsg, ctx types.Context) ([]types.Action, bool) {
	switch {
	case key.Matches(msg, m.keys.ForceQuit):
		return []types.Action{types.QuitAction{Force: true}}, true
	case msg.String() == "esc", msg.String() == "q", key.Matches(msg, m.keys.Pager):
		return []types.Action{types.ChangeModeAction{Mode: types.ModeNormal}}, true
	case msg.String() == "g", msg.String() == "home":
		return []types.Action{types.ScrollAction{Direction: "home"}}, true
	case msg.String() == "G", msg.String() == "end":
		return []types.Action{types.ScrollAction{Direction: "end"}}, true
	}
	return nil, false
}
