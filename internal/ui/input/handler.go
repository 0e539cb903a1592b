// Package input routes key presses through the current mode and turns them
// into actions for the page model.
package input

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"tabswitch/internal/ui/input/modes"
	"tabswitch/internal/ui/input/types"
)

type Handler struct {
	currentMode types.Mode
	modes       map[types.Mode]types.ModeHandler
	keys        types.KeyMap
}

func New() *Handler {
	return NewWithKeys(types.DefaultKeyMap())
}

func NewWithKeys(keys types.KeyMap) *Handler {
	h := &Handler{
		currentMode: types.ModeNormal,
		modes:       make(map[types.Mode]types.ModeHandler),
		keys:        keys,
	}

	// Register all mode handlers
	h.modes[types.ModeNormal] = modes.NewNormalMode(keys)
	h.modes[types.ModeHelp] = modes.NewHelpMode(keys)
	h.modes[types.ModePager] = modes.NewPagerMode(keys)

	return h
}

// HandleKey runs msg through the current mode. Mode changes are applied
// here, with the Exit and Enter actions of the modes involved spliced into
// the returned list. consumed is false when the key should fall through.
func (h *Handler) HandleKey(msg tea.KeyMsg, ctx types.Context) (actions []types.Action, consumed bool) {
	handler := h.modes[h.currentMode]
	if handler == nil {
		return nil, false
	}

	raw, consumed := handler.HandleKey(msg, ctx)
	if !consumed {
		return nil, false
	}

	for _, action := range raw {
		change, ok := action.(types.ChangeModeAction)
		if !ok {
			actions = append(actions, action)
			continue
		}
		actions = append(actions, h.switchMode(change.Mode, ctx)...)
		actions = append(actions, change)
	}
	return actions, true
}

func (h *Handler) switchMode(mode types.Mode, ctx types.Context) []types.Action {
	var out []types.Action
	if cur := h.modes[h.currentMode]; cur != nil {
		out = append(out, cur.Exit(ctx)...)
	}
	log.Debug("input mode change", "from", h.currentMode, "to", mode)
	h.currentMode = mode
	if next := h.modes[h.currentMode]; next != nil {
		out = append(out, next.Enter(ctx)...)
	}
	return out
}

// CurrentMode returns the active mode
func (h *Handler) CurrentMode() types.Mode {
	if h == nil {
		return types.ModeNormal
	}
	return h.currentMode
}

// ModeName returns the display name of the active mode
func (h *Handler) ModeName() string {
	if m := h.modes[h.currentMode]; m != nil {
		return m.Name()
	}
	return ""
}

// KeyMap returns the page bindings
func (h *Handler) KeyMap() types.KeyMap {
	return h.keys
}

func (h *Handler) RegisterMode(mode types.Mode, handler types.ModeHandler) {
	h.modes[mode] = handler
}

// Reset returns to normal mode without running Exit hooks
func (h *Handler) Reset() {
	h.currentMode = types.ModeNormal
}
