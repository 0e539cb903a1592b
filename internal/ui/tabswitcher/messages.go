package tabswitcher

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// commitMsg swaps the active tab once outgoing content has animated out
type commitMsg struct {
	instance string
	gen      int
	seq      int
	target   string
}

// settleMsg clears the transition decoration
type settleMsg struct {
	instance string
	gen      int
	seq      int
}

// focusMsg moves keyboard focus onto the active tab control
type focusMsg struct {
	instance string
	gen      int
}

// after delivers msg once d has elapsed
func after(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return msg
	})
}
