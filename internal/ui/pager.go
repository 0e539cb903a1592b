package ui

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// ovPager shows text in ov. It is run through tea.Exec, which releases the
// terminal before Run and restores it afterwards.
type ovPager struct {
	content string
}

// ov opens the controlling terminal itself
func (p *ovPager) SetStdin(io.Reader)  {}
func (p *ovPager) SetStdout(io.Writer) {}
func (p *ovPager) SetStderr(io.Writer) {}

// Run blocks until the user leaves ov
func (p *ovPager) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return fmt.Errorf("failed to open pager: %w", err)
	}

	// Leave nothing behind on the screen the program restores
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

var _ tea.ExecCommand = (*ovPager)(nil)

// openOvPager hands the help text to ov, suspending the program meanwhile
func (m *Model) openOvPager() tea.Cmd {
	pager := &ovPager{content: m.helpText.Content(m.renderer.Styles())}
	return tea.Exec(pager, func(err error) tea.Msg {
		return helpPagerMsg{err: err}
	})
}
