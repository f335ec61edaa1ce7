package ui

import (
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// pagerClosedMsg reports that the pager returned control
type pagerClosedMsg struct {
	err error
}

// pagerCommand shows text in ov. It implements tea.ExecCommand so Bubble
// Tea releases the terminal while ov runs.
type pagerCommand struct {
	content string
}

func newPagerCommand(content string) *pagerCommand {
	return &pagerCommand{content: content}
}

func (p *pagerCommand) Run() error {
	root, err := oviewer.NewRoot(strings.NewReader(p.content))
	if err != nil {
		return err
	}

	// Don't write the document back to the terminal on exit
	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}

// ov opens the terminal itself
func (p *pagerCommand) SetStdin(io.Reader)  {}
func (p *pagerCommand) SetStdout(io.Writer) {}
func (p *pagerCommand) SetStderr(io.Writer) {}

// showInPager hands content to ov and resumes the UI afterwards
func showInPager(content string) tea.Cmd {
	return tea.Exec(newPagerCommand(content), func(err error) tea.Msg {
		return pagerClosedMsg{err: err}
	})
}
