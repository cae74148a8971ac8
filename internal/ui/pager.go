package ui

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

// pagerClosedMsg contains the result of an event log pager run
type pagerClosedMsg struct {
	err error
}

// openEventLog shows the diagnostic event log in an ov pager, releasing the
// terminal for the pager's lifetime and restoring it afterwards.
func (m *Model) openEventLog() tea.Cmd {
	content := strings.Join(m.events, "\n")
	if content == "" {
		content = "no events yet"
	}
	prog := m.program

	return func() tea.Msg {
		if prog == nil {
			return pagerClosedMsg{}
		}
		if err := prog.ReleaseTerminal(); err != nil {
			return pagerClosedMsg{err: err}
		}
		defer func() {
			// give ov a moment to fully exit before taking the terminal back
			time.Sleep(100 * time.Millisecond)
			_ = prog.RestoreTerminal()
		}()

		root, err := oviewer.NewRoot(strings.NewReader(content))
		if err != nil {
			return pagerClosedMsg{err: err}
		}

		cfg := oviewer.NewConfig()
		cfg.IsWriteOnExit = false
		cfg.IsWriteOriginal = false
		root.SetConfig(cfg)

		return pagerClosedMsg{err: root.Run()}
	}
}
