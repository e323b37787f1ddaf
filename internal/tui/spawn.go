package tui

import (
	"os/exec"

	tea "github.com/charmbracelet/bubbletea"
)

// spawn runs `command [arg]` in the current directory as a blocking child
// process. bubbletea restores the terminal to cooperative mode before the
// child starts and re-enters the raw alternate-screen session once it has
// exited, by any means. A failure to start surfaces as a spawnFinishedMsg
// error, logged and otherwise invisible, matching the contract that a
// failed fork leaves the session untouched.
func (m *Model) spawn(command, arg string) tea.Cmd {
	if command == "" {
		return nil
	}

	var c *exec.Cmd
	if arg != "" {
		c = exec.Command(command, arg)
	} else {
		c = exec.Command(command)
	}
	c.Dir = m.path

	return tea.ExecProcess(c, func(err error) tea.Msg {
		return spawnFinishedMsg{err: err}
	})
}
