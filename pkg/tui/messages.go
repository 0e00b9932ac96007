package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// NotifyLevel ranks a transient notification
type NotifyLevel int

const (
	NotifyInfo NotifyLevel = iota
	NotifyWarning
	NotifyError
)

// NotifyMsg asks the app to show a transient notification in the status bar
type NotifyMsg struct {
	Level NotifyLevel
	Text  string
}

// StatusMsg is a plain informational notification
type StatusMsg string

// clearStatusMsg expires the notification with the same sequence number
type clearStatusMsg struct {
	seq int
}

// statusResetMsg clears the validity flag of one input after blur
type statusResetMsg struct {
	id int
}

// documentSavedMsg reports the outcome of a save started at revision
type documentSavedMsg struct {
	revision int
	path     string
	err      error
}

func notify(level NotifyLevel, text string) tea.Cmd {
	return func() tea.Msg {
		return NotifyMsg{Level: level, Text: text}
	}
}

func notifyWarning(err error) tea.Cmd {
	return notify(NotifyWarning, err.Error())
}

func statusCmd(text string) tea.Cmd {
	return func() tea.Msg {
		return StatusMsg(text)
	}
}
