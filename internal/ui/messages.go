package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// frameMsg is one granted animation frame. The pager re-requests it
// only while the animator or the scrollbar spring still wants frames.
type frameMsg time.Time

func frameCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
