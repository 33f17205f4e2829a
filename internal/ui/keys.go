package ui

import tea "github.com/charmbracelet/bubbletea"

func isQuit(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		return true
	}
	return false
}

func helpText() string {
	return "j/k scroll  h/l pan  space/b page  g/G top/end  : goto line  q quit"
}
