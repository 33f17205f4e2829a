package ui

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/olivier-w/glide/internal/doc"
)

// BrowserResult holds the outcome of the file browser.
type BrowserResult struct {
	Path      string
	Cancelled bool
}

type docItem struct {
	name string
	ext  string
}

func (i docItem) Title() string { return i.name }
func (i docItem) Description() string {
	if i.ext == "" {
		return "file"
	}
	return i.ext
}
func (i docItem) FilterValue() string { return i.name }

type pathItem struct{}

func (i pathItem) Title() string       { return "Open path..." }
func (i pathItem) Description() string { return "enter a file path" }
func (i pathItem) FilterValue() string { return "path" }

// BrowserModel is the Bubbletea model for the file browser screen.
type BrowserModel struct {
	list     list.Model
	input    textinput.Model
	pathMode bool
	result   *BrowserResult
	err      error
}

// NewBrowser creates a file browser over the text files in the current
// directory.
func NewBrowser() BrowserModel {
	entries, err := os.ReadDir(".")
	if err != nil {
		return BrowserModel{err: fmt.Errorf("cannot read directory: %w", err)}
	}

	items := []list.Item{pathItem{}}
	for _, e := range entries {
		if e.IsDir() || strings.HasPrefix(e.Name(), ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		if !doc.IsSupportedExt(ext) {
			continue
		}
		items = append(items, docItem{name: e.Name(), ext: ext})
	}

	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.
		Foreground(lipgloss.AdaptiveColor{Light: "#333333", Dark: "#FFFFFF"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.
		Foreground(lipgloss.AdaptiveColor{Light: "#666666", Dark: "#888888"}).
		BorderLeftForeground(lipgloss.AdaptiveColor{Light: "#555555", Dark: "#AAAAAA"})

	l := list.New(items, delegate, 80, 20)
	l.Title = "glide"
	l.SetShowStatusBar(true)
	l.SetFilteringEnabled(true)
	l.Styles.Title = headerStyle

	ti := textinput.New()
	ti.Placeholder = "path/to/file.txt"
	ti.CharLimit = 1024
	ti.Width = 60

	return BrowserModel{list: l, input: ti}
}

// HasError returns true if the browser could not be initialized.
func (m BrowserModel) HasError() bool {
	return m.err != nil
}

// Error returns the initialization error, if any.
func (m BrowserModel) Error() error {
	return m.err
}

// Result returns the browser result after the program finishes.
func (m BrowserModel) Result() BrowserResult {
	if m.result != nil {
		return *m.result
	}
	return BrowserResult{Cancelled: true}
}

func (m BrowserModel) Init() tea.Cmd {
	return tea.SetWindowTitle("glide")
}

func (m BrowserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.pathMode {
		return m.updatePathInput(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// Don't intercept keys when filtering
		if m.list.FilterState() == list.Filtering {
			break
		}

		switch msg.String() {
		case "enter":
			switch item := m.list.SelectedItem().(type) {
			case pathItem:
				m.pathMode = true
				m.input.Focus()
				return m, tea.Batch(textinput.Blink, tea.SetWindowTitle("glide — enter path"))
			case docItem:
				m.result = &BrowserResult{Path: item.name}
				return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
			}
		case "q", "esc", "ctrl+c":
			m.result = &BrowserResult{Cancelled: true}
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}

	case tea.WindowSizeMsg:
		m.list.SetWidth(msg.Width)
		m.list.SetHeight(msg.Height)
		return m, nil
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m BrowserModel) updatePathInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			path := strings.TrimSpace(m.input.Value())
			if path != "" {
				m.result = &BrowserResult{Path: path}
				return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
			}
		case "esc":
			m.pathMode = false
			m.input.Reset()
			m.input.Blur()
			return m, tea.SetWindowTitle("glide")
		case "ctrl+c":
			m.result = &BrowserResult{Cancelled: true}
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m BrowserModel) View() string {
	if m.pathMode {
		s := "\n"
		s += "  " + headerStyle.Render("glide") + "\n"
		s += "\n"
		s += "  " + promptStyle.Render("Open path:") + "\n"
		s += "  " + m.input.View() + "\n"
		s += "\n"
		s += "  " + helpStyle.Render("enter confirm  esc back  ctrl+c quit") + "\n"
		return s
	}
	return m.list.View()
}
