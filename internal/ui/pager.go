package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/olivier-w/glide/internal/config"
	"github.com/olivier-w/glide/internal/doc"
	"github.com/olivier-w/glide/internal/scroll"
	"github.com/olivier-w/glide/internal/util"
)

// horizontal pan distance for one h/l press or wheel-left/right notch
const panStep = 4

// viewState is the mutable pager state shared across model copies.
// Bubbletea models are values; the animator and surface have to live
// behind a pointer so Update mutations stick.
type viewState struct {
	doc      *doc.Document
	cfg      config.Config
	surface  *contentSurface
	animator *scroll.Animator
	thumb    thumbSpring

	framePending bool
}

// PagerModel is the Bubbletea model for the smooth-scrolling pager.
type PagerModel struct {
	view     *viewState
	input    textinput.Model
	gotoMode bool
	width    int
	height   int
	quitting bool
}

// NewPager creates a pager over the given document.
func NewPager(d *doc.Document, cfg config.Config) PagerModel {
	surface := &contentSurface{animate: cfg.Animation.Enabled}
	surface.setContentSize(d.MaxWidth, len(d.Lines))

	animator := scroll.NewAnimator(surface, nil, cfg.Animation.EasingFunc(), cfg.Animation.DurationPolicy())

	ti := textinput.New()
	ti.Placeholder = "line"
	ti.CharLimit = 10
	ti.Width = 10

	return PagerModel{
		view: &viewState{
			doc:      d,
			cfg:      cfg,
			surface:  surface,
			animator: animator,
			thumb:    newThumbSpring(cfg.Input.FPS),
		},
		input: ti,
	}
}

func (m PagerModel) Init() tea.Cmd {
	return tea.SetWindowTitle("glide — " + m.view.doc.Name())
}

func (m PagerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.gotoMode {
		return m.updateGotoInput(msg)
	}

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if isQuit(msg) {
			m.quitting = true
			return m, tea.Sequence(tea.SetWindowTitle(""), tea.Quit)
		}
		m.handleScrollKey(msg)
		if msg.String() == ":" {
			m.gotoMode = true
			m.input.Focus()
			return m, textinput.Blink
		}
		return m, m.scheduleFrame()

	case tea.MouseMsg:
		v := m.view
		wheel := float64(v.cfg.Input.WheelLines)
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			v.animator.UserScroll(scroll.Vertical, scroll.ByLine, 1, -wheel)
		case tea.MouseButtonWheelDown:
			v.animator.UserScroll(scroll.Vertical, scroll.ByLine, 1, wheel)
		case tea.MouseButtonWheelLeft:
			v.animator.UserScroll(scroll.Horizontal, scroll.ByLine, panStep, -1)
		case tea.MouseButtonWheelRight:
			v.animator.UserScroll(scroll.Horizontal, scroll.ByLine, panStep, 1)
		}
		return m, m.scheduleFrame()

	case frameMsg:
		v := m.view
		v.framePending = false
		v.animator.ServiceScrollAnimations()
		v.thumb.step(m.thumbTarget())
		return m, m.scheduleFrame()

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.view.surface.setViewportSize(msg.Width-1, msg.Height-1)
		// Bounds may have tightened; pull a now-out-of-range offset
		// back in without animating.
		v := m.view
		if cur := v.animator.CurrentOffset(); cur != v.surface.ClampOffset(cur) {
			v.animator.ScrollToOffsetWithoutAnimation(v.surface.ClampOffset(cur))
		}
		return m, m.scheduleFrame()
	}

	return m, nil
}

func (m *PagerModel) handleScrollKey(msg tea.KeyMsg) {
	v := m.view
	pageStep := v.surface.viewH - float64(v.cfg.Input.PageOverlap)
	if pageStep < 1 {
		pageStep = 1
	}

	switch msg.String() {
	case "j", "down":
		v.animator.UserScroll(scroll.Vertical, scroll.ByLine, 1, 1)
	case "k", "up":
		v.animator.UserScroll(scroll.Vertical, scroll.ByLine, 1, -1)
	case "l", "right":
		v.animator.UserScroll(scroll.Horizontal, scroll.ByLine, panStep, 1)
	case "h", "left":
		v.animator.UserScroll(scroll.Horizontal, scroll.ByLine, panStep, -1)
	case " ", "f", "pgdown":
		v.animator.UserScroll(scroll.Vertical, scroll.ByPage, pageStep, 1)
	case "b", "pgup":
		v.animator.UserScroll(scroll.Vertical, scroll.ByPage, pageStep, -1)
	case "g", "home":
		v.animator.UserScroll(scroll.Vertical, scroll.ByDocument, v.surface.contentH, -1)
	case "G", "end":
		v.animator.UserScroll(scroll.Vertical, scroll.ByDocument, v.surface.contentH, 1)
	}
}

func (m PagerModel) updateGotoInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			v := m.view
			if n, err := strconv.Atoi(strings.TrimSpace(m.input.Value())); err == nil {
				target := v.surface.ClampOffset(scroll.Offset{
					X: v.animator.CurrentOffset().X,
					Y: float64(n - 1),
				})
				v.animator.ScrollToOffsetWithoutAnimation(target)
			}
			m.gotoMode = false
			m.input.Reset()
			m.input.Blur()
			return m, m.scheduleFrame()
		case "esc", "ctrl+c":
			m.gotoMode = false
			m.input.Reset()
			m.input.Blur()
			return m, nil
		}
	case frameMsg:
		v := m.view
		v.framePending = false
		v.animator.ServiceScrollAnimations()
		v.thumb.step(m.thumbTarget())
		return m, m.scheduleFrame()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// scheduleFrame requests the next animation frame when the animator has
// re-registered or the scrollbar thumb is still catching up. At most
// one frame is in flight at a time.
func (m PagerModel) scheduleFrame() tea.Cmd {
	v := m.view
	wanted := v.surface.takeFrameRequest()
	if !wanted && v.thumb.settled(m.thumbTarget()) {
		return nil
	}
	if v.framePending {
		return nil
	}
	v.framePending = true
	return frameCmd(v.cfg.Input.FrameInterval())
}

func (m PagerModel) thumbTarget() float64 {
	max := m.view.surface.maxOffset(scroll.Vertical)
	if max <= 0 {
		return 0
	}
	return m.view.animator.CurrentOffset().Y / max
}

func (m PagerModel) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return ""
	}

	v := m.view
	viewW := m.width - 1
	viewH := m.height - 1
	offset := v.animator.CurrentOffset()
	top := int(offset.Y)
	left := int(offset.X)

	bar := m.renderScrollbar(viewH)

	var b strings.Builder
	for row := 0; row < viewH; row++ {
		line := ""
		if idx := top + row; idx < len(v.doc.Lines) {
			line = cutLine(v.doc.Lines[idx], left, viewW)
		}
		b.WriteString(line)
		b.WriteString(strings.Repeat(" ", viewW-runewidth.StringWidth(line)))
		b.WriteString(bar[row])
		b.WriteString("\n")
	}
	b.WriteString(m.statusLine(viewW+1, top, viewH))
	return b.String()
}

func (m PagerModel) renderScrollbar(trackH int) []string {
	v := m.view
	bar := make([]string, trackH)
	track := scrollbarStyle.Render("│")
	for i := range bar {
		bar[i] = track
	}
	if v.surface.maxOffset(scroll.Vertical) <= 0 || trackH < 1 {
		return bar
	}

	thumbH := trackH * trackH / len(v.doc.Lines)
	if thumbH < 1 {
		thumbH = 1
	}
	pos := v.thumb.pos
	if pos < 0 {
		pos = 0
	}
	if pos > 1 {
		pos = 1
	}
	start := int(pos * float64(trackH-thumbH))
	thumb := thumbStyle.Render("█")
	for i := start; i < start+thumbH && i < trackH; i++ {
		bar[i] = thumb
	}
	return bar
}

func (m PagerModel) statusLine(width, top, viewH int) string {
	v := m.view

	if m.gotoMode {
		s := promptStyle.Render("goto line: ") + m.input.View()
		return s + strings.Repeat(" ", maxInt(0, width-lipgloss.Width(s)))
	}

	name := " " + v.doc.Name()
	pos := util.FormatPosition(top+1, len(v.doc.Lines))
	pct := util.FormatPercent(v.animator.CurrentOffset().Y, v.surface.maxOffset(scroll.Vertical))
	right := pos + "  " + pct + " "
	help := helpText()

	pad := width - lipgloss.Width(name) - lipgloss.Width(right) - lipgloss.Width(help) - 4
	if pad < 1 {
		help = ""
		pad = maxInt(1, width-lipgloss.Width(name)-lipgloss.Width(right))
	}
	return statusStyle.Render(name) +
		statusDimStyle.Render(strings.Repeat(" ", maxInt(0, pad/2))+help+strings.Repeat(" ", maxInt(0, pad-pad/2))) +
		statusStyle.Render(right)
}

// cutLine returns the slice of line covering display columns
// [from, from+width). Wide runes straddling either edge are dropped.
func cutLine(line string, from, width int) string {
	if width <= 0 {
		return ""
	}
	var b strings.Builder
	col := 0
	for _, r := range line {
		rw := runewidth.RuneWidth(r)
		if col+rw > from+width {
			break
		}
		if col >= from {
			b.WriteRune(r)
		} else if col+rw > from {
			// wide rune split by the left edge
			b.WriteString(strings.Repeat(" ", col+rw-from))
		}
		col += rw
	}
	return b.String()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
