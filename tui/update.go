package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/fgoni/json-assistant/session"
)

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		chrome := 4 // title, status, input, help
		if !m.ready {
			m.viewport = newViewport(msg.Width, msg.Height-chrome)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - chrome
		}
		m.refresh()
		return m, nil

	case updateMsg:
		m.sess.Apply(session.Update(msg))
		m.refresh()
		return m, waitForUpdate(m.sess)

	case tea.KeyMsg:
		if m.searchMode {
			return m.handleSearchKey(msg)
		}
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		m.searchMode = false
		m.input.Blur()
		return m, nil
	case "esc":
		m.searchMode = false
		m.input.Blur()
		m.input.SetValue("")
		m.sess.SetQuery("")
		m.refresh()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	// live query: the session debounces before evaluating
	m.sess.SetQuery(m.input.Value())
	m.refresh()
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "/":
		m.searchMode = true
		m.input.Focus()
		return m, nil
	case "j", "down":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}
	case "k", "up":
		if m.cursor > 0 {
			m.cursor--
		}
	case "g":
		m.cursor = 0
	case "G":
		m.cursor = len(m.visible) - 1
		if m.cursor < 0 {
			m.cursor = 0
		}
	case "enter", "tab", " ":
		if m.cursor < len(m.visible) {
			m.sess.Toggle(m.visible[m.cursor].ID)
		}
	case "E":
		m.sess.ExpandAll()
	case "C":
		m.sess.CollapseAll()
		m.cursor = 0
	case "n":
		if id, ok := m.sess.FocusNext(); ok {
			m.refresh()
			m.moveCursorTo(id)
		}
	case "N":
		if id, ok := m.sess.FocusPrev(); ok {
			m.refresh()
			m.moveCursorTo(id)
		}
	case "s":
		name := time.Now().Format("2006-01-02 15:04:05")
		if err := m.sess.SaveCurrent(name); err != nil {
			m.statusMsg = fmt.Sprintf("save failed: %v", err)
		} else {
			m.statusMsg = "saved"
		}
	}
	m.refresh()
	return m, nil
}

// refresh rebuilds the visible line list and the viewport content, keeping
// the cursor line in view.
func (m *Model) refresh() {
	m.rebuildVisible()
	if !m.ready {
		return
	}
	m.viewport.SetContent(m.renderLines())
	if m.cursor < m.viewport.YOffset {
		m.viewport.SetYOffset(m.cursor)
	}
	if m.cursor >= m.viewport.YOffset+m.viewport.Height {
		m.viewport.SetYOffset(m.cursor - m.viewport.Height + 1)
	}
}
