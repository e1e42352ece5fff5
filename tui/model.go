// Package tui is the terminal outline viewer. All document semantics live
// in the session package; this package renders state and forwards key
// presses.
package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/fgoni/json-assistant/doctree"
	"github.com/fgoni/json-assistant/session"
)

type Model struct {
	sess *session.Session

	viewport   viewport.Model
	input      textinput.Model
	searchMode bool

	cursor  int
	visible []*doctree.Node

	width, height int
	ready         bool
	statusMsg     string
}

// updateMsg wraps a session background completion as a tea message.
type updateMsg session.Update

func New(sess *session.Session) *Model {
	in := textinput.New()
	in.Placeholder = "search"
	in.Prompt = "/"
	return &Model{
		sess:  sess,
		input: in,
	}
}

func (m *Model) Init() tea.Cmd {
	return waitForUpdate(m.sess)
}

// waitForUpdate forwards the next background completion into the program's
// message loop, so session state is only ever touched from Update.
func waitForUpdate(s *session.Session) tea.Cmd {
	return func() tea.Msg {
		return updateMsg(<-s.Updates())
	}
}

// rebuildVisible relinearizes the tree following expansion flags.
func (m *Model) rebuildVisible() {
	m.visible = m.visible[:0]
	tr := m.sess.Tree()
	if tr == nil {
		m.cursor = 0
		return
	}
	var walk func(n *doctree.Node)
	walk = func(n *doctree.Node) {
		m.visible = append(m.visible, n)
		if n.Expanded {
			for _, c := range n.Children {
				walk(c)
			}
		}
	}
	walk(tr.Root)
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// moveCursorTo places the cursor on the line showing id, if visible.
func (m *Model) moveCursorTo(id doctree.NodeID) {
	for i, n := range m.visible {
		if n.ID == id {
			m.cursor = i
			return
		}
	}
}
