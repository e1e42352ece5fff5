package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/fgoni/json-assistant/doctree"
	"github.com/fgoni/json-assistant/encode"
	"github.com/fgoni/json-assistant/ir"
	"github.com/fgoni/json-assistant/search"
	"github.com/fgoni/json-assistant/session"
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true)
	statusStyle    = lipgloss.NewStyle().Faint(true)
	keyStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("173"))
	typeStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("110"))
	stringStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("78"))
	numberStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("117"))
	literalStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("134"))
	highlightStyle = lipgloss.NewStyle().Background(lipgloss.Color("58"))
	focusStyle     = lipgloss.NewStyle().Background(lipgloss.Color("94")).Bold(true)
	cursorStyle    = lipgloss.NewStyle().Reverse(true)
	helpStyle      = lipgloss.NewStyle().Faint(true)
)

func newViewport(w, h int) viewport.Model {
	if h < 1 {
		h = 1
	}
	return viewport.New(w, h)
}

func (m *Model) View() string {
	if !m.ready {
		return "loading..."
	}
	var b strings.Builder
	b.WriteString(titleStyle.Render("json assistant"))
	b.WriteByte('\n')
	b.WriteString(statusStyle.Render(m.statusLine()))
	b.WriteByte('\n')
	b.WriteString(m.viewport.View())
	b.WriteByte('\n')
	if m.searchMode {
		b.WriteString(m.input.View())
	} else {
		b.WriteString(helpStyle.Render("j/k move · enter toggle · E/C expand/collapse all · / search · n/N match · s save · q quit"))
	}
	return b.String()
}

func (m *Model) statusLine() string {
	if err := m.sess.ParseError(); err != nil {
		return "parse error: " + err.Error()
	}
	if m.sess.Tree() == nil {
		return "no document"
	}
	parts := []string{fmt.Sprintf("%d nodes", m.sess.Tree().Len())}
	switch m.sess.Status() {
	case session.StatusSnapshotLoading:
		parts = append(parts, "loading snapshot...")
	case session.StatusSearching:
		parts = append(parts, "searching...")
	default:
		if r := m.sess.Result(); r != nil && r.Active() {
			if i, ok := r.Focused(); ok {
				parts = append(parts, fmt.Sprintf("match %d/%d", i+1, len(r.Matches)))
			} else {
				parts = append(parts, fmt.Sprintf("%d matches", len(r.Matches)))
			}
		}
	}
	if m.statusMsg != "" {
		parts = append(parts, m.statusMsg)
	}
	return strings.Join(parts, " · ")
}

func (m *Model) renderLines() string {
	r := m.sess.Result()
	var focused doctree.NodeID = -1
	if r != nil {
		if id, ok := r.FocusedID(); ok {
			focused = id
		}
	}

	lines := make([]string, 0, len(m.visible))
	depths := nodeDepths(m.sess.Tree())
	for i, n := range m.visible {
		line := strings.Repeat("  ", depths[n.ID]) + nodeLine(n)
		switch {
		case n.ID == focused:
			line = focusStyle.Render(line)
		case r != nil && inSet(r.Highlight, n.ID):
			line = highlightStyle.Render(line)
		}
		if i == m.cursor {
			line = cursorStyle.Render("▌") + line
		} else {
			line = " " + line
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

// nodeLine renders one outline row: expander, key or type label, and the
// value or a bounded preview for collapsed containers.
func nodeLine(n *doctree.Node) string {
	var b strings.Builder
	switch {
	case len(n.Children) == 0 && !n.Value.Type.IsLeaf():
		b.WriteString("  ") // empty container
	case n.Value.Type.IsLeaf():
		b.WriteString("  ")
	case n.Expanded:
		b.WriteString("▾ ")
	default:
		b.WriteString("▸ ")
	}

	if n.IsRoot {
		b.WriteString(typeStyle.Render(n.Label()))
	} else {
		b.WriteString(keyStyle.Render(n.Key))
	}

	switch n.Value.Type {
	case ir.StringType:
		b.WriteString(": ")
		b.WriteString(stringStyle.Render(encode.Quote(n.Value.String)))
	case ir.NumberType:
		b.WriteString(": ")
		b.WriteString(numberStyle.Render(n.Value.Number))
	case ir.BoolType, ir.NullType:
		b.WriteString(": ")
		b.WriteString(literalStyle.Render(scalarText(n.Value)))
	default:
		if !n.IsRoot {
			b.WriteString(" ")
			b.WriteString(typeStyle.Render("(" + strings.ToLower(n.Value.Type.String()) + ")"))
		}
		if !n.Expanded {
			b.WriteString(" ")
			b.WriteString(statusStyle.Render(clip(search.Preview(n.Value), 60)))
		}
	}
	return b.String()
}

func scalarText(v *ir.Node) string {
	switch v.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		if v.Bool {
			return "true"
		}
		return "false"
	}
	return ""
}

func clip(s string, n int) string {
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	return string(rs[:n-1]) + "…"
}

func inSet(set map[doctree.NodeID]struct{}, id doctree.NodeID) bool {
	_, ok := set[id]
	return ok
}

// nodeDepths maps each node id to its depth for indentation.
func nodeDepths(t *doctree.Tree) map[doctree.NodeID]int {
	depths := map[doctree.NodeID]int{}
	if t == nil {
		return depths
	}
	var walk func(n *doctree.Node, d int)
	walk = func(n *doctree.Node, d int) {
		depths[n.ID] = d
		for _, c := range n.Children {
			walk(c, d+1)
		}
	}
	walk(t.Root, 0)
	return depths
}
