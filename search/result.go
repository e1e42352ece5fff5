package search

import "github.com/fgoni/json-assistant/doctree"

// Result is the outcome of one query evaluation. Matches holds self-matching
// node ids in pre-order visitation order; Highlight is the same set; Expand
// holds every ancestor of a self-match, root included, match excluded.
type Result struct {
	Query     string
	Gen       uint64
	Matches   []doctree.NodeID
	Highlight map[doctree.NodeID]struct{}
	Expand    map[doctree.NodeID]struct{}

	active  bool
	focused int // index into Matches, -1 for none
}

// Active reports whether a search actually ran (query met MinQueryLen).
func (r *Result) Active() bool {
	return r.active
}

// Focused returns the current focus index, or false if no match is focused.
func (r *Result) Focused() (int, bool) {
	if r.focused < 0 || r.focused >= len(r.Matches) {
		return 0, false
	}
	return r.focused, true
}

// FocusedID returns the focused match's node id.
func (r *Result) FocusedID() (doctree.NodeID, bool) {
	i, ok := r.Focused()
	if !ok {
		return 0, false
	}
	return r.Matches[i], true
}

// FocusNext advances the focus cursor, wrapping from the last match to the
// first. With no prior focus it selects the first match.
func (r *Result) FocusNext() (doctree.NodeID, bool) {
	if len(r.Matches) == 0 {
		return 0, false
	}
	if r.focused < 0 {
		r.focused = 0
	} else {
		r.focused = (r.focused + 1) % len(r.Matches)
	}
	return r.Matches[r.focused], true
}

// FocusPrev moves the focus cursor backwards, wrapping from the first match
// to the last. With no prior focus it selects the last match.
func (r *Result) FocusPrev() (doctree.NodeID, bool) {
	if len(r.Matches) == 0 {
		return 0, false
	}
	if r.focused < 0 {
		r.focused = len(r.Matches) - 1
	} else {
		r.focused = (r.focused - 1 + len(r.Matches)) % len(r.Matches)
	}
	return r.Matches[r.focused], true
}
