package search

import (
	"context"
	"strings"

	"github.com/fgoni/json-assistant/doctree"
)

// MinQueryLen is the minimum trimmed query length for a search to run.
// Shorter queries short-circuit to an inactive, empty result.
const MinQueryLen = 3

// Eval runs query against snap. It checks ctx at every node visited and
// returns the context error on cancellation, never a partial result.
func Eval(ctx context.Context, snap *Snapshot, query string) (*Result, error) {
	q := strings.ToLower(strings.TrimSpace(query))
	r := &Result{
		Query:     query,
		Gen:       snap.Gen,
		Highlight: map[doctree.NodeID]struct{}{},
		Expand:    map[doctree.NodeID]struct{}{},
		focused:   -1,
	}
	if len([]rune(q)) < MinQueryLen {
		return r, nil
	}
	r.active = true
	if _, err := eval(ctx, snap.Root, q, r, nil); err != nil {
		return nil, err
	}
	return r, nil
}

// eval walks pre-order, appending self-matches to the result in visitation
// order, and reports whether n self- or descendant-matches. path holds the
// ids from the root down to n's parent.
func eval(ctx context.Context, n *SnapNode, q string, r *Result, path []doctree.NodeID) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	self := selfMatch(n, q, len(path) == 0)
	if self {
		r.Matches = append(r.Matches, n.ID)
		r.Highlight[n.ID] = struct{}{}
		for _, id := range path {
			r.Expand[id] = struct{}{}
		}
	}
	any := self
	path = append(path, n.ID)
	for _, c := range n.Children {
		m, err := eval(ctx, c, q, r, path)
		if err != nil {
			return false, err
		}
		any = any || m
	}
	return any, nil
}

// selfMatch: leaves match on their normalized text; non-root containers on
// their type label or key. The root container never self-matches.
func selfMatch(n *SnapNode, q string, isRoot bool) bool {
	if n.Leaf {
		return strings.Contains(n.Text, q)
	}
	if isRoot {
		return false
	}
	return strings.Contains(n.Label, q) || strings.Contains(n.Key, q)
}
