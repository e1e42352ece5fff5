package search

import (
	"context"
	"strings"

	"github.com/fgoni/json-assistant/doctree"
	"github.com/fgoni/json-assistant/ir"
)

// Caps on the rendering of leaf text, bounding per-node cost on huge values.
const (
	maxRenderDepth  = 2
	maxArrayPrefix  = 100
	maxObjectPrefix = 50
)

// Snapshot is an immutable projection of one tree generation, structurally
// isomorphic to the tree it was built from.
type Snapshot struct {
	Gen  uint64
	Root *SnapNode

	size int
}

// SnapNode carries the lowercased search text for one node.
type SnapNode struct {
	ID       doctree.NodeID
	Key      string // lowercased; empty for the root
	Label    string // lowercased type label
	Text     string // normalized text, leaf nodes only
	Leaf     bool
	Children []*SnapNode
}

// Len is the total snapshot node count.
func (s *Snapshot) Len() int {
	return s.size
}

// Build projects t into a snapshot. It checks ctx at every node and returns
// the context error on cancellation, never a partial snapshot.
func Build(ctx context.Context, t *doctree.Tree) (*Snapshot, error) {
	s := &Snapshot{Gen: t.Gen}
	root, err := s.build(ctx, t.Root, true)
	if err != nil {
		return nil, err
	}
	s.Root = root
	return s, nil
}

func (s *Snapshot) build(ctx context.Context, n *doctree.Node, isRoot bool) (*SnapNode, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sn := &SnapNode{
		ID:    n.ID,
		Label: strings.ToLower(n.Value.Type.String()),
		Leaf:  n.Value.Type.IsLeaf(),
	}
	if !isRoot {
		sn.Key = strings.ToLower(n.Key)
	}
	if sn.Leaf {
		sn.Text = leafText(sn.Key, n.Value)
	}
	s.size++
	if len(n.Children) > 0 {
		sn.Children = make([]*SnapNode, 0, len(n.Children))
		for _, c := range n.Children {
			sc, err := s.build(ctx, c, false)
			if err != nil {
				return nil, err
			}
			sn.Children = append(sn.Children, sc)
		}
	}
	return sn, nil
}

// leafText is the node's own key concatenated with a bounded rendering of
// its value, lowercased.
func leafText(key string, v *ir.Node) string {
	var sb strings.Builder
	if key != "" {
		sb.WriteString(key)
		sb.WriteString(": ")
	}
	render(&sb, v, 0)
	return strings.ToLower(sb.String())
}

// Preview is the depth- and breadth-bounded single-line rendering of a
// value, as used for leaf search text. The outline view uses it for
// collapsed container lines.
func Preview(v *ir.Node) string {
	var sb strings.Builder
	render(&sb, v, 0)
	return sb.String()
}

func render(sb *strings.Builder, v *ir.Node, depth int) {
	switch v.Type {
	case ir.NullType:
		sb.WriteString("null")
	case ir.BoolType:
		if v.Bool {
			sb.WriteString("true")
		} else {
			sb.WriteString("false")
		}
	case ir.NumberType:
		sb.WriteString(v.Number)
	case ir.StringType:
		sb.WriteString(v.String)
	case ir.ArrayType:
		if depth >= maxRenderDepth {
			sb.WriteString("[...]")
			return
		}
		sb.WriteByte('[')
		for i, e := range v.Values {
			if i >= maxArrayPrefix {
				sb.WriteString(", ...")
				break
			}
			if i > 0 {
				sb.WriteString(", ")
			}
			render(sb, e, depth+1)
		}
		sb.WriteByte(']')
	case ir.ObjectType:
		if depth >= maxRenderDepth {
			sb.WriteString("{...}")
			return
		}
		sb.WriteByte('{')
		for i := range v.Fields {
			if i >= maxObjectPrefix {
				sb.WriteString(", ...")
				break
			}
			if i > 0 {
				sb.WriteString(", ")
			}
			sb.WriteString(v.Fields[i].Key)
			sb.WriteString(": ")
			render(sb, v.Fields[i].Value, depth+1)
		}
		sb.WriteByte('}')
	}
}
