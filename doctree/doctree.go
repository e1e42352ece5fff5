// Package doctree materializes an ir tree into addressable nodes with
// per-node expansion state.
//
// A Tree belongs to one parse generation: building a tree assigns fresh node
// ids, and no identity is carried over from any earlier tree. An id index is
// kept alongside the tree so lookups and toggles are O(1).
package doctree

import (
	"fmt"
	"sync/atomic"

	"github.com/fgoni/json-assistant/ir"
)

// NodeID identifies a node within one tree generation. Ids are never reused
// within a generation; a fresh Build assigns an entirely new id space.
type NodeID int

// Node wraps one ir value with identity and expansion state.
type Node struct {
	ID       NodeID
	Key      string
	IsRoot   bool
	Value    *ir.Node
	Expanded bool
	Children []*Node
}

// Label is the display name for the node: the type name for the root, the
// member key or [i] index otherwise.
func (n *Node) Label() string {
	if n.IsRoot {
		return n.Value.Type.String()
	}
	return n.Key
}

var generation atomic.Uint64

// Tree is one materialized generation of a document.
type Tree struct {
	Root *Node
	Gen  uint64

	index map[NodeID]*Node
	next  NodeID
}

// Build eagerly materializes the whole value tree: object members become one
// child per ordered pair, array elements one child per element with
// synthetic [i] keys, scalars have no children.
func Build(v *ir.Node) *Tree {
	t := &Tree{
		Gen:   generation.Add(1),
		index: make(map[NodeID]*Node),
	}
	t.Root = t.build(v, "", true)
	return t
}

func (t *Tree) build(v *ir.Node, key string, isRoot bool) *Node {
	n := &Node{
		ID:     t.next,
		Key:    key,
		IsRoot: isRoot,
		Value:  v,
	}
	t.next++
	t.index[n.ID] = n
	switch v.Type {
	case ir.ObjectType:
		n.Children = make([]*Node, 0, len(v.Fields))
		for i := range v.Fields {
			f := &v.Fields[i]
			n.Children = append(n.Children, t.build(f.Value, f.Key, false))
		}
	case ir.ArrayType:
		n.Children = make([]*Node, 0, len(v.Values))
		for i, e := range v.Values {
			n.Children = append(n.Children, t.build(e, fmt.Sprintf("[%d]", i), false))
		}
	}
	return n
}

// Node returns the node with the given id, or nil.
func (t *Tree) Node(id NodeID) *Node {
	return t.index[id]
}

// Len is the total node count.
func (t *Tree) Len() int {
	return len(t.index)
}

// Toggle flips one node's expansion flag and reports whether id was found.
// No ancestor or descendant state is touched.
func (t *Tree) Toggle(id NodeID) bool {
	n := t.index[id]
	if n == nil {
		return false
	}
	n.Expanded = !n.Expanded
	return true
}

func (t *Tree) ExpandAll() {
	t.setAll(t.Root, true)
}

func (t *Tree) CollapseAll() {
	t.setAll(t.Root, false)
}

func (t *Tree) setAll(n *Node, v bool) {
	n.Expanded = v
	for _, c := range n.Children {
		t.setAll(c, v)
	}
}

// Expand forces the given nodes open, as search auto-expansion requests.
func (t *Tree) Expand(ids map[NodeID]struct{}) {
	for id := range ids {
		if n := t.index[id]; n != nil {
			n.Expanded = true
		}
	}
}
