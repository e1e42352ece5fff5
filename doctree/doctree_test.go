package doctree

import (
	"testing"

	"github.com/fgoni/json-assistant/parse"
	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, in string) *Tree {
	t.Helper()
	n, err := parse.ParseString(in)
	if err != nil {
		t.Fatal(err)
	}
	return Build(n)
}

func TestBuildShape(t *testing.T) {
	tr := mustParse(t, `{"users":[{"name":"Ann"},{"name":"Bob"}],"n":2}`)

	root := tr.Root
	if !root.IsRoot {
		t.Error("root not marked")
	}
	if got := root.Label(); got != "Object" {
		t.Errorf("root label = %q, want Object", got)
	}
	if len(root.Children) != 2 {
		t.Fatalf("root children = %d, want 2", len(root.Children))
	}

	users := root.Children[0]
	if users.Key != "users" {
		t.Errorf("key = %q, want users", users.Key)
	}
	if len(users.Children) != 2 {
		t.Fatalf("users children = %d, want 2", len(users.Children))
	}
	if got := users.Children[0].Key; got != "[0]" {
		t.Errorf("array child key = %q, want [0]", got)
	}
	if got := users.Children[1].Key; got != "[1]" {
		t.Errorf("array child key = %q, want [1]", got)
	}

	// children count always equals the value's element count
	var check func(n *Node)
	check = func(n *Node) {
		if got, want := len(n.Children), n.Value.Len(); got != want {
			t.Errorf("node %d: children = %d, value len = %d", n.ID, got, want)
		}
		for _, c := range n.Children {
			check(c)
		}
	}
	check(root)

	// 1 root + users + 2 objects + 2 names + n
	if got := tr.Len(); got != 7 {
		t.Errorf("Len = %d, want 7", got)
	}
}

func TestScalarRoot(t *testing.T) {
	tr := mustParse(t, `42`)
	if got := tr.Root.Label(); got != "Number" {
		t.Errorf("label = %q, want Number", got)
	}
	if len(tr.Root.Children) != 0 {
		t.Error("scalar root has children")
	}
}

func TestIDsUniqueWithinGeneration(t *testing.T) {
	tr := mustParse(t, `[1,[2,3],{"a":4}]`)
	seen := map[NodeID]bool{}
	var walk func(n *Node)
	walk = func(n *Node) {
		if seen[n.ID] {
			t.Errorf("id %d reused", n.ID)
		}
		seen[n.ID] = true
		if tr.Node(n.ID) != n {
			t.Errorf("index lookup of %d returned different node", n.ID)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(tr.Root)
}

func TestGenerationsDiffer(t *testing.T) {
	a := mustParse(t, `{"a":1}`)
	b := mustParse(t, `{"a":1}`)
	if a.Gen == b.Gen {
		t.Error("two builds share a generation")
	}
}

func TestToggle(t *testing.T) {
	tr := mustParse(t, `{"a":{"b":1}}`)
	child := tr.Root.Children[0]
	if child.Expanded {
		t.Fatal("nodes start collapsed")
	}
	if !tr.Toggle(child.ID) {
		t.Fatal("toggle failed")
	}
	if !child.Expanded {
		t.Error("toggle did not expand")
	}
	// independent per node: parent and grandchild untouched
	if tr.Root.Expanded || child.Children[0].Expanded {
		t.Error("toggle cascaded")
	}
	tr.Toggle(child.ID)
	if child.Expanded {
		t.Error("second toggle did not collapse")
	}
	if tr.Toggle(NodeID(9999)) {
		t.Error("toggle of unknown id succeeded")
	}
}

func TestExpandCollapseAll(t *testing.T) {
	tr := mustParse(t, `{"a":{"b":[1,2]},"c":3}`)
	tr.ExpandAll()
	var states []bool
	var walk func(n *Node)
	walk = func(n *Node) {
		states = append(states, n.Expanded)
		for _, c := range n.Children {
			walk(c)
		}
	}
	walk(tr.Root)
	for i, s := range states {
		if !s {
			t.Errorf("node %d not expanded", i)
		}
	}
	tr.CollapseAll()
	states = states[:0]
	walk(tr.Root)
	for i, s := range states {
		if s {
			t.Errorf("node %d not collapsed", i)
		}
	}
}

func TestExpandSet(t *testing.T) {
	tr := mustParse(t, `{"a":{"b":1}}`)
	a := tr.Root.Children[0]
	tr.Expand(map[NodeID]struct{}{
		tr.Root.ID: {},
		a.ID:       {},
	})
	if !tr.Root.Expanded || !a.Expanded {
		t.Error("expand set not applied")
	}
	if d := cmp.Diff(false, a.Children[0].Expanded); d != "" {
		t.Errorf("leaf expansion (-want +got):\n%s", d)
	}
}
