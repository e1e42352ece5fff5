package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestObjectSetKeepsOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("b", FromNumber("1"))
	obj.Set("a", FromNumber("2"))
	obj.Set("c", FromNumber("3"))

	want := []string{"b", "a", "c"}
	if d := cmp.Diff(want, obj.Keys()); d != "" {
		t.Errorf("keys (-want +got):\n%s", d)
	}
}

func TestObjectSetDuplicateInPlace(t *testing.T) {
	obj := NewObject()
	obj.Set("a", FromNumber("1"))
	obj.Set("b", FromNumber("2"))
	obj.Set("a", FromNumber("3"))

	if got := obj.Len(); got != 2 {
		t.Fatalf("len = %d, want 2", got)
	}
	if d := cmp.Diff([]string{"a", "b"}, obj.Keys()); d != "" {
		t.Errorf("keys (-want +got):\n%s", d)
	}
	if got := obj.Get("a").Number; got != "3" {
		t.Errorf("a = %s, want 3", got)
	}
}

func TestObjectGetAbsent(t *testing.T) {
	obj := NewObject()
	obj.Set("a", Null())
	if got := obj.Get("zzz"); got != nil {
		t.Errorf("Get(zzz) = %v, want nil", got)
	}
}

func TestLen(t *testing.T) {
	arr := FromSlice([]*Node{Null(), FromBool(true)})
	if got := arr.Len(); got != 2 {
		t.Errorf("array len = %d, want 2", got)
	}
	if got := FromString("x").Len(); got != 0 {
		t.Errorf("scalar len = %d, want 0", got)
	}
}

func TestVisitPreOrder(t *testing.T) {
	obj := NewObject()
	obj.Set("a", FromSlice([]*Node{FromString("x"), FromString("y")}))
	obj.Set("b", FromBool(false))

	var order []string
	obj.Visit(func(n *Node) bool {
		switch n.Type {
		case ObjectType:
			order = append(order, "{}")
		case ArrayType:
			order = append(order, "[]")
		case StringType:
			order = append(order, n.String)
		case BoolType:
			order = append(order, "bool")
		}
		return true
	})
	want := []string{"{}", "[]", "x", "y", "bool"}
	if d := cmp.Diff(want, order); d != "" {
		t.Errorf("visit order (-want +got):\n%s", d)
	}
}

func TestVisitPrune(t *testing.T) {
	obj := NewObject()
	obj.Set("a", FromSlice([]*Node{FromString("x")}))

	count := 0
	obj.Visit(func(n *Node) bool {
		count++
		return n.Type != ArrayType
	})
	// root and array only; the array's child is pruned
	if count != 2 {
		t.Errorf("visited %d nodes, want 2", count)
	}
}

func TestFloat64(t *testing.T) {
	n := FromNumber("1e14")
	f, err := n.Float64()
	if err != nil {
		t.Fatal(err)
	}
	if f != 1e14 {
		t.Errorf("Float64 = %v, want 1e14", f)
	}
}
