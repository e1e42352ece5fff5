package ir

import "strconv"

// Node is a single JSON value. The zero value is null.
type Node struct {
	Type Type

	Bool   bool
	Number string // decimal text as written in the source
	String string

	Values []*Node // array elements
	Fields []Field // object members, insertion order

	index map[string]int // object key -> position in Fields
}

// Field is one object member.
type Field struct {
	Key   string
	Value *Node
}

func FromString(v string) *Node {
	return &Node{Type: StringType, String: v}
}

func FromBool(v bool) *Node {
	return &Node{Type: BoolType, Bool: v}
}

// FromNumber wraps decimal text without validating it; callers that accept
// untrusted text validate first (see parse).
func FromNumber(text string) *Node {
	return &Node{Type: NumberType, Number: text}
}

func FromFloat(f float64) *Node {
	return &Node{Type: NumberType, Number: strconv.FormatFloat(f, 'g', -1, 64)}
}

func Null() *Node {
	return &Node{Type: NullType}
}

func NewObject() *Node {
	return &Node{Type: ObjectType}
}

func FromSlice(vs []*Node) *Node {
	return &Node{Type: ArrayType, Values: vs}
}

// Float64 parses the node's numeric text.
func (n *Node) Float64() (float64, error) {
	return strconv.ParseFloat(n.Number, 64)
}

// Set updates the value for key in place if key is already present, keeping
// the member's original slot, and appends a new member otherwise.
func (n *Node) Set(key string, v *Node) {
	if n.index == nil {
		n.index = make(map[string]int, 4)
	}
	if i, ok := n.index[key]; ok {
		n.Fields[i].Value = v
		return
	}
	n.index[key] = len(n.Fields)
	n.Fields = append(n.Fields, Field{Key: key, Value: v})
}

// Get returns the value for key, or nil if absent.
func (n *Node) Get(key string) *Node {
	if n.index != nil {
		if i, ok := n.index[key]; ok {
			return n.Fields[i].Value
		}
		return nil
	}
	for i := range n.Fields {
		if n.Fields[i].Key == key {
			return n.Fields[i].Value
		}
	}
	return nil
}

// Keys returns the object's keys in insertion order.
func (n *Node) Keys() []string {
	keys := make([]string, len(n.Fields))
	for i := range n.Fields {
		keys[i] = n.Fields[i].Key
	}
	return keys
}

// Len is the element count: members for objects, elements for arrays,
// zero for scalars.
func (n *Node) Len() int {
	switch n.Type {
	case ObjectType:
		return len(n.Fields)
	case ArrayType:
		return len(n.Values)
	default:
		return 0
	}
}

// Visit walks the tree in pre-order. If f returns false the children of the
// current node are skipped.
func (n *Node) Visit(f func(n *Node) bool) {
	if !f(n) {
		return
	}
	switch n.Type {
	case ArrayType:
		for _, v := range n.Values {
			v.Visit(f)
		}
	case ObjectType:
		for i := range n.Fields {
			n.Fields[i].Value.Visit(f)
		}
	}
}
