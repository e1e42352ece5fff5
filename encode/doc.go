// Package encode pretty-prints ir nodes as JSON text.
//
// Output is deterministic: 4-space indentation, empty containers rendered
// inline, one child per line otherwise. Encoding then re-parsing a tree
// yields an equal tree, including object member order.
package encode
