// Package ir provides the in-memory representation of JSON documents.
//
// A document is a tree of ir.Node values. A Node is a tagged union: the
// Type field selects which of the payload fields is meaningful. Object
// members keep their insertion order, and setting an existing key updates
// the value in place without moving the member.
//
// The IR carries no position information; positions only exist in parse
// diagnostics.
package ir
