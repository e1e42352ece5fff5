// Package search evaluates substring queries against an immutable snapshot
// of a document tree.
//
// A Snapshot is built once per tree generation, the first time a search is
// requested against it, and is never mutated afterwards. Both snapshot
// construction and query evaluation are cancellable through their context at
// every node visited; a cancelled unit returns the context error and no
// partial result.
package search
