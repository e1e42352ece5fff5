// Package parse parses JSON text into ir nodes.
//
// # Usage
//
//	node, err := parse.ParseString(`{"name": "alice", "age": 30}`)
//	if err != nil {
//	    return err
//	}
//
// Parsing is a pure function of the input text. Errors are *parse.Error
// values carrying a 1-based position counted in Unicode scalars, and match
// the package sentinels under errors.Is.
//
// # Related Packages
//
//   - github.com/fgoni/json-assistant/ir - document representation
//   - github.com/fgoni/json-assistant/encode - encode ir to text
package parse
