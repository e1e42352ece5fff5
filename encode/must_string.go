package encode

import (
	"bytes"

	"github.com/fgoni/json-assistant/ir"
)

// String returns the canonical pretty-printed text for node.
func String(node *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := Encode(node, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func MustString(node *ir.Node) string {
	s, err := String(node)
	if err != nil {
		panic(err)
	}
	return s
}
