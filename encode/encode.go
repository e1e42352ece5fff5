package encode

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/fgoni/json-assistant/ir"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	depth  int
	indent int

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes node to w as pretty-printed JSON. It fails only on writer
// errors or on a node whose Type is outside the ir variants.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{
		indent: 4,
	}
	for _, opt := range opts {
		opt(es)
	}
	return encode(node, w, es)
}

func encode(node *ir.Node, w io.Writer, es *EncState) error {
	switch node.Type {
	case ir.NullType:
		return writeColored(w, es, ir.NullType, ValueColor, "null")
	case ir.BoolType:
		v := "false"
		if node.Bool {
			v = "true"
		}
		return writeColored(w, es, ir.BoolType, ValueColor, v)
	case ir.NumberType:
		return writeColored(w, es, ir.NumberType, ValueColor, node.Number)
	case ir.StringType:
		return writeColored(w, es, ir.StringType, ValueColor, Quote(node.String))
	case ir.ArrayType:
		return encodeArray(node, w, es)
	case ir.ObjectType:
		return encodeObject(node, w, es)
	default:
		return fmt.Errorf("%w: unknown type %d", ErrEncoding, int(node.Type))
	}
}

func encodeArray(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Values) == 0 {
		return writeColored(w, es, ir.ArrayType, SepColor, "[]")
	}
	if err := writeColored(w, es, ir.ArrayType, SepColor, "["); err != nil {
		return err
	}
	es.depth++
	for i, v := range node.Values {
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := encode(v, w, es); err != nil {
			return err
		}
		if i < len(node.Values)-1 {
			if err := writeColored(w, es, ir.ArrayType, SepColor, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeColored(w, es, ir.ArrayType, SepColor, "]")
}

func encodeObject(node *ir.Node, w io.Writer, es *EncState) error {
	if len(node.Fields) == 0 {
		return writeColored(w, es, ir.ObjectType, SepColor, "{}")
	}
	if err := writeColored(w, es, ir.ObjectType, SepColor, "{"); err != nil {
		return err
	}
	es.depth++
	for i := range node.Fields {
		f := &node.Fields[i]
		if err := writeNL(w, es); err != nil {
			return err
		}
		if err := writeColored(w, es, ir.ObjectType, FieldColor, Quote(f.Key)); err != nil {
			return err
		}
		if err := writeColored(w, es, ir.ObjectType, SepColor, ": "); err != nil {
			return err
		}
		if err := encode(f.Value, w, es); err != nil {
			return err
		}
		if i < len(node.Fields)-1 {
			if err := writeColored(w, es, ir.ObjectType, SepColor, ","); err != nil {
				return err
			}
		}
	}
	es.depth--
	if err := writeNL(w, es); err != nil {
		return err
	}
	return writeColored(w, es, ir.ObjectType, SepColor, "}")
}

func writeNL(w io.Writer, es *EncState) error {
	return writeString(w, "\n"+strings.Repeat(" ", es.indent*es.depth))
}

func writeColored(w io.Writer, es *EncState, t ir.Type, a ColorAttr, s string) error {
	if es.Color != nil {
		s = es.Color(t, a, s)
	}
	return writeString(w, s)
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

// Quote renders s as a JSON string literal. Named escapes cover the quote,
// backslash, and the usual control characters; any other control character
// becomes \u00XX; everything else, including non-ASCII and the forward
// slash, is emitted verbatim.
func Quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			if r < 0x20 {
				fmt.Fprintf(&sb, `\u%04x`, r)
			} else {
				sb.WriteRune(r)
			}
		}
	}
	sb.WriteByte('"')
	return sb.String()
}
