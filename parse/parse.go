package parse

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/fgoni/json-assistant/ir"
)

// Parse parses one JSON value from d. Trailing non-whitespace content after
// the value is an error.
func Parse(d []byte) (*ir.Node, error) {
	return ParseString(string(d))
}

func ParseString(s string) (*ir.Node, error) {
	p := &parser{runes: []rune(s)}
	p.skipSpace()
	n, err := p.value()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if !p.eof() {
		return nil, p.unexpected()
	}
	return n, nil
}

// parser is a cursor over the input's Unicode scalars. Positions reported in
// diagnostics are 1-based scalar counts from the start of the input.
type parser struct {
	runes []rune
	i     int
}

func (p *parser) eof() bool {
	return p.i >= len(p.runes)
}

func (p *parser) pos() int {
	return p.i + 1
}

// skipSpace uses the permissive unicode.IsSpace test rather than strict
// JSON's space/tab/CR/LF set.
func (p *parser) skipSpace() {
	for !p.eof() && unicode.IsSpace(p.runes[p.i]) {
		p.i++
	}
}

func (p *parser) unexpected() *Error {
	return &Error{Err: ErrUnexpectedChar, Pos: p.pos(), Char: p.runes[p.i]}
}

func eofErr() *Error {
	return &Error{Err: ErrUnexpectedEOF}
}

func (p *parser) value() (*ir.Node, error) {
	if p.eof() {
		return nil, eofErr()
	}
	c := p.runes[p.i]
	switch {
	case c == '{':
		return p.object()
	case c == '[':
		return p.array()
	case c == '"':
		return p.string()
	case isNumberRune(c):
		return p.number()
	case unicode.IsLetter(c):
		return p.literal()
	default:
		return nil, p.unexpected()
	}
}

func (p *parser) object() (*ir.Node, error) {
	p.i++ // consume {
	obj := ir.NewObject()
	p.skipSpace()
	if p.eof() {
		return nil, eofErr()
	}
	if p.runes[p.i] == '}' {
		p.i++
		return obj, nil
	}
	for {
		p.skipSpace()
		if p.eof() {
			return nil, eofErr()
		}
		if p.runes[p.i] != '"' {
			return nil, p.unexpected()
		}
		key, err := p.string()
		if err != nil {
			return nil, err
		}
		p.skipSpace()
		if p.eof() {
			return nil, eofErr()
		}
		if p.runes[p.i] != ':' {
			return nil, p.unexpected()
		}
		p.i++
		p.skipSpace()
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		// duplicate keys overwrite in place, keeping the first slot
		obj.Set(key.String, val)
		p.skipSpace()
		if p.eof() {
			return nil, eofErr()
		}
		switch p.runes[p.i] {
		case ',':
			p.i++
		case '}':
			p.i++
			return obj, nil
		default:
			return nil, p.unexpected()
		}
	}
}

func (p *parser) array() (*ir.Node, error) {
	p.i++ // consume [
	arr := &ir.Node{Type: ir.ArrayType}
	p.skipSpace()
	if p.eof() {
		return nil, eofErr()
	}
	if p.runes[p.i] == ']' {
		p.i++
		return arr, nil
	}
	for {
		p.skipSpace()
		val, err := p.value()
		if err != nil {
			return nil, err
		}
		arr.Values = append(arr.Values, val)
		p.skipSpace()
		if p.eof() {
			return nil, eofErr()
		}
		switch p.runes[p.i] {
		case ',':
			p.i++
		case ']':
			p.i++
			return arr, nil
		default:
			return nil, p.unexpected()
		}
	}
}

func (p *parser) string() (*ir.Node, error) {
	p.i++ // consume "
	var sb strings.Builder
	for {
		if p.eof() {
			return nil, eofErr()
		}
		c := p.runes[p.i]
		switch c {
		case '"':
			p.i++
			return ir.FromString(sb.String()), nil
		case '\\':
			r, err := p.escape()
			if err != nil {
				return nil, err
			}
			sb.WriteRune(r)
		default:
			sb.WriteRune(c)
			p.i++
		}
	}
}

// escape decodes one escape sequence starting at the backslash. A \uXXXX
// escape yields a single code point; UTF-16 surrogate halves are not
// combined.
func (p *parser) escape() (rune, error) {
	pos := p.pos()
	p.i++ // consume backslash
	if p.eof() {
		return 0, eofErr()
	}
	c := p.runes[p.i]
	p.i++
	switch c {
	case '"':
		return '"', nil
	case '\\':
		return '\\', nil
	case '/':
		return '/', nil
	case 'b':
		return '\b', nil
	case 'f':
		return '\f', nil
	case 'n':
		return '\n', nil
	case 'r':
		return '\r', nil
	case 't':
		return '\t', nil
	case 'u':
		if p.i+4 > len(p.runes) {
			return 0, eofErr()
		}
		hex := string(p.runes[p.i : p.i+4])
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, &Error{Err: ErrInvalidLiteral, Pos: pos, Text: `\u` + hex}
		}
		p.i += 4
		return rune(v), nil
	default:
		return 0, &Error{Err: ErrInvalidLiteral, Pos: pos, Text: `\` + string(c)}
	}
}

func isNumberRune(c rune) bool {
	switch {
	case c >= '0' && c <= '9':
		return true
	case c == '-' || c == '+' || c == '.' || c == 'e' || c == 'E':
		return true
	}
	return false
}

// number greedily captures the numeric character class and validates the
// slice afterwards.
func (p *parser) number() (*ir.Node, error) {
	pos := p.pos()
	start := p.i
	for !p.eof() && isNumberRune(p.runes[p.i]) {
		p.i++
	}
	text := string(p.runes[start:p.i])
	if _, err := strconv.ParseFloat(text, 64); err != nil {
		return nil, &Error{Err: ErrInvalidNumber, Pos: pos, Text: text}
	}
	return ir.FromNumber(text), nil
}

func (p *parser) literal() (*ir.Node, error) {
	pos := p.pos()
	start := p.i
	for !p.eof() && unicode.IsLetter(p.runes[p.i]) {
		p.i++
	}
	switch word := string(p.runes[start:p.i]); word {
	case "true":
		return ir.FromBool(true), nil
	case "false":
		return ir.FromBool(false), nil
	case "null":
		return ir.Null(), nil
	default:
		return nil, &Error{Err: ErrInvalidLiteral, Pos: pos, Text: word}
	}
}
