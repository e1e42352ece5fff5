package parse

import (
	"errors"
	"testing"

	"github.com/fgoni/json-assistant/ir"
	"github.com/google/go-cmp/cmp"
)

type parseTest struct {
	in string
	e  error
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{in: `null`},
		{in: `true`},
		{in: `false`},
		{in: `22`},
		{in: `-3.5`},
		{in: `1e14`},
		{in: `"hello"`},
		{in: `""`},
		{in: `"é"`},
		{in: `"tab\there"`},
		{in: `[]`},
		{in: `[1]`},
		{in: `[[]]`},
		{in: `[1,[2,[3]]]`},
		{in: `{}`},
		{in: `{"a":1}`},
		{in: `{"a":{"b":[true,null]}}`},
		{in: "  {\n\t\"a\" : 1 ,\n \"b\" : [ ] }  "},
	}
	for _, pt := range pts {
		if _, err := ParseString(pt.in); err != nil {
			t.Errorf("ParseString(%q): %v", pt.in, err)
		}
	}
}

func TestParseErrors(t *testing.T) {
	pts := []parseTest{
		{in: ``, e: ErrUnexpectedEOF},
		{in: `{`, e: ErrUnexpectedEOF},
		{in: `[1,`, e: ErrUnexpectedEOF},
		{in: `"abc`, e: ErrUnexpectedEOF},
		{in: `{"a"`, e: ErrUnexpectedEOF},
		{in: `{"a":`, e: ErrUnexpectedEOF},
		{in: `{,}`, e: ErrUnexpectedChar},
		{in: `{"a" 1}`, e: ErrUnexpectedChar},
		{in: `[1 2]`, e: ErrUnexpectedChar},
		{in: `true x`, e: ErrUnexpectedChar},
		{in: `@`, e: ErrUnexpectedChar},
		{in: `tru`, e: ErrInvalidLiteral},
		{in: `nul`, e: ErrInvalidLiteral},
		{in: `"\x"`, e: ErrInvalidLiteral},
		{in: `"\u12g4"`, e: ErrInvalidLiteral},
		{in: `1.2.3`, e: ErrInvalidNumber},
		{in: `-`, e: ErrInvalidNumber},
		{in: `e12`, e: ErrInvalidNumber},
	}
	for _, pt := range pts {
		_, err := ParseString(pt.in)
		if err == nil {
			t.Errorf("ParseString(%q): expected error %v", pt.in, pt.e)
			continue
		}
		if !errors.Is(err, pt.e) {
			t.Errorf("ParseString(%q): got %v, want %v", pt.in, err, pt.e)
		}
	}
}

func TestErrorPositions(t *testing.T) {
	tests := []struct {
		in  string
		pos int
	}{
		{`{,}`, 2},
		{`[1 2]`, 4},
		{`true x`, 6},
		{`@`, 1},
	}
	for _, tt := range tests {
		_, err := ParseString(tt.in)
		var pe *Error
		if !errors.As(err, &pe) {
			t.Fatalf("ParseString(%q): no *Error, got %v", tt.in, err)
		}
		if pe.Pos != tt.pos {
			t.Errorf("ParseString(%q): pos = %d, want %d", tt.in, pe.Pos, tt.pos)
		}
	}
}

func TestEOFHasNoPosition(t *testing.T) {
	_, err := ParseString(`{`)
	var pe *Error
	if !errors.As(err, &pe) {
		t.Fatalf("no *Error, got %v", err)
	}
	if pe.Pos != 0 {
		t.Errorf("pos = %d, want 0", pe.Pos)
	}
}

func TestKeyOrderPreserved(t *testing.T) {
	n, err := ParseString(`{"b":1,"a":2}`)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"b", "a"}, n.Keys()); d != "" {
		t.Errorf("keys (-want +got):\n%s", d)
	}
}

func TestDuplicateKeyInPlace(t *testing.T) {
	n, err := ParseString(`{"a":1,"z":0,"a":2}`)
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff([]string{"a", "z"}, n.Keys()); d != "" {
		t.Errorf("keys (-want +got):\n%s", d)
	}
	if got := n.Get("a").Number; got != "2" {
		t.Errorf("a = %s, want 2", got)
	}
}

func TestStringEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`"\" \\ \/ \b \f \n \r \t"`, "\" \\ / \b \f \n \r \t"},
		{`"A"`, "A"},
		{`"é"`, "é"},
		{`"世"`, "世"},
		{`"plain"`, "plain"},
	}
	for _, tt := range tests {
		n, err := ParseString(tt.in)
		if err != nil {
			t.Errorf("ParseString(%q): %v", tt.in, err)
			continue
		}
		if n.String != tt.want {
			t.Errorf("ParseString(%q) = %q, want %q", tt.in, n.String, tt.want)
		}
	}
}

func TestValues(t *testing.T) {
	n, err := ParseString(`{"users":[{"name":"Ann"},{"name":"Bob"}],"n":2,"ok":true,"none":null}`)
	if err != nil {
		t.Fatal(err)
	}
	if n.Type != ir.ObjectType {
		t.Fatalf("type = %v", n.Type)
	}
	users := n.Get("users")
	if users.Type != ir.ArrayType || users.Len() != 2 {
		t.Fatalf("users = %+v", users)
	}
	if got := users.Values[0].Get("name").String; got != "Ann" {
		t.Errorf("name = %q, want Ann", got)
	}
	if got := n.Get("n").Number; got != "2" {
		t.Errorf("n = %s", got)
	}
	if got := n.Get("ok"); got.Type != ir.BoolType || !got.Bool {
		t.Errorf("ok = %+v", got)
	}
	if got := n.Get("none"); got.Type != ir.NullType {
		t.Errorf("none = %+v", got)
	}
}
