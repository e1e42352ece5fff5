package encode

import (
	"testing"

	"github.com/fgoni/json-assistant/ir"
	"github.com/fgoni/json-assistant/parse"
	"github.com/google/go-cmp/cmp"
)

func TestEncodeGolden(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"null", `null`, "null"},
		{"bool", `true`, "true"},
		{"number keeps text", `1e14`, "1e14"},
		{"string", `"hi"`, `"hi"`},
		{"empty object", `{}`, "{}"},
		{"empty array", `[]`, "[]"},
		{
			"object",
			`{"b":1,"a":"x"}`,
			"{\n    \"b\": 1,\n    \"a\": \"x\"\n}",
		},
		{
			"array",
			`[1,2]`,
			"[\n    1,\n    2\n]",
		},
		{
			"nested",
			`{"a":{"b":[true]}}`,
			"{\n    \"a\": {\n        \"b\": [\n            true\n        ]\n    }\n}",
		},
		{
			"empty containers inline",
			`{"a":{},"b":[]}`,
			"{\n    \"a\": {},\n    \"b\": []\n}",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n, err := parse.ParseString(tt.in)
			if err != nil {
				t.Fatal(err)
			}
			got, err := String(n)
			if err != nil {
				t.Fatal(err)
			}
			if d := cmp.Diff(tt.want, got); d != "" {
				t.Errorf("output (-want +got):\n%s", d)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`plain`, `"plain"`},
		{"a\"b", `"a\"b"`},
		{`a\b`, `"a\\b"`},
		{"\b\f\n\r\t", `"\b\f\n\r\t"`},
		{"\x01", `"\u0001"`},
		{"\x1f", `"\u001f"`},
		{"a/b", `"a/b"`}, // forward slash stays verbatim
		{"héllo 世界", `"héllo 世界"`},
	}
	for _, tt := range tests {
		if got := Quote(tt.in); got != tt.want {
			t.Errorf("Quote(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		`null`,
		`true`,
		`-12.5e3`,
		`"a \"quoted\" string with \\ and \t"`,
		`[]`,
		`{}`,
		`{"b":1,"a":2,"c":[1,2,3]}`,
		`{"users":[{"name":"Ann"},{"name":"Bob"}]}`,
		`{"deep":{"deeper":{"deepest":[null,false,{"x":[]}]}}}`,
		"{\"unicode\":\"héllo 世界\",\"ctl\":\"\u0001\"}",
	}
	for _, in := range inputs {
		orig, err := parse.ParseString(in)
		if err != nil {
			t.Fatalf("parse %q: %v", in, err)
		}
		text := MustString(orig)
		again, err := parse.ParseString(text)
		if err != nil {
			t.Fatalf("reparse of %q output %q: %v", in, text, err)
		}
		if !ir.Equal(orig, again) {
			t.Errorf("round trip of %q not equal; formatted:\n%s", in, text)
		}
	}
}

func TestEncodeUnknownType(t *testing.T) {
	n := &ir.Node{Type: ir.Type(99)}
	if _, err := String(n); err == nil {
		t.Error("expected error for unknown type")
	}
}
