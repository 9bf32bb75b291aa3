package xmltree

import (
	"strings"
	"testing"

	binderrors "github.com/jacoelho/xmlbind/errors"
)

func TestParseYAML(t *testing.T) {
	root, err := ParseYAML(strings.NewReader(`
Header:
  "@version": "2"
  Instrument: SWAP
  ID: 42
  Empty: ~
  Tag:
    - X
    - "#text": Y
      "@kind": b
  Diary:
    Entry: &e
      Text: first
    Copy: *e
`))
	if err != nil {
		t.Fatalf("ParseYAML() error = %v", err)
	}
	if root.Name != "Header" {
		t.Fatalf("root name = %q, want Header", root.Name)
	}
	if v, ok := root.Attr("version"); !ok || v != "2" {
		t.Fatalf("Attr(version) = (%q, %v)", v, ok)
	}

	var names []string
	for _, e := range root.Elements() {
		names = append(names, e.Name)
	}
	if got := strings.Join(names, ","); got != "Instrument,ID,Empty,Tag,Tag,Diary" {
		t.Fatalf("element names = %q", got)
	}
	if got := root.Child("ID").Value; got != "42" {
		t.Fatalf("ID = %q, want 42", got)
	}
	if got := root.Child("Empty"); got == nil || got.Value != "" {
		t.Fatalf("Empty = %+v, want empty element", got)
	}
	tags := root.Elements()[3:5]
	if tags[0].Value != "X" || tags[1].Value != "Y" {
		t.Fatalf("tags = %q, %q, want X, Y", tags[0].Value, tags[1].Value)
	}
	if v, _ := tags[1].Attr("kind"); v != "b" {
		t.Fatalf("second tag kind = %q, want b", v)
	}
	copied := root.Child("Diary").Child("Copy").Child("Text")
	if copied == nil || copied.Value != "first" {
		t.Fatalf("alias not resolved: %+v", copied)
	}
}

func TestParseYAMLErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		code  binderrors.Code
	}{
		{name: "empty", input: "", code: binderrors.CodeNoRoot},
		{name: "two roots", input: "a: 1\nb: 2\n", code: binderrors.CodeNoRoot},
		{name: "scalar document", input: "hello\n", code: binderrors.CodeNoRoot},
		{name: "sequence root", input: "a:\n  - 1\n  - 2\n", code: binderrors.CodeNoRoot},
		{name: "syntax", input: "a: [1, 2\n", code: binderrors.CodeParse},
		{name: "attribute mapping", input: "a:\n  \"@x\":\n    y: 1\n", code: binderrors.CodeParse},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseYAML(strings.NewReader(tc.input))
			if err == nil {
				t.Fatalf("expected error")
			}
			c, ok := binderrors.AsChain(err)
			if !ok {
				t.Fatalf("error %T is not a chain", err)
			}
			if c.Code != tc.code {
				t.Fatalf("code = %v, want %v (%v)", c.Code, tc.code, err)
			}
		})
	}
}
