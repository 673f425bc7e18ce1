package encode

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/bml-format/go-bml/debug"
	"github.com/bml-format/go-bml/ir"
	"github.com/bml-format/go-bml/parse"
	"github.com/google/go-cmp/cmp"
)

func el(lines ...string) *ir.Node {
	return ir.NewElement(lines)
}

func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		doc  *ir.Document
		want string
	}{
		{
			name: "empty",
			doc:  ir.NewDocument(),
			want: "",
		},
		{
			name: "inline",
			doc:  ir.NewDocument(ir.Child{Name: "port", Node: el("80")}),
			want: "port: 80\n",
		},
		{
			name: "empty inline value",
			doc:  ir.NewDocument(ir.Child{Name: "port", Node: el("")}),
			want: "port:\n",
		},
		{
			name: "block",
			doc:  ir.NewDocument(ir.Child{Name: "description", Node: el("one", "two")}),
			want: "description\n  :one\n  :two\n",
		},
		{
			name: "separated",
			doc: ir.NewDocument(
				ir.Child{Name: "a", Node: el()},
				ir.Child{Name: "b", Node: ir.NewElement(nil, ir.Child{Name: "c", Node: el("1")})},
			),
			want: "a\n\nb\n  c: 1\n",
		},
		{
			name: "attributes",
			doc: ir.NewDocument(ir.Child{Name: "proxy", Node: ir.NewElement(nil,
				ir.Child{Name: "host", Node: ir.NewAttribute(true, "proxy.example.com")},
				ir.Child{Name: "port", Node: ir.NewAttribute(false, "8080")},
				ir.Child{Name: "secure", Node: ir.NewAttribute(false)},
				ir.Child{Name: "authentication", Node: el("plain")},
			)}),
			want: "proxy host=\"proxy.example.com\" port=8080 secure\n  authentication: plain\n",
		},
		{
			name: "attribute with one data line is block",
			doc: ir.NewDocument(ir.Child{Name: "a", Node: ir.NewElement([]string{"v"},
				ir.Child{Name: "x", Node: ir.NewAttribute(false, "1")},
			)}),
			want: "a x=1\n  :v\n",
		},
		{
			name: "bare value needing quotes",
			doc: ir.NewDocument(ir.Child{Name: "a", Node: ir.NewElement(nil,
				ir.Child{Name: "x", Node: ir.NewAttribute(false, "two words")},
				ir.Child{Name: "y", Node: ir.NewAttribute(false, "")},
			)}),
			want: "a x=\"two words\" y=\"\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(tt.doc, &buf); err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, buf.String()); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
			doc, err := parse.Parse(buf.Bytes())
			if err != nil {
				t.Fatalf("output does not parse: %v", err)
			}
			if !doc.Equal(tt.doc) {
				t.Errorf("round trip changed the tree:\n%s", buf.String())
			}
		})
	}
}

func TestEncodeIndent(t *testing.T) {
	src := "a\n  b\n    :x\n    :y\n  c: 1\n"
	tests := []struct {
		unit   string
		repeat int
		want   string
	}{
		{"  ", 0, src},
		{"\t", 0, "a\n\tb\n\t\t:x\n\t\t:y\n\tc: 1\n"},
		{"\t", 1, "\ta\n\t\tb\n\t\t\t:x\n\t\t\t:y\n\t\tc: 1\n"},
		{"    ", 0, "a\n    b\n        :x\n        :y\n    c: 1\n"},
	}
	for _, tt := range tests {
		doc, err := parse.ParseString(src)
		if err != nil {
			t.Fatal(err)
		}
		doc.SetIndent(tt.unit, tt.repeat)
		got := MustString(doc)
		if diff := cmp.Diff(tt.want, got); diff != "" {
			t.Errorf("SetIndent(%q, %d) mismatch (-want +got):\n%s", tt.unit, tt.repeat, diff)
		}
		again, err := parse.ParseString(got)
		if err != nil {
			t.Fatalf("SetIndent(%q, %d) output does not parse: %v", tt.unit, tt.repeat, err)
		}
		if !again.Equal(doc) {
			t.Errorf("SetIndent(%q, %d) round trip changed the tree", tt.unit, tt.repeat)
		}
	}
}

func TestEncodeIndentOption(t *testing.T) {
	doc, err := parse.ParseString("a\n  b: 1\n")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := MustString(doc, EncodeIndent("\t", 0)), "a\n\tb: 1\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	if doc.Indent() != ir.DefaultIndent {
		t.Errorf("EncodeIndent modified the document: %#v", doc.Indent())
	}
	var buf bytes.Buffer
	if err := Encode(doc, &buf, EncodeIndent("x", 0)); !errors.Is(err, ErrEncoding) || !errors.Is(err, ir.ErrIndent) {
		t.Errorf("invalid indent error = %v", err)
	}
}

func TestEncodeErrors(t *testing.T) {
	tests := []struct {
		name string
		doc  *ir.Document
	}{
		{"empty name", ir.NewDocument(ir.Child{Name: "", Node: el()})},
		{"name with blank", ir.NewDocument(ir.Child{Name: "a b", Node: el()})},
		{"attribute name", ir.NewDocument(ir.Child{Name: "a", Node: ir.NewElement(nil,
			ir.Child{Name: "x=y", Node: ir.NewAttribute(true)})})},
		{"quote in value", ir.NewDocument(ir.Child{Name: "a", Node: ir.NewElement(nil,
			ir.Child{Name: "x", Node: ir.NewAttribute(true, `say "hi"`)})})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Encode(tt.doc, &bytes.Buffer{})
			if !errors.Is(err, ErrEncoding) {
				t.Errorf("error = %v, want %v", err, ErrEncoding)
			}
		})
	}
}

func TestEncodeNode(t *testing.T) {
	doc, err := parse.ParseString("a x=\"1\"\n  b: 2\n")
	if err != nil {
		t.Fatal(err)
	}
	a, _ := doc.First("a")
	x, _ := a.First("x")
	tests := []struct {
		name string
		n    *ir.Node
		want string
	}{
		{"a", a, "a x=\"1\"\n  b: 2\n"},
		{"x", x, " x=\"1\""},
		{"ignored", doc.Root(), "a x=\"1\"\n  b: 2\n"},
	}
	for _, tt := range tests {
		var buf bytes.Buffer
		if err := EncodeNode(tt.name, tt.n, &buf); err != nil {
			t.Fatal(err)
		}
		if got := buf.String(); got != tt.want {
			t.Errorf("EncodeNode(%s) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestDebugRendersBML(t *testing.T) {
	doc, err := parse.ParseString("a x=\"1\"\n  b: 2\n")
	if err != nil {
		t.Fatal(err)
	}
	a, _ := doc.First("a")
	tests := []struct {
		v    debug.BML
		want string
	}{
		{debug.BML{Name: "a", Node: a}, "a x=\"1\"\n  b: 2\n"},
		{debug.BML{Node: doc.Root()}, "a x=\"1\"\n  b: 2\n"},
		{debug.BML{Node: a}, `Element{[x b]}`},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("BML{%q}.String() = %q, want %q", tt.v.Name, got, tt.want)
		}
	}
}

func TestEncodeColors(t *testing.T) {
	doc, err := parse.ParseString("a x=1\n  :v\n")
	if err != nil {
		t.Fatal(err)
	}
	marks := &Colors{
		Default: colorDefault,
		Map: map[Colorable]func(string, ...any) string{
			{Kind: ir.ElementKind, Attr: NameColor}:   func(s string, _ ...any) string { return "<" + s + ">" },
			{Kind: ir.AttributeKind, Attr: ValueColor}: func(s string, _ ...any) string { return "[" + s + "]" },
		},
	}
	got := MustString(doc, EncodeColors(marks))
	if want := "<a> x=[1]\n  :v\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
	plain := MustString(doc, EncodeColors(NewColors()))
	if !strings.Contains(plain, "a") {
		t.Errorf("colored output lost content: %q", plain)
	}
}
