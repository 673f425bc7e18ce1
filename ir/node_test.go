package ir

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func elem(lines ...string) *Node {
	return NewElement(lines)
}

func pairs(n *Node) [][2]string {
	var res [][2]string
	for name, c := range n.All() {
		v, _ := c.LookupValue()
		res = append(res, [2]string{name, v})
	}
	return res
}

func TestMultimapOrder(t *testing.T) {
	m := multimap[string, int]{}
	for i, k := range []string{"0", "1", "2", "1", "3"} {
		m.append(k, i)
	}
	if m.len() != 5 {
		t.Fatalf("len = %d, want 5", m.len())
	}
	if diff := cmp.Diff([]int{1, 3}, m.getAll("1")); diff != "" {
		t.Errorf("getAll(1) mismatch (-want +got):\n%s", diff)
	}
	if got := m.getAll("4"); got != nil {
		t.Errorf("getAll(4) = %v, want nil", got)
	}
	if v, ok := m.first("1"); !ok || v != 1 {
		t.Errorf("first(1) = %d, %t", v, ok)
	}
	if m.count("1") != 2 || m.count("x") != 0 {
		t.Errorf("count mismatch")
	}
	k, v := m.at(4)
	if k != "3" || v != 4 {
		t.Errorf("at(4) = %s, %d", k, v)
	}
}

func TestNodeChildrenOrder(t *testing.T) {
	doc := NewDocument(
		Child{"0", elem("a")},
		Child{"1", elem("b")},
		Child{"2", elem("c")},
		Child{"1", elem("d")},
		Child{"3", elem("e")},
	)
	want := [][2]string{{"0", "a"}, {"1", "b"}, {"2", "c"}, {"1", "d"}, {"3", "e"}}
	if diff := cmp.Diff(want, pairs(doc.Root())); diff != "" {
		t.Errorf("children mismatch (-want +got):\n%s", diff)
	}
	if doc.Len() != 5 {
		t.Errorf("Len() = %d, want 5", doc.Len())
	}
	var got []string
	for _, n := range doc.Named("1") {
		got = append(got, n.Value())
	}
	if diff := cmp.Diff([]string{"b", "d"}, got); diff != "" {
		t.Errorf("Named(1) mismatch (-want +got):\n%s", diff)
	}
	var back []string
	for name := range doc.Backward() {
		back = append(back, name)
	}
	if diff := cmp.Diff([]string{"3", "1", "2", "1", "0"}, back); diff != "" {
		t.Errorf("Backward mismatch (-want +got):\n%s", diff)
	}
}

func TestNodeValueAndLines(t *testing.T) {
	n := elem("Primary web-facing server", "Provides commerce-related functionality")
	if got, want := n.Value(), "Primary web-facing server\nProvides commerce-related functionality"; got != want {
		t.Errorf("Value() = %q, want %q", got, want)
	}
	if diff := cmp.Diff([]string{"Primary web-facing server", "Provides commerce-related functionality"}, n.Lines()); diff != "" {
		t.Errorf("Lines() mismatch (-want +got):\n%s", diff)
	}
	empty := elem()
	if empty.Lines() != nil {
		t.Errorf("Lines() of empty node = %v", empty.Lines())
	}
	if _, ok := empty.LookupValue(); ok {
		t.Errorf("LookupValue() of empty node reported a value")
	}
	blank := elem("")
	if v, ok := blank.LookupValue(); !ok || v != "" {
		t.Errorf("LookupValue() of blank line = %q, %t", v, ok)
	}
}

func TestValuePanicsWithoutData(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("Value() on node without data did not panic")
		}
	}()
	_ = elem().Value()
}

func TestAttrsPrefix(t *testing.T) {
	n := NewElement(nil,
		Child{"host", NewAttribute(true, "proxy.example.com")},
		Child{"port", NewAttribute(false, "8080")},
		Child{"authentication", elem("plain")},
	)
	if len(n.Attrs()) != 2 || len(n.Elems()) != 1 {
		t.Fatalf("attrs/elems = %d/%d, want 2/1", len(n.Attrs()), len(n.Elems()))
	}
	if !n.Attrs()[0].Node.Quote() || n.Attrs()[1].Node.Quote() {
		t.Errorf("quote flags not kept")
	}
	if n.Elems()[0].Node.Quote() {
		t.Errorf("element reports quote")
	}
}

func TestConstructionPanics(t *testing.T) {
	tests := []struct {
		name string
		f    func()
	}{
		{"attribute after element", func() {
			NewElement(nil, Child{"a", elem()}, Child{"b", NewAttribute(true)})
		}},
		{"newline in data", func() { elem("a\nb") }},
		{"two attribute lines", func() { NewAttribute(true, "a", "b") }},
		{"attribute at root", func() { NewDocument(Child{"a", NewAttribute(true)}) }},
		{"root as child", func() { NewElement(nil, Child{"r", NewDocument().Root()}) }},
		{"nil child", func() { NewElement(nil, Child{"x", nil}) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Errorf("no panic")
				}
			}()
			tt.f()
		})
	}
}

func TestEqualIgnoresKindAndQuote(t *testing.T) {
	a := NewElement([]string{"x"}, Child{"k", NewAttribute(true, "v")})
	b := NewElement([]string{"x"}, Child{"k", NewAttribute(false, "v")})
	if !a.Equal(b) {
		t.Errorf("nodes differing only in quoting are not equal")
	}
	c := NewElement([]string{"x"}, Child{"k", elem("v")})
	if !a.Equal(c) {
		t.Errorf("nodes differing only in kind are not equal")
	}
	d := NewElement([]string{"y"}, Child{"k", elem("v")})
	if a.Equal(d) {
		t.Errorf("nodes with different data are equal")
	}
	e := NewElement([]string{"x"}, Child{"j", elem("v")})
	if a.Equal(e) {
		t.Errorf("nodes with different child names are equal")
	}
}

func TestDocumentIndent(t *testing.T) {
	d1 := NewDocument(Child{"a", elem("1")})
	d2 := NewDocument(Child{"a", elem("1")})
	if d1.Indent() != DefaultIndent {
		t.Errorf("Indent() = %#v, want default", d1.Indent())
	}
	d2.SetIndent("\t", 1)
	if got := d2.Indent(); got.Unit != "\t" || got.Repeat != 1 {
		t.Errorf("Indent() = %#v after SetIndent", got)
	}
	if !d1.Equal(d2) {
		t.Errorf("indent took part in equality")
	}
	if got := d2.Indent().Next().String(); got != "\t\t" {
		t.Errorf("Next().String() = %q", got)
	}
}

func TestSetIndentPanics(t *testing.T) {
	for _, i := range []Indent{{Unit: ""}, {Unit: "x"}, {Unit: " ", Repeat: -1}} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("SetIndent(%q, %d) did not panic", i.Unit, i.Repeat)
				}
			}()
			NewDocument().SetIndent(i.Unit, i.Repeat)
		}()
	}
}

func TestKindText(t *testing.T) {
	for _, k := range Kinds() {
		d, err := k.MarshalText()
		if err != nil {
			t.Fatal(err)
		}
		var got Kind
		if err := got.UnmarshalText(d); err != nil {
			t.Fatal(err)
		}
		if got != k {
			t.Errorf("%s round tripped to %s", k, got)
		}
	}
	var k Kind
	if err := k.UnmarshalText([]byte("Comment")); err == nil {
		t.Errorf("expected error for unknown kind")
	}
}
