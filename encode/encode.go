package encode

import (
	"fmt"
	"io"

	"github.com/bml-format/go-bml/debug"
	"github.com/bml-format/go-bml/ir"
	"github.com/bml-format/go-bml/token"
)

type EncState struct {
	indent ir.Indent

	Color func(ir.Kind, ColorAttr, string) string
}

func newEncState(indent ir.Indent, opts []EncodeOption) (*EncState, error) {
	es := &EncState{indent: indent}
	for _, opt := range opts {
		opt(es)
	}
	if err := es.indent.Check(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrEncoding, err)
	}
	return es, nil
}

// Encode writes doc to w. Top level elements are written at the document's
// indent unless EncodeIndent is given.
func Encode(doc *ir.Document, w io.Writer, opts ...EncodeOption) error {
	es, err := newEncState(doc.Indent(), opts)
	if err != nil {
		return err
	}
	return encodeChildren(doc.Root(), w, es)
}

// EncodeNode writes a single named node at the top level. A root is
// written as a document, an attribute as its " name=value" fragment.
func EncodeNode(name string, n *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es, err := newEncState(ir.DefaultIndent, opts)
	if err != nil {
		return err
	}
	switch n.Kind() {
	case ir.RootKind:
		return encodeChildren(n, w, es)
	case ir.AttributeKind:
		return encodeAttr(name, n, w, es)
	}
	return encodeElement(name, n, es.indent, w, es)
}

func encodeChildren(root *ir.Node, w io.Writer, es *EncState) error {
	i := 0
	for name, n := range root.All() {
		if i > 0 {
			if err := writeString(w, "\n"); err != nil {
				return err
			}
		}
		if err := encodeElement(name, n, es.indent, w, es); err != nil {
			return err
		}
		i++
	}
	return nil
}

func encodeElement(name string, n *ir.Node, in ir.Indent, w io.Writer, es *EncState) error {
	if debug.Encode() {
		debug.Logf("encode element %s at %q\n", name, in.String())
	}
	if err := checkName(name); err != nil {
		return err
	}
	if err := writeString(w, in.String()+es.color(ir.ElementKind, NameColor, name)); err != nil {
		return err
	}
	attrs := n.Attrs()
	for _, a := range attrs {
		if err := encodeAttr(a.Name, a.Node, w, es); err != nil {
			return err
		}
	}
	next := in.Next()
	lines := n.Lines()
	if len(attrs) == 0 && len(lines) == 1 {
		if err := writeInline(lines[0], w, es); err != nil {
			return err
		}
	} else {
		if err := writeString(w, "\n"); err != nil {
			return err
		}
		for _, ln := range lines {
			d := next.String() + es.color(ir.ElementKind, SepColor, ":") + es.color(ir.ElementKind, ValueColor, ln)
			if err := writeString(w, d+"\n"); err != nil {
				return err
			}
		}
	}
	for _, c := range n.Elems() {
		if err := encodeElement(c.Name, c.Node, next, w, es); err != nil {
			return err
		}
	}
	return nil
}

func writeInline(v string, w io.Writer, es *EncState) error {
	s := es.color(ir.ElementKind, SepColor, ":")
	if v != "" {
		s += " " + es.color(ir.ElementKind, ValueColor, v)
	}
	return writeString(w, s+"\n")
}

// encodeAttr writes " name", " name=value" or ` name="value"`. A value that
// would not parse back bare is quoted.
func encodeAttr(name string, n *ir.Node, w io.Writer, es *EncState) error {
	if err := checkName(name); err != nil {
		return err
	}
	s := " " + es.color(ir.AttributeKind, NameColor, name)
	v, ok := n.LookupValue()
	if !ok {
		return writeString(w, s)
	}
	s += es.color(ir.AttributeKind, SepColor, "=")
	switch {
	case !n.Quote() && token.IsBareValue(v):
		s += es.color(ir.AttributeKind, ValueColor, v)
	case token.IsQuotedValue(v):
		q := es.color(ir.AttributeKind, QuoteColor, `"`)
		s += q + es.color(ir.AttributeKind, ValueColor, v) + q
	default:
		return fmt.Errorf("%w: attribute %s value %q cannot be quoted", ErrEncoding, name, v)
	}
	return writeString(w, s)
}

func checkName(name string) error {
	if !token.IsName(name) {
		return fmt.Errorf("%w: invalid name %q", ErrEncoding, name)
	}
	return nil
}

func (es *EncState) color(k ir.Kind, a ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(k, a, s)
}

func writeString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}
