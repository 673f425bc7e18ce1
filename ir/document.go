package ir

import "fmt"

// Document is the root of a BML tree. It is the only node carrying an
// indentation policy, and the only one whose policy can change after
// construction.
type Document struct {
	*Node
	indent Indent
}

// NewDocument creates a document holding the given top level elements with
// the default indentation policy.
//
// NewDocument panics if a child is not an element.
func NewDocument(children ...Child) *Document {
	return &Document{
		Node:   newNode(RootKind, nil, children),
		indent: DefaultIndent,
	}
}

// Root returns the root node of d.
func (d *Document) Root() *Node {
	return d.Node
}

// Indent returns the indentation policy of d.
func (d *Document) Indent() Indent {
	return d.indent
}

// SetIndent sets the indent unit of nested levels and the number of units
// preceding top level elements. The default is two spaces and no root indent;
// the usual alternative is "\t" and 0.
//
// SetIndent only changes how d is encoded. It is not safe to call while other
// goroutines read d.
//
// SetIndent panics if unit is empty or contains characters other than spaces
// and tabs, or if repeat is negative.
func (d *Document) SetIndent(unit string, repeat int) {
	i := Indent{Unit: unit, Repeat: repeat}
	if err := i.Check(); err != nil {
		panic(fmt.Sprintf("bml: %v", err))
	}
	d.indent = i
}

// Equal reports whether d and o hold equal trees. Indentation is ignored.
func (d *Document) Equal(o *Document) bool {
	if d == nil || o == nil {
		return d == o
	}
	return d.Node.Equal(o.Node)
}
