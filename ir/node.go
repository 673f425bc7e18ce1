package ir

import (
	"iter"
	"strings"
)

// Node is an element, attribute or root of a BML tree.
//
// Data lines are stored newline terminated in one string. Children are an
// ordered multimap from name to node; attributes are children too and always
// precede nested elements.
type Node struct {
	kind  Kind
	quote bool
	data  string
	nodes multimap[string, *Node]
}

// Child is a named child of a Node.
type Child struct {
	Name string
	Node *Node
}

// NewElement creates an element from its data lines and children. Attribute
// children must come before element children.
//
// NewElement panics if a line contains a newline, if an attribute follows an
// element child or if a child is a root.
func NewElement(lines []string, children ...Child) *Node {
	return newNode(ElementKind, lines, children)
}

// NewAttribute creates an attribute with at most one value line. quote
// selects the name="value" form over name=value when encoding.
//
// NewAttribute panics if more than one line is given or the line contains a
// newline.
func NewAttribute(quote bool, lines ...string) *Node {
	if len(lines) > 1 {
		panic("bml: attribute with more than one data line")
	}
	n := newNode(AttributeKind, lines, nil)
	n.quote = quote
	return n
}

func newNode(k Kind, lines []string, children []Child) *Node {
	n := &Node{kind: k}
	var b strings.Builder
	for _, ln := range lines {
		if strings.Contains(ln, "\n") {
			panic("bml: data line contains a newline")
		}
		b.WriteString(ln)
		b.WriteByte('\n')
	}
	n.data = b.String()
	for _, c := range children {
		n.append(c)
	}
	return n
}

func (n *Node) append(c Child) {
	switch {
	case c.Node == nil:
		panic("bml: nil child " + c.Name)
	case c.Node.kind == RootKind:
		panic("bml: root node cannot be a child")
	case n.kind == AttributeKind:
		panic("bml: attribute cannot have children")
	case n.kind == RootKind && c.Node.kind != ElementKind:
		panic("bml: root children must be elements")
	case c.Node.kind == AttributeKind && n.nodes.len() > 0:
		if _, last := n.nodes.at(n.nodes.len() - 1); last.kind != AttributeKind {
			panic("bml: attribute " + c.Name + " after element child")
		}
	}
	n.nodes.append(c.Name, c.Node)
}

func (n *Node) Kind() Kind {
	return n.kind
}

// Quote reports whether an attribute value is written quoted. It is false
// for nodes other than attributes.
func (n *Node) Quote() bool {
	return n.kind == AttributeKind && n.quote
}

// HasData reports whether n has at least one data line.
func (n *Node) HasData() bool {
	return n.data != ""
}

// Value returns the data lines joined by newlines.
//
// Value panics if n has no data lines; use LookupValue when that is not
// known.
func (n *Node) Value() string {
	if n.data == "" {
		panic("bml: Value called on node without data lines")
	}
	return n.data[:len(n.data)-1]
}

// LookupValue returns the value of n and whether n has any data lines.
func (n *Node) LookupValue() (string, bool) {
	if n.data == "" {
		return "", false
	}
	return n.data[:len(n.data)-1], true
}

// Lines returns the data lines of n, or nil if it has none.
func (n *Node) Lines() []string {
	if n.data == "" {
		return nil
	}
	return strings.Split(n.data[:len(n.data)-1], "\n")
}

// Len returns the number of direct children, attributes included.
func (n *Node) Len() int {
	return n.nodes.len()
}

// Children returns the direct children in append order.
func (n *Node) Children() []Child {
	res := make([]Child, n.nodes.len())
	for i := range res {
		res[i].Name, res[i].Node = n.nodes.at(i)
	}
	return res
}

// All iterates the direct children in append order.
func (n *Node) All() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for i := 0; i < n.nodes.len(); i++ {
			if !yield(n.nodes.at(i)) {
				return
			}
		}
	}
}

// Backward iterates the direct children in reverse append order.
func (n *Node) Backward() iter.Seq2[string, *Node] {
	return func(yield func(string, *Node) bool) {
		for i := n.nodes.len() - 1; i >= 0; i-- {
			if !yield(n.nodes.at(i)) {
				return
			}
		}
	}
}

// Named returns the children called name in append order.
//
// Complexity: O(1) to find the group plus O(k) to copy its k members.
func (n *Node) Named(name string) []*Node {
	return n.nodes.getAll(name)
}

// First returns the first child called name.
func (n *Node) First(name string) (*Node, bool) {
	return n.nodes.first(name)
}

// Count returns the number of children called name.
func (n *Node) Count(name string) int {
	return n.nodes.count(name)
}

// Attrs returns the attribute children, which form a prefix of Children.
func (n *Node) Attrs() []Child {
	return n.Children()[:n.attrLen()]
}

// Elems returns the element children following the attributes.
func (n *Node) Elems() []Child {
	return n.Children()[n.attrLen():]
}

func (n *Node) attrLen() int {
	i := 0
	for ; i < n.nodes.len(); i++ {
		if _, c := n.nodes.at(i); c.kind != AttributeKind {
			break
		}
	}
	return i
}

// Equal reports whether n and o have the same data lines and the same
// children in the same order. Kinds, quoting and indentation are not
// compared.
func (n *Node) Equal(o *Node) bool {
	if n == nil || o == nil {
		return n == o
	}
	if n.data != o.data {
		return false
	}
	return n.nodes.equal(&o.nodes, (*Node).Equal)
}
