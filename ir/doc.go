// Package ir provides the in-memory tree of BML documents.
//
// # Overview
//
// A BML document parses into a tree of *Node values rooted at a *Document.
// The tree holds no positions and no comments from the input; it is purely
// the content: data lines and named children.
//
// # Node Kinds
//
// Every node is one of
//
//   - RootKind: the synthetic top level container, owned by a Document
//   - ElementKind: a named node with data lines, attributes and elements
//   - AttributeKind: a named leaf with at most one data line, rendered on
//     its parent's header line
//
// # Children
//
// Children are an ordered multimap from name to node. Iteration follows
// append order across all names, duplicate names are kept, and Named
// returns the children of one name in their relative order:
//
//	doc, _ := parse.ParseString("0:a\n1:b\n2:c\n1:d\n3:e\n")
//	for name, n := range doc.All() {
//	    fmt.Println(name, n.Value())
//	}
//	ones := doc.Named("1") // b, d
//
// Attribute children always form a prefix of an element's children.
//
// # Data
//
// Data lines are kept in order. Value joins them with newlines and panics if
// there are none; LookupValue is the checked form.
//
// # Indentation
//
// The Document carries the Indent policy used when encoding: a unit string
// repeated once per nesting level on top of a base repeat for top level
// elements. SetIndent exists only on Document, so it cannot be applied to an
// element or attribute.
//
// # Equality
//
// Two nodes are Equal when their data lines and children are equal. Kinds,
// attribute quoting and indentation do not take part.
//
// # Thread Safety
//
// Trees are append only during construction and read only afterwards.
// Concurrent readers are safe once all SetIndent calls have completed.
//
// # Related Packages
//
//   - github.com/bml-format/go-bml/parse - Parses text into a Document
//   - github.com/bml-format/go-bml/encode - Encodes a Document to text
//   - github.com/bml-format/go-bml/query - Path and expression queries
package ir
