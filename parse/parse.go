package parse

import (
	"fmt"
	"strings"

	"github.com/bml-format/go-bml/debug"
	"github.com/bml-format/go-bml/ir"
	"github.com/bml-format/go-bml/token"
)

func Parse(d []byte, opts ...ParseOption) (*ir.Document, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	pairs, err := token.Tokenize(d)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrParse, err)
	}
	var children []ir.Child
	for i := range pairs {
		p := &pairs[i]
		switch p.Rule {
		case token.RNode:
			children = append(children, parseNode(p, pOpts))
		case token.REOI:
		default:
			unreachable(p)
		}
	}
	doc := ir.NewDocument(children...)
	if pOpts.indent {
		if in, ok := detectIndent(pairs); ok {
			doc.SetIndent(in.Unit, in.Repeat)
		}
	}
	if debug.Parse() {
		debug.Logf("parsed with indent %q:\n%s\n", doc.Indent().Unit, debug.BML{Node: doc.Root()})
	}
	return doc, nil
}

func ParseString(s string, opts ...ParseOption) (*ir.Document, error) {
	return Parse([]byte(s), opts...)
}

func trackPos(node *ir.Node, pos *token.Pos, opts *parseOpts) {
	if opts.positions != nil && pos != nil {
		opts.positions[node] = pos
	}
}

// unreachable reports a production the tokenizer should never produce at
// this point.
func unreachable(p *token.Pair) {
	panic(fmt.Sprintf("%v: %s", errInternal, p.Info()))
}

func parseNode(p *token.Pair, opts *parseOpts) ir.Child {
	var (
		name     string
		lines    []string
		children []ir.Child
	)
	for i := range p.Inner {
		q := &p.Inner[i]
		switch q.Rule {
		case token.RName:
			name = q.Text
		case token.RData:
			lines = append(lines, q.Text)
		case token.RAttr:
			children = append(children, parseAttr(q, opts))
		case token.RNode:
			children = append(children, parseNode(q, opts))
		default:
			unreachable(q)
		}
	}
	n := ir.NewElement(lines, children...)
	trackPos(n, p.Pos, opts)
	if debug.Parse() {
		debug.Logf("node %s\n", debug.BML{Name: name, Node: n})
	}
	return ir.Child{Name: name, Node: n}
}

// parseAttr builds an attribute. A bare value anywhere makes the whole
// attribute unquoted.
func parseAttr(p *token.Pair, opts *parseOpts) ir.Child {
	var (
		name  string
		lines []string
		quote = true
	)
	for i := range p.Inner {
		q := &p.Inner[i]
		switch q.Rule {
		case token.RName:
			name = q.Text
		case token.RData:
			for j := range q.Inner {
				v := &q.Inner[j]
				switch v.Rule {
				case token.RSpaceData:
					quote = false
				case token.RQuotedData:
				default:
					unreachable(v)
				}
				lines = append(lines, v.Text)
			}
		default:
			unreachable(q)
		}
	}
	n := ir.NewAttribute(quote, lines...)
	trackPos(n, p.Pos, opts)
	return ir.Child{Name: name, Node: n}
}

// detectIndent derives the policy from the indent of the first top level
// node and the first nested line found under a top level node.
func detectIndent(pairs []token.Pair) (ir.Indent, bool) {
	if len(pairs) == 0 || pairs[0].Rule != token.RNode {
		return ir.Indent{}, false
	}
	base := pairs[0].Indent
	unit := ""
	for i := range pairs {
		if unit = nestedUnit(&pairs[i]); unit != "" {
			break
		}
	}
	switch {
	case unit == "" && base == "":
		return ir.Indent{}, false
	case unit == "":
		return ir.Indent{Unit: base, Repeat: 1}, true
	}
	n := strings.Count(base, unit)
	if strings.Repeat(unit, n) != base {
		n = 0
	}
	return ir.Indent{Unit: unit, Repeat: n}, true
}

func nestedUnit(p *token.Pair) string {
	for i := range p.Inner {
		q := &p.Inner[i]
		if q.Rule != token.RNode && q.Rule != token.RData {
			continue
		}
		if len(q.Indent) > len(p.Indent) {
			return q.Indent[len(p.Indent):]
		}
	}
	return ""
}
