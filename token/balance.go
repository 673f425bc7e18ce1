package token

import "strings"

// frame is an open node on the indentation stack. The root frame has a nil
// pair.
type frame struct {
	pair     *Pair
	indent   string
	child    string
	hasChild bool
	inline   bool
}

// accepts reports whether a line indented by s is a child of f.
func (f *frame) accepts(s string) bool {
	if f.hasChild {
		return s == f.child
	}
	if f.pair == nil {
		return true
	}
	return len(s) > len(f.indent) && strings.HasPrefix(s, f.indent)
}

// balancer nests lines into pairs by comparing indents on a stack.
type balancer struct {
	stack []*frame
	top   []Pair
}

func newBalancer() *balancer {
	return &balancer{stack: []*frame{{}}}
}

// add places the next node or data line under the deepest open node that
// accepts its indent, closing deeper nodes on the way.
func (b *balancer) add(ln *line) error {
	for {
		f := b.stack[len(b.stack)-1]
		if f.accepts(ln.indent) {
			break
		}
		if f.pair == nil {
			return NewTokenizeErr(ErrIndent, ln.pair.Pos)
		}
		b.pop()
	}
	f := b.stack[len(b.stack)-1]
	f.hasChild = true
	f.child = ln.indent
	switch ln.kind {
	case lineData:
		if f.pair == nil {
			return UnexpectedErr(ErrData, "data outside of a node", ln.pair.Pos)
		}
		if f.inline {
			return UnexpectedErr(ErrData, "data lines after inline data", ln.pair.Pos)
		}
		f.pair.Inner = append(f.pair.Inner, ln.pair)
	case lineNode:
		p := ln.pair
		b.stack = append(b.stack, &frame{pair: &p, indent: ln.indent, inline: ln.inline})
	}
	return nil
}

func (b *balancer) pop() {
	n := len(b.stack) - 1
	f := b.stack[n]
	b.stack = b.stack[:n]
	parent := b.stack[n-1]
	if parent.pair == nil {
		b.top = append(b.top, *f.pair)
		return
	}
	parent.pair.Inner = append(parent.pair.Inner, *f.pair)
}

// close pops all open nodes and returns the top level pairs.
func (b *balancer) close() []Pair {
	for len(b.stack) > 1 {
		b.pop()
	}
	return b.top
}
