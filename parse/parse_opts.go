package parse

import (
	"github.com/bml-format/go-bml/ir"
	"github.com/bml-format/go-bml/token"
)

type parseOpts struct {
	positions map[*ir.Node]*token.Pos
	indent    bool
}

type ParseOption func(*parseOpts)

// ParsePositions records the position of every element and attribute in m.
func ParsePositions(m map[*ir.Node]*token.Pos) ParseOption {
	return func(o *parseOpts) {
		o.positions = m
	}
}

// ParseIndent sets the indentation policy of the result to the one used by
// the input, when it can be detected.
func ParseIndent() ParseOption {
	return func(o *parseOpts) { o.indent = true }
}

// GetPositions extracts the positions map from the provided options.
func GetPositions(opts ...ParseOption) map[*ir.Node]*token.Pos {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	return pOpts.positions
}
