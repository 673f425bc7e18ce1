package token

import "strings"

// Rule labels a production.
type Rule int

const (
	RNode Rule = iota
	RName
	RData
	RAttr
	RQuotedData
	RSpaceData
	REOI
)

func (r Rule) String() string {
	s, ok := map[Rule]string{
		RNode:       "node",
		RName:       "name",
		RData:       "data",
		RAttr:       "attr",
		RQuotedData: "quoted-data",
		RSpaceData:  "space-delimited-data",
		REOI:        "end of input",
	}[r]
	if ok {
		return s
	}
	return "<unknown rule>"
}

// Pair is one production with its nested productions.
//
// Text holds the name for RName, the value for RData, RQuotedData and
// RSpaceData, and is empty otherwise. Indent holds the leading whitespace of
// the line an RNode or a block RData was found on.
type Pair struct {
	Rule   Rule
	Text   string
	Indent string
	Pos    *Pos
	Inner  []Pair
}

func (p *Pair) Info() string {
	if p.Pos == nil {
		return p.Rule.String()
	}
	return p.Rule.String() + " " + p.Pos.String()
}

// String renders p and its inner pairs compactly, for tests and debugging.
func (p *Pair) String() string {
	var b strings.Builder
	p.write(&b)
	return b.String()
}

func (p *Pair) write(b *strings.Builder) {
	b.WriteString(p.Rule.String())
	if p.Text != "" {
		b.WriteString("(")
		b.WriteString(p.Text)
		b.WriteString(")")
	}
	if len(p.Inner) == 0 {
		return
	}
	b.WriteString("[")
	for i := range p.Inner {
		if i > 0 {
			b.WriteString(" ")
		}
		p.Inner[i].write(b)
	}
	b.WriteString("]")
}
