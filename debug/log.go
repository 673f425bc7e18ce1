package debug

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/bml-format/go-bml/ir"
)

var render func(name string, n *ir.Node) (string, error)

// SetRender installs the function used by BML to render nodes as text. The
// encode package installs its encoder when it is linked in.
func SetRender(f func(name string, n *ir.Node) (string, error)) {
	render = f
}

// BML renders a node as BML text. Without a renderer, or when rendering
// fails, it falls back to Summary.
type BML struct {
	Name string
	*ir.Node
}

func (b BML) String() string {
	if b.Node == nil {
		return "<nil>"
	}
	if render != nil {
		if s, err := render(b.Name, b.Node); err == nil {
			return s
		}
	}
	return Summary{b.Node}.String()
}

// Summary renders a node on one line as kind, quoted data lines and child
// names.
type Summary struct{ *ir.Node }

func (n Summary) String() string {
	x := n.Node
	if x == nil {
		return "<nil>"
	}
	var b strings.Builder
	b.WriteString(x.Kind().String())
	b.WriteString("{")
	for i, ln := range x.Lines() {
		if i > 0 {
			b.WriteString(" ")
		}
		b.WriteString(strconv.Quote(ln))
	}
	if x.Len() > 0 {
		if x.HasData() {
			b.WriteString(" ")
		}
		b.WriteString("[")
		i := 0
		for name := range x.All() {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(name)
			i++
		}
		b.WriteString("]")
	}
	b.WriteString("}")
	return b.String()
}

func Logf(msg string, args ...any) {
	for i := range args {
		a := args[i]
		switch x := a.(type) {
		case map[string]any, []any, []string:
			d, err := json.MarshalIndent(a, "   |", "  ")
			if err != nil {
				args[i] = fmt.Sprintf("%v", a)
				continue
			}
			args[i] = string(d)
		case *ir.Node:
			args[i] = BML{Node: x}.String()
		case *ir.Document:
			if x == nil {
				args[i] = "<nil>"
				continue
			}
			args[i] = BML{Node: x.Root()}.String()
		case bool, string, float64, int:

		default:
		}
	}
	fmt.Fprintf(out, msg, args...)
}
