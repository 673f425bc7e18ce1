package query

import (
	"fmt"

	"github.com/bml-format/go-bml/debug"
	"github.com/bml-format/go-bml/ir"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
)

// Env is what a Select expression evaluates against, once per node.
type Env struct {
	Name     string
	Value    string
	HasValue bool
	Lines    []string
	Attrs    map[string]string
	Depth    int
	Path     string
	Kind     string

	node *ir.Node
}

// Child returns the value of the first child called name, or "".
func (e Env) Child(name string) string {
	c, ok := e.node.First(name)
	if !ok {
		return ""
	}
	v, _ := c.LookupValue()
	return v
}

// Has reports whether the node has a child called name.
func (e Env) Has(name string) bool {
	return e.node.Count(name) > 0
}

// Match is a selected node and its path from the starting node.
type Match struct {
	Path string
	Name string
	Node *ir.Node
}

// Compile checks src as a boolean predicate over Env.
func Compile(src string) (*vm.Program, error) {
	prg, err := expr.Compile(src, expr.Env(Env{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrQuery, err)
	}
	if debug.Query() {
		debug.Logf("compiled %q\n", src)
	}
	return prg, nil
}

// Select returns the descendants of n, depth first in document order, for
// which src evaluates to true. n itself is not a candidate.
func Select(n *ir.Node, src string) ([]Match, error) {
	prg, err := Compile(src)
	if err != nil {
		return nil, err
	}
	var res []Match
	err = walk(n, "", 0, func(path string, depth int, name string, c *ir.Node) error {
		env := newEnv(path, depth, name, c)
		out, err := expr.Run(prg, env)
		if err != nil {
			return fmt.Errorf("%w: at %s: %w", ErrQuery, path, err)
		}
		if ok, _ := out.(bool); ok {
			if debug.Query() {
				debug.LogAny(env)
			}
			res = append(res, Match{Path: path, Name: name, Node: c})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

func newEnv(path string, depth int, name string, n *ir.Node) Env {
	v, ok := n.LookupValue()
	env := Env{
		Name:     name,
		Value:    v,
		HasValue: ok,
		Lines:    n.Lines(),
		Attrs:    map[string]string{},
		Depth:    depth,
		Path:     path,
		Kind:     n.Kind().String(),
		node:     n,
	}
	for _, a := range n.Attrs() {
		if _, dup := env.Attrs[a.Name]; dup {
			continue
		}
		env.Attrs[a.Name], _ = a.Node.LookupValue()
	}
	return env
}

// walk visits the children of n with paths that Get accepts.
func walk(n *ir.Node, prefix string, depth int, f func(string, int, string, *ir.Node) error) error {
	seen := map[string]int{}
	for name, c := range n.All() {
		s := Step{Name: name, Index: seen[name]}
		seen[name]++
		path := s.String()
		if prefix != "" {
			path = prefix + "/" + path
		}
		if err := f(path, depth, name, c); err != nil {
			return err
		}
		if err := walk(c, path, depth+1, f); err != nil {
			return err
		}
	}
	return nil
}
