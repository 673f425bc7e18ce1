package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bml-format/go-bml/ir"
	"github.com/bml-format/go-bml/token"
)

// Step is one path component: the Index'th child called Name.
type Step struct {
	Name  string
	Index int
}

func (s Step) String() string {
	if s.Index == 0 {
		return s.Name
	}
	return s.Name + "[" + strconv.Itoa(s.Index) + "]"
}

// ParsePath splits p into steps.
func ParsePath(p string) ([]Step, error) {
	if p == "" {
		return nil, fmt.Errorf("%w: empty path", ErrPath)
	}
	parts := strings.Split(p, "/")
	res := make([]Step, 0, len(parts))
	for _, part := range parts {
		s, err := parseStep(part)
		if err != nil {
			return nil, fmt.Errorf("%w in %q", err, p)
		}
		res = append(res, s)
	}
	return res, nil
}

func parseStep(part string) (Step, error) {
	name, idx, found := strings.Cut(part, "[")
	if !token.IsName(name) {
		return Step{}, fmt.Errorf("%w: bad name %q", ErrPath, name)
	}
	if !found {
		return Step{Name: name}, nil
	}
	digits, ok := strings.CutSuffix(idx, "]")
	if !ok {
		return Step{}, fmt.Errorf("%w: unterminated index in %q", ErrPath, part)
	}
	i, err := strconv.Atoi(digits)
	if err != nil || i < 0 {
		return Step{}, fmt.Errorf("%w: bad index in %q", ErrPath, part)
	}
	return Step{Name: name, Index: i}, nil
}

// Get follows path from n.
func Get(n *ir.Node, path string) (*ir.Node, error) {
	steps, err := ParsePath(path)
	if err != nil {
		return nil, err
	}
	return GetSteps(n, steps)
}

func GetSteps(n *ir.Node, steps []Step) (*ir.Node, error) {
	for i, s := range steps {
		named := n.Named(s.Name)
		if s.Index >= len(named) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, joinSteps(steps[:i+1]))
		}
		n = named[s.Index]
	}
	return n, nil
}

func joinSteps(steps []Step) string {
	parts := make([]string, len(steps))
	for i, s := range steps {
		parts[i] = s.String()
	}
	return strings.Join(parts, "/")
}
