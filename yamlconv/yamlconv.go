// Package yamlconv exports BML trees as YAML.
//
// Children with distinct names become an ordered mapping. When names repeat,
// the children become a sequence of one-key mappings so that no child and no
// order is lost. A node with both data and children keeps its data under the
// ":" key, which no BML name can collide with.
package yamlconv

import (
	"github.com/bml-format/go-bml/ir"

	"github.com/goccy/go-yaml"
)

// DataKey holds the data of a node that also has children.
const DataKey = ":"

// Marshal renders doc as YAML.
func Marshal(doc *ir.Document) ([]byte, error) {
	return yaml.MarshalWithOptions(children(doc.Root()),
		yaml.Indent(2),
		yaml.UseLiteralStyleIfMultiline(true))
}

// Value returns the YAML value of n: nil, a string, a yaml.MapSlice or a
// []any of single item yaml.MapSlice values.
func Value(n *ir.Node) any {
	if n.Len() == 0 {
		v, ok := n.LookupValue()
		if !ok {
			return nil
		}
		return v
	}
	return children(n)
}

func children(n *ir.Node) any {
	var (
		m    yaml.MapSlice
		seen = map[string]bool{}
		dup  bool
	)
	if v, ok := n.LookupValue(); ok {
		m = append(m, yaml.MapItem{Key: DataKey, Value: v})
		seen[DataKey] = true
	}
	for name, c := range n.All() {
		dup = dup || seen[name]
		seen[name] = true
		m = append(m, yaml.MapItem{Key: name, Value: Value(c)})
	}
	if !dup {
		if m == nil {
			return yaml.MapSlice{}
		}
		return m
	}
	seq := make([]any, len(m))
	for i, item := range m {
		seq[i] = yaml.MapSlice{item}
	}
	return seq
}
