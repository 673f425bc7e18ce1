// Package hclconv exports BML trees as HCL.
//
// Attributes and elements without attributes or nested elements become HCL
// attributes with string values, or null when they carry no data. Repeated
// leaf names collapse into one tuple valued attribute at the position of the
// first. Every other element becomes a block; its own data, if any, is the
// "_" attribute of the block.
package hclconv

import (
	"errors"
	"fmt"

	"github.com/bml-format/go-bml/ir"

	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/hashicorp/hcl/v2/hclwrite"
	"github.com/zclconf/go-cty/cty"
)

// DataAttr names the attribute holding the data of a block.
const DataAttr = "_"

var ErrName = errors.New("not an HCL identifier")

// Marshal renders doc as formatted HCL.
func Marshal(doc *ir.Document) ([]byte, error) {
	f := hclwrite.NewEmptyFile()
	if err := fill(f.Body(), doc.Root()); err != nil {
		return nil, err
	}
	return hclwrite.Format(f.Bytes()), nil
}

func isLeaf(n *ir.Node) bool {
	return n.Kind() == ir.AttributeKind || n.Len() == 0
}

func value(n *ir.Node) cty.Value {
	v, ok := n.LookupValue()
	if !ok {
		return cty.NullVal(cty.String)
	}
	return cty.StringVal(v)
}

func fill(body *hclwrite.Body, n *ir.Node) error {
	var (
		order  []string
		leaves = map[string][]cty.Value{}
	)
	if n.Kind() != ir.RootKind && n.HasData() {
		if n.Count(DataAttr) > 0 {
			return fmt.Errorf("%w: %q is taken by data", ErrName, DataAttr)
		}
		order = append(order, DataAttr)
		leaves[DataAttr] = []cty.Value{value(n)}
	}
	for name, c := range n.All() {
		if !hclsyntax.ValidIdentifier(name) {
			return fmt.Errorf("%w: %q", ErrName, name)
		}
		if !isLeaf(c) {
			continue
		}
		if _, ok := leaves[name]; !ok {
			order = append(order, name)
		}
		leaves[name] = append(leaves[name], value(c))
	}
	for _, name := range order {
		vs := leaves[name]
		if len(vs) == 1 {
			body.SetAttributeValue(name, vs[0])
			continue
		}
		body.SetAttributeValue(name, cty.TupleVal(vs))
	}
	for name, c := range n.All() {
		if isLeaf(c) {
			continue
		}
		block := body.AppendNewBlock(name, nil)
		if err := fill(block.Body(), c); err != nil {
			return err
		}
	}
	return nil
}
