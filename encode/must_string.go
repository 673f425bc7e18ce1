package encode

import (
	"bytes"

	"github.com/bml-format/go-bml/debug"
	"github.com/bml-format/go-bml/ir"
)

func init() {
	debug.SetRender(nodeString)
}

func MustString(doc *ir.Document, opts ...EncodeOption) string {
	buf := bytes.NewBuffer(nil)
	if err := Encode(doc, buf, opts...); err != nil {
		panic(err)
	}
	return buf.String()
}

func nodeString(name string, n *ir.Node) (string, error) {
	buf := bytes.NewBuffer(nil)
	if err := EncodeNode(name, n, buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
