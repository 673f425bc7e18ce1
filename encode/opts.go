package encode

import "github.com/bml-format/go-bml/ir"

type EncodeOption func(*EncState)

// EncodeIndent overrides the indentation policy of the document for one
// call. The tree is not modified.
func EncodeIndent(unit string, repeat int) EncodeOption {
	return func(es *EncState) {
		es.indent = ir.Indent{Unit: unit, Repeat: repeat}
	}
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}
