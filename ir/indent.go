package ir

import (
	"fmt"
	"strings"
)

// Indent describes how nesting is rendered: Unit repeated Repeat times.
type Indent struct {
	Unit   string
	Repeat int
}

// DefaultIndent is two spaces per level with no root indent.
var DefaultIndent = Indent{Unit: "  "}

// Next returns the indent one level deeper.
func (i Indent) Next() Indent {
	i.Repeat++
	return i
}

func (i Indent) String() string {
	return strings.Repeat(i.Unit, i.Repeat)
}

// Check returns an error wrapping ErrIndent if i cannot be encoded such
// that the output parses back to the same nesting.
func (i Indent) Check() error {
	switch {
	case i.Unit == "":
		return fmt.Errorf("%w: empty unit", ErrIndent)
	case strings.Trim(i.Unit, " \t") != "":
		return fmt.Errorf("%w: unit %q is not blank", ErrIndent, i.Unit)
	case i.Repeat < 0:
		return fmt.Errorf("%w: negative repeat %d", ErrIndent, i.Repeat)
	}
	return nil
}
