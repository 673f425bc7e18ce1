package libdiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Edit is a run of lines that are equal, inserted or deleted.
type Edit struct {
	Op    Op
	Lines []string
}

// Lines computes a line diff from from to to.
func Lines(from, to string) []Edit {
	diffCfg := diffpatch.New()
	a, b, lines := diffCfg.DiffLinesToChars(from, to)
	diffs := diffCfg.DiffMain(a, b, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	res := make([]Edit, 0, len(diffs))
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		case diffpatch.DiffEqual:
			op = Equal
		}
		res = append(res, Edit{Op: op, Lines: splitLines(diff.Text)})
	}
	return res
}

func splitLines(s string) []string {
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return []string{""}
	}
	return strings.Split(s, "\n")
}

// Changed reports whether any edit inserts or deletes.
func Changed(edits []Edit) bool {
	for i := range edits {
		if edits[i].Op != Equal {
			return true
		}
	}
	return false
}

// Write prints edits with a "--- from" / "+++ to" header, one line per
// diffed line prefixed by ' ', '+' or '-'.
func Write(w io.Writer, fromName, toName string, edits []Edit, colored bool) error {
	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	hdr := color.New(color.Bold)
	for _, c := range []*color.Color{del, ins, hdr} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	if _, err := fmt.Fprintf(w, "%s\n%s\n", hdr.Sprint("--- "+fromName), hdr.Sprint("+++ "+toName)); err != nil {
		return err
	}
	for _, e := range edits {
		for _, ln := range e.Lines {
			s := e.Op.prefix() + ln
			switch e.Op {
			case Insert:
				s = ins.Sprint(s)
			case Delete:
				s = del.Sprint(s)
			}
			if _, err := io.WriteString(w, s+"\n"); err != nil {
				return err
			}
		}
	}
	return nil
}
