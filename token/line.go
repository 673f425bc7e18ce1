package token

import (
	"bytes"
	"strings"
)

type lineKind int

const (
	lineSkip lineKind = iota
	lineNode
	lineData
)

// line is one scanned input line. For lineNode, pair is the RNode with its
// name, attributes and inline data; for lineData it is the RData.
type line struct {
	kind   lineKind
	indent string
	inline bool
	pair   Pair
}

func isBlank(c byte) bool {
	return c == ' ' || c == '\t'
}

func isNameByte(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	return c == '-' || c == '.' || c == '_'
}

// IsName reports whether s can be written as an element or attribute name.
func IsName(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isNameByte(s[i]) {
			return false
		}
	}
	return true
}

// IsBareValue reports whether s can be written as an unquoted attribute
// value.
func IsBareValue(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if isBlank(s[i]) || s[i] == '"' || s[i] == '\n' || s[i] == '\r' {
			return false
		}
	}
	return true
}

// IsQuotedValue reports whether s can be written as a quoted attribute
// value.
func IsQuotedValue(s string) bool {
	return !strings.ContainsAny(s, "\"\n")
}

func trimBlankLeft(d []byte) []byte {
	i := 0
	for i < len(d) && isBlank(d[i]) {
		i++
	}
	return d[i:]
}

// scanLine scans d[start:end], which excludes the line terminator. Trailing
// carriage returns are dropped.
func scanLine(pd *PosDoc, d []byte, start, end int) (line, error) {
	text := d[start:end]
	text = bytes.TrimRight(text, "\r")
	i := 0
	for i < len(text) && isBlank(text[i]) {
		i++
	}
	ln := line{indent: string(text[:i])}
	if i == len(text) || bytes.HasPrefix(text[i:], []byte("//")) {
		return ln, nil
	}
	if text[i] == ':' {
		ln.kind = lineData
		ln.pair = Pair{
			Rule:   RData,
			Text:   string(trimBlankLeft(text[i+1:])),
			Indent: ln.indent,
			Pos:    pd.Pos(start + i),
		}
		return ln, nil
	}
	name, k := scanName(text, i)
	if k == i {
		return ln, ExpectedErr(ErrName, pd.Pos(start+i), RNode, RData)
	}
	ln.kind = lineNode
	ln.pair = Pair{
		Rule:   RNode,
		Indent: ln.indent,
		Pos:    pd.Pos(start + i),
		Inner:  []Pair{{Rule: RName, Text: name, Pos: pd.Pos(start + i)}},
	}
	if k < len(text) && text[k] == ':' {
		ln.inline = true
		ln.pair.Inner = append(ln.pair.Inner, Pair{
			Rule: RData,
			Text: string(trimBlankLeft(text[k+1:])),
			Pos:  pd.Pos(start + k),
		})
		return ln, nil
	}
	for {
		sep := k
		for k < len(text) && isBlank(text[k]) {
			k++
		}
		if k == len(text) {
			return ln, nil
		}
		if k == sep {
			return ln, UnexpectedErr(ErrUnexpected, "'"+string(text[k])+"'", pd.Pos(start+k))
		}
		if text[k] == ':' {
			if len(ln.pair.Inner) == 1 {
				return ln, UnexpectedErr(ErrData, "':' after blanks following name", pd.Pos(start+k))
			}
			return ln, UnexpectedErr(ErrData, "inline data after attributes", pd.Pos(start+k))
		}
		attr, next, err := scanAttr(pd, text, start, k)
		if err != nil {
			return ln, err
		}
		ln.pair.Inner = append(ln.pair.Inner, attr)
		k = next
	}
}

func scanName(text []byte, i int) (string, int) {
	k := i
	for k < len(text) && isNameByte(text[k]) {
		k++
	}
	return string(text[i:k]), k
}

// scanAttr scans name, name=value or name="value" at text[k].
func scanAttr(pd *PosDoc, text []byte, start, k int) (Pair, int, error) {
	name, j := scanName(text, k)
	if j == k {
		return Pair{}, k, ExpectedErr(ErrName, pd.Pos(start+k), RAttr)
	}
	attr := Pair{
		Rule:  RAttr,
		Pos:   pd.Pos(start + k),
		Inner: []Pair{{Rule: RName, Text: name, Pos: pd.Pos(start + k)}},
	}
	if j == len(text) || text[j] != '=' {
		return attr, j, nil
	}
	j++
	if j < len(text) && text[j] == '"' {
		q := j + 1
		e := bytes.IndexByte(text[q:], '"')
		if e < 0 {
			return Pair{}, j, NewTokenizeErr(ErrUnterminated, pd.Pos(start+j))
		}
		v := string(text[q : q+e])
		attr.Inner = append(attr.Inner, Pair{
			Rule:  RData,
			Text:  v,
			Pos:   pd.Pos(start + j),
			Inner: []Pair{{Rule: RQuotedData, Text: v, Pos: pd.Pos(start + q)}},
		})
		return attr, q + e + 1, nil
	}
	v := j
	for j < len(text) && !isBlank(text[j]) && text[j] != '"' {
		j++
	}
	if j == v {
		return Pair{}, j, ExpectedErr(ErrValue, pd.Pos(start+j), RQuotedData, RSpaceData)
	}
	if j < len(text) && text[j] == '"' {
		return Pair{}, j, UnexpectedErr(ErrValue, "'\"' in unquoted value", pd.Pos(start+j))
	}
	val := string(text[v:j])
	attr.Inner = append(attr.Inner, Pair{
		Rule:  RData,
		Text:  val,
		Pos:   pd.Pos(start + v),
		Inner: []Pair{{Rule: RSpaceData, Text: val, Pos: pd.Pos(start + v)}},
	})
	return attr, j, nil
}
