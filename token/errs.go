package token

import (
	"errors"
	"fmt"
)

var (
	ErrIndent       = errors.New("inconsistent indentation")
	ErrUnterminated = errors.New("unterminated")
	ErrName         = errors.New("bad name")
	ErrValue        = errors.New("bad attribute value")
	ErrData         = errors.New("misplaced data")
	ErrUnexpected   = errors.New("unexpected input")
)

// TokenizeErr is a syntax error at a position, optionally naming the
// productions that would have been accepted there.
type TokenizeErr struct {
	Err      error
	Pos      Pos
	Expected []Rule
}

func (t *TokenizeErr) Unwrap() error {
	return t.Err
}

func NewTokenizeErr(e error, p *Pos) *TokenizeErr {
	return &TokenizeErr{Err: e, Pos: *p}
}

func (e *TokenizeErr) Error() string {
	return fmt.Sprintf("%s at %s", e.Err.Error(), e.Pos.String())
}

func ExpectedErr(e error, p *Pos, rules ...Rule) error {
	te := NewTokenizeErr(fmt.Errorf("%w: expected %s", e, rulesString(rules)), p)
	te.Expected = rules
	return te
}

func UnexpectedErr(e error, what string, p *Pos) error {
	return NewTokenizeErr(fmt.Errorf("%w: unexpected %s", e, what), p)
}

func rulesString(rules []Rule) string {
	switch len(rules) {
	case 0:
		return "nothing"
	case 1:
		return rules[0].String()
	}
	res := ""
	for i, r := range rules {
		switch {
		case i == len(rules)-1:
			res += " or "
		case i > 0:
			res += ", "
		}
		res += r.String()
	}
	return res
}
