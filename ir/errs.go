package ir

import "errors"

var (
	ErrIndent = errors.New("invalid indent")
)
