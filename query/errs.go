package query

import "errors"

var (
	ErrPath     = errors.New("invalid path")
	ErrNotFound = errors.New("no such node")
	ErrQuery    = errors.New("invalid query")
)
