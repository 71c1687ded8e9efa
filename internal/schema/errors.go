package schema

import "errors"

var (
	ErrNotFound    = errors.New("field not found")
	ErrNotNested   = errors.New("field is not nested")
	ErrUnknownKind = errors.New("unknown field kind")
)
