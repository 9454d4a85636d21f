package catalog

import "errors"

var (
	ErrUnknownType       = errors.New("unknown type")
	ErrUnknownGeneration = errors.New("unknown generation")
	ErrUnknownRecord     = errors.New("unknown record")
	ErrUnknownAction     = errors.New("unknown action")
)
