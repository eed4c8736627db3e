package tree

import "errors"

var (
	ErrNotMapping  = errors.New("not a mapping")
	ErrNotSequence = errors.New("not a sequence")
	ErrInvalid     = errors.New("invalid node")
)
