package rules

import "errors"

var (
	ErrBadRule   = errors.New("bad rule")
	ErrUnknownOp = errors.New("unknown op")
)
