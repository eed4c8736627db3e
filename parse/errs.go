package parse

import (
	"errors"
	"fmt"
)

var (
	ErrParse       = errors.New("parse error")
	ErrUnsupported = fmt.Errorf("%w: unsupported node", ErrParse)
)
