package names

import "errors"

var ErrMapping = errors.New("bad name mapping")
