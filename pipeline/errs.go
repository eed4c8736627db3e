package pipeline

import "errors"

var ErrProcessList = errors.New("bad process list")
