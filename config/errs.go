package config

import "errors"

var ErrConfig = errors.New("config error")
