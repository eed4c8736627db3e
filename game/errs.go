package game

import "errors"

var ErrNoGame = errors.New("no game")
