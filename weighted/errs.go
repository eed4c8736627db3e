package weighted

import "errors"

// ErrEmptyDistribution is returned when a distribution has no candidate
// with a positive numeric weight.
var ErrEmptyDistribution = errors.New("empty distribution")
