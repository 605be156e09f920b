package sim

import "errors"

var (
	ErrInvalidMap = errors.New("sim: a map needs at least 2 checkpoints")
	ErrMatchOver  = errors.New("sim: match is over")
)
