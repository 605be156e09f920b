package track

import "errors"

var ErrTooFewCheckpoints = errors.New("track: a loop needs at least 2 checkpoints")
