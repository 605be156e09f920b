package geometry

import "errors"

var ErrZeroVector = errors.New("geometry: zero-length vector has no direction")
