package protocol

import "errors"

var (
	ErrMalformedLine = errors.New("protocol: malformed line")
	ErrInvalidInit   = errors.New("protocol: invalid init block")
)
