package bus

import "errors"

var (
	ErrEmptyEventType = errors.New("bus: empty event type")
	ErrNilHandler     = errors.New("bus: nil handler")
	ErrNilEvent       = errors.New("bus: nil event")
)
