package arena

import "errors"

var ErrUnknownOpponent = errors.New("arena: unknown opponent")
