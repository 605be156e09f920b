package engine

import "errors"

var (
	ErrNilLedger        = errors.New("engine: nil checkpoint ledger")
	ErrIncompleteLedger = errors.New("engine: checkpoint loop is not closed")
)
