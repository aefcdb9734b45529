package repl

import "errors"

// Sentinel errors.
var (
	ErrOutOfBounds    = errors.New("index out of range")
	ErrReadInput      = errors.New("failed to read input")
	ErrUnknownCommand = errors.New("unknown command (try :help)")
)
