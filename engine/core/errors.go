package core

import (
	"errors"
)

var (
	ErrUnknownMode   = errors.New("unknown emitter mode")
	ErrUnknownShape  = errors.New("unknown shape")
	ErrUnknownFormat = errors.New("unknown output format")
	ErrInvalidConfig = errors.New("invalid configuration")
)
