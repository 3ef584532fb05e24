package game

import "errors"

var (
	ErrMalformedMove  = errors.New("malformed move")
	ErrIllegalMove    = errors.New("illegal move")
	ErrMalformedBoard = errors.New("malformed board")
)
