package apperror

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid game configuration")
	ErrIllegalMove          = errors.New("illegal move")
	ErrGameFinished         = errors.New("game is already finished")
	ErrUnknownAction        = errors.New("unknown action")
)
