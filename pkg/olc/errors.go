package olc

import "errors"

var (
	// ErrInvalidCode is returned for strings that are not legal codes, or
	// codes of the wrong kind for the requested operation.
	ErrInvalidCode = errors.New("olc: invalid code")

	// ErrBufferTooSmall is returned when the caller's buffer cannot hold the result.
	ErrBufferTooSmall = errors.New("olc: buffer too small")
)
