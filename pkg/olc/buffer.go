package olc

import "fmt"

// maxCodeBytes is the longest legal code: every digit plus the separator.
const maxCodeBytes = MaxDigitCount + 1

// codeBuf accumulates a code on the stack before it is handed to the caller.
type codeBuf struct {
	b [maxCodeBytes]byte
	n int
}

func (c *codeBuf) put(b byte) {
	c.b[c.n] = b
	c.n++
}

func (c *codeBuf) String() string {
	return string(c.b[:c.n])
}

// copyTo copies the code into dst. dst is left untouched if it is too short.
func (c *codeBuf) copyTo(dst []byte) (int, error) {
	if c.n > len(dst) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, c.n, len(dst))
	}
	return copy(dst, c.b[:c.n]), nil
}

// copyString copies s into dst with the same all-or-nothing rule as copyTo.
func copyString(dst []byte, s string) (int, error) {
	if len(s) > len(dst) {
		return 0, fmt.Errorf("%w: need %d bytes, have %d", ErrBufferTooSmall, len(s), len(dst))
	}
	return copy(dst, s), nil
}
