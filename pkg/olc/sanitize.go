package olc

import "fmt"

// sanitized is a code that passed validation, along with its layout.
// The code is kept exactly as the caller wrote it; digits are read
// through significant, which skips the separator and stops at padding.
type sanitized struct {
	code string
	sep  int
	pad  int // -1 when the code is not padded
}

// sanitize checks that code is a structurally legal Open Location Code.
func sanitize(code string) (sanitized, error) {
	padFirst, padLast := -1, -1
	sepFirst, sepLast := -1, -1
	for i := 0; i < len(code); i++ {
		switch c := code[i]; {
		case c == Padding:
			if padFirst < 0 {
				padFirst = i
			}
			padLast = i
		case c == Separator:
			if sepFirst < 0 {
				sepFirst = i
			}
			sepLast = i
		case symbolDigit(c) < 0:
			return sanitized{}, fmt.Errorf("%w: illegal character %q at %d", ErrInvalidCode, c, i)
		}
	}

	n := len(code)
	switch {
	case n == 0:
		return sanitized{}, fmt.Errorf("%w: empty code", ErrInvalidCode)
	case sepFirst < 0:
		return sanitized{}, fmt.Errorf("%w: missing separator", ErrInvalidCode)
	case sepLast != sepFirst:
		return sanitized{}, fmt.Errorf("%w: more than one separator", ErrInvalidCode)
	case n == 1:
		return sanitized{}, fmt.Errorf("%w: separator without digits", ErrInvalidCode)
	}

	// Separators only sit on pair boundaries within the first eight digits.
	if sepFirst > separatorPosition || sepFirst%2 == 1 {
		return sanitized{}, fmt.Errorf("%w: separator at position %d", ErrInvalidCode, sepFirst)
	}

	if padFirst >= 0 {
		if padFirst == 0 || padFirst%2 == 1 {
			return sanitized{}, fmt.Errorf("%w: padding at position %d", ErrInvalidCode, padFirst)
		}
		if n > sepFirst+1 {
			return sanitized{}, fmt.Errorf("%w: padded code has digits after the separator", ErrInvalidCode)
		}
		if padLast != sepFirst-1 {
			return sanitized{}, fmt.Errorf("%w: padding does not end at the separator", ErrInvalidCode)
		}
		for i := padFirst; i < padLast; i++ {
			if code[i] != Padding {
				return sanitized{}, fmt.Errorf("%w: padding interrupted at %d", ErrInvalidCode, i)
			}
		}
	}

	after := n - sepFirst - 1
	if after == 1 {
		return sanitized{}, fmt.Errorf("%w: single digit after the separator", ErrInvalidCode)
	}
	if n-1 > MaxDigitCount {
		return sanitized{}, fmt.Errorf("%w: more than %d digits", ErrInvalidCode, MaxDigitCount)
	}
	if after > MaxDigitCount-separatorPosition {
		return sanitized{}, fmt.Errorf("%w: more than %d digits after the separator",
			ErrInvalidCode, MaxDigitCount-separatorPosition)
	}

	return sanitized{code: code, sep: sepFirst, pad: padFirst}, nil
}

// end is the index in code where significant digits stop.
func (s sanitized) end() int {
	if s.pad >= 0 {
		return s.pad
	}
	return len(s.code)
}

// significant returns the digits of the code without the separator and
// without any padding.
func (s sanitized) significant() string {
	end := s.end()
	if s.sep < end {
		return s.code[:s.sep] + s.code[s.sep+1:end]
	}
	return s.code[:end]
}

// length is the number of significant digits.
func (s sanitized) length() int {
	end := s.end()
	if s.sep < end {
		return end - 1
	}
	return end
}

func (s sanitized) isShort() bool {
	return s.sep < separatorPosition
}

// isFull reports whether s is a full code whose leading digits stay inside
// the legal latitude and longitude ranges.
func (s sanitized) isFull() bool {
	if s.isShort() {
		return false
	}
	if symbolDigit(s.code[0])*encodingBase >= latMaxDegrees*2 {
		return false
	}
	if len(s.code) > 1 && symbolDigit(s.code[1])*encodingBase >= lonMaxDegrees*2 {
		return false
	}
	return true
}
