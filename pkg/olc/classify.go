package olc

// IsValid reports whether code is a legal full or short code.
func IsValid(code string) bool {
	return Check(code) == nil
}

// Check returns nil for a legal code, or an ErrInvalidCode describing the
// first problem found.
func Check(code string) error {
	_, err := sanitize(code)
	return err
}

// IsShort reports whether code is a legal code missing its leading digits.
func IsShort(code string) bool {
	s, err := sanitize(code)
	return err == nil && s.isShort()
}

// IsFull reports whether code is a legal code that locates a cell on its
// own. Codes whose first digits point beyond 90 degrees latitude or 180
// degrees longitude are valid but not full.
func IsFull(code string) bool {
	s, err := sanitize(code)
	return err == nil && s.isFull()
}

// CodeLength returns the number of significant digits in code, ignoring the
// separator and padding. It returns 0 for invalid codes.
func CodeLength(code string) int {
	s, err := sanitize(code)
	if err != nil {
		return 0
	}
	return s.length()
}
