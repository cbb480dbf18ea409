package olc

const (
	// Separator splits the eight-digit prefix from the refinement digits.
	Separator = '+'
	// Padding fills the prefix of codes shorter than eight digits.
	Padding = '0'
	// MaxDigitCount is the largest number of digits a code may carry.
	MaxDigitCount = 32
	// PairCodeLength is the number of digits encoded as latitude/longitude pairs.
	PairCodeLength = 10
	// DefaultCodeLength is the length used by EncodeDefault.
	DefaultCodeLength = PairCodeLength

	alphabet          = "23456789CFGHJMPQRVWX"
	encodingBase      = 20
	separatorPosition = 8
	gridCols          = 4
	gridRows          = encodingBase / gridCols

	latMaxDegrees = 90
	lonMaxDegrees = 180

	// floor(log(360) / log(20)) is 1, so the first pair digit covers 20 degrees.
	initialResolution = encodingBase
	// Size of the cell left by the pair digits, in degrees: 1 / 20^3.
	gridSizeDegrees = 1.0 / (encodingBase * encodingBase * encodingBase)
)

// digitValues maps a byte to its digit value, or -1 when the byte is not
// part of the alphabet. Lower case letters decode like upper case ones.
var digitValues = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(alphabet); i++ {
		c := alphabet[i]
		t[c] = int8(i)
		if c >= 'A' && c <= 'Z' {
			t[c+'a'-'A'] = int8(i)
		}
	}
	return t
}()

// digitSymbol returns the alphabet symbol for a digit value in [0, 20).
func digitSymbol(v int) byte {
	return alphabet[v]
}

// symbolDigit returns the digit value of c, or -1 when c is not in the alphabet.
func symbolDigit(c byte) int {
	return int(digitValues[c])
}
