package olc

// Decode returns the area represented by a full or short code. Short codes
// decode relative to the origin of the grid; use RecoverNearest first to
// place them.
func Decode(code string) (CodeArea, error) {
	s, err := sanitize(code)
	if err != nil {
		return CodeArea{}, err
	}
	return decode(s), nil
}

func decode(s sanitized) CodeArea {
	digits := s.significant()

	lo, hi, res := decodePairs(digits[:min(len(digits), PairCodeLength)])
	if len(digits) > PairCodeLength {
		// The grid covers the whole last pair cell, one step back from res.
		grid := digits[PairCodeLength:]
		lo, hi = decodeGrid(grid, lo, hi, res*encodingBase)
	}

	return CodeArea{
		Lo:  LatLon{Lat: lo.Lat - latMaxDegrees, Lon: lo.Lon - lonMaxDegrees},
		Hi:  LatLon{Lat: hi.Lat - latMaxDegrees, Lon: hi.Lon - lonMaxDegrees},
		Len: len(digits),
	}
}
