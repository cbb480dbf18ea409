package olc

import "math"

// encodePairs appends up to PairCodeLength digits for lat and lon, which are
// already shifted into [0, 180) and [0, 360). Codes shorter than eight digits
// are padded, and the separator is always written.
func encodePairs(buf *codeBuf, lat, lon float64, length int) {
	res := float64(initialResolution)
	for n := 0; n < length; n += 2 {
		d := clampDigit(math.Floor(lat/res), encodingBase-1)
		lat -= float64(d) * res
		buf.put(digitSymbol(d))

		d = clampDigit(math.Floor(lon/res), encodingBase-1)
		lon -= float64(d) * res
		buf.put(digitSymbol(d))

		if buf.n == separatorPosition && buf.n < length {
			buf.put(Separator)
		}
		res /= encodingBase
	}
	for buf.n < separatorPosition {
		buf.put(Padding)
	}
	if buf.n == separatorPosition {
		buf.put(Separator)
	}
}

// decodePairs accumulates the lower and upper bounds of the pair digits in
// the positive ranges. res is the resolution left after the last pair.
func decodePairs(digits string) (lo, hi LatLon, res float64) {
	res = initialResolution
	for i := 0; i < len(digits); i += 2 {
		lo.Lat += float64(symbolDigit(digits[i])) * res
		hi.Lat = lo.Lat + res
		if i+1 < len(digits) {
			lo.Lon += float64(symbolDigit(digits[i+1])) * res
			hi.Lon = lo.Lon + res
		}
		res /= encodingBase
	}
	return lo, hi, res
}

// clampDigit converts a floored quotient into a digit in [0, hi].
func clampDigit(f float64, hi int) int {
	switch {
	case math.IsNaN(f) || f < 0:
		return 0
	case f > float64(hi):
		return hi
	}
	return int(f)
}
