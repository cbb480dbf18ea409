package olc

import "math"

// Encode returns the code of the given length for loc. Lengths are clamped
// to [2, MaxDigitCount]; odd lengths below PairCodeLength round up, since
// pair digits come two at a time. Latitude is clamped to [-90, 90] and
// longitude is wrapped into [-180, 180).
func Encode(loc LatLon, length int) string {
	var buf codeBuf
	encode(&buf, loc, length)
	return buf.String()
}

// EncodeDefault encodes loc with DefaultCodeLength digits.
func EncodeDefault(loc LatLon) string {
	return Encode(loc, DefaultCodeLength)
}

// EncodeTo writes the code for loc into dst and returns the number of bytes
// written.
func EncodeTo(dst []byte, loc LatLon, length int) (int, error) {
	var buf codeBuf
	encode(&buf, loc, length)
	return buf.copyTo(dst)
}

func encode(buf *codeBuf, loc LatLon, length int) {
	length = clampLength(length)
	lat := adjustLatitude(loc.Lat, length) + latMaxDegrees
	lon := normalizeLongitude(loc.Lon) + lonMaxDegrees

	encodePairs(buf, lat, lon, min(length, PairCodeLength))
	if length > PairCodeLength {
		encodeGrid(buf, lat, lon, length-PairCodeLength)
	}
}

func clampLength(length int) int {
	switch {
	case length < 2:
		return 2
	case length > MaxDigitCount:
		return MaxDigitCount
	case length < PairCodeLength && length%2 == 1:
		return length + 1
	}
	return length
}

// adjustLatitude clamps lat to [-90, 90]. A latitude of exactly 90 is moved
// half a cell south so it lands inside a legal cell.
func adjustLatitude(lat float64, length int) float64 {
	lat = math.Max(-latMaxDegrees, math.Min(latMaxDegrees, lat))
	if lat < latMaxDegrees {
		return lat
	}
	return lat - precisionForLength(length)/2
}

// normalizeLongitude wraps lon into [-180, 180).
func normalizeLongitude(lon float64) float64 {
	if lon >= -lonMaxDegrees && lon < lonMaxDegrees {
		return lon
	}
	lon = math.Mod(lon+lonMaxDegrees, 2*lonMaxDegrees)
	if lon < 0 {
		lon += 2 * lonMaxDegrees
	}
	if lon >= 2*lonMaxDegrees {
		lon = 0
	}
	return lon - lonMaxDegrees
}

// precisionForLength is the latitude height of a cell for a code of the
// given length. Up to ten digits cells are square; grid digits split
// latitude into five and longitude into four, so they diverge after that.
func precisionForLength(length int) float64 {
	if length <= PairCodeLength {
		return powNeg(encodingBase, 2-length/2)
	}
	return powNeg(encodingBase, -3) / math.Pow(gridRows, float64(length-PairCodeLength))
}

func powNeg(base float64, exp int) float64 {
	switch {
	case exp == 0:
		return 1
	case exp > 0:
		return math.Pow(base, float64(exp))
	}
	return 1 / math.Pow(base, float64(-exp))
}
