package olc

import (
	"fmt"
	"math"
)

// A prefix can be removed when the reference is within this fraction of
// the cell size the prefix encodes.
const shortenSafetyFactor = 0.3

// Prefix lengths that may be removed, longest first.
var removalLengths = [...]int{8, 6, 4}

// Shorten removes as many leading digits from a full, unpadded code as the
// reference location allows. The code is returned unchanged when the
// reference is too far away.
func Shorten(code string, ref LatLon) (string, error) {
	start, err := shortenStart(code, ref)
	if err != nil {
		return "", err
	}
	return code[start:], nil
}

// ShortenTo is Shorten writing into dst.
func ShortenTo(dst []byte, code string, ref LatLon) (int, error) {
	start, err := shortenStart(code, ref)
	if err != nil {
		return 0, err
	}
	return copyString(dst, code[start:])
}

func shortenStart(code string, ref LatLon) (int, error) {
	s, err := sanitize(code)
	if err != nil {
		return 0, err
	}
	if !s.isFull() {
		return 0, fmt.Errorf("%w: %q is not a full code", ErrInvalidCode, code)
	}
	if s.pad >= 0 {
		return 0, fmt.Errorf("%w: %q is padded", ErrInvalidCode, code)
	}

	center := decode(s).Center()
	lat := adjustLatitude(ref.Lat, s.length())
	lon := normalizeLongitude(ref.Lon)
	dist := math.Max(math.Abs(center.Lat-lat), math.Abs(center.Lon-lon))

	for _, n := range removalLengths {
		// At least one digit has to stay in front of the separator.
		if n >= s.length() {
			continue
		}
		if dist < precisionForLength(n)*shortenSafetyFactor {
			return n, nil
		}
	}
	return 0, nil
}

// RecoverNearest expands a short code into the full code closest to the
// reference location.
func RecoverNearest(short string, ref LatLon) (string, error) {
	var buf codeBuf
	if err := recoverNearest(&buf, short, ref); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// RecoverNearestTo is RecoverNearest writing into dst.
func RecoverNearestTo(dst []byte, short string, ref LatLon) (int, error) {
	var buf codeBuf
	if err := recoverNearest(&buf, short, ref); err != nil {
		return 0, err
	}
	return buf.copyTo(dst)
}

func recoverNearest(buf *codeBuf, short string, ref LatLon) error {
	s, err := sanitize(short)
	if err != nil {
		return err
	}
	if !s.isShort() {
		return fmt.Errorf("%w: %q is not a short code", ErrInvalidCode, short)
	}

	length := s.length()
	lat := adjustLatitude(ref.Lat, length)
	lon := normalizeLongitude(ref.Lon)

	// Number of leading digits missing, and the size of the cell they span.
	missing := separatorPosition - s.sep
	resolution := powNeg(encodingBase, 2-missing/2)
	halfRes := resolution / 2

	var prefix codeBuf
	encode(&prefix, LatLon{Lat: lat, Lon: lon}, DefaultCodeLength)
	candidate, err := sanitize(string(prefix.b[:missing]) + short)
	if err != nil {
		return fmt.Errorf("cannot expand %q: %w", short, err)
	}
	center := decode(candidate).Center()

	// Move the candidate one cell towards the reference when it is more than
	// half a cell away, without leaving the legal latitude range.
	if lat+halfRes < center.Lat && center.Lat-resolution > -latMaxDegrees {
		center.Lat -= resolution
	} else if lat-halfRes > center.Lat && center.Lat+resolution < latMaxDegrees {
		center.Lat += resolution
	}
	// Longitude is wrapped by encode, so it needs no bound.
	if lon+halfRes < center.Lon {
		center.Lon -= resolution
	} else if lon-halfRes > center.Lon {
		center.Lon += resolution
	}

	encode(buf, center, length+missing)
	return nil
}
