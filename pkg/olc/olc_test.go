package olc

import (
	"math"
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var zurich = LatLon{Lat: 47.0000625, Lon: 8.0000625}

func TestEncode(t *testing.T) {
	testCases := []struct {
		name     string
		loc      LatLon
		length   int
		expected string
	}{
		{"default length", zurich, 10, "8FVC2222+22"},
		{"grid digits", zurich, 16, "8FVC2222+22GCCCCC"},
		{"eight digits", zurich, 8, "8FVC2222+"},
		{"padded", zurich, 4, "8FVC0000+"},
		{"shortest", zurich, 2, "8F000000+"},
		{"odd length rounds up", zurich, 3, "8FVC0000+"},
		{"below minimum", zurich, 0, "8F000000+"},
		{"north pole", LatLon{Lat: 90, Lon: 0}, 10, "CFX2X2X2+X2"},
		{"latitude clamped", LatLon{Lat: 120, Lon: 0}, 10, "CFX2X2X2+X2"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Encode(tc.loc, tc.length))
		})
	}
}

func TestEncodeDefault(t *testing.T) {
	assert.Equal(t, "8FVC2222+22", EncodeDefault(zurich))
}

func TestEncodeLongitudeWrap(t *testing.T) {
	assert.Equal(t, Encode(zurich, 10), Encode(LatLon{Lat: zurich.Lat, Lon: zurich.Lon + 360}, 10))
	assert.Equal(t, Encode(zurich, 10), Encode(LatLon{Lat: zurich.Lat, Lon: zurich.Lon - 720}, 10))
	assert.Equal(t, Encode(LatLon{Lat: 0, Lon: -180}, 10), Encode(LatLon{Lat: 0, Lon: 180}, 10))
}

func TestEncodeMaximumLength(t *testing.T) {
	code := Encode(zurich, 40)
	assert.Equal(t, MaxDigitCount, CodeLength(code))
	assert.True(t, IsFull(code))
}

func TestEncodeNonFinite(t *testing.T) {
	for _, loc := range []LatLon{
		{Lat: math.NaN(), Lon: 0},
		{Lat: 0, Lon: math.Inf(1)},
		{Lat: math.Inf(-1), Lon: math.Inf(-1)},
		{Lat: 1e300, Lon: -1e300},
	} {
		code := Encode(loc, 12)
		assert.True(t, IsValid(code), "%v encoded to %q", loc, code)
	}
}

func TestEncodeTo(t *testing.T) {
	buf := make([]byte, 11)
	n, err := EncodeTo(buf, zurich, 10)
	require.NoError(t, err)
	assert.Equal(t, "8FVC2222+22", string(buf[:n]))

	small := []byte("untouched")
	n, err = EncodeTo(small, zurich, 10)
	assert.ErrorIs(t, err, ErrBufferTooSmall)
	assert.Zero(t, n)
	assert.Equal(t, "untouched", string(small))
}

func TestDecode(t *testing.T) {
	area, err := Decode("8FVC2222+22GCCCCC")
	require.NoError(t, err)

	assert.InDelta(t, 47.000062496, area.Lo.Lat, 1e-12)
	assert.InDelta(t, 8.00006250000001, area.Lo.Lon, 1e-12)
	assert.InDelta(t, 47.000062504, area.Hi.Lat, 1e-12)
	assert.InDelta(t, 8.0000625305176, area.Hi.Lon, 1e-12)
	assert.Equal(t, 16, area.Len)
}

func TestDecodeLowerCase(t *testing.T) {
	upper, err := Decode("8FVC2222+22")
	require.NoError(t, err)
	lower, err := Decode("8fvc2222+22")
	require.NoError(t, err)
	assert.Equal(t, upper, lower)
}

func TestDecodePadded(t *testing.T) {
	area, err := Decode("8FVC0000+")
	require.NoError(t, err)

	assert.InDelta(t, 47.0, area.Lo.Lat, 1e-12)
	assert.InDelta(t, 8.0, area.Lo.Lon, 1e-12)
	assert.InDelta(t, 48.0, area.Hi.Lat, 1e-12)
	assert.InDelta(t, 9.0, area.Hi.Lon, 1e-12)
	assert.Equal(t, 4, area.Len)
}

func TestDecodeMaximumLength(t *testing.T) {
	code := "8FVC2222+22" + strings.Repeat("G", 22)
	area, err := Decode(code)
	require.NoError(t, err)
	assert.Equal(t, MaxDigitCount, area.Len)
	assert.InDelta(t, 47.0000625, area.Center().Lat, 1e-4)

	_, err = Decode(code + "G")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode("8FVC2222+2")
	assert.ErrorIs(t, err, ErrInvalidCode)
}

func TestDecodeDoesNotModifyInput(t *testing.T) {
	code := "8FVC2222+22"
	_, err := Decode(code)
	require.NoError(t, err)
	assert.Equal(t, "8FVC2222+22", code)
}

func TestCenterClamped(t *testing.T) {
	area := CodeArea{
		Lo: LatLon{Lat: 89, Lon: 179},
		Hi: LatLon{Lat: 92, Lon: 182},
	}
	assert.Equal(t, LatLon{Lat: 90, Lon: 180}, area.Center())
}

func TestRoundTrip(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	lengths := []int{2, 4, 6, 8, 10, 11, 12, 13, 14, 15}

	for i := 0; i < 500; i++ {
		loc := LatLon{
			Lat: r.Float64()*180 - 90,
			Lon: r.Float64()*360 - 180,
		}
		for _, length := range lengths {
			code := Encode(loc, length)
			require.Equal(t, length, CodeLength(code), "code %q", code)

			area, err := Decode(code)
			require.NoError(t, err, "code %q", code)
			require.Equal(t, length, area.Len)

			center := area.Center()
			assert.LessOrEqual(t, math.Abs(center.Lat-loc.Lat), (area.Hi.Lat-area.Lo.Lat)/2+1e-9,
				"latitude of %v in %q", loc, code)
			assert.LessOrEqual(t, math.Abs(center.Lon-loc.Lon), (area.Hi.Lon-area.Lo.Lon)/2+1e-9,
				"longitude of %v in %q", loc, code)
		}
	}
}

func TestRoundTripPoles(t *testing.T) {
	for _, lat := range []float64{-90, 90} {
		for _, length := range []int{2, 4, 10, 15} {
			code := Encode(LatLon{Lat: lat, Lon: 0}, length)
			area, err := Decode(code)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, area.Lo.Lat, -90.0)
			assert.LessOrEqual(t, area.Hi.Lat, 90.0+1e-9)
		}
	}
}

func BenchmarkEncode(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	locs := make([]LatLon, 1024)
	for i := range locs {
		locs[i] = LatLon{Lat: r.Float64()*180 - 90, Lon: r.Float64()*360 - 180}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Encode(locs[i%len(locs)], 15)
	}
}

func BenchmarkDecode(b *testing.B) {
	r := rand.New(rand.NewSource(1))
	codes := make([]string, 1024)
	for i := range codes {
		codes[i] = Encode(LatLon{Lat: r.Float64()*180 - 90, Lon: r.Float64()*360 - 180}, 15)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = Decode(codes[i%len(codes)])
	}
}
