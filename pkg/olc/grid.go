package olc

import "math"

// encodeGrid appends length grid digits. The grid splits the cell left by
// the pair digits into 4 columns and 5 rows, numbered from the south-west:
//
//	R V W X
//	J M P Q
//	C F G H
//	6 7 8 9
//	2 3 4 5
func encodeGrid(buf *codeBuf, lat, lon float64, length int) {
	latSize, lonSize := gridSizeDegrees, gridSizeDegrees

	// Drop the whole degrees first to keep the float error small.
	lat = math.Mod(math.Mod(lat, 1), latSize)
	lon = math.Mod(math.Mod(lon, 1), lonSize)
	for i := 0; i < length; i++ {
		row := clampDigit(math.Floor(lat/(latSize/gridRows)), gridRows-1)
		col := clampDigit(math.Floor(lon/(lonSize/gridCols)), gridCols-1)
		latSize /= gridRows
		lonSize /= gridCols
		lat -= float64(row) * latSize
		lon -= float64(col) * lonSize
		buf.put(digitSymbol(row*gridCols + col))
	}
}

// decodeGrid refines lo/hi with the grid digits. size is the cell size
// left by the pair digits. Latitude and longitude shrink at different rates.
func decodeGrid(digits string, lo, hi LatLon, size float64) (LatLon, LatLon) {
	latSize, lonSize := size, size
	for i := 0; i < len(digits); i++ {
		v := symbolDigit(digits[i])
		row, col := v/gridCols, v%gridCols
		latSize /= gridRows
		lonSize /= gridCols
		lo.Lat += float64(row) * latSize
		lo.Lon += float64(col) * lonSize
		hi.Lat = lo.Lat + latSize
		hi.Lon = lo.Lon + lonSize
	}
	return lo, hi
}
