package olc

import "fmt"

// LatLon is a location in degrees.
type LatLon struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (l LatLon) String() string {
	return fmt.Sprintf("%.10f,%.10f", l.Lat, l.Lon)
}

// CodeArea is the cell a code represents. Lo is inclusive, Hi is exclusive.
// Len is the number of significant digits in the code.
type CodeArea struct {
	Lo  LatLon `json:"lo"`
	Hi  LatLon `json:"hi"`
	Len int    `json:"len"`
}

// Center returns the middle of the area, never beyond 90/180 degrees.
func (a CodeArea) Center() LatLon {
	c := LatLon{
		Lat: a.Lo.Lat + (a.Hi.Lat-a.Lo.Lat)/2,
		Lon: a.Lo.Lon + (a.Hi.Lon-a.Lo.Lon)/2,
	}
	if c.Lat > latMaxDegrees {
		c.Lat = latMaxDegrees
	}
	if c.Lon > lonMaxDegrees {
		c.Lon = lonMaxDegrees
	}
	return c
}

// Contains reports whether p falls inside the area.
func (a CodeArea) Contains(p LatLon) bool {
	return p.Lat >= a.Lo.Lat && p.Lat < a.Hi.Lat &&
		p.Lon >= a.Lo.Lon && p.Lon < a.Hi.Lon
}
