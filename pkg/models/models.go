package models

// Location represents a geographic location with latitude and longitude
type Location struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Point is a named plus code, with the location it decodes to
type Point struct {
	ID       string    `json:"id"`
	Code     string    `json:"code"`
	Location *Location `json:"location,omitempty"`
}

// BoundingBox represents a rectangular area defined by two corners
type BoundingBox struct {
	BottomLeft Location `json:"bottom_left"`
	TopRight   Location `json:"top_right"`
}
