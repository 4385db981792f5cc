package types

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

type Coords struct {
	Latitude  float64 `validate:"gte=-90,lte=90"`
	Longitude float64 `validate:"gte=-180,lte=180"`
}

func NewCoords(latitude, longitude float64) Coords {
	return Coords{
		Latitude:  latitude,
		Longitude: longitude,
	}
}

// BoundingBox is a rectangular geographic region defined by two corner
// coordinate pairs. No ordering of the corners is assumed.
type BoundingBox struct {
	Corner1 Coords
	Corner2 Coords
}

func NewBoundingBox(lat1, lon1, lat2, lon2 float64) BoundingBox {
	return BoundingBox{
		Corner1: NewCoords(lat1, lon1),
		Corner2: NewCoords(lat2, lon2),
	}
}

// ParseBoundingBox parses the "lat1,lon1,lat2,lon2" command-line form.
func ParseBoundingBox(s string) (BoundingBox, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return BoundingBox{}, fmt.Errorf("expected 4 comma-separated coordinates, got %d", len(parts))
	}

	vals := make([]float64, 4)
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return BoundingBox{}, fmt.Errorf("coordinate %q is not a valid number", part)
		}
		vals[i] = v
	}

	return NewBoundingBox(vals[0], vals[1], vals[2], vals[3]), nil
}

// Contains reports whether the given point lies inside the box, inclusive of
// the edges.
func (b BoundingBox) Contains(c Coords) bool {
	latLo := math.Min(b.Corner1.Latitude, b.Corner2.Latitude)
	latHi := math.Max(b.Corner1.Latitude, b.Corner2.Latitude)
	lonLo := math.Min(b.Corner1.Longitude, b.Corner2.Longitude)
	lonHi := math.Max(b.Corner1.Longitude, b.Corner2.Longitude)

	return c.Latitude >= latLo && c.Latitude <= latHi &&
		c.Longitude >= lonLo && c.Longitude <= lonHi
}

// LatLng renders the box in the "lat1,lon1,lat2,lon2" form the WAQI API
// expects for its latlng query parameter.
func (b BoundingBox) LatLng() string {
	return fmt.Sprintf("%g,%g,%g,%g",
		b.Corner1.Latitude, b.Corner1.Longitude,
		b.Corner2.Latitude, b.Corner2.Longitude)
}
