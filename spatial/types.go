// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

// Package spatial holds the point type shared by the sampler, the store and
// the HTTP API.
package spatial

import (
	"database/sql/driver"
	"fmt"
	"math"

	"github.com/netwatch/geopoints/geohash"
	"github.com/paulmach/orb"
	"github.com/uber/h3-go/v4"
)

const earthRadius = 6371e3 // meters

// Point represents a geographical point with latitude and longitude.
type Point struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String returns a string representation of the Point.
func (p Point) String() string {
	return fmt.Sprintf("POINT(%f %f)", p.Lng, p.Lat)
}

// Value implements the driver.Valuer interface for database serialization.
func (p Point) Value() (driver.Value, error) {
	return p.String(), nil
}

// Scan implements the sql.Scanner interface for database deserialization.
func (p *Point) Scan(value interface{}) error {
	if value == nil {
		p.Lat, p.Lng = 0, 0

		return nil
	}

	switch v := value.(type) {
	case []byte:
		return p.scanText(string(v))
	case string:
		return p.scanText(v)
	case map[string]interface{}:
		x, okX := v["x"].(float64)
		y, okY := v["y"].(float64)

		if !okX || !okY {
			return fmt.Errorf("spatial: invalid map for point: expected 'x' and 'y' float64 fields, got %+v", v)
		}

		p.Lng = x
		p.Lat = y

		return nil
	default:
		return fmt.Errorf("spatial: unsupported type for Point scan: %T", value)
	}
}

func (p *Point) scanText(s string) error {
	// DuckDB renders "POINT (lng lat)", Value writes "POINT(lng lat)"
	if _, err := fmt.Sscanf(s, "POINT (%f %f)", &p.Lng, &p.Lat); err == nil {
		return nil
	}

	if _, err := fmt.Sscanf(s, "POINT(%f %f)", &p.Lng, &p.Lat); err != nil {
		return fmt.Errorf("spatial: parsing %q: %w", s, err)
	}

	return nil
}

// HaversineDistance calculates the distance between two points on Earth in meters.
func (p *Point) HaversineDistance(other *Point) float64 {
	lat1 := p.Lat * math.Pi / 180
	lat2 := other.Lat * math.Pi / 180
	dLat := (other.Lat - p.Lat) * math.Pi / 180
	dLng := (other.Lng - p.Lng) * math.Pi / 180

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(lat1)*math.Cos(lat2)*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadius * c
}

// InDomain reports whether the point is a valid geohash input.
func (p Point) InDomain() bool {
	return p.Lat >= -90 && p.Lat <= 90 && p.Lng >= -180 && p.Lng <= 180
}

// Normalize clamps the latitude to [-90, 90] and wraps the longitude into
// [-180, 180).
func (p Point) Normalize() Point {
	return Point{
		Lat: math.Max(-90, math.Min(90, p.Lat)),
		Lng: WrapLng(p.Lng),
	}
}

// WrapLng maps any longitude into [-180, 180).
func WrapLng(lng float64) float64 {
	m := math.Mod(lng+180, 360)
	if m < 0 {
		m += 360
	}

	return m - 180
}

// Geohash encodes the point. The point must be in domain.
func (p Point) Geohash(precision int) string {
	return geohash.Encode(p.Lat, p.Lng, precision)
}

// Snap moves the point to the center of its geohash cell.
func (p Point) Snap(precision int) (Point, error) {
	lat, lng, err := geohash.Center(p.Geohash(precision))
	if err != nil {
		return Point{}, err
	}

	return Point{Lat: lat, Lng: lng}, nil
}

// H3Cell returns the H3 cell containing the point at the given resolution.
func (p Point) H3Cell(res int) (h3.Cell, error) {
	cell, err := h3.LatLngToCell(h3.NewLatLng(p.Lat, p.Lng), res)
	if err != nil {
		return 0, fmt.Errorf("error converting to h3 cell at res %d: %w", res, err)
	}

	return cell, nil
}

// Orb returns the point in orb's (lng, lat) order.
func (p Point) Orb() orb.Point {
	return orb.Point{p.Lng, p.Lat}
}

// FromOrb converts an orb point.
func FromOrb(o orb.Point) Point {
	return Point{Lat: o.Lat(), Lng: o.Lon()}
}
