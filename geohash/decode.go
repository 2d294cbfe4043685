// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

package geohash

import "fmt"

// BoundingBox is the rectangle denoted by a geohash, in degrees.
type BoundingBox struct {
	LatMin float64 `json:"lat_min"`
	LatMax float64 `json:"lat_max"`
	LonMin float64 `json:"lon_min"`
	LonMax float64 `json:"lon_max"`
}

// World is the bounding box of the empty geohash.
var World = BoundingBox{LatMin: -90, LatMax: 90, LonMin: -180, LonMax: 180}

// Center returns the midpoint of the box.
func (b BoundingBox) Center() (lat, lon float64) {
	return (b.LatMin + b.LatMax) / 2, (b.LonMin + b.LonMax) / 2
}

// Contains reports whether the point lies inside the box, edges included.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.LatMin && lat <= b.LatMax && lon >= b.LonMin && lon <= b.LonMax
}

// LatSpan is the height of the box in degrees.
func (b BoundingBox) LatSpan() float64 {
	return b.LatMax - b.LatMin
}

// LonSpan is the width of the box in degrees.
func (b BoundingBox) LonSpan() float64 {
	return b.LonMax - b.LonMin
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("[%f, %f] x [%f, %f]", b.LatMin, b.LatMax, b.LonMin, b.LonMax)
}

// DecodeBBox returns the bounding box of hash. The empty string decodes to
// World. Characters outside the alphabet fail with *InvalidCharacterError.
func DecodeBBox(hash string) (BoundingBox, error) {
	state := newInterleaver()

	// range yields byte offsets; they match character indexes up to the first
	// non-alphabet rune because every alphabet character is a single byte.
	for pos, r := range hash {
		v, ok := lookup(r)
		if !ok {
			return BoundingBox{}, &InvalidCharacterError{Char: r, Pos: pos}
		}

		for mask := byte(1 << (bitsPerChar - 1)); mask > 0; mask >>= 1 {
			state.push(v&mask != 0)
		}
	}

	return BoundingBox{
		LatMin: state.latMin,
		LatMax: state.latMax,
		LonMin: state.lonMin,
		LonMax: state.lonMax,
	}, nil
}

// Center returns the midpoint of the cell denoted by hash.
func Center(hash string) (lat, lon float64, err error) {
	box, err := DecodeBBox(hash)
	if err != nil {
		return 0, 0, err
	}

	lat, lon = box.Center()

	return lat, lon, nil
}
