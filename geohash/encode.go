// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

package geohash

const bitsPerChar = 5

// interleaver holds the bounds being refined by alternating longitude and
// latitude bisections.
type interleaver struct {
	latMin, latMax float64
	lonMin, lonMax float64
	// onLat is false when the next bit refines longitude.
	onLat bool
}

func newInterleaver() interleaver {
	return interleaver{
		latMin: -90, latMax: 90,
		lonMin: -180, lonMax: 180,
	}
}

// split bisects the active axis around the coordinate and returns the bit it
// falls on.
func (s *interleaver) split(lat, lon float64) bool {
	v := lon
	if s.onLat {
		v = lat
	}

	bit := v >= s.mid()
	s.push(bit)

	return bit
}

// push narrows the active axis to its upper half for a 1 bit, lower half
// otherwise, and flips the axis.
func (s *interleaver) push(bit bool) {
	mid := s.mid()

	switch {
	case s.onLat && bit:
		s.latMin = mid
	case s.onLat:
		s.latMax = mid
	case bit:
		s.lonMin = mid
	default:
		s.lonMax = mid
	}

	s.onLat = !s.onLat
}

func (s *interleaver) mid() float64 {
	if s.onLat {
		return (s.latMin + s.latMax) / 2
	}

	return (s.lonMin + s.lonMax) / 2
}

// Encode returns the geohash of (lat, lon) with precision characters. A
// precision of zero or less returns the empty string.
//
// lat must be in [-90, 90] and lon in [-180, 180]. The range is not checked:
// callers holding arbitrary input should normalize it first (see
// spatial.Point.Normalize).
func Encode(lat, lon float64, precision int) string {
	if precision <= 0 {
		return ""
	}

	out := make([]byte, 0, precision)
	state := newInterleaver()

	var ch byte

	pos := 0
	for len(out) < precision {
		ch <<= 1
		if state.split(lat, lon) {
			ch |= 1
		}

		pos++
		if pos == bitsPerChar {
			out = append(out, CharOf(ch))
			ch, pos = 0, 0
		}
	}

	return string(out)
}
