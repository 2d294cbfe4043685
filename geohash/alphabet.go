// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

// Package geohash encodes coordinates into base-32 geohash strings and decodes
// them back into bounding boxes.
//
// Bits alternate between longitude and latitude, longitude first. Each output
// character packs five bits, most significant first. All functions are pure and
// safe for concurrent use.
package geohash

// Alphabet is the standard geohash base-32 character set. The letters a, i, l
// and o are not part of it.
const Alphabet = "0123456789bcdefghjkmnpqrstuvwxyz"

const invalid = 0xff

var alphabetIndex = func() [256]byte {
	var idx [256]byte
	for i := range idx {
		idx[i] = invalid
	}

	for i := 0; i < len(Alphabet); i++ {
		idx[Alphabet[i]] = byte(i)
	}

	return idx
}()

// IndexOf returns the 5-bit value of r.
func IndexOf(r rune) (byte, error) {
	v, ok := lookup(r)
	if !ok {
		return 0, &InvalidCharacterError{Char: r, Pos: -1}
	}

	return v, nil
}

// CharOf returns the alphabet character for v. Only the low 5 bits are used.
func CharOf(v byte) byte {
	return Alphabet[v&0x1f]
}

func lookup(r rune) (byte, bool) {
	if r < 0 || r > 0xff {
		return 0, false
	}

	v := alphabetIndex[r]

	return v, v != invalid
}
