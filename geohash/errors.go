// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

package geohash

import (
	"errors"
	"fmt"
)

// ErrInvalidCharacter is matched by every decoding failure.
var ErrInvalidCharacter = errors.New("invalid geohash character")

// InvalidCharacterError reports a character outside the geohash alphabet.
type InvalidCharacterError struct {
	Char rune
	// Pos is the zero-based character index in the decoded string, or -1 when
	// the character was looked up on its own.
	Pos int
}

func (e *InvalidCharacterError) Error() string {
	if e.Pos < 0 {
		return fmt.Sprintf("geohash: invalid character %q", e.Char)
	}

	return fmt.Sprintf("geohash: invalid character %q at position %d", e.Char, e.Pos)
}

func (e *InvalidCharacterError) Unwrap() error {
	return ErrInvalidCharacter
}

// IsInvalidCharacter reports whether err was caused by a character outside the
// alphabet.
func IsInvalidCharacter(err error) bool {
	var charErr *InvalidCharacterError
	if errors.As(err, &charErr) {
		return true
	}

	return errors.Is(err, ErrInvalidCharacter)
}
