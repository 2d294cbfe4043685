// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

// Package textutils normalizes user supplied names and formats counts.
package textutils

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var printer = message.NewPrinter(language.English)

// LowerASCIIFolding strips accents, lowercases and trims s, so "Malmö " and
// "malmo" compare equal.
func LowerASCIIFolding(s string) string {
	folded, _, err := transform.String(
		transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC),
		strings.ToLower(strings.TrimSpace(s)),
	)
	if err != nil {
		return strings.ToLower(strings.TrimSpace(s))
	}

	return folded
}

// FormatInt renders n with thousands separators.
func FormatInt(n int) string {
	return printer.Sprintf("%d", n)
}
