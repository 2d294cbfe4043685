// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

package geohash_test

import (
	"fmt"

	"github.com/netwatch/geopoints/geohash"
)

func ExampleEncode() {
	fmt.Println(geohash.Encode(57.64911, 10.40744, 6))
	// Output: u4pruy
}

func ExampleCenter() {
	lat, lon, err := geohash.Center("u4pruy")
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.4f %.4f\n", lat, lon)
	// Output: 57.6480 10.4095
}

func ExampleDecodeBBox() {
	_, err := geohash.DecodeBBox("u4pa")
	fmt.Println(err)
	// Output: geohash: invalid character 'a' at position 3
}
