// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

package spatial

import (
	"testing"

	"github.com/netwatch/geopoints/geohash"
	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Point
		want Point
	}{
		{name: "in domain", in: Point{Lat: 10, Lng: 20}, want: Point{Lat: 10, Lng: 20}},
		{name: "lat above", in: Point{Lat: 95, Lng: 0}, want: Point{Lat: 90, Lng: 0}},
		{name: "lat below", in: Point{Lat: -91.5, Lng: 0}, want: Point{Lat: -90, Lng: 0}},
		{name: "lng east", in: Point{Lat: 0, Lng: 190}, want: Point{Lat: 0, Lng: -170}},
		{name: "lng west", in: Point{Lat: 0, Lng: -190}, want: Point{Lat: 0, Lng: 170}},
		{name: "antimeridian", in: Point{Lat: 0, Lng: 180}, want: Point{Lat: 0, Lng: -180}},
		{name: "full turns", in: Point{Lat: 0, Lng: 725}, want: Point{Lat: 0, Lng: 5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.in.Normalize()
			assert.InDelta(t, tt.want.Lat, got.Lat, 1e-9)
			assert.InDelta(t, tt.want.Lng, got.Lng, 1e-9)
			assert.True(t, got.InDomain())
		})
	}
}

func TestInDomain(t *testing.T) {
	assert.True(t, Point{Lat: 90, Lng: 180}.InDomain())
	assert.True(t, Point{Lat: -90, Lng: -180}.InDomain())
	assert.False(t, Point{Lat: 90.0001, Lng: 0}.InDomain())
	assert.False(t, Point{Lat: 0, Lng: -180.5}.InDomain())
}

func TestSnap(t *testing.T) {
	p := Point{Lat: 57.64911, Lng: 10.40744}
	assert.Equal(t, "u4pruy", p.Geohash(6))

	snapped, err := p.Snap(6)
	require.NoError(t, err)
	assert.Equal(t, Point{Lat: 57.64801025390625, Lng: 10.4095458984375}, snapped)

	// snapping is idempotent
	again, err := snapped.Snap(6)
	require.NoError(t, err)
	assert.Equal(t, snapped, again)

	box, err := geohash.DecodeBBox("u4pruy")
	require.NoError(t, err)
	assert.True(t, box.Contains(p.Lat, p.Lng))
}

func TestH3Cell(t *testing.T) {
	p := Point{Lat: 40.4168, Lng: -3.7038}

	cell, err := p.H3Cell(7)
	require.NoError(t, err)
	assert.True(t, cell.IsValid())
	assert.Equal(t, 7, cell.Resolution())

	_, err = p.H3Cell(16)
	assert.Error(t, err)
}

func TestOrb(t *testing.T) {
	p := Point{Lat: 48.8566, Lng: 2.3522}
	assert.Equal(t, orb.Point{2.3522, 48.8566}, p.Orb())
	assert.Equal(t, p, FromOrb(p.Orb()))
}

func TestScan(t *testing.T) {
	var p Point
	require.NoError(t, p.Scan([]byte("POINT (2.5 41.25)")))
	assert.Equal(t, Point{Lat: 41.25, Lng: 2.5}, p)

	require.NoError(t, p.Scan("POINT(-3.5 40.5)"))
	assert.Equal(t, Point{Lat: 40.5, Lng: -3.5}, p)

	require.NoError(t, p.Scan(map[string]interface{}{"x": 1.0, "y": 2.0}))
	assert.Equal(t, Point{Lat: 2, Lng: 1}, p)

	require.NoError(t, p.Scan(nil))
	assert.Equal(t, Point{}, p)

	assert.Error(t, p.Scan(42))
	assert.Error(t, p.Scan("garbage"))

	v, err := Point{Lat: 1, Lng: 2}.Value()
	require.NoError(t, err)
	assert.Equal(t, "POINT(2.000000 1.000000)", v)
}

func TestHaversineDistance(t *testing.T) {
	madrid := &Point{Lat: 40.4168, Lng: -3.7038}
	barcelona := &Point{Lat: 41.3851, Lng: 2.1734}

	assert.InDelta(t, 505000, madrid.HaversineDistance(barcelona), 5000)
	assert.Zero(t, madrid.HaversineDistance(madrid))
}
