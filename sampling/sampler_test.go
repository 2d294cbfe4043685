// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

package sampling

import (
	"errors"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/netwatch/geopoints/geohash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCities(t *testing.T) {
	eu := Cities(EU)
	us := Cities(US)

	assert.NotEmpty(t, eu)
	assert.NotEmpty(t, us)
	assert.Len(t, Cities(""), len(eu)+len(us))

	for _, c := range append(eu, us...) {
		assert.Positive(t, c.Weight, c.Name)
		assert.Len(t, c.CountryCode, 2, c.Name)
	}
}

func TestFindCity(t *testing.T) {
	c, err := FindCity("  malmö ")
	require.NoError(t, err)
	assert.Equal(t, "Malmo", c.Name)
	assert.Equal(t, "SE", c.CountryCode)

	c, err = FindCity("NEW YORK")
	require.NoError(t, err)
	assert.Equal(t, US, c.Region)

	_, err = FindCity("Atlantis")
	assert.Error(t, err)
}

func TestPickCity(t *testing.T) {
	pool := []City{
		{Name: "heavy", Weight: 9},
		{Name: "light", Weight: 1},
	}

	rng := rand.New(rand.NewPCG(3, 3))
	counts := map[string]int{}

	for range 10000 {
		c, err := PickCity(rng, pool)
		require.NoError(t, err)

		counts[c.Name]++
	}

	assert.InDelta(t, 9000, counts["heavy"], 300)
	assert.InDelta(t, 1000, counts["light"], 300)

	_, err := PickCity(rng, nil)
	assert.Error(t, err)
}

func TestSpread(t *testing.T) {
	tests := []struct {
		city  City
		sdLat float64
		sdLon float64
	}{
		{city: City{Region: EU, Weight: 24}, sdLat: 0.15, sdLon: 0.18},
		{city: City{Region: EU, Weight: 14}, sdLat: 0.13, sdLon: 0.156},
		{city: City{Region: US, Weight: 10}, sdLat: 0.161, sdLon: 0.184},
		{city: City{Region: US, Weight: 7}, sdLat: 0.14, sdLon: 0.16},
		{city: City{Region: EU, Weight: 3}, sdLat: 0.085, sdLon: 0.102},
	}

	for _, tt := range tests {
		sdLat, sdLon := spread(tt.city)
		assert.InDelta(t, tt.sdLat, sdLat, 1e-9)
		assert.InDelta(t, tt.sdLon, sdLon, 1e-9)
	}
}

func TestJitterStaysInDomain(t *testing.T) {
	rng := rand.New(rand.NewPCG(5, 5))
	edge := []City{
		{Name: "north", Lat: 89.99, Lon: 179.99, Weight: 24, Region: EU},
		{Name: "south", Lat: -89.99, Lon: -179.99, Weight: 24, Region: US},
	}

	for range 2000 {
		for _, c := range edge {
			p := Jitter(rng, c)
			assert.True(t, p.InDomain(), "%v", p)
			assert.LessOrEqual(t, p.Lat, maxLat)
			assert.GreaterOrEqual(t, p.Lat, -maxLat)
			assert.Less(t, p.Lng, 180.0)
		}
	}
}

func TestGenerator(t *testing.T) {
	opts := DefaultOptions()
	opts.Count = 500
	opts.H3Resolution = 6

	g, err := NewGenerator(opts)
	require.NoError(t, err)

	var samples []*Sample

	require.NoError(t, g.Generate(func(s *Sample) error {
		samples = append(samples, s)

		return nil
	}))
	require.Len(t, samples, 500)

	regions := map[Region]int{}

	for _, s := range samples {
		regions[s.City.Region]++

		assert.Len(t, s.Geohash, 6)

		box, err := geohash.DecodeBBox(s.Geohash)
		require.NoError(t, err)
		assert.True(t, box.Contains(s.Point.Lat, s.Point.Lng))

		lat, lon := box.Center()
		assert.Equal(t, lat, s.Center.Lat)
		assert.Equal(t, lon, s.Center.Lng)

		assert.Equal(t, 6, s.H3Cell.Resolution())
	}

	assert.InDelta(t, 275, regions[EU], 50)
}

func TestGeneratorIsDeterministic(t *testing.T) {
	draw := func(seed uint64) []string {
		opts := DefaultOptions()
		opts.Count = 50
		opts.Seed = seed

		g, err := NewGenerator(opts)
		require.NoError(t, err)

		var hashes []string

		require.NoError(t, g.Generate(func(s *Sample) error {
			hashes = append(hashes, s.Geohash)

			return nil
		}))

		return hashes
	}

	if diff := cmp.Diff(draw(42), draw(42)); diff != "" {
		t.Errorf("same seed produced different samples (-first +second):\n%s", diff)
	}

	assert.NotEqual(t, draw(42), draw(43))
}

func TestGeneratorFixedCities(t *testing.T) {
	opts := DefaultOptions()
	opts.Count = 100
	opts.Cities = []string{"Bilbao", "Zürich"}

	g, err := NewGenerator(opts)
	require.NoError(t, err)

	require.NoError(t, g.Generate(func(s *Sample) error {
		assert.Contains(t, []string{"Bilbao", "Zurich"}, s.City.Name)
		assert.Zero(t, s.H3Cell)

		return nil
	}))
}

func TestGeneratorStopsOnCallbackError(t *testing.T) {
	opts := DefaultOptions()
	opts.Count = 10

	g, err := NewGenerator(opts)
	require.NoError(t, err)

	stop := errors.New("stop")
	calls := 0

	err = g.Generate(func(*Sample) error {
		calls++

		return stop
	})
	require.ErrorIs(t, err, stop)
	assert.Equal(t, 1, calls)
}

func TestNewGeneratorValidation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Options)
	}{
		{name: "negative count", mutate: func(o *Options) { o.Count = -1 }},
		{name: "precision", mutate: func(o *Options) { o.Precision = 0 }},
		{name: "eu share", mutate: func(o *Options) { o.EUShare = 1.5 }},
		{name: "h3 resolution", mutate: func(o *Options) { o.H3Resolution = 16 }},
		{name: "unknown city", mutate: func(o *Options) { o.Cities = []string{"Gotham"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := DefaultOptions()
			tt.mutate(&opts)

			_, err := NewGenerator(opts)
			assert.Error(t, err)
		})
	}
}
