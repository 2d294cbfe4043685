// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

// Package sampling generates synthetic points around weighted cities and snaps
// them onto the geohash grid.
package sampling

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/netwatch/geopoints/spatial"
	"github.com/uber/h3-go/v4"
)

// maxLat keeps jittered points off the poles.
const maxLat = 89.999999

// Options configures a Generator.
type Options struct {
	Count     int
	Precision int
	// EUShare is the probability of drawing from the EU pool.
	EUShare float64
	Seed    uint64
	// H3Resolution adds an H3 cell to every sample when positive.
	H3Resolution int
	// Cities restricts sampling to the named cities, ignoring EUShare.
	Cities []string
}

// DefaultOptions mirrors the dashboard's reference dataset.
func DefaultOptions() Options {
	return Options{
		Count:     20000,
		Precision: 6,
		EUShare:   0.55,
		Seed:      42,
	}
}

// Sample is a jittered point and the geohash cell it was snapped to.
type Sample struct {
	City    City
	Point   spatial.Point
	Geohash string
	Center  spatial.Point
	H3Cell  h3.Cell
}

// Generator draws samples deterministically from its seed. It is not safe for
// concurrent use.
type Generator struct {
	opts  Options
	rng   *rand.Rand
	pools map[Region][]City
	fixed []City
}

// NewGenerator validates opts and prepares the city pools.
func NewGenerator(opts Options) (*Generator, error) {
	if opts.Count < 0 {
		return nil, fmt.Errorf("count must not be negative, got %d", opts.Count)
	}

	if opts.Precision <= 0 {
		return nil, fmt.Errorf("precision must be positive, got %d", opts.Precision)
	}

	if opts.EUShare < 0 || opts.EUShare > 1 {
		return nil, fmt.Errorf("eu share must be in [0, 1], got %g", opts.EUShare)
	}

	if opts.H3Resolution < 0 || opts.H3Resolution > h3.MaxResolution {
		return nil, fmt.Errorf("h3 resolution must be in [0, %d], got %d", h3.MaxResolution, opts.H3Resolution)
	}

	g := &Generator{
		opts: opts,
		rng:  rand.New(rand.NewPCG(opts.Seed, opts.Seed)),
		pools: map[Region][]City{
			EU: Cities(EU),
			US: Cities(US),
		},
	}

	for _, name := range opts.Cities {
		c, err := FindCity(name)
		if err != nil {
			return nil, err
		}

		g.fixed = append(g.fixed, c)
	}

	return g, nil
}

// Next draws one sample.
func (g *Generator) Next() (*Sample, error) {
	pool := g.fixed
	if len(pool) == 0 {
		region := US
		if g.rng.Float64() < g.opts.EUShare {
			region = EU
		}

		pool = g.pools[region]
	}

	city, err := PickCity(g.rng, pool)
	if err != nil {
		return nil, err
	}

	p := Jitter(g.rng, city)

	center, err := p.Snap(g.opts.Precision)
	if err != nil {
		return nil, fmt.Errorf("snapping %s: %w", p, err)
	}

	s := &Sample{
		City:    city,
		Point:   p,
		Geohash: p.Geohash(g.opts.Precision),
		Center:  center,
	}

	if g.opts.H3Resolution > 0 {
		if s.H3Cell, err = p.H3Cell(g.opts.H3Resolution); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Generate draws Count samples and hands each to fn, stopping at the first
// error.
func (g *Generator) Generate(fn func(*Sample) error) error {
	for range g.opts.Count {
		s, err := g.Next()
		if err != nil {
			return err
		}

		if err := fn(s); err != nil {
			return err
		}
	}

	return nil
}

// PickCity draws a city with probability proportional to its weight.
func PickCity(rng *rand.Rand, pool []City) (City, error) {
	if len(pool) == 0 {
		return City{}, errors.New("empty city pool")
	}

	total := 0
	for _, c := range pool {
		total += c.Weight
	}

	r := rng.Float64() * float64(total)
	acc := 0.0

	for _, c := range pool {
		acc += float64(c.Weight)
		if r <= acc {
			return c, nil
		}
	}

	return pool[len(pool)-1], nil
}

// spread returns the standard deviations, in degrees, of the Gaussian noise
// applied around city. Bigger cities get a wider metro area.
func spread(city City) (sdLat, sdLon float64) {
	baseLat, baseLon := 0.14, 0.16
	if city.Region == EU {
		baseLat, baseLon = 0.10, 0.12
	}

	var factor float64

	switch {
	case city.Weight >= 20:
		factor = 1.5
	case city.Weight >= 14:
		factor = 1.3
	case city.Weight >= 10:
		factor = 1.15
	case city.Weight >= 7:
		factor = 1.0
	default:
		factor = 0.85
	}

	return baseLat * factor, baseLon * factor
}

// Jitter perturbs the city location with Gaussian noise. Longitude noise is
// widened by latitude so the spread stays roughly circular on the ground.
func Jitter(rng *rand.Rand, city City) spatial.Point {
	sdLat, sdLon := spread(city)

	lat := city.Lat + rng.NormFloat64()*sdLat
	lon := city.Lon + rng.NormFloat64()*sdLon/math.Max(0.2, math.Cos(city.Lat*math.Pi/180))

	return spatial.Point{
		Lat: math.Max(-maxLat, math.Min(maxLat, lat)),
		Lng: spatial.WrapLng(lon),
	}
}
