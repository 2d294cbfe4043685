// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

// Package points turns samples into GeoJSON feature collections and back.
package points

import (
	"errors"
	"fmt"
	"os"

	"github.com/netwatch/geopoints/geohash"
	"github.com/netwatch/geopoints/sampling"
	"github.com/netwatch/geopoints/spatial"
	"github.com/netwatch/geopoints/store"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/uber/h3-go/v4"
)

// Feature property names.
const (
	PropGeohash     = "geohash"
	PropCountryCode = "country_code"
	PropCityHint    = "city_hint"
	PropRegion      = "region"
	PropH3          = "h3"
	PropCount       = "count"
)

// DefaultFileName names an output file after its precision and size.
func DefaultFileName(precision, n int) string {
	return fmt.Sprintf("geohash_points_p%d_%d.geojson", precision, n)
}

// Feature places the sample at its cell center.
func Feature(s *sampling.Sample) *geojson.Feature {
	f := geojson.NewFeature(s.Center.Orb())
	f.Properties[PropGeohash] = s.Geohash
	f.Properties[PropCountryCode] = s.City.CountryCode
	f.Properties[PropCityHint] = s.City.Name
	f.Properties[PropRegion] = string(s.City.Region)

	if s.H3Cell != 0 {
		f.Properties[PropH3] = s.H3Cell.String()
	}

	return f
}

// Collection wraps samples into a FeatureCollection, duplicates included.
func Collection(samples []*sampling.Sample) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()
	for _, s := range samples {
		fc.Append(Feature(s))
	}

	return fc
}

// CellCollection renders aggregated cells, one feature per geohash.
func CellCollection(cells []*store.Cell) *geojson.FeatureCollection {
	fc := geojson.NewFeatureCollection()

	for _, c := range cells {
		f := geojson.NewFeature(c.Center.Orb())
		f.Properties[PropGeohash] = c.Geohash
		f.Properties[PropCountryCode] = c.CountryCode
		f.Properties[PropRegion] = c.Region
		f.Properties[PropCount] = c.Count
		fc.Append(f)
	}

	return fc
}

// FromFeature rebuilds a sample from a feature written by Feature. The jittered
// point is not stored in the file, so Point is set to the cell center.
func FromFeature(f *geojson.Feature) (*sampling.Sample, error) {
	pt, ok := f.Geometry.(orb.Point)
	if !ok {
		return nil, fmt.Errorf("expected Point geometry, got %T", f.Geometry)
	}

	hash := f.Properties.MustString(PropGeohash, "")
	if hash == "" {
		return nil, errors.New("feature has no geohash property")
	}

	box, err := geohash.DecodeBBox(hash)
	if err != nil {
		return nil, err
	}

	center := spatial.FromOrb(pt)
	if !box.Contains(center.Lat, center.Lng) {
		return nil, fmt.Errorf("point %s is outside geohash %s", center, hash)
	}

	name := f.Properties.MustString(PropCityHint, "")

	city, err := sampling.FindCity(name)
	if err != nil {
		city = sampling.City{
			Name:        name,
			Lat:         center.Lat,
			Lon:         center.Lng,
			Region:      sampling.Region(f.Properties.MustString(PropRegion, "")),
			CountryCode: f.Properties.MustString(PropCountryCode, ""),
		}
	}

	s := &sampling.Sample{
		City:    city,
		Point:   center,
		Geohash: hash,
		Center:  center,
	}

	if v := f.Properties.MustString(PropH3, ""); v != "" {
		cell := h3.Cell(h3.IndexFromString(v))
		if !cell.IsValid() {
			return nil, fmt.Errorf("invalid h3 cell %q", v)
		}

		s.H3Cell = cell
	}

	return s, nil
}

// WriteFile writes fc as compact JSON.
func WriteFile(path string, fc *geojson.FeatureCollection) error {
	data, err := fc.MarshalJSON()
	if err != nil {
		return fmt.Errorf("marshaling GeoJSON: %w", err)
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing file: %w", err)
	}

	return nil
}

// ReadFile loads a FeatureCollection and converts every feature to a sample.
func ReadFile(path string) ([]*sampling.Sample, error) {
	data, err := os.ReadFile(path) // #nosec G304 - path is provided by the operator
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("parsing GeoJSON: %w", err)
	}

	samples := make([]*sampling.Sample, 0, len(fc.Features))

	for i, f := range fc.Features {
		s, err := FromFeature(f)
		if err != nil {
			return nil, fmt.Errorf("feature %d: %w", i, err)
		}

		samples = append(samples, s)
	}

	return samples, nil
}
