// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

// Package store persists generated samples in DuckDB.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/netwatch/geopoints/sampling"
	"github.com/netwatch/geopoints/spatial"
)

// Cell aggregates the samples that fell into one geohash.
type Cell struct {
	Geohash     string        `json:"geohash"`
	Count       int           `json:"count"`
	Center      spatial.Point `json:"center"`
	Region      string        `json:"region"`
	CountryCode string        `json:"country_code"`
}

// Run summarizes one stored generation run.
type Run struct {
	ID        string    `json:"id"`
	Samples   int       `json:"samples"`
	Precision int       `json:"precision"`
	CreatedAt time.Time `json:"created_at"`
}

// CellFilter narrows ListCells. Zero values mean no filter.
type CellFilter struct {
	Region string
	RunID  string
	Limit  int
}

// SampleRepository handles persistence of generated samples.
type SampleRepository interface {
	// CreateSchema creates the samples table
	CreateSchema() error

	// SaveRun replaces the samples stored under runID
	SaveRun(runID string, samples []*sampling.Sample) error

	// CountSamples returns the total number of stored samples
	CountSamples() (int, error)

	// ListRuns returns stored runs, newest first
	ListRuns() ([]*Run, error)

	// ListCells aggregates samples per geohash, busiest first
	ListCells(filter CellFilter) ([]*Cell, error)
}

type sqlSampleRepository struct {
	db *sql.DB
}

// NewSampleRepository creates a new sample repository.
func NewSampleRepository(db *sql.DB) SampleRepository {
	return &sqlSampleRepository{db: db}
}

// NewRunID returns a fresh run identifier.
func NewRunID() string {
	return uuid.NewString()
}

func (r *sqlSampleRepository) CreateSchema() error {
	_, err := r.db.Exec(`
		CREATE TABLE IF NOT EXISTS samples (
			run_id VARCHAR NOT NULL,
			seq INTEGER NOT NULL,
			created_at TIMESTAMPTZ NOT NULL,
			region VARCHAR,
			country_code VARCHAR,
			city_hint VARCHAR,
			lat DOUBLE NOT NULL,
			lon DOUBLE NOT NULL,
			geohash VARCHAR NOT NULL,
			center_lat DOUBLE NOT NULL,
			center_lon DOUBLE NOT NULL,
			h3_cell VARCHAR
		);
	`)

	return err
}

func (r *sqlSampleRepository) SaveRun(runID string, samples []*sampling.Sample) error {
	if _, err := uuid.Parse(runID); err != nil {
		return fmt.Errorf("invalid run id %q: %w", runID, err)
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("starting transaction for %s: %w", runID, err)
	}

	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			log.Printf("failed to rollback transaction for %s: %v", runID, err)
		}
	}()

	if _, err := tx.Exec("DELETE FROM samples WHERE run_id = ?", runID); err != nil {
		return fmt.Errorf("deleting samples for %s: %w", runID, err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO samples (
			run_id, seq, created_at, region, country_code, city_hint,
			lat, lon, geohash, center_lat, center_lon, h3_cell
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()

	for i, s := range samples {
		var h3Cell sql.NullString
		if s.H3Cell != 0 {
			h3Cell = sql.NullString{String: s.H3Cell.String(), Valid: true}
		}

		if _, err := stmt.Exec(
			runID, i, now, string(s.City.Region), s.City.CountryCode, s.City.Name,
			s.Point.Lat, s.Point.Lng, s.Geohash, s.Center.Lat, s.Center.Lng, h3Cell,
		); err != nil {
			return fmt.Errorf("inserting sample %d of %s: %w", i, runID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing %s: %w", runID, err)
	}

	return nil
}

func (r *sqlSampleRepository) CountSamples() (int, error) {
	var count int

	if err := r.db.QueryRow("SELECT COUNT(*) FROM samples").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting samples: %w", err)
	}

	return count, nil
}

func (r *sqlSampleRepository) ListRuns() ([]*Run, error) {
	rows, err := r.db.Query(`
		SELECT run_id, COUNT(*), MAX(LENGTH(geohash)), MIN(created_at)
		FROM samples
		GROUP BY run_id
		ORDER BY MIN(created_at) DESC, run_id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []*Run

	for rows.Next() {
		var run Run
		if err := rows.Scan(&run.ID, &run.Samples, &run.Precision, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning run: %w", err)
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

func (r *sqlSampleRepository) ListCells(filter CellFilter) ([]*Cell, error) {
	var (
		where []string
		args  []any
	)

	if filter.Region != "" {
		where = append(where, "region = ?")
		args = append(args, filter.Region)
	}

	if filter.RunID != "" {
		where = append(where, "run_id = ?")
		args = append(args, filter.RunID)
	}

	query := `
		SELECT geohash, COUNT(*) AS n,
			struct_pack(x := ANY_VALUE(center_lon), y := ANY_VALUE(center_lat)),
			MODE(region), MODE(country_code)
		FROM samples`
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}

	query += " GROUP BY geohash ORDER BY n DESC, geohash"

	if filter.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", filter.Limit)
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying cells: %w", err)
	}
	defer rows.Close()

	var cells []*Cell

	for rows.Next() {
		var (
			c                   Cell
			region, countryCode sql.NullString
		)

		if err := rows.Scan(
			&c.Geohash, &c.Count, &c.Center, &region, &countryCode,
		); err != nil {
			return nil, fmt.Errorf("scanning cell: %w", err)
		}

		c.Region = region.String
		c.CountryCode = countryCode.String
		cells = append(cells, &c)
	}

	return cells, rows.Err()
}
