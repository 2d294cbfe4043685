// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"time"

	_ "github.com/duckdb/duckdb-go/v2" // register duckdb driver
	"github.com/netwatch/geopoints/store"
	"github.com/spf13/cobra"
)

const dbFileName = "geopoints.duckdb"

type logWriter struct {
	writer io.Writer
}

func (w *logWriter) Write(bytes []byte) (int, error) {
	return fmt.Fprintf(w.writer, "%s %s", time.Now().Format("2006-01-02 15:04:05"), string(bytes))
}

func init() {
	log.SetFlags(0)
	log.SetOutput(&logWriter{writer: os.Stderr})

	rootCmd.PersistentFlags().StringVar(
		&rootOptions.DbPath,
		"db-path",
		"db",
		"Directory holding the DuckDB database",
	)
}

var rootCmd = &cobra.Command{
	Use:   "geopoints",
	Short: "geohash cells and synthetic map points",
	Long: `
geopoints encodes coordinates into geohash cells, decodes cells back into
bounding boxes, and generates grid-snapped sample points for map dashboards.
`,
	SilenceUsage: true,
}

var rootOptions = struct {
	DbPath string
}{}

var Version = "dev"

func Execute(version string) {
	Version = version
	rootCmd.Version = version

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// openStore opens the database under --db-path and makes sure the schema
// exists.
func openStore() (*sql.DB, store.SampleRepository, error) {
	if err := os.MkdirAll(rootOptions.DbPath, 0o750); err != nil {
		return nil, nil, fmt.Errorf("creating db directory: %w", err)
	}

	db, err := sql.Open("duckdb", filepath.Join(rootOptions.DbPath, dbFileName))
	if err != nil {
		return nil, nil, fmt.Errorf("opening database: %w", err)
	}

	repo := store.NewSampleRepository(db)
	if err := repo.CreateSchema(); err != nil {
		db.Close()

		return nil, nil, fmt.Errorf("creating schema: %w", err)
	}

	return db, repo, nil
}
