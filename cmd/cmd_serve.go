// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"os"

	"github.com/netwatch/geopoints/server"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the geohash API and stored cells over HTTP",
	Long: `Serves the geohash API and the cells stored in the database. The listen
address is read from GEOPOINTS_ADDR and defaults to localhost:8080.`,
	Args: cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		addr := os.Getenv("GEOPOINTS_ADDR")
		if addr == "" {
			addr = "localhost:8080"
		}

		db, repo, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		count, err := repo.CountSamples()
		if err != nil {
			return fmt.Errorf("counting samples: %w", err)
		}

		if count == 0 {
			fmt.Fprintln(os.Stderr, "The database is empty - run 'generate --store' or 'import' first")
		}

		return server.NewServer(repo).Run(addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
}
