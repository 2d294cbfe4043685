// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"log"

	"github.com/netwatch/geopoints/points"
	"github.com/netwatch/geopoints/store"
	"github.com/netwatch/geopoints/utils/textutils"
	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file.geojson>",
	Short: "Loads a generated GeoJSON file into the database as a new run",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		samples, err := points.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("loading %s: %w", args[0], err)
		}

		db, repo, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		runID := store.NewRunID()
		if err := repo.SaveRun(runID, samples); err != nil {
			return fmt.Errorf("storing samples: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), runID)
		log.Printf("Imported %s samples from %s", textutils.FormatInt(len(samples)), args[0])

		return nil
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
