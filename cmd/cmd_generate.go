// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"log"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/netwatch/geopoints/points"
	"github.com/netwatch/geopoints/sampling"
	"github.com/netwatch/geopoints/store"
	"github.com/netwatch/geopoints/utils/textutils"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var generateOptions = struct {
	sampling.Options
	Out   string
	Store bool
}{Options: sampling.DefaultOptions()}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate grid-snapped sample points as GeoJSON",
	Long: `Draws points around weighted EU and US cities, jitters them with Gaussian
noise, snaps each one to the center of its geohash cell and writes the result
as a GeoJSON FeatureCollection. Output is reproducible for a given --seed.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		opts := generateOptions.Options

		g, err := sampling.NewGenerator(opts)
		if err != nil {
			return err
		}

		var bar *progressbar.ProgressBar
		if isatty.IsTerminal(os.Stderr.Fd()) {
			bar = progressbar.NewOptions(opts.Count,
				progressbar.OptionSetDescription("Generating"),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionShowCount(),
				progressbar.OptionClearOnFinish(),
			)
		}

		samples := make([]*sampling.Sample, 0, opts.Count)
		cells := make(map[string]struct{})
		snapped := 0.0

		err = g.Generate(func(s *sampling.Sample) error {
			samples = append(samples, s)
			cells[s.Geohash] = struct{}{}
			snapped += s.Point.HaversineDistance(&s.Center)

			if bar != nil {
				if err := bar.Add(1); err != nil {
					return fmt.Errorf("updating progress bar: %w", err)
				}
			}

			return nil
		})
		if err != nil {
			return fmt.Errorf("generating samples: %w", err)
		}

		out := generateOptions.Out
		if out == "" {
			out = points.DefaultFileName(opts.Precision, opts.Count)
		}

		if err := points.WriteFile(out, points.Collection(samples)); err != nil {
			return err
		}

		log.Printf(
			"Wrote %s with %s features in %s cells (duplicates allowed).",
			out,
			textutils.FormatInt(len(samples)),
			textutils.FormatInt(len(cells)),
		)

		if len(samples) > 0 {
			log.Printf("Mean snap offset %.0f m", snapped/float64(len(samples)))
		}

		if !generateOptions.Store {
			return nil
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
		log.Printf("Stored run %s", runID)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	flags := generateCmd.Flags()
	flags.IntVarP(&generateOptions.Count, "count", "n", generateOptions.Count, "Number of points to generate")
	flags.IntVarP(&generateOptions.Precision, "precision", "p", generateOptions.Precision, "Geohash precision")
	flags.Float64Var(&generateOptions.EUShare, "eu-share", generateOptions.EUShare, "Share of points drawn from EU cities")
	flags.Uint64Var(&generateOptions.Seed, "seed", generateOptions.Seed, "Random seed")
	flags.IntVar(&generateOptions.H3Resolution, "h3-res", 0, "Add an H3 cell of this resolution to every point (0 disables)")
	flags.StringSliceVar(&generateOptions.Cities, "city", nil, "Only sample around these cities")
	flags.StringVarP(&generateOptions.Out, "out", "o", "", "Output file (default geohash_points_p<precision>_<count>.geojson)")
	flags.BoolVar(&generateOptions.Store, "store", false, "Also store the points in the database")
}
