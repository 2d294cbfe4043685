// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"fmt"
	"strings"

	"github.com/netwatch/geopoints/sampling"
	"github.com/netwatch/geopoints/store"
	"github.com/netwatch/geopoints/utils/textutils"
	"github.com/spf13/cobra"
)

var cellsOptions = store.CellFilter{}

var cellsCmd = &cobra.Command{
	Use:   "cells",
	Short: "Lists the busiest geohash cells in the database",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		db, repo, err := openStore()
		if err != nil {
			return err
		}
		defer db.Close()

		cells, err := repo.ListCells(cellsOptions)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		a, b, c, d := strings.Repeat("─", 12), strings.Repeat("─", 8), strings.Repeat("─", 6), strings.Repeat("─", 24)
		fmt.Fprintf(out, "╭─%-12s─┬─%8s─┬─%-6s─┬─%-24s─╮\n", a, b, c, d)
		fmt.Fprintf(out, "│ %-12s │ %8s │ %-6s │ %-24s │\n", "Geohash", "Count", "Region", "Center")
		fmt.Fprintf(out, "├─%-12s─┼─%8s─┼─%-6s─┼─%-24s─┤\n", a, b, c, d)

		for _, cell := range cells {
			center := fmt.Sprintf("%.5f, %.5f", cell.Center.Lat, cell.Center.Lng)
			fmt.Fprintf(out, "│ %-12s │ %8s │ %-6s │ %-24s │\n",
				cell.Geohash, textutils.FormatInt(cell.Count), cell.Region, center)
		}

		fmt.Fprintf(out, "╰─%-12s─┴─%8s─┴─%-6s─┴─%-24s─╯\n", a, b, c, d)

		return nil
	},
}

var citiesCmd = &cobra.Command{
	Use:   "cities [name]",
	Short: "Lists the cities points are sampled around",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var filter string
		if len(args) > 0 {
			filter = textutils.LowerASCIIFolding(args[0])
		}

		out := cmd.OutOrStdout()
		a, b, c := strings.Repeat("─", 16), strings.Repeat("─", 6), strings.Repeat("─", 22)
		fmt.Fprintf(out, "╭─%-16s─┬─%-6s─┬─%6s─┬─%-22s─╮\n", a, b, b, c)
		fmt.Fprintf(out, "│ %-16s │ %-6s │ %6s │ %-22s │\n", "City", "Region", "Weight", "Location")
		fmt.Fprintf(out, "├─%-16s─┼─%-6s─┼─%6s─┼─%-22s─┤\n", a, b, b, c)

		for _, city := range sampling.Cities("") {
			if !strings.Contains(textutils.LowerASCIIFolding(city.Name), filter) {
				continue
			}

			region := string(city.Region) + "/" + city.CountryCode
			location := fmt.Sprintf("%.4f, %.4f", city.Lat, city.Lon)
			fmt.Fprintf(out, "│ %-16s │ %-6s │ %6d │ %-22s │\n", city.Name, region, city.Weight, location)
		}

		fmt.Fprintf(out, "╰─%-16s─┴─%-6s─┴─%6s─┴─%-22s─╯\n", a, b, b, c)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(cellsCmd)
	rootCmd.AddCommand(citiesCmd)
	cellsCmd.Flags().StringVar(&cellsOptions.Region, "region", "", "Only cells sampled from this region (EU, US)")
	cellsCmd.Flags().StringVar(&cellsOptions.RunID, "run", "", "Only cells of this run")
	cellsCmd.Flags().IntVar(&cellsOptions.Limit, "limit", 20, "Maximum number of cells to list")
}
