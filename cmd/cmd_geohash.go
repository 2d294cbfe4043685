// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/netwatch/geopoints/geohash"
	"github.com/netwatch/geopoints/spatial"
	"github.com/spf13/cobra"
)

var geohashOptions = struct {
	Precision int
	Wrap      bool
}{}

var geohashCmd = &cobra.Command{
	Use:   "geohash",
	Short: "Encode and decode geohash cells",
}

var geohashEncodeCmd = &cobra.Command{
	Use:   "encode <lat> <lon>",
	Short: "Encode a coordinate",
	Long: `Prints the geohash of the coordinate. Negative values must follow "--":

$ geopoints geohash encode -- -33.8688 151.2093
r3gx2f`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		lat, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("parsing latitude: %w", err)
		}

		lng, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("parsing longitude: %w", err)
		}

		p := spatial.Point{Lat: lat, Lng: lng}
		if !p.InDomain() {
			if !geohashOptions.Wrap {
				return fmt.Errorf("%s is out of range, use --wrap to clamp and wrap it", p)
			}

			p = p.Normalize()
		}

		fmt.Fprintln(cmd.OutOrStdout(), p.Geohash(geohashOptions.Precision))

		return nil
	},
}

var geohashDecodeCmd = &cobra.Command{
	Use:   "decode [geohash...]",
	Short: "Print the bounding box of geohashes",
	Long: `Prints each geohash followed by its bounding box. Without arguments reads one
geohash per line from stdin.

$ echo u4pruy | geopoints geohash decode
u4pruy	{"lat_min":57.645263671875,"lat_max":57.6507568359375,"lon_min":10.404052734375,"lon_max":10.4150390625}
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return eachGeohash(cmd, args, func(out io.Writer, hash string) error {
			box, err := geohash.DecodeBBox(hash)
			if err != nil {
				return err
			}

			s, err := json.Marshal(box)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s\t%s\n", hash, s)

			return nil
		})
	},
}

var geohashCenterCmd = &cobra.Command{
	Use:   "center [geohash...]",
	Short: "Print the center of geohashes",
	Long: `Prints each geohash followed by the latitude and longitude of its center.
Without arguments reads one geohash per line from stdin.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return eachGeohash(cmd, args, func(out io.Writer, hash string) error {
			lat, lng, err := geohash.Center(hash)
			if err != nil {
				return err
			}

			fmt.Fprintf(out, "%s\t%s\t%s\n", hash,
				strconv.FormatFloat(lat, 'f', -1, 64),
				strconv.FormatFloat(lng, 'f', -1, 64))

			return nil
		})
	},
}

// eachGeohash feeds fn the arguments, or stdin lines when there are none.
// Failures are reported on stderr and counted.
func eachGeohash(cmd *cobra.Command, args []string, fn func(io.Writer, string) error) error {
	out := cmd.OutOrStdout()
	failed := 0

	handle := func(hash string) {
		if err := fn(out, hash); err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s\t%q\n", hash, err)

			failed++
		}
	}

	if len(args) > 0 {
		for _, hash := range args {
			handle(hash)
		}
	} else {
		input := cmd.InOrStdin()
		if f, ok := input.(*os.File); ok && isatty.IsTerminal(f.Fd()) {
			fmt.Fprintln(os.Stderr, "Enter geohashes to decode, one per line…")
		}

		scanner := bufio.NewScanner(input)
		for scanner.Scan() {
			if hash := strings.TrimSpace(scanner.Text()); hash != "" {
				handle(hash)
			}
		}

		if err := scanner.Err(); err != nil {
			return fmt.Errorf("reading input: %w", err)
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d invalid geohashes", failed)
	}

	return nil
}

func init() {
	rootCmd.AddCommand(geohashCmd)
	geohashCmd.AddCommand(geohashEncodeCmd)
	geohashCmd.AddCommand(geohashDecodeCmd)
	geohashCmd.AddCommand(geohashCenterCmd)
	geohashEncodeCmd.Flags().IntVarP(
		&geohashOptions.Precision,
		"precision",
		"p",
		6,
		"Number of geohash characters",
	)
	geohashEncodeCmd.Flags().BoolVar(
		&geohashOptions.Wrap,
		"wrap",
		false,
		"Clamp latitude and wrap longitude instead of rejecting out of range input",
	)
}
