// Copyright 2025 The GeoPoints Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"github.com/netwatch/geopoints/cmd"
)

var Version = "development"

func main() {
	cmd.Execute(Version)
}
