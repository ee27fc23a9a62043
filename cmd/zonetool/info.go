package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Faultbox/navzone/pkg/navzone"
)

func infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info <zone file>",
		Short: "Show statistics for a built zone",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(args[0])
		},
	}
}

func runInfo(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var zone *navzone.Zone
	if filepath.Ext(path) == ".zone" {
		zone, err = navzone.DecodeMsgpack(f)
	} else {
		zone, err = navzone.DecodeJSON(f)
	}
	if err != nil {
		return fmt.Errorf("reading zone: %w", err)
	}

	fmt.Printf("Zone:     %s\n", path)
	fmt.Printf("Vertices: %d\n", len(zone.Vertices))
	fmt.Printf("Groups:   %d\n", len(zone.Groups))
	for i, g := range zone.Groups {
		links := 0
		portals := 0
		for _, rec := range g {
			links += len(rec.Neighbours)
			for _, p := range rec.Portals {
				if len(p) > 0 {
					portals++
				}
			}
		}
		// Links and portals are symmetric, count each edge once.
		fmt.Printf("  group %d: %d polygons, %d edges, %d portals\n",
			i, len(g), links/2, portals/2)
	}
	return nil
}
