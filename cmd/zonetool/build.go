package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/navzone/internal/config"
	"github.com/Faultbox/navzone/internal/logger"
	"github.com/Faultbox/navzone/pkg/formats"
	"github.com/Faultbox/navzone/pkg/mesh"
	"github.com/Faultbox/navzone/pkg/navzone"
)

func buildCmd() *cobra.Command {
	var (
		configFile string
		output     string
		format     string
		tolerance  float64
		debug      bool
	)
	c := &cobra.Command{
		Use:   "build <mesh.obj>",
		Short: "Build a navigation zone from a triangulated OBJ mesh",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configFile)
			if err != nil {
				return err
			}
			cfg.Apply(config.Overrides{
				Debug:     debug,
				Tolerance: float32(tolerance),
				Format:    format,
			})
			if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
				return err
			}
			defer logger.Sync()
			return runBuild(args[0], output, cfg)
		},
	}
	c.Flags().StringVar(&configFile, "config", "", "config file")
	c.Flags().StringVarP(&output, "output", "o", "", "output file (default: input name with zone extension)")
	c.Flags().StringVar(&format, "format", "", "output format: json or msgpack")
	c.Flags().Float64Var(&tolerance, "tolerance", 0, "vertex weld tolerance")
	c.Flags().BoolVar(&debug, "debug", false, "enable debug logging")
	return c
}

func runBuild(input, output string, cfg *config.Config) error {
	start := time.Now()

	obj, err := formats.LoadOBJ(input)
	if err != nil {
		return fmt.Errorf("loading %s: %w", input, err)
	}
	logger.Info("mesh loaded",
		zap.String("file", input),
		zap.Int("vertices", len(obj.Vertices)),
		zap.Int("faces", len(obj.Faces)))

	m, err := mesh.FromOBJ(obj, cfg.Build.WeldTolerance)
	if err != nil {
		return err
	}
	logger.Debug("vertices welded",
		zap.Int("vertices", len(m.Vertices)),
		zap.Int("faces", len(m.Faces)),
		zap.Float64("tolerance", float64(cfg.Build.WeldTolerance)))

	zone, err := navzone.BuildZone(m)
	if err != nil {
		return fmt.Errorf("building zone: %w", err)
	}

	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + zoneExt(cfg.Output.Format)
	}
	if err := writeZone(zone, output, cfg.Output.Format); err != nil {
		return err
	}

	polys := 0
	for _, g := range zone.Groups {
		polys += len(g)
	}
	logger.Info("zone written",
		zap.String("file", output),
		zap.Int("groups", len(zone.Groups)),
		zap.Int("polygons", polys),
		zap.Duration("elapsed", time.Since(start)))
	return nil
}

// zoneExt picks the default output extension for a format.
func zoneExt(format string) string {
	if format == "msgpack" {
		return ".zone"
	}
	return ".json"
}

func writeZone(zone *navzone.Zone, path, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	switch format {
	case "msgpack":
		return zone.EncodeMsgpack(f)
	case "", "json":
		return zone.EncodeJSON(f)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
}
