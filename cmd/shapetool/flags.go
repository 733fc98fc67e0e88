package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/Faultbox/shapegen/internal/config"
	"github.com/Faultbox/shapegen/internal/logger"
	"github.com/Faultbox/shapegen/internal/shapes"
)

// shapeFlags registers shape parameters on a command's flag set. Only flags
// given on the command line override the kind's defaults.
type shapeFlags struct {
	fs *flag.FlagSet

	side, radius, inner, tube, height float64
	segments, sub                     uint
	atlas                             bool
	logLevel                          string
}

func newShapeFlags(name string) *shapeFlags {
	sf := &shapeFlags{fs: flag.NewFlagSet(name, flag.ContinueOnError)}
	sf.fs.SetOutput(os.Stderr)
	sf.fs.Float64Var(&sf.side, "side", 0, "Cube side length")
	sf.fs.Float64Var(&sf.radius, "radius", 0, "Sphere radius, cylinder outer radius or torus ring radius")
	sf.fs.Float64Var(&sf.inner, "inner", 0, "Cylinder inner radius")
	sf.fs.Float64Var(&sf.tube, "tube", 0, "Torus tube radius")
	sf.fs.Float64Var(&sf.height, "height", 0, "Cylinder height")
	sf.fs.UintVar(&sf.segments, "segments", 0, "Primary segment count")
	sf.fs.UintVar(&sf.sub, "sub", 0, "Secondary segment count (sphere, torus)")
	sf.fs.BoolVar(&sf.atlas, "atlas", false, "Cube: use the 3x2 atlas UVs")
	sf.fs.StringVar(&sf.logLevel, "log", "warn", "Log level (debug, info, warn, error)")
	return sf
}

// parse parses args, initializes logging and returns the shape config for
// the first positional argument plus the remaining positionals.
func (sf *shapeFlags) parse(args []string, usage string) (config.ShapeConfig, []string, error) {
	if err := sf.fs.Parse(args); err != nil {
		return config.ShapeConfig{}, nil, err
	}
	if sf.fs.NArg() < 1 {
		return config.ShapeConfig{}, nil, fmt.Errorf("usage: shapetool %s", usage)
	}
	if err := logger.Init(config.LoggingConfig{Level: sf.logLevel}); err != nil {
		return config.ShapeConfig{}, nil, err
	}

	cfg := config.DefaultShape(sf.fs.Arg(0))
	var err error
	sf.fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "side":
			cfg.Side = float32(sf.side)
		case "radius":
			cfg.Radius = float32(sf.radius)
		case "inner":
			cfg.InnerRadius = float32(sf.inner)
		case "tube":
			cfg.TubeRadius = float32(sf.tube)
		case "height":
			cfg.Height = float32(sf.height)
		case "segments":
			cfg.Segments, err = segments(f.Name, sf.segments, err)
		case "sub":
			cfg.SubSegments, err = segments(f.Name, sf.sub, err)
		case "atlas":
			cfg.AtlasUV = sf.atlas
		}
	})
	if err != nil {
		return config.ShapeConfig{}, nil, err
	}
	return cfg, sf.fs.Args()[1:], nil
}

// build parses args and generates the shape.
func (sf *shapeFlags) build(args []string, usage string) (*shapes.Model, []string, error) {
	cfg, rest, err := sf.parse(args, usage)
	if err != nil {
		return nil, nil, err
	}
	m, err := shapes.Build(cfg)
	if err != nil {
		return nil, nil, err
	}
	return m, rest, nil
}

// segments narrows a count to uint16, keeping the first error seen.
func segments(name string, v uint, prev error) (uint16, error) {
	if prev != nil {
		return 0, prev
	}
	if v > 0xFFFF {
		return 0, fmt.Errorf("-%s %d exceeds 65535", name, v)
	}
	return uint16(v), nil
}
