package main

import (
	"flag"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/lvtsp/config"
	"github.com/katalvlaran/lvtsp/pointset"
)

func runGenerate(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("generate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	n := fs.Int("n", 0, "number of points (required, >= 2)")
	out := fs.String("o", "", "output file (default points<N>.json)")
	fs.Int64("seed", 0, "random seed (0 = time based)")
	fs.Float64("width", pointset.DefaultWidth, "box width")
	fs.Float64("height", pointset.DefaultHeight, "box height")
	if err := parse(fs, args); err != nil {
		return err
	}
	if *n < 2 {
		fmt.Fprintln(stderr, "generate: -n must be at least 2")
		fs.Usage()
		return errUsage
	}

	cfg, err := config.Load(config.WithOverrides(overrides(fs, map[string]string{
		"seed":   "generate.seed",
		"width":  "generate.width",
		"height": "generate.height",
	})))
	if err != nil {
		return err
	}

	seed := cfg.Generate.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	set, err := pointset.Generate(rand.New(rand.NewSource(seed)), *n, cfg.Generate.Width, cfg.Generate.Height)
	if err != nil {
		return err
	}

	path := *out
	if path == "" {
		path = pointset.GeneratedPath(*n)
	}
	if err := pointset.Save(path, set); err != nil {
		return err
	}
	fmt.Fprintf(stdout, "wrote %s points to %s\n", humanize.Comma(int64(*n)), path)

	return nil
}
