// Command dehaze removes atmospheric haze from a photograph.
//
// Usage:
//
//	dehaze [-r radius] [-b beta] [-maxdim n] [-intermediates] [-v] file
//
// The dehazed image is written next to the input as
// <name>_dehazed.<ext>; with -intermediates (the default) the raw and
// guided-filter-refined depth maps are written as
// <name>_unfiltered_depth.<ext> and <name>_depth.<ext>.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/airlight/dehaze"
	"github.com/airlight/dehaze/codec"
)

func main() {
	var (
		radius        = flag.Int("r", dehaze.DefaultRadius, "guided filter window radius")
		beta          = flag.Float64("b", dehaze.DefaultBeta, "scattering coefficient of the transmission model")
		maxDim        = flag.Int("maxdim", 0, "downscale input so neither side exceeds this (0 = off)")
		intermediates = flag.Bool("intermediates", true, "also write the unfiltered and refined depth maps")
		verbose       = flag.Bool("v", false, "log progress")
		debug         = flag.Bool("debug", false, "log stage timings and internals")
	)
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] file\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelInfo
	}
	if *debug {
		level = slog.LevelDebug
	}
	dehaze.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if err := run(flag.Arg(0), *radius, float32(*beta), *maxDim, *intermediates); err != nil {
		fmt.Fprintln(os.Stderr, "dehaze:", err)
		os.Exit(1)
	}
}

func run(path string, radius int, beta float32, maxDim int, intermediates bool) error {
	fmt.Printf("Dehazing %s; radius: %d, beta: %g\n", path, radius, beta)

	hazy, err := codec.Load(path, codec.LoadOptions{MaxDim: maxDim})
	if err != nil {
		return err
	}

	res, err := dehaze.Process(hazy, dehaze.Options{Radius: radius, Beta: beta})
	if err != nil {
		return err
	}

	if intermediates {
		if err := codec.SaveGray(res.RawDepth, outputName(path, "unfiltered_depth")); err != nil {
			return err
		}
		if err := codec.SaveGray(res.Depth, outputName(path, "depth")); err != nil {
			return err
		}
	}
	return codec.SaveRGB(res.Dehazed, outputName(path, "dehazed"))
}

// outputName derives "<name>_<suffix>.<ext>" from the input path,
// keeping the input's extension. An input without an extension gets the
// suffix appended bare.
func outputName(path, suffix string) string {
	ext := filepath.Ext(path)
	base := strings.TrimSuffix(path, ext)
	return base + "_" + suffix + ext
}
