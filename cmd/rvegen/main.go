// Command rvegen packs a periodic fiber cell and writes the requested
// artifacts: the fiber table and spacing summary always, plus optional STL,
// PNG and periodic constraint outputs.
//
// Usage:
//
//	rvegen [-config cell.json] [-seed N] [-vf F] [-csv fibers.csv]
//	       [-stl cell.stl] [-stl-part fibers|matrix|cell] [-stl-cells N]
//	       [-png section.png] [-png-width N] [-preview small.png]
//	       [-nodes nodes.json] [-equations pbc.inp] [-v]
//
// The process exits non-zero with the failure on stderr; packing failures
// keep their diagnosis (which pair collided, how far the fraction fell
// short) in the message.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/fibrelab/rvegen"
	"github.com/fibrelab/rvegen/packing"
	"github.com/fibrelab/rvegen/pbc"
	"github.com/fibrelab/rvegen/periodic"
	"github.com/fibrelab/rvegen/phase"
	"github.com/fibrelab/rvegen/raster"
	"github.com/fibrelab/rvegen/report"
	"github.com/fibrelab/rvegen/rvesolid"
)

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fl := flag.NewFlagSet("rvegen", flag.ContinueOnError)
	var (
		configPath = fl.String("config", "", "JSON generation config (built-in demo cell when empty)")
		seed       = fl.Int64("seed", 0, "override the RNG seed (0 keeps the config seed)")
		vf         = fl.Float64("vf", 0, "override the target volume fraction (0 keeps the config value)")
		csvPath    = fl.String("csv", "fiber_centers.csv", "fiber table output path (empty skips it)")

		stlPath  = fl.String("stl", "", "write a binary STL to this path")
		stlPart  = fl.String("stl-part", "fibers", "solid to mesh: fibers, matrix or cell")
		stlCells = fl.Int("stl-cells", rvesolid.DefaultMeshCells, "marching cubes resolution")

		pngPath      = fl.String("png", "", "write a cross-section PNG to this path")
		pngWidth     = fl.Int("png-width", 1024, "cross-section width in pixels")
		previewPath  = fl.String("preview", "", "write a downsampled preview PNG to this path")
		previewWidth = fl.Int("preview-width", 256, "preview width in pixels")

		nodesPath = fl.String("nodes", "", "boundary node JSON to pair across the cell faces")
		eqPath    = fl.String("equations", "", "write *EQUATION cards to this path (needs -nodes)")
		faceTol   = fl.Float64("face-tol", pbc.DefaultOptions().FaceTolerance, "face membership tolerance")
		pairTol   = fl.Float64("pair-tol", pbc.DefaultOptions().PairTolerance, "in-plane pairing tolerance")

		verbose = fl.Bool("v", false, "log progress to stderr")
	)
	if err := fl.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}
	if fl.NArg() > 0 {
		return fmt.Errorf("rvegen: unexpected argument %q", fl.Arg(0))
	}
	if *eqPath != "" && *nodesPath == "" {
		return errors.New("rvegen: -equations needs -nodes")
	}
	if *verbose {
		rvegen.SetLogger(slog.New(slog.NewTextHandler(os.Stderr,
			&slog.HandlerOptions{Level: slog.LevelDebug})))
		defer rvegen.SetLogger(nil)
	}

	cfg, opts, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *seed != 0 {
		opts.Seed = *seed
	}
	if *vf > 0 {
		cfg.TargetVf = *vf
	}

	fs, err := packing.Generate(cfg, opts)
	if err != nil {
		return err
	}

	if *csvPath != "" {
		err = writeFile(*csvPath, func(w io.Writer) error {
			return report.WriteCSV(w, fs, cfg.TargetVf)
		})
		if err != nil {
			return err
		}
	}

	sum, err := report.Summarize(fs, cfg.TargetVf)
	if err != nil {
		return err
	}
	if err = sum.WriteText(stdout); err != nil {
		return err
	}

	if *pngPath != "" || *previewPath != "" {
		err = writeImages(fs, *pngPath, *pngWidth, *previewPath, *previewWidth)
		if err != nil {
			return err
		}
	}
	if *stlPath != "" {
		if err = writeSolid(fs, *stlPath, *stlPart, *stlCells); err != nil {
			return err
		}
	}
	if *nodesPath != "" {
		pairOpts := pbc.Options{FaceTolerance: *faceTol, PairTolerance: *pairTol}
		if err = pairNodes(stdout, cfg.Domain, *nodesPath, *eqPath, pairOpts); err != nil {
			return err
		}
	}
	return nil
}

// defaultConfig is the built-in demo cell: a 57×57×10 µm block of 3.5 µm
// carbon fibers at half volume fraction.
func defaultConfig() packing.Config {
	return packing.Config{
		Domain:        periodic.Domain{W: 0.057, H: 0.057, D: 0.01},
		Radius:        0.0035,
		TargetVf:      0.5,
		MinDistFactor: 0.025,
	}
}

func loadConfig(path string) (packing.Config, packing.Options, error) {
	if path == "" {
		return defaultConfig(), packing.DefaultOptions(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return packing.Config{}, packing.Options{}, err
	}
	defer f.Close()
	return packing.LoadConfig(f)
}

// writeFile creates path, streams write into it and surfaces the first
// failure, including the close.
func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func writeImages(fs *packing.FiberSet, pngPath string, pngWidth int,
	previewPath string, previewWidth int) error {
	c, err := phase.NewClassifier(fs)
	if err != nil {
		return err
	}
	ropts := raster.DefaultOptions()
	ropts.Width = pngWidth
	img, err := raster.Render(c, ropts)
	if err != nil {
		return err
	}

	if pngPath != "" {
		err = writeFile(pngPath, func(w io.Writer) error {
			return raster.WritePNG(w, img)
		})
		if err != nil {
			return err
		}
	}
	if previewPath != "" {
		preview, err := raster.Downsample(img, previewWidth)
		if err != nil {
			return err
		}
		err = writeFile(previewPath, func(w io.Writer) error {
			return raster.WritePNG(w, preview)
		})
		if err != nil {
			return err
		}
	}
	return nil
}

func writeSolid(fs *packing.FiberSet, path, part string, cells int) error {
	s, err := rvesolid.Build(fs)
	if err != nil {
		return err
	}

	solid := s.Cell
	switch part {
	case "cell":
	case "fibers":
		solid = s.Fibers
	case "matrix":
		solid = s.Matrix
	default:
		return fmt.Errorf("rvegen: unknown stl part %q (want fibers, matrix or cell)", part)
	}
	if solid == nil {
		return fmt.Errorf("rvegen: no %s in the cell to mesh", part)
	}
	return writeFile(path, func(w io.Writer) error {
		return rvesolid.WriteSTL(w, solid, cells)
	})
}

func pairNodes(stdout io.Writer, dom periodic.Domain, nodesPath, eqPath string,
	opts pbc.Options) error {
	f, err := os.Open(nodesPath)
	if err != nil {
		return err
	}
	nodes, err := pbc.LoadNodes(f)
	f.Close()
	if err != nil {
		return err
	}

	sets, err := pbc.PairAll(nodes, dom, opts)
	if err != nil {
		return err
	}
	for _, ps := range sets {
		fmt.Fprintf(stdout, "%s pairs: %d\n", ps.Direction, ps.Len())
	}
	if eqPath == "" {
		return nil
	}
	return writeFile(eqPath, func(w io.Writer) error {
		return pbc.WriteEquations(w, sets...)
	})
}
