package report

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"time"

	"github.com/fibrelab/rvegen"
	"github.com/fibrelab/rvegen/packing"
)

// now feeds the Generated header line; swapped for a fixed clock in tests.
var now = time.Now

func validateSet(fs *packing.FiberSet) error {
	if fs == nil {
		return ErrNilFiberSet
	}
	if err := fs.Domain.Validate(); err != nil {
		return err
	}
	if !(fs.Radius > 0) || math.IsInf(fs.Radius, 0) {
		return ErrRadiusRange
	}
	return nil
}

// WriteCSV writes the fiber center table for fs to w.
//
// The layout matches the coordinate exports consumed by downstream
// verification scripts: "#" metadata lines, one column header row, then one
// "%d,%.8f,%.8f,%.8f,%.8f" row per fiber. Fibers span the full cell depth,
// so Z_Start is always 0 and Z_End is the cell depth. targetVf is echoed
// into the metadata as given.
func WriteCSV(w io.Writer, fs *packing.FiberSet, targetVf float64) error {
	if w == nil {
		return ErrNilWriter
	}
	if err := validateSet(fs); err != nil {
		return err
	}

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# 3D RVE Fiber Center Coordinates\n")
	fmt.Fprintf(bw, "# Generated: %s\n", now().Format("2006-01-02 15:04:05"))
	fmt.Fprintf(bw, "# RVE Size (Width x Height x Depth): %.6f x %.6f x %.6f\n",
		fs.Domain.W, fs.Domain.H, fs.Domain.D)
	fmt.Fprintf(bw, "# Fiber Radius: %.6f\n", fs.Radius)
	fmt.Fprintf(bw, "# Fiber Length: %.6f\n", fs.Domain.D)
	fmt.Fprintf(bw, "# Target Volume Fraction: %.4f\n", targetVf)
	fmt.Fprintf(bw, "# Total Fiber Count: %d\n", len(fs.Fibers))
	fmt.Fprintf(bw, "#\n")
	fmt.Fprintf(bw, "Fiber_ID,X_Coordinate,Y_Coordinate,Z_Start,Z_End\n")
	for _, f := range fs.Fibers {
		fmt.Fprintf(bw, "%d,%.8f,%.8f,%.8f,%.8f\n",
			f.ID, f.Center.X, f.Center.Y, 0.0, fs.Domain.D)
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("report: write csv: %w", err)
	}

	rvegen.Logger().Debug("report: csv written", "fibers", len(fs.Fibers))
	return nil
}
