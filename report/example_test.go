package report_test

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fibrelab/rvegen/packing"
	"github.com/fibrelab/rvegen/periodic"
	"github.com/fibrelab/rvegen/report"
)

func ExampleWriteCSV() {
	fs := &packing.FiberSet{
		Domain: periodic.Domain{W: 1, H: 1, D: 0.01},
		Radius: 0.05,
		Fibers: []packing.Fiber{
			{ID: 1, Center: periodic.Point{X: 0.25, Y: 0.5}},
			{ID: 2, Center: periodic.Point{X: 0.75, Y: 0.5}},
		},
	}

	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, fs, 0.30); err != nil {
		fmt.Println("write:", err)
		return
	}

	// The second metadata line carries the generation time, so print the
	// stable part of the table only.
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	for _, line := range lines[8:] {
		fmt.Println(line)
	}
	// Output:
	// Fiber_ID,X_Coordinate,Y_Coordinate,Z_Start,Z_End
	// 1,0.25000000,0.50000000,0.00000000,0.01000000
	// 2,0.75000000,0.50000000,0.00000000,0.01000000
}

func ExampleSummarize() {
	fs := &packing.FiberSet{
		Domain:     periodic.Domain{W: 1, H: 1, D: 0.01},
		Radius:     0.05,
		MinSpacing: 0.25,
		Fibers: []packing.Fiber{
			{ID: 1, Center: periodic.Point{X: 0.25, Y: 0.5}},
			{ID: 2, Center: periodic.Point{X: 0.75, Y: 0.5}},
		},
	}

	s, err := report.Summarize(fs, 0.30)
	if err != nil {
		fmt.Println("summarize:", err)
		return
	}
	fmt.Printf("pairs: %d, min distance: %.3f, ratio: %.2f, passed: %v\n",
		s.PairCount, s.MinDistance, s.SpacingRatio, s.Passed())
	// Output:
	// pairs: 1, min distance: 0.500, ratio: 2.00, passed: true
}
