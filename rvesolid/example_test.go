package rvesolid_test

import (
	"fmt"

	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/fibrelab/rvegen/packing"
	"github.com/fibrelab/rvegen/periodic"
	"github.com/fibrelab/rvegen/rvesolid"
)

func ExampleBuild() {
	fs := &packing.FiberSet{
		Domain: periodic.Domain{W: 1, H: 1, D: 0.2},
		Radius: 0.25,
		Fibers: []packing.Fiber{{ID: 1, Center: periodic.Point{X: 0.5, Y: 0.5}}},
	}

	s, err := rvesolid.Build(fs)
	if err != nil {
		fmt.Println("build:", err)
		return
	}

	center := v3.Vec{X: 0.5, Y: 0.5, Z: 0.1}
	corner := v3.Vec{X: 0.05, Y: 0.05, Z: 0.1}
	fmt.Println("center in fiber phase: ", s.Fibers.Evaluate(center) < 0)
	fmt.Println("center in matrix phase:", s.Matrix.Evaluate(center) < 0)
	fmt.Println("corner in matrix phase:", s.Matrix.Evaluate(corner) < 0)

	// Output:
	// center in fiber phase:  true
	// center in matrix phase: false
	// corner in matrix phase: true
}
