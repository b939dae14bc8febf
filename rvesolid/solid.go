// Package rvesolid - CSG construction of the cell solids.
package rvesolid

import (
	"fmt"
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/fibrelab/rvegen"
	"github.com/fibrelab/rvegen/packing"
)

// Solid holds the constructed solids of one cell in cell coordinates: the
// box spans [0,W]×[0,H]×[0,D], matching mesh and report coordinates.
type Solid struct {
	Cell   sdf.SDF3 // the full cell box
	Fibers sdf.SDF3 // union of fiber cylinders clipped to the box; nil for an empty set
	Matrix sdf.SDF3 // the box minus the fibers
}

// Build constructs the solids for a packed set. Every fiber contributes a
// full-depth cylinder at each periodic image whose disc reaches the cell,
// and the union is clipped to the box, so a seam-crossing fiber reappears
// on the opposite side exactly as the periodic metric places it. The
// matrix is the box minus that union; together they tile the cell.
func Build(fs *packing.FiberSet) (*Solid, error) {
	if fs == nil {
		return nil, ErrNilFiberSet
	}
	var err error
	if err = fs.Domain.Validate(); err != nil {
		return nil, err
	}
	if math.IsNaN(fs.Radius) || math.IsInf(fs.Radius, 0) || fs.Radius <= 0 {
		return nil, ErrRadiusRange
	}

	var (
		dom = fs.Domain
		box sdf.SDF3
	)
	box, err = sdf.Box3D(v3.Vec{X: dom.W, Y: dom.H, Z: dom.D}, 0)
	if err != nil {
		return nil, fmt.Errorf("rvesolid: cell box: %w", err)
	}
	// Box3D centers the box at the origin; shift to the min-corner frame.
	box = sdf.Transform3D(box, sdf.Translate3d(v3.Vec{X: dom.W / 2, Y: dom.H / 2, Z: dom.D / 2}))

	var (
		fibers    sdf.SDF3
		cyl       sdf.SDF3
		cylinders int
	)
	for _, f := range fs.Fibers {
		for _, img := range dom.Images(f.Center) {
			if img.X < -fs.Radius || img.X > dom.W+fs.Radius {
				continue
			}
			if img.Y < -fs.Radius || img.Y > dom.H+fs.Radius {
				continue
			}
			cyl, err = sdf.Cylinder3D(dom.D, fs.Radius, 0)
			if err != nil {
				return nil, fmt.Errorf("rvesolid: fiber %d: %w", f.ID, err)
			}
			cyl = sdf.Transform3D(cyl, sdf.Translate3d(v3.Vec{X: img.X, Y: img.Y, Z: dom.D / 2}))
			if fibers == nil {
				fibers = cyl
			} else {
				fibers = sdf.Union3D(fibers, cyl)
			}
			cylinders++
		}
	}

	var matrix sdf.SDF3
	matrix = box
	if fibers != nil {
		fibers = sdf.Intersect3D(fibers, box)
		matrix = sdf.Difference3D(box, fibers)
	}
	rvegen.Logger().Debug("rvesolid: solids built",
		"fibers", fs.Len(), "cylinders", cylinders)
	return &Solid{Cell: box, Fibers: fibers, Matrix: matrix}, nil
}
