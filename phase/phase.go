// Package phase - two-phase point classification over a packed cell.
// See doc.go for the package contract.
package phase

import (
	"errors"
	"math"

	"github.com/fibrelab/rvegen/packing"
	"github.com/fibrelab/rvegen/periodic"
)

// ErrNilFiberSet is returned by NewClassifier when the set is nil.
var ErrNilFiberSet = errors.New("phase: FiberSet must be non-nil")

// ErrRadiusRange is returned by NewClassifier when the set's radius is not a
// positive finite number.
var ErrRadiusRange = errors.New("phase: fiber radius must be positive and finite")

// ErrGridSize is returned by VolumeFraction when a grid dimension is < 1.
var ErrGridSize = errors.New("phase: grid dimensions must be positive")

// Material labels one of the two constituents of the cell.
type Material int

const (
	// Matrix is the embedding material; the zero value, so an unset label
	// reads as empty space.
	Matrix Material = iota
	// Fiber is the reinforcement phase.
	Fiber
)

// String names the material for logs and diagnostics.
func (m Material) String() string {
	switch m {
	case Fiber:
		return "Fiber"
	case Matrix:
		return "Matrix"
	default:
		return "Unknown"
	}
}

// Classifier resolves points to materials for one fiber set. It precomputes,
// per fiber, the periodic images whose disc can reach the canonical cell, so
// a query scans only image centers that could possibly contain it.
//
// The struct is immutable after NewClassifier returns and therefore safe for
// concurrent use.
type Classifier struct {
	dom     periodic.Domain
	radius  float64
	rSq     float64
	centers []periodic.Point // pruned image centers, all fibers flattened
}

// NewClassifier validates the set and builds the pruned image table.
// An empty set is legal: every point then classifies as Matrix.
//
// Complexity: O(n) over the nine images of each fiber.
func NewClassifier(fs *packing.FiberSet) (*Classifier, error) {
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

	var c Classifier
	c.dom = fs.Domain
	c.radius = fs.Radius
	c.rSq = fs.Radius * fs.Radius
	c.centers = make([]periodic.Point, 0, len(fs.Fibers))

	// Keep an image iff its disc overlaps the canonical cell box. A wrapped
	// query point within radius of any image center implies that image passed
	// this test, so pruning never changes a classification.
	var (
		images [9]periodic.Point
		img    periodic.Point
		i      int
	)
	for _, f := range fs.Fibers {
		images = c.dom.Images(f.Center)
		for i = 0; i < len(images); i++ {
			img = images[i]
			if img.X < -c.radius || img.X > c.dom.W+c.radius {
				continue
			}
			if img.Y < -c.radius || img.Y > c.dom.H+c.radius {
				continue
			}
			c.centers = append(c.centers, img)
		}
	}
	return &c, nil
}

// Domain returns the cell the classifier was built over.
func (c *Classifier) Domain() periodic.Domain { return c.dom }

// Radius returns the shared fiber radius.
func (c *Classifier) Radius() float64 { return c.radius }

// Classify resolves p to Fiber or Matrix. The query is wrapped into the
// canonical cell first, so any finite position is a valid argument. A point
// exactly on a fiber boundary circle classifies as Fiber.
//
// Complexity: O(m) over the pruned image table, with early exit on the first
// containing disc.
func (c *Classifier) Classify(p periodic.Point) Material {
	p = c.dom.Wrap(p)
	var (
		dx, dy float64
		i      int
	)
	for i = 0; i < len(c.centers); i++ {
		dx = c.centers[i].X - p.X
		dy = c.centers[i].Y - p.Y
		if dx*dx+dy*dy <= c.rSq {
			return Fiber
		}
	}
	return Matrix
}

// VolumeFraction estimates the fiber area fraction by classifying the
// midpoints of an nx×ny grid over the cell. The estimate is deterministic
// and converges to the exact fraction as the grid refines; for a valid
// non-overlapping set that limit is Len·π·r²/(W·H).
//
// Complexity: O(nx·ny·m).
func (c *Classifier) VolumeFraction(nx, ny int) (float64, error) {
	if nx < 1 || ny < 1 {
		return 0, ErrGridSize
	}
	var (
		sx, sy float64 // grid cell extents
		p      periodic.Point
		inside int
		ix, iy int
	)
	sx = c.dom.W / float64(nx)
	sy = c.dom.H / float64(ny)
	for iy = 0; iy < ny; iy++ {
		p.Y = (float64(iy) + 0.5) * sy
		for ix = 0; ix < nx; ix++ {
			p.X = (float64(ix) + 0.5) * sx
			if c.Classify(p) == Fiber {
				inside++
			}
		}
	}
	return float64(inside) / float64(nx*ny), nil
}
