// Package periodic - torus primitives shared by packing, classification and
// pairing. See doc.go for the package contract.
package periodic

import (
	"errors"
	"math"
)

// ErrNonPositiveExtent is returned by Validate when W, H or D is zero or negative.
var ErrNonPositiveExtent = errors.New("periodic: domain extent must be positive")

// ErrNonFiniteExtent is returned by Validate when W, H or D is NaN or ±Inf.
var ErrNonFiniteExtent = errors.New("periodic: domain extent must be finite")

// Point is a position or displacement in the RVE cross-section plane.
type Point struct {
	X float64
	Y float64
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{X: p.X * s, Y: p.Y * s}
}

// Norm returns the Euclidean length of p viewed as a displacement.
func (p Point) Norm() float64 {
	return math.Hypot(p.X, p.Y)
}

// Domain is the RVE unit cell: a W×H cross-section, periodic in both planar
// axes, extruded over depth D. The metric operations below act on the
// cross-section only; D is carried for consumers that extrude it.
type Domain struct {
	W float64 // periodic extent along x
	H float64 // periodic extent along y
	D float64 // extrusion depth along z (not a metric axis)
}

// Validate checks that all three extents are finite and positive.
//
// Complexity: O(1).
func (d Domain) Validate() error {
	var e float64
	for _, e = range [3]float64{d.W, d.H, d.D} {
		if math.IsNaN(e) || math.IsInf(e, 0) {
			return ErrNonFiniteExtent
		}
		if e <= 0 {
			return ErrNonPositiveExtent
		}
	}
	return nil
}

// Area returns the cross-section area W·H.
func (d Domain) Area() float64 {
	return d.W * d.H
}

// Wrap folds p into the canonical cell [0,W)×[0,H).
//
// Contract: for any finite p, both coordinates of the result are ≥ 0 and
// strictly below the corresponding extent.
//
// Complexity: O(1).
func (d Domain) Wrap(p Point) Point {
	return Point{X: wrapCoord(p.X, d.W), Y: wrapCoord(p.Y, d.H)}
}

// wrapCoord maps v onto [0,extent). Two rounding hazards are folded away:
// a tiny negative v lands on the extent itself after the shift, and Mod of
// a negative multiple yields -0.
func wrapCoord(v, extent float64) float64 {
	var m float64
	m = math.Mod(v, extent)
	if m < 0 {
		m += extent
	}
	if m >= extent {
		m -= extent
	}
	if m == 0 {
		m = 0
	}
	return m
}

// DistanceSq returns the squared minimum-image distance between p and q:
// the smallest squared Euclidean distance from p to any of the nine periodic
// images of q. Use it when only comparisons are needed; it avoids the root.
//
// Complexity: O(1), nine-image scan.
func (d Domain) DistanceSq(p, q Point) float64 {
	var (
		best float64 // smallest squared distance so far
		dx   float64 // x-delta to the current image of q
		dy   float64 // y-delta to the current image of q
		sq   float64 // squared distance to the current image
		i, j int
	)
	best = math.MaxFloat64
	for i = -1; i <= 1; i++ {
		for j = -1; j <= 1; j++ {
			dx = q.X + float64(i)*d.W - p.X
			dy = q.Y + float64(j)*d.H - p.Y
			sq = dx*dx + dy*dy
			if sq < best {
				best = sq
			}
		}
	}
	return best
}

// Distance returns the minimum-image Euclidean distance between p and q.
// This is the one metric used for packing acceptance, phase classification
// and placement audits.
//
// Complexity: O(1).
func (d Domain) Distance(p, q Point) float64 {
	return math.Sqrt(d.DistanceSq(p, q))
}

// Delta returns the displacement from p to the nearest periodic image of q,
// so that p.Add(delta) reaches q "the short way around" the torus. Ties
// between equally near images resolve to the first in the fixed scan order
// (x shift ascending, then y shift ascending).
//
// Complexity: O(1).
func (d Domain) Delta(p, q Point) Point {
	var (
		best   float64 // smallest squared distance so far
		bx, by float64 // delta realizing best
		dx, dy float64 // delta to the current image of q
		sq     float64
		i, j   int
	)
	best = math.MaxFloat64
	for i = -1; i <= 1; i++ {
		for j = -1; j <= 1; j++ {
			dx = q.X + float64(i)*d.W - p.X
			dy = q.Y + float64(j)*d.H - p.Y
			sq = dx*dx + dy*dy
			if sq < best {
				best = sq
				bx, by = dx, dy
			}
		}
	}
	return Point{X: bx, Y: by}
}

// Images returns the nine periodic images of p, ordered by x shift then y
// shift, each ascending in {-1,0,1}. Images(p)[4] is p itself. The order is
// part of the contract: callers rely on it for deterministic tie-breaking.
//
// Complexity: O(1).
func (d Domain) Images(p Point) [9]Point {
	var (
		out  [9]Point
		i, j int
		idx  int
	)
	for i = -1; i <= 1; i++ {
		for j = -1; j <= 1; j++ {
			out[idx] = Point{X: p.X + float64(i)*d.W, Y: p.Y + float64(j)*d.H}
			idx++
		}
	}
	return out
}
