// Package packing - the immutable placement result.
package packing

import (
	"math"

	"github.com/fibrelab/rvegen/periodic"
)

// Fiber is one accepted placement: an identifier reflecting insertion order
// (1-based, stable across reruns with the same seed) and the wrapped center
// position. The radius is shared set-wide and lives on FiberSet; the fiber
// spans the full depth [0, Domain.D].
type Fiber struct {
	ID     int
	Center periodic.Point
}

// FiberSet is the validated output of a completed generation run. It is
// produced once, read-only thereafter; downstream consumers (classification,
// solid construction, reporting) never mutate it.
//
// Invariants on a set returned by the engine:
//   - every center lies in the canonical cell [0,W)×[0,H);
//   - every pair of fibers keeps periodic distance ≥ MinSpacing − tolerance;
//   - IDs are 1..Len() in insertion order.
type FiberSet struct {
	Domain     periodic.Domain
	Radius     float64
	MinSpacing float64 // the d_min the set was packed against
	Fibers     []Fiber

	AchievedVf  float64 // realized volume fraction, Len()·πr²/(W·H)
	MinDistance float64 // smallest realized periodic center distance; +Inf for <2 fibers
}

// Len returns the number of fibers in the set.
func (fs *FiberSet) Len() int {
	return len(fs.Fibers)
}

// CheckSpacing re-audits the pairwise spacing invariant with the given
// absolute tolerance. It returns nil when every pair keeps periodic distance
// ≥ MinSpacing − tol, and the worst offending pair as a
// DistanceViolationError otherwise.
//
// The audit uses the same periodic metric that accepted the placements, so
// a set that left the engine as DONE always passes with the tolerance it
// was generated under.
//
// Complexity: O(n²).
func (fs *FiberSet) CheckSpacing(tol float64) error {
	var (
		worstDist float64 // smallest pair distance seen
		worstA    int     // fiber ID of the first member
		worstB    int     // fiber ID of the second member
		dist      float64
		i, j      int
	)
	worstDist = math.Inf(1)
	for i = 0; i < len(fs.Fibers)-1; i++ {
		for j = i + 1; j < len(fs.Fibers); j++ {
			dist = fs.Domain.Distance(fs.Fibers[i].Center, fs.Fibers[j].Center)
			if dist < worstDist {
				worstDist = dist
				worstA = fs.Fibers[i].ID
				worstB = fs.Fibers[j].ID
			}
		}
	}
	if worstDist < fs.MinSpacing-tol {
		return DistanceViolationError{
			IDA:         worstA,
			IDB:         worstB,
			Distance:    worstDist,
			MinDistance: fs.MinSpacing,
		}
	}
	return nil
}

// minPairDistance returns the smallest periodic center distance over all
// pairs, or +Inf when fewer than two centers exist. Indices of the
// realizing pair are returned for diagnostics.
//
// Complexity: O(n²).
func minPairDistance(dom periodic.Domain, centers []periodic.Point) (float64, int, int) {
	var (
		best   float64
		bi, bj int
		dist   float64
		i, j   int
	)
	best = math.Inf(1)
	for i = 0; i < len(centers)-1; i++ {
		for j = i + 1; j < len(centers); j++ {
			dist = dom.Distance(centers[i], centers[j])
			if dist < best {
				best = dist
				bi, bj = i, j
			}
		}
	}
	return best, bi, bj
}

// achievedVf returns the volume fraction realized by n fibers of radius r.
func achievedVf(dom periodic.Domain, r float64, n int) float64 {
	return float64(n) * math.Pi * r * r / dom.Area()
}

// targetCount returns round(Vf·W·H/(π·r²)).
func targetCount(dom periodic.Domain, r, vf float64) int {
	return int(math.Round(vf * dom.Area() / (math.Pi * r * r)))
}
