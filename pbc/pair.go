// Package pbc - face extraction and the exactly-one matcher.
package pbc

import (
	"math"
	"sort"

	"github.com/fibrelab/rvegen"
	"github.com/fibrelab/rvegen/periodic"
)

// axisExtent returns the cell extent along a.
func axisExtent(dom periodic.Domain, a Axis) (float64, error) {
	switch a {
	case AxisX:
		return dom.W, nil
	case AxisY:
		return dom.H, nil
	case AxisZ:
		return dom.D, nil
	default:
		return 0, ErrUnknownAxis
	}
}

// validateOptions checks both tolerances.
func validateOptions(opts Options) error {
	if math.IsNaN(opts.FaceTolerance) || math.IsInf(opts.FaceTolerance, 0) || opts.FaceTolerance <= 0 {
		return ErrFaceToleranceRange
	}
	if math.IsNaN(opts.PairTolerance) || math.IsInf(opts.PairTolerance, 0) || opts.PairTolerance <= 0 {
		return ErrPairToleranceRange
	}
	return nil
}

// FacePartition splits nodes into the negative face (direction coordinate
// within faceTol of 0) and the positive face (within faceTol of the extent)
// of dir. Interior nodes are dropped; edge and corner nodes land on a face
// for every direction they touch. Both returned slices are fresh copies
// sorted by node ID, so the result does not depend on input order.
//
// Complexity: O(n log n).
func FacePartition(nodes []Node, dom periodic.Domain, dir Axis, faceTol float64) (negative, positive []Node, err error) {
	if err = dom.Validate(); err != nil {
		return nil, nil, err
	}
	var extent float64
	if extent, err = axisExtent(dom, dir); err != nil {
		return nil, nil, err
	}
	if math.IsNaN(faceTol) || math.IsInf(faceTol, 0) || faceTol <= 0 {
		return nil, nil, ErrFaceToleranceRange
	}
	if extent <= 2*faceTol {
		return nil, nil, ErrFaceOverlap
	}

	var (
		n Node
		c float64
	)
	for _, n = range nodes {
		if nonFinite(n.X) || nonFinite(n.Y) || nonFinite(n.Z) {
			return nil, nil, ErrNonFiniteCoordinate
		}
		c = n.coord(dir)
		if math.Abs(c) < faceTol {
			negative = append(negative, n)
		}
		if math.Abs(c-extent) < faceTol {
			positive = append(positive, n)
		}
	}
	sort.Slice(negative, func(i, j int) bool { return negative[i].ID < negative[j].ID })
	sort.Slice(positive, func(i, j int) bool { return positive[i].ID < positive[j].ID })
	return negative, positive, nil
}

// Pair matches every negative-face node of dir to exactly one positive-face
// node agreeing on the two in-plane coordinates within opts.PairTolerance
// (planar Euclidean distance), and verifies that each matched pair is
// separated by the cell extent along dir within the same tolerance. Zero
// candidates, several candidates, a wrong separation, or a positive-face
// node left without a partner are all fatal PairingErrors.
//
// The result is a pure function of the node set: slaves are processed in
// node ID order and the output is ordered by slave ID, so re-derivation
// over the same mesh reproduces the pairs exactly.
//
// Complexity: O(n_neg·n_pos) after an O(n log n) partition.
func Pair(nodes []Node, dom periodic.Domain, dir Axis, opts Options) (*PairedNodeSet, error) {
	var err error
	if err = validateOptions(opts); err != nil {
		return nil, err
	}
	var neg, pos []Node
	if neg, pos, err = FacePartition(nodes, dom, dir, opts.FaceTolerance); err != nil {
		return nil, err
	}
	var extent float64
	extent, _ = axisExtent(dom, dir)

	var (
		u, v  Axis
		tolSq float64
	)
	u, v = dir.inPlane()
	tolSq = opts.PairTolerance * opts.PairTolerance

	var (
		used    []bool
		pairs   []NodePair
		s       Node
		du, dv  float64
		matches int
		best    int
		sep     float64
		i, j    int
	)
	used = make([]bool, len(pos))
	pairs = make([]NodePair, 0, len(neg))
	for i = 0; i < len(neg); i++ {
		s = neg[i]
		matches, best = 0, -1
		for j = 0; j < len(pos); j++ {
			du = pos[j].coord(u) - s.coord(u)
			dv = pos[j].coord(v) - s.coord(v)
			if du*du+dv*dv < tolSq {
				matches++
				best = j
			}
		}
		if matches != 1 {
			return nil, PairingError{
				Node:      s,
				Direction: dir,
				Matches:   matches,
				Tolerance: opts.PairTolerance,
			}
		}
		sep = pos[best].coord(dir) - s.coord(dir)
		if math.Abs(sep-extent) >= opts.PairTolerance {
			return nil, PairingError{
				Node:       s,
				Direction:  dir,
				Matches:    1,
				Separation: sep,
				Extent:     extent,
				Tolerance:  opts.PairTolerance,
			}
		}
		if used[best] {
			return nil, PairingError{
				Node:      pos[best],
				Direction: dir,
				Matches:   reverseMatches(pos[best], neg, u, v, tolSq),
				Tolerance: opts.PairTolerance,
			}
		}
		used[best] = true
		pairs = append(pairs, NodePair{Slave: s, Master: pos[best]})
	}
	for j = 0; j < len(pos); j++ {
		if !used[j] {
			return nil, PairingError{
				Node:      pos[j],
				Direction: dir,
				Matches:   0,
				Tolerance: opts.PairTolerance,
			}
		}
	}

	rvegen.Logger().Debug("pbc: direction paired",
		"direction", dir.String(), "pairs", len(pairs), "tolerance", opts.PairTolerance)
	return &PairedNodeSet{
		Direction: dir,
		Extent:    extent,
		Tolerance: opts.PairTolerance,
		Reference: dir.referenceName(),
		Pairs:     pairs,
	}, nil
}

// PairAll derives the X, Y and Z sets in that order over one node cloud.
// The first failing direction aborts the derivation.
func PairAll(nodes []Node, dom periodic.Domain, opts Options) ([]*PairedNodeSet, error) {
	var (
		out []*PairedNodeSet
		ps  *PairedNodeSet
		err error
	)
	out = make([]*PairedNodeSet, 0, 3)
	for _, dir := range [3]Axis{AxisX, AxisY, AxisZ} {
		if ps, err = Pair(nodes, dom, dir, opts); err != nil {
			return nil, err
		}
		out = append(out, ps)
	}
	return out, nil
}

// reverseMatches counts negative-face nodes within the in-plane tolerance of
// p. Used only to report how contended a doubly-claimed master node is.
func reverseMatches(p Node, neg []Node, u, v Axis, tolSq float64) int {
	var (
		count  int
		du, dv float64
		i      int
	)
	for i = 0; i < len(neg); i++ {
		du = neg[i].coord(u) - p.coord(u)
		dv = neg[i].coord(v) - p.coord(v)
		if du*du+dv*dv < tolSq {
			count++
		}
	}
	return count
}

// nonFinite reports whether v is NaN or ±Inf.
func nonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
