// Package pbc - error taxonomy of boundary pairing.
//
// Sentinels cover contract violations caught before matching starts; the
// typed PairingError reports a fatal matching outcome. Pairing is
// all-or-nothing: no partial PairedNodeSet is ever exposed.
package pbc

import (
	"errors"
	"fmt"
)

// ErrUnknownAxis is returned when a direction is not AxisX, AxisY or AxisZ.
var ErrUnknownAxis = errors.New("pbc: unknown axis")

// ErrFaceToleranceRange is returned when the face tolerance is not a positive finite number.
var ErrFaceToleranceRange = errors.New("pbc: face tolerance must be positive and finite")

// ErrPairToleranceRange is returned when the pairing tolerance is not a positive finite number.
var ErrPairToleranceRange = errors.New("pbc: pairing tolerance must be positive and finite")

// ErrFaceOverlap is returned when the face tolerance spans both opposite
// faces at once, so face membership would be ambiguous.
var ErrFaceOverlap = errors.New("pbc: face tolerance overlaps opposite faces")

// ErrNodeID is returned when a node identifier is not positive.
var ErrNodeID = errors.New("pbc: node id must be positive")

// ErrDuplicateNodeID is returned when two nodes share an identifier.
var ErrDuplicateNodeID = errors.New("pbc: duplicate node id")

// ErrNonFiniteCoordinate is returned when a node coordinate is NaN or ±Inf.
var ErrNonFiniteCoordinate = errors.New("pbc: node coordinate must be finite")

// ErrNilWriter is returned by WriteEquations when the writer is nil.
var ErrNilWriter = errors.New("pbc: writer must be non-nil")

// ErrNilPairedSet is returned by WriteEquations when a set is nil.
var ErrNilPairedSet = errors.New("pbc: paired node set must be non-nil")

// PairingError reports a fatal matching outcome for one node: no counterpart
// within tolerance, several counterparts, or a single counterpart sitting at
// the wrong separation across the cell. It names the node and its position,
// so the offending mesh region can be found directly.
type PairingError struct {
	Node       Node    // the node that failed to pair
	Direction  Axis    // direction the match ran across
	Matches    int     // counterparts found within tolerance
	Separation float64 // realized coordinate separation, set when Matches == 1
	Extent     float64 // required separation, set when Matches == 1
	Tolerance  float64 // pairing tolerance the match ran under
}

func (e PairingError) Error() string {
	var at string
	at = fmt.Sprintf("node %d at (%.6g, %.6g, %.6g)", e.Node.ID, e.Node.X, e.Node.Y, e.Node.Z)
	switch {
	case e.Matches == 0:
		return fmt.Sprintf("pbc: %s has no counterpart across %s within tolerance %g",
			at, e.Direction, e.Tolerance)
	case e.Matches > 1:
		return fmt.Sprintf("pbc: %s has %d counterparts across %s within tolerance %g",
			at, e.Matches, e.Direction, e.Tolerance)
	default:
		return fmt.Sprintf("pbc: %s paired across %s at separation %.6g, want extent %.6g",
			at, e.Direction, e.Separation, e.Extent)
	}
}
