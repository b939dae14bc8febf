// Package pbc - node pairing types. See doc.go for the package contract.
package pbc

// Axis identifies a pairing direction across the cell.
type Axis int

const (
	// AxisX pairs the x=0 face with the x=W face.
	AxisX Axis = iota
	// AxisY pairs the y=0 face with the y=H face.
	AxisY
	// AxisZ pairs the z=0 face with the z=D face.
	AxisZ
)

// String names the axis for logs and diagnostics.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return "Unknown"
	}
}

// referenceName returns the reference point set driven by pairs in this
// direction, or "" for an unknown axis.
func (a Axis) referenceName() string {
	switch a {
	case AxisX:
		return "RP-X"
	case AxisY:
		return "RP-Y"
	case AxisZ:
		return "RP-Z"
	default:
		return ""
	}
}

// inPlane returns the two axes spanning the faces paired across a.
func (a Axis) inPlane() (Axis, Axis) {
	switch a {
	case AxisX:
		return AxisY, AxisZ
	case AxisY:
		return AxisX, AxisZ
	default:
		return AxisX, AxisY
	}
}

// Node is one boundary node of the external mesh: a positive label and its
// position. Coordinates are plain mesh coordinates in the closed cell box;
// face nodes sit exactly on the faces, so nothing here wraps.
type Node struct {
	ID      int
	X, Y, Z float64
}

// coord returns the node coordinate along a.
func (n Node) coord(a Axis) float64 {
	switch a {
	case AxisX:
		return n.X
	case AxisY:
		return n.Y
	default:
		return n.Z
	}
}

// NodePair binds one slave node on the negative face to its master on the
// positive face of the set's direction.
type NodePair struct {
	Slave  Node
	Master Node
}

// PairedNodeSet is the validated pairing outcome for one direction: ordered
// (slave, master) pairs sharing the direction's reference point. The
// consumer imposes, per pair and displacement component,
//
//	u_slave − u_master − u_reference = 0.
//
// A set is produced once per mesh and never mutated.
type PairedNodeSet struct {
	Direction Axis
	Extent    float64    // cell extent along Direction
	Tolerance float64    // pairing tolerance the match ran under
	Reference string     // reference point set name, RP-X / RP-Y / RP-Z
	Pairs     []NodePair // ordered by slave node ID ascending
}

// Len returns the number of pairs in the set.
func (ps *PairedNodeSet) Len() int {
	return len(ps.Pairs)
}

// Options tunes face extraction and matching. The zero value is invalid;
// start from DefaultOptions.
type Options struct {
	// FaceTolerance decides face membership: a node lies on a face when its
	// direction coordinate is within FaceTolerance of 0 or of the extent.
	FaceTolerance float64

	// PairTolerance bounds the in-plane distance between matched nodes.
	// A conforming periodic mesh pairs at distance ≈ 0; half the mesh seed
	// size is a robust bound for real meshes.
	PairTolerance float64
}

// DefaultOptions returns the usual meshing tolerances: face membership
// 1e-6, matching 5e-4 (half a 1e-3 mesh seed).
func DefaultOptions() Options {
	return Options{
		FaceTolerance: 1e-6,
		PairTolerance: 5e-4,
	}
}
