// Package pbc derives periodic boundary pairings for an externally meshed
// cell and exports them as Abaqus constraint equations.
//
// What
//
//   - LoadNodes - reads a mesher's boundary-node export (JSON id/x/y/z).
//   - FacePartition - splits nodes into the negative and positive face of a
//     direction, within an absolute face tolerance.
//   - Pair / PairAll - matches each negative-face node (slave) to exactly
//     one positive-face node (master) agreeing on the two in-plane
//     coordinates, and verifies the matched pair is separated by the cell
//     extent. The result is a PairedNodeSet of ordered (slave, master)
//     pairs plus the direction's reference point name.
//   - WriteEquations - renders sets as *EQUATION cards imposing, per pair
//     and displacement component, u_slave − u_master − u_reference = 0.
//
// Why
//
//   - Exactly-one matching: a node with zero or several candidate partners
//     means the mesh is not periodic where it must be; pairing aborts with
//     a PairingError naming the node instead of constraining a guess.
//   - Bijective by construction: a master claimed twice, or a positive-face
//     node left unclaimed, is the same mesh defect seen from the other
//     side, and fails the same way.
//   - Two tolerances, two jobs: FaceTolerance decides face membership along
//     the pairing direction; PairTolerance bounds the in-plane mismatch of
//     a matched pair and the error of its extent separation.
//
// Determinism
//
// Faces are sorted by node ID before matching and pairs are emitted in
// slave ID order, so a derivation is a pure function of the node set:
// re-running it, or permuting the input, reproduces identical pairs.
//
// Edge and corner nodes belong to a face in more than one direction and are
// paired independently per direction, as periodic constraint generation
// conventionally does; deduplication is the consuming model's concern.
//
// Usage
//
//	nodes, err := pbc.LoadNodes(f)
//	if err != nil { ... }
//	sets, err := pbc.PairAll(nodes, dom, pbc.DefaultOptions())
//	if err != nil { ... }
//	err = pbc.WriteEquations(out, sets...)
//
// Errors
//
// Contract violations surface as package sentinels (ErrUnknownAxis,
// tolerance ranges, node id rules). Matching failures surface as the typed
// PairingError; it is fatal and never downgraded, and no partial
// PairedNodeSet is exposed.
package pbc
