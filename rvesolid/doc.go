// Package rvesolid turns a packed fiber set into watertight solids and
// exports them for downstream meshing or inspection.
//
// Build constructs three signed-distance solids over the cell box
// [0,W]×[0,H]×[0,D]: the box itself, the fiber phase (full-depth cylinders
// placed at every periodic image whose disc reaches the cell, clipped to
// the box), and the matrix phase (box minus fibers). Placing image
// cylinders before clipping is what keeps the solid periodic: the part of
// a fiber leaving through one face re-enters through the opposite one.
//
// WriteSTL tessellates any of the solids with uniform marching cubes and
// writes binary STL to an io.Writer.
//
// Construction is deterministic: solids are assembled in fiber ID order
// and image scan order, so the same FiberSet always yields the same CSG
// tree and the same triangle stream.
//
//	s, err := rvesolid.Build(fs)
//	if err != nil { ... }
//	err = rvesolid.WriteSTL(f, s.Matrix, rvesolid.DefaultMeshCells)
package rvesolid
