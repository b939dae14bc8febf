// Package rvesolid - error sentinels of solid construction and export.
package rvesolid

import "errors"

// ErrNilFiberSet is returned by Build when the set is nil.
var ErrNilFiberSet = errors.New("rvesolid: FiberSet must be non-nil")

// ErrRadiusRange is returned by Build when the set's radius is not a
// positive finite number.
var ErrRadiusRange = errors.New("rvesolid: fiber radius must be positive and finite")

// ErrNilWriter is returned by WriteSTL when the writer is nil.
var ErrNilWriter = errors.New("rvesolid: writer must be non-nil")

// ErrNilSolid is returned by WriteSTL when the solid is nil.
var ErrNilSolid = errors.New("rvesolid: solid must be non-nil")

// ErrMeshCells is returned by WriteSTL when the marching-cubes resolution is < 1.
var ErrMeshCells = errors.New("rvesolid: mesh cells must be positive")
