// Package rvesolid - binary STL export.
package rvesolid

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"github.com/deadsy/sdfx/render"
	"github.com/deadsy/sdfx/sdf"

	"github.com/fibrelab/rvegen"
)

// DefaultMeshCells is a balanced marching-cubes resolution for exporting a
// full cell.
const DefaultMeshCells = 200

// WriteSTL tessellates s with uniform marching cubes at the given cell
// count and writes the triangles as binary STL: an 80-byte header, a
// uint32 triangle count, then one 50-byte record per triangle (face
// normal, three vertices, zero attribute), all little-endian.
//
// Complexity: O(cells³) evaluations + O(triangles) output.
func WriteSTL(w io.Writer, s sdf.SDF3, cells int) error {
	if w == nil {
		return ErrNilWriter
	}
	if s == nil {
		return ErrNilSolid
	}
	if cells < 1 {
		return ErrMeshCells
	}

	tris := render.ToTriangles(s, render.NewMarchingCubesUniform(cells))

	var bw *bufio.Writer
	bw = bufio.NewWriter(w)
	var header [80]byte
	copy(header[:], "rvegen binary STL")
	bw.Write(header[:])
	var count [4]byte
	binary.LittleEndian.PutUint32(count[:], uint32(len(tris)))
	bw.Write(count[:])

	var (
		rec [50]byte
		off int
		j   int
	)
	for _, tri := range tris {
		n := tri.Normal()
		putF32(rec[0:], n.X)
		putF32(rec[4:], n.Y)
		putF32(rec[8:], n.Z)
		for j = 0; j < 3; j++ {
			off = 12 + j*12
			putF32(rec[off:], tri[j].X)
			putF32(rec[off+4:], tri[j].Y)
			putF32(rec[off+8:], tri[j].Z)
		}
		bw.Write(rec[:])
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("rvesolid: write stl: %w", err)
	}
	rvegen.Logger().Debug("rvesolid: stl written", "triangles", len(tris), "cells", cells)
	return nil
}

// putF32 stores f as a little-endian 32-bit float at the front of b.
func putF32(b []byte, f float64) {
	binary.LittleEndian.PutUint32(b, math.Float32bits(float32(f)))
}
