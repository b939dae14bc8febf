// Package pbc - Abaqus *EQUATION export.
package pbc

import (
	"bufio"
	"fmt"
	"io"
)

// WriteEquations renders the sets as Abaqus keyword input. Each pair emits
// three linear constraints, one per displacement component:
//
//	*EQUATION
//	3
//	<slave>,  dof,  1.0
//	<master>, dof, -1.0
//	<reference>, dof, -1.0
//
// Slave and master terms reference mesh node numbers; the reference term
// names the direction's reference point set (RP-X, RP-Y, RP-Z), which the
// consuming model must define. Directions are emitted in argument order,
// each preceded by one comment line; a direction with zero pairs emits the
// comment alone.
//
// Complexity: O(total pairs).
func WriteEquations(w io.Writer, sets ...*PairedNodeSet) error {
	if w == nil {
		return ErrNilWriter
	}
	var bw *bufio.Writer
	bw = bufio.NewWriter(w)
	for _, ps := range sets {
		if ps == nil {
			return ErrNilPairedSet
		}
		var ref string
		ref = ps.Reference
		if ref == "" {
			ref = ps.Direction.referenceName()
		}
		if ref == "" {
			return ErrUnknownAxis
		}
		fmt.Fprintf(bw, "** %s-direction periodic pairs: %d (reference %s)\n",
			ps.Direction, ps.Len(), ref)
		if ps.Len() == 0 {
			continue
		}
		fmt.Fprintf(bw, "*EQUATION\n")
		var (
			pr  NodePair
			dof int
		)
		for _, pr = range ps.Pairs {
			for dof = 1; dof <= 3; dof++ {
				fmt.Fprintf(bw, "3\n")
				fmt.Fprintf(bw, "%d, %d, 1.0\n", pr.Slave.ID, dof)
				fmt.Fprintf(bw, "%d, %d, -1.0\n", pr.Master.ID, dof)
				fmt.Fprintf(bw, "%s, %d, -1.0\n", ref, dof)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("pbc: write equations: %w", err)
	}
	return nil
}
