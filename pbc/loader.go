// Package pbc - boundary node ingestion.
package pbc

import (
	"encoding/json"
	"fmt"
	"io"
)

// nodesJSON is the wire shape of a boundary-node export. All four node
// fields are required; pointers distinguish an absent field from a zero.
type nodesJSON struct {
	Nodes []nodeJSON `json:"nodes"`
}

type nodeJSON struct {
	ID *int     `json:"id"`
	X  *float64 `json:"x"`
	Y  *float64 `json:"y"`
	Z  *float64 `json:"z"`
}

// LoadNodes reads a mesher's boundary-node export from r:
//
//	{"nodes": [{"id": 1, "x": 0.0, "y": 0.5, "z": 0.5}, ...]}
//
// Node order is preserved as read; Pair orders its output by node ID, so
// file order never influences a derivation. An empty node list is legal and
// pairs to empty sets.
func LoadNodes(r io.Reader) ([]Node, error) {
	var raw nodesJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, fmt.Errorf("pbc: decode nodes: %w", err)
	}

	var (
		out  []Node
		seen map[int]struct{}
	)
	out = make([]Node, 0, len(raw.Nodes))
	seen = make(map[int]struct{}, len(raw.Nodes))
	for i, rn := range raw.Nodes {
		if rn.ID == nil || rn.X == nil || rn.Y == nil || rn.Z == nil {
			return nil, fmt.Errorf("pbc: node at index %d: missing id or coordinate", i)
		}
		if *rn.ID < 1 {
			return nil, fmt.Errorf("%w: index %d carries id %d", ErrNodeID, i, *rn.ID)
		}
		if _, dup := seen[*rn.ID]; dup {
			return nil, fmt.Errorf("%w: %d", ErrDuplicateNodeID, *rn.ID)
		}
		seen[*rn.ID] = struct{}{}
		out = append(out, Node{ID: *rn.ID, X: *rn.X, Y: *rn.Y, Z: *rn.Z})
	}
	return out, nil
}
