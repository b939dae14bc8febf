package pbc_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fibrelab/rvegen/pbc"
	"github.com/fibrelab/rvegen/periodic"
)

var unitCube = periodic.Domain{W: 1, H: 1, D: 1}

// cornerMesh is the eight corners of the unit cube; every node sits on three
// faces at once, so all three directions pair it.
func cornerMesh() []pbc.Node {
	return []pbc.Node{
		{ID: 1, X: 0, Y: 0, Z: 0},
		{ID: 2, X: 1, Y: 0, Z: 0},
		{ID: 3, X: 0, Y: 1, Z: 0},
		{ID: 4, X: 1, Y: 1, Z: 0},
		{ID: 5, X: 0, Y: 0, Z: 1},
		{ID: 6, X: 1, Y: 0, Z: 1},
		{ID: 7, X: 0, Y: 1, Z: 1},
		{ID: 8, X: 1, Y: 1, Z: 1},
	}
}

func TestPairValidation(t *testing.T) {
	nodes := []pbc.Node{{ID: 1, X: 0, Y: 0.5, Z: 0.5}}

	tests := []struct {
		name    string
		dom     periodic.Domain
		dir     pbc.Axis
		mutate  func(*pbc.Options)
		nodes   []pbc.Node
		wantErr error
	}{
		{
			name:    "invalid domain",
			dom:     periodic.Domain{W: 0, H: 1, D: 1},
			dir:     pbc.AxisX,
			wantErr: periodic.ErrNonPositiveExtent,
		},
		{
			name:    "unknown axis",
			dom:     unitCube,
			dir:     pbc.Axis(9),
			wantErr: pbc.ErrUnknownAxis,
		},
		{
			name:    "zero face tolerance",
			dom:     unitCube,
			dir:     pbc.AxisX,
			mutate:  func(o *pbc.Options) { o.FaceTolerance = 0 },
			wantErr: pbc.ErrFaceToleranceRange,
		},
		{
			name:    "NaN face tolerance",
			dom:     unitCube,
			dir:     pbc.AxisX,
			mutate:  func(o *pbc.Options) { o.FaceTolerance = math.NaN() },
			wantErr: pbc.ErrFaceToleranceRange,
		},
		{
			name:    "zero pairing tolerance",
			dom:     unitCube,
			dir:     pbc.AxisX,
			mutate:  func(o *pbc.Options) { o.PairTolerance = 0 },
			wantErr: pbc.ErrPairToleranceRange,
		},
		{
			name:    "infinite pairing tolerance",
			dom:     unitCube,
			dir:     pbc.AxisX,
			mutate:  func(o *pbc.Options) { o.PairTolerance = math.Inf(1) },
			wantErr: pbc.ErrPairToleranceRange,
		},
		{
			name:    "face tolerance spans the cell",
			dom:     periodic.Domain{W: 1, H: 1, D: 1e-6},
			dir:     pbc.AxisZ,
			wantErr: pbc.ErrFaceOverlap,
		},
		{
			name:    "non-finite node coordinate",
			dom:     unitCube,
			dir:     pbc.AxisX,
			nodes:   []pbc.Node{{ID: 1, X: math.NaN(), Y: 0.5, Z: 0.5}},
			wantErr: pbc.ErrNonFiniteCoordinate,
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			opts := pbc.DefaultOptions()
			if tc.mutate != nil {
				tc.mutate(&opts)
			}
			in := nodes
			if tc.nodes != nil {
				in = tc.nodes
			}
			ps, err := pbc.Pair(in, tc.dom, tc.dir, opts)
			require.ErrorIs(t, err, tc.wantErr)
			assert.Nil(t, ps)
		})
	}
}

func TestFacePartition(t *testing.T) {
	nodes := []pbc.Node{
		{ID: 4, X: 0, Y: 0, Z: 0},      // corner: negative X and negative Y
		{ID: 3, X: 0.5, Y: 0.5, Z: 0.5}, // interior
		{ID: 2, X: 1, Y: 0.2, Z: 0.3},
		{ID: 1, X: 0, Y: 0.2, Z: 0.3},
		{ID: 5, X: 1e-6, Y: 0.9, Z: 0.9}, // exactly at tolerance: excluded
	}

	neg, pos, err := pbc.FacePartition(nodes, unitCube, pbc.AxisX, 1e-6)
	require.NoError(t, err)
	require.Len(t, neg, 2)
	assert.Equal(t, 1, neg[0].ID, "sorted by id")
	assert.Equal(t, 4, neg[1].ID)
	require.Len(t, pos, 1)
	assert.Equal(t, 2, pos[0].ID)

	neg, pos, err = pbc.FacePartition(nodes, unitCube, pbc.AxisY, 1e-6)
	require.NoError(t, err)
	require.Len(t, neg, 1)
	assert.Equal(t, 4, neg[0].ID, "corner node belongs to this face too")
	assert.Empty(t, pos)
}

func TestPairSingleMatch(t *testing.T) {
	nodes := []pbc.Node{
		{ID: 1, X: 0, Y: 0.5, Z: 0.5},
		{ID: 2, X: 1, Y: 0.5, Z: 0.5},
	}
	opts := pbc.DefaultOptions()
	opts.PairTolerance = 0.001

	ps, err := pbc.Pair(nodes, unitCube, pbc.AxisX, opts)
	require.NoError(t, err)
	assert.Equal(t, pbc.AxisX, ps.Direction)
	assert.Equal(t, 1.0, ps.Extent)
	assert.Equal(t, 0.001, ps.Tolerance)
	assert.Equal(t, "RP-X", ps.Reference)
	require.Equal(t, 1, ps.Len())
	assert.Equal(t, 1, ps.Pairs[0].Slave.ID)
	assert.Equal(t, 2, ps.Pairs[0].Master.ID)
}

// Both faces empty is not an error: the direction simply has no pairs.
func TestPairEmptyFaces(t *testing.T) {
	nodes := []pbc.Node{
		{ID: 1, X: 0, Y: 0.5, Z: 0.5},
		{ID: 2, X: 1, Y: 0.5, Z: 0.5},
	}
	ps, err := pbc.Pair(nodes, unitCube, pbc.AxisY, pbc.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, 0, ps.Len())
}

func TestPairNoCounterpart(t *testing.T) {
	nodes := []pbc.Node{{ID: 1, X: 0, Y: 0.5, Z: 0.5}}
	opts := pbc.DefaultOptions()
	opts.PairTolerance = 0.001

	_, err := pbc.Pair(nodes, unitCube, pbc.AxisX, opts)
	var perr pbc.PairingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Node.ID)
	assert.Equal(t, pbc.AxisX, perr.Direction)
	assert.Equal(t, 0, perr.Matches)
	assert.Contains(t, err.Error(), "node 1")
	assert.Contains(t, err.Error(), "no counterpart across X")
}

func TestPairMultipleCounterparts(t *testing.T) {
	nodes := []pbc.Node{
		{ID: 1, X: 0, Y: 0.5, Z: 0.5},
		{ID: 2, X: 1, Y: 0.5, Z: 0.5},
		{ID: 3, X: 1, Y: 0.50005, Z: 0.5},
	}
	opts := pbc.DefaultOptions()
	opts.PairTolerance = 0.001

	_, err := pbc.Pair(nodes, unitCube, pbc.AxisX, opts)
	var perr pbc.PairingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Node.ID)
	assert.Equal(t, 2, perr.Matches)
	assert.Contains(t, err.Error(), "2 counterparts across X")
}

// The in-plane bound is strict: a candidate at exactly the tolerance is out.
func TestPairToleranceIsExclusive(t *testing.T) {
	nodes := []pbc.Node{
		{ID: 1, X: 0, Y: 0.5, Z: 0.5},
		{ID: 2, X: 1, Y: 0.75, Z: 0.5},
	}
	opts := pbc.DefaultOptions()
	opts.PairTolerance = 0.25

	_, err := pbc.Pair(nodes, unitCube, pbc.AxisX, opts)
	var perr pbc.PairingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 0, perr.Matches)
}

// A matched pair must sit one extent apart along the direction. A loose face
// tolerance admits a node the separation check then rejects.
func TestPairWrongSeparation(t *testing.T) {
	nodes := []pbc.Node{
		{ID: 1, X: 0, Y: 0.5, Z: 0.5},
		{ID: 2, X: 0.995, Y: 0.5, Z: 0.5},
	}
	opts := pbc.Options{FaceTolerance: 0.01, PairTolerance: 0.001}

	_, err := pbc.Pair(nodes, unitCube, pbc.AxisX, opts)
	var perr pbc.PairingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 1, perr.Node.ID)
	assert.Equal(t, 1, perr.Matches)
	assert.InDelta(t, 0.995, perr.Separation, 1e-12)
	assert.Equal(t, 1.0, perr.Extent)
	assert.Contains(t, err.Error(), "separation")
}

func TestPairOrphanMaster(t *testing.T) {
	nodes := []pbc.Node{
		{ID: 1, X: 0, Y: 0.5, Z: 0.5},
		{ID: 2, X: 1, Y: 0.5, Z: 0.5},
		{ID: 3, X: 1, Y: 0.2, Z: 0.2},
	}
	opts := pbc.DefaultOptions()
	opts.PairTolerance = 0.001

	_, err := pbc.Pair(nodes, unitCube, pbc.AxisX, opts)
	var perr pbc.PairingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.Node.ID, "unclaimed positive-face node")
	assert.Equal(t, 0, perr.Matches)
}

func TestPairMasterClaimedTwice(t *testing.T) {
	nodes := []pbc.Node{
		{ID: 1, X: 0, Y: 0.5, Z: 0.5},
		{ID: 2, X: 0, Y: 0.5004, Z: 0.5},
		{ID: 3, X: 1, Y: 0.5, Z: 0.5},
	}
	opts := pbc.DefaultOptions()
	opts.PairTolerance = 0.001

	_, err := pbc.Pair(nodes, unitCube, pbc.AxisX, opts)
	var perr pbc.PairingError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, 3, perr.Node.ID, "the contended master is named")
	assert.Equal(t, 2, perr.Matches)
}

func TestPairAllDirections(t *testing.T) {
	dom := periodic.Domain{W: 2, H: 1, D: 0.5}
	nodes := []pbc.Node{
		{ID: 1, X: 0.25, Y: 0.75, Z: 0},
		{ID: 2, X: 0.25, Y: 0.75, Z: 0.5},
		{ID: 3, X: 1.5, Y: 0, Z: 0.25},
		{ID: 4, X: 1.5, Y: 1, Z: 0.25},
	}
	sets, err := pbc.PairAll(nodes, dom, pbc.DefaultOptions())
	require.NoError(t, err)
	require.Len(t, sets, 3)

	assert.Equal(t, pbc.AxisX, sets[0].Direction)
	assert.Equal(t, 0, sets[0].Len())

	assert.Equal(t, pbc.AxisY, sets[1].Direction)
	require.Equal(t, 1, sets[1].Len())
	assert.Equal(t, 3, sets[1].Pairs[0].Slave.ID)
	assert.Equal(t, 4, sets[1].Pairs[0].Master.ID)
	assert.Equal(t, 1.0, sets[1].Extent)

	assert.Equal(t, pbc.AxisZ, sets[2].Direction)
	require.Equal(t, 1, sets[2].Len())
	assert.Equal(t, 1, sets[2].Pairs[0].Slave.ID)
	assert.Equal(t, 2, sets[2].Pairs[0].Master.ID)
	assert.Equal(t, 0.5, sets[2].Extent)
}

func TestPairCornerMesh(t *testing.T) {
	sets, err := pbc.PairAll(cornerMesh(), unitCube, pbc.DefaultOptions())
	require.NoError(t, err)

	wantX := [][2]int{{1, 2}, {3, 4}, {5, 6}, {7, 8}}
	wantY := [][2]int{{1, 3}, {2, 4}, {5, 7}, {6, 8}}
	wantZ := [][2]int{{1, 5}, {2, 6}, {3, 7}, {4, 8}}
	for i, want := range [][][2]int{wantX, wantY, wantZ} {
		require.Equal(t, len(want), sets[i].Len(), "direction %s", sets[i].Direction)
		for j, pr := range sets[i].Pairs {
			assert.Equal(t, want[j][0], pr.Slave.ID, "%s pair %d slave", sets[i].Direction, j)
			assert.Equal(t, want[j][1], pr.Master.ID, "%s pair %d master", sets[i].Direction, j)
		}
	}
}

// Re-derivation over the same mesh reproduces the pairs, regardless of the
// order the nodes arrive in.
func TestPairDerivationIsReproducible(t *testing.T) {
	nodes := cornerMesh()
	first, err := pbc.PairAll(nodes, unitCube, pbc.DefaultOptions())
	require.NoError(t, err)

	again, err := pbc.PairAll(nodes, unitCube, pbc.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, first, again)

	reversed := make([]pbc.Node, len(nodes))
	for i, n := range nodes {
		reversed[len(nodes)-1-i] = n
	}
	shuffled, err := pbc.PairAll(reversed, unitCube, pbc.DefaultOptions())
	require.NoError(t, err)
	require.Equal(t, first, shuffled)
}
