package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fibrelab/rvegen/packing"
)

const unitCellConfig = `{
	"domain": {"width": 1, "height": 1, "depth": 0.01},
	"fiber_radius": 0.05,
	"target_volume_fraction": 0.30,
	"seed": 42
}`

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func readLines(t *testing.T, path string) []string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return strings.Split(strings.TrimSuffix(string(data), "\n"), "\n")
}

func TestRunPipeline(t *testing.T) {
	cfg := writeTemp(t, "cell.json", unitCellConfig)
	dir := t.TempDir()
	csv := filepath.Join(dir, "fibers.csv")
	png := filepath.Join(dir, "section.png")
	preview := filepath.Join(dir, "preview.png")
	stl := filepath.Join(dir, "fibers.stl")

	var out bytes.Buffer
	err := run([]string{
		"-config", cfg,
		"-csv", csv,
		"-png", png, "-png-width", "64",
		"-preview", preview, "-preview-width", "16",
		"-stl", stl, "-stl-cells", "16",
	}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "fibers:           38")
	assert.Contains(t, out.String(), "violations:       0")

	lines := readLines(t, csv)
	assert.Len(t, lines, 9+38)
	assert.Equal(t, "Fiber_ID,X_Coordinate,Y_Coordinate,Z_Start,Z_End", lines[8])

	for _, p := range []string{png, preview} {
		data, err := os.ReadFile(p)
		require.NoError(t, err)
		assert.Equal(t, []byte("\x89PNG\r\n\x1a\n"), data[:8])
	}

	data, err := os.ReadFile(stl)
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(data), 84)
	assert.Zero(t, (len(data)-84)%50)
}

func TestRunSeedOverride(t *testing.T) {
	cfgSeven := writeTemp(t, "seven.json", strings.Replace(unitCellConfig, `"seed": 42`, `"seed": 7`, 1))
	cfgFortyTwo := writeTemp(t, "fortytwo.json", unitCellConfig)
	dir := t.TempDir()
	overridden := filepath.Join(dir, "overridden.csv")
	direct := filepath.Join(dir, "direct.csv")

	var out bytes.Buffer
	require.NoError(t, run([]string{"-config", cfgSeven, "-seed", "42", "-csv", overridden}, &out))
	require.NoError(t, run([]string{"-config", cfgFortyTwo, "-csv", direct}, &out))

	// Identical placements, so the tables agree below the timestamp line.
	assert.Equal(t, readLines(t, direct)[2:], readLines(t, overridden)[2:])
}

func TestRunVolumeFractionFailure(t *testing.T) {
	cfg := writeTemp(t, "cell.json", unitCellConfig)

	var out bytes.Buffer
	err := run([]string{"-config", cfg, "-csv", "", "-vf", "0.9"}, &out)
	require.Error(t, err)

	var vfe packing.VolumeFractionError
	require.ErrorAs(t, err, &vfe)
	assert.InDelta(t, 0.9, vfe.TargetVf, 1e-12)
	assert.Empty(t, out.String(), "no summary after a failed run")
}

func TestRunPairNodes(t *testing.T) {
	cfg := writeTemp(t, "cell.json", unitCellConfig)
	nodes := writeTemp(t, "nodes.json", `{"nodes": [
		{"id": 1, "x": 0, "y": 0, "z": 0},
		{"id": 2, "x": 1, "y": 0, "z": 0},
		{"id": 3, "x": 0, "y": 1, "z": 0},
		{"id": 4, "x": 1, "y": 1, "z": 0},
		{"id": 5, "x": 0, "y": 0, "z": 0.01},
		{"id": 6, "x": 1, "y": 0, "z": 0.01},
		{"id": 7, "x": 0, "y": 1, "z": 0.01},
		{"id": 8, "x": 1, "y": 1, "z": 0.01}
	]}`)
	eq := filepath.Join(t.TempDir(), "pbc.inp")

	var out bytes.Buffer
	err := run([]string{"-config", cfg, "-csv", "", "-nodes", nodes, "-equations", eq}, &out)
	require.NoError(t, err)

	assert.Contains(t, out.String(), "X pairs: 4")
	assert.Contains(t, out.String(), "Y pairs: 4")
	assert.Contains(t, out.String(), "Z pairs: 4")

	card, err := os.ReadFile(eq)
	require.NoError(t, err)
	assert.Contains(t, string(card), "** X-direction periodic pairs: 4 (reference RP-X)")
	assert.Equal(t, 36, strings.Count(string(card), "\n3\n"), "12 pairs, 3 dofs each")
}

func TestRunArgumentErrors(t *testing.T) {
	cfg := writeTemp(t, "cell.json", unitCellConfig)

	err := run([]string{"-config", cfg, "positional"}, new(bytes.Buffer))
	assert.ErrorContains(t, err, "unexpected argument")

	err = run([]string{"-config", cfg, "-equations", "x.inp"}, new(bytes.Buffer))
	assert.ErrorContains(t, err, "-equations needs -nodes")

	err = run([]string{"-config", cfg, "-csv", "", "-stl", "x.stl", "-stl-part", "shell"}, new(bytes.Buffer))
	assert.ErrorContains(t, err, "unknown stl part")

	err = run([]string{"-config", filepath.Join(t.TempDir(), "missing.json")}, new(bytes.Buffer))
	assert.Error(t, err)

	bad := writeTemp(t, "bad.json", `{"domain": `)
	err = run([]string{"-config", bad}, new(bytes.Buffer))
	assert.ErrorContains(t, err, "packing: decode config")
}

func TestRunHelp(t *testing.T) {
	// -h prints usage and is not a failure.
	assert.NoError(t, run([]string{"-h"}, new(bytes.Buffer)))
}

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := defaultConfig()
	_, err := packing.NewEngine(cfg, packing.DefaultOptions())
	require.NoError(t, err)
}
