// Package packing - RNG utilities for the placement engine.
//
// This file centralizes deterministic random generation for all phases.
//
// Goals:
//   - Determinism: same seed ⇒ identical placements across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources anywhere.
//   - Safety: no panics, no logging; sentinel errors live in errors.go.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. The engine owns exactly one
//     stream and consumes it sequentially; that ordering is the
//     reproducibility contract.
package packing

import (
	"math/rand"

	"github.com/fibrelab/rvegen/periodic"
)

// defaultRNGSeed is the fixed "zero" seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func rngFromSeed(seed int64) *rand.Rand {
	var s int64
	s = seed
	if s == 0 {
		s = defaultRNGSeed
	}
	return rand.New(rand.NewSource(s))
}

// randomPoint draws a candidate position uniformly over the cross-section.
// The x coordinate is drawn before y; that call order is part of the
// determinism contract and must not change.
//
// Complexity: O(1).
func randomPoint(rng *rand.Rand, dom periodic.Domain) periodic.Point {
	var x, y float64
	x = rng.Float64() * dom.W
	y = rng.Float64() * dom.H
	return periodic.Point{X: x, Y: y}
}
