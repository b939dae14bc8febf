// Package packing - problem configuration and engine tuning.
package packing

import (
	"time"

	"github.com/fibrelab/rvegen/periodic"
)

// Config describes the physical placement problem: the periodic cell, the
// fiber geometry and the density target. It has no sensible zero value; all
// fields are required.
//
// Fields:
//   - Domain        — the periodic unit cell (W×H cross-section, depth D).
//   - Radius        — shared fiber radius r > 0.
//   - TargetVf      — target volume fraction in (0,1); equals the area
//     fraction because fibers span the full depth.
//   - MinDistFactor — k ≥ 0 in d_min = 2r·(1+k); 0 allows touching fibers.
type Config struct {
	Domain        periodic.Domain
	Radius        float64
	TargetVf      float64
	MinDistFactor float64
}

// MinDistance returns d_min = 2r·(1+k), the smallest admissible periodic
// center distance between two fibers.
func (c Config) MinDistance() float64 {
	return 2 * c.Radius * (1 + c.MinDistFactor)
}

// TargetCount returns N_target = round(Vf·W·H/(π·r²)), the fiber count that
// realizes the target fraction.
func (c Config) TargetCount() int {
	return targetCount(c.Domain, c.Radius, c.TargetVf)
}

// Options tunes the engine phases. Use DefaultOptions as the baseline and
// override selectively; the zero value fails validation (every phase must
// carry a positive budget, so "unlimited" is not representable).
//
// Fields:
//   - Seed             — RNG seed; 0 selects a fixed default stream, any
//     other value is used verbatim. Same Config+Options ⇒ identical output.
//   - SeedingRatio     — share of N_target placed by pure random sequential
//     adsorption before relaxation starts, in [0,1].
//   - SaturationLimit  — consecutive rejected candidates after which SEEDING
//     declares the cell locally full and hands over to RELAXING.
//   - RelaxMaxIters    — insertion attempts granted to RELAXING.
//   - RelaxSubSteps    — repulsion sub-steps granted per rejected insertion.
//   - MoveFactor       — fraction of the penetration depth applied per
//     sub-step, in (0,1]; values near 1 overshoot.
//   - AnchorDamping    — movement scale for fibers placed during SEEDING,
//     in [0,1]; keeps the adsorption structure mostly intact.
//   - CorrectMaxSweeps — pair sweeps granted to CORRECTING.
//   - TimeLimit        — optional wall-clock bound checked between
//     iterations; 0 disables the check (iteration budgets still bound the
//     run). Expiry never corrupts state, it only ends the phase early.
//   - CountTolerance   — acceptable shortfall |placed − N_target| for DONE.
//   - DistTolerance    — numeric slack on d_min: a pair at distance
//     ≥ d_min − DistTolerance is not a violation.
type Options struct {
	Seed             int64
	SeedingRatio     float64
	SaturationLimit  int
	RelaxMaxIters    int
	RelaxSubSteps    int
	MoveFactor       float64
	AnchorDamping    float64
	CorrectMaxSweeps int
	TimeLimit        time.Duration
	CountTolerance   int
	DistTolerance    float64
}

// DefaultOptions returns the baseline tuning. The numeric values mirror the
// established reference schedule for this placement family: seed most of the
// target by adsorption, then relax gently with damped anchors.
//
// Complexity: O(1).
func DefaultOptions() Options {
	return Options{
		Seed:             0,     // fixed default stream
		SeedingRatio:     0.9,   // 90% of targets by pure adsorption
		SaturationLimit:  500,   // consecutive rejections ⇒ locally full
		RelaxMaxIters:    2000,  // insertion attempts in RELAXING
		RelaxSubSteps:    200,   // repulsion sub-steps per rejected insertion
		MoveFactor:       0.5,   // half the penetration per sub-step
		AnchorDamping:    0.05,  // seeded fibers barely move
		CorrectMaxSweeps: 50000, // correction sweeps upper bound
		TimeLimit:        0,     // no wall-clock bound
		CountTolerance:   0,     // exact target count required
		DistTolerance:    1e-9,  // absolute slack on d_min
	}
}
