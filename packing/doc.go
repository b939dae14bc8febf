// Package packing places non-overlapping cylindrical fibers on a periodic
// cross-section at a target volume fraction.
//
// What it does:
//
// Given a periodic cell, a fiber radius and a target fraction Vf, the engine
// produces a FiberSet of N_target = round(Vf·W·H/(π·r²)) centers whose
// pairwise minimum-image distance never falls below d_min = 2r·(1+k). The
// run is an explicit state machine:
//
//	SEEDING → RELAXING → CORRECTING → {DONE, FAILED}
//
//   - SEEDING: random sequential adsorption. Uniform candidates are accepted
//     iff they clear d_min against every placed fiber; the phase ends at
//     ⌊ratio·N_target⌋ acceptances or once SaturationLimit consecutive
//     rejections show the cell is locally full.
//   - RELAXING: insertion continues, but a rejected candidate is kept and
//     the overlaps it causes are pushed apart by bounded repulsion
//     sub-steps (displacement proportional to penetration, capped per step,
//     re-wrapped; fibers placed during SEEDING move damped). Attempts whose
//     overlaps will not resolve are rolled back, so the working set
//     satisfies the spacing invariant between attempts.
//   - CORRECTING: deterministic sweeps separate any residual violating pair
//     along its minimum-image line by half the deficit plus a nudge.
//   - DONE iff the placed count is within CountTolerance of N_target and no
//     pair violates d_min beyond DistTolerance; FAILED otherwise, carrying a
//     VolumeFractionError or DistanceViolationError with full diagnostics.
//
// Why the hybrid schedule:
//
// Adsorption alone stalls well below dense packings, and relaxation alone
// converges slowly from an empty cell. Seeding most of the target first and
// relaxing only the remainder is fast where the cell is sparse and careful
// where it is crowded, while the correction sweeps make the spacing
// invariant exact (within tolerance) without unbounded iteration.
//
// Determinism:
//
// One seeded random stream drives everything (seed 0 selects a fixed
// default). Same Config and Options ⇒ bit-identical FiberSet, on any
// platform. No time-based randomness exists; the optional TimeLimit can
// only end a phase early, never reorder it.
//
// Termination:
//
// Every phase carries a positive iteration budget (validation rejects
// anything else), so a run always reaches DONE or FAILED. An infeasible
// target (Scenario: Vf near the packing limit) exhausts its budgets and
// surfaces as a VolumeFractionError; it cannot hang.
//
// Usage:
//
//	cfg := packing.Config{
//	    Domain:        periodic.Domain{W: 1, H: 1, D: 0.01},
//	    Radius:        0.05,
//	    TargetVf:      0.30,
//	    MinDistFactor: 0.025,
//	}
//	fs, err := packing.Generate(cfg, packing.DefaultOptions())
//	if err != nil {
//	    // VolumeFractionError / DistanceViolationError carry diagnostics.
//	}
//	fmt.Println(fs.Len(), fs.AchievedVf, fs.MinDistance)
//
// Drive the phases individually (NewEngine + Seed/Relax/Correct/Result)
// when a phase boundary needs inspection; phase methods called out of
// machine order return ErrPhaseOrder.
//
// Errors: sentinel errors for configuration violations, typed
// VolumeFractionError and DistanceViolationError for terminal outcomes.
// Transient candidate rejections are not errors.
//
// Complexity: O(attempts·n) seeding, O(attempts·substeps·n²) relaxing,
// O(sweeps·n²) correcting; n is the fiber count (typically tens to a few
// hundred).
package packing
