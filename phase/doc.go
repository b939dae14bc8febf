// Package phase answers the point-membership question for a generated cell:
// given a position in the cross-section plane, is it inside a fiber or inside
// the matrix?
//
// What
//
//   - Material - the two-phase label, Fiber or Matrix.
//   - Classifier - built once from a packing.FiberSet, then queried freely.
//     Classify(p) returns Fiber iff the minimum-image distance from p to some
//     fiber center is ≤ the shared radius; the boundary circle itself counts
//     as Fiber.
//   - VolumeFraction(nx, ny) - a deterministic midpoint-grid estimate of the
//     fiber area fraction, converging to Len·π·r²/(W·H) as the grid refines.
//
// Determinism & concurrency
//
// Classification uses the same periodic metric the packing engine accepted
// placements with, so the two packages can never disagree about geometry.
// A Classifier is immutable after construction: any number of goroutines may
// call Classify and VolumeFraction concurrently.
//
// Usage
//
//	fs, err := packing.Generate(cfg, packing.DefaultOptions())
//	if err != nil { ... }
//	cls, err := phase.NewClassifier(fs)
//	if err != nil { ... }
//	m := cls.Classify(periodic.Point{X: 0.5, Y: 0.5}) // Fiber or Matrix
//
// Errors
//
// NewClassifier rejects a nil set (ErrNilFiberSet), an invalid domain
// (periodic sentinels) and a non-positive radius (ErrRadiusRange).
// VolumeFraction rejects non-positive grid dimensions (ErrGridSize).
package phase
