// Package packing - error taxonomy of the placement engine.
//
// Two layers:
//  1. Sentinel errors for configuration/contract violations, detected before
//     any work starts.
//  2. Typed fatal errors for generation outcomes, carrying the diagnostics a
//     caller needs to report the failure. They are never downgraded: a run
//     either returns a valid FiberSet or one of these.
package packing

import (
	"errors"
	"fmt"
)

// ErrNonPositiveRadius is returned when the fiber radius is zero, negative or non-finite.
var ErrNonPositiveRadius = errors.New("packing: fiber radius must be positive and finite")

// ErrVolumeFractionRange is returned when the target volume fraction lies outside (0,1).
var ErrVolumeFractionRange = errors.New("packing: target volume fraction must lie in (0,1)")

// ErrNegativeMinDistFactor is returned when the minimum-distance factor is negative or non-finite.
var ErrNegativeMinDistFactor = errors.New("packing: minimum-distance factor must be non-negative")

// ErrSpacingExceedsCell is returned when d_min = 2r(1+k) does not fit the periodic cell.
var ErrSpacingExceedsCell = errors.New("packing: minimum spacing exceeds the periodic cell")

// ErrSeedingRatioRange is returned when the seeding ratio lies outside [0,1].
var ErrSeedingRatioRange = errors.New("packing: seeding ratio must lie in [0,1]")

// ErrNonPositiveBudget is returned when an iteration or sweep budget is not ≥ 1.
// Budgets bound every phase structurally; an unlimited phase is not representable.
var ErrNonPositiveBudget = errors.New("packing: iteration budgets must be positive")

// ErrNegativeTimeLimit is returned when the optional time limit is negative.
var ErrNegativeTimeLimit = errors.New("packing: time limit must be non-negative")

// ErrMoveFactorRange is returned when the relaxation movement factor lies outside (0,1].
var ErrMoveFactorRange = errors.New("packing: movement factor must lie in (0,1]")

// ErrDampingRange is returned when the anchor damping factor lies outside [0,1].
var ErrDampingRange = errors.New("packing: anchor damping must lie in [0,1]")

// ErrToleranceRange is returned when the distance tolerance is negative, non-finite,
// or at least the minimum spacing itself.
var ErrToleranceRange = errors.New("packing: distance tolerance must be non-negative and below the minimum spacing")

// ErrNegativeCountTolerance is returned when the fiber-count tolerance is negative.
var ErrNegativeCountTolerance = errors.New("packing: count tolerance must be non-negative")

// ErrPhaseOrder is returned when an engine phase method is invoked out of
// machine order (e.g. Relax before Seed, or any phase after completion).
var ErrPhaseOrder = errors.New("packing: phase invoked out of order")

// VolumeFractionError reports that the iteration/time budgets were exhausted
// before the engine reached the target fiber count. Transient candidate
// rejections are not errors; only this terminal shortfall is.
type VolumeFractionError struct {
	TargetCount int     // fibers required for the target fraction
	PlacedCount int     // fibers actually placed
	TargetVf    float64 // requested volume fraction
	AchievedVf  float64 // fraction realized by the placed fibers
}

func (e VolumeFractionError) Error() string {
	return fmt.Sprintf("packing: volume fraction unreachable: placed %d of %d fibers (achieved Vf %.4f, target %.4f)",
		e.PlacedCount, e.TargetCount, e.AchievedVf, e.TargetVf)
}

// DistanceViolationError reports that after the correction phase some pair of
// fibers still sits closer than the minimum spacing allows. It names the
// worst offending pair.
type DistanceViolationError struct {
	IDA, IDB    int     // 1-based identifiers of the worst pair
	Distance    float64 // realized periodic center distance
	MinDistance float64 // required minimum spacing d_min
}

func (e DistanceViolationError) Error() string {
	return fmt.Sprintf("packing: minimum distance violated: fibers %d and %d at %.6g (required %.6g)",
		e.IDA, e.IDB, e.Distance, e.MinDistance)
}
