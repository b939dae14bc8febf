// Package packing - staged validation of Config and Options.
//
// Design principles:
//   - Deterministic, side-effect free checks.
//   - No logging, no panics on user input; only sentinel errors from errors.go.
//   - Everything is validated before the engine does any work; a constructed
//     engine never fails on malformed input later.
package packing

import "math"

// validateAll verifies Config and Options together. Cross-field checks
// (tolerance versus minimum spacing, spacing versus cell extent) run after
// the per-field stages have passed.
//
// Complexity: O(1).
func validateAll(cfg Config, opts Options) error {
	var err error

	// Stage 1: the periodic cell itself.
	if err = cfg.Domain.Validate(); err != nil {
		return err
	}

	// Stage 2: fiber geometry and density target.
	if err = validateConfigFields(cfg); err != nil {
		return err
	}

	// Stage 3: the spacing must fit the cell, or even a lone fiber would
	// conflict with its own periodic image.
	if cfg.MinDistance() > math.Min(cfg.Domain.W, cfg.Domain.H) {
		return ErrSpacingExceedsCell
	}

	// Stage 4: engine tuning.
	return validateOptionsFields(opts, cfg.MinDistance())
}

// validateConfigFields checks radius, volume fraction and the minimum
// distance factor in isolation.
//
// Complexity: O(1).
func validateConfigFields(cfg Config) error {
	if math.IsNaN(cfg.Radius) || math.IsInf(cfg.Radius, 0) || cfg.Radius <= 0 {
		return ErrNonPositiveRadius
	}
	// NaN slips through range comparisons, so reject it explicitly.
	if math.IsNaN(cfg.TargetVf) || cfg.TargetVf <= 0 || cfg.TargetVf >= 1 {
		return ErrVolumeFractionRange
	}
	if math.IsNaN(cfg.MinDistFactor) || math.IsInf(cfg.MinDistFactor, 0) || cfg.MinDistFactor < 0 {
		return ErrNegativeMinDistFactor
	}
	return nil
}

// validateOptionsFields checks the tuning parameters. dMin is needed to
// bound the distance tolerance: slack of a full spacing would hollow out the
// invariant the engine exists to enforce.
//
// Complexity: O(1).
func validateOptionsFields(opts Options, dMin float64) error {
	if math.IsNaN(opts.SeedingRatio) || opts.SeedingRatio < 0 || opts.SeedingRatio > 1 {
		return ErrSeedingRatioRange
	}
	if opts.SaturationLimit < 1 || opts.RelaxMaxIters < 1 || opts.RelaxSubSteps < 1 || opts.CorrectMaxSweeps < 1 {
		return ErrNonPositiveBudget
	}
	if math.IsNaN(opts.MoveFactor) || opts.MoveFactor <= 0 || opts.MoveFactor > 1 {
		return ErrMoveFactorRange
	}
	if math.IsNaN(opts.AnchorDamping) || opts.AnchorDamping < 0 || opts.AnchorDamping > 1 {
		return ErrDampingRange
	}
	if opts.TimeLimit < 0 {
		return ErrNegativeTimeLimit
	}
	if opts.CountTolerance < 0 {
		return ErrNegativeCountTolerance
	}
	if math.IsNaN(opts.DistTolerance) || opts.DistTolerance < 0 || opts.DistTolerance >= dMin {
		return ErrToleranceRange
	}
	return nil
}
