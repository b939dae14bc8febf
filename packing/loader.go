// Package packing - JSON configuration loading.
package packing

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/fibrelab/rvegen/periodic"
)

// defaultMinDistFactor is applied when a config file omits the factor; it
// reproduces the common 2.05·r spacing rule (k = 0.025).
const defaultMinDistFactor = 0.025

// configJSON is the wire shape of a generation config file. Problem fields
// are required; tuning fields are pointers so an omitted field falls back
// to DefaultOptions.
type configJSON struct {
	Domain struct {
		Width  float64 `json:"width"`
		Height float64 `json:"height"`
		Depth  float64 `json:"depth"`
	} `json:"domain"`
	FiberRadius   float64  `json:"fiber_radius"`
	TargetVf      float64  `json:"target_volume_fraction"`
	MinDistFactor *float64 `json:"min_distance_factor"`

	Seed             *int64   `json:"seed"`
	SeedingRatio     *float64 `json:"seeding_ratio"`
	SaturationLimit  *int     `json:"saturation_limit"`
	RelaxMaxIters    *int     `json:"relax_max_iters"`
	RelaxSubSteps    *int     `json:"relax_sub_steps"`
	MoveFactor       *float64 `json:"move_factor"`
	AnchorDamping    *float64 `json:"anchor_damping"`
	CorrectMaxSweeps *int     `json:"correct_max_sweeps"`
	TimeLimitMs      *int64   `json:"time_limit_ms"`
	CountTolerance   *int     `json:"count_tolerance"`
	DistTolerance    *float64 `json:"distance_tolerance"`
}

// LoadConfig reads a JSON generation config from r. Omitted tuning fields
// fall back to DefaultOptions (and min_distance_factor to 0.025); the
// combined result is validated before it is returned, so a successful load
// is directly usable with NewEngine.
func LoadConfig(r io.Reader) (Config, Options, error) {
	var raw configJSON
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return Config{}, Options{}, fmt.Errorf("packing: decode config: %w", err)
	}

	var cfg Config
	cfg = Config{
		Domain: periodic.Domain{
			W: raw.Domain.Width,
			H: raw.Domain.Height,
			D: raw.Domain.Depth,
		},
		Radius:        raw.FiberRadius,
		TargetVf:      raw.TargetVf,
		MinDistFactor: defaultMinDistFactor,
	}
	if raw.MinDistFactor != nil {
		cfg.MinDistFactor = *raw.MinDistFactor
	}

	var opts Options
	opts = DefaultOptions()
	if raw.Seed != nil {
		opts.Seed = *raw.Seed
	}
	if raw.SeedingRatio != nil {
		opts.SeedingRatio = *raw.SeedingRatio
	}
	if raw.SaturationLimit != nil {
		opts.SaturationLimit = *raw.SaturationLimit
	}
	if raw.RelaxMaxIters != nil {
		opts.RelaxMaxIters = *raw.RelaxMaxIters
	}
	if raw.RelaxSubSteps != nil {
		opts.RelaxSubSteps = *raw.RelaxSubSteps
	}
	if raw.MoveFactor != nil {
		opts.MoveFactor = *raw.MoveFactor
	}
	if raw.AnchorDamping != nil {
		opts.AnchorDamping = *raw.AnchorDamping
	}
	if raw.CorrectMaxSweeps != nil {
		opts.CorrectMaxSweeps = *raw.CorrectMaxSweeps
	}
	if raw.TimeLimitMs != nil {
		opts.TimeLimit = time.Duration(*raw.TimeLimitMs) * time.Millisecond
	}
	if raw.CountTolerance != nil {
		opts.CountTolerance = *raw.CountTolerance
	}
	if raw.DistTolerance != nil {
		opts.DistTolerance = *raw.DistTolerance
	}

	if err := validateAll(cfg, opts); err != nil {
		return Config{}, Options{}, err
	}
	return cfg, opts, nil
}
