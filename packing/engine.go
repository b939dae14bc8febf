// Package packing - the three-phase placement engine.
//
// The engine is an explicit state machine:
//
//	SEEDING → RELAXING → CORRECTING → {DONE, FAILED}
//
// Each phase runs in program order over a single deterministic random
// stream, so a fixed Config+Options reproduces an identical FiberSet.
// Every phase is bounded by an explicit budget; saturation and shortfall
// surface as typed errors, never as hangs.
package packing

import (
	"math"
	"math/rand"
	"time"

	"github.com/fibrelab/rvegen"
	"github.com/fibrelab/rvegen/periodic"
)

// Phase enumerates the engine states. A fresh engine starts in Seeding;
// Done and Failed are terminal.
type Phase int

const (
	// Seeding places fibers by random sequential adsorption.
	Seeding Phase = iota
	// Relaxing inserts the remaining fibers with repulsive relaxation.
	Relaxing
	// Correcting sweeps residual spacing violations apart.
	Correcting
	// Done holds a validated FiberSet.
	Done
	// Failed holds a terminal VolumeFractionError or DistanceViolationError.
	Failed
)

// String names the phase for logs and diagnostics.
func (p Phase) String() string {
	switch p {
	case Seeding:
		return "SEEDING"
	case Relaxing:
		return "RELAXING"
	case Correcting:
		return "CORRECTING"
	case Done:
		return "DONE"
	case Failed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

// correctionNudge is added beyond the half deficit when separating a pair,
// so the corrected distance clears d_min instead of landing exactly on it.
const correctionNudge = 1e-8

// Engine drives one generation run. It is not safe for concurrent use; all
// phase methods must be called from one goroutine, in machine order. Run
// does exactly that for the common case.
type Engine struct {
	cfg  Config
	opts Options
	dom  periodic.Domain
	rng  *rand.Rand

	phase  Phase
	target int     // N_target for the configured fraction
	goal   int     // SEEDING acceptance goal, ⌊ratio·N_target⌋
	dMin   float64 // required spacing 2r(1+k)
	dMinSq float64
	violSq float64 // squared violation threshold (d_min − tol)²

	centers  []periodic.Point
	anchored []bool           // placed during SEEDING ⇒ damped in relaxation
	scratch  []periodic.Point // displacement accumulator reused across sub-steps

	deadline time.Time // zero ⇒ no wall-clock bound

	result  *FiberSet
	failure error
}

// NewEngine validates the problem and tuning and prepares a machine in the
// SEEDING phase. The engine owns a single deterministic random stream
// derived from opts.Seed; nothing else introduces randomness.
func NewEngine(cfg Config, opts Options) (*Engine, error) {
	var err error
	if err = validateAll(cfg, opts); err != nil {
		return nil, err
	}

	var e Engine
	e.cfg = cfg
	e.opts = opts
	e.dom = cfg.Domain
	e.rng = rngFromSeed(opts.Seed)
	e.phase = Seeding
	e.dMin = cfg.MinDistance()
	e.dMinSq = e.dMin * e.dMin
	e.violSq = (e.dMin - opts.DistTolerance) * (e.dMin - opts.DistTolerance)
	e.target = cfg.TargetCount()
	e.goal = int(float64(e.target) * opts.SeedingRatio)
	e.centers = make([]periodic.Point, 0, e.target)
	e.anchored = make([]bool, 0, e.target)
	return &e, nil
}

// Generate runs the full machine in one call: NewEngine + Run.
func Generate(cfg Config, opts Options) (*FiberSet, error) {
	var (
		e   *Engine
		err error
	)
	e, err = NewEngine(cfg, opts)
	if err != nil {
		return nil, err
	}
	return e.Run()
}

// Phase returns the machine's current phase.
func (e *Engine) Phase() Phase { return e.phase }

// TargetCount returns N_target = round(Vf·W·H/(π·r²)).
func (e *Engine) TargetCount() int { return e.target }

// SeedingTarget returns the SEEDING acceptance goal, ⌊SeedingRatio·N_target⌋.
func (e *Engine) SeedingTarget() int { return e.goal }

// Count returns the number of fibers currently placed.
func (e *Engine) Count() int { return len(e.centers) }

// MinSpacing returns the required spacing d_min = 2r·(1+k).
func (e *Engine) MinSpacing() float64 { return e.dMin }

// Centers returns a copy of the current center positions. Intended for
// phase-by-phase inspection; mutating the copy does not affect the engine.
func (e *Engine) Centers() []periodic.Point {
	out := make([]periodic.Point, len(e.centers))
	copy(out, e.centers)
	return out
}

// Run drives the machine from SEEDING to a terminal phase and returns the
// validated set or the terminal error. Generation is all-or-nothing; no
// partial set is ever exposed and no phase can be cancelled midway.
func (e *Engine) Run() (*FiberSet, error) {
	var err error
	if err = e.Seed(); err != nil {
		return nil, err
	}
	if err = e.Relax(); err != nil {
		return nil, err
	}
	if err = e.Correct(); err != nil {
		return nil, err
	}
	return e.Result()
}

// Seed runs the SEEDING phase: candidates drawn uniformly over the cell are
// accepted iff they clear d_min against every placed fiber. The phase ends
// when the acceptance goal is reached or when SaturationLimit consecutive
// rejections indicate the cell is locally full at the current density, and
// always transitions to RELAXING.
//
// Complexity: O(attempts·n) distance checks.
func (e *Engine) Seed() error {
	if e.phase != Seeding {
		return ErrPhaseOrder
	}
	e.armDeadline()

	var (
		p        periodic.Point
		rejects  int // consecutive rejections
		attempts int
	)
	for len(e.centers) < e.goal {
		if e.timeExpired() {
			rvegen.Logger().Warn("packing: seeding stopped by time limit",
				"accepted", len(e.centers), "goal", e.goal)
			break
		}
		attempts++
		p = randomPoint(e.rng, e.dom)
		if e.fits(p) {
			e.centers = append(e.centers, p)
			e.anchored = append(e.anchored, true)
			rejects = 0
			continue
		}
		rejects++
		if rejects > e.opts.SaturationLimit {
			rvegen.Logger().Warn("packing: seeding saturated",
				"accepted", len(e.centers), "goal", e.goal, "consecutive_rejections", rejects)
			break
		}
	}
	rvegen.Logger().Debug("packing: seeding complete",
		"accepted", len(e.centers), "goal", e.goal, "attempts", attempts)
	e.advance(Relaxing)
	return nil
}

// Relax runs the RELAXING phase: insertion attempts continue, but a
// rejected candidate is kept and the resulting overlaps are pushed apart by
// bounded repulsion sub-steps. An attempt whose overlaps cannot be resolved
// is rolled back, so between attempts the working set always satisfies the
// spacing invariant. The phase ends at N_target or on budget exhaustion and
// always transitions to CORRECTING.
func (e *Engine) Relax() error {
	if e.phase != Relaxing {
		return ErrPhaseOrder
	}
	e.armDeadline()

	var (
		p        periodic.Point
		attempts int
		direct   int // accepted without relaxation
		relaxed  int // accepted after relaxation resolved the overlap
	)
	for len(e.centers) < e.target && attempts < e.opts.RelaxMaxIters {
		if e.timeExpired() {
			rvegen.Logger().Warn("packing: relaxing stopped by time limit",
				"placed", len(e.centers), "target", e.target)
			break
		}
		attempts++
		p = randomPoint(e.rng, e.dom)
		if e.fits(p) {
			e.centers = append(e.centers, p)
			e.anchored = append(e.anchored, false)
			direct++
			continue
		}
		if e.relaxInsert(p) {
			relaxed++
		}
	}
	if len(e.centers) < e.target {
		rvegen.Logger().Warn("packing: relaxing budget exhausted",
			"placed", len(e.centers), "target", e.target, "attempts", attempts)
	}
	rvegen.Logger().Debug("packing: relaxing complete",
		"direct", direct, "relaxed", relaxed, "attempts", attempts)
	e.advance(Correcting)
	return nil
}

// Correct runs the CORRECTING phase: deterministic sweeps over all pairs in
// index order, separating each violating pair along its minimum-image line
// by half the deficit plus a small nudge. Sweeping repeats until a full
// sweep finds no violation or the sweep budget is exhausted, then the run
// resolves to DONE or FAILED.
//
// Complexity: O(sweeps·n²).
func (e *Engine) Correct() error {
	if e.phase != Correcting {
		return ErrPhaseOrder
	}
	e.armDeadline()

	var (
		n      int
		sweeps int
		moved  bool
		delta  periodic.Point
		dir    periodic.Point
		distSq float64
		dist   float64
		shift  float64
		i, j   int
	)
	n = len(e.centers)
	for sweeps = 0; sweeps < e.opts.CorrectMaxSweeps; sweeps++ {
		if e.timeExpired() {
			rvegen.Logger().Warn("packing: correction stopped by time limit", "sweeps", sweeps)
			break
		}
		moved = false
		for i = 0; i < n-1; i++ {
			for j = i + 1; j < n; j++ {
				delta = e.dom.Delta(e.centers[i], e.centers[j])
				distSq = delta.X*delta.X + delta.Y*delta.Y
				if distSq >= e.violSq {
					continue
				}
				dist = math.Sqrt(distSq)
				if dist > 0 {
					dir = delta.Scale(1 / dist)
				} else {
					dir = periodic.Point{X: 1}
				}
				shift = 0.5*(e.dMin-dist) + correctionNudge
				e.centers[i] = e.dom.Wrap(e.centers[i].Add(dir.Scale(-shift)))
				e.centers[j] = e.dom.Wrap(e.centers[j].Add(dir.Scale(shift)))
				moved = true
			}
		}
		if !moved {
			break
		}
	}
	rvegen.Logger().Debug("packing: correction complete", "sweeps", sweeps)
	e.finalize()
	return nil
}

// Result returns the outcome of a terminal machine: the validated set after
// DONE, the terminal error after FAILED, and ErrPhaseOrder before either.
func (e *Engine) Result() (*FiberSet, error) {
	switch e.phase {
	case Done:
		return e.result, nil
	case Failed:
		return nil, e.failure
	default:
		return nil, ErrPhaseOrder
	}
}

// fits reports whether candidate p clears d_min against every placed center.
// Acceptance uses the exact spacing; the tolerance applies only to audits of
// already-moved fibers.
//
// Complexity: O(n).
func (e *Engine) fits(p periodic.Point) bool {
	var i int
	for i = 0; i < len(e.centers); i++ {
		if e.dom.DistanceSq(p, e.centers[i]) < e.dMinSq {
			return false
		}
	}
	return true
}

// relaxInsert keeps a rejected candidate and runs bounded repulsion
// sub-steps until the set is violation-free or the sub-step budget runs
// out. On failure the pre-insertion state is restored, so a failed attempt
// only consumes budget.
func (e *Engine) relaxInsert(p periodic.Point) bool {
	var snapshot []periodic.Point
	snapshot = make([]periodic.Point, len(e.centers))
	copy(snapshot, e.centers)

	e.centers = append(e.centers, p)
	e.anchored = append(e.anchored, false)

	var (
		maxMoveSq  float64
		violations int
		step       int
	)
	for step = 0; step < e.opts.RelaxSubSteps; step++ {
		maxMoveSq, violations = e.relaxStep()
		if violations == 0 {
			break
		}
		if maxMoveSq == 0 {
			break // nothing can move (every violator anchored at zero damping)
		}
	}
	if e.violations() == 0 {
		return true
	}
	e.centers = snapshot
	e.anchored = e.anchored[:len(snapshot)]
	return false
}

// relaxStep runs one repulsion sub-step: displacements for every violating
// pair are accumulated against the entering positions, then applied and
// wrapped in one pass. Accumulate-then-apply keeps the step independent of
// pair order, so the outcome is a pure function of the entering state.
// Returns the largest squared displacement applied and the number of
// violating pairs found; zero pairs means nothing moved.
//
// Complexity: O(n²).
func (e *Engine) relaxStep() (maxMoveSq float64, violations int) {
	var n int
	n = len(e.centers)
	if cap(e.scratch) < n {
		e.scratch = make([]periodic.Point, n)
	}
	e.scratch = e.scratch[:n]
	var i, j int
	for i = 0; i < n; i++ {
		e.scratch[i] = periodic.Point{}
	}

	var (
		delta  periodic.Point
		push   periodic.Point
		distSq float64
		dist   float64
	)
	for i = 0; i < n-1; i++ {
		for j = i + 1; j < n; j++ {
			delta = e.dom.Delta(e.centers[i], e.centers[j])
			distSq = delta.X*delta.X + delta.Y*delta.Y
			if distSq >= e.violSq {
				continue
			}
			violations++
			dist = math.Sqrt(distSq)
			push = repulsion(delta, dist, e.dMin, e.opts.MoveFactor)
			e.scratch[i] = e.scratch[i].Add(push.Scale(-1))
			e.scratch[j] = e.scratch[j].Add(push)
		}
	}
	if violations == 0 {
		return 0, 0
	}

	var (
		d      periodic.Point
		moveSq float64
	)
	for i = 0; i < n; i++ {
		d = e.scratch[i]
		if e.anchored[i] {
			d = d.Scale(e.opts.AnchorDamping)
		}
		d = capStep(d, 0.5*e.dMin)
		moveSq = d.X*d.X + d.Y*d.Y
		if moveSq == 0 {
			continue
		}
		if moveSq > maxMoveSq {
			maxMoveSq = moveSq
		}
		e.centers[i] = e.dom.Wrap(e.centers[i].Add(d))
	}
	return maxMoveSq, violations
}

// violations counts pairs below the violation threshold d_min − tol.
//
// Complexity: O(n²).
func (e *Engine) violations() int {
	var (
		count int
		i, j  int
	)
	for i = 0; i < len(e.centers)-1; i++ {
		for j = i + 1; j < len(e.centers); j++ {
			if e.dom.DistanceSq(e.centers[i], e.centers[j]) < e.violSq {
				count++
			}
		}
	}
	return count
}

// repulsion returns the push applied to the second member of a violating
// pair (the first receives the negation): moveFactor times half the
// penetration, along the minimum-image line. Coincident centers push along
// +x so the outcome stays deterministic.
func repulsion(delta periodic.Point, dist, dMin, moveFactor float64) periodic.Point {
	var dir periodic.Point
	if dist > 0 {
		dir = delta.Scale(1 / dist)
	} else {
		dir = periodic.Point{X: 1}
	}
	return dir.Scale((dMin - dist) * 0.5 * moveFactor)
}

// capStep bounds a displacement to maxNorm so stacked pushes cannot throw a
// fiber across its neighbors in a single sub-step.
func capStep(d periodic.Point, maxNorm float64) periodic.Point {
	var norm float64
	norm = d.Norm()
	if norm <= maxNorm || norm == 0 {
		return d
	}
	return d.Scale(maxNorm / norm)
}

// finalize audits count and spacing and resolves the machine to Done or
// Failed. A failed run never exposes a FiberSet.
func (e *Engine) finalize() {
	var placed int
	placed = len(e.centers)

	if e.target-placed > e.opts.CountTolerance {
		e.failure = VolumeFractionError{
			TargetCount: e.target,
			PlacedCount: placed,
			TargetVf:    e.cfg.TargetVf,
			AchievedVf:  achievedVf(e.dom, e.cfg.Radius, placed),
		}
		rvegen.Logger().Warn("packing: failed", "reason", e.failure.Error())
		e.advance(Failed)
		return
	}

	var (
		minDist float64
		bi, bj  int
	)
	minDist, bi, bj = minPairDistance(e.dom, e.centers)
	if minDist < e.dMin-e.opts.DistTolerance {
		e.failure = DistanceViolationError{
			IDA:         bi + 1,
			IDB:         bj + 1,
			Distance:    minDist,
			MinDistance: e.dMin,
		}
		rvegen.Logger().Warn("packing: failed", "reason", e.failure.Error())
		e.advance(Failed)
		return
	}

	var fibers []Fiber
	fibers = make([]Fiber, placed)
	var i int
	for i = 0; i < placed; i++ {
		fibers[i] = Fiber{ID: i + 1, Center: e.centers[i]}
	}
	e.result = &FiberSet{
		Domain:      e.dom,
		Radius:      e.cfg.Radius,
		MinSpacing:  e.dMin,
		Fibers:      fibers,
		AchievedVf:  achievedVf(e.dom, e.cfg.Radius, placed),
		MinDistance: minDist,
	}
	rvegen.Logger().Info("packing: done",
		"fibers", placed, "achieved_vf", e.result.AchievedVf, "min_distance", minDist)
	e.advance(Done)
}

// advance moves the machine to the next phase. Transitions are linear; the
// per-method phase guards make illegal jumps unrepresentable.
func (e *Engine) advance(to Phase) {
	rvegen.Logger().Info("packing: phase transition", "from", e.phase.String(), "to", to.String())
	e.phase = to
}

// armDeadline starts the optional wall-clock budget on first phase entry.
func (e *Engine) armDeadline() {
	if e.opts.TimeLimit > 0 && e.deadline.IsZero() {
		e.deadline = time.Now().Add(e.opts.TimeLimit)
	}
}

// timeExpired reports whether the armed wall-clock budget has run out.
// Expiry only ends a phase early; the placements produced so far stay a
// pure function of the random stream.
func (e *Engine) timeExpired() bool {
	if e.deadline.IsZero() {
		return false
	}
	return time.Now().After(e.deadline)
}
