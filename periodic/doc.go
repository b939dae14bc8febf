// Package periodic implements minimum-image geometry on the rectangular
// torus formed by a periodic RVE cross-section.
//
// What it provides:
//
//	Point    — a planar position (or displacement) in the cross-section.
//	Domain   — the unit cell: periodic extents W×H plus the extruded depth D.
//	Wrap     — fold any point into the canonical cell [0,W)×[0,H).
//	Distance — the true torus distance: the minimum Euclidean distance over
//	           the 3×3 lattice of periodic images (x shifts 0,±W; y shifts
//	           0,±H), with DistanceSq for comparison-only call sites.
//	Delta    — the displacement to the nearest periodic image, for relaxation
//	           forces that must point "the short way around".
//	Images   — the nine candidate image positions used for neighbor search
//	           and for building periodic solid geometry.
//
// Why one package:
//
// Fiber packing accepts a placement when its periodic distance to every
// existing center clears a threshold, and phase classification later labels
// a sample point by its periodic distance to those same centers. Both
// decisions must use the identical metric or labels drift from placements
// near cell boundaries. All geometric reasoning therefore lives here, and
// nowhere else.
//
// Determinism:
//
// All operations are pure functions of their inputs. Ties between equally
// near images resolve by the fixed image scan order, so results are
// reproducible across runs and platforms.
//
// The depth D is carried by Domain for consumers that extrude the
// cross-section (fibers span [0,D]); the metric itself is strictly planar.
//
// Complexity: every operation is O(1) (at most a 9-image scan).
//
// Errors: Domain.Validate reports ErrNonPositiveExtent or
// ErrNonFiniteExtent; all other operations assume a validated domain.
package periodic
