// Package rvegen generates periodic representative volume elements (RVEs)
// for unidirectional fiber composites: it places non-overlapping cylindrical
// fibers on a 2D torus at a target volume fraction, classifies material
// phases, and derives the periodic boundary constraints a downstream FE
// model needs.
//
// What is rvegen?
//
//	A deterministic micromechanics toolkit built from small, focused packages:
//		• periodic/ — minimum-image distance, wrapping and image enumeration
//		  on the periodic cross-section; every other package measures with it
//		• packing/  — the fiber placement engine: random sequential adsorption
//		  seeding, bounded relaxation, and a final correction sweep, driven by
//		  an explicit SEEDING → RELAXING → CORRECTING state machine
//		• phase/    — point-wise fiber/matrix classification with the exact
//		  metric the packing used, so labels never drift from placements
//		• pbc/      — master/slave boundary-node pairing per periodic
//		  direction plus the linear constraint triples (and their Abaqus
//		  *EQUATION rendering) that impose macroscopic periodicity
//		• rvesolid/ — solid construction of the fiber and matrix phases via
//		  signed-distance CSG, with binary STL export
//		• report/   — the fiber placement table and summary statistics
//		• raster/   — cross-section rasters for visual verification
//
// Why rvegen?
//
//   - Reproducible by contract – one seeded random stream, no time-based
//     randomness; the same configuration and seed rebuild the same RVE bit
//     for bit on any platform
//   - Bounded by construction – every phase of the packing engine runs under
//     explicit iteration and time budgets; saturation is reported as a typed
//     error, never as a hang
//   - One metric everywhere – packing, classification and reporting share the
//     periodic distance in periodic/, so a placement accepted at distance d
//     is classified and audited at distance d
//
// Logging is off by default; install a handler with SetLogger to observe
// phase transitions and budget consumption.
//
//	go get github.com/fibrelab/rvegen
package rvegen
