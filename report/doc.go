// Package report renders packed cells for humans and downstream tooling.
//
// Two surfaces:
//
//   - WriteCSV emits the fiber center table: commented metadata lines, a
//     column header, then one fixed-point row per fiber with 1-based IDs and
//     the full-depth Z span. The layout is the one downstream verification
//     scripts already parse.
//   - Summarize and Summary.WriteText cover pairwise distance statistics
//     under the periodic metric (min/max/mean/median, spacing ratio,
//     violation count) plus the target-versus-achieved volume fraction.
//
// Determinism: the same fiber set reproduces the table and the statistics
// bit for bit; only the Generated metadata line follows the wall clock.
//
// Errors: ErrNilWriter, ErrNilFiberSet, ErrRadiusRange, ErrNilSummary, or a
// domain validation error from the periodic package. Write failures are
// wrapped with the "report:" prefix.
package report
