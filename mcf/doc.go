// Package mcf solves the minimum-cost flow problem on directed graphs:
// given per-arc capacity bounds [lo,hi], per-arc integer cost, and
// per-node supply (positive = source, negative = sink), it finds integer
// flows that respect bounds, satisfy flow conservation modulo supply, and
// minimize total cost.
//
// Two engines share the same problem model:
//
//   - NetworkSimplex: a primal simplex method built around an explicit
//     spanning-tree data structure (parent/thread/depth/succ-num arrays).
//     This is the reference engine; it matches a trusted external solver
//     to the last unit on standard network benchmarks.
//   - CostScaling: a push-relabel / cost-scaling method with an
//     epsilon-scaling outer loop. Useful cross-check and an alternative
//     when the simplex pivot count grows large on dense graphs.
//
// # Problem construction
//
// A Problem is built from any GraphView (NumNodes/NumArcs/ArcSrc/ArcDst)
// plus parallel Lo/Hi/Cost/Supply slices. FromCoreGraph adapts this
// module's core.Graph (string-keyed vertices) into a dense GraphView with
// stable, sorted node indices.
//
// # Status and access
//
// Both engines return a *Solution with a Status (Optimal, Infeasible,
// Unbounded, Unbalanced, NotSolved). Flow, Potential, and TotalCost panic-free but
// return ErrNotOptimal when queried before Status == Optimal.
//
// # Errors
//
// Sentinel errors (ErrInvalidBounds, ErrBadSupplyType, ErrDimensionMismatch,
// ErrNotOptimal, ...) are wrapped as fmt.Errorf("mcf: %s: %w", where, err)
// so errors.Is still matches them; see errors.go.
package mcf
