// Package mcflow is the root of a minimum-cost flow toolkit built around
// an explicit spanning-tree Network Simplex engine, with a cost-scaling
// (push-relabel) engine sharing the same problem model.
//
// What is mcflow?
//
//	A small, dependency-light library that solves:
//
//	  • Minimum-cost flow on directed graphs with per-arc [lo,hi] capacity
//	    bounds, per-arc integer cost, and per-node supply/demand.
//	  • Both engines return integral flows, node potentials, and the total
//	    cost, certified against the standard conservation and
//	    complementary-slackness conditions.
//
// Under the hood, everything is organized under a handful of subpackages:
//
//	core/     — directed-graph primitives (vertices, edges, thread-safe mutation)
//	dijkstra/ — shortest-path algorithm, reused by the cost-scaling engine's
//	            global-update step
//	mcf/      — the minimum-cost flow engines: Network Simplex and Cost Scaling
//
// Quick example:
//
//	g := mcf.NewDenseGraph(4, []mcf.ArcEndpoints{
//	    {Src: 0, Dst: 2}, {Src: 0, Dst: 3},
//	    {Src: 1, Dst: 2}, {Src: 1, Dst: 3},
//	})
//	p := &mcf.Problem{
//	    Graph:  g,
//	    Hi:     []int64{1 << 30, 1 << 30, 1 << 30, 1 << 30},
//	    Cost:   []int64{3, 5, 4, 2},
//	    Supply: []int64{10, 15, -12, -13},
//	}
//	sol, err := mcf.NetworkSimplex(p)
//
// See package mcf for the full API and DESIGN.md (in this repository)
// for the grounding behind each engine component.
package mcflow
